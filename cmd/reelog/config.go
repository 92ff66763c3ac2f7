// Config loading for the reelog CLI. The configuration is a JSON document
// with one recognized key, database_path. A missing or unreadable config
// file is a startup failure; a present file without the key falls back to
// the default path.
package main

import (
	"fmt"

	"github.com/spf13/viper"
)

const cfgKeyDatabasePath = "database_path"

// loadConfig reads the JSON config file at path using Viper.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return v, nil
}

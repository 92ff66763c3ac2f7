package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigFile(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigFile, "/env/config.json")
		got, err := ResolveConfigFile("/flag/config.json")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.json", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigFile, "/env/config.json")
		got, err := ResolveConfigFile("")
		require.NoError(t, err)
		assert.Equal(t, "/env/config.json", got)
	})

	t.Run("default is CWD-relative", func(t *testing.T) {
		t.Setenv(EnvConfigFile, "")
		got, err := ResolveConfigFile("")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, DefaultConfigFile, filepath.Base(got))
	})
}

func TestResolveDatabasePath(t *testing.T) {
	t.Run("flag wins over everything", func(t *testing.T) {
		t.Setenv(EnvDatabasePath, "/env/movies.db")
		got, err := ResolveDatabasePath("/flag/movies.db", "/config/movies.db")
		require.NoError(t, err)
		assert.Equal(t, "/flag/movies.db", got)
	})

	t.Run("config value wins over env", func(t *testing.T) {
		t.Setenv(EnvDatabasePath, "/env/movies.db")
		got, err := ResolveDatabasePath("", "/config/movies.db")
		require.NoError(t, err)
		assert.Equal(t, "/config/movies.db", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvDatabasePath, "/env/movies.db")
		got, err := ResolveDatabasePath("", "")
		require.NoError(t, err)
		assert.Equal(t, "/env/movies.db", got)
	})

	t.Run("default is CWD-relative data dir", func(t *testing.T) {
		t.Setenv(EnvDatabasePath, "")
		got, err := ResolveDatabasePath("", "")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, "movies.db", filepath.Base(got))
		assert.Equal(t, "data", filepath.Base(filepath.Dir(got)))
	})
}

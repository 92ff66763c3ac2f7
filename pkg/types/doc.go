// Package types defines the entity structs, query parameters, outcome
// signals, and standard errors shared by the reelog storage engine and its
// callers. It has no dependencies beyond the standard library.
package types

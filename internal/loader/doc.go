// Package loader parses the tab-delimited municipality and validator sources
// into record tables.
//
// Lines with too few fields are skipped without being reported. Read and
// decode failures surface as *errors.LoadError so callers can refuse to
// query a partially loaded catalog.
package loader

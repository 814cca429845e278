package munival

import "github.com/wagiedev/munival-go/internal/errors"

// Re-export error types from internal package

// LoadError indicates a source table could not be read.
type LoadError = errors.LoadError

// ArgumentError indicates a required argument was missing or blank.
type ArgumentError = errors.ArgumentError

// MunivalError is the base interface for all catalog errors.
type MunivalError = errors.MunivalError

// Source names the table a LoadError refers to.
type Source = errors.Source

// Re-export source names.
const (
	SourceMunicipalities = errors.SourceMunicipalities
	SourceValidators     = errors.SourceValidators
)

// Re-export sentinel errors from internal package.
var (
	// ErrNotLoaded indicates a query was attempted without a loaded catalog.
	ErrNotLoaded = errors.ErrNotLoaded

	// ErrEmptyQuery indicates a blank municipality name was queried.
	ErrEmptyQuery = errors.ErrEmptyQuery

	// ErrUnknownEncoding indicates an unsupported source text encoding.
	ErrUnknownEncoding = errors.ErrUnknownEncoding
)

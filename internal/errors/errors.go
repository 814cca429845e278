package errors

import (
	"errors"
	"fmt"
)

// MunivalError is the base interface for all catalog errors.
type MunivalError interface {
	error
	IsMunivalError() bool
}

// Compile-time verification that all error types implement MunivalError.
var (
	_ MunivalError = (*LoadError)(nil)
	_ MunivalError = (*ArgumentError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNotLoaded indicates a query was attempted without a loaded catalog.
	ErrNotLoaded = errors.New("catalog not loaded")

	// ErrEmptyQuery indicates a blank municipality name was queried.
	ErrEmptyQuery = errors.New("empty municipality name")

	// ErrUnknownEncoding indicates an unsupported source text encoding.
	ErrUnknownEncoding = errors.New("unknown text encoding")
)

// Source names the table a LoadError refers to.
type Source string

const (
	// SourceMunicipalities is the municipality table.
	SourceMunicipalities Source = "municipalities"
	// SourceValidators is the validator table.
	SourceValidators Source = "validators"
)

// LoadError indicates a source table could not be read.
type LoadError struct {
	Source Source
	Path   string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to load %s: %v", e.Source, e.Err)
	}

	return fmt.Sprintf("failed to load %s from %s: %v", e.Source, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsMunivalError implements MunivalError.
func (e *LoadError) IsMunivalError() bool { return true }

// ArgumentError indicates a required argument was missing or blank.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %q is required", e.Name)
}

// IsMunivalError implements MunivalError.
func (e *ArgumentError) IsMunivalError() bool { return true }

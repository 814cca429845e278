// Package errors defines error types for the municipality/validator catalog.
//
// Load failures are reported as *LoadError and are distinct from a query
// that simply matches nothing, which is a result state rather than an error.
// All error types support unwrapping and can be checked using errors.Is,
// errors.As and errors.AsType.
package errors

// Package record defines the municipality, validator and joined row types
// shared by the loaders, the join and the query engine.
//
// All values are treated as immutable once a table has been built. Dates are
// carried in their display form (DD/MM/YYYY) or as the empty string when the
// source had no usable date.
package record

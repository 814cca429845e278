// Package query answers lookups over the joined municipality/validator table.
//
// Names are matched after Normalize: exact matches win, otherwise substring
// matches are used, otherwise the result carries up to MaxSuggestions similar
// names. Matching rows are grouped per municipality, each validator entry gets
// a status, one entry is picked as the current validator and a candidate
// validator name can be classified against that history.
//
// An Engine never mutates the rows it was built from and is safe for
// concurrent use once constructed.
package query

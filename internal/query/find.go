package query

import (
	"slices"
	"strings"

	"github.com/wagiedev/munival-go/internal/errors"
	"github.com/wagiedev/munival-go/internal/record"
)

const (
	// MaxSuggestions caps the similar-name list of an unmatched query.
	MaxSuggestions = 20

	minSuggestionToken = 3
)

// MatchKind tells how a query matched.
type MatchKind string

const (
	// MatchNone means nothing matched; see FindResult.Suggestions.
	MatchNone MatchKind = "none"
	// MatchExact means at least one name equals the query.
	MatchExact MatchKind = "exact"
	// MatchPartial means no name equals the query but some contain it.
	MatchPartial MatchKind = "partial"
)

// FindResult is the outcome of a municipality lookup.
type FindResult struct {
	Query       string    `json:"query"`
	Match       MatchKind `json:"match"`
	Groups      []Group   `json:"groups,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

// Found reports whether at least one municipality matched.
func (r *FindResult) Found() bool {
	return len(r.Groups) > 0
}

// Find looks a municipality up by name.
//
// Exact matches on the normalized name take precedence over substring
// matches. When neither exists the result has no groups and lists similar
// names instead; this is not an error. A blank name is rejected with
// errors.ErrEmptyQuery.
func (e *Engine) Find(name string) (*FindResult, error) {
	q := Normalize(name)
	if q == "" {
		return nil, errors.ErrEmptyQuery
	}

	var exact, partial []record.Joined

	for i, n := range e.names {
		switch {
		case n == q:
			exact = append(exact, e.rows[i])
		case strings.Contains(n, q):
			partial = append(partial, e.rows[i])
		}
	}

	result := &FindResult{Query: name}
	now := e.now()

	switch {
	case len(exact) > 0:
		result.Match = MatchExact
		result.Groups = buildGroups(exact, now)
	case len(partial) > 0:
		result.Match = MatchPartial
		result.Groups = buildGroups(partial, now)
	default:
		result.Match = MatchNone
		result.Suggestions = e.suggest(q)
	}

	return result, nil
}

// suggest lists "NAME (UF)" labels of rows whose normalized name contains
// any query token of at least three characters.
func (e *Engine) suggest(q string) []string {
	tokens := make([]string, 0)
	for _, tok := range strings.Fields(q) {
		if len([]rune(tok)) >= minSuggestionToken {
			tokens = append(tokens, tok)
		}
	}

	if len(tokens) == 0 {
		return nil
	}

	labels := make(map[string]struct{})

	for i, n := range e.names {
		for _, tok := range tokens {
			if strings.Contains(n, tok) {
				labels[e.rows[i].Name+" ("+e.rows[i].State+")"] = struct{}{}

				break
			}
		}
	}

	out := make([]string, 0, len(labels))
	for l := range labels {
		out = append(out, l)
	}

	slices.Sort(out)

	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}

	return out
}

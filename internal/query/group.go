package query

import (
	"encoding/json"
	"time"

	"github.com/wagiedev/munival-go/internal/record"
)

// Entry is one validator of a municipality's history with its status.
type Entry struct {
	record.Joined

	Status Status `json:"status"`
}

// Group collects the validator history of one physical municipality.
type Group struct {
	Municipality record.Municipality `json:"municipality"`
	History      []Entry             `json:"history"`

	current int
}

// HasHistory reports whether the municipality has any validator.
func (g *Group) HasHistory() bool {
	return len(g.History) > 0
}

// Current returns the entry selected as the municipality's current
// validator. It reports false when the history is empty.
func (g *Group) Current() (Entry, bool) {
	if g.current < 0 || g.current >= len(g.History) {
		return Entry{}, false
	}

	return g.History[g.current], true
}

type dedupeKey struct {
	key  record.Key
	code string
}

// buildGroups deduplicates rows by (state, code, validator code), keeping
// the first occurrence, and groups them per municipality in first-seen
// order. Rows without a validator keep their municipality in the output
// but do not enter its history.
func buildGroups(rows []record.Joined, now time.Time) []Group {
	seen := make(map[dedupeKey]struct{}, len(rows))
	index := make(map[record.Key]int)
	groups := make([]Group, 0)

	for _, r := range rows {
		dk := dedupeKey{key: r.Key(), code: r.ValidatorCode}
		if _, dup := seen[dk]; dup {
			continue
		}

		seen[dk] = struct{}{}

		i, ok := index[r.Key()]
		if !ok {
			i = len(groups)
			index[r.Key()] = i
			groups = append(groups, Group{
				Municipality: record.Municipality{State: r.State, Code: r.Code, Name: r.Name},
				current:      -1,
			})
		}

		if r.HasValidator() {
			groups[i].History = append(groups[i].History, Entry{
				Joined: r,
				Status: StatusOf(r, now),
			})
		}
	}

	for i := range groups {
		groups[i].current = currentIndex(groups[i].History, now)
	}

	return groups
}

// currentIndex picks the current validator of a history.
//
// The first final entry without an expiry date wins outright. Otherwise the
// final entry with the latest expiry date that has not passed is used.
// Failing both, the last entry is returned: a positional fallback kept for
// compatibility with existing reports.
func currentIndex(history []Entry, now time.Time) int {
	best := -1

	var bestExpiry time.Time

	for i, e := range history {
		if e.Final != record.FlagFinal {
			continue
		}

		if e.ExpiryDate == "" {
			return i
		}

		expiry, ok := record.ParseDisplayDate(e.ExpiryDate)
		if !ok || expiry.Before(now) {
			continue
		}

		if best < 0 || expiry.After(bestExpiry) {
			best = i
			bestExpiry = expiry
		}
	}

	if best < 0 && len(history) > 0 {
		return len(history) - 1
	}

	return best
}

// MarshalJSON encodes the group together with its current validator.
func (g Group) MarshalJSON() ([]byte, error) {
	type plain Group

	out := struct {
		plain

		Current *Entry `json:"current,omitempty"`
	}{plain: plain(g)}

	if cur, ok := g.Current(); ok {
		out.Current = &cur
	}

	return json.Marshal(out)
}

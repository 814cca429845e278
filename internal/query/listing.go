package query

import (
	"slices"
	"strings"

	"github.com/wagiedev/munival-go/internal/record"
)

// ValidatorUsage summarises where one validator code is used.
type ValidatorUsage struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	States      []string `json:"states"`
	// Municipalities is the number of distinct municipalities whose history
	// contains the code.
	Municipalities int `json:"municipalities"`
}

// ListValidators returns every distinct validator code, optionally limited
// to one state (compared case-insensitively; blank means all states).
// The list is sorted by municipality count, highest first; ties keep the
// order in which codes were first loaded.
func (e *Engine) ListValidators(state string) []ValidatorUsage {
	state = strings.TrimSpace(state)

	type usage struct {
		ValidatorUsage

		states map[string]struct{}
		keys   map[record.Key]struct{}
	}

	byCode := make(map[string]*usage)
	order := make([]*usage, 0)

	e.validators.Each(func(k record.Key, v record.Validator) bool {
		if state != "" && !strings.EqualFold(k.State, state) {
			return true
		}

		u, ok := byCode[v.Code]
		if !ok {
			u = &usage{
				ValidatorUsage: ValidatorUsage{Code: v.Code, Description: v.Description},
				states:         make(map[string]struct{}),
				keys:           make(map[record.Key]struct{}),
			}
			byCode[v.Code] = u
			order = append(order, u)
		}

		u.states[k.State] = struct{}{}
		u.keys[k] = struct{}{}

		return true
	})

	out := make([]ValidatorUsage, 0, len(order))
	for _, u := range order {
		u.States = make([]string, 0, len(u.states))
		for s := range u.states {
			u.States = append(u.States, s)
		}

		slices.Sort(u.States)
		u.Municipalities = len(u.keys)
		out = append(out, u.ValidatorUsage)
	}

	slices.SortStableFunc(out, func(a, b ValidatorUsage) int {
		return b.Municipalities - a.Municipalities
	})

	return out
}

// Stats summarises the joined table.
type Stats struct {
	Municipalities      int `json:"municipalities"`
	WithValidator       int `json:"with_validator"`
	WithoutValidator    int `json:"without_validator"`
	StatesWithValidator int `json:"states_with_validator"`
	JoinedRows          int `json:"joined_rows"`
	ValidatorRows       int `json:"validator_rows"`
}

// Stats counts municipalities with and without validators.
func (e *Engine) Stats() Stats {
	all := make(map[record.Key]struct{})
	with := make(map[record.Key]struct{})
	states := make(map[string]struct{})

	for _, r := range e.rows {
		all[r.Key()] = struct{}{}

		if r.HasValidator() {
			with[r.Key()] = struct{}{}
			states[r.State] = struct{}{}
		}
	}

	return Stats{
		Municipalities:      len(all),
		WithValidator:       len(with),
		WithoutValidator:    len(all) - len(with),
		StatesWithValidator: len(states),
		JoinedRows:          len(e.rows),
		ValidatorRows:       e.validators.Total(),
	}
}

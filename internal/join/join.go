// Package join pairs every municipality with its validator history.
package join

import (
	"strings"

	"github.com/wagiedev/munival-go/internal/record"
)

// Join produces one row per (municipality, validator) pair, in municipality
// table order and then validator history order. A municipality without
// history yields exactly one placeholder row, so every municipality key
// appears at least once in the result.
func Join(municipalities *record.MunicipalityTable, validators *record.ValidatorTable) []record.Joined {
	rows := make([]record.Joined, 0, municipalities.Len()+validators.Total())

	for _, m := range municipalities.All() {
		history, ok := validators.History(m.Key())
		if !ok || len(history) == 0 {
			rows = append(rows, record.NewPlaceholder(m))

			continue
		}

		for _, v := range history {
			rows = append(rows, record.NewJoined(m, v))
		}
	}

	return rows
}

// FilterByState returns the rows of one state, preserving order.
// The state code is compared case-insensitively.
func FilterByState(rows []record.Joined, state string) []record.Joined {
	state = strings.ToUpper(strings.TrimSpace(state))

	out := make([]record.Joined, 0)
	for _, r := range rows {
		if strings.ToUpper(r.State) == state {
			out = append(out, r)
		}
	}

	return out
}

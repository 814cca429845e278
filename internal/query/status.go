package query

import (
	"time"

	"github.com/wagiedev/munival-go/internal/record"
)

// Situation tells whether a validator entry is still in force.
type Situation string

const (
	// SituationActive means no expiry date, an expiry date not yet reached,
	// or an expiry date that could not be parsed.
	SituationActive Situation = "ATIVO"
	// SituationExpired means the expiry date is before the current time.
	SituationExpired Situation = "EXPIRADO"
)

// Status is the flag/situation pair displayed for a validator entry.
type Status struct {
	Final     record.Flag `json:"final"`
	Situation Situation   `json:"situation"`
}

// String renders the status as "{flag}-{situation}", e.g. "S-ATIVO".
func (s Status) String() string {
	return string(s.Final) + "-" + string(s.Situation)
}

// StatusOf derives the status of a joined row at time now.
func StatusOf(row record.Joined, now time.Time) Status {
	return Status{Final: row.Final, Situation: situationOf(row.ExpiryDate, now)}
}

func situationOf(expiry string, now time.Time) Situation {
	if expiry == "" {
		return SituationActive
	}

	t, ok := record.ParseDisplayDate(expiry)
	if !ok {
		return SituationActive
	}

	if t.Before(now) {
		return SituationExpired
	}

	return SituationActive
}

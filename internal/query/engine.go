package query

import (
	"slices"
	"strings"
	"time"

	"github.com/wagiedev/munival-go/internal/record"
)

// Engine is a read-only index over a joined table.
type Engine struct {
	rows       []record.Joined
	names      []string // Normalize(rows[i].Name)
	validators *record.ValidatorTable
	// upper-cased code and description of every loaded validator row
	known []string
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used to decide whether an expiry date has
// passed. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New builds an Engine over rows. validators is the table rows were joined
// from; it backs the system-wide validator lookups.
func New(rows []record.Joined, validators *record.ValidatorTable, opts ...Option) *Engine {
	if validators == nil {
		validators = record.NewValidatorTable()
	}

	e := &Engine{
		rows:       rows,
		names:      make([]string, len(rows)),
		validators: validators,
		known:      make([]string, 0, 2*validators.Total()),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	for i, r := range rows {
		e.names[i] = Normalize(r.Name)
	}

	validators.Each(func(_ record.Key, v record.Validator) bool {
		e.known = append(e.known, strings.ToUpper(v.Code), strings.ToUpper(v.Description))

		return true
	})

	return e
}

// Rows returns a copy of the joined table in join order.
func (e *Engine) Rows() []record.Joined {
	return slices.Clone(e.rows)
}

// Len returns the number of joined rows.
func (e *Engine) Len() int {
	return len(e.rows)
}

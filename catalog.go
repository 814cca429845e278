package munival

import (
	"context"
	"fmt"

	"github.com/wagiedev/munival-go/internal/join"
	"github.com/wagiedev/munival-go/internal/loader"
	"github.com/wagiedev/munival-go/internal/query"
	"github.com/wagiedev/munival-go/internal/record"
)

// Catalog owns the joined municipality/validator table.
//
// A Catalog is immutable once built and safe for concurrent use.
type Catalog struct {
	engine *query.Engine
}

// Open loads both source tables and joins them.
//
// Any load failure is returned as *LoadError and no Catalog is produced.
func Open(ctx context.Context, opts ...Option) (*Catalog, error) {
	options := applyOptions(opts)

	enc, err := loader.ParseEncoding(options.Encoding)
	if err != nil {
		return nil, err
	}

	tables, err := loader.Load(ctx, options.Logger, loader.Sources{
		MunicipalityPath: options.MunicipalityFile,
		ValidatorPath:    options.ValidatorFile,
		Encoding:         enc,
	})
	if err != nil {
		return nil, err
	}

	c := build(tables.Municipalities, tables.Validators, options)

	options.Logger.Info("catalog joined", "rows", c.engine.Len())

	return c, nil
}

// NewCatalog joins in-memory rows, e.g. synthetic data in tests.
// Municipalities with a duplicate key overwrite earlier ones; validators
// are appended to the history of their key in slice order.
func NewCatalog(municipalities []Municipality, validators map[Key][]Validator, opts ...Option) *Catalog {
	options := applyOptions(opts)

	mt := record.NewMunicipalityTable(len(municipalities))
	for _, m := range municipalities {
		mt.Put(m)
	}

	vt := record.NewValidatorTable()

	// Histories follow municipality order so listings are deterministic;
	// keys without a municipality come last in map order.
	for _, m := range mt.All() {
		for _, v := range validators[m.Key()] {
			vt.Append(m.Key(), v)
		}
	}

	for k, history := range validators {
		if _, ok := mt.Get(k); ok {
			continue
		}

		for _, v := range history {
			vt.Append(k, v)
		}
	}

	return build(mt, vt, options)
}

func build(mt *record.MunicipalityTable, vt *record.ValidatorTable, options *Options) *Catalog {
	var qopts []query.Option
	if options.Now != nil {
		qopts = append(qopts, query.WithClock(options.Now))
	}

	return &Catalog{
		engine: query.New(join.Join(mt, vt), vt, qopts...),
	}
}

// Find looks a municipality up by name. A name that matches nothing yields
// a result with Found() == false and similar-name suggestions.
func (c *Catalog) Find(name string) (*FindResult, error) {
	return c.engine.Find(name)
}

// Classify looks municipality up and classifies validator against the
// history of every municipality that matched.
func (c *Catalog) Classify(municipality, validator string) (*ClassifyResult, error) {
	return c.engine.Classify(municipality, validator)
}

// ClassifyGroup classifies validator against a single group returned by Find.
func (c *Catalog) ClassifyGroup(g *Group, validator string) (Classification, error) {
	return c.engine.ClassifyGroup(g, validator)
}

// ExistsGlobally reports whether validator matches any loaded validator
// code or description.
func (c *Catalog) ExistsGlobally(validator string) bool {
	return c.engine.ExistsGlobally(validator)
}

// ListValidators lists every distinct validator code, optionally for one
// state only, most used first.
func (c *Catalog) ListValidators(state string) []ValidatorUsage {
	return c.engine.ListValidators(state)
}

// Rows returns the joined table, optionally filtered to one state.
func (c *Catalog) Rows(state string) []JoinedRecord {
	rows := c.engine.Rows()
	if state == "" {
		return rows
	}

	return join.FilterByState(rows, state)
}

// Stats summarises the joined table.
func (c *Catalog) Stats() Stats {
	return c.engine.Stats()
}

func (c *Catalog) String() string {
	return fmt.Sprintf("munival.Catalog(%d rows)", c.engine.Len())
}

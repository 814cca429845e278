package munival

import (
	"context"
	"sync"
)

// Provider hands out a loaded Catalog.
type Provider interface {
	Catalog(ctx context.Context) (*Catalog, error)
}

// Compile-time verification that both providers implement Provider.
var (
	_ Provider = (*LazyCatalog)(nil)
	_ Provider = StaticCatalog{}
)

// StaticCatalog is a Provider for an already loaded Catalog.
type StaticCatalog struct {
	C *Catalog
}

// Catalog implements Provider.
func (s StaticCatalog) Catalog(context.Context) (*Catalog, error) {
	if s.C == nil {
		return nil, ErrNotLoaded
	}

	return s.C, nil
}

// LazyCatalog loads the catalog on first use, at most once.
//
// Concurrent callers block until the single load finishes and all observe
// its outcome. A failed load is not retried.
type LazyCatalog struct {
	opts []Option

	once    sync.Once
	catalog *Catalog
	err     error
}

// NewLazyCatalog returns a Provider that calls Open with opts on first use.
func NewLazyCatalog(opts ...Option) *LazyCatalog {
	return &LazyCatalog{opts: opts}
}

// Catalog implements Provider.
func (l *LazyCatalog) Catalog(ctx context.Context) (*Catalog, error) {
	l.once.Do(func() {
		l.catalog, l.err = Open(context.WithoutCancel(ctx), l.opts...)
	})

	return l.catalog, l.err
}

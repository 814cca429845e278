package munival

import (
	"log/slog"
	"time"

	"github.com/wagiedev/munival-go/internal/config"
)

// Options configures how a Catalog is loaded and queried.
type Options = config.Options

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = NopLogger()
	}

	return options
}

// WithOptions copies every field of o, e.g. the result of a loaded
// configuration. Later options still override it.
func WithOptions(o Options) Option {
	return func(dst *Options) {
		*dst = o
	}
}

// WithLogger sets the logger for load diagnostics.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMunicipalityFile sets the path of the municipality table.
func WithMunicipalityFile(path string) Option {
	return func(o *Options) {
		o.MunicipalityFile = path
	}
}

// WithValidatorFile sets the path of the validator table.
func WithValidatorFile(path string) Option {
	return func(o *Options) {
		o.ValidatorFile = path
	}
}

// WithEncoding sets the text encoding of both tables.
// Valid values: "latin1" (default), "utf-8".
func WithEncoding(encoding string) Option {
	return func(o *Options) {
		o.Encoding = encoding
	}
}

// WithClock overrides the clock used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

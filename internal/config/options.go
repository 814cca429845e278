package config

import (
	"log/slog"
	"time"
)

// Options configures how a catalog is loaded and queried.
type Options struct {
	// Logger is the slog logger for load diagnostics.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// MunicipalityFile is the path of the municipality table (TACES06).
	MunicipalityFile string

	// ValidatorFile is the path of the validator table (TFIX105).
	ValidatorFile string

	// Encoding is the text encoding of both files: "latin1" or "utf-8".
	// Empty means latin1.
	Encoding string

	// Now overrides the clock used for expiry checks.
	// If nil, time.Now is used.
	Now func() time.Time
}

package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wagiedev/munival-go/internal/query"
)

// Transport selects how the tool server is reached.
type Transport string

const (
	// TransportStdio speaks MCP over stdin/stdout.
	TransportStdio Transport = "stdio"
	// TransportHTTP serves the streamable HTTP transport.
	TransportHTTP Transport = "http"
)

// ParseTransport maps a transport name to a Transport. An empty name selects
// stdio.
func ParseTransport(name string) (Transport, error) {
	switch Transport(strings.ToLower(strings.TrimSpace(name))) {
	case "", TransportStdio:
		return TransportStdio, nil
	case TransportHTTP:
		return TransportHTTP, nil
	default:
		return "", fmt.Errorf("unknown transport %q", name)
	}
}

// Catalog is the read side of the municipality catalog the tools query.
type Catalog interface {
	Find(name string) (*query.FindResult, error)
	Classify(municipality, validator string) (*query.ClassifyResult, error)
	ListValidators(state string) []query.ValidatorUsage
}

// CatalogFunc returns the catalog, loading it on first use if needed.
type CatalogFunc func(ctx context.Context) (Catalog, error)

// Config configures a Server.
type Config struct {
	// Name and Version are reported in the MCP initialize response.
	Name    string
	Version string

	Catalog CatalogFunc

	// Logger defaults to a discarding logger.
	Logger *slog.Logger

	// Metrics is optional; nil disables tool-call metrics.
	Metrics *Metrics
}

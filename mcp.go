package munival

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	internalmcp "github.com/wagiedev/munival-go/internal/mcp"
)

// Version is reported to MCP clients and by the CLI.
const Version = "0.1.0"

// DefaultServerName is the MCP server name clients see by default.
const DefaultServerName = "mcp-busca-municipio-validador"

// MCP tool names.
const (
	ToolFindMunicipality  = internalmcp.ToolFindMunicipality
	ToolClassifyValidator = internalmcp.ToolClassifyValidator
	ToolListValidators    = internalmcp.ToolListValidators
)

// ToolServer serves catalog lookups as MCP tools over stdio or HTTP.
type ToolServer = internalmcp.Server

// ToolMetrics holds the tool-call Prometheus metrics.
type ToolMetrics = internalmcp.Metrics

// NewToolMetrics creates tool-call metrics registered with reg.
func NewToolMetrics(reg prometheus.Registerer) *ToolMetrics {
	return internalmcp.NewMetrics(reg)
}

// ToolServerConfig configures NewToolServer.
type ToolServerConfig struct {
	// Name defaults to DefaultServerName and Version to the package Version.
	Name    string
	Version string

	Logger  *slog.Logger
	Metrics *ToolMetrics
}

// NewToolServer exposes the catalog handed out by provider as MCP tools.
//
// The provider is asked for the catalog on every call, so a LazyCatalog
// defers loading until the first tool call:
//
//	provider := munival.NewLazyCatalog(munival.WithMunicipalityFile("TACES06.TXT"))
//	server := munival.NewToolServer(provider, munival.ToolServerConfig{})
//	err := server.Run(ctx, &mcp.StdioTransport{})
func NewToolServer(provider Provider, cfg ToolServerConfig) *ToolServer {
	if cfg.Name == "" {
		cfg.Name = DefaultServerName
	}

	if cfg.Version == "" {
		cfg.Version = Version
	}

	if cfg.Logger == nil {
		cfg.Logger = NopLogger()
	}

	return internalmcp.NewServer(internalmcp.Config{
		Name:    cfg.Name,
		Version: cfg.Version,
		Catalog: func(ctx context.Context) (internalmcp.Catalog, error) {
			c, err := provider.Catalog(ctx)
			if err != nil {
				return nil, err
			}

			return c, nil
		},
		Logger:  cfg.Logger,
		Metrics: cfg.Metrics,
	})
}

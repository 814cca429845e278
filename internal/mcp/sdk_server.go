package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server holds the catalog tools and serves them over MCP transports.
//
// The SDK server is designed for transport-based communication, so Server
// maintains its own tool registry for direct invocation via CallTool and
// builds an SDK server from that registry when a transport is attached.
type Server struct {
	name    string
	version string
	catalog CatalogFunc
	logger  *slog.Logger
	metrics *Metrics

	mu    sync.RWMutex
	tools map[string]*sdkTool
	order []string
}

// sdkTool holds tool metadata and handler for the internal registry.
type sdkTool struct {
	tool    *mcp.Tool
	handler mcp.ToolHandler
}

// NewServer creates a Server with the catalog tools registered.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{
		name:    cfg.Name,
		version: cfg.Version,
		catalog: cfg.Catalog,
		logger:  logger,
		metrics: cfg.Metrics,
		tools:   make(map[string]*sdkTool, 4),
	}

	s.registerCatalogTools()

	return s
}

// AddTool registers a tool. Every call is logged with a correlation id and,
// when metrics are configured, counted and timed.
func (s *Server) AddTool(tool *mcp.Tool, handler mcp.ToolHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tools[tool.Name]; !exists {
		s.order = append(s.order, tool.Name)
	}

	s.tools[tool.Name] = &sdkTool{
		tool:    tool,
		handler: s.instrument(tool.Name, handler),
	}
}

// Name returns the server name.
func (s *Server) Name() string {
	return s.name
}

// Version returns the server version.
func (s *Server) Version() string {
	return s.version
}

// ToolNames returns the registered tool names in registration order.
func (s *Server) ToolNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.order)
}

// ListTools returns the registered tools in registration order.
func (s *Server) ListTools() []*mcp.Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := make([]*mcp.Tool, 0, len(s.order))
	for _, name := range s.order {
		tools = append(tools, s.tools[name].tool)
	}

	return tools
}

// CallTool runs a registered tool in process, without a transport.
// Failures are reported as error results, the same way a client
// connected over MCP would see them.
func (s *Server) CallTool(ctx context.Context, name string, input map[string]any) (*mcp.CallToolResult, error) {
	s.mu.RLock()
	t, exists := s.tools[name]
	s.mu.RUnlock()

	if !exists {
		return ErrorResult("Tool not found: " + name), nil
	}

	args, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshal %s arguments: %w", name, err)
	}

	result, err := t.handler(ctx, &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Name: name, Arguments: args},
	})
	if err != nil {
		//nolint:nilerr // handler errors surface as error results, as over MCP
		return ErrorResult("Tool execution failed: " + err.Error()), nil
	}

	if result == nil {
		result = &mcp.CallToolResult{Content: []mcp.Content{}}
	}

	return result, nil
}

// SDKServer builds an SDK server carrying every registered tool.
func (s *Server) SDKServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    s.name,
		Version: s.version,
	}, nil)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, name := range s.order {
		t := s.tools[name]
		server.AddTool(t.tool, t.handler)
	}

	return server
}

// Run serves the tools over transport until the client disconnects or ctx
// is cancelled.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	s.logger.Info("mcp server starting", "name", s.name, "version", s.version)

	if err := s.SDKServer().Run(ctx, transport); err != nil {
		return fmt.Errorf("run mcp server: %w", err)
	}

	return nil
}

// StringSchema creates an object schema of required string properties.
func StringSchema(names ...string) *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema, len(names))
	required := make([]string, 0, len(names))

	for _, name := range names {
		properties[name] = &jsonschema.Schema{Type: "string"}
		required = append(required, name)
	}

	slices.Sort(required)

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// TextResult creates a CallToolResult with text content.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// ErrorResult creates a CallToolResult indicating an error.
func ErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}
}

// NewTool creates an mcp.Tool with the given parameters.
func NewTool(name, description string, inputSchema *jsonschema.Schema) *mcp.Tool {
	return &mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: inputSchema,
	}
}

// ParseArguments unmarshals CallToolRequest arguments into a map.
func ParseArguments(req *mcp.CallToolRequest) (map[string]any, error) {
	if req == nil || req.Params == nil {
		return make(map[string]any), nil
	}

	if len(req.Params.Arguments) == 0 {
		return make(map[string]any), nil
	}

	var args map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return nil, fmt.Errorf("failed to unmarshal arguments: %w", err)
	}

	if args == nil {
		args = make(map[string]any)
	}

	return args, nil
}

package munival

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewToolServer_Defaults(t *testing.T) {
	t.Parallel()

	server := NewToolServer(StaticCatalog{}, ToolServerConfig{})

	require.Equal(t, DefaultServerName, server.Name())
	require.Equal(t, Version, server.Version())
	require.Equal(t, []string{ToolFindMunicipality, ToolClassifyValidator, ToolListValidators}, server.ToolNames())
}

func TestNewToolServer_Provider(t *testing.T) {
	t.Parallel()

	server := NewToolServer(StaticCatalog{C: openFixture(t)}, ToolServerConfig{
		Name:    "munival-test",
		Metrics: NewToolMetrics(prometheus.NewRegistry()),
	})

	result, err := server.CallTool(context.Background(), ToolFindMunicipality, map[string]any{
		"nome_municipio": "são paulo",
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	require.Contains(t, text.Text, "MUNICÍPIO: SÃO PAULO - SP (Código: 3550308)")

	empty, err := NewToolServer(StaticCatalog{}, ToolServerConfig{}).CallTool(context.Background(), ToolListValidators, nil)
	require.NoError(t, err)
	require.True(t, empty.IsError)
}

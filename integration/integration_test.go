//go:build integration

package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	munival "github.com/wagiedev/munival-go"
)

// fixtureOptions points the catalog at the small tables under testdata.
func fixtureOptions() []munival.Option {
	return []munival.Option{
		munival.WithMunicipalityFile(filepath.Join("..", "testdata", "TACES06.TXT")),
		munival.WithValidatorFile(filepath.Join("..", "testdata", "TFIX105.txt")),
		munival.WithEncoding("latin1"),
	}
}

// skipIfNoPresetFiles skips unless MUNIVAL_MUNICIPALITY_FILE and
// MUNIVAL_VALIDATOR_FILE name existing production tables.
func skipIfNoPresetFiles(t *testing.T) (string, string) {
	t.Helper()

	municipalities := os.Getenv("MUNIVAL_MUNICIPALITY_FILE")
	validators := os.Getenv("MUNIVAL_VALIDATOR_FILE")

	for _, path := range []string{municipalities, validators} {
		if path == "" {
			t.Skip("MUNIVAL_MUNICIPALITY_FILE and MUNIVAL_VALIDATOR_FILE not set")
		}

		if _, err := os.Stat(path); err != nil {
			t.Skipf("preset file not available: %v", err)
		}
	}

	return municipalities, validators
}

// connect serves server over in-memory transports and returns a client
// session that is closed with the test.
func connect(t *testing.T, server *munival.ToolServer) *mcp.ClientSession {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.SDKServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "integration-client", Version: "v0.0.1"}, nil)

	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

// callText calls a tool and returns its single text block.
func callText(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)

	return text.Text, result.IsError
}

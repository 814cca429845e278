package mcp

import (
	"context"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"

	munerrors "github.com/wagiedev/munival-go/internal/errors"
	"github.com/wagiedev/munival-go/internal/report"
)

// Tool names exposed to MCP clients.
const (
	ToolFindMunicipality  = "buscar_municipio"
	ToolClassifyValidator = "classificar_validador"
	ToolListValidators    = "listar_validadores"
)

// Tool argument names.
const (
	ArgMunicipality = "nome_municipio"
	ArgValidator    = "nome_validador"
	ArgState        = "filtro_estado"
)

var readOnly = &mcp.ToolAnnotations{
	ReadOnlyHint:   true,
	IdempotentHint: true,
}

func (s *Server) registerCatalogTools() {
	find := NewTool(ToolFindMunicipality,
		"Busca um município pelo nome e mostra o histórico de validadores, destacando o validador atual.",
		describe(StringSchema(ArgMunicipality), map[string]string{
			ArgMunicipality: "Nome do município (acentos e caixa são ignorados)",
		}),
	)
	find.Annotations = readOnly
	s.AddTool(find, s.handleFind)

	classify := NewTool(ToolClassifyValidator,
		"Classifica um validador para um município como NOVO VALIDADOR, MIGRAÇÃO DE VALIDADOR ou ALTERAÇÃO DE REGRAS.",
		describe(StringSchema(ArgMunicipality, ArgValidator), map[string]string{
			ArgMunicipality: "Nome do município",
			ArgValidator:    "Código ou descrição do validador",
		}),
	)
	classify.Annotations = readOnly
	s.AddTool(classify, s.handleClassify)

	listSchema := describe(StringSchema(ArgState), map[string]string{
		ArgState: "Sigla do estado (UF) para filtrar, opcional",
	})
	listSchema.Required = nil

	list := NewTool(ToolListValidators,
		"Lista os validadores cadastrados com os estados e a quantidade de municípios que os utilizam.",
		listSchema,
	)
	list.Annotations = readOnly
	s.AddTool(list, s.handleList)
}

func describe(schema *jsonschema.Schema, descriptions map[string]string) *jsonschema.Schema {
	for name, desc := range descriptions {
		if prop, ok := schema.Properties[name]; ok {
			prop.Description = desc
		}
	}

	return schema
}

// instrument wraps a handler with call logging and metrics. Each call gets a
// ULID so log lines of concurrent calls can be told apart.
func (s *Server) instrument(name string, handler mcp.ToolHandler) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		logger := s.logger.With("tool", name, "call_id", ulid.Make().String())

		logger.Debug("tool call started")

		result, err := handler(ctx, req)

		outcome := OutcomeOK

		switch {
		case err != nil:
			outcome = OutcomeFailure

			logger.Error("tool call failed", "error", err)
		case result != nil && result.IsError:
			outcome = OutcomeToolError
		}

		s.metrics.ObserveCall(name, outcome, start)
		logger.Debug("tool call finished", "outcome", outcome, "duration", time.Since(start))

		return result, err
	}
}

func (s *Server) loadCatalog(ctx context.Context) (Catalog, *mcp.CallToolResult) {
	if s.catalog == nil {
		return nil, ErrorResult("Erro: " + munerrors.ErrNotLoaded.Error())
	}

	c, err := s.catalog(ctx)
	if err != nil {
		s.logger.Error("catalog load failed", "error", err)

		return nil, ErrorResult("Erro ao carregar os dados: " + err.Error())
	}

	if c == nil {
		return nil, ErrorResult("Erro: " + munerrors.ErrNotLoaded.Error())
	}

	return c, nil
}

func stringArg(args map[string]any, name string) string {
	v, _ := args[name].(string)

	return strings.TrimSpace(v)
}

func (s *Server) handleFind(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := ParseArguments(req)
	if err != nil {
		return ErrorResult(err.Error()), nil
	}

	name := stringArg(args, ArgMunicipality)
	if name == "" {
		return ErrorResult("Erro: nome do município é obrigatório"), nil
	}

	c, errResult := s.loadCatalog(ctx)
	if errResult != nil {
		return errResult, nil
	}

	result, err := c.Find(name)
	if err != nil {
		return queryError(err), nil
	}

	return TextResult(report.Find(result)), nil
}

func (s *Server) handleClassify(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := ParseArguments(req)
	if err != nil {
		return ErrorResult(err.Error()), nil
	}

	municipality := stringArg(args, ArgMunicipality)
	validator := stringArg(args, ArgValidator)

	if municipality == "" || validator == "" {
		return ErrorResult("Erro: nome do município e nome do validador são obrigatórios"), nil
	}

	c, errResult := s.loadCatalog(ctx)
	if errResult != nil {
		return errResult, nil
	}

	result, err := c.Classify(municipality, validator)
	if err != nil {
		return queryError(err), nil
	}

	return TextResult(report.Classify(result)), nil
}

func (s *Server) handleList(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := ParseArguments(req)
	if err != nil {
		return ErrorResult(err.Error()), nil
	}

	c, errResult := s.loadCatalog(ctx)
	if errResult != nil {
		return errResult, nil
	}

	state := stringArg(args, ArgState)

	return TextResult(report.Validators(c.ListValidators(state), state)), nil
}

func queryError(err error) *mcp.CallToolResult {
	return ErrorResult("Erro: " + err.Error())
}

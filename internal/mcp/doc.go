// Package mcp serves the municipality catalog as Model Context Protocol tools.
//
// Three read-only tools are registered: buscar_municipio, classificar_validador
// and listar_validadores. The server keeps its own tool registry so the tools
// can also be invoked programmatically, and builds an SDK server for the
// stdio and streamable HTTP transports on demand.
package mcp

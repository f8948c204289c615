// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mlcortez/footprint/internal/contract"
)

// NewMCPServer initializes and configures the Footprint MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Footprint Mining Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: mine_footprint ---
	s.AddTool(mcp.NewTool("mine_footprint",
		mcp.WithDescription("Mine local git repositories and reconstruct the contribution footprint of one author: per-commit churn, language composition, and an active-hours estimate."),
		mcp.WithString("root_path", mcp.Description("Directory under which repositories are discovered (defaults to the configured root).")),
		mcp.WithString("emails", mcp.Description("Comma-separated author emails to attribute (overrides the configured identity).")),
		mcp.WithString("names", mcp.Description("Comma-separated author names to attribute (overrides the configured identity).")),
	), h.handleMineFootprint)

	// --- 2. Tool: list_repositories ---
	s.AddTool(mcp.NewTool("list_repositories",
		mcp.WithDescription("Discover git repository roots under a directory without mining their history."),
		mcp.WithString("root_path", mcp.Description("Directory under which repositories are discovered (defaults to the configured root).")),
	), h.handleListRepositories)

	return s
}

// StartMCPServer starts the Footprint MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}

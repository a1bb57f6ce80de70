// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/huangsam/workscope/internal/contract"
)

// NewMCPServer initializes and configures the Workscope MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient, cache contract.CacheStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Workscope Activity Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		cache:   cache,
	}

	// --- 1. Tool: generate_report ---
	s.AddTool(mcp.NewTool("generate_report",
		mcp.WithDescription("Analyze a workspace's git history and filesystem contents, returning activity metrics and effort estimates as JSON."),
		mcp.WithString("target_path", mcp.Description("Path to the workspace to analyze (defaults to current directory if not specified).")),
		mcp.WithString("period", mcp.Description("Analysis window (day, week, month, all, custom). Defaults to the server's configured period."), mcp.Enum("day", "week", "month", "all", "custom")),
		mcp.WithString("start", mcp.Description("Custom range start (YYYY-MM-DD). Only used with period=custom.")),
		mcp.WithString("end", mcp.Description("Custom range end (YYYY-MM-DD). Only used with period=custom.")),
		mcp.WithString("ref", mcp.Description("Git reference to analyze instead of HEAD.")),
		mcp.WithBoolean("all_branches", mcp.Description("Mine history across all branches.")),
	), h.handleGenerateReport)

	// --- 2. Tool: list_methodologies ---
	s.AddTool(mcp.NewTool("list_methodologies",
		mcp.WithDescription("List the effort estimation methodologies in the active catalog, with factors and references."),
	), h.handleListMethodologies)

	return s
}

// StartMCPServer starts the Workscope MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient, cache contract.CacheStore) error {
	s := NewMCPServer(baseCfg, client, cache)
	return server.ServeStdio(s)
}

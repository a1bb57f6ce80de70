package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/huangsam/workscope/core"
	"github.com/huangsam/workscope/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
	cache   contract.CacheStore
}

func (h *toolHandler) handleGenerateReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	if p := request.GetString("target_path", ""); p != "" {
		contract.RevalidateTarget(ctx, cfg, h.client, p)
	}
	if period := request.GetString("period", ""); period != "" {
		start := request.GetString("start", "")
		end := request.GetString("end", "")
		if err := contract.RevalidateWindow(cfg, period, start, end); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid window parameters: %v", err)), nil
		}
	}
	if ref := request.GetString("ref", ""); ref != "" {
		cfg.Ref = ref
	}
	cfg.AllBranches = request.GetBool("all_branches", cfg.AllBranches)

	report, err := core.BuildReport(ctx, cfg, h.client, h.cache)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report generation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListMethodologies(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(h.baseCfg.Catalog, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

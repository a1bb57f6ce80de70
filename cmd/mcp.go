package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/workscope/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Workscope MCP server",
	Long:  `Launch an MCP server that allows AI agents to generate workspace activity reports via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The protocol owns stdio, so setup must not print progress output.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, gitClient, cacheStore)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

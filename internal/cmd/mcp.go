package cmd

import (
	"github.com/DevSymphony/biome2eslint/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpRegistry string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server to integrate with LLM tools",
	Long: `Start Model Context Protocol (MCP) server.
LLM-based coding tools can convert Biome configurations through stdio.

Tools provided by MCP server:
- convert_biome_config: Convert biome.json contents into eslint.config.mjs
- list_rule_mappings: List Biome rules and their ESLint equivalents

Nothing is written to disk; the generated config is returned to the client.`,
	Example: `  biome2eslint mcp
  biome2eslint mcp --registry rules.yaml`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().StringVar(&mcpRegistry, "registry", "", "YAML rule registry to use instead of the built-in one")
}

func runMCP(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry(mcpRegistry)
	if err != nil {
		return err
	}

	server := mcp.NewServer(reg, logger, version)
	return server.Start(cmd.Context())
}

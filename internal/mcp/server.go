package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DevSymphony/biome2eslint/internal/analyzer"
	"github.com/DevSymphony/biome2eslint/internal/biome"
	"github.com/DevSymphony/biome2eslint/internal/converter"
	"github.com/DevSymphony/biome2eslint/pkg/schema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server exposes the conversion over the Model Context Protocol.
type Server struct {
	registry *analyzer.Registry
	logger   *slog.Logger
	version  string
}

// NewServer creates an MCP server backed by registry.
func NewServer(registry *analyzer.Registry, logger *slog.Logger, version string) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		registry: registry,
		logger:   logger,
		version:  version,
	}
}

// ConvertInput represents the input schema for the convert_biome_config tool (go-sdk).
type ConvertInput struct {
	Config   string `json:"config" jsonschema:"Contents of biome.json or biome.jsonc"`
	Filename string `json:"filename,omitempty" jsonschema:"Name of the generated file (optional, default eslint.config.mjs)"`
}

// ListRulesInput represents the input schema for the list_rule_mappings tool (go-sdk).
type ListRulesInput struct {
	Group      string `json:"group,omitempty" jsonschema:"Only list rules of this Biome group (optional). Example: style"`
	MappedOnly bool   `json:"mapped_only,omitempty" jsonschema:"Only list rules that have an ESLint equivalent (optional)"`
}

// ListRulesOutput is the structured result of list_rule_mappings.
type ListRulesOutput struct {
	Rules []schema.RuleMapping `json:"rules"`
}

// Start serves MCP over stdio until the client disconnects.
func (s *Server) Start(ctx context.Context) error {
	fmt.Fprintln(os.Stderr, "biome2eslint MCP server started (stdio mode)")
	fmt.Fprintln(os.Stderr, "Available tools: convert_biome_config, list_rule_mappings")

	return s.newSDKServer().Run(ctx, &sdkmcp.StdioTransport{})
}

func (s *Server) newSDKServer() *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "biome2eslint",
		Version: s.version,
	}, nil)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "convert_biome_config",
		Description: "Convert a Biome configuration into an equivalent ESLint flat config (eslint.config.mjs). Returns the generated file and the npm packages it imports. Nothing is written to disk.",
	}, s.handleConvert)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_rule_mappings",
		Description: "List Biome lint rules with their default severity and ESLint equivalent.",
	}, s.handleListRules)

	return server
}

func (s *Server) handleConvert(ctx context.Context, req *sdkmcp.CallToolRequest, input ConvertInput) (*sdkmcp.CallToolResult, schema.ConversionSummary, error) {
	if strings.TrimSpace(input.Config) == "" {
		return nil, schema.ConversionSummary{}, fmt.Errorf("config is required")
	}

	cfg, err := biome.Parse([]byte(input.Config))
	if err != nil {
		return nil, schema.ConversionSummary{}, fmt.Errorf("failed to parse biome configuration: %w", err)
	}

	out, err := converter.NewConverter(s.registry, s.logger).WithFilename(input.Filename).Convert(cfg)
	if err != nil {
		return nil, schema.ConversionSummary{}, err
	}

	summary := out.Summary()
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: convertText(summary)}},
	}, summary, nil
}

func convertText(s schema.ConversionSummary) string {
	if s.LinterDisabled {
		return "The Biome linter is disabled in this configuration; no ESLint config was generated."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generated %s with %d rule(s).\n\n", s.Filename, s.RuleCount)
	b.WriteString(s.Content)
	fmt.Fprintf(&b, "\nInstall: npm install -D %s\n", strings.Join(s.Packages, " "))
	if len(s.UnwiredSources) > 0 {
		fmt.Fprintf(&b, "Warning: no plugin import is known for %s; register those plugins manually.\n", strings.Join(s.UnwiredSources, ", "))
	}
	return b.String()
}

func (s *Server) handleListRules(ctx context.Context, req *sdkmcp.CallToolRequest, input ListRulesInput) (*sdkmcp.CallToolResult, ListRulesOutput, error) {
	if input.Group != "" && !s.registry.HasGroup(input.Group) {
		return nil, ListRulesOutput{}, fmt.Errorf("unknown group %q (available: %s)", input.Group, strings.Join(s.registry.Groups(), ", "))
	}

	out := ListRulesOutput{Rules: []schema.RuleMapping{}}
	for _, m := range converter.Mappings(s.registry) {
		if input.Group != "" && m.Group != input.Group {
			continue
		}
		if input.MappedOnly && m.ESLintRule == "" {
			continue
		}
		out.Rules = append(out.Rules, m)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d rule(s):\n", len(out.Rules))
	for _, m := range out.Rules {
		target := m.ESLintRule
		if target == "" {
			target = "(no equivalent)"
		}
		fmt.Fprintf(&b, "  %s/%s [%s] -> %s\n", m.Group, m.Rule, m.Severity, target)
	}

	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: b.String()}},
	}, out, nil
}

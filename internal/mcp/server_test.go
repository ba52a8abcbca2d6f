package mcp

import (
	"context"
	"testing"

	"github.com/DevSymphony/biome2eslint/internal/analyzer"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg, err := analyzer.Builtin()
	require.NoError(t, err)
	return NewServer(reg, nil, "test")
}

func resultText(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleConvert(t *testing.T) {
	s := newTestServer(t)

	res, summary, err := s.handleConvert(context.Background(), nil, ConvertInput{
		Config: `{
			// jsonc is fine
			"linter": { "rules": { "recommended": false, "suspicious": { "noExplicitAny": "warn", "noDebugger": "error" } } }
		}`,
	})
	require.NoError(t, err)

	assert.Equal(t, "eslint.config.mjs", summary.Filename)
	assert.Equal(t, 2, summary.RuleCount)
	assert.Equal(t, []string{"eslint", "typescript-eslint"}, summary.Packages)
	assert.Contains(t, summary.Content, `import tseslint from "typescript-eslint";`)
	assert.Contains(t, summary.Content, `"@typescript-eslint/no-explicit-any": "warn"`)
	assert.Contains(t, summary.Content, `"no-debugger": "error"`)

	text := resultText(t, res)
	assert.Contains(t, text, "Generated eslint.config.mjs with 2 rule(s).")
	assert.Contains(t, text, "npm install -D eslint typescript-eslint")
}

func TestHandleConvert_UnwiredWarning(t *testing.T) {
	s := newTestServer(t)

	res, summary, err := s.handleConvert(context.Background(), nil, ConvertInput{
		Config:   `{"linter": {"rules": {"recommended": false, "a11y": {"useAltText": "error"}}}}`,
		Filename: "out.mjs",
	})
	require.NoError(t, err)

	assert.Equal(t, "out.mjs", summary.Filename)
	assert.Equal(t, []string{"eslintJsxA11y"}, summary.UnwiredSources)
	assert.Contains(t, resultText(t, res), "no plugin import is known for eslintJsxA11y")
}

func TestHandleConvert_LinterDisabled(t *testing.T) {
	s := newTestServer(t)

	res, summary, err := s.handleConvert(context.Background(), nil, ConvertInput{Config: `{"linter": {"enabled": false}}`})
	require.NoError(t, err)
	assert.True(t, summary.LinterDisabled)
	assert.Empty(t, summary.Content)
	assert.Contains(t, resultText(t, res), "disabled")
}

func TestHandleConvert_Errors(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleConvert(context.Background(), nil, ConvertInput{})
	assert.Error(t, err)

	_, _, err = s.handleConvert(context.Background(), nil, ConvertInput{Config: `{"linter": `})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestHandleListRules(t *testing.T) {
	s := newTestServer(t)

	res, out, err := s.handleListRules(context.Background(), nil, ListRulesInput{Group: "performance", MappedOnly: true})
	require.NoError(t, err)

	require.NotEmpty(t, out.Rules)
	for _, m := range out.Rules {
		assert.Equal(t, "performance", m.Group)
		assert.NotEmpty(t, m.ESLintRule)
	}
	assert.Contains(t, resultText(t, res), "performance/noBarrelFile [warning] -> barrel-files/avoid-barrel-files")
}

func TestHandleListRules_All(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleListRules(context.Background(), nil, ListRulesInput{})
	require.NoError(t, err)
	assert.Len(t, out.Rules, s.registry.Len())
}

func TestHandleListRules_UnknownGroup(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleListRules(context.Background(), nil, ListRulesInput{Group: "styling"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "styling")
}

func TestNewSDKServer(t *testing.T) {
	assert.NotNil(t, newTestServer(t).newSDKServer())
}

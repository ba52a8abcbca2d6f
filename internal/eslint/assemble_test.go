package eslint

import (
	"testing"

	"github.com/DevSymphony/biome2eslint/internal/analyzer"
	"github.com/DevSymphony/biome2eslint/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		sev  analyzer.Severity
		want string
	}{
		{analyzer.Fatal, "error"},
		{analyzer.Error, "error"},
		{analyzer.Warning, "warn"},
		{analyzer.Information, "warn"},
		{analyzer.Hint, "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.sev.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.sev))
		})
	}
}

// configObject digs the object passed to defineConfig out of the module.
func configObject(t *testing.T, m *Module) (plugins, rules *Object) {
	t.Helper()
	call, ok := m.Default.(*Call)
	require.True(t, ok)
	assert.Equal(t, Ident(DefineConfig), call.Callee)
	require.Len(t, call.Args, 1)

	obj, ok := call.Args[0].(*Object)
	require.True(t, ok)
	require.Len(t, obj.Members, 2)
	assert.Equal(t, "plugins", obj.Members[0].Key)
	assert.Equal(t, "rules", obj.Members[1].Key)

	plugins, ok = obj.Members[0].Value.(*Object)
	require.True(t, ok)
	rules, ok = obj.Members[1].Value.(*Object)
	require.True(t, ok)
	return plugins, rules
}

func TestAssemble_Empty(t *testing.T) {
	cfg := Assemble(nil, nil)

	require.Len(t, cfg.Module.Imports, 1)
	assert.Equal(t, Import{Named: []string{"defineConfig"}, From: "eslint/config"}, cfg.Module.Imports[0])

	plugins, rules := configObject(t, cfg.Module)
	assert.Empty(t, plugins.Members)
	assert.Empty(t, rules.Members)
	assert.Equal(t, []string{"eslint"}, cfg.Packages)
	assert.Empty(t, cfg.Unwired)
}

func TestAssemble_CoreRuleNeedsNoPlugin(t *testing.T) {
	cfg := Assemble(
		map[string]analyzer.Severity{"no-var": analyzer.Error},
		[]source.Kind{source.Eslint},
	)

	require.Len(t, cfg.Module.Imports, 1)
	plugins, rules := configObject(t, cfg.Module)
	assert.Empty(t, plugins.Members)
	assert.Equal(t, []Member{{Key: "no-var", Value: String("error")}}, rules.Members)
	assert.Empty(t, cfg.Unwired)
}

func TestAssemble_TypeScriptPlugin(t *testing.T) {
	cfg := Assemble(
		map[string]analyzer.Severity{
			"no-var":                             analyzer.Error,
			"@typescript-eslint/no-explicit-any": analyzer.Warning,
		},
		[]source.Kind{source.EslintTypeScript, source.Eslint, source.EslintTypeScript},
	)

	// Provider imports come first, defineConfig last
	assert.Equal(t, []Import{
		{Default: "tseslint", From: "typescript-eslint"},
		{Named: []string{"defineConfig"}, From: "eslint/config"},
	}, cfg.Module.Imports)

	plugins, rules := configObject(t, cfg.Module)
	assert.Equal(t, []Member{{Key: "@typescript-eslint", Value: Ident("tseslint")}}, plugins.Members)
	assert.Equal(t, []Member{
		{Key: "@typescript-eslint/no-explicit-any", Value: String("warn")},
		{Key: "no-var", Value: String("error")},
	}, rules.Members)
	assert.Equal(t, []string{"eslint", "typescript-eslint"}, cfg.Packages)
}

func TestAssemble_UnwiredSourcesKeepRules(t *testing.T) {
	cfg := Assemble(
		map[string]analyzer.Severity{
			"unicorn/no-for-loop":        analyzer.Information,
			"jsx-a11y/alt-text":          analyzer.Error,
			"react-hooks/rules-of-hooks": analyzer.Error,
		},
		[]source.Kind{source.EslintUnicorn, source.EslintJsxA11y, source.EslintReactHooks},
	)

	// No import is invented for sources without a binding
	require.Len(t, cfg.Module.Imports, 1)
	plugins, rules := configObject(t, cfg.Module)
	assert.Empty(t, plugins.Members)
	assert.Len(t, rules.Members, 3)

	assert.Equal(t, []source.Kind{source.EslintJsxA11y, source.EslintReactHooks, source.EslintUnicorn}, cfg.Unwired)
}

func TestAssemble_RulesSortedLexicographically(t *testing.T) {
	cfg := Assemble(map[string]analyzer.Severity{
		"no-var":      analyzer.Error,
		"curly":       analyzer.Hint,
		"eqeqeq":      analyzer.Error,
		"no-debugger": analyzer.Fatal,
	}, []source.Kind{source.Eslint})

	_, rules := configObject(t, cfg.Module)
	var keys []string
	for _, m := range rules.Members {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"curly", "eqeqeq", "no-debugger", "no-var"}, keys)
}

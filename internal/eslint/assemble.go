package eslint

import (
	"sort"

	"github.com/DevSymphony/biome2eslint/internal/analyzer"
	"github.com/DevSymphony/biome2eslint/internal/source"
)

const (
	// ConfigModule is the entry point exporting defineConfig.
	ConfigModule = "eslint/config"
	// DefineConfig is the helper wrapping the exported config.
	DefineConfig = "defineConfig"
	// CorePackage is the npm package every generated config depends on.
	CorePackage = "eslint"
)

// Config is an assembled configuration module plus what the caller needs to
// report about it.
type Config struct {
	Module *Module

	// Packages lists the npm packages the module imports, core first.
	Packages []string

	// Unwired lists the sources that contributed rules but have no known
	// plugin import. Their rules are emitted without a registered plugin.
	Unwired []source.Kind
}

// Level maps an analyzer severity onto ESLint's two active levels.
func Level(sev analyzer.Severity) string {
	switch sev {
	case analyzer.Error, analyzer.Fatal:
		return "error"
	default:
		return "warn"
	}
}

// Assemble builds the configuration module for the resolved rules.
//
// Plugins are registered for every source with an import binding, in source
// order. Rules are keyed by their namespaced ESLint name, in lexicographic
// order. Both objects are always present, possibly empty.
func Assemble(rules map[string]analyzer.Severity, kinds []source.Kind) *Config {
	cfg := &Config{
		Packages: []string{CorePackage},
	}

	var imports []Import
	plugins := &Object{}

	for _, kind := range dedupeKinds(kinds) {
		// Core rules need no plugin
		if kind == source.Eslint {
			continue
		}

		binding, ok := kind.ImportBinding()
		if !ok {
			cfg.Unwired = append(cfg.Unwired, kind)
			continue
		}

		namespace, ok := kind.Namespace()
		if !ok {
			cfg.Unwired = append(cfg.Unwired, kind)
			continue
		}

		imports = append(imports, Import{Default: binding.Identifier, From: binding.Module})
		plugins.Members = append(plugins.Members, Member{Key: namespace, Value: Ident(binding.Identifier)})
		cfg.Packages = append(cfg.Packages, binding.Module)
	}

	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)

	rulesObj := &Object{Members: make([]Member, 0, len(names))}
	for _, name := range names {
		rulesObj.Members = append(rulesObj.Members, Member{Key: name, Value: String(Level(rules[name]))})
	}

	imports = append(imports, Import{Named: []string{DefineConfig}, From: ConfigModule})

	cfg.Module = &Module{
		Imports: imports,
		Default: &Call{
			Callee: Ident(DefineConfig),
			Args: []Expr{&Object{Members: []Member{
				{Key: "plugins", Value: plugins},
				{Key: "rules", Value: rulesObj},
			}}},
		},
	}

	return cfg
}

func dedupeKinds(kinds []source.Kind) []source.Kind {
	seen := make(map[source.Kind]struct{}, len(kinds))
	out := make([]source.Kind, 0, len(kinds))
	for _, k := range kinds {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	source.SortKinds(out)
	return out
}

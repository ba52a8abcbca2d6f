package converter

import (
	"fmt"
	"log/slog"

	"github.com/DevSymphony/biome2eslint/internal/analyzer"
	"github.com/DevSymphony/biome2eslint/internal/biome"
	"github.com/DevSymphony/biome2eslint/internal/eslint"
	"github.com/DevSymphony/biome2eslint/internal/source"
	"github.com/DevSymphony/biome2eslint/pkg/schema"
)

// DefaultFilename is the name of the generated ESLint configuration.
const DefaultFilename = "eslint.config.mjs"

// Converter turns a Biome configuration into an ESLint flat config
type Converter struct {
	registry *analyzer.Registry
	logger   *slog.Logger
	filename string
}

// NewConverter creates a new converter. A nil logger discards output.
func NewConverter(registry *analyzer.Registry, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Converter{
		registry: registry,
		logger:   logger,
		filename: DefaultFilename,
	}
}

// WithFilename overrides the output filename.
func (c *Converter) WithFilename(name string) *Converter {
	if name != "" {
		c.filename = name
	}
	return c
}

// Output is the result of one conversion
type Output struct {
	Filename string
	Content  []byte // nil when the linter is disabled

	Packages []string
	Unwired  []source.Kind
	Resolved *Resolved

	// LinterDisabled is set when biome.json turns the linter off; nothing
	// is generated in that case.
	LinterDisabled bool
}

// Convert runs the whole pipeline: enabled rules, resolution, assembly and
// printing.
func (c *Converter) Convert(cfg *biome.Configuration) (*Output, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	if c.registry == nil {
		return nil, fmt.Errorf("rule registry is nil")
	}

	if !cfg.IsLinterEnabled() {
		c.logger.Info("linter is disabled in biome configuration, nothing to convert")
		return &Output{Filename: c.filename, LinterDisabled: true}, nil
	}

	enabled := cfg.EnabledRules(c.registry)

	resolved, err := Resolve(c.registry, cfg.LinterRules(), enabled, c.logger)
	if err != nil {
		return nil, err
	}

	assembled := eslint.Assemble(resolved.Rules, resolved.SourceKinds())

	for _, kind := range assembled.Unwired {
		ns, _ := kind.Namespace()
		c.logger.Warn("no plugin import known for source; its rules reference an unregistered plugin",
			"source", kind.String(),
			"namespace", ns,
		)
	}

	c.logger.Info("resolved rules",
		"enabled", resolved.Processed,
		"mapped", len(resolved.Rules),
		"unmapped", len(resolved.Unmapped),
		"plugins", len(assembled.Packages)-1,
	)

	return &Output{
		Filename: c.filename,
		Content:  eslint.Print(assembled.Module),
		Packages: assembled.Packages,
		Unwired:  assembled.Unwired,
		Resolved: resolved,
	}, nil
}

// Summary converts the output to its wire representation.
func (o *Output) Summary() schema.ConversionSummary {
	s := schema.ConversionSummary{
		Filename:       o.Filename,
		Content:        string(o.Content),
		Packages:       o.Packages,
		LinterDisabled: o.LinterDisabled,
	}
	if o.Resolved != nil {
		s.RuleCount = len(o.Resolved.Rules)
	}
	for _, k := range o.Unwired {
		s.UnwiredSources = append(s.UnwiredSources, k.String())
	}
	return s
}

// Mappings lists how every registry rule translates, in walk order.
func Mappings(reg *analyzer.Registry) []schema.RuleMapping {
	var out []schema.RuleMapping
	reg.Visit(func(group string, meta analyzer.RuleMetadata) {
		m := schema.RuleMapping{
			Group:       group,
			Rule:        meta.Name,
			Severity:    meta.Severity.String(),
			Recommended: meta.Recommended,
		}
		if src, ok := meta.FirstSource(); ok {
			m.Source = src.Source
			if kind, err := source.Classify(src.Source); err == nil {
				m.ESLintRule = kind.NamespacedRuleName(src.Rule)
			}
		}
		out = append(out, m)
	})
	return out
}

package converter

import (
	"fmt"
	"log/slog"

	"github.com/DevSymphony/biome2eslint/internal/analyzer"
	"github.com/DevSymphony/biome2eslint/internal/biome"
	"github.com/DevSymphony/biome2eslint/internal/source"
)

// Resolved holds the ESLint rules derived from the enabled Biome rules.
type Resolved struct {
	// Rules maps namespaced ESLint rule names to severity.
	Rules map[string]analyzer.Severity

	// Sources holds every source kind that contributed a rule.
	Sources map[source.Kind]struct{}

	// Processed counts enabled rules seen during the walk.
	Processed int

	// Unmapped lists enabled rules without an ESLint equivalent.
	Unmapped []analyzer.RuleKey
}

// SourceKinds returns the contributing sources in kind order.
func (r *Resolved) SourceKinds() []source.Kind {
	kinds := make([]source.Kind, 0, len(r.Sources))
	for k := range r.Sources {
		kinds = append(kinds, k)
	}
	source.SortKinds(kinds)
	return kinds
}

// Resolve walks the registry and maps every enabled rule onto its first
// external equivalent.
//
// Groups and rules are visited in lexicographic order. When two Biome rules
// map onto the same ESLint rule the later one wins. The only error is a
// source tag unknown to package source.
func Resolve(reg *analyzer.Registry, rules *biome.Rules, enabled analyzer.RuleSet, logger *slog.Logger) (*Resolved, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	res := &Resolved{
		Rules:   make(map[string]analyzer.Severity),
		Sources: make(map[source.Kind]struct{}),
	}

	for _, group := range reg.Groups() {
		logger.Debug("resolving group", "group", group)

		for _, meta := range reg.Rules(group) {
			if !enabled.Contains(group, meta.Name) {
				continue
			}
			res.Processed++

			severity := rules.EffectiveSeverity(group, meta.Name, meta.Severity)

			src, ok := meta.FirstSource()
			if !ok {
				logger.Debug("no equivalent", "group", group, "rule", meta.Name)
				res.Unmapped = append(res.Unmapped, analyzer.RuleKey{Group: group, Rule: meta.Name})
				continue
			}

			kind, err := source.Classify(src.Source)
			if err != nil {
				return nil, fmt.Errorf("rule %s/%s: %w", group, meta.Name, err)
			}

			name := kind.NamespacedRuleName(src.Rule)
			logger.Debug("mapped",
				"group", group,
				"rule", meta.Name,
				"eslint", name,
				"severity", severity.String(),
			)

			res.Sources[kind] = struct{}{}
			res.Rules[name] = severity
		}
	}

	return res, nil
}

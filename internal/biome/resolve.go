package biome

import (
	"github.com/DevSymphony/biome2eslint/internal/analyzer"
)

// EnabledRules computes which registry rules the configuration turns on.
// Later layers win: recommended preset, then group values, then rule values.
func (c *Configuration) EnabledRules(reg *analyzer.Registry) analyzer.RuleSet {
	rules := c.LinterRules()
	set := analyzer.RuleSet{}

	recommended := true
	if rules != nil && rules.Recommended != nil {
		recommended = *rules.Recommended
	}

	for _, group := range reg.Groups() {
		groupCfg, configured := rules.Group(group)

		groupRecommended := recommended
		if configured && groupCfg.Recommended != nil {
			groupRecommended = *groupCfg.Recommended
		}

		for _, meta := range reg.Rules(group) {
			enabled := groupRecommended && meta.Recommended

			if configured {
				if groupCfg.IsPlain() {
					enabled = groupCfg.Plain.Enabled()
				} else if ruleCfg, ok := groupCfg.Rules[meta.Name]; ok {
					enabled = ruleCfg.Level.Enabled()
				}
			}

			if enabled {
				set.Add(group, meta.Name)
			}
		}
	}

	return set
}

// ConfiguredSeverity returns the severity the configuration assigns to
// group/rule: the rule's own level when the group is an object, else the
// group's plain level. ok is false when neither carries a severity.
func (r *Rules) ConfiguredSeverity(group, rule string) (analyzer.Severity, bool) {
	groupCfg, ok := r.Group(group)
	if !ok {
		return 0, false
	}

	if groupCfg.IsPlain() {
		return groupCfg.Plain.Severity()
	}

	if ruleCfg, ok := groupCfg.Rules[rule]; ok {
		return ruleCfg.Level.Severity()
	}
	return 0, false
}

// EffectiveSeverity is ConfiguredSeverity falling back to def.
func (r *Rules) EffectiveSeverity(group, rule string, def analyzer.Severity) analyzer.Severity {
	if sev, ok := r.ConfiguredSeverity(group, rule); ok {
		return sev
	}
	return def
}

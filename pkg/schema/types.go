package schema

// RegistryDocument represents the on-disk rule registry (YAML)
type RegistryDocument struct {
	Version string                          `yaml:"version,omitempty" json:"version,omitempty"`
	Groups  map[string]map[string]RuleEntry `yaml:"groups" json:"groups"`
}

// RuleEntry represents a single analyzer rule in the registry document
type RuleEntry struct {
	Severity    string        `yaml:"severity" json:"severity"`                           // hint, info, warn, error, fatal
	Recommended bool          `yaml:"recommended,omitempty" json:"recommended,omitempty"` // enabled by the recommended preset
	Sources     []SourceEntry `yaml:"sources,omitempty" json:"sources,omitempty"`         // first entry is the primary equivalent
}

// SourceEntry represents one external rule equivalent
type SourceEntry struct {
	Source string `yaml:"source" json:"source"` // provider tag, e.g. "eslintTypeScript"
	Rule   string `yaml:"rule" json:"rule"`     // rule name without namespace
}

// RuleMapping represents how one Biome rule translates to ESLint
type RuleMapping struct {
	Group       string `json:"group"`
	Rule        string `json:"rule"`
	Severity    string `json:"severity"`
	Recommended bool   `json:"recommended,omitempty"`
	Source      string `json:"source,omitempty"`     // provider tag of the first equivalent
	ESLintRule  string `json:"eslintRule,omitempty"` // namespaced ESLint rule name
}

// ConversionSummary represents the outcome of one conversion
type ConversionSummary struct {
	Filename       string   `json:"filename"`
	Content        string   `json:"content"`
	Packages       []string `json:"packages"`                 // npm packages the config imports
	UnwiredSources []string `json:"unwiredSources,omitempty"` // providers referenced without a plugin import
	RuleCount      int      `json:"ruleCount"`
	LinterDisabled bool     `json:"linterDisabled,omitempty"`
}

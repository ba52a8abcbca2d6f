package analyzer

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/DevSymphony/biome2eslint/pkg/schema"
	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinRegistry []byte

// Builtin returns the registry shipped with the binary.
func Builtin() (*Registry, error) {
	reg, err := LoadRegistry(builtinRegistry)
	if err != nil {
		return nil, fmt.Errorf("failed to load builtin registry: %w", err)
	}
	return reg, nil
}

// LoadRegistryFile reads a YAML registry document from path.
func LoadRegistryFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}
	return LoadRegistry(data)
}

// LoadRegistry parses a YAML registry document.
func LoadRegistry(data []byte) (*Registry, error) {
	var doc schema.RegistryDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid registry: %w", err)
	}
	return FromDocument(&doc)
}

// FromDocument builds a registry from its wire representation.
func FromDocument(doc *schema.RegistryDocument) (*Registry, error) {
	reg := NewRegistry()

	for group, rules := range doc.Groups {
		for name, entry := range rules {
			sev, err := ParseSeverity(entry.Severity)
			if err != nil {
				return nil, fmt.Errorf("rule %s/%s: %w", group, name, err)
			}

			meta := RuleMetadata{
				Name:        name,
				Severity:    sev,
				Recommended: entry.Recommended,
			}
			for i, src := range entry.Sources {
				if src.Source == "" || src.Rule == "" {
					return nil, fmt.Errorf("rule %s/%s: source %d needs both source and rule", group, name, i)
				}
				meta.Sources = append(meta.Sources, RuleSource{Source: src.Source, Rule: src.Rule})
			}

			if err := reg.Register(group, meta); err != nil {
				return nil, err
			}
		}
	}

	return reg, nil
}

// ToDocument converts the registry back to its wire representation.
func (r *Registry) ToDocument() *schema.RegistryDocument {
	doc := &schema.RegistryDocument{
		Version: "1",
		Groups:  make(map[string]map[string]schema.RuleEntry, len(r.groups)),
	}

	r.Visit(func(group string, meta RuleMetadata) {
		rules, ok := doc.Groups[group]
		if !ok {
			rules = make(map[string]schema.RuleEntry)
			doc.Groups[group] = rules
		}

		entry := schema.RuleEntry{
			Severity:    meta.Severity.String(),
			Recommended: meta.Recommended,
		}
		for _, src := range meta.Sources {
			entry.Sources = append(entry.Sources, schema.SourceEntry{Source: src.Source, Rule: src.Rule})
		}
		rules[meta.Name] = entry
	})

	return doc
}

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/DevSymphony/biome2eslint/internal/converter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	rulesGroup    string
	rulesMapped   bool
	rulesYAML     bool
	rulesRegistry string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List Biome rules and their ESLint equivalents",
	Long: `List every rule of the registry with its default severity and the ESLint
rule it converts to. Only the first equivalent of a rule is used.`,
	Example: `  biome2eslint rules
  biome2eslint rules --group suspicious --mapped
  biome2eslint rules --yaml > rules.yaml`,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().StringVarP(&rulesGroup, "group", "g", "", "only list rules of this group")
	rulesCmd.Flags().BoolVar(&rulesMapped, "mapped", false, "only list rules that have an ESLint equivalent")
	rulesCmd.Flags().BoolVar(&rulesYAML, "yaml", false, "print the registry as YAML (usable with --registry)")
	rulesCmd.Flags().StringVar(&rulesRegistry, "registry", "", "YAML rule registry to use instead of the built-in one")
}

func runRules(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry(rulesRegistry)
	if err != nil {
		return err
	}

	if rulesGroup != "" && !reg.HasGroup(rulesGroup) {
		return fmt.Errorf("unknown group %q (available: %s)", rulesGroup, strings.Join(reg.Groups(), ", "))
	}

	if rulesYAML {
		doc := reg.ToDocument()
		for group, rules := range doc.Groups {
			if rulesGroup != "" && group != rulesGroup {
				delete(doc.Groups, group)
				continue
			}
			if !rulesMapped {
				continue
			}
			for name, entry := range rules {
				if len(entry.Sources) == 0 {
					delete(rules, name)
				}
			}
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode registry: %w", err)
		}
		return enc.Close()
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tRULE\tSEVERITY\tRECOMMENDED\tESLINT")
	for _, m := range converter.Mappings(reg) {
		if rulesGroup != "" && m.Group != rulesGroup {
			continue
		}
		if rulesMapped && m.ESLintRule == "" {
			continue
		}

		target := m.ESLintRule
		if target == "" {
			target = "-"
		}
		recommended := ""
		if m.Recommended {
			recommended = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.Group, m.Rule, m.Severity, recommended, target)
	}
	return w.Flush()
}

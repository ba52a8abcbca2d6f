// Package analyzer holds the rule registry of the Biome analyzer: every lint
// rule grouped by category, with its default severity and the external rules
// it is equivalent to.
package analyzer

import (
	"fmt"
	"sort"
)

// ===== Errors =====

// errEmptyName is returned when registering a rule without a group or name.
var errEmptyName = fmt.Errorf("rule group and name must not be empty")

// DuplicateRuleError is returned when a rule is registered twice in a group.
type DuplicateRuleError struct {
	Group string
	Rule  string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("rule already registered: %s/%s", e.Group, e.Rule)
}

// ===== Types =====

// RuleSource is one "same as" reference from a Biome rule to an external rule.
// Source is the provider tag (see package source), Rule the un-namespaced
// external rule name.
type RuleSource struct {
	Source string `json:"source"`
	Rule   string `json:"rule"`
}

// RuleMetadata describes one analyzer rule.
type RuleMetadata struct {
	Name        string       `json:"name"`
	Severity    Severity     `json:"severity"`
	Recommended bool         `json:"recommended"`
	Sources     []RuleSource `json:"sources,omitempty"`
}

// FirstSource returns the primary external equivalent of the rule, if any.
// Secondary references are informational only.
func (m RuleMetadata) FirstSource() (RuleSource, bool) {
	if len(m.Sources) == 0 {
		return RuleSource{}, false
	}
	return m.Sources[0], true
}

// RuleKey identifies a rule by group and name.
type RuleKey struct {
	Group string
	Rule  string
}

func (k RuleKey) String() string {
	return k.Group + "/" + k.Rule
}

// RuleSet is a set of rule keys.
type RuleSet map[RuleKey]struct{}

// Add inserts group/rule into the set.
func (s RuleSet) Add(group, rule string) {
	s[RuleKey{Group: group, Rule: rule}] = struct{}{}
}

// Remove deletes group/rule from the set.
func (s RuleSet) Remove(group, rule string) {
	delete(s, RuleKey{Group: group, Rule: rule})
}

// Contains reports whether group/rule is in the set.
func (s RuleSet) Contains(group, rule string) bool {
	_, ok := s[RuleKey{Group: group, Rule: rule}]
	return ok
}

// Keys returns the members sorted by group, then rule.
func (s RuleSet) Keys() []RuleKey {
	keys := make([]RuleKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Group != keys[j].Group {
			return keys[i].Group < keys[j].Group
		}
		return keys[i].Rule < keys[j].Rule
	})
	return keys
}

// ===== Registry =====

// Registry maps group name -> rule name -> metadata.
type Registry struct {
	groups map[string]map[string]RuleMetadata
	count  int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		groups: make(map[string]map[string]RuleMetadata),
	}
}

// Register adds a rule to group.
func (r *Registry) Register(group string, meta RuleMetadata) error {
	if group == "" || meta.Name == "" {
		return errEmptyName
	}

	rules, ok := r.groups[group]
	if !ok {
		rules = make(map[string]RuleMetadata)
		r.groups[group] = rules
	}

	if _, exists := rules[meta.Name]; exists {
		return &DuplicateRuleError{Group: group, Rule: meta.Name}
	}

	rules[meta.Name] = meta
	r.count++
	return nil
}

// Groups returns all group names in lexicographic order.
func (r *Registry) Groups() []string {
	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rules returns the rules of group in lexicographic order of name.
func (r *Registry) Rules(group string) []RuleMetadata {
	rules := r.groups[group]
	out := make([]RuleMetadata, 0, len(rules))
	for _, meta := range rules {
		out = append(out, meta)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the metadata of group/rule.
func (r *Registry) Lookup(group, rule string) (RuleMetadata, bool) {
	meta, ok := r.groups[group][rule]
	return meta, ok
}

// HasGroup reports whether group has at least one rule.
func (r *Registry) HasGroup(group string) bool {
	_, ok := r.groups[group]
	return ok
}

// Len returns the total number of registered rules.
func (r *Registry) Len() int {
	return r.count
}

// Visit calls fn for every rule, groups and rules in lexicographic order.
func (r *Registry) Visit(fn func(group string, meta RuleMetadata)) {
	for _, group := range r.Groups() {
		for _, meta := range r.Rules(group) {
			fn(group, meta)
		}
	}
}

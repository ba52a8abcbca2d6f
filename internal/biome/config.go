// Package biome loads the linter section of a Biome configuration file and
// answers two questions about it: which rules are enabled, and at which
// severity.
package biome

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/DevSymphony/biome2eslint/internal/analyzer"
)

// InvalidValueError reports a configuration value outside its allowed set.
type InvalidValueError struct {
	Path  string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q at %s (expected one of off, on, info, warn, error)", e.Value, e.Path)
}

// Level is the plain value accepted for a group or a rule.
type Level string

const (
	LevelOff   Level = "off"
	LevelOn    Level = "on"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

func parseLevel(path, s string) (Level, error) {
	switch l := Level(s); l {
	case LevelOff, LevelOn, LevelInfo, LevelWarn, LevelError:
		return l, nil
	default:
		return "", &InvalidValueError{Path: path, Value: s}
	}
}

// Enabled reports whether the level turns the rule (or group) on.
func (l Level) Enabled() bool {
	return l != LevelOff
}

// Severity returns the severity carried by the level. "on" and "off" carry
// none: "on" keeps the rule's default.
func (l Level) Severity() (analyzer.Severity, bool) {
	switch l {
	case LevelError:
		return analyzer.Error, true
	case LevelWarn:
		return analyzer.Warning, true
	case LevelInfo:
		return analyzer.Information, true
	default:
		return 0, false
	}
}

// Configuration is the subset of biome.json this tool understands.
type Configuration struct {
	Schema string               `json:"$schema,omitempty"`
	Linter *LinterConfiguration `json:"linter,omitempty"`
}

// LinterConfiguration is the "linter" section.
type LinterConfiguration struct {
	Enabled *bool  `json:"enabled,omitempty"`
	Rules   *Rules `json:"rules,omitempty"`
}

// IsLinterEnabled reports whether the linter is on. Biome enables it unless
// told otherwise.
func (c *Configuration) IsLinterEnabled() bool {
	if c == nil || c.Linter == nil || c.Linter.Enabled == nil {
		return true
	}
	return *c.Linter.Enabled
}

// LinterRules returns the rules section, or nil when absent.
func (c *Configuration) LinterRules() *Rules {
	if c == nil || c.Linter == nil {
		return nil
	}
	return c.Linter.Rules
}

// Rules is "linter.rules": the recommended switch plus one entry per group.
type Rules struct {
	Recommended *bool
	Groups      map[string]GroupConfiguration
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rules) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("linter.rules: %w", err)
	}

	r.Groups = make(map[string]GroupConfiguration, len(raw))
	for key, value := range raw {
		if key == "recommended" {
			var b bool
			if err := json.Unmarshal(value, &b); err != nil {
				return fmt.Errorf("linter.rules.recommended: %w", err)
			}
			r.Recommended = &b
			continue
		}

		group, err := parseGroup("linter.rules."+key, value)
		if err != nil {
			return err
		}
		r.Groups[key] = group
	}
	return nil
}

// Group returns the configuration of a group.
func (r *Rules) Group(name string) (GroupConfiguration, bool) {
	if r == nil {
		return GroupConfiguration{}, false
	}
	g, ok := r.Groups[name]
	return g, ok
}

// GroupConfiguration is either a plain level applied to the whole group or an
// object with per-rule entries.
type GroupConfiguration struct {
	Plain       Level // set when the group is configured with a single value
	Recommended *bool
	Rules       map[string]RuleConfiguration
}

// IsPlain reports whether the group was configured with a single value.
func (g GroupConfiguration) IsPlain() bool {
	return g.Plain != ""
}

func parseGroup(path string, data []byte) (GroupConfiguration, error) {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return GroupConfiguration{}, fmt.Errorf("%s: %w", path, err)
		}
		level, err := parseLevel(path, s)
		if err != nil {
			return GroupConfiguration{}, err
		}
		return GroupConfiguration{Plain: level}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return GroupConfiguration{}, fmt.Errorf("%s: %w", path, err)
	}

	group := GroupConfiguration{Rules: make(map[string]RuleConfiguration, len(raw))}
	for key, value := range raw {
		if key == "recommended" {
			var b bool
			if err := json.Unmarshal(value, &b); err != nil {
				return GroupConfiguration{}, fmt.Errorf("%s.recommended: %w", path, err)
			}
			group.Recommended = &b
			continue
		}

		rule, err := parseRule(path+"."+key, value)
		if err != nil {
			return GroupConfiguration{}, err
		}
		group.Rules[key] = rule
	}
	return group, nil
}

// RuleConfiguration is a rule entry: a plain level or
// { "level": ..., "options": ... }. Options are kept raw and never translated.
type RuleConfiguration struct {
	Level   Level
	Options json.RawMessage
}

func parseRule(path string, data []byte) (RuleConfiguration, error) {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return RuleConfiguration{}, fmt.Errorf("%s: %w", path, err)
		}
		level, err := parseLevel(path, s)
		if err != nil {
			return RuleConfiguration{}, err
		}
		return RuleConfiguration{Level: level}, nil
	}

	var obj struct {
		Level   *string         `json:"level"`
		Options json.RawMessage `json:"options"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return RuleConfiguration{}, fmt.Errorf("%s: %w", path, err)
	}
	if obj.Level == nil {
		return RuleConfiguration{}, fmt.Errorf("%s: missing \"level\"", path)
	}

	level, err := parseLevel(path+".level", *obj.Level)
	if err != nil {
		return RuleConfiguration{}, err
	}
	return RuleConfiguration{Level: level, Options: obj.Options}, nil
}

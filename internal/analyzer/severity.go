package analyzer

import (
	"fmt"
	"strings"
)

// Severity is the analyzer's diagnostic level, ordered from least to most
// severe.
type Severity int

const (
	Hint Severity = iota
	Information
	Warning
	Error
	Fatal
)

var severityNames = [...]string{
	Hint:        "hint",
	Information: "information",
	Warning:     "warning",
	Error:       "error",
	Fatal:       "fatal",
}

func (s Severity) String() string {
	if s < Hint || s > Fatal {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity accepts the long names as well as the short forms used in
// Biome configuration files ("info", "warn").
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hint":
		return Hint, nil
	case "info", "information":
		return Information, nil
	case "warn", "warning":
		return Warning, nil
	case "error":
		return Error, nil
	case "fatal":
		return Fatal, nil
	default:
		return 0, fmt.Errorf("invalid severity %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

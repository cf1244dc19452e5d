package types

import (
	"fmt"
	"go/token"

	"gopkg.in/yaml.v3"
)

// Severity ranks how loudly an issue is reported. Off disables a rule
// entirely.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityOff:
		return "off"
	}
	return "unknown"
}

// MarshalYAML writes severities as words, matching what config files use.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML accepts the word forms written by MarshalYAML.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch raw {
	case "error":
		*s = SeverityError
	case "warning", "warn":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity %q (want error, warning, info, or off)", raw)
	}
	return nil
}

// ConfigRule carries the per-rule settings read from the config file.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`

	// Threshold tunes rules that count something, like the complexity
	// hotspot rule. Zero keeps the rule's default.
	Threshold int `yaml:"threshold,omitempty"`
}

// Issue represents a single finding in a source file.
type Issue struct {
	Rule       string
	Category   string
	Filename   string
	Message    string
	Suggestion string
	Note       string
	Start      token.Position
	End        token.Position
	Severity   Severity

	// Confidence is the rule's own estimate, in [0, 1], that applying
	// Suggestion is safe. The fixer refuses suggestions below its
	// threshold.
	Confidence float64
}

func (i Issue) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", i.Filename, i.Start.Line, i.Start.Column, i.Rule, i.Message)
}

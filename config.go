package boolsimp

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	tt "github.com/exprkit/boolsimp/internal/types"
)

// DefaultConfigPath is where New looks for configuration when no explicit
// path is given.
const DefaultConfigPath = ".boolsimp.yaml"

// DefaultMinConfidence gates autofixes. Rewrites verified equivalent by
// exhaustive truth tables carry confidence 1.0; rewrites over the atom
// budget carry 0.9 and still pass this default.
const DefaultMinConfidence = 0.8

// Config represents the overall configuration with a name and a map of
// per-rule settings.
type Config struct {
	Name          string                   `yaml:"name"`
	Rules         map[string]tt.ConfigRule `yaml:"rules,omitempty"`
	MinConfidence float64                  `yaml:"min-confidence,omitempty"`
}

// DefaultConfig is the configuration used when no file overrides it.
func DefaultConfig() Config {
	return Config{
		Name:          "boolsimp",
		Rules:         map[string]tt.ConfigRule{},
		MinConfidence: DefaultMinConfidence,
	}
}

// ParseConfig loads configuration from path. An empty path means
// DefaultConfigPath, and a missing file there is not an error; a path the
// caller asked for explicitly must exist.
func ParseConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	config := DefaultConfig()
	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if config.MinConfidence <= 0 {
		config.MinConfidence = DefaultMinConfidence
	}
	return config, nil
}

// Save writes the configuration to path in YAML form.
func (c Config) Save(path string) error {
	d, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}

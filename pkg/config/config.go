// Package config handles configuration for uiscribe.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/uiscribe/pkg/core"
	"github.com/devicelab-dev/uiscribe/pkg/screen"
)

// Config represents the session configuration (uiscribe.yaml).
type Config struct {
	// Element discovery
	EditableClasses []string `yaml:"editableClasses"` // Classes treated as text inputs
	TitleMarkers    []string `yaml:"titleMarkers"`    // Resource-id substrings marking screen titles

	// Code generation
	StabilityDelay float64 `yaml:"stabilityDelay"` // Seconds slept after each emitted action
	Output         string  `yaml:"output"`         // Generated script path, empty for stdout

	// Device settings
	Device string `yaml:"device"` // Target device serial
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromDir looks for uiscribe.yaml or uiscribe.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	for _, name := range []string{"uiscribe.yaml", "uiscribe.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	// No config file found, return defaults
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.EditableClasses) == 0 {
		c.EditableClasses = append([]string(nil), core.EditableClasses...)
	}
	if len(c.TitleMarkers) == 0 {
		c.TitleMarkers = append([]string(nil), screen.DefaultTitleMarkers...)
	}
	if c.StabilityDelay <= 0 {
		c.StabilityDelay = 0.5
	}
}

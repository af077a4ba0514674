// Package config loads the optional formkit.yaml or formkit.toml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// File names searched by LoadOptional, in order.
var FileNames = []string{"formkit.yaml", "formkit.yml", "formkit.toml"}

// Config represents the optional CLI configuration.
type Config struct {
	// Requires is the minimum CLI version, such as "v0.2.0".
	Requires string      `yaml:"requires,omitempty" toml:"requires,omitempty"`
	Output   OutputConfig `yaml:"output" toml:"output"`
	Input    InputConfig  `yaml:"input" toml:"input"`

	// Path is the file the config was read from, empty when defaulted.
	Path string `yaml:"-" toml:"-"`
}

// OutputConfig controls CLI output.
type OutputConfig struct {
	// Color is auto, always or never.
	Color   string `yaml:"color,omitempty" toml:"color,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty" toml:"verbose,omitempty"`
}

// InputConfig holds widget defaults.
type InputConfig struct {
	// Debounce is the UpdateStable delay, such as "150ms".
	Debounce string `yaml:"debounce,omitempty" toml:"debounce,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Path     string
	Color    string
	Verbose  bool
	Debounce time.Duration
}

// LoadOptional reads the first config file present in dir. A missing file
// yields an empty Config.
func LoadOptional(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", name, err)
		}
		return LoadFile(path)
	}
	return &Config{}, nil
}

// LoadFile reads a YAML or TOML config, chosen by extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	cfg.Path = path
	return &cfg, nil
}

// Resolve validates cfg against the running CLI version and fills defaults.
func Resolve(cfg *Config, version string) (*Resolved, error) {
	if err := CheckRequires(cfg.Requires, version); err != nil {
		return nil, err
	}

	color := strings.ToLower(strings.TrimSpace(cfg.Output.Color))
	switch color {
	case "":
		color = "auto"
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("output.color must be auto, always or never (got %q)", cfg.Output.Color)
	}

	var debounce time.Duration
	if s := strings.TrimSpace(cfg.Input.Debounce); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("input.debounce must be a non-negative duration (got %q)", cfg.Input.Debounce)
		}
		debounce = d
	}

	return &Resolved{
		Path:     cfg.Path,
		Color:    color,
		Verbose:  cfg.Output.Verbose,
		Debounce: debounce,
	}, nil
}

// CheckRequires fails when version is older than requires. Versions may omit
// the leading "v". Development builds ("-dev" prereleases) satisfy any
// requirement on the same release line.
func CheckRequires(requires, version string) error {
	requires = strings.TrimSpace(requires)
	if requires == "" {
		return nil
	}
	want := canonical(requires)
	if !semver.IsValid(want) {
		return fmt.Errorf("requires: invalid version %q", requires)
	}
	have := canonical(version)
	if !semver.IsValid(have) {
		return fmt.Errorf("cannot check requires %s: invalid CLI version %q", want, version)
	}
	if strings.HasSuffix(semver.Prerelease(have), "-dev") {
		have = strings.TrimSuffix(have, semver.Prerelease(have))
	}
	if semver.Compare(have, want) < 0 {
		return fmt.Errorf("this form requires formkit %s or newer (running %s)", want, canonical(version))
	}
	return nil
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// Package config loads valuepair settings from a YAML or TOML file.
// Settings are read from the "valuepair" section; other sections are ignored.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "VALUEPAIR_CONFIG"

// Defaults applied by Resolve for unset keys.
const (
	DefaultKind            = "auto"
	DefaultFixtureLanguage = "go"
	DefaultFixturePackage  = "fixture"
)

// Config is the "valuepair" section of a config file.
type Config struct {
	Kind            string `yaml:"kind" toml:"kind"`
	JSON            bool   `yaml:"json" toml:"json"`
	Min             bool   `yaml:"min" toml:"min"`
	FixtureLanguage string `yaml:"fixture_language" toml:"fixture_language"`
	FixturePackage  string `yaml:"fixture_package" toml:"fixture_package"`
	FixtureDir      string `yaml:"fixture_dir" toml:"fixture_dir"`
}

type configWrapper struct {
	ValuePair *Config `yaml:"valuepair" toml:"valuepair"`
}

// SupportedExtensions returns the file extensions Load understands.
func SupportedExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	return &Config{
		Kind:            DefaultKind,
		FixtureLanguage: DefaultFixtureLanguage,
		FixturePackage:  DefaultFixturePackage,
	}
}

// Load reads the valuepair section from path. The format is chosen by
// extension.
func Load(path string) (*Config, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, ErrConfigPathEmpty()
	}

	data, err := os.ReadFile(trimmed)
	if err != nil {
		return nil, WrapReadError(trimmed, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrConfigEmpty(trimmed)
	}

	var wrapper configWrapper
	switch strings.ToLower(filepath.Ext(trimmed)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &wrapper); err != nil {
			return nil, ErrConfigInvalidYAML(trimmed, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &wrapper); err != nil {
			return nil, ErrConfigInvalidTOML(trimmed, err)
		}
	default:
		return nil, ErrConfigUnsupported(trimmed)
	}

	if wrapper.ValuePair == nil {
		return nil, ErrConfigMissingSection(trimmed)
	}
	return wrapper.ValuePair.Resolve(), nil
}

// LoadDefault loads path if set, else the file named by VALUEPAIR_CONFIG,
// else returns Default.
func LoadDefault(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Resolve fills unset keys with defaults and returns c.
func (c *Config) Resolve() *Config {
	c.Kind = ResolveValue(c.Kind, DefaultKind)
	c.FixtureLanguage = ResolveValue(c.FixtureLanguage, DefaultFixtureLanguage)
	c.FixturePackage = ResolveValue(c.FixturePackage, DefaultFixturePackage)
	return c
}

// ResolveValue returns explicit if non-empty, otherwise fallback.
func ResolveValue(explicit, fallback string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return fallback
}

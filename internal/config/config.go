// Package config loads editor settings from defaults, an optional YAML
// file and the environment (including a .env file), in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Env var names. Each one overrides the matching YAML key.
const (
	EnvConfigFile      = "BREWCRAFT_CONFIG"
	EnvCatalogs        = "BREWCRAFT_CATALOGS" // "items.json:r1,blocks.json:r2"
	EnvEffectLanguage  = "BREWCRAFT_EFFECT_LANG"
	EnvLogLevel        = "BREWCRAFT_LOG_LEVEL"
	EnvLogFile         = "BREWCRAFT_LOG_FILE"
	EnvClipboard       = "BREWCRAFT_CLIPBOARD"
	EnvIndent          = "BREWCRAFT_INDENT"
	DefaultConfigFile  = "brewcraft.yaml"
	DefaultEffectLevel = "1"
	DefaultEffectTime  = "30"
)

// Config holds every tunable of the editor.
type Config struct {
	Catalogs []CatalogSource `yaml:"catalogs"`
	Effects  EffectsConfig   `yaml:"effects"`
	Logging  LoggingConfig   `yaml:"logging"`
	Output   OutputConfig    `yaml:"output"`
}

// CatalogSource is one JSON file of items or blocks and the prefix that
// namespaces its IDs.
type CatalogSource struct {
	Path   string `yaml:"path"`
	Prefix string `yaml:"prefix"`
}

// EffectsConfig tunes the built-in potion effect catalog.
type EffectsConfig struct {
	// Language selects the alias table searched next to the effect IDs.
	// "en" disables aliases.
	Language        string `yaml:"language"`
	DefaultLevel    string `yaml:"default_level"`
	DefaultDuration string `yaml:"default_duration"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // "stderr" logs to the console
}

type OutputConfig struct {
	Clipboard bool `yaml:"clipboard"`
	// Indent shifts every rendered line right, for pasting under a recipe key.
	Indent int `yaml:"indent"`
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() *Config {
	return &Config{
		Catalogs: []CatalogSource{
			{Path: "items.json", Prefix: "r1"},
			{Path: "blocks.json", Prefix: "r2"},
		},
		Effects: EffectsConfig{
			Language:        "en",
			DefaultLevel:    DefaultEffectLevel,
			DefaultDuration: DefaultEffectTime,
		},
		Logging: LoggingConfig{
			Level: "normal",
			File:  ".brewcraft-logs/brewcraft.log",
		},
		Output: OutputConfig{
			Clipboard: true,
		},
	}
}

// Load builds the configuration. A missing file at path is not an error;
// an empty path falls back to $BREWCRAFT_CONFIG, then brewcraft.yaml.
// Any .env file in the working directory is loaded first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		path = DefaultConfigFile
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// LoadFromPath reads a YAML file over the defaults without consulting the
// environment.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the editor cannot run with.
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for _, src := range c.Catalogs {
		if src.Path == "" || src.Prefix == "" {
			return fmt.Errorf("catalog source needs both path and prefix (got %q:%q)", src.Path, src.Prefix)
		}
		if seen[src.Prefix] {
			return fmt.Errorf("catalog prefix %q used twice", src.Prefix)
		}
		seen[src.Prefix] = true
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("output indent must not be negative")
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvCatalogs); v != "" {
		srcs, err := ParseCatalogList(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCatalogs, err)
		}
		c.Catalogs = srcs
	}
	if v := os.Getenv(EnvEffectLanguage); v != "" {
		c.Effects.Language = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv(EnvClipboard); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvClipboard, err)
		}
		c.Output.Clipboard = b
	}
	if v := os.Getenv(EnvIndent); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvIndent, err)
		}
		c.Output.Indent = n
	}
	return nil
}

// ParseCatalogList parses "path:prefix,path:prefix". The prefix is taken
// after the last colon so Windows drive letters survive.
func ParseCatalogList(s string) ([]CatalogSource, error) {
	var out []CatalogSource
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i := strings.LastIndex(part, ":")
		if i <= 0 || i == len(part)-1 {
			return nil, fmt.Errorf("catalog %q must look like path:prefix", part)
		}
		out = append(out, CatalogSource{Path: part[:i], Prefix: part[i+1:]})
	}
	return out, nil
}

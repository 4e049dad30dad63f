// Package config loads and validates CLI configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docfmt/internal/fileutil"
	"github.com/alnah/go-docfmt/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxSpecNameLength = 100  // Spec name or path
	MaxPathLength     = 2048 // File paths
	MaxTOCTitleLength = 100  // TOC title
	MaxModelLength    = 100  // AI model identifier
	MaxURLLength      = 2048 // AI endpoint URL
)

// Config holds all configuration for document compilation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Spec   SpecConfig   `yaml:"spec"`
	Cover  CoverConfig  `yaml:"cover"`
	TOC    TOCConfig    `yaml:"toc"`
	Fix    FixConfig    `yaml:"fix"`
	AI     AIConfig     `yaml:"ai"`
}

// InputConfig defines input source options.
type InputConfig struct {
	Format string `yaml:"format"` // "auto", "markdown", "plaintext" (default: "auto")
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// SpecConfig defines style specification options.
type SpecConfig struct {
	Name     string `yaml:"name"`     // Builtin spec name or YAML file path
	Template string `yaml:"template"` // Reference template path to patch (empty = generate)
}

// CoverConfig defines cover page options.
type CoverConfig struct {
	Disabled bool `yaml:"disabled"`
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Disabled bool   `yaml:"disabled"`
	Title    string `yaml:"title"` // Empty = default title
}

// FixConfig defines auto-fix loop options.
type FixConfig struct {
	Disabled      bool `yaml:"disabled"`
	MaxIterations int  `yaml:"maxIterations"` // 0 = default
}

// AIConfig defines AI-assisted classification options.
// The API key is never read from the config file; it comes from the
// OPENAI_API_KEY environment variable only.
type AIConfig struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model"`   // Empty = provider default
	BaseURL string `yaml:"baseUrl"` // Empty = api.openai.com
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if c.Input.Format != "" {
		switch strings.ToLower(c.Input.Format) {
		case "auto", "markdown", "plaintext":
			// valid
		default:
			return fmt.Errorf("input.format: invalid value %q (must be auto, markdown, or plaintext)", c.Input.Format)
		}
	}

	if err := validateFieldLength("spec.name", c.Spec.Name, MaxSpecNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("spec.template", c.Spec.Template, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("toc.title", c.TOC.Title, MaxTOCTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("ai.model", c.AI.Model, MaxModelLength); err != nil {
		return err
	}
	if err := validateFieldLength("ai.baseUrl", c.AI.BaseURL, MaxURLLength); err != nil {
		return err
	}

	if c.Fix.MaxIterations < 0 {
		return fmt.Errorf("fix.maxIterations: must not be negative, got %d", c.Fix.MaxIterations)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: auto-detected format,
// generic spec, cover and TOC on, auto-fix on, AI off.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{Format: "auto"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict("config file", data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the locations a config name would be searched in,
// in order. Used for error hints.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-docfmt", name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-docfmt/
func resolveConfigPath(name string) (string, error) {
	candidates := SearchPaths(name)
	for _, p := range candidates {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(candidates, ", "))
}

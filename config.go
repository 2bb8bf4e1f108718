package cttt

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the cttt project configuration
type Config struct {
	AllowedKinds []string     `yaml:"allowed_kinds"`
	Strict       bool         `yaml:"strict"`
	Extensions   []string     `yaml:"extensions"`   // empty means every file
	ExcludeDirs  []string     `yaml:"exclude_dirs"` // directory base names skipped while walking
	Output       OutputConfig `yaml:"output"`
	Filter       string       `yaml:"filter"` // CEL expression
}

// OutputConfig represents output settings
type OutputConfig struct {
	Format string `yaml:"format"`
}

// KindSet returns the allowed kinds as a KindSet.
func (c *Config) KindSet() KindSet {
	return NewKindSet(c.AllowedKinds...)
}

// Accepts reports whether a file path passes the extension filter.
func (c *Config) Accepts(path string) bool {
	if len(c.Extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)

	return slices.ContainsFunc(c.Extensions, func(e string) bool {
		return strings.EqualFold(normalizeExtension(e), ext)
	})
}

// Excludes reports whether a directory should be skipped while walking.
func (c *Config) Excludes(dir string) bool {
	return slices.Contains(c.ExcludeDirs, filepath.Base(dir))
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if file doesn't exist
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := DefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML configuration. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var config Config

	err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Expand before validating so that kinds and formats may come from the environment
	expandConfigEnvVars(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	for _, kind := range config.AllowedKinds {
		if !ValidKind(kind) {
			return fmt.Errorf("%w: %w %q in allowed_kinds", ErrConfigValidation, ErrInvalidKind, kind)
		}
	}

	switch config.Output.Format {
	case "", FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %w %q: must be one of text, json, yaml", ErrConfigValidation, ErrUnknownFormat, config.Output.Format)
	}

	for _, ext := range config.Extensions {
		if strings.TrimPrefix(ext, ".") == "" {
			return fmt.Errorf("%w: empty entry in extensions", ErrConfigValidation)
		}
	}

	return nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		AllowedKinds: []string{KindName, KindChange},
		ExcludeDirs:  []string{".git", "node_modules", "vendor"},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if config.AllowedKinds == nil {
		config.AllowedKinds = defaults.AllowedKinds
	}

	if config.ExcludeDirs == nil {
		config.ExcludeDirs = defaults.ExcludeDirs
	}

	if config.Output.Format == "" {
		config.Output.Format = defaults.Output.Format
	}

	for i, ext := range config.Extensions {
		config.Extensions[i] = normalizeExtension(ext)
	}
}

func normalizeExtension(ext string) string {
	if strings.HasPrefix(ext, ".") {
		return ext
	}

	return "." + ext
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareEnvVar   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in every path-like field.
// The filter expression is left untouched.
func expandConfigEnvVars(config *Config) {
	for i, kind := range config.AllowedKinds {
		config.AllowedKinds[i] = expandEnvVars(kind)
	}

	for i, ext := range config.Extensions {
		config.Extensions[i] = expandEnvVars(ext)
	}

	for i, dir := range config.ExcludeDirs {
		config.ExcludeDirs[i] = expandEnvVars(dir)
	}

	config.Output.Format = expandEnvVars(config.Output.Format)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

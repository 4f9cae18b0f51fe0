package rpnsheet

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Default values used when the configuration omits a field
const (
	DefaultMaxDereferences = 1000
	DefaultMaxDepth        = 1000
	DefaultDelimiter       = ","
	DefaultSeparator       = ", "
	DefaultOutputFormat    = "text"
	DefaultLogLevel        = "warn"
	DefaultLogFormat       = "text"
)

// Config represents the rpnsheet configuration
type Config struct {
	Evaluation EvaluationConfig `yaml:"evaluation"`
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Log        LogConfig        `yaml:"log"`
}

// EvaluationConfig represents the limits applied while resolving one top-level cell
type EvaluationConfig struct {
	// MaxDereferences caps the number of reference lookups per top-level cell
	MaxDereferences int `yaml:"max_dereferences"`

	// MaxDepth caps how deeply references may nest
	MaxDepth int `yaml:"max_depth"`
}

// InputConfig represents how rows are read
type InputConfig struct {
	Delimiter string `yaml:"delimiter"`
}

// OutputConfig represents how resolved rows are written
type OutputConfig struct {
	Separator string `yaml:"separator"`
	Format    string `yaml:"format"`
}

// LogConfig represents logger settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
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

// ParseConfig parses YAML configuration data, applies defaults and validates it
func ParseConfig(data []byte) (*Config, error) {
	var config Config

	// Strict mode to detect unknown fields
	err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the configuration for out-of-range or unknown values
func (c *Config) Validate() error {
	if c.Evaluation.MaxDereferences < 1 {
		return fmt.Errorf("%w: evaluation.max_dereferences must be positive, got %d", ErrConfigValidation, c.Evaluation.MaxDereferences)
	}

	if c.Evaluation.MaxDepth < 1 {
		return fmt.Errorf("%w: evaluation.max_depth must be positive, got %d", ErrConfigValidation, c.Evaluation.MaxDepth)
	}

	if c.Input.Delimiter == "" {
		return fmt.Errorf("%w: input.delimiter must not be empty", ErrConfigValidation)
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"yaml": true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("%w: output.format '%s' is invalid: must be one of text, json, yaml", ErrConfigValidation, c.Output.Format)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("%w: log.level '%s' is invalid: must be one of debug, info, warn, error", ErrConfigValidation, c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format '%s' is invalid: must be text or json", ErrConfigValidation, c.Log.Format)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Evaluation: EvaluationConfig{
			MaxDereferences: DefaultMaxDereferences,
			MaxDepth:        DefaultMaxDepth,
		},
		Input: InputConfig{
			Delimiter: DefaultDelimiter,
		},
		Output: OutputConfig{
			Separator: DefaultSeparator,
			Format:    DefaultOutputFormat,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	if config.Evaluation.MaxDereferences == 0 {
		config.Evaluation.MaxDereferences = DefaultMaxDereferences
	}

	if config.Evaluation.MaxDepth == 0 {
		config.Evaluation.MaxDepth = DefaultMaxDepth
	}

	if config.Input.Delimiter == "" {
		config.Input.Delimiter = DefaultDelimiter
	}

	// An explicitly empty separator is indistinguishable from an unset one
	if config.Output.Separator == "" {
		config.Output.Separator = DefaultSeparator
	}

	if config.Output.Format == "" {
		config.Output.Format = DefaultOutputFormat
	}

	if config.Log.Level == "" {
		config.Log.Level = DefaultLogLevel
	}

	if config.Log.Format == "" {
		config.Log.Format = DefaultLogFormat
	}
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
	plainEnvVar  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return plainEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in string settings
func expandConfigEnvVars(config *Config) {
	config.Input.Delimiter = expandEnvVars(config.Input.Delimiter)
	config.Output.Separator = expandEnvVars(config.Output.Separator)
	config.Output.Format = expandEnvVars(config.Output.Format)
	config.Log.Level = expandEnvVars(config.Log.Level)
	config.Log.Format = expandEnvVars(config.Log.Format)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

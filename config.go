package truthtable

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/shibukawa/truthtable/formatter"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// DefaultConfigFile is the configuration file looked up in the working directory
const DefaultConfigFile = "truthtable.yaml"

// DefaultMaxVariables bounds the row count of interactive evaluations to 2^16
const DefaultMaxVariables = 16

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the truthtable configuration
type Config struct {
	Format       string `yaml:"format"`
	Brief        bool   `yaml:"brief"`
	Verify       bool   `yaml:"verify"`
	MaxVariables *int   `yaml:"max_variables"` // Pointer to distinguish between unset and 0 (table maximum)
	Color        string `yaml:"color"`
	Prompt       string `yaml:"prompt"`
}

// VariableLimit returns the configured variable limit; 0 means the table maximum
func (c *Config) VariableLimit() int {
	if c.MaxVariables == nil {
		return DefaultMaxVariables
	}

	return *c.MaxVariables
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
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandConfigEnvVars(&config)
	applyDefaults(&config)

	if err := ValidateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ValidateConfig validates the configuration for unknown values
func ValidateConfig(config *Config) error {
	if !slices.Contains(formatter.Names(), config.Format) {
		return fmt.Errorf("%w: invalid format '%s': must be one of %s", ErrConfigValidation, config.Format, strings.Join(formatter.Names(), ", "))
	}

	validColors := map[string]bool{
		ColorAuto:   true,
		ColorAlways: true,
		ColorNever:  true,
	}
	if !validColors[config.Color] {
		return fmt.Errorf("%w: invalid color '%s': must be one of auto, always, never", ErrConfigValidation, config.Color)
	}

	if limit := config.VariableLimit(); limit < 0 || limit > MaxEnumerableVariables {
		return fmt.Errorf("%w: max_variables must be between 0 and %d, got %d", ErrConfigValidation, MaxEnumerableVariables, limit)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)

	return config
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	if config.Format == "" {
		config.Format = formatter.DefaultFormat
	}

	if config.Color == "" {
		config.Color = ColorAuto
	}

	if config.Prompt == "" {
		config.Prompt = ">>> "
	}
}

// loadEnvFiles loads .env from the current directory when present
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
	config.Format = expandEnvVars(config.Format)
	config.Color = expandEnvVars(config.Color)
	config.Prompt = expandEnvVars(config.Prompt)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

package preic

import (
	"fmt"
	"os"
	"regexp"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Label dump formats
const (
	LabelFormatText = "text"
	LabelFormatYAML = "yaml"
)

// Config represents the preic configuration file (preic.yaml)
type Config struct {
	LibraryDir    string   `yaml:"library_dir"`
	LabelFile     string   `yaml:"label_file"`
	LabelFormat   string   `yaml:"label_format"`
	Defines       []string `yaml:"defines"`
	Optimizations []string `yaml:"optimizations"`
	Processing    []string `yaml:"processing"`
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Check if config file exists
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		// Return default configuration if file doesn't exist
		return getDefaultConfig(), nil
	}

	// Read config file
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

	// Validate the configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	if config.LabelFormat != "" && config.LabelFormat != LabelFormatText && config.LabelFormat != LabelFormatYAML {
		return fmt.Errorf("%w: invalid label_format '%s': must be one of text, yaml", ErrConfigValidation, config.LabelFormat)
	}

	if _, err := ParseOptimizationNames(config.Optimizations); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	if _, err := ParseProcessingNames(config.Processing); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	for _, define := range config.Defines {
		if define == "" {
			return fmt.Errorf("%w: defines: empty pre-processing flag name", ErrConfigValidation)
		}
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		LabelFormat:   LabelFormatText,
		Defines:       []string{},
		Optimizations: []string{},
		Processing:    []string{},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	if config.LabelFormat == "" {
		config.LabelFormat = LabelFormatText
	}

	if config.Defines == nil {
		config.Defines = []string{}
	}
}

// ApplyTo merges the configuration into options collected from the command line.
// Values already set on the command line win, flag sets and defines are merged.
func (c *Config) ApplyTo(opts *Options) error {
	if opts.LibraryDir == "" {
		opts.LibraryDir = c.LibraryDir
	}

	if opts.LabelFile == "" {
		opts.LabelFile = c.LabelFile
	}

	if opts.LabelFormat == "" {
		opts.LabelFormat = c.LabelFormat
	}

	optimizations, err := ParseOptimizationNames(c.Optimizations)
	if err != nil {
		return err
	}

	if opts.Optimizations == nil {
		opts.Optimizations = OptimizationSet{}
	}

	for flag := range optimizations {
		opts.Optimizations[flag] = true
	}

	processing, err := ParseProcessingNames(c.Processing)
	if err != nil {
		return err
	}

	if opts.Processing == nil {
		opts.Processing = ProcessingSet{}
	}

	for flag := range processing {
		opts.Processing[flag] = true
	}

	for _, define := range c.Defines {
		if !slices.Contains(opts.Defines, define) {
			opts.Defines = append(opts.Defines, define)
		}
	}

	return nil
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	// Try to load .env file from current directory
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	// Pattern for ${VAR} format
	re1 := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re1.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		return os.Getenv(varName)
	})

	// Pattern for $VAR format (word boundaries)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		return os.Getenv(varName)
	})

	return s
}

// expandConfigEnvVars expands environment variables in path settings
func expandConfigEnvVars(config *Config) {
	config.LibraryDir = expandEnvVars(config.LibraryDir)
	config.LabelFile = expandEnvVars(config.LabelFile)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Supported report output formats
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// ErrInvalidConfig is returned when a loaded value is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the demo
type Config struct {
	// Core configuration
	Environment  string `mapstructure:"ENVIRONMENT"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	OutputFormat string `mapstructure:"OUTPUT_FORMAT"`

	// Record configuration
	RecordName  string `mapstructure:"RECORD_NAME"`
	RecordValue int    `mapstructure:"RECORD_VALUE"`
	Increment   int    `mapstructure:"INCREMENT"`

	// Collection configuration
	ItemsPath    string `mapstructure:"ITEMS_PATH"`
	FilterEmpty  bool   `mapstructure:"FILTER_EMPTY"`
	SearchTarget string `mapstructure:"SEARCH_TARGET"`
}

// flagKeys maps command line flag names to configuration keys
var flagKeys = map[string]string{
	"config":       "CONFIG_FILE",
	"log-level":    "LOG_LEVEL",
	"output":       "OUTPUT_FORMAT",
	"name":         "RECORD_NAME",
	"value":        "RECORD_VALUE",
	"increment":    "INCREMENT",
	"items":        "ITEMS_PATH",
	"filter-empty": "FILTER_EMPTY",
	"target":       "SEARCH_TARGET",
}

// Load reads the configuration from flags, environment variables and an
// optional config file, and returns a Config struct. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Read from environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Command line flags take precedence over everything else
	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	// Optional: Read from config file if specified
	configFile := v.GetString("CONFIG_FILE")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal config into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values that cannot be expressed as types
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("%w: unsupported output format %q", ErrInvalidConfig, c.OutputFormat)
	}
	return nil
}

// bindFlags binds every known flag present in the set
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Core defaults
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OUTPUT_FORMAT", OutputText)
	v.SetDefault("CONFIG_FILE", "")

	// Record defaults
	v.SetDefault("RECORD_NAME", "test")
	v.SetDefault("RECORD_VALUE", 10)
	v.SetDefault("INCREMENT", 5)

	// Collection defaults
	v.SetDefault("ITEMS_PATH", "")
	v.SetDefault("FILTER_EMPTY", true)
	v.SetDefault("SEARCH_TARGET", "item2")
}

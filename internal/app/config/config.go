package config

import (
	"errors"
	"fmt"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. DEMO_LOG_LEVEL
const EnvPrefix = "DEMO"

// Config holds all configuration for the demo programs
type Config struct {
	// Environment (development, production, test)
	Environment string `mapstructure:"environment" yaml:"environment" validate:"required,oneof=development production test"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level" yaml:"log_level" validate:"required,oneof=debug info warn error"`
	LogDir   string `mapstructure:"log_dir" yaml:"log_dir"`

	// Metrics configuration
	MetricsEnabled  bool   `mapstructure:"metrics_enabled" yaml:"metrics_enabled"`
	MetricsTextfile string `mapstructure:"metrics_textfile" yaml:"metrics_textfile" validate:"omitempty,endswith=.prom"`
}

// LoadConfig reads configuration from path/config.yaml, falling back to
// defaults, and applies environment overrides
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_dir", "")
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("metrics_textfile", "")

	// Set config file path
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, continue with environment variables
	}

	// Override with environment variables if they exist
	// Convert format: DEMO_LOG_LEVEL -> log_level
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

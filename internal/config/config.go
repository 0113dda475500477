package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix        = "VACATION_PLANNER"
	defaultAllowance = 28
	defaultLogLevel  = "info"
)

// Config represents application configuration
type Config struct {
	Planner PlannerConfig `mapstructure:"planner"`
	Log     LogConfig     `mapstructure:"log"`
}

// PlannerConfig represents planning session settings
type PlannerConfig struct {
	Allowance int `mapstructure:"allowance"` // Yearly vacation days
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty means console
	Level string `mapstructure:"level"`
}

// Load loads configuration from file.
// A missing config file is not an error: defaults and environment apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("planner.allowance", defaultAllowance)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", defaultLogLevel)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.vacation-planner")
		v.AddConfigPath("/etc/vacation-planner")
	}

	// Read environment variables: VACATION_PLANNER_PLANNER_ALLOWANCE etc.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Planner.Allowance < 0 {
		return fmt.Errorf("planner.allowance must not be negative, got %d", c.Planner.Allowance)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	return nil
}

// GetLogLevel returns the log level, defaulting to info
func (c *LogConfig) GetLogLevel() string {
	if c.Level == "" {
		return defaultLogLevel
	}
	return strings.ToLower(c.Level)
}

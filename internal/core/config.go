// Package core contains the business logic for tasker: building tasks,
// parsing deadlines, evaluating urgency against a clock, and loading
// configuration.
package core

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/tasker/pkg/models"
)

// ConfigFileName is the name of the optional configuration file.
const ConfigFileName = ".taskerrc"

// ConfigurationManager loads and validates tasker configuration.
type ConfigurationManager interface {
	LoadConfig() (*models.Config, error)
	ValidateConfig(cfg *models.Config) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	searchPaths []string
}

// NewConfigurationManager creates a ConfigurationManager that looks for
// .taskerrc in each of searchPaths, in order.
func NewConfigurationManager(searchPaths ...string) ConfigurationManager {
	return &viperConfigManager{searchPaths: searchPaths}
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *models.Config {
	return &models.Config{
		DefaultPriority: "normal",
		OutputFormat:    models.OutputLine,
		Color:           true,
		LogLevel:        "warn",
	}
}

// LoadConfig reads .taskerrc. If no file exists, defaults are returned.
func (cm *viperConfigManager) LoadConfig() (*models.Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	for _, p := range cm.searchPaths {
		if p != "" {
			v.AddConfigPath(p)
		}
	}

	v.SetDefault("defaults.priority", cfg.DefaultPriority)
	v.SetDefault("output.format", string(cfg.OutputFormat))
	v.SetDefault("output.color", cfg.Color)
	v.SetDefault("log.level", cfg.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, &ConfigError{Err: fmt.Errorf("reading %s: %w", ConfigFileName, err)}
	}

	cfg.DefaultPriority = v.GetString("defaults.priority")
	cfg.OutputFormat = models.OutputFormat(v.GetString("output.format"))
	cfg.Color = v.GetBool("output.color")
	cfg.LogLevel = v.GetString("log.level")

	if err := cm.ValidateConfig(cfg); err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("validating %s: %w", v.ConfigFileUsed(), err)}
	}
	return cfg, nil
}

// ValidateConfig checks cfg for invalid values.
func (cm *viperConfigManager) ValidateConfig(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}
	if _, err := models.ParsePriority(cfg.DefaultPriority); err != nil {
		return fmt.Errorf("defaults.priority: %w", err)
	}
	if _, err := ParseOutputFormat(string(cfg.OutputFormat)); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// ParseOutputFormat validates an output format name.
func ParseOutputFormat(s string) (models.OutputFormat, error) {
	switch f := models.OutputFormat(strings.ToLower(s)); f {
	case models.OutputLine, models.OutputTable, models.OutputYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want line, table or yaml)", s)
}

// ParseLogLevel converts a level name into a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

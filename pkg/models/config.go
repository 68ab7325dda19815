package models

// OutputFormat selects how the add command renders a task.
type OutputFormat string

const (
	OutputLine  OutputFormat = "line"
	OutputTable OutputFormat = "table"
	OutputYAML  OutputFormat = "yaml"
)

// Config holds settings read from .taskerrc via Viper.
type Config struct {
	DefaultPriority string       `yaml:"default_priority" mapstructure:"default_priority"`
	OutputFormat    OutputFormat `yaml:"output_format" mapstructure:"output_format"`
	Color           bool         `yaml:"color" mapstructure:"color"`
	LogLevel        string       `yaml:"log_level" mapstructure:"log_level"`
}

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the bareinfo configuration.
type Config struct {
	Root          string            `mapstructure:"root"`
	OutputDir     string            `mapstructure:"output_dir"`
	ShellEnv      string            `mapstructure:"shell_env"`
	LabelWidth    int               `mapstructure:"label_width"`
	Color         string            `mapstructure:"color"`
	Styles        map[string]string `mapstructure:"styles"`
	DatabasePath  string            `mapstructure:"database"`
	LogLevel      string            `mapstructure:"log_level"`
	LogFile       string            `mapstructure:"log_file"`
	LogMaxSizeMB  int               `mapstructure:"log_max_size_mb"`
	LogMaxBackups int               `mapstructure:"log_max_backups"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultStyles maps each fact category to the colour its console labels
// are drawn in.
var DefaultStyles = map[string]string{
	"cpu":      "blue",
	"firmware": "red",
	"board":    "green",
	"product":  "cyan",
	"os":       "yellow",
	"platform": "magenta",
}

// Load reads configuration from file and environment.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("bareinfo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/bareinfo")
	}

	v.SetDefault("root", "/")
	v.SetDefault("output_dir", ".")
	v.SetDefault("shell_env", "SHELL")
	v.SetDefault("label_width", 20)
	v.SetDefault("color", ColorAuto)
	v.SetDefault("styles", DefaultStyles)
	v.SetDefault("database", "bareinfo.db")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 10)
	v.SetDefault("log_max_backups", 3)

	v.SetEnvPrefix("BAREINFO")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default config is fine; an explicit one must exist.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the exporters cannot honour.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	if c.LabelWidth < 0 {
		return fmt.Errorf("invalid label_width %d", c.LabelWidth)
	}
	return nil
}

// Style returns the colour configured for a fact category, falling back
// to the built-in default.
func (c *Config) Style(category string) string {
	if s, ok := c.Styles[category]; ok {
		return s
	}
	return DefaultStyles[category]
}

// Package config provides Viper-based configuration loading for ircstyle.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Output formats understood by the CLI.
var Formats = []string{"html", "text", "json", "yaml", "table", "stats", "ansi"}

// Input encodings understood by the CLI.
var Encodings = []string{"utf8", "cp437", "cp850", "iso-8859-1", "windows-1252"}

// InputConfig describes how raw messages are read.
type InputConfig struct {
	// Encoding is the character set of the input, converted to UTF-8 before parsing.
	Encoding string `mapstructure:"encoding"`
	// Escaped enables the "$b", "$c[red]" escape notation instead of raw control bytes.
	Escaped bool `mapstructure:"escaped"`
}

// OutputConfig selects the exporter.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// RenderConfig holds HTML rendering settings.
type RenderConfig struct {
	// ClassPrefix is prepended to every CSS class.
	ClassPrefix string `mapstructure:"class_prefix"`
	// Tag is the element wrapping styled fragments.
	Tag string `mapstructure:"tag"`
}

// PreviewConfig holds the terminal preview size.
type PreviewConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Render  RenderConfig  `mapstructure:"render"`
	Preview PreviewConfig `mapstructure:"preview"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants and reports every violation.
func (c Config) Validate() error {
	var errs []string

	if !contains(Encodings, c.Input.Encoding) {
		errs = append(errs, fmt.Sprintf("input.encoding must be one of %v, got %q", Encodings, c.Input.Encoding))
	}
	if !contains(Formats, c.Output.Format) {
		errs = append(errs, fmt.Sprintf("output.format must be one of %v, got %q", Formats, c.Output.Format))
	}
	if c.Render.Tag == "" || strings.ContainsAny(c.Render.Tag, "<>\"' ") {
		errs = append(errs, fmt.Sprintf("render.tag must be a bare element name, got %q", c.Render.Tag))
	}
	if strings.ContainsAny(c.Render.ClassPrefix, "<>\"' ") {
		errs = append(errs, fmt.Sprintf("render.class_prefix must not contain quotes, brackets or spaces, got %q", c.Render.ClassPrefix))
	}
	if c.Preview.Width <= 0 {
		errs = append(errs, fmt.Sprintf("preview.width must be > 0 (got %d)", c.Preview.Width))
	}
	if c.Preview.Height <= 0 {
		errs = append(errs, fmt.Sprintf("preview.height must be > 0 (got %d)", c.Preview.Height))
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// Load reads configuration from the given YAML file, applies IRCSTYLE_
// environment overrides and defaults, and validates the result.
// An empty path skips the file and uses defaults and environment only.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with IRCSTYLE_ prefix
	v.SetEnvPrefix("IRCSTYLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.encoding", "utf8")
	v.SetDefault("input.escaped", false)

	v.SetDefault("output.format", "html")

	v.SetDefault("render.class_prefix", "irc-")
	v.SetDefault("render.tag", "span")

	v.SetDefault("preview.width", 80)
	v.SetDefault("preview.height", 200)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}

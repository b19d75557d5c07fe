package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	ReadyDelay Duration `yaml:"ready_delay"` // wait before building the first screen
	RevealRate Duration `yaml:"reveal_rate"` // per-character typing delay, 0 shows text at once

	Log    LogConfig   `yaml:"log"`
	Colors ColorConfig `yaml:"colors"`
}

// LogConfig holds logging settings
type LogConfig struct {
	File  string `yaml:"file"`  // empty disables logging
	Level string `yaml:"level"` // debug, info, warn, error
}

// ColorConfig holds color definitions
type ColorConfig struct {
	Background    string `yaml:"background"`
	Text          string `yaml:"text"`
	Title         string `yaml:"title"`
	Muted         string `yaml:"muted"`
	Button        string `yaml:"button"`
	ButtonText    string `yaml:"button_text"`
	ButtonFocused string `yaml:"button_focused"`
	Border        string `yaml:"border"`
	StatusBar     string `yaml:"status_bar"`
	StatusBarText string `yaml:"status_bar_text"`
	Error         string `yaml:"error"`
}

// Default returns the default configuration
var Default = Config{
	ReadyDelay: Duration(100 * time.Millisecond),
	RevealRate: 0,
	Log: LogConfig{
		File:  "",
		Level: "info",
	},
	Colors: ColorConfig{
		Background:    "#1e1e2e",
		Text:          "#cdd6f4",
		Title:         "#89b4fa",
		Muted:         "#6c7086",
		Button:        "#313244",
		ButtonText:    "#cdd6f4",
		ButtonFocused: "#f9e2af",
		Border:        "#45475a",
		StatusBar:     "#313244",
		StatusBarText: "#cdd6f4",
		Error:         "#f38ba8",
	},
}

// Duration is a time.Duration read from strings like "150ms"
type Duration time.Duration

// UnmarshalYAML parses a duration string
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: duration must be a string: %w", value.Line, err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Validate checks the configuration for values the game cannot use
func (c *Config) Validate() error {
	if c.ReadyDelay < 0 {
		return fmt.Errorf("ready_delay must not be negative, got %s", c.ReadyDelay.Std())
	}
	if c.RevealRate < 0 {
		return fmt.Errorf("reveal_rate must not be negative, got %s", c.RevealRate.Std())
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", l.Level)
	}
}

// Package config loads, validates, saves and watches the tinct settings file.
package config

import (
	"github.com/alexisbeaulieu97/tinct/internal/appearance"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
)

// Config is the settings document.
type Config struct {
	Mode        string    `yaml:"mode" toml:"mode" validate:"required,theme_mode"`
	Appearance  string    `yaml:"appearance" toml:"appearance" validate:"required,appearance_source"`
	Development bool      `yaml:"development" toml:"development"`
	Log         LogConfig `yaml:"log" toml:"log"`
}

// LogConfig controls the logger built by the CLI.
type LogConfig struct {
	Level string `yaml:"level" toml:"level" validate:"required,log_level"`
	Human bool   `yaml:"human" toml:"human"`
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		Mode:       string(theme.ModeSystem),
		Appearance: string(appearance.KindAuto),
		Log: LogConfig{
			Level: "info",
			Human: true,
		},
	}
}

// ThemeMode returns the configured mode. Invalid values yield system; Load
// never returns one.
func (c *Config) ThemeMode() theme.Mode {
	mode, err := theme.ParseMode(c.Mode)
	if err != nil {
		return theme.ModeSystem
	}
	return mode
}

// SourceKind returns the configured appearance source.
func (c *Config) SourceKind() appearance.Kind {
	kind, err := appearance.ParseKind(c.Appearance)
	if err != nil {
		return appearance.KindAuto
	}
	return kind
}

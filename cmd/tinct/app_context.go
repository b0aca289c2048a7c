package main

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/tinct/internal/appearance"
	"github.com/alexisbeaulieu97/tinct/internal/config"
	"github.com/alexisbeaulieu97/tinct/internal/logger"
	"github.com/alexisbeaulieu97/tinct/internal/provider"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
)

// AppContext bundles the settings and services created before a command runs.
type AppContext struct {
	ConfigPath string
	Config     *config.Config
	Log        *logger.Logger
}

// Load reads the settings file and builds the logger.
func (a *AppContext) Load(flags *rootFlags, errOut io.Writer) error {
	a.ConfigPath = flags.configPath
	if a.ConfigPath == "" {
		a.ConfigPath = config.Path()
	}

	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return newCommandError("load settings", a.ConfigPath, err, "Fix the settings file or pass --config with another path.")
	}
	a.Config = cfg

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Log.Human, Writer: errOut})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.Log = log.WithField("config", a.ConfigPath)

	provider.SetDevelopment(cfg.Development, a.Log)
	return nil
}

// Source returns the appearance source for a command. A non-empty override
// pins the host preference to a fixed value instead of querying the host.
func (a *AppContext) Source(override string) (theme.PreferenceSource, *appearance.Manual, error) {
	if override == "" {
		return appearance.Detect(a.Config.SourceKind(), a.Log), nil, nil
	}
	pref, err := parseAppearance(override)
	if err != nil {
		return nil, nil, err
	}
	manual := appearance.NewManual(pref)
	return manual, manual, nil
}

// Mode returns override parsed as a mode, or the configured mode when empty.
func (a *AppContext) Mode(override string) (theme.Mode, error) {
	if override == "" {
		return a.Config.ThemeMode(), nil
	}
	return theme.ParseMode(override)
}

func parseAppearance(s string) (theme.Appearance, error) {
	switch theme.Appearance(s) {
	case theme.AppearanceLight, theme.AppearanceDark:
		return theme.Appearance(s), nil
	default:
		return "", fmt.Errorf("invalid system appearance %q: expected light or dark", s)
	}
}

// closeSource releases host resources held by src, if any.
func closeSource(src theme.PreferenceSource) {
	if c, ok := src.(interface{ Close() }); ok {
		c.Close()
	}
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	tincterrors "github.com/alexisbeaulieu97/tinct/pkg/errors"
)

// Environment variables that override the file.
const (
	EnvMode       = "TINCT_MODE"
	EnvAppearance = "TINCT_APPEARANCE"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Path returns the default settings file path under XDG_CONFIG_HOME,
// falling back to ~/.config.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tinct", "config.yaml")
}

// Load reads the settings at path. A missing file yields the defaults.
// Files ending in .toml are TOML; everything else is YAML. Environment
// overrides are applied before validation.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, tincterrors.NewParseError(path, 0, err)
	default:
		if err := decode(path, data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save validates cfg and writes it to path in the format implied by the
// extension, creating the parent directory.
func Save(path string, cfg *Config) error {
	if path == "" {
		path = Path()
	}
	if err := Validate(cfg); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func decode(path string, data []byte, cfg *Config) error {
	if isTOML(path) {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return tincterrors.NewParseError(path, tomlLine(err), err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return tincterrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvMode)); v != "" {
		cfg.Mode = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvAppearance)); v != "" {
		cfg.Appearance = strings.ToLower(v)
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tinct/internal/appearance"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
	tincterrors "github.com/alexisbeaulieu97/tinct/pkg/errors"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cases := []struct {
		name   string
		file   string
		body   string
		assert func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "yaml is parsed",
			file: "config.yaml",
			body: "mode: dark\nappearance: portal\ndevelopment: true\nlog:\n  level: debug\n  human: false\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, theme.ModeDark, cfg.ThemeMode())
				require.Equal(t, appearance.KindPortal, cfg.SourceKind())
				require.True(t, cfg.Development)
				require.Equal(t, "debug", cfg.Log.Level)
				require.False(t, cfg.Log.Human)
			},
		},
		{
			name: "toml is parsed",
			file: "config.toml",
			body: "mode = \"light\"\nappearance = \"none\"\n\n[log]\nlevel = \"warn\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, theme.ModeLight, cfg.ThemeMode())
				require.Equal(t, appearance.KindNone, cfg.SourceKind())
				require.Equal(t, "warn", cfg.Log.Level)
				require.True(t, cfg.Log.Human, "unset keys keep their defaults")
			},
		},
		{
			name: "partial file keeps defaults",
			file: "config.yml",
			body: "mode: light\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "light", cfg.Mode)
				require.Equal(t, "auto", cfg.Appearance)
				require.Equal(t, "info", cfg.Log.Level)
			},
		},
		{
			name: "invalid yaml returns parse error",
			file: "config.yaml",
			body: "mode: dark\nlog: [1, 2\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *tincterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name: "invalid toml returns parse error with line",
			file: "config.toml",
			body: "mode = \"dark\"\nappearance = \n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *tincterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name: "unknown mode returns validation error",
			file: "config.yaml",
			body: "mode: sepia\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tincterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "mode", validationErr.Field)
				require.Contains(t, validationErr.Message, "theme_mode")
			},
		},
		{
			name: "unknown log level returns validation error",
			file: "config.yaml",
			body: "log:\n  level: loud\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tincterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log.level", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvMode, "")
			t.Setenv(EnvAppearance, "")
			path := writeFile(t, tc.file, tc.body)
			cfg, err := Load(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvMode, "")
	t.Setenv(EnvAppearance, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvMode, "DARK")
	t.Setenv(EnvAppearance, "terminal")

	path := writeFile(t, "config.yaml", "mode: light\nappearance: portal\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, theme.ModeDark, cfg.ThemeMode())
	require.Equal(t, appearance.KindTerminal, cfg.SourceKind())
}

func TestLoadInvalidEnvironmentOverride(t *testing.T) {
	t.Setenv(EnvMode, "dusk")
	t.Setenv(EnvAppearance, "")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	var validationErr *tincterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "mode", validationErr.Field)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvMode, "")
	t.Setenv(EnvAppearance, "")

	for _, name := range []string{"config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			cfg := Default()
			cfg.Mode = "dark"
			cfg.Development = true

			require.NoError(t, Save(path, cfg))

			loaded, err := Load(path)
			require.NoError(t, err)
			require.Equal(t, cfg, loaded)
		})
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	cfg := Default()
	cfg.Appearance = "gsettings"

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := Save(path, cfg)

	var validationErr *tincterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "appearance", validationErr.Field)
	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestPathUsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	require.Equal(t, "/tmp/xdg/tinct/config.yaml", Path())
}

func TestValidateNil(t *testing.T) {
	var validationErr *tincterrors.ValidationError
	require.ErrorAs(t, Validate(nil), &validationErr)
}

func TestGetValidatorIsShared(t *testing.T) {
	require.Same(t, GetValidator(), GetValidator())
}

func TestExtractLine(t *testing.T) {
	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 0, extractLine(os.ErrInvalid))
	require.Equal(t, 3, extractLine(fmt.Errorf("yaml: line 3: mapping values are not allowed")))
}

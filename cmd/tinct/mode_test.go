package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tinct/internal/config"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
)

func stubPrompt(t *testing.T, interactive bool, choice theme.Mode, err error) *int {
	t.Helper()
	calls := new(int)

	originalPrompt, originalInteractive := promptMode, isInteractive
	t.Cleanup(func() {
		promptMode = originalPrompt
		isInteractive = originalInteractive
	})

	isInteractive = func() bool { return interactive }
	promptMode = func(theme.Mode) (theme.Mode, error) {
		*calls++
		return choice, err
	}
	return calls
}

func TestModeCommandPersistsArgument(t *testing.T) {
	path := isolateConfig(t)
	stubPrompt(t, false, "", nil)

	res := executeRoot(t, "mode", "dark")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "mode set to dark")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, theme.ModeDark, cfg.ThemeMode())

	res = executeRoot(t, "mode", "dark")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "mode already dark")
}

func TestModeCommandPrintsCurrentWithoutTerminal(t *testing.T) {
	isolateConfig(t)
	calls := stubPrompt(t, false, theme.ModeDark, nil)

	res := executeRoot(t, "mode")
	require.NoError(t, res.err)
	assert.Equal(t, "system\n", res.out)
	assert.Zero(t, *calls)
}

func TestModeCommandPromptsOnTerminal(t *testing.T) {
	path := isolateConfig(t)
	calls := stubPrompt(t, true, theme.ModeLight, nil)

	res := executeRoot(t, "mode")
	require.NoError(t, res.err)
	assert.Equal(t, 1, *calls)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, theme.ModeLight, cfg.ThemeMode())
}

func TestModeCommandPromptCancelled(t *testing.T) {
	isolateConfig(t)
	stubPrompt(t, true, "", errors.New("user aborted"))

	res := executeRoot(t, "mode")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "cancelled")
}

func TestModeCommandRejectsUnknownMode(t *testing.T) {
	isolateConfig(t)
	stubPrompt(t, false, "", nil)

	res := executeRoot(t, "mode", "sepia")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, theme.ErrInvalidMode)
}

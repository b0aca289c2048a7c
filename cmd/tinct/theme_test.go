package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeCommandResolvesSystemPreference(t *testing.T) {
	isolateConfig(t)

	res := executeRoot(t, "theme", "--mode", "system", "--system", "dark")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "mode: system")
	assert.Contains(t, res.out, "system: dark")
	assert.Contains(t, res.out, "resolved: dark")
	assert.Contains(t, res.out, "#3395FF")
}

func TestThemeCommandUsesConfiguredMode(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TINCT_MODE", "light")

	res := executeRoot(t, "theme")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "resolved: light")
	assert.Contains(t, res.out, "#0062CC")
}

func TestThemeCommandWithoutHostSupportResolvesLight(t *testing.T) {
	isolateConfig(t)

	res := executeRoot(t, "theme", "--mode", "system")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "resolved: light")
}

func TestThemeCommandRendersSample(t *testing.T) {
	isolateConfig(t)

	res := executeRoot(t, "theme", "--mode", "dark", "--render")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "Primary box")
	assert.Contains(t, res.out, "Secondary")
	assert.Contains(t, res.out, "caption text")
}

func TestThemeCommandRejectsBadFlags(t *testing.T) {
	isolateConfig(t)

	res := executeRoot(t, "theme", "--mode", "sepia")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "--mode")

	res = executeRoot(t, "theme", "--system", "dim")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "--system")
}

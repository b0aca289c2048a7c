package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/alexisbeaulieu97/tinct/internal/config"
)

type cmdResult struct {
	out    string
	errOut string
	err    error
}

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(config.EnvMode, "")
	t.Setenv(config.EnvAppearance, "none")
	return filepath.Join(dir, "tinct", "config.yaml")
}

func executeRoot(t *testing.T, args ...string) cmdResult {
	t.Helper()

	root := newRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)

	err := root.Execute()
	return cmdResult{out: out.String(), errOut: errOut.String(), err: err}
}

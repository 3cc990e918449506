package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	flags := cmd.Flags()
	flags.StringP("tags", "b", "", "")
	flags.BoolP("tests", "t", false, "")
	flags.StringP("color", "c", "auto", "")
	flags.String("config", defaultConfigFile, "")
	flags.StringP("output", "o", "propagate_gen.go", "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, defaultConfigFile), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveConfig(newTestCmd(t), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, config{Output: "propagate_gen.go", Color: "auto"}, cfg)
}

func TestResolveConfigFile(t *testing.T) {
	wd := t.TempDir()
	writeConfig(t, wd, `
tags: integration
tests: true
output: enums_gen.go
color: never
patterns:
  - ./foo/...
  - ./bar
`)

	cfg, err := resolveConfig(newTestCmd(t), wd)
	require.NoError(t, err)

	assert.Equal(t, config{
		Tags:     "integration",
		Tests:    true,
		Output:   "enums_gen.go",
		Color:    "never",
		Patterns: []string{"./foo/...", "./bar"},
	}, cfg)
}

func TestResolveConfigFlagsOverride(t *testing.T) {
	wd := t.TempDir()
	writeConfig(t, wd, `
tags: integration
tests: true
output: enums_gen.go
color: never
`)

	cfg, err := resolveConfig(newTestCmd(t, "-b", "e2e", "--tests=false", "-o", "x_gen.go", "-c", "always"), wd)
	require.NoError(t, err)

	assert.Equal(t, "e2e", cfg.Tags)
	assert.False(t, cfg.Tests)
	assert.Equal(t, "x_gen.go", cfg.Output)
	assert.Equal(t, "always", cfg.Color)
}

func TestResolveConfigExplicitPath(t *testing.T) {
	wd := t.TempDir()
	err := os.WriteFile(filepath.Join(wd, "custom.yaml"), []byte("output: custom_gen.go\n"), 0o644)
	require.NoError(t, err)

	cfg, err := resolveConfig(newTestCmd(t, "--config", "custom.yaml"), wd)
	require.NoError(t, err)
	assert.Equal(t, "custom_gen.go", cfg.Output)

	// An explicit config file must exist.
	_, err = resolveConfig(newTestCmd(t, "--config", "missing.yaml"), wd)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveConfigInvalid(t *testing.T) {
	wd := t.TempDir()
	writeConfig(t, wd, "tags: [unclosed\n")

	_, err := resolveConfig(newTestCmd(t), wd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config file")
}

func TestUseColor(t *testing.T) {
	on, err := useColor("always")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = useColor("never")
	require.NoError(t, err)
	assert.False(t, on)

	_, err = useColor("sometimes")
	assert.EqualError(t, err, "invalid -c value: sometimes")
}

func TestColorize(t *testing.T) {
	msg := colorize("a.go:1:2: broken\n\tdetail")
	assert.True(t, strings.HasPrefix(msg, "\x1b[1ma.go:1:2:\x1b["), msg)
	assert.Contains(t, msg, "broken")
	assert.Contains(t, msg, "\x1b[2m\tdetail\x1b[")

	msg = colorize("no position")
	assert.True(t, strings.HasPrefix(msg, "\x1b[31mno position\x1b["), msg)
}

func TestVersion(t *testing.T) {
	var out strings.Builder
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.True(t, strings.HasPrefix(out.String(), "propagate "))
}

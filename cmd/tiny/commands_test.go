package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-tiny/internal/config"
	"github.com/grindlemire/go-tiny/internal/fsutil"
)

func writeInfo(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Info.yaml"), []byte(content), 0o644))
}

func TestRunMkdir(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a", "b")
	c := filepath.Join(root, "c")

	require.NoError(t, runMkdir([]string{a, c}))
	assert.True(t, fsutil.DirectoryExists(a))
	assert.True(t, fsutil.DirectoryExists(c))

	// Running again is a no-op.
	require.NoError(t, runMkdir([]string{a}))
}

func TestRunMkdir_FileInTheWay(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	ok := filepath.Join(root, "ok")

	err := runMkdir([]string{file, ok})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 path(s)")
	assert.True(t, fsutil.DirectoryExists(ok), "later paths are still created")
}

func TestRunMkdir_NoArgs(t *testing.T) {
	assert.Error(t, runMkdir(nil))
}

func TestRunInfo(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "App.bundle")
	writeInfo(t, dir, "name: Tiny\nwindow:\n  width: 640\n")

	tests := map[string]struct {
		args []string
		want string
	}{
		"string value": {args: []string{dir, "name"}, want: `"Tiny"`},
		"nested value": {args: []string{dir, "window.width"}, want: "640"},
		"whole info":   {args: []string{dir}, want: `"window"`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, runInfo(&buf, config.Default(), tt.args))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestRunInfo_Errors(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "App.bundle")
	writeInfo(t, dir, "name: Tiny\n")

	var buf bytes.Buffer
	err := runInfo(&buf, config.Default(), []string{dir, "missing.key"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.key")

	err = runInfo(&buf, config.Default(), []string{t.TempDir(), "name"})
	assert.Error(t, err)

	err = runInfo(&buf, config.Default(), nil)
	assert.Error(t, err)
}

func TestRunInfo_CacheDisabled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "App.bundle")
	writeInfo(t, dir, "name: Tiny\n")

	cfg := config.Default()
	cfg.Bundle.Cache = false

	var buf bytes.Buffer
	require.NoError(t, runInfo(&buf, cfg, []string{dir, "name"}))
	assert.Equal(t, `"Tiny"`, strings.TrimSpace(buf.String()))
}

func TestRunFind(t *testing.T) {
	root := t.TempDir()
	writeInfo(t, filepath.Join(root, "one.bundle"), "name: one\n")
	writeInfo(t, filepath.Join(root, "nested", "two.bundle"), "name: two\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "plain"), 0o755))

	tests := map[string]struct {
		args []string
		want []string
	}{
		"default pattern": {
			args: []string{root},
			want: []string{
				filepath.Join(root, "nested", "two.bundle"),
				filepath.Join(root, "one.bundle"),
			},
		},
		"explicit pattern": {
			args: []string{root, "*.bundle"},
			want: []string{filepath.Join(root, "one.bundle")},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, runFind(&buf, config.Default(), tt.args))
			got := strings.Fields(buf.String())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunFind_BadPattern(t *testing.T) {
	var buf bytes.Buffer
	err := runFind(&buf, config.Default(), []string{t.TempDir(), "[unclosed"})
	assert.Error(t, err)
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/lineedit/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-log-level", "error"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "lineedit dev")
}

func TestHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-h"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "Usage: lineedit")
}

func TestFlagErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "x")
	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, in)
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"two files", []string{in, in}},
		{"bad log level", []string{"-log-level", "loud", in}},
		{"watch without output", []string{"-watch", in}},
		{"watch to stdout", []string{"-watch", "-o", "-", in}},
		{"watch onto input", []string{"-watch", "-o", in, in}},
		{"watch onto input with dot segment", []string{"-watch", "-o", dir + "/./in.txt", in}},
		{"watch onto input with parent segment", []string{"-watch", "-o", dir + "/sub/../in.txt", in}},
		{"watch onto input by relative path", []string{"-watch", "-o", rel, in}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, 2, run(tt.args, &stdout, &stderr))
		})
	}
}

func TestSamePath(t *testing.T) {
	assert.True(t, samePath("in.txt", "./in.txt"))
	assert.True(t, samePath("a/../in.txt", "in.txt"))
	assert.False(t, samePath("out.txt", "in.txt"))
	assert.False(t, samePath("a/in.txt", "in.txt"))
}

func TestScriptEditsInPlace(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "notes.txt", "first\nsecond")
	lua := writeFile(t, dir, "edit.lua", `
ed.move("doc_end")
ed.enter()
ed.type("third")
print("lines", ed.line_count())
`)

	code, _, stderr := runCLI(t, "-s", lua, in)

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "first\nsecond\nthird", readFile(t, in))
	assert.Contains(t, stderr, "lines\t3")
}

func TestUnchangedFileNotRewritten(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "same.txt", "keep")
	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(in, past, past))

	code, _, stderr := runCLI(t, in)

	require.Equal(t, 0, code, stderr)
	info, err := os.Stat(in)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past))
}

func TestKeysToStdout(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "hello")

	code, stdout, stderr := runCLI(t, "-keys", "Ctrl+End Space w o r l d", "-o", "-", in)

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "hello world", stdout)
	assert.Equal(t, "hello", readFile(t, in))
}

func TestNoInputWritesStdout(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-keys", "a b Enter c")

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "ab\nc", stdout)
}

func TestOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "abc")
	out := filepath.Join(dir, "out.txt")

	code, _, stderr := runCLI(t, "-keys", "Ctrl+A Ctrl+X Ctrl+V Ctrl+V", "-o", out, in)

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "abcabc", readFile(t, out))
	assert.Equal(t, "abc", readFile(t, in))
}

func TestConfigKeyBindings(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "lineedit.toml", `
[keys.bindings]
"Alt+U" = "history.undo"
`)

	code, stdout, stderr := runCLI(t, "-c", cfg, "-keys", "a b Alt+U")

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "a", stdout)
}

func TestListKeys(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-list-keys")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Ctrl+Z")
	assert.Contains(t, stdout, "history.undo")
	assert.Contains(t, stdout, "select.doc_end")
}

func TestRunFailures(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "abc")
	badLua := writeFile(t, dir, "bad.lua", `error("nope")`)
	badCfg := writeFile(t, dir, "bad.toml", "[history]\nmax_entries = -1\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing input", []string{filepath.Join(dir, "missing.txt")}, "open"},
		{"script error", []string{"-s", badLua, in}, "nope"},
		{"unbound key", []string{"-keys", "F7", in}, "unbound key"},
		{"bad chord", []string{"-keys", "Hyper+x", in}, "invalid key chord"},
		{"bad config", []string{"-c", badCfg, in}, "max_entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
	assert.Equal(t, "abc", readFile(t, in))
}

func TestWatchRerunsOnChange(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "one")
	out := filepath.Join(dir, "out.txt")

	p := &pipeline{
		opts:   options{Input: in, OutputPath: out, Keys: "Ctrl+End !"},
		cfg:    config.Default(),
		log:    zerolog.Nop(),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.watch(ctx) }()

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && string(data) == "one!"
	}, 2*time.Second, 20*time.Millisecond)

	// The watcher may not be registered the instant the first pass lands;
	// keep rewriting until the change is picked up.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(in, []byte("two"), 0o644)
		data, err := os.ReadFile(out)
		return err == nil && string(data) == "two!"
	}, 5*time.Second, 200*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

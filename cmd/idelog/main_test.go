package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ArgsToFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "ide.log")

	var stderr bytes.Buffer
	code := run([]string{"-log-file", path, "-domain", "git", "-level", "warning", "push", "rejected"}, strings.NewReader(""), &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), " git[")
	assert.Contains(t, string(data), "WARNING: push rejected\n")
}

func TestRun_StdinLines(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "ide.log")

	var stderr bytes.Buffer
	code := run([]string{"-log-file", path, "-level", "message", "-v"}, strings.NewReader("one\ntwo\n"), &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, got, 2)
	assert.True(t, strings.HasSuffix(got[0], "MESSAGE: one"))
	assert.True(t, strings.HasSuffix(got[1], "MESSAGE: two"))
}

func TestRun_DefaultLevelIsVisible(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "ide.log")

	var stderr bytes.Buffer
	code := run([]string{"-log-file", path, "hello"}, strings.NewReader(""), &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), " idelog[")
	assert.True(t, strings.HasSuffix(string(data), "WARNING: hello\n"), string(data))
}

func TestRun_FilteredByVerbosity(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "ide.log")

	var stderr bytes.Buffer
	code := run([]string{"-log-file", path, "-level", "debug", "quiet"}, strings.NewReader(""), &stderr)
	require.Equal(t, 0, code)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestRun_BadFlag(t *testing.T) {
	chdir(t, t.TempDir())

	var stderr bytes.Buffer
	code := run([]string{"-level", "shouting"}, strings.NewReader(""), &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "unknown level")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

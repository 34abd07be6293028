package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}

func TestLoadDotEnv_SetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ASKAI_TEST_VAR=hello\n"), 0o600))

	t.Setenv("ASKAI_TEST_VAR", "placeholder")
	require.NoError(t, os.Unsetenv("ASKAI_TEST_VAR"))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "hello", os.Getenv("ASKAI_TEST_VAR"))
}

func TestRenderMarkdown_NoRendererPassthrough(t *testing.T) {
	mdRenderer = nil

	assert.Equal(t, "plain **text**", renderMarkdown("plain **text**"))
}

func TestRenderMarkdown_Initialized(t *testing.T) {
	initMarkdownRenderer(80)
	t.Cleanup(func() { mdRenderer = nil })

	assert.Contains(t, renderMarkdown("# Title"), "Title")
}

func TestFmtDuration(t *testing.T) {
	assert.Equal(t, "1.5s", fmtDuration(1500*time.Millisecond))
	assert.Equal(t, "2m 5s", fmtDuration(125*time.Second))
}

func TestResolveDir_Explicit(t *testing.T) {
	dir := t.TempDir()

	d, err := resolveDir(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, d.Root())
}

func TestResolveDir_DefaultUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	d, err := resolveDir("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".askai"), d.Root())
}

func TestRandomThinkingMessage(t *testing.T) {
	assert.Contains(t, thinkingMessages, randomThinkingMessage())
}

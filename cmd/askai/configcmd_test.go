package main

import (
	"strings"
	"testing"

	"github.com/askai-cli/askai/cmd/askai/internal/setupwizard"
	"github.com/askai-cli/askai/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigUpdate_SavesConfigOnly(t *testing.T) {
	d := newTestDir(t)
	input := "2\n5\n" + strings.Repeat("\n", 5)
	var out strings.Builder

	err := configUpdate(d, strings.NewReader(input), &out)
	require.NoError(t, err)

	cfg, err := config.Load(d.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, "text-babbage-001", cfg.Model)
	assert.Equal(t, 5, cfg.NumAnswers)
	assert.Equal(t, 300, cfg.MaxTokens)

	assert.NoFileExists(t, d.KeyPath())
	assert.Contains(t, out.String(), "NOTE: You're about to update the default config of askai.")
	assert.Contains(t, out.String(), "https://beta.openai.com/docs/api-reference/completions/create")
	assert.Contains(t, out.String(), "Config saved successfully!")
	assert.NotContains(t, out.String(), "Enter API Key")
}

func TestConfigUpdate_PreservesExistingKey(t *testing.T) {
	d := newTestDir(t)
	require.NoError(t, d.WriteKey("sk-keep"))

	input := "4\n" + strings.Repeat("\n", 6)
	var out strings.Builder

	err := configUpdate(d, strings.NewReader(input), &out)
	require.NoError(t, err)

	key, err := d.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, "sk-keep", key)
}

func TestConfigUpdate_OverwritesPreviousConfig(t *testing.T) {
	d := newTestDir(t)
	old := config.Config{Model: "text-ada-001", NumAnswers: 9, MaxTokens: 50, Temperature: 1.0}
	require.NoError(t, d.EnsureRoot())
	require.NoError(t, old.Save(d.ConfigPath()))

	input := "4\n" + strings.Repeat("\n", 6)
	var out strings.Builder

	err := configUpdate(d, strings.NewReader(input), &out)
	require.NoError(t, err)

	cfg, err := config.Load(d.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, "text-davinci-003", cfg.Model)
	assert.Equal(t, 1, cfg.NumAnswers)
}

func TestConfigUpdate_Abort(t *testing.T) {
	d := newTestDir(t)
	var out strings.Builder

	err := configUpdate(d, strings.NewReader("8\n9\n0\n"), &out)
	require.ErrorIs(t, err, setupwizard.ErrTooManyTries)

	assert.NoFileExists(t, d.ConfigPath())
	assert.Contains(t, out.String(), "Too many invalid tries. Aborted!")
}

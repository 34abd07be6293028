package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
model: text-davinci-003
num_answers: 2
max_tokens: 512
temperature: 0.9
top_p: 0.1
frequency_penalty: -0.5
presence_penalty: 1.5
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "text-davinci-003", cfg.Model)
	assert.Equal(t, 2, cfg.NumAnswers)
	assert.Equal(t, 512, cfg.MaxTokens)
	assert.Equal(t, 0.9, cfg.Temperature)
	assert.Equal(t, 0.1, cfg.TopP)
	assert.Equal(t, -0.5, cfg.FrequencyPenalty)
	assert.Equal(t, 1.5, cfg.PresencePenalty)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/no/such/file.yaml")
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "config: parse")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	cfg := Config{
		Model:            "text-davinci-003",
		NumAnswers:       1,
		MaxTokens:        300,
		Temperature:      0.4,
		TopP:             0.0,
		FrequencyPenalty: 0.0,
		PresencePenalty:  0.0,
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSave_UsesDocumentedKeys(t *testing.T) {
	cfg := Config{
		Model:       "text-curie-001",
		NumAnswers:  1,
		MaxTokens:   300,
		Temperature: 0.4,
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, key := range []string{
		"model:", "num_answers:", "max_tokens:", "temperature:",
		"top_p:", "frequency_penalty:", "presence_penalty:",
	} {
		assert.Contains(t, string(data), key)
	}
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: old"), 0o600))

	cfg := Config{Model: "text-ada-001", NumAnswers: 1, MaxTokens: 300}
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text-ada-001", got.Model)
}

func validConfig() Config {
	return Config{
		Model:            "text-davinci-003",
		NumAnswers:       DefaultNumAnswers,
		MaxTokens:        DefaultMaxTokens,
		Temperature:      DefaultTemperature,
		TopP:             DefaultTopP,
		FrequencyPenalty: DefaultFrequencyPenalty,
		PresencePenalty:  DefaultPresencePenalty,
	}
}

func TestConfig_Validate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_UnknownModel(t *testing.T) {
	cfg := validConfig()
	cfg.Model = "gpt-4"
	assert.ErrorContains(t, cfg.Validate(), "unknown model")
}

func TestConfig_Validate_NumAnswers(t *testing.T) {
	cfg := validConfig()
	cfg.NumAnswers = 0
	assert.ErrorContains(t, cfg.Validate(), "num_answers")
}

func TestConfig_Validate_MaxTokens(t *testing.T) {
	cfg := validConfig()
	cfg.MaxTokens = -1
	assert.ErrorContains(t, cfg.Validate(), "max_tokens")
}

func TestConfig_Validate_Temperature(t *testing.T) {
	cfg := validConfig()
	cfg.Temperature = 1.5
	assert.ErrorContains(t, cfg.Validate(), "temperature")
}

func TestConfig_Validate_TopP(t *testing.T) {
	cfg := validConfig()
	cfg.TopP = -0.1
	assert.ErrorContains(t, cfg.Validate(), "top_p")
}

func TestConfig_Validate_FrequencyPenalty(t *testing.T) {
	cfg := validConfig()
	cfg.FrequencyPenalty = 2.5
	assert.ErrorContains(t, cfg.Validate(), "frequency_penalty")
}

func TestConfig_Validate_PresencePenalty(t *testing.T) {
	cfg := validConfig()
	cfg.PresencePenalty = -2.5
	assert.ErrorContains(t, cfg.Validate(), "presence_penalty")
}

func TestConfig_Validate_Bounds(t *testing.T) {
	cfg := validConfig()
	cfg.Temperature = 1.0
	cfg.TopP = 0.0
	cfg.FrequencyPenalty = -2.0
	cfg.PresencePenalty = 2.0
	assert.NoError(t, cfg.Validate())
}

// Package config defines the persisted askai configuration: the model
// selection and the completion parameters collected by the setup wizard.
package config

import (
	"fmt"
	"os"

	"github.com/askai-cli/askai/pkg/models"
	"gopkg.in/yaml.v3"
)

// Documented defaults for the numeric wizard steps. An empty input at a
// step accepts the corresponding value.
const (
	DefaultNumAnswers       = 1
	DefaultMaxTokens        = 300
	DefaultTemperature      = 0.4
	DefaultTopP             = 0.0
	DefaultFrequencyPenalty = 0.0
	DefaultPresencePenalty  = 0.0
)

// Config holds the completion parameters sent with every question. It is
// serialized as YAML with exactly these seven top-level keys.
type Config struct {
	Model            string  `yaml:"model"`
	NumAnswers       int     `yaml:"num_answers"`
	MaxTokens        int     `yaml:"max_tokens"`
	Temperature      float64 `yaml:"temperature"`
	TopP             float64 `yaml:"top_p"`
	FrequencyPenalty float64 `yaml:"frequency_penalty"`
	PresencePenalty  float64 `yaml:"presence_penalty"`
}

// Load reads a YAML file and returns a Config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}

// Save serializes the config to YAML and writes it to path, replacing any
// prior file.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: save: %w", err)
	}

	return nil
}

// Validate checks that every field is within its documented bounds.
func (c Config) Validate() error {
	if !models.Model(c.Model).Valid() {
		return fmt.Errorf("config: unknown model %q", c.Model)
	}

	if c.NumAnswers <= 0 {
		return fmt.Errorf("config: num_answers must be positive, got %d", c.NumAnswers)
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("config: max_tokens must be positive, got %d", c.MaxTokens)
	}

	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("config: temperature must be in [0.0, 1.0], got %v", c.Temperature)
	}

	if c.TopP < 0 || c.TopP > 1 {
		return fmt.Errorf("config: top_p must be in [0.0, 1.0], got %v", c.TopP)
	}

	if c.FrequencyPenalty < -2 || c.FrequencyPenalty > 2 {
		return fmt.Errorf("config: frequency_penalty must be in [-2.0, 2.0], got %v", c.FrequencyPenalty)
	}

	if c.PresencePenalty < -2 || c.PresencePenalty > 2 {
		return fmt.Errorf("config: presence_penalty must be in [-2.0, 2.0], got %v", c.PresencePenalty)
	}

	return nil
}

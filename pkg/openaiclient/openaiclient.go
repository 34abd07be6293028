// Package openaiclient wraps the OpenAI SDK with the two operations askai
// needs: validating an API key and requesting text completions.
package openaiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/askai-cli/askai/pkg/config"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// Client talks to the OpenAI API on behalf of one credential.
type Client struct {
	api *openai.Client
}

// New creates a Client for the given API key. Extra request options are
// appended after the key, so callers can override the base URL or retry
// policy (tests, OPENAI_BASE_URL).
func New(apiKey string, opts ...option.RequestOption) *Client {
	options := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)

	// NewClient returns a value; keep a pointer so the services share one
	// underlying configuration.
	c := openai.NewClient(options...)

	return &Client{api: &c}
}

// ValidateKey probes the API with a cheap authenticated call and reports
// whether the credential is usable. An authentication or permission failure
// yields (false, nil); any other failure is returned as an error.
func (c *Client) ValidateKey(ctx context.Context) (bool, error) {
	_, err := c.api.Models.List(ctx)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) &&
			(apierr.StatusCode == http.StatusUnauthorized || apierr.StatusCode == http.StatusForbidden) {
			return false, nil
		}

		return false, fmt.Errorf("openaiclient: validate key: %w", err)
	}

	return true, nil
}

// Complete sends the question to the completions API with every parameter
// from cfg and returns the text of each returned choice, trimmed.
func (c *Client) Complete(ctx context.Context, cfg config.Config, question string) ([]string, error) {
	resp, err := c.api.Completions.New(ctx, openai.CompletionNewParams{
		Model:            openai.CompletionNewParamsModel(cfg.Model),
		Prompt:           openai.CompletionNewParamsPromptUnion{OfString: openai.String(question)},
		N:                openai.Int(int64(cfg.NumAnswers)),
		MaxTokens:        openai.Int(int64(cfg.MaxTokens)),
		Temperature:      openai.Float(cfg.Temperature),
		TopP:             openai.Float(cfg.TopP),
		FrequencyPenalty: openai.Float(cfg.FrequencyPenalty),
		PresencePenalty:  openai.Float(cfg.PresencePenalty),
	})
	if err != nil {
		return nil, fmt.Errorf("openaiclient: completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openaiclient: empty choices in response")
	}

	answers := make([]string, len(resp.Choices))
	for i, choice := range resp.Choices {
		answers[i] = strings.TrimSpace(choice.Text)
	}

	return answers, nil
}

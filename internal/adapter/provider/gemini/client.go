// Package gemini implements the text generation provider on Google Gemini
// through langchaingo.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/config"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("gemini: empty response")

// Client completes prompts with a Gemini model.
type Client struct {
	llm llms.Model
	log *slog.Logger
}

// New creates a Gemini client from the generation settings.
func New(ctx context.Context, cfg config.GenerationConfig, logger *slog.Logger) (*Client, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.GeminiAPIKey),
		googleai.WithDefaultModel(cfg.GeminiModel),
	)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return NewWithModel(llm, logger), nil
}

// NewWithModel wraps an existing model.
func NewWithModel(llm llms.Model, logger *slog.Logger) *Client {
	return &Client{llm: llm, log: logger.With("adapter", "gemini")}
}

// Complete sends the prompt and returns the first candidate's text.
func (c *Client) Complete(ctx context.Context, p domain.Prompt) (string, error) {
	msgs := make([]llms.MessageContent, 0, 2)
	if p.System != "" {
		msgs = append(msgs, llms.TextParts(llms.ChatMessageTypeSystem, p.System))
	}
	msgs = append(msgs, llms.TextParts(llms.ChatMessageTypeHuman, p.Text))

	var opts []llms.CallOption
	if p.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(int(p.MaxTokens)))
	}

	c.log.DebugContext(ctx, "gemini request", slog.String("template", p.TemplateID))

	resp, err := c.llm.GenerateContent(ctx, msgs, opts...)
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := resp.Choices[0].Content
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

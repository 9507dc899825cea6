// Package anthropic implements the text generation provider on the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/config"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("anthropic: empty response")

// Client completes prompts with a Claude model.
type Client struct {
	api   sdk.Client
	model string
	log   *slog.Logger
}

// New creates a client from the generation settings. Extra options are
// applied after the configured ones.
func New(cfg config.GenerationConfig, logger *slog.Logger, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.AnthropicAPIKey),
		option.WithMaxRetries(2),
	}
	if cfg.AnthropicURL != "" {
		base = append(base, option.WithBaseURL(cfg.AnthropicURL))
	}
	if cfg.Timeout > 0 {
		base = append(base, option.WithRequestTimeout(cfg.Timeout))
	}

	return &Client{
		api:   sdk.NewClient(append(base, opts...)...),
		model: cfg.AnthropicModel,
		log:   logger.With("adapter", "anthropic"),
	}
}

// Complete sends the prompt as a single user turn and returns the text of
// the answer.
func (c *Client) Complete(ctx context.Context, p domain.Prompt) (string, error) {
	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: p.MaxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(p.Text)),
		},
	}
	if p.System != "" {
		params.System = []sdk.TextBlockParam{{Text: p.System}}
	}

	c.log.DebugContext(ctx, "anthropic request",
		slog.String("template", p.TemplateID),
		slog.String("model", c.model),
	)

	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic: messages: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}

	c.log.DebugContext(ctx, "anthropic response",
		slog.String("template", p.TemplateID),
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)
	return sb.String(), nil
}

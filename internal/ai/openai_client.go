package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
	model  string
	log    *slog.Logger
}

// NewOpenAIClient: пустой model даёт gpt-4o-mini, пустой baseURL ведёт в
// публичный API.
func NewOpenAIClient(apiKey, model, baseURL string, log *slog.Logger) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		log:    log.With(slog.String("component", "ai")),
	}
}

func (c *OpenAIClient) GetReply(
	ctx context.Context,
	systemPrompt string,
	input string,
) (string, error) {

	msgs := make([]openai.ChatCompletionMessage, 0, 2)
	if systemPrompt != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: input,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: msgs,
	})
	if err != nil {
		c.log.Error("openai error", slog.Any("error", err))
		return "", fmt.Errorf("openai: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.log.Warn("empty choices")
		return "", ErrEmptyCompletion
	}

	raw := resp.Choices[0].Message.Content
	c.log.Debug("raw completion", slog.String("model", c.model), slog.Int("len", len(raw)))

	return raw, nil
}

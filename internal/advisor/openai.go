package advisor

import (
	"context"
	"fmt"
	"time"

	"ssshep/expensepro/internal/config"
	"ssshep/expensepro/internal/logging"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIAdvisor queries an OpenAI-compatible chat completion endpoint.
type OpenAIAdvisor struct {
	promptAdvisor
}

// NewOpenAIAdvisor creates a client for model. An empty baseURL uses the
// public OpenAI endpoint.
func NewOpenAIAdvisor(apiKey, model, baseURL string, timeout time.Duration, logger logging.Logger) *OpenAIAdvisor {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(clientConfig)

	return &OpenAIAdvisor{promptAdvisor{
		provider: config.ProviderOpenAI,
		model:    model,
		timeout:  timeout,
		logger:   logger,
		generate: func(ctx context.Context, prompt string) (string, error) {
			resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
				Model: model,
				Messages: []openai.ChatCompletionMessage{
					{Role: openai.ChatMessageRoleSystem, Content: "You analyse expense ledgers and answer in JSON."},
					{Role: openai.ChatMessageRoleUser, Content: prompt},
				},
				Temperature: 0.4,
				ResponseFormat: &openai.ChatCompletionResponseFormat{
					Type: openai.ChatCompletionResponseFormatTypeJSONObject,
				},
			})
			if err != nil {
				return "", fmt.Errorf("OpenAI API error: %w", err)
			}
			if len(resp.Choices) == 0 {
				return "", fmt.Errorf("no choices in OpenAI response")
			}
			return resp.Choices[0].Message.Content, nil
		},
	}}
}

// Close is a no-op; the HTTP client holds no resources.
func (a *OpenAIAdvisor) Close() error {
	return nil
}

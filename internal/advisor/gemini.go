package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ssshep/expensepro/internal/config"
	"ssshep/expensepro/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAdvisor queries a Gemini model.
type GeminiAdvisor struct {
	promptAdvisor
	client *genai.Client
}

// NewGeminiAdvisor creates the Gemini client. The API key is required.
func NewGeminiAdvisor(ctx context.Context, apiKey, model string, timeout time.Duration, logger logging.Logger) (*GeminiAdvisor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	generative := client.GenerativeModel(model)
	generative.SetTemperature(0.4)

	a := &GeminiAdvisor{client: client}
	a.promptAdvisor = promptAdvisor{
		provider: config.ProviderGemini,
		model:    model,
		timeout:  timeout,
		logger:   logger,
		generate: func(ctx context.Context, prompt string) (string, error) {
			resp, err := generative.GenerateContent(ctx, genai.Text(prompt))
			if err != nil {
				return "", fmt.Errorf("Gemini API error: %w", err)
			}
			return geminiText(resp)
		},
	}
	return a, nil
}

func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response from Gemini API")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text in Gemini response")
	}
	return b.String(), nil
}

// Close releases the underlying client.
func (a *GeminiAdvisor) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}

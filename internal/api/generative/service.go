package generative

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// TextGenerator is the contract the AI-backed services program against.
// Transport failures, API error payloads and empty candidate sets all come
// back as errors; the caller decides whether to absorb them.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

var _ TextGenerator = (*AIClient)(nil)

// AIClient wraps the Gemini client behind TextGenerator.
type AIClient struct {
	client *genai.Client
	model  string
}

func NewAIClient(ctx context.Context) (*AIClient, error) {
	apiKey := os.Getenv("GOOGLE_GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_GEMINI_API_KEY environment variable is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &AIClient{client: client, model: model}, nil
}

// GenerateText runs a single-turn generation and returns the first
// candidate's text.
func (ai *AIClient) GenerateText(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	txt := result.Text()
	if txt == "" {
		return "", fmt.Errorf("no response from AI - unexpected response format")
	}
	return txt, nil
}

package stylist

import (
	"fmt"

	"github.com/tmc/langchaingo/llms/openai"
)

// NewOpenAIModel builds a client for any OpenAI-compatible chat endpoint,
// including Gemini's compatibility endpoint.
func NewOpenAIModel(baseURL, model, apiKey string) (Model, error) {
	if apiKey == "" {
		// calls fail at request time and become the fallback reply
		apiKey = "unset"
	}

	opts := []openai.Option{
		openai.WithModel(model),
		openai.WithToken(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OpenAI client: %w", err)
	}
	return llm, nil
}

package aitools

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Completer is the outbound generative completion capability. The gateway
// only needs text in, text out; tests substitute a fake.
type Completer interface {
	// Complete issues one completion constrained to the given schema.
	Complete(ctx context.Context, prompt string, schema *Schema) (string, error)
	// CompleteText issues one unconstrained completion with an optional
	// system instruction.
	CompleteText(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// GeminiCompleter talks to the Gemini API.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

func NewGeminiCompleter(ctx context.Context, apiKey, model string) (*GeminiCompleter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompleter{client: client, model: model}, nil
}

func (c *GeminiCompleter) Complete(ctx context.Context, prompt string, schema *Schema) (string, error) {
	config := &genai.GenerateContentConfig{}
	if schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = schema.toGenAI()
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("Gemini completion failed: %w", err)
	}

	return result.Text(), nil
}

func (c *GeminiCompleter) CompleteText(ctx context.Context, systemInstruction, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		// The concierge answers interactively; skip thinking for latency.
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(0))},
	}
	if systemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("Gemini completion failed: %w", err)
	}

	return result.Text(), nil
}

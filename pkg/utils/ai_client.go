package utils

import (
	"context"
	"fmt"
	"strings"
)

// PlannerClientInterface is the text-generation collaborator behind
// itinerary building. Implementations must return the model output as a
// raw string; callers own parsing and fallback.
type PlannerClientInterface interface {
	GenerateItinerary(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// NewPlannerClient is a factory for either the OpenRouter or Gemini client.
func NewPlannerClient(provider, apiKey, model string) (PlannerClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openrouter":
		return NewOpenRouterClient(apiKey, model), nil
	case "gemini":
		return NewGeminiPlannerClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// CleanJSONResponse strips markdown code fences some models wrap around
// JSON output.
func CleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

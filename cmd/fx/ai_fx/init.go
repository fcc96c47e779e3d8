package ai_fx

import (
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripforge/pkg/config"
	"tripforge/pkg/utils"
)

var Module = fx.Provide(ProvidePlannerClient)

// ProvidePlannerClient builds the optional text-generation collaborator.
// Without a credential it returns nil and itinerary building falls back to
// templates; that nil is injected rather than kept as package state so
// both branches are testable.
func ProvidePlannerClient(cfg *config.Config, log *zap.Logger) utils.PlannerClientInterface {
	provider := strings.ToLower(cfg.AIProvider)

	var apiKey, model string
	switch provider {
	case "openrouter":
		apiKey, model = cfg.OpenRouterAPIKey, cfg.OpenRouterModel
	case "gemini":
		apiKey, model = cfg.GeminiAPIKey, cfg.GeminiModel
	}
	if apiKey == "" {
		log.Warn("No API key configured, itineraries will use template fallback",
			zap.String("provider", cfg.AIProvider))
		return nil
	}

	client, err := utils.NewPlannerClient(provider, apiKey, model)
	if err != nil {
		log.Warn("Planner client init failed, itineraries will use template fallback", zap.Error(err))
		return nil
	}
	log.Info("Initialized planner client",
		zap.String("provider", provider), zap.String("model", model))
	return client
}

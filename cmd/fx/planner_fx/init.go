package planner_fx

import (
	"math/rand"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

var Module = fx.Provide(
	ProvideFlightService,
	ProvideBudgetService,
	ProvideItineraryService,
)

func ProvideFlightService() services.FlightServiceInterface {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return services.NewFlightService(rng, services.DefaultSynthesisLatency)
}

func ProvideBudgetService() services.BudgetServiceInterface {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return services.NewBudgetService(rng)
}

func ProvideItineraryService(planner utils.PlannerClientInterface, log *zap.Logger) services.ItineraryServiceInterface {
	return services.NewItineraryService(planner, log)
}

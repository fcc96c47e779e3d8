package weather_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripforge/internal/services"
	"tripforge/pkg/config"
	mem "tripforge/pkg/memcache"
)

var Module = fx.Provide(ProvideWeatherService)

func ProvideWeatherService(cfg *config.Config, log *zap.Logger) services.WeatherServiceInterface {
	return services.NewWeatherService(cfg.WeatherAPIKey, mem.NewResponses(), log)
}

package images_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripforge/internal/services"
	"tripforge/pkg/config"
	mem "tripforge/pkg/memcache"
)

var Module = fx.Provide(ProvideImageService)

func ProvideImageService(cfg *config.Config, log *zap.Logger) services.ImageServiceInterface {
	return services.NewImageService(cfg.UnsplashAccessKey, mem.NewResponses(), log)
}

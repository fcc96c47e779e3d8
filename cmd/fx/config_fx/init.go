package config_fx

import (
	"go.uber.org/fx"

	"tripforge/pkg/config"
	"tripforge/pkg/logger"
)

var Module = fx.Provide(
	config.Load,
	logger.New,
)

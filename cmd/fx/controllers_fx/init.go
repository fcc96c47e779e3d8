package controllers_fx

import (
	"go.uber.org/fx"

	"tripforge/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTravelPlanController),
)

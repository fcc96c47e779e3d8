package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripforge/cmd/fx/ai_fx"
	"tripforge/cmd/fx/config_fx"
	"tripforge/cmd/fx/controllers_fx"
	"tripforge/cmd/fx/images_fx"
	"tripforge/cmd/fx/planner_fx"
	"tripforge/cmd/fx/weather_fx"
	"tripforge/internal/api/controllers"
	"tripforge/pkg/config"
	"tripforge/pkg/middleware"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		config_fx.Module,
		ai_fx.Module,
		weather_fx.Module,
		images_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server", zap.String("port", cfg.AppPort))
				if err := engine.Run(":" + cfg.AppPort); err != nil {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(cfg *config.Config, logger *zap.Logger, travelPlanController *controllers.TravelPlanController) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL))

	RegisterRoutes(r, travelPlanController)

	return r
}

func RegisterRoutes(r *gin.Engine, travelPlanController *controllers.TravelPlanController) {
	api := r.Group("/api")
	api.GET("/health", controllers.HealthHandler)
	api.POST("/travel-plan", travelPlanController.CreateTravelPlanHandler)
}

package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// Weather provider (OpenWeatherMap). Empty key means mock data.
	WeatherAPIKey string `mapstructure:"WEATHER_API_KEY"`

	// Image provider (Unsplash). Empty key means fallback images.
	UnsplashAccessKey string `mapstructure:"UNSPLASH_ACCESS_KEY"`

	// Itinerary generation. Provider is "openrouter" or "gemini";
	// a missing key disables generation entirely (template fallback).
	AIProvider       string `mapstructure:"AI_PROVIDER"`
	OpenRouterAPIKey string `mapstructure:"OPENROUTER_API_KEY"`
	OpenRouterModel  string `mapstructure:"OPENROUTER_MODEL"`
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel      string `mapstructure:"GEMINI_MODEL"`
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("FRONTEND_URL", "")
	viper.SetDefault("WEATHER_API_KEY", "")
	viper.SetDefault("UNSPLASH_ACCESS_KEY", "")
	viper.SetDefault("AI_PROVIDER", "openrouter")
	viper.SetDefault("OPENROUTER_API_KEY", "")
	viper.SetDefault("OPENROUTER_MODEL", "openai/gpt-4")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripforge/internal/models/response_models"
	mem "tripforge/pkg/memcache"
	"tripforge/pkg/utils"
)

const weatherCacheTTL = 10 * time.Minute

type WeatherServiceInterface interface {
	GetWeather(ctx context.Context, city string) response_models.WeatherInfo
}

type WeatherService struct {
	apiKey  string
	baseURL string
	http    *http.Client
	cache   mem.ResponseCache
	logger  *zap.Logger
}

func NewWeatherService(apiKey string, cache mem.ResponseCache, logger *zap.Logger) WeatherServiceInterface {
	return &WeatherService{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		http:    &http.Client{Timeout: 5 * time.Second},
		cache:   cache,
		logger:  logger,
	}
}

// GetWeather fetches current conditions for a city. A missing key or any
// transport failure degrades to mock values; an API-level rejection (city
// not found etc.) is passed through as an error message.
func (s *WeatherService) GetWeather(ctx context.Context, city string) response_models.WeatherInfo {
	if s.apiKey == "" {
		return mockWeather(city)
	}

	cacheKey := strings.ToLower(strings.TrimSpace(city))
	if cached, ok := s.cache.Get(cacheKey); ok {
		if info, ok := cached.(response_models.WeatherInfo); ok {
			return info
		}
	}

	info, err := s.fetch(ctx, city)
	if err != nil {
		s.logger.Warn("weather lookup failed, using mock data", zap.String("city", city), zap.Error(err))
		return mockWeather(city)
	}

	s.cache.Set(cacheKey, info, weatherCacheTTL)
	return info
}

type owmResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Message string `json:"message"`
}

func (s *WeatherService) fetch(ctx context.Context, city string) (response_models.WeatherInfo, error) {
	u := fmt.Sprintf("%s?q=%s&appid=%s&units=metric", s.baseURL, url.QueryEscape(city), s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return response_models.WeatherInfo{}, err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return response_models.WeatherInfo{}, fmt.Errorf("%w: %v", utils.ErrWeatherUpstream, err)
	}
	defer resp.Body.Close()

	var data owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return response_models.WeatherInfo{}, err
	}

	if resp.StatusCode != http.StatusOK {
		// Provider answered but rejected the query; surface its message
		// instead of pretending with mock data.
		return response_models.WeatherInfo{
			Error: fmt.Sprintf("Weather error: %s", data.Message),
		}, nil
	}

	info := response_models.WeatherInfo{
		City:        data.Name,
		Temperature: data.Main.Temp,
		Humidity:    data.Main.Humidity,
		WindSpeed:   data.Wind.Speed,
	}
	if len(data.Weather) > 0 {
		info.Description = data.Weather[0].Description
		info.Icon = data.Weather[0].Icon
	}
	return info, nil
}

func mockWeather(city string) response_models.WeatherInfo {
	return response_models.WeatherInfo{
		City:        city,
		Temperature: 22,
		Description: "partly cloudy",
		Humidity:    65,
		WindSpeed:   12,
		Icon:        "02d",
	}
}

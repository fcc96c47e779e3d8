package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	mem "tripforge/pkg/memcache"
)

func TestGetWeatherWithoutKeyUsesMock(t *testing.T) {
	svc := NewWeatherService("", mem.NewResponses(), zap.NewNop())
	w := svc.GetWeather(context.Background(), "Tokyo")

	if w.City != "Tokyo" || w.Temperature != 22 || w.Description != "partly cloudy" ||
		w.Humidity != 65 || w.WindSpeed != 12 || w.Icon != "02d" {
		t.Fatalf("unexpected mock weather: %+v", w)
	}
}

func TestGetWeatherSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "Tokyo" || r.URL.Query().Get("units") != "metric" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{
			"name": "Tokyo",
			"main": {"temp": 27.3, "humidity": 70},
			"weather": [{"description": "clear sky", "icon": "01d"}],
			"wind": {"speed": 4.2}
		}`))
	}))
	defer srv.Close()

	svc := &WeatherService{
		apiKey:  "test-key",
		baseURL: srv.URL,
		http:    srv.Client(),
		cache:   mem.NewResponses(),
		logger:  zap.NewNop(),
	}

	w := svc.GetWeather(context.Background(), "Tokyo")
	if w.City != "Tokyo" || w.Temperature != 27.3 || w.Description != "clear sky" || w.Icon != "01d" {
		t.Fatalf("unexpected weather: %+v", w)
	}
}

func TestGetWeatherAPIErrorPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer srv.Close()

	svc := &WeatherService{
		apiKey:  "test-key",
		baseURL: srv.URL,
		http:    srv.Client(),
		cache:   mem.NewResponses(),
		logger:  zap.NewNop(),
	}

	w := svc.GetWeather(context.Background(), "Nowheresville")
	if w.Error != "Weather error: city not found" {
		t.Fatalf("expected provider error passthrough, got %+v", w)
	}
}

func TestGetWeatherTransportFailureUsesMock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	svc := &WeatherService{
		apiKey:  "test-key",
		baseURL: srv.URL,
		http:    srv.Client(),
		cache:   mem.NewResponses(),
		logger:  zap.NewNop(),
	}

	w := svc.GetWeather(context.Background(), "Tokyo")
	if w.Temperature != 22 || w.Description != "partly cloudy" {
		t.Fatalf("expected mock fallback, got %+v", w)
	}
}

func TestGetWeatherCachesLookups(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"name": "Tokyo", "main": {"temp": 20, "humidity": 60}, "weather": [{"description": "cloudy", "icon": "03d"}], "wind": {"speed": 3}}`))
	}))
	defer srv.Close()

	svc := &WeatherService{
		apiKey:  "test-key",
		baseURL: srv.URL,
		http:    srv.Client(),
		cache:   mem.NewResponses(),
		logger:  zap.NewNop(),
	}

	svc.GetWeather(context.Background(), "Tokyo")
	svc.GetWeather(context.Background(), "tokyo ")
	if calls != 1 {
		t.Fatalf("second lookup should come from cache, provider saw %d calls", calls)
	}
}

func TestResponseCacheExpiry(t *testing.T) {
	cache := mem.NewResponses()
	cache.Set("k", "v", 10*time.Millisecond)
	if _, ok := cache.Get("k"); !ok {
		t.Fatal("fresh entry must be readable")
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok := cache.Get("k"); ok {
		t.Fatal("expired entry must be gone")
	}
}

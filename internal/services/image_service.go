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

const imageCacheTTL = time.Hour

type ImageServiceInterface interface {
	GetDestinationImages(ctx context.Context, destination string) []response_models.ImageResult
}

type ImageService struct {
	accessKey string
	baseURL   string
	http      *http.Client
	cache     mem.ResponseCache
	logger    *zap.Logger
}

func NewImageService(accessKey string, cache mem.ResponseCache, logger *zap.Logger) ImageServiceInterface {
	return &ImageService{
		accessKey: accessKey,
		baseURL:   "https://api.unsplash.com/search/photos",
		http:      &http.Client{Timeout: 5 * time.Second},
		cache:     cache,
		logger:    logger,
	}
}

// GetDestinationImages returns up to three photos for a destination,
// falling back to a fixed keyword-matched set when Unsplash is not
// reachable or configured.
func (s *ImageService) GetDestinationImages(ctx context.Context, destination string) []response_models.ImageResult {
	// "Tokyo, Japan" searches better as just "Tokyo".
	clean := strings.TrimSpace(strings.Split(destination, ",")[0])

	if s.accessKey == "" {
		return fallbackImages(destination)
	}

	cacheKey := strings.ToLower(clean)
	if cached, ok := s.cache.Get(cacheKey); ok {
		if images, ok := cached.([]response_models.ImageResult); ok {
			return images
		}
	}

	images, err := s.search(ctx, clean)
	if err != nil {
		s.logger.Warn("image search failed, using fallback images", zap.String("destination", destination), zap.Error(err))
		return fallbackImages(destination)
	}

	s.cache.Set(cacheKey, images, imageCacheTTL)
	return images
}

type unsplashResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
		AltDescription string `json:"alt_description"`
		User           struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
	} `json:"results"`
}

func (s *ImageService) search(ctx context.Context, destination string) ([]response_models.ImageResult, error) {
	query := url.QueryEscape(destination + " travel tourism")
	u := fmt.Sprintf("%s?query=%s&per_page=3&orientation=landscape&client_id=%s", s.baseURL, query, s.accessKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", utils.ErrImageUpstream, resp.StatusCode)
	}

	var data unsplashResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	images := make([]response_models.ImageResult, 0, 3)
	for _, photo := range data.Results {
		alt := photo.AltDescription
		if alt == "" {
			alt = fmt.Sprintf("%s travel destination", destination)
		}
		images = append(images, response_models.ImageResult{
			URL:             photo.URLs.Regular,
			Alt:             alt,
			Photographer:    photo.User.Name,
			PhotographerURL: photo.User.Links.HTML,
		})
		if len(images) == 3 {
			break
		}
	}
	return images, nil
}

type fallbackImageSet struct {
	keyword string
	images  []response_models.ImageResult
}

// Ordered so lookup stays deterministic for overlapping names.
var fallbackImageSets = []fallbackImageSet{
	{"tokyo", []response_models.ImageResult{
		{URL: "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800&h=600&fit=crop", Alt: "Tokyo skyline", Photographer: "Unsplash"},
		{URL: "https://images.unsplash.com/photo-1490806843957-31f4c9a91c65?w=800&h=600&fit=crop", Alt: "Tokyo temple", Photographer: "Unsplash"},
		{URL: "https://images.unsplash.com/photo-1513407030348-c983a97b98d8?w=800&h=600&fit=crop", Alt: "Tokyo street", Photographer: "Unsplash"},
	}},
	{"bali", []response_models.ImageResult{
		{URL: "https://images.unsplash.com/photo-1537953773345-d172ccf13cf1?w=800&h=600&fit=crop", Alt: "Bali rice terraces", Photographer: "Unsplash"},
		{URL: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop", Alt: "Bali beach", Photographer: "Unsplash"},
		{URL: "https://images.unsplash.com/photo-1518548419970-58e3b4079ab2?w=800&h=600&fit=crop", Alt: "Bali temple", Photographer: "Unsplash"},
	}},
	{"paris", []response_models.ImageResult{
		{URL: "https://images.unsplash.com/photo-1502602898536-47ad22581b52?w=800&h=600&fit=crop", Alt: "Eiffel Tower", Photographer: "Unsplash"},
		{URL: "https://images.unsplash.com/photo-1550340499-a6c60fc8287c?w=800&h=600&fit=crop", Alt: "Paris street", Photographer: "Unsplash"},
		{URL: "https://images.unsplash.com/photo-1520637836862-4d197d17c93a?w=800&h=600&fit=crop", Alt: "Louvre Museum", Photographer: "Unsplash"},
	}},
	{"london", []response_models.ImageResult{
		{URL: "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800&h=600&fit=crop", Alt: "Big Ben", Photographer: "Unsplash"},
		{URL: "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800&h=600&fit=crop", Alt: "London Bridge", Photographer: "Unsplash"},
		{URL: "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800&h=600&fit=crop", Alt: "London Eye", Photographer: "Unsplash"},
	}},
	{"dubai", []response_models.ImageResult{
		{URL: "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800&h=600&fit=crop", Alt: "Burj Khalifa", Photographer: "Unsplash"},
		{URL: "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800&h=600&fit=crop", Alt: "Dubai skyline", Photographer: "Unsplash"},
		{URL: "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800&h=600&fit=crop", Alt: "Dubai desert", Photographer: "Unsplash"},
	}},
	{"singapore", []response_models.ImageResult{
		{URL: "https://images.unsplash.com/photo-1525625293386-3f8f99389edd?w=800&h=600&fit=crop", Alt: "Marina Bay Sands", Photographer: "Unsplash"},
		{URL: "https://images.unsplash.com/photo-1525625293386-3f8f99389edd?w=800&h=600&fit=crop", Alt: "Singapore skyline", Photographer: "Unsplash"},
		{URL: "https://images.unsplash.com/photo-1525625293386-3f8f99389edd?w=800&h=600&fit=crop", Alt: "Gardens by the Bay", Photographer: "Unsplash"},
	}},
}

var genericImages = []response_models.ImageResult{
	{URL: "https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=800&h=600&fit=crop", Alt: "Travel destination", Photographer: "Unsplash"},
	{URL: "https://images.unsplash.com/photo-1469474968028-56623f02e42e?w=800&h=600&fit=crop", Alt: "Beautiful landscape", Photographer: "Unsplash"},
	{URL: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop", Alt: "Travel adventure", Photographer: "Unsplash"},
}

func fallbackImages(destination string) []response_models.ImageResult {
	d := strings.ToLower(destination)
	for _, set := range fallbackImageSets {
		if strings.Contains(d, set.keyword) {
			return set.images
		}
	}
	return genericImages
}

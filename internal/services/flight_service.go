package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"tripforge/internal/models/response_models"
	"tripforge/pkg/utils"
)

// DefaultSynthesisLatency stands in for a real inventory API round trip.
// Callers must tolerate roughly a second before offers come back.
const DefaultSynthesisLatency = time.Second

var domesticAirlines = []string{"IndiGo", "Air India", "SpiceJet", "Vistara", "GoAir"}

type FlightServiceInterface interface {
	SynthesizeFlights(ctx context.Context, origin, destination, startDate string) ([]response_models.FlightOffer, error)
}

type FlightService struct {
	mu      sync.Mutex
	rng     *rand.Rand
	latency time.Duration
}

// NewFlightService builds a synthesizer around an injected random source so
// tests can seed it and assert exact offers.
func NewFlightService(rng *rand.Rand, latency time.Duration) FlightServiceInterface {
	return &FlightService{rng: rng, latency: latency}
}

// IsInternational is a same-string check, not a geographic one: identical
// strings take the domestic path, any difference takes the international
// one.
func IsInternational(origin, destination string) bool {
	return !strings.EqualFold(origin, destination)
}

// SynthesizeFlights fabricates exactly three offers for the route.
func (s *FlightService) SynthesizeFlights(ctx context.Context, origin, destination, startDate string) ([]response_models.FlightOffer, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.latency):
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	offers := make([]response_models.FlightOffer, 0, 3)

	if IsInternational(origin, destination) {
		profiles := LookupRoute(origin, destination)
		for i := 0; i < 3; i++ {
			route := profiles[i%len(profiles)]
			price := route.BasePrice + s.rng.Intn(route.PriceVariation)
			duration := route.DurationHours + float64(s.rng.Intn(2))
			offers = append(offers, s.buildOffer(i+1, route.Airline, startDate, price, duration, route.Stops))
		}
		return offers, nil
	}

	for i := 0; i < 3; i++ {
		airline := domesticAirlines[i%len(domesticAirlines)]
		price := 80 + s.rng.Intn(120)
		duration := 1 + s.rng.Float64()*2
		offers = append(offers, s.buildOffer(i+1, airline, startDate, price, duration, 0))
	}
	return offers, nil
}

func (s *FlightService) buildOffer(id int, airline, startDate string, price int, duration float64, stops int) response_models.FlightOffer {
	departureHour := 6 + s.rng.Intn(12)
	departureMinute := s.rng.Intn(2) * 30

	// Arrival wraps modulo 24h without advancing the calendar date; a
	// long red-eye lands "earlier" on the same day.
	arrivalHour := (departureHour + int(duration)) % 24

	return response_models.FlightOffer{
		ID:           id,
		Airline:      airline,
		FlightNumber: fmt.Sprintf("%s%d", strings.ToUpper(airline[:2]), 1000+s.rng.Intn(9000)),
		Departure:    utils.LocalTimestamp(startDate, departureHour, departureMinute),
		Arrival:      utils.LocalTimestamp(startDate, arrivalHour, departureMinute),
		Duration:     formatDuration(duration),
		Price:        fmt.Sprintf("$%d", price),
		PriceUSD:     price,
		Stops:        stops,
		Class:        "Economy",
		Baggage:      "Included",
		Cancellation: "Flexible",
	}
}

func formatDuration(hours float64) string {
	whole := int(hours)
	minutes := int((hours - float64(whole)) * 60)
	return fmt.Sprintf("%dh %dm", whole, minutes)
}

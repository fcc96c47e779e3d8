package services

import "strings"

// RouteProfile is one airline's pricing on a known route. Prices are whole
// dollars, durations in hours.
type RouteProfile struct {
	Airline        string
	BasePrice      int
	PriceVariation int
	DurationHours  float64
	Stops          int
}

// routeRule matches case-insensitive substrings of the origin and
// destination. Rules are evaluated top to bottom, first match wins, so the
// order below is significant.
type routeRule struct {
	origins      []string
	destinations []string
	profiles     []RouteProfile
}

var routeRules = []routeRule{
	// Bangalore to popular destinations
	{
		origins:      []string{"bangalore", "bengaluru"},
		destinations: []string{"tokyo", "japan"},
		profiles: []RouteProfile{
			{Airline: "Japan Airlines", BasePrice: 350, PriceVariation: 50, DurationHours: 8, Stops: 0},
			{Airline: "Singapore Airlines", BasePrice: 380, PriceVariation: 60, DurationHours: 12, Stops: 1},
			{Airline: "Qatar Airways", BasePrice: 420, PriceVariation: 80, DurationHours: 14, Stops: 1},
		},
	},
	{
		origins:      []string{"bangalore", "bengaluru"},
		destinations: []string{"bali", "indonesia"},
		profiles: []RouteProfile{
			{Airline: "AirAsia", BasePrice: 280, PriceVariation: 40, DurationHours: 4, Stops: 0},
			{Airline: "Singapore Airlines", BasePrice: 320, PriceVariation: 50, DurationHours: 6, Stops: 1},
			{Airline: "Malaysia Airlines", BasePrice: 300, PriceVariation: 45, DurationHours: 5, Stops: 1},
		},
	},
	{
		origins:      []string{"bangalore", "bengaluru"},
		destinations: []string{"paris", "france"},
		profiles: []RouteProfile{
			{Airline: "Air France", BasePrice: 450, PriceVariation: 80, DurationHours: 10, Stops: 0},
			{Airline: "Emirates", BasePrice: 480, PriceVariation: 70, DurationHours: 12, Stops: 1},
			{Airline: "Lufthansa", BasePrice: 520, PriceVariation: 90, DurationHours: 11, Stops: 1},
		},
	},
	{
		origins:      []string{"bangalore", "bengaluru"},
		destinations: []string{"london", "uk"},
		profiles: []RouteProfile{
			{Airline: "British Airways", BasePrice: 480, PriceVariation: 80, DurationHours: 10, Stops: 0},
			{Airline: "Emirates", BasePrice: 500, PriceVariation: 70, DurationHours: 13, Stops: 1},
			{Airline: "Virgin Atlantic", BasePrice: 520, PriceVariation: 90, DurationHours: 10, Stops: 0},
		},
	},
	{
		origins:      []string{"bangalore", "bengaluru"},
		destinations: []string{"dubai", "uae"},
		profiles: []RouteProfile{
			{Airline: "Emirates", BasePrice: 200, PriceVariation: 30, DurationHours: 3, Stops: 0},
			{Airline: "Air India", BasePrice: 180, PriceVariation: 25, DurationHours: 3, Stops: 0},
			{Airline: "IndiGo", BasePrice: 160, PriceVariation: 20, DurationHours: 3, Stops: 0},
		},
	},
	{
		origins:      []string{"bangalore", "bengaluru"},
		destinations: []string{"singapore"},
		profiles: []RouteProfile{
			{Airline: "Singapore Airlines", BasePrice: 180, PriceVariation: 30, DurationHours: 4, Stops: 0},
			{Airline: "IndiGo", BasePrice: 150, PriceVariation: 25, DurationHours: 4, Stops: 0},
			{Airline: "Air India", BasePrice: 170, PriceVariation: 28, DurationHours: 4, Stops: 0},
		},
	},

	// Mumbai to popular destinations
	{
		origins:      []string{"mumbai"},
		destinations: []string{"tokyo", "japan"},
		profiles: []RouteProfile{
			{Airline: "Japan Airlines", BasePrice: 320, PriceVariation: 50, DurationHours: 7, Stops: 0},
			{Airline: "Singapore Airlines", BasePrice: 350, PriceVariation: 60, DurationHours: 11, Stops: 1},
			{Airline: "Qatar Airways", BasePrice: 380, PriceVariation: 70, DurationHours: 13, Stops: 1},
		},
	},
	{
		origins:      []string{"mumbai"},
		destinations: []string{"bali", "indonesia"},
		profiles: []RouteProfile{
			{Airline: "AirAsia", BasePrice: 250, PriceVariation: 40, DurationHours: 3, Stops: 0},
			{Airline: "Singapore Airlines", BasePrice: 280, PriceVariation: 50, DurationHours: 5, Stops: 1},
			{Airline: "Malaysia Airlines", BasePrice: 260, PriceVariation: 45, DurationHours: 4, Stops: 1},
		},
	},

	// Delhi to popular destinations
	{
		origins:      []string{"delhi"},
		destinations: []string{"tokyo", "japan"},
		profiles: []RouteProfile{
			{Airline: "Japan Airlines", BasePrice: 340, PriceVariation: 50, DurationHours: 7, Stops: 0},
			{Airline: "Singapore Airlines", BasePrice: 370, PriceVariation: 60, DurationHours: 11, Stops: 1},
			{Airline: "Qatar Airways", BasePrice: 400, PriceVariation: 70, DurationHours: 13, Stops: 1},
		},
	},
	{
		origins:      []string{"delhi"},
		destinations: []string{"bali", "indonesia"},
		profiles: []RouteProfile{
			{Airline: "AirAsia", BasePrice: 270, PriceVariation: 40, DurationHours: 4, Stops: 0},
			{Airline: "Singapore Airlines", BasePrice: 300, PriceVariation: 50, DurationHours: 6, Stops: 1},
			{Airline: "Malaysia Airlines", BasePrice: 280, PriceVariation: 45, DurationHours: 5, Stops: 1},
		},
	},
}

// Generic long-haul pricing for routes with no specific rule.
var fallbackRouteProfiles = []RouteProfile{
	{Airline: "Emirates", BasePrice: 400, PriceVariation: 100, DurationHours: 8, Stops: 1},
	{Airline: "Singapore Airlines", BasePrice: 450, PriceVariation: 120, DurationHours: 10, Stops: 1},
	{Airline: "Qatar Airways", BasePrice: 420, PriceVariation: 110, DurationHours: 9, Stops: 1},
}

// LookupRoute returns the airline profiles for an origin/destination pair.
func LookupRoute(origin, destination string) []RouteProfile {
	o := strings.ToLower(origin)
	d := strings.ToLower(destination)

	for _, rule := range routeRules {
		if containsAny(o, rule.origins) && containsAny(d, rule.destinations) {
			return rule.profiles
		}
	}
	return fallbackRouteProfiles
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

package response_models

// WeatherInfo mirrors the shape the frontend weather card consumes.
// Either the data fields are populated or Error carries the provider's
// message (city not found and similar API-level failures).
type WeatherInfo struct {
	City        string  `json:"city,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	Description string  `json:"description,omitempty"`
	Humidity    int     `json:"humidity,omitempty"`
	WindSpeed   float64 `json:"windSpeed,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// FlightOffer is one synthesized option. Offers are generated fresh per
// request; flight numbers are not guaranteed unique. PriceUSD carries the
// numeric amount for computation, Price is the formatted boundary value.
type FlightOffer struct {
	ID           int    `json:"id"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	Duration     string `json:"duration"`
	Price        string `json:"price"`
	Stops        int    `json:"stops"`
	Class        string `json:"class"`
	Baggage      string `json:"baggage"`
	Cancellation string `json:"cancellation"`

	PriceUSD int `json:"-"`
}

// BudgetBreakdown is the single source of truth for trip cost. Once
// computed it is never altered downstream, only substituted wholesale for a
// non-conforming generated one. The *USD fields are computation-side copies
// of the formatted values.
type BudgetBreakdown struct {
	Flights       string `json:"flights"`
	Accommodation string `json:"accommodation,omitempty"`
	Activities    string `json:"activities,omitempty"`
	Food          string `json:"food,omitempty"`
	Transport     string `json:"transport,omitempty"`
	Visa          string `json:"visa,omitempty"`
	Total         string `json:"total"`
	Note          string `json:"note,omitempty"`
	Error         string `json:"error,omitempty"`
	ExceedsBudget bool   `json:"exceedsBudget,omitempty"`
	Impossible    bool   `json:"impossible,omitempty"`

	FlightsUSD int `json:"-"`
	TotalUSD   int `json:"-"`
}

type DayPlan struct {
	Activities []string `json:"activities"`
}

// TravelPlan is the itinerary object: day-keyed activity lists plus the
// budget and recommendations. Day keys are "day1".."dayN".
type TravelPlan struct {
	Itinerary       map[string]DayPlan `json:"itinerary"`
	Budget          BudgetBreakdown    `json:"budget"`
	Recommendations []string           `json:"recommendations"`
}

type ImageResult struct {
	URL             string `json:"url"`
	Alt             string `json:"alt"`
	Photographer    string `json:"photographer"`
	PhotographerURL string `json:"photographerUrl,omitempty"`
}

// TravelPlanResponse is the success body of POST /api/travel-plan.
type TravelPlanResponse struct {
	Weather   WeatherInfo   `json:"weather"`
	Flights   []FlightOffer `json:"flights"`
	Itinerary TravelPlan    `json:"itinerary"`
	Images    []ImageResult `json:"images"`
}

// InfeasibleResponse is returned (still HTTP 200) when the cheapest flight
// alone exceeds the stated budget.
type InfeasibleResponse struct {
	Error   string          `json:"error"`
	Weather WeatherInfo     `json:"weather"`
	Flights []FlightOffer   `json:"flights"`
	Budget  BudgetBreakdown `json:"budget"`
	Images  []ImageResult   `json:"images"`
}

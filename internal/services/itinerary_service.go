package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"tripforge/internal/models/response_models"
	"tripforge/pkg/utils"
)

const plannerTimeout = 30 * time.Second

var dollarAmountRe = regexp.MustCompile(`\$(\d+)`)

// ItineraryInputs carries everything the reconciler needs. Budget is the
// authoritative locally computed breakdown.
type ItineraryInputs struct {
	UserRequest  string
	Weather      response_models.WeatherInfo
	Flights      []response_models.FlightOffer
	Budget       response_models.BudgetBreakdown
	Origin       string
	Destination  string
	DurationDays int
	BudgetLimit  *int
}

type ItineraryServiceInterface interface {
	BuildItinerary(ctx context.Context, in ItineraryInputs) response_models.TravelPlan
}

type ItineraryService struct {
	planner utils.PlannerClientInterface
	logger  *zap.Logger
}

// NewItineraryService takes an optional planner client; nil means no
// generation credential is configured and templates are used.
func NewItineraryService(planner utils.PlannerClientInterface, logger *zap.Logger) ItineraryServiceInterface {
	return &ItineraryService{planner: planner, logger: logger}
}

// BuildItinerary asks the planner for a day-by-day plan and reconciles its
// budget against the locally computed one. Every failure path degrades to a
// template paired with the authoritative budget.
func (s *ItineraryService) BuildItinerary(ctx context.Context, in ItineraryInputs) response_models.TravelPlan {
	if s.planner == nil {
		return fullTemplatePlan(in.Budget)
	}

	ctx, cancel := context.WithTimeout(ctx, plannerTimeout)
	defer cancel()

	raw, err := s.planner.GenerateItinerary(ctx, systemPrompt(in), userPrompt(in))
	if err != nil {
		s.logger.Warn("planner call failed, using template itinerary", zap.Error(err))
		return shortTemplatePlan(in.Budget)
	}

	var plan response_models.TravelPlan
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &plan); err != nil {
		s.logger.Warn("planner response was not valid json, using template itinerary", zap.Error(err))
		return shortTemplatePlan(in.Budget)
	}

	// The generated budget is only trusted when its total fits the user's
	// limit; anything over (or unreadable) is replaced with the local one.
	if in.BudgetLimit != nil {
		total, ok := extractDollarAmount(plan.Budget.Total)
		if !ok || total > *in.BudgetLimit {
			plan.Budget = in.Budget
			plan.Recommendations = append(plan.Recommendations,
				"Note: Budget has been adjusted to meet your constraints")
		}
	}

	return plan
}

func extractDollarAmount(s string) (int, bool) {
	m := dollarAmountRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func systemPrompt(in ItineraryInputs) string {
	budgetJSON, _ := json.Marshal(in.Budget)

	return fmt.Sprintf(`You are a travel planner. The budget and flight data are FIXED and REALISTIC - you CANNOT modify them.

CRITICAL RULES:
- The budget breakdown uses REALISTIC cost ranges (e.g., $20/night accommodation, $10/day food)
- These costs are based on actual travel data and cannot be adjusted
- Use the EXACT budget object provided - do not change any numbers
- Use the EXACT flight data provided - do not invent different flight costs
- Focus ONLY on creating realistic activities and recommendations
- If the total exceeds user's budget, that's the reality - don't try to force it lower

Format your response as JSON with this structure:
{
  "itinerary": {
    "day1": {"activities": ["activity1", "activity2", "activity3"]},
    "day2": {"activities": ["activity1", "activity2", "activity3"]},
    "day3": {"activities": ["activity1", "activity2", "activity3"]},
    "day4": {"activities": ["activity1", "activity2", "activity3"]},
    "day5": {"activities": ["activity1", "activity2", "activity3"]}
  },
  "budget": %s,
  "recommendations": ["tip1", "tip2", "tip3"]
}

The budget object is FIXED - use it exactly as provided without any modifications.`, budgetJSON)
}

func userPrompt(in ItineraryInputs) string {
	weatherJSON, _ := json.Marshal(in.Weather)
	flightsJSON, _ := json.Marshal(in.Flights)
	budgetJSON, _ := json.Marshal(in.Budget)

	limit := "Not specified"
	if in.BudgetLimit != nil {
		limit = fmt.Sprintf("$%d", *in.BudgetLimit)
	}

	return fmt.Sprintf(`
User Request: %s

Fixed Data (DO NOT CHANGE):
- Origin: %s
- Destination: %s
- Duration: %d days
- Weather: %s
- Available Flights: %s
- Fixed Budget: %s
- User Budget Limit: %s

Create a %d-day travel itinerary from %s to %s that:
1. Uses the EXACT budget provided above (do not modify it)
2. Includes realistic activities for %s
3. Considers the current weather: %s
4. Provides practical travel tips

Return only valid JSON with the exact budget object provided.`,
		in.UserRequest,
		in.Origin, in.Destination, in.DurationDays,
		weatherJSON, flightsJSON, budgetJSON, limit,
		in.DurationDays, in.Origin, in.Destination,
		in.Destination, in.Weather.Description)
}

// fullTemplatePlan is the itinerary served when no planner is configured.
// It is always five days, whatever the trip duration.
func fullTemplatePlan(budget response_models.BudgetBreakdown) response_models.TravelPlan {
	return response_models.TravelPlan{
		Itinerary: map[string]response_models.DayPlan{
			"day1": {Activities: []string{
				"Arrive and check into your hotel",
				"Explore the city center and main attractions",
				"Enjoy a welcome dinner at a local restaurant",
			}},
			"day2": {Activities: []string{
				"Visit historical landmarks and museums",
				"Take a guided city tour",
				"Experience local culture and traditions",
			}},
			"day3": {Activities: []string{
				"Adventure activities and outdoor exploration",
				"Shopping at local markets and boutiques",
				"Relax at a spa or wellness center",
			}},
			"day4": {Activities: []string{
				"Day trip to nearby attractions",
				"Try local cuisine and street food",
				"Evening entertainment and nightlife",
			}},
			"day5": {Activities: []string{
				"Final exploration and souvenir shopping",
				"Packing and departure preparation",
				"Farewell dinner at a special restaurant",
			}},
		},
		Budget: budget,
		Recommendations: []string{
			"Check local weather before packing",
			"Book activities and restaurants in advance",
			"Try local cuisine and street food",
			"Keep emergency contacts and travel documents handy",
			"Learn basic phrases in the local language",
			"Pack comfortable walking shoes",
			"Consider travel insurance for peace of mind",
			"Check visa requirements for international travel",
			"Download offline maps and translation apps",
			"Research local customs and etiquette",
		},
	}
}

// shortTemplatePlan backs the planner failure paths.
func shortTemplatePlan(budget response_models.BudgetBreakdown) response_models.TravelPlan {
	return response_models.TravelPlan{
		Itinerary: map[string]response_models.DayPlan{
			"day1": {Activities: []string{"Explore the city", "Visit local attractions"}},
			"day2": {Activities: []string{"Cultural activities", "Local cuisine"}},
			"day3": {Activities: []string{"Adventure activities", "Shopping"}},
			"day4": {Activities: []string{"Relaxation", "Spa day"}},
			"day5": {Activities: []string{"Final exploration", "Departure preparation"}},
		},
		Budget: budget,
		Recommendations: []string{
			"Check local weather before packing",
			"Book activities in advance",
			"Try local cuisine",
			"Keep emergency contacts handy",
		},
	}
}

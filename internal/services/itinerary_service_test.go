package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"tripforge/internal/models/response_models"
)

type fakePlanner struct {
	response string
	err      error
	prompts  []string
}

func (f *fakePlanner) GenerateItinerary(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.prompts = append(f.prompts, systemPrompt, userPrompt)
	return f.response, f.err
}

func testBudget() response_models.BudgetBreakdown {
	return response_models.BudgetBreakdown{
		Flights:       "$380",
		Accommodation: "$200 (avg $40 per night)",
		Activities:    "$150 (avg $30 per day)",
		Food:          "$125 (avg $25 per day)",
		Transport:     "$75 (avg $15 per day)",
		Visa:          "$0",
		Total:         "$930",
		FlightsUSD:    380,
		TotalUSD:      930,
	}
}

func testInputs() ItineraryInputs {
	return ItineraryInputs{
		UserRequest:  "Plan me a trip from Bangalore to Tokyo from 2025-06-01 to 2025-06-06 with a budget of 1000. Include flights and weather considerations.",
		Weather:      response_models.WeatherInfo{City: "Tokyo", Temperature: 22, Description: "partly cloudy"},
		Budget:       testBudget(),
		Origin:       "Bangalore",
		Destination:  "Tokyo",
		DurationDays: 5,
		BudgetLimit:  intPtr(1000),
	}
}

func TestBuildItineraryWithoutPlanner(t *testing.T) {
	svc := NewItineraryService(nil, zap.NewNop())
	plan := svc.BuildItinerary(context.Background(), testInputs())

	if len(plan.Itinerary) != 5 {
		t.Fatalf("template is always 5 days, got %d", len(plan.Itinerary))
	}
	if _, ok := plan.Itinerary["day1"]; !ok {
		t.Fatal("days must be keyed day1..day5")
	}
	if !reflect.DeepEqual(plan.Budget, testBudget()) {
		t.Fatalf("template budget must equal the computed one: %+v", plan.Budget)
	}
	if len(plan.Recommendations) < 10 {
		t.Fatalf("full template carries at least 10 recommendations, got %d", len(plan.Recommendations))
	}
}

func TestBuildItineraryTemplateIgnoresDuration(t *testing.T) {
	svc := NewItineraryService(nil, zap.NewNop())
	in := testInputs()
	in.DurationDays = 12

	plan := svc.BuildItinerary(context.Background(), in)
	if len(plan.Itinerary) != 5 {
		t.Fatalf("template stays 5 days regardless of duration, got %d", len(plan.Itinerary))
	}
}

func TestBuildItineraryPlannerError(t *testing.T) {
	fake := &fakePlanner{err: errors.New("upstream timeout")}
	svc := NewItineraryService(fake, zap.NewNop())

	plan := svc.BuildItinerary(context.Background(), testInputs())
	if !reflect.DeepEqual(plan.Budget, testBudget()) {
		t.Fatal("failure fallback must carry the computed budget")
	}
	if len(plan.Recommendations) != 4 {
		t.Fatalf("failure fallback uses the short recommendation list, got %d", len(plan.Recommendations))
	}
}

func TestBuildItineraryBadJSON(t *testing.T) {
	fake := &fakePlanner{response: "Here is your trip! day 1: museums..."}
	svc := NewItineraryService(fake, zap.NewNop())

	plan := svc.BuildItinerary(context.Background(), testInputs())
	if len(plan.Itinerary) != 5 || len(plan.Recommendations) != 4 {
		t.Fatalf("unparseable output must fall back to the short template: %+v", plan)
	}
	if !reflect.DeepEqual(plan.Budget, testBudget()) {
		t.Fatal("fallback budget must equal the computed one")
	}
}

func TestBuildItineraryOverridesOverLimitBudget(t *testing.T) {
	fake := &fakePlanner{response: `{
		"itinerary": {"day1": {"activities": ["Senso-ji temple", "Ramen tour"]}},
		"budget": {"flights": "$380", "total": "$4500"},
		"recommendations": ["Carry cash"]
	}`}
	svc := NewItineraryService(fake, zap.NewNop())

	plan := svc.BuildItinerary(context.Background(), testInputs())
	if !reflect.DeepEqual(plan.Budget, testBudget()) {
		t.Fatalf("over-limit budget must be replaced with the computed one: %+v", plan.Budget)
	}
	last := plan.Recommendations[len(plan.Recommendations)-1]
	if !strings.Contains(last, "adjusted") {
		t.Fatalf("expected adjustment note, got %q", last)
	}
	if plan.Itinerary["day1"].Activities[0] != "Senso-ji temple" {
		t.Error("generated activities should be kept even when the budget is replaced")
	}
}

func TestBuildItineraryTrustsWithinLimitBudget(t *testing.T) {
	fake := &fakePlanner{response: "```json\n" + `{
		"itinerary": {"day1": {"activities": ["Senso-ji temple"]}},
		"budget": {"flights": "$380", "total": "$930"},
		"recommendations": ["Carry cash"]
	}` + "\n```"}
	svc := NewItineraryService(fake, zap.NewNop())

	plan := svc.BuildItinerary(context.Background(), testInputs())
	if plan.Budget.Total != "$930" || plan.Budget.Accommodation != "" {
		t.Fatalf("within-limit generated budget is trusted as-is: %+v", plan.Budget)
	}
	if len(plan.Recommendations) != 1 {
		t.Fatalf("no adjustment note expected: %v", plan.Recommendations)
	}
}

func TestBuildItineraryPromptEmbedsFixedData(t *testing.T) {
	fake := &fakePlanner{response: `{"itinerary":{},"budget":{"total":"$930"},"recommendations":[]}`}
	svc := NewItineraryService(fake, zap.NewNop())

	svc.BuildItinerary(context.Background(), testInputs())
	joined := strings.Join(fake.prompts, "\n")
	for _, want := range []string{`"total":"$930"`, "Bangalore", "Tokyo", "partly cloudy", "$1000", "DO NOT CHANGE"} {
		if !strings.Contains(joined, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

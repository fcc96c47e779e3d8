package services

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"tripforge/internal/models/response_models"
)

// SpendTier is the cost bracket derived from the user's stated limit.
type SpendTier string

const (
	TierBudget SpendTier = "budget"
	TierMid    SpendTier = "mid"
	TierLuxury SpendTier = "luxury"
)

// SpendTierForLimit maps a budget limit to its tier. No limit means the
// conservative budget tier.
func SpendTierForLimit(limit *int) SpendTier {
	switch {
	case limit == nil:
		return TierBudget
	case *limit > 5000:
		return TierLuxury
	case *limit > 2000:
		return TierMid
	default:
		return TierBudget
	}
}

// CostTriple holds one daily rate per spend tier, in whole dollars.
type CostTriple struct {
	Budget int
	Mid    int
	Luxury int
}

func (t CostTriple) For(tier SpendTier) int {
	switch tier {
	case TierLuxury:
		return t.Luxury
	case TierMid:
		return t.Mid
	default:
		return t.Budget
	}
}

// DestinationCostProfile is the per-night/per-day rate card for one cost
// band of destinations.
type DestinationCostProfile struct {
	AccommodationPerNight CostTriple
	FoodPerDay            CostTriple
	ActivitiesPerDay      CostTriple
	TransportPerDay       CostTriple
	VisaCost              int
}

type costRule struct {
	keywords []string
	profile  DestinationCostProfile
}

// Ordered bands: premium first, then medium, then budget-friendly. First
// match wins.
var costRules = []costRule{
	{
		keywords: []string{"tokyo", "japan", "london", "uk", "paris", "france", "new york", "usa"},
		profile: DestinationCostProfile{
			AccommodationPerNight: CostTriple{Budget: 40, Mid: 80, Luxury: 200},
			FoodPerDay:            CostTriple{Budget: 25, Mid: 50, Luxury: 120},
			ActivitiesPerDay:      CostTriple{Budget: 30, Mid: 60, Luxury: 150},
			TransportPerDay:       CostTriple{Budget: 15, Mid: 25, Luxury: 60},
		},
	},
	{
		keywords: []string{"singapore", "dubai", "bangkok", "thailand"},
		profile: DestinationCostProfile{
			AccommodationPerNight: CostTriple{Budget: 25, Mid: 50, Luxury: 120},
			FoodPerDay:            CostTriple{Budget: 15, Mid: 35, Luxury: 80},
			ActivitiesPerDay:      CostTriple{Budget: 20, Mid: 45, Luxury: 100},
			TransportPerDay:       CostTriple{Budget: 10, Mid: 18, Luxury: 40},
		},
	},
	{
		keywords: []string{"bali", "indonesia", "vietnam", "cambodia", "nepal", "sri lanka"},
		profile: DestinationCostProfile{
			AccommodationPerNight: CostTriple{Budget: 15, Mid: 35, Luxury: 80},
			FoodPerDay:            CostTriple{Budget: 8, Mid: 20, Luxury: 50},
			ActivitiesPerDay:      CostTriple{Budget: 12, Mid: 25, Luxury: 60},
			TransportPerDay:       CostTriple{Budget: 5, Mid: 12, Luxury: 25},
		},
	},
}

var defaultCostProfile = DestinationCostProfile{
	AccommodationPerNight: CostTriple{Budget: 20, Mid: 50, Luxury: 120},
	FoodPerDay:            CostTriple{Budget: 12, Mid: 30, Luxury: 70},
	ActivitiesPerDay:      CostTriple{Budget: 18, Mid: 40, Luxury: 90},
	TransportPerDay:       CostTriple{Budget: 8, Mid: 18, Luxury: 40},
}

// DestinationCosts classifies a destination into its cost band.
func DestinationCosts(destination string) DestinationCostProfile {
	d := strings.ToLower(destination)
	for _, rule := range costRules {
		if containsAny(d, rule.keywords) {
			return rule.profile
		}
	}
	return defaultCostProfile
}

// ParseBudgetLimit reads a user-supplied limit like "2000" or "$2000".
// Unparseable input counts as no limit.
func ParseBudgetLimit(raw string) *int {
	s := strings.TrimSpace(strings.ReplaceAll(raw, "$", ""))
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

type BudgetServiceInterface interface {
	ComputeBudget(origin, destination string, durationDays int, budgetLimit *int, flights []response_models.FlightOffer) response_models.BudgetBreakdown
}

type BudgetService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewBudgetService(rng *rand.Rand) BudgetServiceInterface {
	return &BudgetService{rng: rng}
}

// ComputeBudget combines the cheapest offer with the destination rate card
// and trip duration. Costs are realistic and never scaled down to fit the
// limit; infeasible and over-budget cases are flagged instead.
func (b *BudgetService) ComputeBudget(origin, destination string, durationDays int, budgetLimit *int, flights []response_models.FlightOffer) response_models.BudgetBreakdown {
	flightsCost := b.flightCost(origin, destination, flights)

	costs := DestinationCosts(destination)
	tier := SpendTierForLimit(budgetLimit)

	if budgetLimit != nil && flightsCost > *budgetLimit {
		return response_models.BudgetBreakdown{
			Error:      fmt.Sprintf("Your budget of $%d is too low. The cheapest flight costs $%d.", *budgetLimit, flightsCost),
			Flights:    fmt.Sprintf("$%d", flightsCost),
			Total:      fmt.Sprintf("$%d", flightsCost),
			Impossible: true,
			FlightsUSD: flightsCost,
			TotalUSD:   flightsCost,
		}
	}

	accommodationRate := costs.AccommodationPerNight.For(tier)
	foodRate := costs.FoodPerDay.For(tier)
	activitiesRate := costs.ActivitiesPerDay.For(tier)
	transportRate := costs.TransportPerDay.For(tier)

	accommodation := accommodationRate * durationDays
	food := foodRate * durationDays
	activities := activitiesRate * durationDays
	transport := transportRate * durationDays

	total := flightsCost + accommodation + food + activities + transport + costs.VisaCost

	breakdown := response_models.BudgetBreakdown{
		Flights:       fmt.Sprintf("$%d", flightsCost),
		Accommodation: fmt.Sprintf("$%d (avg $%d per night)", accommodation, accommodationRate),
		Activities:    fmt.Sprintf("$%d (avg $%d per day)", activities, activitiesRate),
		Food:          fmt.Sprintf("$%d (avg $%d per day)", food, foodRate),
		Transport:     fmt.Sprintf("$%d (avg $%d per day)", transport, transportRate),
		Visa:          fmt.Sprintf("$%d", costs.VisaCost),
		Total:         fmt.Sprintf("$%d", total),
		FlightsUSD:    flightsCost,
		TotalUSD:      total,
	}

	if budgetLimit != nil && total > *budgetLimit {
		breakdown.Note = fmt.Sprintf("Total exceeds your budget of $%d. Consider extending your budget or reducing trip duration.", *budgetLimit)
		breakdown.ExceedsBudget = true
	}

	return breakdown
}

// flightCost picks the cheapest offer, or estimates when no offers are
// available.
func (b *BudgetService) flightCost(origin, destination string, flights []response_models.FlightOffer) int {
	if len(flights) > 0 {
		cheapest := offerPrice(flights[0])
		for _, f := range flights[1:] {
			if p := offerPrice(f); p < cheapest {
				cheapest = p
			}
		}
		return cheapest
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if IsInternational(origin, destination) {
		return 700 + b.rng.Intn(400)
	}
	return 100 + b.rng.Intn(200)
}

func offerPrice(f response_models.FlightOffer) int {
	if f.PriceUSD > 0 {
		return f.PriceUSD
	}
	n, _ := strconv.Atoi(strings.TrimPrefix(f.Price, "$"))
	return n
}

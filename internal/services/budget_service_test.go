package services

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"tripforge/internal/models/response_models"
)

func intPtr(n int) *int { return &n }

func testOffer(price int) response_models.FlightOffer {
	return response_models.FlightOffer{Price: "$" + strconv.Itoa(price), PriceUSD: price}
}

func newTestBudgetService(seed int64) BudgetServiceInterface {
	return NewBudgetService(rand.New(rand.NewSource(seed)))
}

func TestSpendTierForLimit(t *testing.T) {
	if got := SpendTierForLimit(nil); got != TierBudget {
		t.Errorf("no limit: got %s", got)
	}
	if got := SpendTierForLimit(intPtr(2000)); got != TierBudget {
		t.Errorf("2000: got %s", got)
	}
	if got := SpendTierForLimit(intPtr(2001)); got != TierMid {
		t.Errorf("2001: got %s", got)
	}
	if got := SpendTierForLimit(intPtr(5001)); got != TierLuxury {
		t.Errorf("5001: got %s", got)
	}
}

func TestParseBudgetLimit(t *testing.T) {
	if got := ParseBudgetLimit("2000"); got == nil || *got != 2000 {
		t.Errorf("plain number: got %v", got)
	}
	if got := ParseBudgetLimit("$2000"); got == nil || *got != 2000 {
		t.Errorf("dollar prefix: got %v", got)
	}
	if got := ParseBudgetLimit(""); got != nil {
		t.Errorf("empty: got %v", got)
	}
	if got := ParseBudgetLimit("lots"); got != nil {
		t.Errorf("garbage: got %v", got)
	}
}

func TestComputeBudgetBreakdown(t *testing.T) {
	svc := newTestBudgetService(1)
	flights := []response_models.FlightOffer{testOffer(420), testOffer(380), testOffer(460)}

	b := svc.ComputeBudget("Bangalore", "Tokyo", 5, nil, flights)

	// Cheapest flight, premium destination band, budget tier.
	if b.FlightsUSD != 380 {
		t.Fatalf("flight cost should be the cheapest offer, got %d", b.FlightsUSD)
	}
	want := 380 + 40*5 + 25*5 + 30*5 + 15*5
	if b.TotalUSD != want {
		t.Fatalf("total = %d, want %d", b.TotalUSD, want)
	}
	if b.Total != "$"+strconv.Itoa(want) {
		t.Errorf("formatted total %q disagrees with %d", b.Total, want)
	}
	if b.Accommodation != "$200 (avg $40 per night)" {
		t.Errorf("unexpected accommodation line: %q", b.Accommodation)
	}
	if b.Visa != "$0" {
		t.Errorf("visa should always be $0, got %q", b.Visa)
	}
	if b.ExceedsBudget || b.Impossible || b.Note != "" || b.Error != "" {
		t.Errorf("no-limit breakdown must carry no flags: %+v", b)
	}
}

func TestComputeBudgetMonotonicInDuration(t *testing.T) {
	svc := newTestBudgetService(1)
	flights := []response_models.FlightOffer{testOffer(400)}

	short := svc.ComputeBudget("Bangalore", "Tokyo", 5, nil, flights)
	long := svc.ComputeBudget("Bangalore", "Tokyo", 10, nil, flights)
	if long.TotalUSD < short.TotalUSD {
		t.Fatalf("doubling duration decreased total: %d -> %d", short.TotalUSD, long.TotalUSD)
	}
}

func TestComputeBudgetImpossible(t *testing.T) {
	svc := newTestBudgetService(1)
	flights := []response_models.FlightOffer{testOffer(380), testOffer(420)}

	b := svc.ComputeBudget("Bangalore", "Tokyo", 5, intPtr(300), flights)
	if !b.Impossible {
		t.Fatal("expected impossible flag")
	}
	if b.TotalUSD != b.FlightsUSD || b.Total != b.Flights {
		t.Errorf("impossible total must equal flight cost: %+v", b)
	}
	if b.Error == "" || !strings.Contains(b.Error, "$300") || !strings.Contains(b.Error, "$380") {
		t.Errorf("error should name both amounts: %q", b.Error)
	}
	if b.Accommodation != "" {
		t.Errorf("impossible result must skip the full breakdown: %+v", b)
	}
}

func TestComputeBudgetExceedsKeepsRealisticValues(t *testing.T) {
	svc := newTestBudgetService(1)
	flights := []response_models.FlightOffer{testOffer(400)}

	unlimited := svc.ComputeBudget("Bangalore", "Tokyo", 5, nil, flights)
	limited := svc.ComputeBudget("Bangalore", "Tokyo", 5, intPtr(900), flights)

	if !limited.ExceedsBudget || limited.Note == "" {
		t.Fatalf("expected overrun flag and note: %+v", limited)
	}
	// Values are never scaled down to fit the limit.
	if limited.Total != unlimited.Total || limited.Accommodation != unlimited.Accommodation ||
		limited.Food != unlimited.Food || limited.Activities != unlimited.Activities ||
		limited.Transport != unlimited.Transport {
		t.Errorf("breakdown must match the no-limit case:\n%+v\n%+v", limited, unlimited)
	}
	if limited.Impossible {
		t.Error("overrun is not infeasibility")
	}
}

func TestComputeBudgetEstimatesWithoutOffers(t *testing.T) {
	intl := newTestBudgetService(3).ComputeBudget("Bangalore", "Tokyo", 5, nil, nil)
	if intl.FlightsUSD < 700 || intl.FlightsUSD > 1099 {
		t.Errorf("international estimate %d outside $700-1100", intl.FlightsUSD)
	}

	dom := newTestBudgetService(3).ComputeBudget("Mumbai", "Mumbai", 5, nil, nil)
	if dom.FlightsUSD < 100 || dom.FlightsUSD > 299 {
		t.Errorf("domestic estimate %d outside $100-300", dom.FlightsUSD)
	}
}

func TestDestinationCostsBands(t *testing.T) {
	premium := DestinationCosts("Tokyo, Japan")
	if premium.AccommodationPerNight.Budget != 40 {
		t.Errorf("Tokyo should hit the premium band: %+v", premium.AccommodationPerNight)
	}
	medium := DestinationCosts("Bangkok")
	if medium.AccommodationPerNight.Budget != 25 {
		t.Errorf("Bangkok should hit the medium band: %+v", medium.AccommodationPerNight)
	}
	cheap := DestinationCosts("Bali")
	if cheap.AccommodationPerNight.Budget != 15 {
		t.Errorf("Bali should hit the budget band: %+v", cheap.AccommodationPerNight)
	}
	def := DestinationCosts("Reykjavik")
	if def.AccommodationPerNight.Budget != 20 {
		t.Errorf("unknown destination should hit the default band: %+v", def.AccommodationPerNight)
	}
}

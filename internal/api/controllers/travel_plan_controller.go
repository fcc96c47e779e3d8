package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type TravelPlanController struct {
	weatherService   services.WeatherServiceInterface
	imageService     services.ImageServiceInterface
	flightService    services.FlightServiceInterface
	budgetService    services.BudgetServiceInterface
	itineraryService services.ItineraryServiceInterface
	logger           *zap.Logger
}

func NewTravelPlanController(
	weatherService services.WeatherServiceInterface,
	imageService services.ImageServiceInterface,
	flightService services.FlightServiceInterface,
	budgetService services.BudgetServiceInterface,
	itineraryService services.ItineraryServiceInterface,
	logger *zap.Logger,
) *TravelPlanController {
	return &TravelPlanController{
		weatherService:   weatherService,
		imageService:     imageService,
		flightService:    flightService,
		budgetService:    budgetService,
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// CreateTravelPlanHandler runs the whole pipeline: weather and images in
// parallel, then flights, budget, and the reconciled itinerary.
func (tc *TravelPlanController) CreateTravelPlanHandler(c *gin.Context) {
	var req request_models.TravelPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" ||
		strings.TrimSpace(req.StartDate) == "" || strings.TrimSpace(req.EndDate) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	duration := utils.TripDurationDays(start, end)
	budgetLimit := services.ParseBudgetLimit(req.Budget)
	ctx := c.Request.Context()

	// Weather and images are independent lookups.
	var (
		weather response_models.WeatherInfo
		images  []response_models.ImageResult
		wg      sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		weather = tc.weatherService.GetWeather(ctx, req.Destination)
	}()
	go func() {
		defer wg.Done()
		images = tc.imageService.GetDestinationImages(ctx, req.Destination)
	}()

	flights, err := tc.flightService.SynthesizeFlights(ctx, req.Origin, req.Destination, req.StartDate)
	if err != nil {
		wg.Wait()
		tc.logger.Error("flight synthesis failed", zap.Error(err))
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	wg.Wait()

	budget := tc.budgetService.ComputeBudget(req.Origin, req.Destination, duration, budgetLimit, flights)

	if budget.Impossible {
		c.JSON(http.StatusOK, response_models.InfeasibleResponse{
			Error:   budget.Error,
			Weather: weather,
			Flights: flights,
			Budget:  budget,
			Images:  images,
		})
		return
	}

	plan := tc.itineraryService.BuildItinerary(ctx, services.ItineraryInputs{
		UserRequest:  userRequestSentence(req),
		Weather:      weather,
		Flights:      flights,
		Budget:       budget,
		Origin:       req.Origin,
		Destination:  req.Destination,
		DurationDays: duration,
		BudgetLimit:  budgetLimit,
	})

	c.JSON(http.StatusOK, response_models.TravelPlanResponse{
		Weather:   weather,
		Flights:   flights,
		Itinerary: plan,
		Images:    images,
	})
}

func userRequestSentence(req request_models.TravelPlanRequest) string {
	s := fmt.Sprintf("Plan me a trip from %s to %s from %s to %s",
		req.Origin, req.Destination, req.StartDate, req.EndDate)
	if strings.TrimSpace(req.Budget) != "" {
		s += fmt.Sprintf(" with a budget of %s", req.Budget)
	}
	return s + ". Include flights and weather considerations."
}

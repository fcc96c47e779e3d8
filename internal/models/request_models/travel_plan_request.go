package request_models

// TravelPlanRequest is the body of POST /api/travel-plan. Budget is an
// optional dollar amount, with or without the leading "$".
type TravelPlanRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Budget      string `json:"budget"`
}

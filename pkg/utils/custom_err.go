package utils

import "errors"

var (
	ErrPlannerEmpty    = errors.New("planner returned no content")
	ErrWeatherUpstream = errors.New("weather upstream error")
	ErrImageUpstream   = errors.New("image upstream error")
)

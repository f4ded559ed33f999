package dto

import "github.com/proyectos-indefinidos/AnaDec/internal/core/domain"

// FutureValueRequest compounds PresentValue over Periods of the rate's own period
type FutureValueRequest struct {
	PresentValue float64 `json:"present_value" binding:"gte=0"`
	Periods      int     `json:"periods" binding:"gte=0,max=1200"`
	Rate         string  `json:"rate" binding:"required"`
}

// SeriesRequest builds a growth series for charting
type SeriesRequest struct {
	Principal float64 `json:"principal" binding:"gte=0"`
	Periods   int     `json:"periods" binding:"gte=0,max=1200"`
	Rate      string  `json:"rate" binding:"required"`
}

type FutureValueResponse struct {
	PresentValue float64 `json:"present_value"`
	Periods      int     `json:"periods"`
	PeriodicRate float64 `json:"periodic_rate"`
	FutureValue  float64 `json:"future_value"`
}

type SeriesResponse struct {
	Kind   string               `json:"kind"`
	Points []domain.SeriesPoint `json:"points"`
}

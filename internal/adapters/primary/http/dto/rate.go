package dto

import (
	"fmt"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// ParseRateRequest carries a rate in notation, e.g. "24% NA/MV"
type ParseRateRequest struct {
	Rate string `json:"rate" binding:"required"`
}

// ConvertRateRequest asks for the equivalent effective rate over TargetPeriod months
type ConvertRateRequest struct {
	Rate         string `json:"rate" binding:"required"`
	TargetPeriod int    `json:"target_period" binding:"required,min=1"`
}

// NominalRateRequest asks for the nominal quote of a rate over NominalPeriod
// months (default 12), compounded every CompoundingPeriod months (default:
// the rate's own period)
type NominalRateRequest struct {
	Rate              string `json:"rate" binding:"required"`
	NominalPeriod     int    `json:"nominal_period" binding:"omitempty,min=1"`
	CompoundingPeriod int    `json:"compounding_period" binding:"omitempty,min=1"`
}

// OptionRequest is a named offer to compare
type OptionRequest struct {
	Name string `json:"name"`
	Rate string `json:"rate" binding:"required"`
}

// OptionsRequest is a list of offers
type OptionsRequest struct {
	Options []OptionRequest `json:"options" binding:"required,min=1,dive"`
}

// BestRateRequest picks the best offer for a mode ("credit" or "investment")
type BestRateRequest struct {
	Options []OptionRequest `json:"options" binding:"dive"`
	Mode    string          `json:"mode"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// RateResponse is a parsed rate with its derived figures
type RateResponse struct {
	Rate         domain.Rate `json:"rate"`
	Effective    domain.Rate `json:"effective"`
	PeriodicRate float64     `json:"periodic_rate"`
	EA           float64     `json:"ea"`
}

// ConvertRateResponse holds the source and converted rates
type ConvertRateResponse struct {
	From domain.Rate `json:"from"`
	To   domain.Rate `json:"to"`
}

// StandardizeResponse lists options reduced to EA
type StandardizeResponse struct {
	Items []domain.StandardizedOption `json:"items"`
}

// BestRateResponse holds the winning option, null when none was given
type BestRateResponse struct {
	Mode string                     `json:"mode"`
	Best *domain.StandardizedOption `json:"best"`
}

// ============================================================================
// Converters
// ============================================================================

// ToRateOptions parses every option rate, reporting the first bad index
func ToRateOptions(reqs []OptionRequest) ([]domain.RateOption, error) {
	opts := make([]domain.RateOption, 0, len(reqs))
	for i, r := range reqs {
		rate, err := domain.ParseRate(r.Rate)
		if err != nil {
			return nil, fmt.Errorf("option %d: %w", i, err)
		}
		opts = append(opts, domain.RateOption{Name: r.Name, Rate: &rate})
	}
	return opts, nil
}

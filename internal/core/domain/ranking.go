package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultOptionName is used for options submitted without a name.
const DefaultOptionName = "unnamed"

// ComparisonMode selects which end of the EA scale wins.
type ComparisonMode string

const (
	// ModeCredit ranks the lowest EA (cheapest borrowing) first.
	ModeCredit ComparisonMode = "credit"
	// ModeInvestment ranks the highest EA (best return) first.
	ModeInvestment ComparisonMode = "investment"
)

// ParseComparisonMode accepts the English mode names and the Spanish
// "credito" / "inversion" aliases.
func ParseComparisonMode(s string) (ComparisonMode, error) {
	switch s {
	case "credit", "credito", "crédito":
		return ModeCredit, nil
	case "investment", "inversion", "inversión":
		return ModeInvestment, nil
	default:
		return "", ErrInvalidMode
	}
}

// RateOption is a named offer to compare.
type RateOption struct {
	Name string
	Rate *Rate
}

// StandardizedOption is an option reduced to its effective annual rate.
type StandardizedOption struct {
	Name string  `json:"name"`
	EA   float64 `json:"ea"`
}

// RankingEntry is one row of a ranking.
type RankingEntry struct {
	Name     string  `json:"name"`
	EA       float64 `json:"ea"`
	Position int     `json:"position"`
}

// Ranking is the persisted result of a comparison.
type Ranking struct {
	ID        uuid.UUID
	Mode      ComparisonMode
	CreatedAt time.Time
	Entries   []RankingEntry
}

// Best returns the top entry, or nil when the ranking is empty.
func (r *Ranking) Best() *RankingEntry {
	if r == nil || len(r.Entries) == 0 {
		return nil
	}
	e := r.Entries[0]
	return &e
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
)

// RankingResponse represents a Ranking in API responses
type RankingResponse struct {
	ID        uuid.UUID             `json:"id"`
	Mode      string                `json:"mode"`
	CreatedAt time.Time             `json:"created_at"`
	Entries   []domain.RankingEntry `json:"entries"`
	Best      *domain.RankingEntry  `json:"best,omitempty"`
}

// ListRankingsResponse represents the list response
type ListRankingsResponse struct {
	Items      []RankingResponse `json:"items"`
	Total      int               `json:"total"`
	PageSize   int               `json:"page_size"`
	NextOffset int               `json:"next_offset"`
}

// ToRankingResponse converts domain.Ranking to RankingResponse
func ToRankingResponse(r *domain.Ranking) RankingResponse {
	entries := r.Entries
	if entries == nil {
		entries = []domain.RankingEntry{}
	}
	return RankingResponse{
		ID:        r.ID,
		Mode:      string(r.Mode),
		CreatedAt: r.CreatedAt,
		Entries:   entries,
		Best:      r.Best(),
	}
}

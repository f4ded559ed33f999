package dto

import (
	"time"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
)

// Fallbacks shown when the provider leaves a field blank
const (
	DefaultNewsTitle       = "Untitled"
	DefaultNewsSource      = "Unknown source"
	DefaultNewsDescription = "No description available."
)

// NewsItemResponse represents a news card in API responses
type NewsItemResponse struct {
	Title       string     `json:"title"`
	Source      string     `json:"source"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Description string     `json:"description"`
	URL         string     `json:"url,omitempty"`
}

type ListNewsResponse struct {
	Items       []NewsItemResponse `json:"items"`
	Total       int                `json:"total"`
	LastUpdated *time.Time         `json:"last_updated,omitempty"`
}

// ToNewsItemResponse converts domain.NewsItem, filling blank fields with defaults
func ToNewsItemResponse(n domain.NewsItem) NewsItemResponse {
	resp := NewsItemResponse{
		Title:       n.Title,
		Source:      n.Source,
		Description: n.Description,
		URL:         n.URL,
	}
	if resp.Title == "" {
		resp.Title = DefaultNewsTitle
	}
	if resp.Source == "" {
		resp.Source = DefaultNewsSource
	}
	if resp.Description == "" {
		resp.Description = DefaultNewsDescription
	}
	if !n.PublishedAt.IsZero() {
		t := n.PublishedAt
		resp.PublishedAt = &t
	}
	return resp
}

// ToListNewsResponse converts a slice of news items
func ToListNewsResponse(items []domain.NewsItem, lastUpdated time.Time) ListNewsResponse {
	out := make([]NewsItemResponse, 0, len(items))
	for _, n := range items {
		out = append(out, ToNewsItemResponse(n))
	}
	resp := ListNewsResponse{Items: out, Total: len(out)}
	if !lastUpdated.IsZero() {
		resp.LastUpdated = &lastUpdated
	}
	return resp
}

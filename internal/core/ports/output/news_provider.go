package ports

import (
	"context"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
)

// NewsQuery describes a single topic search against the news provider.
type NewsQuery struct {
	Topic    string
	Language string
	PageSize int
}

// NewsProvider defines the contract for fetching financial news
type NewsProvider interface {
	Fetch(ctx context.Context, query NewsQuery) ([]domain.NewsItem, error)

	// IsAvailable reports whether the provider has credentials configured.
	IsAvailable() bool
}

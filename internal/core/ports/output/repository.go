package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
)

type RankingListFilter struct {
	Mode   domain.ComparisonMode
	Limit  int
	Offset int
}

type RankingRepository interface {
	Save(ctx context.Context, ranking *domain.Ranking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ranking, error)
	Latest(ctx context.Context) (*domain.Ranking, error)
	List(ctx context.Context, filter RankingListFilter) ([]*domain.Ranking, int, error)
}

package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/ports/output"
)

// MockRankingRepo is a mock of RankingRepository.
type MockRankingRepo struct {
	mock.Mock
}

func (m *MockRankingRepo) Save(ctx context.Context, ranking *domain.Ranking) error {
	args := m.Called(ctx, ranking)
	return args.Error(0)
}

func (m *MockRankingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ranking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ranking), args.Error(1)
}

func (m *MockRankingRepo) Latest(ctx context.Context) (*domain.Ranking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ranking), args.Error(1)
}

func (m *MockRankingRepo) List(ctx context.Context, filter ports.RankingListFilter) ([]*domain.Ranking, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Ranking), args.Int(1), args.Error(2)
}

// MockNewsProvider is a mock of NewsProvider.
type MockNewsProvider struct {
	mock.Mock
}

func (m *MockNewsProvider) Fetch(ctx context.Context, query ports.NewsQuery) ([]domain.NewsItem, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NewsItem), args.Error(1)
}

func (m *MockNewsProvider) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/ports/output"
	"github.com/proyectos-indefinidos/AnaDec/internal/testutil"
)

func newTestComparator(t *testing.T) (*ComparatorService, *testutil.MockRankingRepo) {
	t.Helper()
	repo := new(testutil.MockRankingRepo)
	return NewComparatorService(newTestStandardizer(t), repo), repo
}

func TestComparatorService_CompareCredit(t *testing.T) {
	svc, repo := newTestComparator(t)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Ranking")).Return(nil)

	ranking, err := svc.CompareCredit(context.Background(), []domain.RateOption{
		option("Banco C", "30% NA/MV"),
		option("Banco A", "24% NA/MV"),
		option("Banco B", "2% MV"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, ranking.ID)
	assert.Equal(t, domain.ModeCredit, ranking.Mode)
	require.Len(t, ranking.Entries, 3)
	assert.Equal(t, domain.RankingEntry{Name: "Banco A", EA: 0.268242, Position: 1}, ranking.Entries[0])
	assert.Equal(t, domain.RankingEntry{Name: "Banco B", EA: 0.268242, Position: 2}, ranking.Entries[1])
	assert.Equal(t, domain.RankingEntry{Name: "Banco C", EA: 0.344889, Position: 3}, ranking.Entries[2])
	repo.AssertExpectations(t)
}

func TestComparatorService_CompareInvestment(t *testing.T) {
	svc, repo := newTestComparator(t)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(r *domain.Ranking) bool {
		return r.Mode == domain.ModeInvestment && len(r.Entries) == 2
	})).Return(nil)

	ranking, err := svc.CompareInvestment(context.Background(), []domain.RateOption{
		option("CDT X", "10% EA"),
		option("Fondo Y", "0.8% MV"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Fondo Y", ranking.Entries[0].Name)
	assert.Equal(t, 1, ranking.Entries[0].Position)
	assert.Equal(t, "CDT X", ranking.Entries[1].Name)
	repo.AssertExpectations(t)
}

func TestComparatorService_Compare_Errors(t *testing.T) {
	svc, repo := newTestComparator(t)

	_, err := svc.CompareCredit(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoOptions)

	_, err = svc.Compare(context.Background(), []domain.RateOption{option("A", "10% EA")}, "savings")
	assert.ErrorIs(t, err, domain.ErrInvalidMode)

	_, err = svc.CompareCredit(context.Background(), []domain.RateOption{{Name: "A"}})
	assert.ErrorIs(t, err, domain.ErrOptionMissingRate)

	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestComparatorService_Compare_SaveFails(t *testing.T) {
	svc, repo := newTestComparator(t)
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := svc.CompareCredit(context.Background(), []domain.RateOption{option("A", "10% EA")})
	assert.ErrorContains(t, err, "save ranking")
}

func TestComparatorService_Best(t *testing.T) {
	svc, repo := newTestComparator(t)
	latest := &domain.Ranking{
		ID:   uuid.New(),
		Mode: domain.ModeCredit,
		Entries: []domain.RankingEntry{
			{Name: "Banco A", EA: 0.268242, Position: 1},
		},
	}
	repo.On("Latest", mock.Anything).Return(latest, nil)

	best, err := svc.Best(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Banco A", best.Name)
}

func TestComparatorService_Best_NoRanking(t *testing.T) {
	svc, repo := newTestComparator(t)
	repo.On("Latest", mock.Anything).Return(nil, domain.ErrRankingNotFound)

	_, err := svc.Best(context.Background())
	assert.ErrorIs(t, err, domain.ErrRankingNotFound)
}

func TestComparatorService_List_ClampsLimit(t *testing.T) {
	svc, repo := newTestComparator(t)
	repo.On("List", mock.Anything, ports.RankingListFilter{Limit: 100}).Return([]*domain.Ranking{}, 0, nil)
	repo.On("List", mock.Anything, ports.RankingListFilter{Limit: 20}).Return([]*domain.Ranking{}, 0, nil)

	_, _, err := svc.List(context.Background(), ports.RankingListFilter{Limit: 500})
	require.NoError(t, err)
	_, _, err = svc.List(context.Background(), ports.RankingListFilter{Limit: 0, Offset: -3})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestComparatorService_Get(t *testing.T) {
	svc, repo := newTestComparator(t)
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&domain.Ranking{ID: id}, nil)

	r, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, r.ID)
}

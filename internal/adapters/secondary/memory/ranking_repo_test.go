package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/ports/output"
)

func ranking(mode domain.ComparisonMode, at time.Time, names ...string) *domain.Ranking {
	r := &domain.Ranking{ID: uuid.New(), Mode: mode, CreatedAt: at}
	for i, n := range names {
		r.Entries = append(r.Entries, domain.RankingEntry{Name: n, Position: i + 1})
	}
	return r
}

func TestRankingRepo_LatestAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRankingRepository()

	_, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, domain.ErrRankingNotFound)

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	first := ranking(domain.ModeCredit, t0, "A")
	second := ranking(domain.ModeInvestment, t0.Add(time.Minute), "B")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Entries[0].Name)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrRankingNotFound)
}

func TestRankingRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRankingRepository()
	r := ranking(domain.ModeCredit, time.Now(), "A")
	require.NoError(t, repo.Save(ctx, r))

	r.Entries[0].Name = "mutated"
	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Entries[0].Name)
}

func TestRankingRepo_List(t *testing.T) {
	ctx := context.Background()
	repo := NewRankingRepository()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		mode := domain.ModeCredit
		if i%2 == 1 {
			mode = domain.ModeInvestment
		}
		require.NoError(t, repo.Save(ctx, ranking(mode, t0.Add(time.Duration(i)*time.Minute), "x")))
	}

	items, total, err := repo.List(ctx, ports.RankingListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, items, 2)
	assert.Equal(t, t0.Add(4*time.Minute), items[0].CreatedAt)

	items, total, err = repo.List(ctx, ports.RankingListFilter{Mode: domain.ModeInvestment, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, items, 2)

	items, _, err = repo.List(ctx, ports.RankingListFilter{Limit: 10, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, items)
}

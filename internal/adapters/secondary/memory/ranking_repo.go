// Package memory holds in-process repositories used when no database is configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/ports/output"
)

type rankingRepo struct {
	mu       sync.RWMutex
	rankings []*domain.Ranking
}

func NewRankingRepository() ports.RankingRepository {
	return &rankingRepo{}
}

func (r *rankingRepo) Save(_ context.Context, ranking *domain.Ranking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rankings = append(r.rankings, clone(ranking))
	return nil
}

func (r *rankingRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Ranking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rk := range r.rankings {
		if rk.ID == id {
			return clone(rk), nil
		}
	}
	return nil, domain.ErrRankingNotFound
}

// Latest returns the ranking saved last.
func (r *rankingRepo) Latest(_ context.Context) (*domain.Ranking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.rankings) == 0 {
		return nil, domain.ErrRankingNotFound
	}
	return clone(r.rankings[len(r.rankings)-1]), nil
}

func (r *rankingRepo) List(_ context.Context, filter ports.RankingListFilter) ([]*domain.Ranking, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*domain.Ranking, 0, len(r.rankings))
	for i := len(r.rankings) - 1; i >= 0; i-- {
		rk := r.rankings[i]
		if filter.Mode != "" && rk.Mode != filter.Mode {
			continue
		}
		matched = append(matched, rk)
	}
	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].CreatedAt.After(matched[b].CreatedAt)
	})

	total := len(matched)
	start := min(max(filter.Offset, 0), total)
	end := total
	if filter.Limit > 0 {
		end = min(start+filter.Limit, total)
	}

	out := make([]*domain.Ranking, 0, end-start)
	for _, rk := range matched[start:end] {
		out = append(out, clone(rk))
	}
	return out, total, nil
}

func clone(rk *domain.Ranking) *domain.Ranking {
	c := *rk
	c.Entries = append([]domain.RankingEntry(nil), rk.Entries...)
	return &c
}

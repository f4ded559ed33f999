package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/ports/output"
)

// ComparatorService ranks offers by EA and keeps every ranking it produces.
// The most recent one is the "latest ranking" that Best reads from.
type ComparatorService struct {
	standardizer *Standardizer
	rankingRepo  ports.RankingRepository
	now          func() time.Time
}

func NewComparatorService(standardizer *Standardizer, rankingRepo ports.RankingRepository) *ComparatorService {
	return &ComparatorService{
		standardizer: standardizer,
		rankingRepo:  rankingRepo,
		now:          time.Now,
	}
}

// CompareCredit ranks loans: lowest EA (lowest cost) first.
func (s *ComparatorService) CompareCredit(ctx context.Context, options []domain.RateOption) (*domain.Ranking, error) {
	return s.compare(ctx, options, domain.ModeCredit)
}

// CompareInvestment ranks investments: highest EA (best return) first.
func (s *ComparatorService) CompareInvestment(ctx context.Context, options []domain.RateOption) (*domain.Ranking, error) {
	return s.compare(ctx, options, domain.ModeInvestment)
}

// Compare dispatches on mode.
func (s *ComparatorService) Compare(ctx context.Context, options []domain.RateOption, mode domain.ComparisonMode) (*domain.Ranking, error) {
	switch mode {
	case domain.ModeCredit, domain.ModeInvestment:
		return s.compare(ctx, options, mode)
	default:
		return nil, domain.ErrInvalidMode
	}
}

func (s *ComparatorService) compare(ctx context.Context, options []domain.RateOption, mode domain.ComparisonMode) (*domain.Ranking, error) {
	if len(options) == 0 {
		return nil, domain.ErrNoOptions
	}

	std, err := s.standardizer.StandardizeOptions(options)
	if err != nil {
		return nil, err
	}
	sortByEA(std, mode)

	entries := make([]domain.RankingEntry, 0, len(std))
	for i, op := range std {
		entries = append(entries, domain.RankingEntry{Name: op.Name, EA: op.EA, Position: i + 1})
	}

	ranking := &domain.Ranking{
		ID:        uuid.New(),
		Mode:      mode,
		CreatedAt: s.now().UTC(),
		Entries:   entries,
	}
	if err := s.rankingRepo.Save(ctx, ranking); err != nil {
		return nil, fmt.Errorf("save ranking: %w", err)
	}

	log.WithFields(log.Fields{
		"ranking_id": ranking.ID,
		"mode":       mode,
		"options":    len(entries),
		"best":       entries[0].Name,
	}).Debug("ranking computed")

	return ranking, nil
}

// Best returns the top entry of the latest ranking.
func (s *ComparatorService) Best(ctx context.Context) (*domain.RankingEntry, error) {
	latest, err := s.rankingRepo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	best := latest.Best()
	if best == nil {
		return nil, domain.ErrRankingNotFound
	}
	return best, nil
}

func (s *ComparatorService) Get(ctx context.Context, id uuid.UUID) (*domain.Ranking, error) {
	return s.rankingRepo.GetByID(ctx, id)
}

// Page size bounds for ranking history listings.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// NormalizeListFilter applies the default and maximum page size and drops
// negative offsets.
func NormalizeListFilter(filter ports.RankingListFilter) ports.RankingListFilter {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return filter
}

func (s *ComparatorService) List(ctx context.Context, filter ports.RankingListFilter) ([]*domain.Ranking, int, error) {
	return s.rankingRepo.List(ctx, NormalizeListFilter(filter))
}

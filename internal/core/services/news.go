package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/ports/output"
)

// NewsOptions configures which topics are fetched and how long they are cached.
type NewsOptions struct {
	Topics   []string
	Language string
	PageSize int
	TTL      time.Duration
}

// NewsService keeps a cached financial news feed in front of a provider.
type NewsService struct {
	provider ports.NewsProvider
	opts     NewsOptions
	now      func() time.Time

	mu         sync.Mutex
	cache      []domain.NewsItem
	lastUpdate time.Time
}

func NewNewsService(provider ports.NewsProvider, opts NewsOptions) *NewsService {
	if opts.TTL <= 0 {
		opts.TTL = 15 * time.Minute
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 20
	}
	if len(opts.Topics) == 0 {
		opts.Topics = []string{"finanzas"}
	}
	return &NewsService{provider: provider, opts: opts, now: time.Now}
}

// LastUpdate returns when the cache was last refreshed.
func (s *NewsService) LastUpdate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUpdate
}

// Get returns cached news matching filter, refreshing the cache first when
// it is empty or older than the TTL. A failed refresh falls back to stale
// items when there are any.
func (s *NewsService) Get(ctx context.Context, filter string) ([]domain.NewsItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache == nil || s.now().Sub(s.lastUpdate) >= s.opts.TTL {
		if err := s.refreshLocked(ctx); err != nil {
			if s.cache == nil {
				return nil, err
			}
			log.WithError(err).WithField("cached_items", len(s.cache)).Warn("news refresh failed, serving stale cache")
		}
	}

	return filterNews(s.cache, filter), nil
}

// ForceUpdate refreshes the feed regardless of the cache age.
func (s *NewsService) ForceUpdate(ctx context.Context) ([]domain.NewsItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refreshLocked(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.NewsItem, len(s.cache))
	copy(out, s.cache)
	return out, nil
}

func (s *NewsService) refreshLocked(ctx context.Context) error {
	if s.provider == nil || !s.provider.IsAvailable() {
		return domain.ErrNewsUnavailable
	}

	results := make([][]domain.NewsItem, len(s.opts.Topics))
	g, gctx := errgroup.WithContext(ctx)
	for idx, topic := range s.opts.Topics {
		g.Go(func() error {
			items, err := s.provider.Fetch(gctx, ports.NewsQuery{
				Topic:    topic,
				Language: s.opts.Language,
				PageSize: s.opts.PageSize,
			})
			if err != nil {
				return fmt.Errorf("topic %q: %w", topic, err)
			}
			results[idx] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.cache = mergeNews(results)
	s.lastUpdate = s.now()

	log.WithFields(log.Fields{
		"topics": len(s.opts.Topics),
		"items":  len(s.cache),
	}).Info("news cache refreshed")
	return nil
}

// mergeNews flattens per-topic results, drops duplicates by URL (or title
// when the URL is missing) and orders them newest first.
func mergeNews(results [][]domain.NewsItem) []domain.NewsItem {
	seen := make(map[string]struct{})
	merged := make([]domain.NewsItem, 0)
	for _, items := range results {
		for _, it := range items {
			key := it.URL
			if key == "" {
				key = "title:" + strings.ToLower(strings.TrimSpace(it.Title))
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, it)
		}
	}
	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].PublishedAt.After(merged[b].PublishedAt)
	})
	return merged
}

func filterNews(items []domain.NewsItem, filter string) []domain.NewsItem {
	needle := strings.ToLower(strings.TrimSpace(filter))
	out := make([]domain.NewsItem, 0, len(items))
	for _, it := range items {
		if needle == "" ||
			strings.Contains(strings.ToLower(it.Title), needle) ||
			strings.Contains(strings.ToLower(it.Description), needle) {
			out = append(out, it)
		}
	}
	return out
}

package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/proyectos-indefinidos/AnaDec/internal/config"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
	ports "github.com/proyectos-indefinidos/AnaDec/internal/core/ports/output"
)

type newsClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewNewsClient creates a NewsAPI-compatible provider adapter
func NewNewsClient(cfg *config.NewsConfig) ports.NewsProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &newsClient{
		baseURL: cfg.URL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *newsClient) IsAvailable() bool {
	return c.apiKey != "" && c.baseURL != ""
}

// NewsAPI response structures
type everythingResponse struct {
	Status   string    `json:"status"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Articles []article `json:"articles"`
}

type article struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

func (c *newsClient) Fetch(ctx context.Context, query ports.NewsQuery) ([]domain.NewsItem, error) {
	if !c.IsAvailable() {
		return nil, domain.ErrNewsUnavailable
	}

	params := url.Values{}
	params.Set("q", query.Topic)
	if query.Language != "" {
		params.Set("language", query.Language)
	}
	if query.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(query.PageSize))
	}
	params.Set("sortBy", "publishedAt")

	reqURL := fmt.Sprintf("%s/v2/everything?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create news request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	log.WithFields(log.Fields{
		"topic": query.Topic,
		"url":   c.baseURL,
	}).Debug("fetching news")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNewsFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrNewsFetchFailed, resp.StatusCode, string(body))
	}

	var payload everythingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}
	if payload.Status != "" && payload.Status != "ok" {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrNewsFetchFailed, payload.Code, payload.Message)
	}

	items := make([]domain.NewsItem, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		published, _ := time.Parse(time.RFC3339, a.PublishedAt)
		items = append(items, domain.NewsItem{
			Title:       a.Title,
			Source:      a.Source.Name,
			PublishedAt: published,
			Description: a.Description,
			URL:         a.URL,
		})
	}
	return items, nil
}

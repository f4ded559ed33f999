package domain

import "time"

// NewsItem is a financial news article.
type NewsItem struct {
	Title       string
	Source      string
	PublishedAt time.Time
	Description string
	URL         string
}

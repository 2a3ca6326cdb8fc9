// Package article defines the canonical record produced by the ingestion
// pipeline and served by the API.
package article

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/LJTian/NewsPulse/internal/sentiment"
)

// Article is built once by the normalizer and never modified afterwards.
type Article struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Summary          string    `json:"summary"`
	Content          string    `json:"content"`
	URL              string    `json:"url"`
	Source           string    `json:"source"`
	Topic            string    `json:"topic"`
	PublishedAt      time.Time `json:"publishedAt"`
	SentimentScore   float64   `json:"sentimentScore"`
	SentimentLabel   string    `json:"sentimentLabel"`
	Images           []string  `json:"images"`
	AffectedEntities []string  `json:"affectedEntities"`
}

var (
	ErrEmptyTitle     = errors.New("article: empty title")
	ErrBadURL         = errors.New("article: url is not absolute")
	ErrScoreRange     = errors.New("article: sentiment score outside [0,1]")
	ErrLabelMismatch  = errors.New("article: sentiment label does not match score")
	ErrEmptyID        = errors.New("article: empty id")
	ErrNilCollections = errors.New("article: images/affectedEntities must be non-nil")
)

// Validate checks the invariants every served article must hold.
func (a Article) Validate() error {
	if a.ID == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	if !IsAbsoluteURL(a.URL) {
		return fmt.Errorf("%w: %q", ErrBadURL, a.URL)
	}
	if a.SentimentScore < 0 || a.SentimentScore > 1 {
		return fmt.Errorf("%w: %v", ErrScoreRange, a.SentimentScore)
	}
	if a.SentimentLabel != sentiment.Label(a.SentimentScore) {
		return fmt.Errorf("%w: %q for %v", ErrLabelMismatch, a.SentimentLabel, a.SentimentScore)
	}
	if a.Images == nil || a.AffectedEntities == nil {
		return ErrNilCollections
	}
	return nil
}

// IsAbsoluteURL reports whether raw is an http(s) URL with a host.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

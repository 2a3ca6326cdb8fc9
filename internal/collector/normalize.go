package collector

import (
	"time"

	"github.com/LJTian/NewsPulse/internal/article"
	"github.com/LJTian/NewsPulse/internal/sentiment"
	"github.com/LJTian/NewsPulse/internal/topic"
	"github.com/google/uuid"
)

// Normalizer turns screened candidates of one source into articles.
type Normalizer struct {
	Source    string
	FetchedAt time.Time
	NewID     func() string
}

// NewNormalizer returns a normalizer assigning random UUIDs.
func NewNormalizer(source string, fetchedAt time.Time) Normalizer {
	return Normalizer{Source: source, FetchedAt: fetchedAt, NewID: uuid.NewString}
}

// Normalize fills defaults, classifies and scores c, and validates the result.
func (n Normalizer) Normalize(c Candidate) (article.Article, error) {
	summary := c.Summary
	if summary == "" {
		summary = c.Title
	}
	content := c.Content
	if content == "" {
		content = summary
	}
	published := c.Published
	if published.IsZero() {
		published = n.FetchedAt
	}
	images := make([]string, 0, len(c.Images))
	for _, img := range c.Images {
		images = appendDistinct(images, img)
	}

	mood := sentiment.Score(c.Title + " " + summary)
	a := article.Article{
		ID:               n.NewID(),
		Title:            c.Title,
		Summary:          summary,
		Content:          content,
		URL:              c.Link,
		Source:           n.Source,
		Topic:            topic.Classify(c.Title, c.Link, c.Summary),
		PublishedAt:      published.UTC(),
		SentimentScore:   mood.Score,
		SentimentLabel:   mood.Label,
		Images:           images,
		AffectedEntities: []string{},
	}
	if err := a.Validate(); err != nil {
		return article.Article{}, err
	}
	return a, nil
}

package article

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func validArticle() Article {
	return Article{
		ID:               "id-1",
		Title:            "Monsoon arrives early in Kerala this year",
		Summary:          "summary",
		Content:          "summary",
		URL:              "https://example.com/news/1",
		Source:           "Example",
		Topic:            "agriculture",
		PublishedAt:      time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		SentimentScore:   0.5,
		SentimentLabel:   "Neutral",
		Images:           []string{},
		AffectedEntities: []string{},
	}
}

func TestValidateAcceptsWellFormedArticle(t *testing.T) {
	if err := validArticle().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsBrokenInvariants(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(a *Article)
		want   error
	}{
		{"empty title", func(a *Article) { a.Title = "  " }, ErrEmptyTitle},
		{"relative url", func(a *Article) { a.URL = "/news/1" }, ErrBadURL},
		{"ftp url", func(a *Article) { a.URL = "ftp://example.com/x" }, ErrBadURL},
		{"score above one", func(a *Article) { a.SentimentScore = 1.2; a.SentimentLabel = "Very Positive" }, ErrScoreRange},
		{"score below zero", func(a *Article) { a.SentimentScore = -0.1; a.SentimentLabel = "Very Negative" }, ErrScoreRange},
		{"label mismatch", func(a *Article) { a.SentimentLabel = "Positive" }, ErrLabelMismatch},
		{"nil images", func(a *Article) { a.Images = nil }, ErrNilCollections},
		{"empty id", func(a *Article) { a.ID = "" }, ErrEmptyID},
	}
	for _, c := range cases {
		a := validArticle()
		c.mutate(&a)
		if err := a.Validate(); !errors.Is(err, c.want) {
			t.Fatalf("%s: Validate() = %v, want %v", c.name, err, c.want)
		}
	}
}

func TestJSONFieldNames(t *testing.T) {
	bs, err := json.Marshal(validArticle())
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	out := string(bs)
	for _, key := range []string{`"publishedAt":"2024-06-01T08:00:00Z"`, `"sentimentScore":0.5`, `"images":[]`, `"affectedEntities":[]`} {
		if !strings.Contains(out, key) {
			t.Fatalf("json %s missing %s", out, key)
		}
	}
}

package collector

import (
	"context"
	"log/slog"
	"time"

	"github.com/LJTian/NewsPulse/internal/article"
	"github.com/LJTian/NewsPulse/internal/logger"
	"github.com/LJTian/NewsPulse/internal/retry"
)

// Fetcher pulls one source: every configured URL through the retry executor,
// then extraction, screening, dedup and normalization. It never fails; a
// broken URL only contributes nothing.
type Fetcher struct {
	src SourceConfig
	dl  Downloader
	log *slog.Logger
	now func() time.Time
}

// NewFetcher builds a fetcher for src. A nil logger discards output.
func NewFetcher(src SourceConfig, dl Downloader, log *slog.Logger) *Fetcher {
	if log == nil {
		log = logger.Discard()
	}
	return &Fetcher{
		src: src,
		dl:  dl,
		log: log.With("source", src.ID),
		now: time.Now,
	}
}

func (f *Fetcher) ID() string { return f.src.ID }

func (f *Fetcher) Name() string { return f.src.Name }

func (f *Fetcher) Source() SourceConfig { return f.src }

// Fetch returns the accepted articles in discovery order, never nil.
func (f *Fetcher) Fetch(ctx context.Context, sink Sink) []article.Article {
	if sink == nil {
		sink = nopSink{}
	}
	norm := NewNormalizer(f.src.Name, f.now().UTC())
	dedup := NewDeduplicator(f.src.TitleDedup)
	out := make([]article.Article, 0)

	for _, u := range f.src.URLs {
		if err := ctx.Err(); err != nil {
			f.log.Warn("fetch cancelled", "url", u, "err", err)
			break
		}
		raw, attempts, err := f.download(ctx, u)
		sink.Request(f.src.ID, u, attempts, err)
		if err != nil {
			f.log.Error("fetch failed", "url", u, "attempts", attempts, "err", err)
			continue
		}

		cands, err := f.extract(raw, u, sink)
		if err != nil {
			f.log.Error("extract failed", "url", u, "err", err)
			continue
		}

		for _, c := range cands {
			if reason := screen(c, f.src.MinTitleLength); reason != "" {
				sink.Rejected(f.src.ID, reason)
				continue
			}
			if !dedup.Accept(c) {
				sink.Rejected(f.src.ID, RejectDuplicate)
				continue
			}
			a, err := norm.Normalize(c)
			if err != nil {
				f.log.Error("drop invalid article", "url", c.Link, "err", err)
				sink.Rejected(f.src.ID, RejectInvalid)
				continue
			}
			sink.Accepted(f.src.ID)
			out = append(out, a)
		}
	}

	f.log.Info("source fetched", "articles", len(out))
	return out
}

func (f *Fetcher) download(ctx context.Context, u string) ([]byte, int, error) {
	req := Request{
		URL:           u,
		Headers:       f.src.Headers,
		Timeout:       f.src.Timeout,
		DetectCharset: f.src.Kind == KindPage,
	}
	attempts := 0
	raw, err := retry.Do(ctx, retry.Options{
		MaxAttempts:  f.src.Attempts,
		InitialDelay: f.src.InitialDelay,
		Logger:       f.log,
		Name:         u,
	}, func(ctx context.Context) ([]byte, error) {
		attempts++
		return f.dl.Download(ctx, req)
	})
	return raw, attempts, err
}

// extract turns one document into candidates and records selector hits,
// including selectors that matched nothing.
func (f *Fetcher) extract(raw []byte, u string, sink Sink) ([]Candidate, error) {
	if f.src.Kind == KindFeed {
		cands, err := ExtractFeed(raw, u, f.src)
		if err != nil {
			return nil, err
		}
		sink.Found(f.src.ID, u, len(cands))
		return cands, nil
	}

	doc, err := ParsePage(raw)
	if err != nil {
		return nil, err
	}
	cands := ExtractPage(doc, f.src)
	hits := make(map[string]int, len(f.src.Selectors.Containers))
	for _, c := range cands {
		hits[c.Selector]++
	}
	for _, sel := range f.src.Selectors.Containers {
		sink.Found(f.src.ID, sel, hits[sel])
	}
	return cands, nil
}

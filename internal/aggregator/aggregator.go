// Package aggregator runs every source fetcher of the catalog and merges
// their output into one batch.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LJTian/NewsPulse/internal/article"
	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/logger"
	"github.com/LJTian/NewsPulse/internal/processor"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownSource is returned by FetchSource for ids outside the catalog.
var ErrUnknownSource = errors.New("unknown source")

type Aggregator struct {
	fetchers []*collector.Fetcher
	byKey    map[string]*collector.Fetcher
	log      *slog.Logger
}

// New keeps fetchers in the given order; that order is the output order of FetchAll.
func New(fetchers []*collector.Fetcher, log *slog.Logger) *Aggregator {
	if log == nil {
		log = logger.Discard()
	}
	a := &Aggregator{
		fetchers: fetchers,
		byKey:    make(map[string]*collector.Fetcher),
		log:      log,
	}
	for _, f := range fetchers {
		for _, key := range f.Source().Keys() {
			a.byKey[key] = f
		}
	}
	return a
}

// NewFromCatalog builds one fetcher per source, all sharing dl.
func NewFromCatalog(srcs []collector.SourceConfig, dl collector.Downloader, log *slog.Logger) *Aggregator {
	fetchers := make([]*collector.Fetcher, 0, len(srcs))
	for _, src := range srcs {
		fetchers = append(fetchers, collector.NewFetcher(src, dl, log))
	}
	return New(fetchers, log)
}

// Sources lists the catalog in output order.
func (a *Aggregator) Sources() []collector.SourceConfig {
	out := make([]collector.SourceConfig, 0, len(a.fetchers))
	for _, f := range a.fetchers {
		out = append(out, f.Source())
	}
	return out
}

// FetchAll runs every fetcher concurrently. A failing source contributes
// nothing; the rest are returned in catalog order.
func (a *Aggregator) FetchAll(ctx context.Context) ([]article.Article, *collector.Report) {
	report := collector.NewReport()
	batches := make([]processor.Batch, len(a.fetchers))
	start := time.Now()

	var g errgroup.Group
	for i, f := range a.fetchers {
		g.Go(func() error {
			batches[i] = processor.Batch{SourceID: f.ID(), Articles: f.Fetch(ctx, report)}
			return nil
		})
	}
	_ = g.Wait()

	out, dropped := processor.Merge(batches)
	for id, n := range dropped {
		for range n {
			report.Withdrawn(id, collector.RejectDuplicate)
		}
	}
	a.log.Info("aggregation done",
		"sources", len(a.fetchers),
		"articles", len(out),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return out, report
}

// FetchSource runs a single fetcher addressed by id or alias.
func (a *Aggregator) FetchSource(ctx context.Context, key string) ([]article.Article, *collector.Report, error) {
	f, ok := a.byKey[key]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSource, key)
	}
	report := collector.NewReport()
	return f.Fetch(ctx, report), report, nil
}

package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/LJTian/NewsPulse/internal/article"
	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/logger"
	"github.com/LJTian/NewsPulse/internal/storage"
	"github.com/robfig/cron/v3"
)

// Runner is the part of the aggregator the probe needs.
type Runner interface {
	FetchAll(ctx context.Context) ([]article.Article, *collector.Report)
}

// Scheduler periodically runs a full aggregation and stores its coverage
// report, so selector breakage shows up without anyone calling the API.
type Scheduler struct {
	cron    *cron.Cron
	runner  Runner
	store   *storage.Store
	log     *slog.Logger
	timeout time.Duration

	// StartupDelay postpones the first run after Start.
	StartupDelay time.Duration

	mu      sync.Mutex
	running bool

	startup *time.Timer
	pending sync.WaitGroup
}

func New(spec string, runner Runner, store *storage.Store, timeout time.Duration, log *slog.Logger) (*Scheduler, error) {
	if log == nil {
		log = logger.Discard()
	}
	s := &Scheduler{
		cron:         cron.New(),
		runner:       runner,
		store:        store,
		log:          log,
		timeout:      timeout,
		StartupDelay: 15 * time.Second,
	}

	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	// the first probe waits so it does not compete with the first API calls
	s.pending.Add(1)
	s.startup = time.AfterFunc(s.StartupDelay, func() {
		defer s.pending.Done()
		s.RunOnce(context.Background())
	})
}

// Stop cancels a pending startup probe, halts the cron and waits for any
// running probe to finish.
func (s *Scheduler) Stop() {
	if s.startup != nil && s.startup.Stop() {
		s.pending.Done()
	}
	<-s.cron.Stop().Done()
	s.pending.Wait()
}

// RunOnce performs one probe. Overlapping calls are skipped.
func (s *Scheduler) RunOnce(ctx context.Context) bool {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.log.Info("coverage probe already running, skip")
		return false
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.log.Info("start coverage probe")
	items, report := s.runner.FetchAll(ctx)
	sum := report.Summary()
	if err := s.store.SaveReport(ctx, sum); err != nil {
		s.log.Error("save coverage report", "err", err)
	}
	s.log.Info("coverage probe done", "articles", len(items), "sources", len(sum.Sources))
	return true
}

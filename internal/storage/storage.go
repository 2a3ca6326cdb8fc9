package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	reportKey = "newspulse:coverage:latest"
	reportTTL = 24 * time.Hour
	// writes outlive the caller's context, which is often a spent fetch deadline
	writeTimeout = 3 * time.Second
)

// Store keeps the latest coverage report. Redis is optional and shared
// between instances; the in-process copy is always kept.
type Store struct {
	Redis *redis.Client

	log    *slog.Logger
	mu     sync.RWMutex
	latest *collector.Summary
}

// NewStore connects to redisAddr when set. An unreachable Redis is logged
// and the store continues in memory only.
func NewStore(redisAddr string, log *slog.Logger) *Store {
	if log == nil {
		log = logger.Discard()
	}
	s := &Store{log: log}
	if redisAddr == "" {
		return s
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        redisAddr,
		DialTimeout: 2 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis ping failed, keeping reports in memory", "addr", redisAddr, "err", err)
		_ = rdb.Close()
		return s
	}
	s.Redis = rdb
	return s
}

// SaveReport replaces the latest report.
func (s *Store) SaveReport(ctx context.Context, sum collector.Summary) error {
	s.mu.Lock()
	s.latest = &sum
	s.mu.Unlock()

	if s.Redis == nil {
		return nil
	}
	bs, err := json.Marshal(sum)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()
	if err := s.Redis.Set(wctx, reportKey, bs, reportTTL).Err(); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

// LatestReport returns the newest report known to this instance: the shared
// Redis copy or the local one, whichever finished later.
func (s *Store) LatestReport(ctx context.Context) (collector.Summary, bool) {
	s.mu.RLock()
	local := s.latest
	s.mu.RUnlock()

	if s.Redis != nil {
		if shared, ok := s.sharedReport(ctx); ok {
			if local == nil || shared.FinishedAt.After(local.FinishedAt) {
				return shared, true
			}
		}
	}
	if local == nil {
		return collector.Summary{}, false
	}
	return *local, true
}

func (s *Store) sharedReport(ctx context.Context) (collector.Summary, bool) {
	bs, err := s.Redis.Get(ctx, reportKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("redis get report failed", "err", err)
		}
		return collector.Summary{}, false
	}
	var sum collector.Summary
	if err := json.Unmarshal(bs, &sum); err != nil {
		s.log.Warn("discard undecodable report in redis", "key", reportKey, "err", err)
		return collector.Summary{}, false
	}
	return sum, true
}

func (s *Store) Close() error {
	if s.Redis == nil {
		return nil
	}
	return s.Redis.Close()
}

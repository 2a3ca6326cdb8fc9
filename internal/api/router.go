package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/LJTian/NewsPulse/internal/aggregator"
	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/logger"
	"github.com/LJTian/NewsPulse/internal/storage"
	"github.com/gin-gonic/gin"
)

type Server struct {
	agg     *aggregator.Aggregator
	store   *storage.Store
	log     *slog.Logger
	timeout time.Duration
}

// NewServer wires handlers; timeout bounds each aggregation request (0 = none).
func NewServer(agg *aggregator.Aggregator, store *storage.Store, timeout time.Duration, log *slog.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	return &Server{agg: agg, store: store, log: log, timeout: timeout}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	a := r.Group("/api")
	{
		a.GET("/health", s.health)
		a.GET("/sources", s.listSources)
		a.GET("/coverage", s.coverage)
		a.GET("/news/all", s.allNews)
		// one static route per id and alias; aliases may contain slashes
		for _, src := range s.agg.Sources() {
			for _, key := range src.Keys() {
				a.GET("/news/"+key, s.sourceNews(key))
			}
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

type sourceView struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Kind    collector.Kind `json:"kind"`
	URLs    []string       `json:"urls"`
	Aliases []string       `json:"aliases,omitempty"`
}

func (s *Server) listSources(c *gin.Context) {
	srcs := s.agg.Sources()
	out := make([]sourceView, 0, len(srcs))
	for _, src := range srcs {
		out = append(out, sourceView{ID: src.ID, Name: src.Name, Kind: src.Kind, URLs: src.URLs, Aliases: src.Aliases})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) coverage(c *gin.Context) {
	sum, ok := s.store.LatestReport(c.Request.Context())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no coverage report yet"})
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (s *Server) allNews(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	items, report := s.agg.FetchAll(ctx)
	sum := report.Summary()
	if err := s.store.SaveReport(ctx, sum); err != nil {
		s.log.Warn("save coverage report", "err", err)
	}
	for _, st := range sum.Sources {
		s.log.Info("source articles", "source", st.Source, "accepted", st.Accepted)
	}
	s.log.Info("all sources fetched", "articles", len(items))
	c.JSON(http.StatusOK, items)
}

func (s *Server) sourceNews(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := s.requestContext(c)
		defer cancel()

		items, _, err := s.agg.FetchSource(ctx, key)
		if errors.Is(err, aggregator.ErrUnknownSource) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		s.log.Info("source fetched", "source", key, "articles", len(items))
		c.JSON(http.StatusOK, items)
	}
}

func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), s.timeout)
}

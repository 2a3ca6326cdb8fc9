// collect runs one aggregation and prints the articles as JSON, which is
// handy for checking selectors by hand.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/LJTian/NewsPulse/internal/aggregator"
	"github.com/LJTian/NewsPulse/internal/article"
	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/config"
	"github.com/LJTian/NewsPulse/internal/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		source   string
		indent   bool
		coverage bool
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Fetch news once and print it as JSON",
		Long:  "Runs every configured source (or one, with --source) a single time and writes the articles to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), source, indent, coverage, timeout)
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "source id or alias; empty fetches all")
	cmd.Flags().BoolVar(&indent, "indent", false, "pretty-print the JSON")
	cmd.Flags().BoolVar(&coverage, "coverage", false, "print the coverage report instead of the articles")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "overall deadline, defaults to REQUEST_TIMEOUT")
	return cmd
}

func run(ctx context.Context, source string, indent, coverage bool, timeout time.Duration) error {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	srcs, err := collector.LoadCatalog(cfg.SourcesFile)
	if err != nil {
		return err
	}
	agg := aggregator.NewFromCatalog(srcs, collector.NewCollyDownloader(), log)

	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = cfg.RequestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		items  []article.Article
		report *collector.Report
	)
	if source == "" {
		items, report = agg.FetchAll(ctx)
	} else {
		items, report, err = agg.FetchSource(ctx, source)
		if err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	if indent {
		enc.SetIndent("", "  ")
	}
	if coverage {
		return enc.Encode(report.Summary())
	}
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encode articles: %w", err)
	}
	return nil
}

package aggregator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/LJTian/NewsPulse/internal/collector"
)

// fakeDownloader serves canned documents by URL; anything else fails.
type fakeDownloader struct {
	mu    sync.Mutex
	docs  map[string]string
	delay map[string]time.Duration
	calls map[string]int
}

func (d *fakeDownloader) Download(ctx context.Context, req collector.Request) ([]byte, error) {
	d.mu.Lock()
	d.calls[req.URL]++
	body, ok := d.docs[req.URL]
	wait := d.delay[req.URL]
	d.mu.Unlock()

	if wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if !ok {
		return nil, &collector.FetchError{URL: req.URL, Err: errors.New("connection refused")}
	}
	return []byte(body), nil
}

func rss(items ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>`)
	for _, link := range items {
		fmt.Fprintf(&b, "<item><title>Story published at %s</title><link>%s</link></item>", link, link)
	}
	b.WriteString("</channel></rss>")
	return b.String()
}

func feedSrc(id string, urls ...string) collector.SourceConfig {
	return collector.SourceConfig{
		ID:             id,
		Name:           strings.ToUpper(id),
		Kind:           collector.KindFeed,
		Origin:         "https://" + id + ".example",
		URLs:           urls,
		Attempts:       2,
		InitialDelay:   time.Millisecond,
		MinTitleLength: 15,
		Aliases:        []string{id + "/alias"},
	}
}

func newFixture() (*Aggregator, *fakeDownloader) {
	dl := &fakeDownloader{
		docs: map[string]string{
			"https://slow.example/rss": rss("https://slow.example/1", "https://slow.example/2"),
			"https://fast.example/rss": rss("https://fast.example/1", "https://slow.example/2"),
		},
		delay: map[string]time.Duration{"https://slow.example/rss": 30 * time.Millisecond},
		calls: make(map[string]int),
	}
	agg := NewFromCatalog([]collector.SourceConfig{
		feedSrc("slow", "https://slow.example/rss"),
		feedSrc("down", "https://down.example/rss"),
		feedSrc("fast", "https://fast.example/rss"),
	}, dl, nil)
	return agg, dl
}

func TestFetchAllKeepsCatalogOrderAndSurvivesFailures(t *testing.T) {
	agg, dl := newFixture()

	got, report := agg.FetchAll(context.Background())

	want := []string{"https://slow.example/1", "https://slow.example/2", "https://fast.example/1"}
	if len(got) != len(want) {
		t.Fatalf("expected %d articles, got %d", len(want), len(got))
	}
	for i, url := range want {
		if got[i].URL != url {
			t.Fatalf("got[%d].URL = %q, want %q", i, got[i].URL, url)
		}
	}
	if got[0].Source != "SLOW" || got[2].Source != "FAST" {
		t.Fatalf("unexpected sources %q %q", got[0].Source, got[2].Source)
	}
	if n := dl.calls["https://down.example/rss"]; n != 2 {
		t.Fatalf("failing source should use its retry budget, got %d calls", n)
	}

	sum := report.Summary()
	down, ok := sum.Source("down")
	if !ok || len(down.Requests) != 1 || down.Requests[0].OK {
		t.Fatalf("failure not reported: %+v", down)
	}
	fast, _ := sum.Source("fast")
	if fast.Rejected[collector.RejectDuplicate] != 1 {
		t.Fatalf("cross-source url repeat not counted: %+v", fast.Rejected)
	}
	if fast.Accepted != 1 || sum.Accepted != len(got) {
		t.Fatalf("accepted counters should match returned articles: fast=%d total=%d returned=%d", fast.Accepted, sum.Accepted, len(got))
	}
}

func TestFetchSource(t *testing.T) {
	agg, _ := newFixture()

	got, report, err := agg.FetchSource(context.Background(), "fast/alias")
	if err != nil {
		t.Fatalf("FetchSource: %v", err)
	}
	if len(got) != 2 || report == nil {
		t.Fatalf("expected both fast articles, got %d", len(got))
	}

	got, _, err = agg.FetchSource(context.Background(), "down")
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("unreachable source should yield an empty list, got %v %v", got, err)
	}

	if _, _, err := agg.FetchSource(context.Background(), "nope"); !errors.Is(err, ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource, got %v", err)
	}
}

func TestSources(t *testing.T) {
	agg, _ := newFixture()
	srcs := agg.Sources()
	if len(srcs) != 3 || srcs[0].ID != "slow" || srcs[2].ID != "fast" {
		t.Fatalf("unexpected sources %+v", srcs)
	}
}

package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCollyDownloaderSendsHeaders(t *testing.T) {
	var gotUA, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		_, _ = w.Write([]byte("<rss></rss>"))
	}))
	defer srv.Close()

	body, err := NewCollyDownloader().Download(context.Background(), Request{
		URL:     srv.URL,
		Headers: map[string]string{"User-Agent": "test-agent", "Accept-Language": "en-US"},
		Timeout: time.Second,
	})
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if string(body) != "<rss></rss>" {
		t.Fatalf("unexpected body %q", body)
	}
	if gotUA != "test-agent" || gotLang != "en-US" {
		t.Fatalf("headers not forwarded: %q %q", gotUA, gotLang)
	}
}

func TestCollyDownloaderNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewCollyDownloader().Download(context.Background(), Request{URL: srv.URL, Timeout: time.Second})
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fe.Status != http.StatusForbidden || fe.URL != srv.URL {
		t.Fatalf("unexpected FetchError %+v", fe)
	}
}

func TestCollyDownloaderHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCollyDownloader().Download(ctx, Request{URL: "http://127.0.0.1:1/", Timeout: time.Second})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

package collector

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
)

const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	// maxBodyBytes caps a single document so an oversized page cannot exhaust memory.
	maxBodyBytes = 4 << 20
)

// Request is one document download.
type Request struct {
	URL     string
	Headers map[string]string
	Timeout time.Duration
	// DetectCharset re-decodes non UTF-8 HTML pages.
	DetectCharset bool
}

// Downloader fetches raw documents. Non-2xx responses are errors.
type Downloader interface {
	Download(ctx context.Context, req Request) ([]byte, error)
}

// FetchError describes a failed download.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// CollyDownloader downloads through a fresh colly collector per request.
type CollyDownloader struct {
	// Transport is used instead of http.DefaultTransport when set.
	Transport http.RoundTripper
}

// NewCollyDownloader returns a downloader using the default transport.
func NewCollyDownloader() *CollyDownloader {
	return &CollyDownloader{}
}

// ctxTransport binds every outgoing request to ctx so cancellation stops it.
type ctxTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t ctxTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}

func (d *CollyDownloader) Download(ctx context.Context, req Request) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{URL: req.URL, Err: err}
	}

	opts := []colly.CollectorOption{
		colly.AllowURLRevisit(),
		colly.UserAgent(browserUserAgent),
		colly.MaxBodySize(maxBodyBytes),
	}
	if req.DetectCharset {
		opts = append(opts, colly.DetectCharset())
	}
	c := colly.NewCollector(opts...)
	base := d.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.WithTransport(ctxTransport{ctx: ctx, base: base})
	if req.Timeout > 0 {
		c.SetRequestTimeout(req.Timeout)
	}

	c.OnRequest(func(r *colly.Request) {
		for k, v := range req.Headers {
			r.Headers.Set(k, v)
		}
	})

	var (
		body   []byte
		status int
	)
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = r.Body
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
	})

	if err := c.Visit(req.URL); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, &FetchError{URL: req.URL, Status: status, Err: err}
	}
	if body == nil {
		return nil, &FetchError{URL: req.URL, Status: status, Err: errors.New("empty response")}
	}
	return body, nil
}

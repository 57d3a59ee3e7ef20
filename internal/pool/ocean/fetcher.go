// Package ocean scrapes the pool's paginated block table.
package ocean

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL serves the block table rows of the pool.
	DefaultBaseURL = "https://www.ocean.xyz/template/blocks/rows"
	// DefaultTimeout bounds a single page request.
	DefaultTimeout = 10 * time.Second

	userAgent = "poolscope-harvester/1.0"
)

// Fetcher requests block table pages and parses their rows.
type Fetcher struct {
	client  *http.Client
	baseURL *url.URL
	logger  *zap.Logger
}

// NewFetcher builds a Fetcher for baseURL with a fixed per-request timeout.
func NewFetcher(baseURL string, timeout time.Duration, logger *zap.Logger) (*Fetcher, error) {
	if baseURL == "" {
		return nil, errors.New("base url is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("base url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("base url missing host")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		baseURL: parsed,
		logger:  logger,
	}, nil
}

// PageURL renders the request URL for cursor.
func (f *Fetcher) PageURL(cursor model.PaginationCursor) string {
	u := *f.baseURL
	q := u.Query()
	q.Set("bpage", strconv.Itoa(cursor.BlockPage))
	q.Set("page", strconv.Itoa(cursor.Page))
	u.RawQuery = q.Encode()
	return u.String()
}

// FetchPage requests one page. Failures are logged and reported through Page.Err
// with no records; they are never returned as errors.
func (f *Fetcher) FetchPage(ctx context.Context, cursor model.PaginationCursor) model.Page {
	pageURL := f.PageURL(cursor)
	f.logger.Debug("requesting page", zap.String("url", pageURL))

	records, err := f.fetch(ctx, pageURL)
	if err != nil {
		f.logger.Warn("page fetch failed", zap.String("url", pageURL), zap.Error(err))
		return model.Page{Cursor: cursor, Err: err}
	}
	return model.Page{Cursor: cursor, Records: records}
}

func (f *Fetcher) fetch(ctx context.Context, pageURL string) ([]model.BlockRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("http status %d", resp.StatusCode)
	}

	records, err := ParseBlockTable(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse block table: %w", err)
	}
	return records, nil
}

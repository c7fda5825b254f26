package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bft-labs/noisefetch/internal/domain"
	"github.com/bft-labs/noisefetch/internal/ports"
	"github.com/bft-labs/noisefetch/pkg/log"
)

// DefaultUserAgent identifies noisefetch to remote servers.
const DefaultUserAgent = "noisefetch/1.0 (+https://github.com/bft-labs/noisefetch)"

// PageFetcher implements ports.PageFetcher using HTTP.
type PageFetcher struct {
	client    ports.HTTPClient
	logger    log.Logger
	userAgent string
	now       func() time.Time
}

// NewPageFetcher creates a fetcher. An empty userAgent uses DefaultUserAgent.
func NewPageFetcher(client ports.HTTPClient, logger log.Logger, userAgent string) *PageFetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &PageFetcher{
		client:    client,
		logger:    logger,
		userAgent: userAgent,
		now:       time.Now,
	}
}

// Fetch issues one GET request for url and reads the whole body.
func (f *PageFetcher) Fetch(ctx context.Context, url string) (domain.Page, error) {
	if url == "" {
		return domain.Page{}, domain.ErrEmptyURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Page{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.Page{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.Page{}, &domain.StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Page{}, fmt.Errorf("read body: %w", err)
	}

	f.logger.Debug("page received",
		log.String("url", url),
		log.Int("status", resp.StatusCode),
		log.Int("bytes", len(body)),
		log.String("content_type", resp.Header.Get("Content-Type")))

	return domain.Page{
		URL:         url,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Header:      resp.Header.Clone(),
		Body:        body,
		FetchedAt:   f.now().UTC(),
	}, nil
}

var _ ports.PageFetcher = (*PageFetcher)(nil)

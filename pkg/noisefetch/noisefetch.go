package noisefetch

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/bft-labs/noisefetch/internal/adapters/fs"
	httpAdapter "github.com/bft-labs/noisefetch/internal/adapters/http"
	"github.com/bft-labs/noisefetch/internal/adapters/metrics"
	"github.com/bft-labs/noisefetch/internal/app"
	"github.com/bft-labs/noisefetch/internal/domain"
	"github.com/bft-labs/noisefetch/internal/everynoise"
	"github.com/bft-labs/noisefetch/internal/ports"
	"github.com/bft-labs/noisefetch/pkg/log"
)

type (
	// Page is a fetched HTTP response.
	Page = domain.Page

	// Result describes a completed Save.
	Result = domain.Result

	// StatusError reports a non-2xx response.
	StatusError = domain.StatusError

	// Match is the outcome of MostSimilar.
	Match = everynoise.Match
)

var (
	ErrInvalidConfig = domain.ErrInvalidConfig
	ErrEmptyURL      = domain.ErrEmptyURL
	ErrNoCommonGenre = domain.ErrNoCommonGenre
)

// Client fetches pages. It is safe for sequential use; calls are not meant
// to overlap.
type Client struct {
	config  Config
	fetcher ports.PageFetcher
	runner  *app.Runner
	site    everynoise.Site
	logger  log.Logger
	pick    func(n int) int
}

// New creates a Client. It returns an error if the configuration is invalid.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions(&http.Client{Timeout: cfg.Timeout})
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewNoopLogger()
	}

	fetcher := httpAdapter.NewPageFetcher(o.httpClient, o.logger, cfg.UserAgent)

	var recorder ports.Recorder = metrics.NoopRecorder{}
	if cfg.MetricsFile != "" {
		recorder = metrics.NewPrometheusRecorder(cfg.MetricsFile)
	}

	runner := app.NewRunner(
		app.RunnerConfig{URL: cfg.URL, Output: cfg.Output},
		fetcher,
		fs.NewPageFileWriter(0),
		recorder,
		o.logger,
	)

	return &Client{
		config:  cfg,
		fetcher: fetcher,
		runner:  runner,
		site:    everynoise.Site{BaseURL: cfg.SiteURL},
		logger:  o.logger,
		pick:    o.pick,
	}, nil
}

// Config returns the effective configuration.
func (c *Client) Config() Config {
	return c.config
}

// Save fetches Config.URL and replaces Config.Output with the page text.
func (c *Client) Save(ctx context.Context) (Result, error) {
	return c.runner.Run(ctx)
}

// Fetch retrieves url without writing anything.
func (c *Client) Fetch(ctx context.Context, url string) (Page, error) {
	return c.fetcher.Fetch(ctx, url)
}

// Artists returns the artists listed on genre's map page.
func (c *Client) Artists(ctx context.Context, genre string) ([]string, error) {
	url := c.site.GenreMapURL(genre)
	page, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch genre map %q: %w", genre, err)
	}
	artists, err := everynoise.ParseArtists(bytes.NewReader(page.Text()))
	if err != nil {
		return nil, err
	}
	c.logger.Info("artists parsed", log.String("genre", genre), log.Int("count", len(artists)))
	return artists, nil
}

// SimilarGenres returns genre followed by the genres everynoise ranks as
// similar to it, closest first.
func (c *Client) SimilarGenres(ctx context.Context, genre string) ([]string, error) {
	url := c.site.SimilarityURL(genre)
	page, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch similarity page %q: %w", genre, err)
	}
	return everynoise.ParseSimilarGenres(genre, bytes.NewReader(page.Text()))
}

// MostSimilar returns the genre that ranks highest in the similarity lists
// of both genre1 and genre2. The two pages are fetched one after the other.
func (c *Client) MostSimilar(ctx context.Context, genre1, genre2 string) (Match, error) {
	list1, err := c.SimilarGenres(ctx, genre1)
	if err != nil {
		return Match{}, err
	}
	list2, err := c.SimilarGenres(ctx, genre2)
	if err != nil {
		return Match{}, err
	}

	m, ok := everynoise.MostSimilar(list1, list2, c.pick)
	if !ok {
		return Match{}, fmt.Errorf("%w: %q and %q", ErrNoCommonGenre, genre1, genre2)
	}
	c.logger.Info("most similar genre",
		log.String("genre1", genre1),
		log.String("genre2", genre2),
		log.String("match", m.Genre),
		log.Int("rank1", m.Rank1),
		log.Int("rank2", m.Rank2),
		log.Strings("ties", m.Ties))
	return m, nil
}

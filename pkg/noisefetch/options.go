package noisefetch

import (
	"net/http"

	"github.com/bft-labs/noisefetch/internal/ports"
	"github.com/bft-labs/noisefetch/pkg/log"
)

// HTTPClient is the interface for making HTTP requests.
// *http.Client satisfies this interface.
type HTTPClient = ports.HTTPClient

// Option configures optional behavior of a Client.
type Option func(*options)

type options struct {
	httpClient HTTPClient
	logger     log.Logger
	pick       func(n int) int
}

func defaultOptions(client *http.Client) options {
	return options{
		httpClient: client,
		logger:     log.NewNoopLogger(),
	}
}

// WithHTTPClient sets a custom HTTP client.
// If not provided, an *http.Client with the configured timeout is used.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a custom logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTieBreaker sets how MostSimilar chooses among equally scored genres.
// pick receives the number of candidates and returns an index. By default
// the first candidate wins, which keeps results reproducible.
func WithTieBreaker(pick func(n int) int) Option {
	return func(o *options) {
		o.pick = pick
	}
}

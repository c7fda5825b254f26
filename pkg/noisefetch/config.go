package noisefetch

import (
	"fmt"
	"time"

	"github.com/bft-labs/noisefetch/internal/domain"
	"github.com/bft-labs/noisefetch/internal/everynoise"
)

const (
	// DefaultURL is fetched by Save when Config.URL is empty.
	DefaultURL = "https://everynoise.com/engenremap-brooklynindie.html"

	// DefaultOutput is where Save writes when Config.Output is empty.
	DefaultOutput = "webpage.html"

	// DefaultTimeout bounds each HTTP request.
	DefaultTimeout = 30 * time.Second
)

// Config controls a Client.
type Config struct {
	// URL is the page Save fetches.
	URL string

	// Output is the file Save writes.
	Output string

	// Timeout bounds each HTTP request. Zero disables the timeout.
	Timeout time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// MetricsFile, when set, receives Prometheus metrics in textfile
	// collector format after every Save.
	MetricsFile string

	// SiteURL is the everynoise base URL used by the genre helpers.
	SiteURL string
}

// DefaultConfig returns a Config that reproduces the classic behaviour:
// the brooklyn indie genre map saved to webpage.html.
func DefaultConfig() Config {
	return Config{
		URL:     DefaultURL,
		Output:  DefaultOutput,
		Timeout: DefaultTimeout,
		SiteURL: everynoise.DefaultBaseURL,
	}
}

// SetDefaults fills empty fields. Timeout is left alone: zero is meaningful.
func (c *Config) SetDefaults() {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.SiteURL == "" {
		c.SiteURL = everynoise.DefaultBaseURL
	}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}

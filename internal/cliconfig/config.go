package cliconfig

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/bft-labs/noisefetch/internal/domain"
	"github.com/bft-labs/noisefetch/internal/everynoise"
)

const (
	// DefaultURL is fetched when neither a URL nor a genre is configured.
	DefaultURL = "https://everynoise.com/engenremap-brooklynindie.html"

	// DefaultOutput is the file the page is written to.
	DefaultOutput = "webpage.html"
)

// Config holds CLI configuration for noisefetch.
type Config struct {
	URL    string
	Genre  string
	Output string

	Timeout   time.Duration
	UserAgent string

	MetricsFile string
	LogLevel    string
	Watch       bool
}

// DefaultConfig returns a Config with default values.
// URL stays empty so a configured genre can still pick the page; Validate
// falls back to DefaultURL.
func DefaultConfig() Config {
	return Config{
		Output:   DefaultOutput,
		Timeout:  30 * time.Second,
		LogLevel: "info",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
// An explicit URL wins over Genre.
func (c *Config) Validate() error {
	if c.URL == "" {
		if c.Genre != "" {
			if everynoise.FormatGenre(c.Genre) == "" {
				return fmt.Errorf("%w: genre %q has no usable characters", domain.ErrInvalidConfig, c.Genre)
			}
			c.URL = everynoise.Default.GenreMapURL(c.Genre)
		} else {
			c.URL = DefaultURL
		}
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("%w: url: %v", domain.ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: url must be an absolute http(s) url, got %q", domain.ErrInvalidConfig, c.URL)
	}

	if c.Output == "" {
		return fmt.Errorf("%w: output is required", domain.ErrInvalidConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", domain.ErrInvalidConfig)
	}

	return nil
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setTarget applies one layer's url and genre as a single setting: whichever
// the layer sets replaces both values from lower layers. A flag for either
// keeps the layer from touching them.
func (s *configSetter) setTarget(url, genre string, cfg *Config) {
	if (url == "" && genre == "") || s.changed["url"] || s.changed["genre"] {
		return
	}
	cfg.URL, cfg.Genre = url, genre
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}

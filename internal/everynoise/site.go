package everynoise

import (
	"strings"
)

// DefaultBaseURL is the public everynoise site.
const DefaultBaseURL = "https://everynoise.com"

// Site builds page URLs against a base URL.
type Site struct {
	BaseURL string
}

// Default is the public site.
var Default = Site{BaseURL: DefaultBaseURL}

// FormatGenre turns a display name such as "Brooklyn Indie" into the form
// used in page names ("brooklynindie"): lowercased, with every character
// outside [a-z0-9] removed.
func FormatGenre(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// GenreMapURL returns the artist map page for genre.
func (s Site) GenreMapURL(genre string) string {
	return s.base() + "/engenremap-" + FormatGenre(genre) + ".html"
}

// SimilarityURL returns the one-dimensional similarity page for genre.
func (s Site) SimilarityURL(genre string) string {
	return s.base() + "/everynoise1d-" + FormatGenre(genre) + ".html"
}

func (s Site) base() string {
	if s.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(s.BaseURL, "/")
}

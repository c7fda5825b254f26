package ports

import (
	"context"

	"github.com/bft-labs/noisefetch/internal/domain"
)

// PageFetcher retrieves a single page.
type PageFetcher interface {
	// Fetch issues one GET for url. A non-2xx response is returned as a
	// *domain.StatusError and no Page.
	Fetch(ctx context.Context, url string) (domain.Page, error)
}

package ports

import (
	"context"

	"github.com/bft-labs/noisefetch/internal/domain"
)

// PageWriter stores a page's decoded text.
type PageWriter interface {
	// Write replaces the content at path with page.Text() and returns the
	// number of bytes written. Implementations must not leave a partially
	// written file behind on failure.
	Write(ctx context.Context, path string, page domain.Page) (int, error)
}

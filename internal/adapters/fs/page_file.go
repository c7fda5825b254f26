package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/noisefetch/internal/domain"
	"github.com/bft-labs/noisefetch/internal/ports"
)

// DefaultFileMode is the permission of newly written pages.
const DefaultFileMode os.FileMode = 0o644

// PageFileWriter implements ports.PageWriter on the local file system.
type PageFileWriter struct {
	mode os.FileMode
}

// NewPageFileWriter creates a writer. A zero mode uses DefaultFileMode.
func NewPageFileWriter(mode os.FileMode) *PageFileWriter {
	if mode == 0 {
		mode = DefaultFileMode
	}
	return &PageFileWriter{mode: mode}
}

// Write replaces path with the page's UTF-8 text.
// The text goes to a temp file in the same directory which is then renamed
// over path, so readers see either the old content or the new content.
func (w *PageFileWriter) Write(ctx context.Context, path string, page domain.Page) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	text := page.Text()
	n, err := tmp.Write(text)
	if err != nil {
		return 0, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return 0, fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, w.mode); err != nil {
		return 0, fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return 0, fmt.Errorf("rename into place: %w", err)
	}
	committed = true

	return n, nil
}

var _ ports.PageWriter = (*PageFileWriter)(nil)

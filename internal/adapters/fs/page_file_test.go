package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/noisefetch/internal/domain"
)

func TestPageFileWriter_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webpage.html")
	page := domain.Page{Body: []byte("<html>hello</html>"), ContentType: "text/html; charset=utf-8"}

	n, err := NewPageFileWriter(0).Write(context.Background(), path, page)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != len(page.Body) {
		t.Errorf("n = %d, want %d", n, len(page.Body))
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "<html>hello</html>" {
		t.Errorf("content = %q", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != DefaultFileMode {
		t.Errorf("mode = %v, want %v", info.Mode().Perm(), DefaultFileMode)
	}
}

func TestPageFileWriter_OverwritesShorterContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webpage.html")
	w := NewPageFileWriter(0)

	if _, err := w.Write(context.Background(), path, domain.Page{Body: []byte("a much longer first body")}); err != nil {
		t.Fatalf("first Write() error = %v", err)
	}
	if _, err := w.Write(context.Background(), path, domain.Page{Body: []byte("short")}); err != nil {
		t.Fatalf("second Write() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "short" {
		t.Errorf("content = %q, want short (truncate, not append)", got)
	}
}

func TestPageFileWriter_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "page.html")

	if _, err := NewPageFileWriter(0).Write(context.Background(), path, domain.Page{Body: []byte("x")}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestPageFileWriter_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webpage.html")

	if _, err := NewPageFileWriter(0).Write(context.Background(), path, domain.Page{Body: []byte("x")}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "webpage.html" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("dir entries = %v, want [webpage.html]", names)
	}
}

func TestPageFileWriter_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webpage.html")
	if err := os.WriteFile(path, []byte("previous"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewPageFileWriter(0).Write(ctx, path, domain.Page{Body: []byte("new")}); err == nil {
		t.Fatal("Write() with canceled context returned nil error")
	}
	got, _ := os.ReadFile(path)
	if string(got) != "previous" {
		t.Errorf("content = %q, want previous", got)
	}
}

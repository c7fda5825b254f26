package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/bft-labs/noisefetch/pkg/log"
)

func waitForCalls(t *testing.T, calls *atomic.Int32, want int32) {
	t.Helper()
	require.Eventually(t, func() bool { return calls.Load() >= want },
		3*time.Second, 10*time.Millisecond, "expected %d runs, got %d", want, calls.Load())
}

func TestConfigWatcher_RerunsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`genre = "shoegaze"`), 0o644))

	var calls atomic.Int32
	w := NewConfigWatcher(cfgPath, func(context.Context) error {
		calls.Add(1)
		return nil
	}, log.NewNoopLogger(), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	waitForCalls(t, &calls, 1)

	require.NoError(t, os.WriteFile(cfgPath, []byte(`genre = "dream pop"`), 0o644))
	waitForCalls(t, &calls, 2)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestConfigWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(""), 0o644))

	var calls atomic.Int32
	w := NewConfigWatcher(cfgPath, func(context.Context) error {
		calls.Add(1)
		return nil
	}, log.NewNoopLogger(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	waitForCalls(t, &calls, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "webpage.html"), []byte("<html/>"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	<-done
}

func TestConfigWatcher_RunErrorsDoNotStopWatching(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(""), 0o644))

	var calls atomic.Int32
	w := NewConfigWatcher(cfgPath, func(context.Context) error {
		calls.Add(1)
		return errors.New("fetch failed")
	}, log.NewNoopLogger(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	waitForCalls(t, &calls, 1)
	require.NoError(t, os.WriteFile(cfgPath, []byte("timeout = \"1s\""), 0o644))
	waitForCalls(t, &calls, 2)

	cancel()
	<-done
}

func TestConfigWatcher_MissingDirectory(t *testing.T) {
	w := NewConfigWatcher(filepath.Join(t.TempDir(), "missing", "config.toml"),
		func(context.Context) error { return nil }, log.NewNoopLogger(), 0)

	err := w.Run(context.Background())
	assert.Error(t, err)
}

package metrics

import (
	"github.com/bft-labs/noisefetch/internal/domain"
	"github.com/bft-labs/noisefetch/internal/ports"
)

// NoopRecorder discards all metrics.
type NoopRecorder struct{}

func (NoopRecorder) RecordSuccess(domain.Result) {}
func (NoopRecorder) RecordFailure(string)        {}
func (NoopRecorder) Flush() error                { return nil }

var _ ports.Recorder = NoopRecorder{}

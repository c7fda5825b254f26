package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/noisefetch/internal/domain"
	"github.com/bft-labs/noisefetch/internal/ports"
	"github.com/bft-labs/noisefetch/pkg/log"
)

// Failure reasons reported to the metrics recorder.
const (
	ReasonHTTPStatus = "http_status"
	ReasonTransport  = "transport"
	ReasonTimeout    = "timeout"
	ReasonCanceled   = "canceled"
	ReasonWrite      = "write"
)

// RunnerConfig holds what one run needs to know.
type RunnerConfig struct {
	URL    string
	Output string
}

// Runner fetches one page and writes it to disk.
type Runner struct {
	cfg      RunnerConfig
	fetcher  ports.PageFetcher
	writer   ports.PageWriter
	recorder ports.Recorder
	logger   log.Logger

	newID func() string
	now   func() time.Time
}

// NewRunner wires a Runner from its ports.
func NewRunner(cfg RunnerConfig, fetcher ports.PageFetcher, writer ports.PageWriter, recorder ports.Recorder, logger log.Logger) *Runner {
	return &Runner{
		cfg:      cfg,
		fetcher:  fetcher,
		writer:   writer,
		recorder: recorder,
		logger:   logger,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// Run performs one fetch-and-write. The output file is only replaced once
// the whole page has been received.
func (r *Runner) Run(ctx context.Context) (domain.Result, error) {
	res := domain.Result{
		RunID: r.newID(),
		URL:   r.cfg.URL,
		Path:  r.cfg.Output,
	}
	logger := r.logger.With(log.String("run_id", res.RunID))
	start := r.now()

	logger.Info("fetching page", log.String("url", r.cfg.URL), log.String("output", r.cfg.Output))

	page, err := r.fetcher.Fetch(ctx, r.cfg.URL)
	if err != nil {
		reason := fetchFailureReason(err)
		r.fail(logger, reason)
		logger.Error("fetch failed", log.String("url", r.cfg.URL), log.String("reason", reason), log.Err(err))
		return res, fmt.Errorf("fetch %s: %w", r.cfg.URL, err)
	}
	res.StatusCode = page.StatusCode

	n, err := r.writer.Write(ctx, r.cfg.Output, page)
	if err != nil {
		r.fail(logger, ReasonWrite)
		logger.Error("write failed", log.String("output", r.cfg.Output), log.Err(err))
		return res, fmt.Errorf("write %s: %w", r.cfg.Output, err)
	}
	res.Bytes = n
	res.Duration = r.now().Sub(start)

	r.recorder.RecordSuccess(res)
	r.flush(logger)

	logger.Info("page written",
		log.String("output", res.Path),
		log.Int("status", res.StatusCode),
		log.Int("bytes", res.Bytes),
		log.Duration("took", res.Duration))

	return res, nil
}

func (r *Runner) fail(logger log.Logger, reason string) {
	r.recorder.RecordFailure(reason)
	r.flush(logger)
}

func (r *Runner) flush(logger log.Logger) {
	if err := r.recorder.Flush(); err != nil {
		logger.Warn("metrics flush failed", log.Err(err))
	}
}

func fetchFailureReason(err error) string {
	var se *domain.StatusError
	switch {
	case errors.As(err, &se):
		return ReasonHTTPStatus
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, context.Canceled):
		return ReasonCanceled
	default:
		return ReasonTransport
	}
}

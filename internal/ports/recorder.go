package ports

import "github.com/bft-labs/noisefetch/internal/domain"

// Recorder records the outcome of a run.
type Recorder interface {
	RecordSuccess(res domain.Result)
	RecordFailure(reason string)

	// Flush persists recorded values, if the implementation stores them
	// anywhere.
	Flush() error
}

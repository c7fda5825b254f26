package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("noisefetch: invalid configuration")

	// ErrEmptyURL is returned when there is nothing to fetch.
	ErrEmptyURL = errors.New("noisefetch: empty url")

	// ErrNoCommonGenre is returned when two similarity lists share no genre.
	ErrNoCommonGenre = errors.New("noisefetch: no common genre")
)

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("noisefetch: %s returned %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

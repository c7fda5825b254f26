// Package domain contains the core values of noisefetch.
//
// It has no dependencies on infrastructure concerns beyond the text decoding
// of a page body.
//
// # Values
//
//   - [Page]: a fetched HTTP response (status, headers, raw body)
//   - [Result]: the outcome of one fetch-and-write run
//
// Errors are declared in errors.go and are meant to be checked with
// errors.Is and errors.As.
package domain

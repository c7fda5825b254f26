// Package ports defines the interfaces that connect the application layer
// to infrastructure adapters.
//
// # Port Interfaces
//
//   - [PageFetcher]: retrieves a page over the network
//   - [PageWriter]: stores a page's text at a path
//   - [Recorder]: records run metrics
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//
// internal/app depends only on these interfaces; internal/adapters provides
// the HTTP, file system and Prometheus implementations.
package ports

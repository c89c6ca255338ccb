// Package pkgroutine runs background work with a bounded concurrency limit,
// panic recovery, and error collection for graceful shutdown.
package pkgroutine

// Package pkgrouter wraps httprouter with the application handler signature,
// JSON codecs, and the standard middleware chain (recovery, correlation ID,
// request logging).
package pkgrouter

// Package pkgerror defines shared error types and sentinel errors used across
// the demo service.
//
// It keeps error handling consistent by providing sentinel errors checkable
// with errors.Is and a structured Error type carrying a message, type, and
// code that handlers map to HTTP status codes at the edge.
package pkgerror

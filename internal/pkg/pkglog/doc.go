// Package pkglog configures the application's structured logging and carries
// the correlation ID through request contexts.
//
// The localuuid library itself only needs an *slog.Logger; this package wires
// the default one the demo binary uses, so library warnings (for example the
// degraded-configuration warnings) come out as queryable JSON events.
package pkglog

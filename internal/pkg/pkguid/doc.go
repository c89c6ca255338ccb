// Package pkguid provides helpers for generating unique identifiers.
//
// The demo service uses these interfaces to avoid hard-coding a specific UID
// strategy. Depending on the use case you can generate:
//   - String IDs (random UUIDs here; the root localuuid.Provider also
//     satisfies StringID and is used where reproducibility matters).
//   - Numeric IDs (Snowflake-style sequence numbers).
package pkguid

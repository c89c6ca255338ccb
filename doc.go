// Package localuuid is a thin wrapper around UUID generation that can produce
// repeatable UUIDs when explicitly requested.
//
// By default Generate returns random version-4 UUIDs and is safe for all
// normal use. When the environment variable CASE_DEMO_NONRANDOM_UUID_BASE
// names an existing directory, a provider built at that point derives
// version-5 UUIDs from non-varying elements of the environment and process
// invocation (working directory, argument vector, an incrementing counter).
// Repeated runs of the same command from the same place then emit the same
// identifier sequence, which keeps version-controlled sample output from
// churning on every regeneration.
//
// Deterministic UUIDs exist only to aid generating demo data. They are
// decidedly NOT random and must never be enabled for production identifiers.
package localuuid

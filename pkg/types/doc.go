// Package types defines the shared vocabulary of the Photoshop ("8BPS")
// file header codec: typed errors, the version/variant tags, color modes,
// channel depths and the numeric limits the format imposes.
//
// Design goals:
//   - Typed errors with stable categories (format/range/truncated) so callers
//     can tell "not a Photoshop document" from "malformed Photoshop document".
//   - Small value types with String methods instead of loose integers.
//   - Limits expressed as lookups indexed by variant, never re-derived.
//
// This package has no dependencies beyond the standard library.
package types

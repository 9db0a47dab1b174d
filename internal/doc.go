// Package internal groups the private machinery behind the goNativeAuth
// engine.
//
// # Sub-packages
//
//   - requests — typed request descriptors for every authority endpoint
//   - api — wire response records and their closed result classification
//   - interactors — per-flow strategy binding requests to the transport
//   - flows — pure helpers for scope merging and completion polling
//
// # What this package must NOT do
//
//   - Export types that appear in the public goNativeAuth API.
//   - Be imported by any package outside the goNativeAuth module.
package internal

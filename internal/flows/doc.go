// Package flows contains pure helpers shared by the engine's flow
// methods: default-scope merging and the bounded completion poll loop
// used by the password reset flow.
//
// Flow helpers accept typed dependency structs and perform no I/O of
// their own — polling calls back through the injected Poll function and
// reads time through the injected clock, which keeps the loop fully
// testable without a live authority.
//
// # What this package must NOT do
//
//   - Hold mutable state between calls.
//   - Import goNativeAuth (to avoid import cycles).
package flows

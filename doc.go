// Package goNativeAuth is a client-side engine for a headless, multi-step
// identity-authentication protocol: sign-in with password, one-time code, or
// short-lived continuation token; sign-up; and self-service password reset
// with bounded completion polling — all driven over HTTPS without a hosted
// browser.
//
// The package is designed for concurrent SDK workloads: Engine methods are safe to call
// from multiple goroutines after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// goNativeAuth is the public surface. It exposes [Engine], [Builder], [Config], and the
// per-flow result unions ([SignInResult], [SignUpResult], [ResetPasswordResult]). All
// internal coordination — request building, response classification, endpoint
// interactors, the completion poll loop, audit dispatch — lives under internal/ and is
// never exported.
//
// # What this package must NOT do
//
//   - Interpret or mutate continuation tokens; each one is forwarded to the next
//     protocol step byte-for-byte.
//   - Surface expected protocol outcomes as Go errors. Every outcome the service can
//     express is a named result variant; errors are reserved for contract violations
//     and transport failures.
//   - Import any sub-package that re-imports goNativeAuth (no import cycles).
//
// # Result discipline
//
// Each Engine flow operation returns one closed result union. Callers switch on the
// concrete variant; [Redirect] and [UnknownError] implement every union so a single
// handler can cover the shared outcomes. An unrecognized server response is never
// silently treated as success: it surfaces as [UnknownError].
package goNativeAuth

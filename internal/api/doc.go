// Package api holds the wire-level response records for the native-auth
// endpoints and the classification logic that turns a raw HTTP response
// into exactly one variant of the endpoint's closed result set.
//
// Classification is ordered: for error statuses the named-error predicates
// of the endpoint are evaluated in a fixed sequence and the first match
// wins. A success status with a missing continuation field is itself a
// protocol error and maps to UnknownError with the invalid_state code.
// No branch may fall through to a success variant.
package api

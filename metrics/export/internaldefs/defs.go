package internaldefs

import (
	goNativeAuth "github.com/MrEthical07/goNativeAuth"
)

// CounterDef defines a public type used by goNativeAuth APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goNativeAuth.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goNativeAuth APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goNativeAuth.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the authentication engine.
var CounterDefs = []CounterDef{
	{ID: goNativeAuth.MetricSignInStarted, Name: "gonativeauth_signin_started_total", Help: "Started sign-in flows."},
	{ID: goNativeAuth.MetricSignInCompleted, Name: "gonativeauth_signin_completed_total", Help: "Completed sign-in flows."},
	{ID: goNativeAuth.MetricSignInCodeRequired, Name: "gonativeauth_signin_code_required_total", Help: "Sign-in flows paused on a one-time code."},
	{ID: goNativeAuth.MetricSignInFailed, Name: "gonativeauth_signin_failed_total", Help: "Sign-in flows rejected by the authority."},
	{ID: goNativeAuth.MetricSignUpStarted, Name: "gonativeauth_signup_started_total", Help: "Started sign-up flows."},
	{ID: goNativeAuth.MetricSignUpCompleted, Name: "gonativeauth_signup_completed_total", Help: "Completed sign-up flows."},
	{ID: goNativeAuth.MetricSignUpFailed, Name: "gonativeauth_signup_failed_total", Help: "Sign-up flows rejected by the authority."},
	{ID: goNativeAuth.MetricResetPasswordStarted, Name: "gonativeauth_reset_password_started_total", Help: "Started password reset flows."},
	{ID: goNativeAuth.MetricResetPasswordCompleted, Name: "gonativeauth_reset_password_completed_total", Help: "Completed password reset flows."},
	{ID: goNativeAuth.MetricResetPasswordFailed, Name: "gonativeauth_reset_password_failed_total", Help: "Password reset flows rejected by the authority."},
	{ID: goNativeAuth.MetricResetPasswordPoll, Name: "gonativeauth_reset_password_poll_total", Help: "Password reset completion poll requests."},
	{ID: goNativeAuth.MetricResetPasswordPollTimeout, Name: "gonativeauth_reset_password_poll_timeout_total", Help: "Password reset polls abandoned on timeout."},
	{ID: goNativeAuth.MetricRedirect, Name: "gonativeauth_redirect_total", Help: "Flows redirected to a hosted browser."},
	{ID: goNativeAuth.MetricUnknownError, Name: "gonativeauth_unknown_error_total", Help: "Responses the engine could not classify."},
	{ID: goNativeAuth.MetricTokenCacheSave, Name: "gonativeauth_token_cache_save_total", Help: "Token sets written to the cache."},
	{ID: goNativeAuth.MetricSilentCacheHit, Name: "gonativeauth_silent_cache_hit_total", Help: "Silent acquisitions served from cache."},
	{ID: goNativeAuth.MetricSilentRefresh, Name: "gonativeauth_silent_refresh_total", Help: "Silent acquisitions renewed with a refresh token."},
	{ID: goNativeAuth.MetricSilentRefreshFailed, Name: "gonativeauth_silent_refresh_failed_total", Help: "Refresh grants rejected by the authority."},
	{ID: goNativeAuth.MetricSilentProactiveRefresh, Name: "gonativeauth_silent_proactive_refresh_total", Help: "Background refreshes scheduled inside the refresh window."},
}

// HistogramDefs is an exported constant or variable used by the authentication engine.
var HistogramDefs = []HistogramDef{
	{ID: goNativeAuth.MetricTokenRequestLatency, Name: "gonativeauth_token_request_latency_seconds", Help: "Token endpoint round-trip latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the authentication engine.
var HistogramBounds = []string{
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"1",
	"2.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the authentication engine.
var HistogramBoundSuffix = []string{
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"1",
	"2_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}

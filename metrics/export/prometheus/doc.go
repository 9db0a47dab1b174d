// Package prometheus provides Prometheus collectors for goNativeAuth metrics.
//
// [NewPrometheusExporter] accepts an [goNativeAuth.Engine] and exposes an [http.Handler]
// that renders all goNativeAuth counters and histograms in Prometheus text exposition format.
// Counter names are prefixed gonativeauth_*_total; the single histogram is
// gonativeauth_token_request_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus

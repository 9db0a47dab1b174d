// Package broker caches the identity of the active broker application,
// the (package name, signature hash) pair that services authentication
// requests on the device.
//
// Two cache sides exist, one for the broker process and one for the SDK
// process. They use physically separate storage namespaces and separate
// reader/writer locks, obtained from a process-wide registry keyed by
// side, so the two sides never contend and a fault in one cannot corrupt
// the other. A lazily constructed discovery client singleton sits on top,
// rebuilt whenever its feature flag changes.
package broker

// Package requests builds validated, immutable request descriptors for
// the native-auth endpoints. Builders are pure: every required field is
// checked before a descriptor is produced and nothing here performs I/O.
package requests

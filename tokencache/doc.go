// Package tokencache persists the token records produced by completed
// authentication flows and serves them back to silent acquisition.
//
// The engine treats the cache as a collaborator: it saves a record list
// with the newest record first and reads back one current record per
// account. Two implementations ship here, a bounded in-memory cache and a
// Redis-backed one; callers with platform-specific secure storage can
// implement Cache themselves.
package tokencache

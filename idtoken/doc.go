// Package idtoken extracts account claims from the id_token returned by
// the token endpoint. The token arrives over the mutually authenticated
// channel the request went out on, so claims are read without local
// signature verification; validating issuer keys is the service's
// deployment concern, not this client's.
package idtoken

package goNativeAuth

import (
	"net/http"
	"time"

	"github.com/MrEthical07/goNativeAuth/internal/api"
	"github.com/MrEthical07/goNativeAuth/tokencache"
)

// Transport posts form-encoded requests to the authority. Implementations
// must be safe for concurrent use.
//
// The default implementation wraps a [net/http.Client]; supply a custom one
// through [Builder.WithTransport] to intercept or record traffic.
type Transport = api.Transport

// NewHTTPTransport creates the default [Transport] backed by client. A nil
// client falls back to [net/http.DefaultClient].
func NewHTTPTransport(client *http.Client) Transport {
	return api.NewHTTPTransport(client)
}

// TokenCache stores issued token sets keyed by home account identifier.
//
// The in-memory implementation is the default; see [tokencache.NewRedisCache]
// for a shared cache.
type TokenCache = tokencache.Cache

// TokenRecord is a single cached token set.
type TokenRecord = tokencache.Record

// Account identifies the signed-in user across cache lookups and silent
// token acquisition.
//
// Account instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Account struct {
	HomeAccountID string
	Username      string
	Name          string
	TenantID      string
}

// AuthenticationResult defines a public type used by goNativeAuth APIs.
//
// AuthenticationResult instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuthenticationResult struct {
	Account     Account
	AccessToken string
	IDToken     string
	Scopes      []string
	TokenType   string
	ExpiresAt   time.Time
	RefreshedOn time.Time
	FromCache   bool
}

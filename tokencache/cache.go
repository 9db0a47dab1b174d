package tokencache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the account has no cached record.
var ErrNotFound = errors.New("token record not found")

// Record is one cached token set for one account and realm.
type Record struct {
	HomeAccountID string    `json:"home_account_id"`
	Username      string    `json:"username"`
	Realm         string    `json:"realm"`
	ClientID      string    `json:"client_id"`
	Scopes        []string  `json:"scopes"`
	AccessToken   string    `json:"access_token"`
	RefreshToken  string    `json:"refresh_token"`
	IDToken       string    `json:"id_token"`
	ExpiresAt     time.Time `json:"expires_at"`
	RefreshOn     time.Time `json:"refresh_on,omitzero"`
	CachedAt      time.Time `json:"cached_at"`
}

// HasAccessToken reports whether the record carries an access token.
func (r *Record) HasAccessToken() bool {
	return r != nil && r.AccessToken != ""
}

// HasRefreshToken reports whether the record carries a refresh token.
func (r *Record) HasRefreshToken() bool {
	return r != nil && r.RefreshToken != ""
}

// Expired reports whether the access token is past its expiry at now.
func (r *Record) Expired(now time.Time) bool {
	if r == nil {
		return true
	}
	return !r.ExpiresAt.After(now)
}

// ShouldRefresh reports whether the record is marked for proactive
// refresh. A zero RefreshOn means the service did not request one.
func (r *Record) ShouldRefresh(now time.Time) bool {
	if r == nil || r.RefreshOn.IsZero() {
		return false
	}
	return !r.RefreshOn.After(now)
}

// MatchesRealm reports whether the record was issued for realm. An empty
// requested realm matches any record.
func (r *Record) MatchesRealm(realm string) bool {
	if r == nil {
		return false
	}
	return realm == "" || r.Realm == realm
}

// Cache stores token records keyed by home account id. Save receives the
// record list newest first; the head becomes the account's current
// record. Implementations must be safe for concurrent use.
type Cache interface {
	Save(ctx context.Context, records []Record) error
	Get(ctx context.Context, homeAccountID string) (*Record, error)
	Remove(ctx context.Context, homeAccountID string) error
}

package goNativeAuth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MrEthical07/goNativeAuth/internal/api"
	"github.com/MrEthical07/goNativeAuth/tokencache"
)

// SilentRequest is the input for [Engine.AcquireTokenSilent]. HomeAccountID
// is required; Realm and Scopes narrow the match, and ForceRefresh skips
// the cached access token entirely.
type SilentRequest struct {
	HomeAccountID string
	Realm         string
	Scopes        []string
	ForceRefresh  bool
}

// AcquireTokenSilent describes the acquiretokensilent operation and its observable behavior.
//
// AcquireTokenSilent may return an error when input validation, dependency calls, or security checks fail.
// AcquireTokenSilent does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// When no usable access token is cached the call fails with
// [ErrNoAccessToken]; when renewal is needed and no refresh token is
// cached it fails with [ErrNoRefreshToken]. Both mean the user must sign
// in again. A still-valid token inside its proactive-refresh window is
// returned immediately while a deduplicated refresh runs in the
// background.
func (e *Engine) AcquireTokenSilent(ctx context.Context, req SilentRequest) (*AuthenticationResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	if req.HomeAccountID == "" {
		return nil, fmt.Errorf("%w: home_account_id", ErrMissingArgument)
	}
	correlationID := ensureCorrelationID(ctx)

	record, err := e.tokenCache.Get(ctx, req.HomeAccountID)
	if err != nil {
		if errors.Is(err, tokencache.ErrNotFound) {
			return nil, ErrNoAccessToken
		}
		return nil, err
	}
	if !record.HasAccessToken() {
		return nil, ErrNoAccessToken
	}

	now := e.timeNow()
	needsRenew := req.ForceRefresh ||
		record.Expired(now) ||
		!record.MatchesRealm(req.Realm) ||
		!scopesSatisfied(record.Scopes, req.Scopes)

	if !needsRenew {
		if e.config.Silent.BackgroundRefresh && record.ShouldRefresh(now) {
			e.metricInc(MetricSilentProactiveRefresh)
			e.backgroundRefresh(record)
		}
		e.metricInc(MetricSilentCacheHit)
		e.emitAudit(ctx, auditEventSilentCacheHit, auditFlowSilent, record.Username, correlationID, "cache_hit", true, nil, nil)
		return resultFromRecord(record), nil
	}

	return e.refreshRecord(ctx, record, req.Scopes, correlationID)
}

// Account returns the cached account identity for homeAccountID without
// contacting the authority. An unknown id yields [ErrNoCachedAccount].
func (e *Engine) Account(ctx context.Context, homeAccountID string) (*Account, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	if homeAccountID == "" {
		return nil, fmt.Errorf("%w: home_account_id", ErrMissingArgument)
	}

	record, err := e.tokenCache.Get(ctx, homeAccountID)
	if err != nil {
		if errors.Is(err, tokencache.ErrNotFound) {
			return nil, ErrNoCachedAccount
		}
		return nil, err
	}

	return &Account{
		HomeAccountID: record.HomeAccountID,
		Username:      record.Username,
		TenantID:      record.Realm,
	}, nil
}

// SignOut removes the account's cached token set. It does not contact the
// authority.
func (e *Engine) SignOut(ctx context.Context, homeAccountID string) error {
	if !e.ready() {
		return ErrEngineNotReady
	}
	if homeAccountID == "" {
		return fmt.Errorf("%w: home_account_id", ErrMissingArgument)
	}
	return e.tokenCache.Remove(ctx, homeAccountID)
}

func (e *Engine) refreshRecord(ctx context.Context, record *tokencache.Record, scopes []string, correlationID string) (*AuthenticationResult, error) {
	if !record.HasRefreshToken() {
		return nil, ErrNoRefreshToken
	}

	started := e.timeNow()
	result, err := e.strategy.PerformRefreshTokenRequest(ctx, record.RefreshToken, e.mergeScopes(scopes))
	e.metricObserve(MetricTokenRequestLatency, e.timeNow().Sub(started))
	if err != nil {
		return nil, err
	}

	switch r := result.(type) {
	case api.SignInTokenSuccess:
		auth, err := e.saveTokens(ctx, r.Tokens)
		if err != nil {
			return nil, err
		}
		e.metricInc(MetricSilentRefresh)
		e.emitAudit(ctx, auditEventSilentRefresh, auditFlowSilent, auth.Account.Username, correlationID, "refreshed", true, nil, nil)
		auth.RefreshedOn = e.timeNow()
		return auth, nil
	case api.UnknownError:
		e.metricInc(MetricSilentRefreshFailed)
		e.emitAudit(ctx, auditEventFlowFailed, auditFlowSilent, record.Username, correlationID, "refresh_rejected", false, nil, func() map[string]string {
			return map[string]string{"error": r.Error}
		})
		return nil, fmt.Errorf("%w: %s", ErrRefreshRejected, r.Error)
	default:
		e.metricInc(MetricSilentRefreshFailed)
		e.emitAudit(ctx, auditEventFlowFailed, auditFlowSilent, record.Username, correlationID, "refresh_rejected", false, nil, nil)
		return nil, ErrRefreshRejected
	}
}

// backgroundRefresh renews the record off the caller's path. Concurrent
// callers hitting the same account collapse into one refresh.
func (e *Engine) backgroundRefresh(record *tokencache.Record) {
	rec := *record
	go func() {
		_, _, _ = e.refreshGroup.Do(rec.HomeAccountID, func() (any, error) {
			timeout := e.config.HTTP.RequestTimeout
			if timeout <= 0 {
				timeout = 30 * time.Second
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			if _, err := e.refreshRecord(ctx, &rec, rec.Scopes, ""); err != nil {
				e.warnf("goNativeAuth: background token refresh failed: %v", err)
			}
			return nil, nil
		})
	}()
}

func resultFromRecord(record *tokencache.Record) *AuthenticationResult {
	scopes := make([]string, len(record.Scopes))
	copy(scopes, record.Scopes)

	return &AuthenticationResult{
		Account: Account{
			HomeAccountID: record.HomeAccountID,
			Username:      record.Username,
			TenantID:      record.Realm,
		},
		AccessToken: record.AccessToken,
		IDToken:     record.IDToken,
		Scopes:      scopes,
		TokenType:   "Bearer",
		ExpiresAt:   record.ExpiresAt,
		FromCache:   true,
	}
}

func scopesSatisfied(cached, requested []string) bool {
	for _, want := range requested {
		found := false
		for _, have := range cached {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

package goNativeAuth

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/MrEthical07/goNativeAuth/idtoken"
	"github.com/MrEthical07/goNativeAuth/internal/api"
	"github.com/MrEthical07/goNativeAuth/internal/flows"
	"github.com/MrEthical07/goNativeAuth/tokencache"
)

// SignInStart describes the signinstart operation and its observable behavior.
//
// SignInStart may return an error when input validation, dependency calls, or security checks fail.
// SignInStart does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// A non-empty password drives the password branch to completion in one
// call. When the authority asks for a password and none was supplied, the
// call fails with [ErrPasswordRequired] instead of leaking a half-open
// flow.
func (e *Engine) SignInStart(ctx context.Context, username, password string, scopes []string) (SignInResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	correlationID := ensureCorrelationID(ctx)
	e.metricInc(MetricSignInStarted)
	e.emitAudit(ctx, auditEventFlowStarted, auditFlowSignIn, username, correlationID, "", true, nil, nil)

	initiate, err := e.strategy.PerformSignInInitiate(ctx, username)
	if err != nil {
		return nil, err
	}

	switch r := initiate.(type) {
	case api.SignInInitiateSuccess:
		return e.signInChallenge(ctx, r.CredentialToken, username, password, scopes, correlationID)
	case api.SignInInitiateUserNotFound:
		e.metricInc(MetricSignInFailed)
		e.emitAudit(ctx, auditEventFlowFailed, auditFlowSignIn, username, correlationID, "user_not_found", false, nil, nil)
		return SignInUserNotFound{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.Redirect:
		return e.signInRedirect(ctx, username, correlationID), nil
	case api.UnknownError:
		return e.signInUnknown(ctx, username, correlationID, r), nil
	default:
		return e.signInUnknown(ctx, username, correlationID, unexpectedVariant()), nil
	}
}

// SignInSubmitCode describes the signinsubmitcode operation and its observable behavior.
//
// SignInSubmitCode may return an error when input validation, dependency calls, or security checks fail.
// SignInSubmitCode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) SignInSubmitCode(ctx context.Context, credentialToken, code string, scopes []string) (SignInResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	correlationID := ensureCorrelationID(ctx)

	return e.signInToken(ctx, "", correlationID, func(ctx context.Context) (api.SignInTokenResult, error) {
		return e.strategy.PerformOOBTokenRequest(ctx, credentialToken, code, e.mergeScopes(scopes))
	})
}

// SignInResendCode describes the signinresendcode operation and its observable behavior.
//
// SignInResendCode may return an error when input validation, dependency calls, or security checks fail.
// SignInResendCode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) SignInResendCode(ctx context.Context, credentialToken string) (SignInResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	correlationID := ensureCorrelationID(ctx)

	return e.signInCodeChallenge(ctx, credentialToken, "", correlationID)
}

// SignInWithContinuationToken describes the signinwithcontinuationtoken operation and its observable behavior.
//
// SignInWithContinuationToken may return an error when input validation, dependency calls, or security checks fail.
// SignInWithContinuationToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The short-lived token comes from a completed sign-up or password reset
// and lets the user sign in without re-collecting credentials.
func (e *Engine) SignInWithContinuationToken(ctx context.Context, signInSLT, username string, scopes []string) (SignInResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	correlationID := ensureCorrelationID(ctx)
	e.metricInc(MetricSignInStarted)
	e.emitAudit(ctx, auditEventFlowStarted, auditFlowSignIn, username, correlationID, "continuation_token", true, nil, nil)

	return e.signInToken(ctx, username, correlationID, func(ctx context.Context) (api.SignInTokenResult, error) {
		return e.strategy.PerformSLTTokenRequest(ctx, signInSLT, username, e.mergeScopes(scopes))
	})
}

func (e *Engine) signInChallenge(ctx context.Context, credentialToken, username, password string, scopes []string, correlationID string) (SignInResult, error) {
	challenge, err := e.strategy.PerformSignInChallenge(ctx, credentialToken)
	if err != nil {
		return nil, err
	}

	switch r := challenge.(type) {
	case api.SignInChallengeOOBRequired:
		e.metricInc(MetricSignInCodeRequired)
		e.emitAudit(ctx, auditEventCodeRequired, auditFlowSignIn, username, correlationID, "code_required", true, nil, func() map[string]string {
			return map[string]string{"channel": r.ChallengeChannel}
		})
		return SignInCodeRequired{
			CredentialToken:      r.CredentialToken,
			ChallengeTargetLabel: r.ChallengeTargetLabel,
			ChallengeChannel:     r.ChallengeChannel,
			CodeLength:           r.CodeLength,
		}, nil
	case api.SignInChallengePasswordRequired:
		if password == "" {
			return nil, ErrPasswordRequired
		}
		return e.signInToken(ctx, username, correlationID, func(ctx context.Context) (api.SignInTokenResult, error) {
			return e.strategy.PerformPasswordTokenRequest(ctx, r.CredentialToken, username, password, e.mergeScopes(scopes))
		})
	case api.Redirect:
		return e.signInRedirect(ctx, username, correlationID), nil
	case api.UnknownError:
		return e.signInUnknown(ctx, username, correlationID, r), nil
	default:
		return e.signInUnknown(ctx, username, correlationID, unexpectedVariant()), nil
	}
}

// signInCodeChallenge re-runs the challenge round when only an oob
// challenge is an acceptable answer (resend, or a credential_required
// bounce from the token endpoint).
func (e *Engine) signInCodeChallenge(ctx context.Context, credentialToken, username, correlationID string) (SignInResult, error) {
	challenge, err := e.strategy.PerformSignInChallenge(ctx, credentialToken)
	if err != nil {
		return nil, err
	}

	switch r := challenge.(type) {
	case api.SignInChallengeOOBRequired:
		e.metricInc(MetricSignInCodeRequired)
		e.emitAudit(ctx, auditEventCodeRequired, auditFlowSignIn, username, correlationID, "code_required", true, nil, nil)
		return SignInCodeRequired{
			CredentialToken:      r.CredentialToken,
			ChallengeTargetLabel: r.ChallengeTargetLabel,
			ChallengeChannel:     r.ChallengeChannel,
			CodeLength:           r.CodeLength,
		}, nil
	case api.SignInChallengePasswordRequired:
		return e.signInUnknown(ctx, username, correlationID, api.UnknownError{
			APIError: api.APIError{
				Error:            api.ErrorCodeInvalidState,
				ErrorDescription: "SignIn expected an oob challenge, but the service asked for a password",
			},
		}), nil
	case api.Redirect:
		return e.signInRedirect(ctx, username, correlationID), nil
	case api.UnknownError:
		return e.signInUnknown(ctx, username, correlationID, r), nil
	default:
		return e.signInUnknown(ctx, username, correlationID, unexpectedVariant()), nil
	}
}

func (e *Engine) signInToken(ctx context.Context, username, correlationID string, request func(context.Context) (api.SignInTokenResult, error)) (SignInResult, error) {
	started := e.timeNow()
	result, err := request(ctx)
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
		e.metricInc(MetricSignInCompleted)
		e.emitAudit(ctx, auditEventFlowCompleted, auditFlowSignIn, auth.Account.Username, correlationID, "completed", true, nil, nil)
		return SignInComplete{Result: auth}, nil
	case api.SignInTokenCredentialRequired:
		return e.signInCodeChallenge(ctx, r.CredentialToken, username, correlationID)
	case api.SignInTokenUserNotFound:
		e.metricInc(MetricSignInFailed)
		e.emitAudit(ctx, auditEventFlowFailed, auditFlowSignIn, username, correlationID, "user_not_found", false, nil, nil)
		return SignInUserNotFound{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.SignInTokenPasswordIncorrect:
		e.metricInc(MetricSignInFailed)
		e.emitAudit(ctx, auditEventFlowFailed, auditFlowSignIn, username, correlationID, "password_incorrect", false, nil, nil)
		return SignInPasswordIncorrect{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.SignInTokenCodeIncorrect:
		e.metricInc(MetricSignInFailed)
		e.emitAudit(ctx, auditEventFlowFailed, auditFlowSignIn, username, correlationID, "code_incorrect", false, nil, nil)
		return SignInCodeIncorrect{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.Redirect:
		return e.signInRedirect(ctx, username, correlationID), nil
	case api.UnknownError:
		return e.signInUnknown(ctx, username, correlationID, r), nil
	default:
		return e.signInUnknown(ctx, username, correlationID, unexpectedVariant()), nil
	}
}

func (e *Engine) signInRedirect(ctx context.Context, username, correlationID string) Redirect {
	e.metricInc(MetricRedirect)
	e.emitAudit(ctx, auditEventRedirect, auditFlowSignIn, username, correlationID, "redirect", false, nil, nil)
	return Redirect{}
}

func (e *Engine) signInUnknown(ctx context.Context, username, correlationID string, u api.UnknownError) UnknownError {
	e.metricInc(MetricUnknownError)
	e.emitAudit(ctx, auditEventUnknownResponse, auditFlowSignIn, username, correlationID, "unknown", false, nil, func() map[string]string {
		return map[string]string{"error": u.Error, "status": strconv.Itoa(u.StatusCode)}
	})
	return unknownResult(u)
}

func (e *Engine) mergeScopes(scopes []string) []string {
	return flows.MergeScopes(scopes, e.config.DefaultScopes)
}

// saveTokens parses the id_token, writes the record (newest first) and
// builds the caller-facing result. A token set that cannot be attributed
// to an account is a hard error, never a silent success.
func (e *Engine) saveTokens(ctx context.Context, tokens api.TokenResponse) (*AuthenticationResult, error) {
	claims, err := idtoken.Parse(tokens.IDToken)
	if err != nil {
		return nil, err
	}

	now := e.timeNow()
	expiresAt := now.Add(time.Duration(tokens.ExpiresIn) * time.Second)

	record := tokencache.Record{
		HomeAccountID: claims.HomeAccountID(),
		Username:      claims.PreferredUsername,
		Realm:         claims.TenantID,
		ClientID:      e.config.ClientID,
		Scopes:        splitScope(tokens.Scope),
		AccessToken:   tokens.AccessToken,
		RefreshToken:  tokens.RefreshToken,
		IDToken:       tokens.IDToken,
		ExpiresAt:     expiresAt,
		CachedAt:      now,
	}
	if tokens.ExpiresIn > 0 {
		record.RefreshOn = now.Add(time.Duration(tokens.ExpiresIn) * time.Second / 2)
	}

	if err := e.tokenCache.Save(ctx, []tokencache.Record{record}); err != nil {
		return nil, err
	}
	e.metricInc(MetricTokenCacheSave)

	return &AuthenticationResult{
		Account: Account{
			HomeAccountID: record.HomeAccountID,
			Username:      record.Username,
			Name:          claims.Name,
			TenantID:      claims.TenantID,
		},
		AccessToken: tokens.AccessToken,
		IDToken:     tokens.IDToken,
		Scopes:      record.Scopes,
		TokenType:   tokens.TokenType,
		ExpiresAt:   expiresAt,
	}, nil
}

func splitScope(scope string) []string {
	return strings.Fields(scope)
}

func unexpectedVariant() api.UnknownError {
	return api.UnknownError{
		APIError: api.APIError{
			Error:            api.ErrorCodeInvalidState,
			ErrorDescription: "unexpected result variant",
		},
	}
}

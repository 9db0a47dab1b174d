package goNativeAuth

import (
	"context"
	"strconv"

	"github.com/MrEthical07/goNativeAuth/internal/api"
)

// SignUpStart describes the signupstart operation and its observable behavior.
//
// SignUpStart may return an error when input validation, dependency calls, or security checks fail.
// SignUpStart does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// A non-empty password registers a password credential up front; sign-up
// without one continues through the challenge the authority selects.
// Attributes may be nil when the tenant requires none at this stage.
func (e *Engine) SignUpStart(ctx context.Context, username, password string, attributes map[string]string) (SignUpResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	correlationID := ensureCorrelationID(ctx)
	e.metricInc(MetricSignUpStarted)
	e.emitAudit(ctx, auditEventFlowStarted, auditFlowSignUp, username, correlationID, "", true, nil, nil)

	var (
		start api.SignUpStartResult
		err   error
	)
	if password != "" {
		start, err = e.strategy.PerformSignUpStartUsingPassword(ctx, username, password, attributes)
	} else {
		start, err = e.strategy.PerformSignUpStart(ctx, username, attributes)
	}
	if err != nil {
		return nil, err
	}

	switch r := start.(type) {
	case api.SignUpStartVerificationRequired:
		return e.signUpChallenge(ctx, r.SignupToken, username, correlationID)
	case api.SignUpStartUsernameAlreadyExists:
		e.metricInc(MetricSignUpFailed)
		e.emitAudit(ctx, auditEventFlowFailed, auditFlowSignUp, username, correlationID, "username_already_exists", false, nil, nil)
		return SignUpUsernameAlreadyExists{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.SignUpStartInvalidEmail:
		e.metricInc(MetricSignUpFailed)
		e.emitAudit(ctx, auditEventFlowFailed, auditFlowSignUp, username, correlationID, "invalid_email", false, nil, nil)
		return SignUpInvalidEmail{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.SignUpStartInvalidPassword:
		e.metricInc(MetricSignUpFailed)
		e.emitAudit(ctx, auditEventFlowFailed, auditFlowSignUp, username, correlationID, "invalid_password", false, nil, nil)
		return SignUpInvalidPassword{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.SignUpStartInvalidAttributes:
		e.metricInc(MetricSignUpFailed)
		e.emitAudit(ctx, auditEventFlowFailed, auditFlowSignUp, username, correlationID, "invalid_attributes", false, nil, nil)
		return SignUpInvalidAttributes{
			InvalidAttributes: r.InvalidAttributes,
			ErrorDetail:       errorDetail(r.APIError),
		}, nil
	case api.SignUpStartAuthNotSupported:
		e.metricInc(MetricSignUpFailed)
		e.emitAudit(ctx, auditEventFlowFailed, auditFlowSignUp, username, correlationID, "auth_not_supported", false, nil, nil)
		return SignUpAuthNotSupported{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.SignUpStartUnsupportedChallengeType:
		return e.signUpUnknown(ctx, username, correlationID, api.UnknownError{APIError: r.APIError, StatusCode: 400}), nil
	case api.Redirect:
		return e.signUpRedirect(ctx, username, correlationID), nil
	case api.UnknownError:
		return e.signUpUnknown(ctx, username, correlationID, r), nil
	default:
		return e.signUpUnknown(ctx, username, correlationID, unexpectedVariant()), nil
	}
}

// SignUpSubmitCode describes the signupsubmitcode operation and its observable behavior.
//
// SignUpSubmitCode may return an error when input validation, dependency calls, or security checks fail.
// SignUpSubmitCode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) SignUpSubmitCode(ctx context.Context, signupToken, code string) (SignUpResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	correlationID := ensureCorrelationID(ctx)

	result, err := e.strategy.PerformSignUpSubmitCode(ctx, signupToken, code)
	if err != nil {
		return nil, err
	}
	return e.signUpContinue(ctx, result, correlationID)
}

// SignUpSubmitPassword describes the signupsubmitpassword operation and its observable behavior.
//
// SignUpSubmitPassword may return an error when input validation, dependency calls, or security checks fail.
// SignUpSubmitPassword does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) SignUpSubmitPassword(ctx context.Context, signupToken, password string) (SignUpResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	correlationID := ensureCorrelationID(ctx)

	result, err := e.strategy.PerformSignUpSubmitPassword(ctx, signupToken, password)
	if err != nil {
		return nil, err
	}
	return e.signUpContinue(ctx, result, correlationID)
}

// SignUpSubmitAttributes describes the signupsubmitattributes operation and its observable behavior.
//
// SignUpSubmitAttributes may return an error when input validation, dependency calls, or security checks fail.
// SignUpSubmitAttributes does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) SignUpSubmitAttributes(ctx context.Context, signupToken string, attributes map[string]string) (SignUpResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	correlationID := ensureCorrelationID(ctx)

	result, err := e.strategy.PerformSignUpSubmitUserAttributes(ctx, signupToken, attributes)
	if err != nil {
		return nil, err
	}
	return e.signUpContinue(ctx, result, correlationID)
}

// SignUpResendCode describes the signupresendcode operation and its observable behavior.
//
// SignUpResendCode may return an error when input validation, dependency calls, or security checks fail.
// SignUpResendCode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) SignUpResendCode(ctx context.Context, signupToken string) (SignUpResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	correlationID := ensureCorrelationID(ctx)

	return e.signUpCodeChallenge(ctx, signupToken, correlationID)
}

// signUpChallenge runs the challenge round and maps whichever credential
// the authority selects.
func (e *Engine) signUpChallenge(ctx context.Context, signupToken, username, correlationID string) (SignUpResult, error) {
	challenge, err := e.strategy.PerformSignUpChallenge(ctx, signupToken)
	if err != nil {
		return nil, err
	}

	switch r := challenge.(type) {
	case api.SignUpChallengeOOBRequired:
		e.emitAudit(ctx, auditEventCodeRequired, auditFlowSignUp, username, correlationID, "code_required", true, nil, func() map[string]string {
			return map[string]string{"channel": r.ChallengeChannel}
		})
		return SignUpCodeRequired{
			SignupToken:          r.SignupToken,
			ChallengeTargetLabel: r.ChallengeTargetLabel,
			ChallengeChannel:     r.ChallengeChannel,
			CodeLength:           r.CodeLength,
		}, nil
	case api.SignUpChallengePasswordRequired:
		return SignUpPasswordRequired{SignupToken: r.SignupToken}, nil
	case api.SignUpChallengeExpiredToken:
		e.metricInc(MetricSignUpFailed)
		return SignUpTokenExpired{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.Redirect:
		return e.signUpRedirect(ctx, username, correlationID), nil
	case api.UnknownError:
		return e.signUpUnknown(ctx, username, correlationID, r), nil
	default:
		return e.signUpUnknown(ctx, username, correlationID, unexpectedVariant()), nil
	}
}

// signUpCodeChallenge accepts only an oob challenge; used for resend.
func (e *Engine) signUpCodeChallenge(ctx context.Context, signupToken, correlationID string) (SignUpResult, error) {
	challenge, err := e.strategy.PerformSignUpChallenge(ctx, signupToken)
	if err != nil {
		return nil, err
	}

	switch r := challenge.(type) {
	case api.SignUpChallengeOOBRequired:
		return SignUpCodeRequired{
			SignupToken:          r.SignupToken,
			ChallengeTargetLabel: r.ChallengeTargetLabel,
			ChallengeChannel:     r.ChallengeChannel,
			CodeLength:           r.CodeLength,
		}, nil
	case api.SignUpChallengePasswordRequired:
		return e.signUpUnknown(ctx, "", correlationID, api.UnknownError{
			APIError: api.APIError{
				Error:            api.ErrorCodeInvalidState,
				ErrorDescription: "SignUp expected an oob challenge, but the service asked for a password",
			},
		}), nil
	case api.SignUpChallengeExpiredToken:
		return SignUpTokenExpired{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.Redirect:
		return e.signUpRedirect(ctx, "", correlationID), nil
	case api.UnknownError:
		return e.signUpUnknown(ctx, "", correlationID, r), nil
	default:
		return e.signUpUnknown(ctx, "", correlationID, unexpectedVariant()), nil
	}
}

// signUpContinue maps the /continue outcome. A credential_required bounce
// re-enters the challenge round exactly once; deeper loops are the
// caller's to drive through the returned variants.
func (e *Engine) signUpContinue(ctx context.Context, result api.SignUpContinueResult, correlationID string) (SignUpResult, error) {
	switch r := result.(type) {
	case api.SignUpContinueSuccess:
		e.metricInc(MetricSignUpCompleted)
		e.emitAudit(ctx, auditEventFlowCompleted, auditFlowSignUp, "", correlationID, "completed", true, nil, nil)
		return SignUpComplete{SignInSLT: r.SignInSLT, ExpiresIn: r.ExpiresIn}, nil
	case api.SignUpContinueCredentialRequired:
		return e.signUpChallenge(ctx, r.SignupToken, "", correlationID)
	case api.SignUpContinueAttributesRequired:
		e.emitAudit(ctx, auditEventFlowStarted, auditFlowSignUp, "", correlationID, "attributes_required", true, nil, func() map[string]string {
			return map[string]string{"count": strconv.Itoa(len(r.RequiredAttributes))}
		})
		return SignUpAttributesRequired{
			SignupToken:        r.SignupToken,
			RequiredAttributes: r.RequiredAttributes,
		}, nil
	case api.SignUpContinueUsernameAlreadyExists:
		e.metricInc(MetricSignUpFailed)
		return SignUpUsernameAlreadyExists{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.SignUpContinueInvalidOOBValue:
		e.metricInc(MetricSignUpFailed)
		return SignUpCodeIncorrect{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.SignUpContinueInvalidPassword:
		e.metricInc(MetricSignUpFailed)
		return SignUpInvalidPassword{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.SignUpContinueInvalidAttributes:
		e.metricInc(MetricSignUpFailed)
		return SignUpInvalidAttributes{
			InvalidAttributes: r.InvalidAttributes,
			ErrorDetail:       errorDetail(r.APIError),
		}, nil
	case api.SignUpContinueExpiredToken:
		e.metricInc(MetricSignUpFailed)
		return SignUpTokenExpired{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.Redirect:
		return e.signUpRedirect(ctx, "", correlationID), nil
	case api.UnknownError:
		return e.signUpUnknown(ctx, "", correlationID, r), nil
	default:
		return e.signUpUnknown(ctx, "", correlationID, unexpectedVariant()), nil
	}
}

func (e *Engine) signUpRedirect(ctx context.Context, username, correlationID string) Redirect {
	e.metricInc(MetricRedirect)
	e.emitAudit(ctx, auditEventRedirect, auditFlowSignUp, username, correlationID, "redirect", false, nil, nil)
	return Redirect{}
}

func (e *Engine) signUpUnknown(ctx context.Context, username, correlationID string, u api.UnknownError) UnknownError {
	e.metricInc(MetricUnknownError)
	e.emitAudit(ctx, auditEventUnknownResponse, auditFlowSignUp, username, correlationID, "unknown", false, nil, func() map[string]string {
		return map[string]string{"error": u.Error, "status": strconv.Itoa(u.StatusCode)}
	})
	return unknownResult(u)
}

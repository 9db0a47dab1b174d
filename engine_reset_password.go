package goNativeAuth

import (
	"context"
	"strconv"

	"github.com/MrEthical07/goNativeAuth/internal/api"
	"github.com/MrEthical07/goNativeAuth/internal/flows"
)

// ResetPasswordStart describes the resetpasswordstart operation and its observable behavior.
//
// ResetPasswordStart may return an error when input validation, dependency calls, or security checks fail.
// ResetPasswordStart does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) ResetPasswordStart(ctx context.Context, username string) (ResetPasswordResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	correlationID := ensureCorrelationID(ctx)
	e.metricInc(MetricResetPasswordStarted)
	e.emitAudit(ctx, auditEventFlowStarted, auditFlowResetPassword, username, correlationID, "", true, nil, nil)

	start, err := e.strategy.PerformResetPasswordStart(ctx, username)
	if err != nil {
		return nil, err
	}

	switch r := start.(type) {
	case api.ResetPasswordStartSuccess:
		return e.resetPasswordChallenge(ctx, r.PasswordResetToken, username, correlationID)
	case api.ResetPasswordStartUserNotFound:
		e.metricInc(MetricResetPasswordFailed)
		e.emitAudit(ctx, auditEventFlowFailed, auditFlowResetPassword, username, correlationID, "user_not_found", false, nil, nil)
		return ResetPasswordUserNotFound{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.Redirect:
		return e.resetPasswordRedirect(ctx, username, correlationID), nil
	case api.UnknownError:
		return e.resetPasswordUnknown(ctx, username, correlationID, r), nil
	default:
		return e.resetPasswordUnknown(ctx, username, correlationID, unexpectedVariant()), nil
	}
}

// ResetPasswordSubmitCode describes the resetpasswordsubmitcode operation and its observable behavior.
//
// ResetPasswordSubmitCode may return an error when input validation, dependency calls, or security checks fail.
// ResetPasswordSubmitCode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) ResetPasswordSubmitCode(ctx context.Context, passwordResetToken, code string) (ResetPasswordResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	correlationID := ensureCorrelationID(ctx)

	result, err := e.strategy.PerformResetPasswordContinue(ctx, passwordResetToken, code)
	if err != nil {
		return nil, err
	}

	switch r := result.(type) {
	case api.ResetPasswordContinuePasswordRequired:
		return ResetPasswordPasswordRequired{
			PasswordSubmitToken: r.PasswordSubmitToken,
			ExpiresIn:           r.ExpiresIn,
		}, nil
	case api.ResetPasswordContinueCodeIncorrect:
		e.metricInc(MetricResetPasswordFailed)
		e.emitAudit(ctx, auditEventFlowFailed, auditFlowResetPassword, "", correlationID, "code_incorrect", false, nil, nil)
		return ResetPasswordCodeIncorrect{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.ResetPasswordContinueExpiredToken:
		e.metricInc(MetricResetPasswordFailed)
		return ResetPasswordTokenExpired{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.Redirect:
		return e.resetPasswordRedirect(ctx, "", correlationID), nil
	case api.UnknownError:
		return e.resetPasswordUnknown(ctx, "", correlationID, r), nil
	default:
		return e.resetPasswordUnknown(ctx, "", correlationID, unexpectedVariant()), nil
	}
}

// ResetPasswordResendCode describes the resetpasswordresendcode operation and its observable behavior.
//
// ResetPasswordResendCode may return an error when input validation, dependency calls, or security checks fail.
// ResetPasswordResendCode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) ResetPasswordResendCode(ctx context.Context, passwordResetToken string) (ResetPasswordResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	correlationID := ensureCorrelationID(ctx)

	return e.resetPasswordChallenge(ctx, passwordResetToken, "", correlationID)
}

// ResetPasswordSubmitNewPassword describes the resetpasswordsubmitnewpassword operation and its observable behavior.
//
// ResetPasswordSubmitNewPassword may return an error when input validation, dependency calls, or security checks fail.
// ResetPasswordSubmitNewPassword does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// On acceptance the call blocks, polling the authority until the reset
// reaches a terminal state or the completion budget runs out. The wait
// between polls honors ctx cancellation.
func (e *Engine) ResetPasswordSubmitNewPassword(ctx context.Context, passwordSubmitToken, newPassword string) (ResetPasswordResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}
	correlationID := ensureCorrelationID(ctx)

	result, err := e.strategy.PerformResetPasswordSubmit(ctx, passwordSubmitToken, newPassword)
	if err != nil {
		return nil, err
	}

	switch r := result.(type) {
	case api.ResetPasswordSubmitSuccess:
		return e.resetPasswordPoll(ctx, r, correlationID)
	case api.ResetPasswordSubmitPasswordInvalid:
		e.metricInc(MetricResetPasswordFailed)
		e.emitAudit(ctx, auditEventFlowFailed, auditFlowResetPassword, "", correlationID, "invalid_password", false, nil, nil)
		return ResetPasswordInvalidPassword{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.ResetPasswordSubmitExpiredToken:
		e.metricInc(MetricResetPasswordFailed)
		return ResetPasswordTokenExpired{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.UnknownError:
		return e.resetPasswordUnknown(ctx, "", correlationID, r), nil
	default:
		return e.resetPasswordUnknown(ctx, "", correlationID, unexpectedVariant()), nil
	}
}

func (e *Engine) resetPasswordChallenge(ctx context.Context, passwordResetToken, username, correlationID string) (ResetPasswordResult, error) {
	challenge, err := e.strategy.PerformResetPasswordChallenge(ctx, passwordResetToken)
	if err != nil {
		return nil, err
	}

	switch r := challenge.(type) {
	case api.ResetPasswordChallengeCodeRequired:
		e.emitAudit(ctx, auditEventCodeRequired, auditFlowResetPassword, username, correlationID, "code_required", true, nil, func() map[string]string {
			return map[string]string{"channel": r.ChallengeChannel}
		})
		return ResetPasswordCodeRequired{
			PasswordResetToken:   r.PasswordResetToken,
			ChallengeTargetLabel: r.ChallengeTargetLabel,
			ChallengeChannel:     r.ChallengeChannel,
			CodeLength:           r.CodeLength,
		}, nil
	case api.ResetPasswordChallengeExpiredToken:
		e.metricInc(MetricResetPasswordFailed)
		return ResetPasswordTokenExpired{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.Redirect:
		return e.resetPasswordRedirect(ctx, username, correlationID), nil
	case api.UnknownError:
		return e.resetPasswordUnknown(ctx, username, correlationID, r), nil
	default:
		return e.resetPasswordUnknown(ctx, username, correlationID, unexpectedVariant()), nil
	}
}

func (e *Engine) resetPasswordPoll(ctx context.Context, submit api.ResetPasswordSubmitSuccess, correlationID string) (ResetPasswordResult, error) {
	interval := flows.NormalizePollInterval(submit.PollInterval, e.config.Poll.DefaultInterval)

	result, err := flows.RunPollCompletion(ctx, interval, flows.PollCompletionDeps{
		Timeout:         e.config.Poll.CompletionTimeout,
		DefaultInterval: e.config.Poll.DefaultInterval,
		Poll: func(ctx context.Context) (api.ResetPasswordPollCompletionResult, error) {
			return e.strategy.PerformResetPasswordPollCompletion(ctx, submit.PasswordResetToken)
		},
		Now:       e.timeNow,
		MetricInc: func(id int) { e.metricInc(MetricID(id)) },
		Warn:      e.warnf,
		Metrics: flows.PollMetrics{
			Polls:   int(MetricResetPasswordPoll),
			Timeout: int(MetricResetPasswordPollTimeout),
		},
	})
	if err != nil {
		return nil, err
	}

	switch r := result.(type) {
	case api.ResetPasswordPollingSucceeded:
		e.metricInc(MetricResetPasswordCompleted)
		e.emitAudit(ctx, auditEventFlowCompleted, auditFlowResetPassword, "", correlationID, "completed", true, nil, nil)
		return ResetPasswordComplete{SignInSLT: r.SignInSLT, ExpiresIn: r.ExpiresIn}, nil
	case api.ResetPasswordPollingFailed:
		e.metricInc(MetricResetPasswordFailed)
		eventType := auditEventFlowFailed
		if r.Error == api.ErrorCodePollTimeout {
			eventType = auditEventPollTimeout
		}
		e.emitAudit(ctx, eventType, auditFlowResetPassword, "", correlationID, "failed", false, nil, func() map[string]string {
			return map[string]string{"error": r.Error}
		})
		return ResetPasswordFailed{ErrorDetail: errorDetail(r.APIError)}, nil
	case api.UnknownError:
		return e.resetPasswordUnknown(ctx, "", correlationID, r), nil
	default:
		return e.resetPasswordUnknown(ctx, "", correlationID, unexpectedVariant()), nil
	}
}

func (e *Engine) resetPasswordRedirect(ctx context.Context, username, correlationID string) Redirect {
	e.metricInc(MetricRedirect)
	e.emitAudit(ctx, auditEventRedirect, auditFlowResetPassword, username, correlationID, "redirect", false, nil, nil)
	return Redirect{}
}

func (e *Engine) resetPasswordUnknown(ctx context.Context, username, correlationID string, u api.UnknownError) UnknownError {
	e.metricInc(MetricUnknownError)
	e.emitAudit(ctx, auditEventUnknownResponse, auditFlowResetPassword, username, correlationID, "unknown", false, nil, func() map[string]string {
		return map[string]string{"error": u.Error, "status": strconv.Itoa(u.StatusCode)}
	})
	return unknownResult(u)
}

package goNativeAuth

// ResetPasswordResult is the closed result union returned by the
// self-service password reset operations ([Engine.ResetPasswordStart],
// [Engine.ResetPasswordSubmitCode], [Engine.ResetPasswordSubmitNewPassword],
// [Engine.ResetPasswordResendCode]).
type ResetPasswordResult interface{ resetPasswordResult() }

// ResetPasswordCodeRequired asks the caller to collect a one-time code
// and submit it via [Engine.ResetPasswordSubmitCode].
type ResetPasswordCodeRequired struct {
	PasswordResetToken   string
	ChallengeTargetLabel string
	ChallengeChannel     string
	CodeLength           int
}

// ResetPasswordPasswordRequired asks the caller to collect the new
// password and submit it via [Engine.ResetPasswordSubmitNewPassword].
// ExpiresIn bounds the submit token's validity in seconds.
type ResetPasswordPasswordRequired struct {
	PasswordSubmitToken string
	ExpiresIn           int64
}

// ResetPasswordComplete reports the new password has been applied.
// SignInSLT, when present, can be handed to
// [Engine.SignInWithContinuationToken] for an immediate sign-in.
type ResetPasswordComplete struct {
	SignInSLT string
	ExpiresIn int64
}

// ResetPasswordUserNotFound reports that the username is not registered.
type ResetPasswordUserNotFound struct {
	ErrorDetail
}

// ResetPasswordCodeIncorrect reports a rejected one-time code.
type ResetPasswordCodeIncorrect struct {
	ErrorDetail
}

// ResetPasswordInvalidPassword reports a password-quality rejection. The
// submit token stays valid for another attempt.
type ResetPasswordInvalidPassword struct {
	ErrorDetail
}

// ResetPasswordTokenExpired reports that the flow token went stale; the
// caller must restart with [Engine.ResetPasswordStart].
type ResetPasswordTokenExpired struct {
	ErrorDetail
}

// ResetPasswordFailed reports that the reset was accepted but never
// completed: either the authority reported failure or completion polling
// exhausted its time budget (ErrorCode "password_reset_timeout").
type ResetPasswordFailed struct {
	ErrorDetail
}

func (ResetPasswordCodeRequired) resetPasswordResult()     {}
func (ResetPasswordPasswordRequired) resetPasswordResult() {}
func (ResetPasswordComplete) resetPasswordResult()         {}
func (ResetPasswordUserNotFound) resetPasswordResult()     {}
func (ResetPasswordCodeIncorrect) resetPasswordResult()    {}
func (ResetPasswordInvalidPassword) resetPasswordResult()  {}
func (ResetPasswordTokenExpired) resetPasswordResult()     {}
func (ResetPasswordFailed) resetPasswordResult()           {}

package goNativeAuth

// SignInResult is the closed result union returned by the sign-in
// operations ([Engine.SignInStart], [Engine.SignInSubmitCode],
// [Engine.SignInResendCode], [Engine.SignInWithContinuationToken]).
//
// Callers switch on the concrete variant. [Redirect] and [UnknownError]
// are part of this union.
type SignInResult interface{ signInResult() }

// SignInComplete reports a finished sign-in. The token set has already
// been written to the token cache.
type SignInComplete struct {
	Result *AuthenticationResult
}

// SignInCodeRequired asks the caller to collect a one-time code that was
// delivered out of band and submit it via [Engine.SignInSubmitCode].
type SignInCodeRequired struct {
	CredentialToken      string
	ChallengeTargetLabel string
	ChallengeChannel     string
	CodeLength           int
}

// SignInUserNotFound reports that the username is not registered.
type SignInUserNotFound struct {
	ErrorDetail
}

// SignInPasswordIncorrect reports a rejected password.
type SignInPasswordIncorrect struct {
	ErrorDetail
}

// SignInCodeIncorrect reports a rejected one-time code. The flow token in
// the prior [SignInCodeRequired] stays valid for another attempt.
type SignInCodeIncorrect struct {
	ErrorDetail
}

func (SignInComplete) signInResult()          {}
func (SignInCodeRequired) signInResult()      {}
func (SignInUserNotFound) signInResult()      {}
func (SignInPasswordIncorrect) signInResult() {}
func (SignInCodeIncorrect) signInResult()     {}

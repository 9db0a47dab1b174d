package goNativeAuth

// SignUpResult is the closed result union returned by the sign-up
// operations ([Engine.SignUpStart], [Engine.SignUpSubmitCode],
// [Engine.SignUpSubmitPassword], [Engine.SignUpSubmitAttributes],
// [Engine.SignUpResendCode]).
type SignUpResult interface{ signUpResult() }

// SignUpComplete reports a finished sign-up. SignInSLT, when present, can
// be handed to [Engine.SignInWithContinuationToken] for an immediate
// sign-in without re-collecting credentials.
type SignUpComplete struct {
	SignInSLT string
	ExpiresIn int64
}

// SignUpCodeRequired asks the caller to collect a one-time code and
// submit it via [Engine.SignUpSubmitCode].
type SignUpCodeRequired struct {
	SignupToken          string
	ChallengeTargetLabel string
	ChallengeChannel     string
	CodeLength           int
}

// SignUpPasswordRequired asks the caller to collect a password and submit
// it via [Engine.SignUpSubmitPassword].
type SignUpPasswordRequired struct {
	SignupToken string
}

// SignUpAttributesRequired asks the caller to collect the named profile
// attributes and submit them via [Engine.SignUpSubmitAttributes].
type SignUpAttributesRequired struct {
	SignupToken        string
	RequiredAttributes []string
}

// SignUpUsernameAlreadyExists reports a taken username.
type SignUpUsernameAlreadyExists struct {
	ErrorDetail
}

// SignUpInvalidEmail reports a malformed username.
type SignUpInvalidEmail struct {
	ErrorDetail
}

// SignUpInvalidPassword reports a password-quality rejection.
type SignUpInvalidPassword struct {
	ErrorDetail
}

// SignUpInvalidAttributes reports rejected attributes by name.
type SignUpInvalidAttributes struct {
	InvalidAttributes []string
	ErrorDetail
}

// SignUpCodeIncorrect reports a rejected one-time code.
type SignUpCodeIncorrect struct {
	ErrorDetail
}

// SignUpAuthNotSupported reports that the tenant does not allow this
// authentication method.
type SignUpAuthNotSupported struct {
	ErrorDetail
}

// SignUpTokenExpired reports that the flow token went stale; the caller
// must restart with [Engine.SignUpStart].
type SignUpTokenExpired struct {
	ErrorDetail
}

func (SignUpComplete) signUpResult()              {}
func (SignUpCodeRequired) signUpResult()          {}
func (SignUpPasswordRequired) signUpResult()      {}
func (SignUpAttributesRequired) signUpResult()    {}
func (SignUpUsernameAlreadyExists) signUpResult() {}
func (SignUpInvalidEmail) signUpResult()          {}
func (SignUpInvalidPassword) signUpResult()       {}
func (SignUpInvalidAttributes) signUpResult()     {}
func (SignUpCodeIncorrect) signUpResult()         {}
func (SignUpAuthNotSupported) signUpResult()      {}
func (SignUpTokenExpired) signUpResult()          {}

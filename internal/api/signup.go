package api

// SignUpStartResult is the closed result set of /signup/start.
type SignUpStartResult interface{ signUpStartResult() }

// SignUpStartVerificationRequired carries the flow token and the attributes
// the service still needs verified.
type SignUpStartVerificationRequired struct {
	SignupToken          string
	UnverifiedAttributes []string
}

// SignUpStartUsernameAlreadyExists reports a taken username.
type SignUpStartUsernameAlreadyExists struct {
	APIError
}

// SignUpStartInvalidEmail reports a malformed username.
type SignUpStartInvalidEmail struct {
	APIError
}

// SignUpStartInvalidPassword reports a password-quality rejection.
type SignUpStartInvalidPassword struct {
	APIError
}

// SignUpStartInvalidAttributes reports rejected attributes by name.
type SignUpStartInvalidAttributes struct {
	InvalidAttributes []string
	APIError
}

// SignUpStartAuthNotSupported reports that the tenant does not allow this
// authentication method.
type SignUpStartAuthNotSupported struct {
	APIError
}

// SignUpStartUnsupportedChallengeType reports a challenge-type mismatch.
type SignUpStartUnsupportedChallengeType struct {
	APIError
}

func (SignUpStartVerificationRequired) signUpStartResult()     {}
func (SignUpStartUsernameAlreadyExists) signUpStartResult()    {}
func (SignUpStartInvalidEmail) signUpStartResult()             {}
func (SignUpStartInvalidPassword) signUpStartResult()          {}
func (SignUpStartInvalidAttributes) signUpStartResult()        {}
func (SignUpStartAuthNotSupported) signUpStartResult()         {}
func (SignUpStartUnsupportedChallengeType) signUpStartResult() {}
func (Redirect) signUpStartResult()                            {}
func (UnknownError) signUpStartResult()                        {}

type attributeName struct {
	Name string `json:"name"`
}

func attributeNames(raw []attributeName) []string {
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, a := range raw {
		if a.Name != "" {
			out = append(out, a.Name)
		}
	}
	return out
}

// SignUpStartResponse is the raw /signup/start record.
type SignUpStartResponse struct {
	StatusCode           int             `json:"-"`
	ChallengeType        string          `json:"challenge_type"`
	SignupToken          string          `json:"signup_token"`
	UnverifiedAttributes []attributeName `json:"unverified_attributes"`
	InvalidAttributes    []attributeName `json:"invalid_attributes"`
	APIError
}

// ParseSignUpStartResponse decodes the wire body.
func ParseSignUpStartResponse(r *HTTPResponse) (*SignUpStartResponse, error) {
	out := &SignUpStartResponse{}
	if err := decodeResponse(r, out); err != nil {
		return nil, err
	}
	out.StatusCode = r.StatusCode
	return out, nil
}

// ToResult classifies the signup start response. The service reports the
// verification_required continuation with a 400 status, so it sits inside
// the error chain; its position after the validation predicates is part of
// the wire contract.
func (r *SignUpStartResponse) ToResult() SignUpStartResult {
	if r.StatusCode >= 400 {
		switch {
		case r.isUsernameAlreadyExists():
			return SignUpStartUsernameAlreadyExists{APIError: r.APIError}
		case r.isInvalidEmail():
			return SignUpStartInvalidEmail{APIError: r.APIError}
		case r.isAuthNotSupported():
			return SignUpStartAuthNotSupported{APIError: r.APIError}
		case r.isAttributeValidationFailed():
			names := attributeNames(r.InvalidAttributes)
			if len(names) == 0 {
				return UnknownError{
					APIError:   invalidStateError("SignUp /start returned attribute_validation_failed without invalid_attributes"),
					StatusCode: r.StatusCode,
				}
			}
			return SignUpStartInvalidAttributes{InvalidAttributes: names, APIError: r.APIError}
		case r.isUnsupportedChallengeType():
			return SignUpStartUnsupportedChallengeType{APIError: r.APIError}
		case r.isPasswordInvalid():
			return SignUpStartInvalidPassword{APIError: r.APIError}
		case r.isVerificationRequired():
			if isBlank(r.SignupToken) || len(r.UnverifiedAttributes) == 0 {
				return UnknownError{
					APIError:   invalidStateError("SignUp /start requires verification, but did not return a flow token"),
					StatusCode: r.StatusCode,
				}
			}
			return SignUpStartVerificationRequired{
				SignupToken:          r.SignupToken,
				UnverifiedAttributes: attributeNames(r.UnverifiedAttributes),
			}
		default:
			return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
		}
	}

	if isRedirect(r.ChallengeType) {
		return Redirect{}
	}
	return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
}

// SignUpChallengeResult is the closed result set of /signup/challenge.
type SignUpChallengeResult interface{ signUpChallengeResult() }

// SignUpChallengeOOBRequired asks the caller to collect a one-time code.
type SignUpChallengeOOBRequired struct {
	SignupToken          string
	ChallengeTargetLabel string
	ChallengeChannel     string
	CodeLength           int
}

// SignUpChallengePasswordRequired asks the caller to supply a password.
type SignUpChallengePasswordRequired struct {
	SignupToken string
}

// SignUpChallengeExpiredToken reports a stale flow token.
type SignUpChallengeExpiredToken struct {
	APIError
}

func (SignUpChallengeOOBRequired) signUpChallengeResult()      {}
func (SignUpChallengePasswordRequired) signUpChallengeResult() {}
func (SignUpChallengeExpiredToken) signUpChallengeResult()     {}
func (Redirect) signUpChallengeResult()                        {}
func (UnknownError) signUpChallengeResult()                    {}

// SignUpChallengeResponse is the raw /signup/challenge record.
type SignUpChallengeResponse struct {
	StatusCode           int    `json:"-"`
	ChallengeType        string `json:"challenge_type"`
	SignupToken          string `json:"signup_token"`
	ChallengeTargetLabel string `json:"challenge_target_label"`
	ChallengeChannel     string `json:"challenge_channel"`
	CodeLength           int    `json:"code_length"`
	APIError
}

// ParseSignUpChallengeResponse decodes the wire body.
func ParseSignUpChallengeResponse(r *HTTPResponse) (*SignUpChallengeResponse, error) {
	out := &SignUpChallengeResponse{}
	if err := decodeResponse(r, out); err != nil {
		return nil, err
	}
	out.StatusCode = r.StatusCode
	return out, nil
}

// ToResult classifies the signup challenge response.
func (r *SignUpChallengeResponse) ToResult() SignUpChallengeResult {
	if r.StatusCode >= 400 {
		switch {
		case r.isExpiredToken():
			return SignUpChallengeExpiredToken{APIError: r.APIError}
		default:
			return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
		}
	}

	switch {
	case isRedirect(r.ChallengeType):
		return Redirect{}
	case r.ChallengeType == ChallengeTypeOOB:
		if isBlank(r.SignupToken) || isBlank(r.ChallengeTargetLabel) ||
			isBlank(r.ChallengeChannel) || r.CodeLength <= 0 {
			return UnknownError{
				APIError:   invalidStateError("SignUp /challenge did not return a complete oob challenge"),
				StatusCode: r.StatusCode,
			}
		}
		return SignUpChallengeOOBRequired{
			SignupToken:          r.SignupToken,
			ChallengeTargetLabel: r.ChallengeTargetLabel,
			ChallengeChannel:     r.ChallengeChannel,
			CodeLength:           r.CodeLength,
		}
	case r.ChallengeType == ChallengeTypePassword:
		if isBlank(r.SignupToken) {
			return UnknownError{
				APIError:   invalidStateError("SignUp /challenge successful, but did not return a flow token"),
				StatusCode: r.StatusCode,
			}
		}
		return SignUpChallengePasswordRequired{SignupToken: r.SignupToken}
	default:
		return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
	}
}

// SignUpContinueResult is the closed result set of /signup/continue.
type SignUpContinueResult interface{ signUpContinueResult() }

// SignUpContinueSuccess completes the flow. SignInSLT, when present, is a
// short-lived token usable for an immediate sign-in.
type SignUpContinueSuccess struct {
	SignInSLT string
	ExpiresIn int64
}

// SignUpContinueCredentialRequired reports that a credential round is
// still needed before the flow can complete.
type SignUpContinueCredentialRequired struct {
	SignupToken string
	APIError
}

// SignUpContinueAttributesRequired reports that more attributes must be
// submitted before the flow can complete.
type SignUpContinueAttributesRequired struct {
	SignupToken        string
	RequiredAttributes []string
	APIError
}

// SignUpContinueUsernameAlreadyExists reports a taken username.
type SignUpContinueUsernameAlreadyExists struct {
	APIError
}

// SignUpContinueInvalidOOBValue reports a rejected one-time code.
type SignUpContinueInvalidOOBValue struct {
	APIError
}

// SignUpContinueInvalidPassword reports a password-quality rejection.
type SignUpContinueInvalidPassword struct {
	APIError
}

// SignUpContinueInvalidAttributes reports rejected attributes by name.
type SignUpContinueInvalidAttributes struct {
	InvalidAttributes []string
	APIError
}

// SignUpContinueExpiredToken reports a stale flow token.
type SignUpContinueExpiredToken struct {
	APIError
}

func (SignUpContinueSuccess) signUpContinueResult()               {}
func (SignUpContinueCredentialRequired) signUpContinueResult()    {}
func (SignUpContinueAttributesRequired) signUpContinueResult()    {}
func (SignUpContinueUsernameAlreadyExists) signUpContinueResult() {}
func (SignUpContinueInvalidOOBValue) signUpContinueResult()       {}
func (SignUpContinueInvalidPassword) signUpContinueResult()       {}
func (SignUpContinueInvalidAttributes) signUpContinueResult()     {}
func (SignUpContinueExpiredToken) signUpContinueResult()          {}
func (Redirect) signUpContinueResult()                            {}
func (UnknownError) signUpContinueResult()                        {}

// SignUpContinueResponse is the raw /signup/continue record.
type SignUpContinueResponse struct {
	StatusCode         int             `json:"-"`
	SignupToken        string          `json:"signup_token"`
	SignInSLT          string          `json:"signin_slt"`
	ExpiresIn          int64           `json:"expires_in"`
	RequiredAttributes []attributeName `json:"required_attributes"`
	InvalidAttributes  []attributeName `json:"invalid_attributes"`
	APIError
}

// ParseSignUpContinueResponse decodes the wire body.
func ParseSignUpContinueResponse(r *HTTPResponse) (*SignUpContinueResponse, error) {
	out := &SignUpContinueResponse{}
	if err := decodeResponse(r, out); err != nil {
		return nil, err
	}
	out.StatusCode = r.StatusCode
	return out, nil
}

// ToResult classifies the signup continue response. The continuation
// rejections carrying a fresh flow token (credential_required,
// attributes_required) come after the validation rejections: both reuse
// 400 statuses and the validation codes are the more specific signal.
func (r *SignUpContinueResponse) ToResult() SignUpContinueResult {
	if r.StatusCode >= 400 {
		switch {
		case r.isExpiredToken():
			return SignUpContinueExpiredToken{APIError: r.APIError}
		case r.isUsernameAlreadyExists():
			return SignUpContinueUsernameAlreadyExists{APIError: r.APIError}
		case r.isInvalidOOBValue():
			return SignUpContinueInvalidOOBValue{APIError: r.APIError}
		case r.isPasswordInvalid():
			return SignUpContinueInvalidPassword{APIError: r.APIError}
		case r.isAttributeValidationFailed():
			names := attributeNames(r.InvalidAttributes)
			if len(names) == 0 {
				return UnknownError{
					APIError:   invalidStateError("SignUp /continue returned attribute_validation_failed without invalid_attributes"),
					StatusCode: r.StatusCode,
				}
			}
			return SignUpContinueInvalidAttributes{InvalidAttributes: names, APIError: r.APIError}
		case r.isCredentialRequired():
			if isBlank(r.SignupToken) {
				return UnknownError{
					APIError:   invalidStateError("SignUp /continue requires a credential, but did not return a flow token"),
					StatusCode: r.StatusCode,
				}
			}
			return SignUpContinueCredentialRequired{SignupToken: r.SignupToken, APIError: r.APIError}
		case r.isAttributesRequired():
			names := attributeNames(r.RequiredAttributes)
			if isBlank(r.SignupToken) || len(names) == 0 {
				return UnknownError{
					APIError:   invalidStateError("SignUp /continue requires attributes, but did not return a flow token"),
					StatusCode: r.StatusCode,
				}
			}
			return SignUpContinueAttributesRequired{
				SignupToken:        r.SignupToken,
				RequiredAttributes: names,
				APIError:           r.APIError,
			}
		default:
			return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
		}
	}

	return SignUpContinueSuccess{SignInSLT: r.SignInSLT, ExpiresIn: r.ExpiresIn}
}

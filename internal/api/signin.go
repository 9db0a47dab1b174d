package api

// SignInInitiateResult is the closed result set of /oauth2/initiate.
type SignInInitiateResult interface{ signInInitiateResult() }

// SignInInitiateSuccess carries the flow token for the challenge call.
type SignInInitiateSuccess struct {
	CredentialToken string
}

// SignInInitiateUserNotFound reports an unknown username.
type SignInInitiateUserNotFound struct {
	APIError
}

func (SignInInitiateSuccess) signInInitiateResult()      {}
func (SignInInitiateUserNotFound) signInInitiateResult() {}
func (Redirect) signInInitiateResult()                   {}
func (UnknownError) signInInitiateResult()               {}

// SignInInitiateResponse is the raw /oauth2/initiate record.
type SignInInitiateResponse struct {
	StatusCode      int    `json:"-"`
	ChallengeType   string `json:"challenge_type"`
	CredentialToken string `json:"credential_token"`
	APIError
}

// ParseSignInInitiateResponse decodes the wire body; a malformed body is a
// transport-class failure, not a protocol outcome.
func ParseSignInInitiateResponse(r *HTTPResponse) (*SignInInitiateResponse, error) {
	out := &SignInInitiateResponse{}
	if err := decodeResponse(r, out); err != nil {
		return nil, err
	}
	out.StatusCode = r.StatusCode
	return out, nil
}

// ToResult classifies the initiate response. Predicate order matters.
func (r *SignInInitiateResponse) ToResult() SignInInitiateResult {
	if r.StatusCode >= 400 {
		switch {
		case r.isUserNotFound():
			return SignInInitiateUserNotFound{APIError: r.APIError}
		default:
			return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
		}
	}

	if isRedirect(r.ChallengeType) {
		return Redirect{}
	}
	if isBlank(r.CredentialToken) {
		return UnknownError{
			APIError:   invalidStateError("SignIn /initiate successful, but did not return a flow token"),
			StatusCode: r.StatusCode,
		}
	}
	return SignInInitiateSuccess{CredentialToken: r.CredentialToken}
}

// SignInChallengeResult is the closed result set of /oauth2/challenge.
type SignInChallengeResult interface{ signInChallengeResult() }

// SignInChallengeOOBRequired asks the caller to collect a one-time code.
type SignInChallengeOOBRequired struct {
	CredentialToken      string
	ChallengeTargetLabel string
	ChallengeChannel     string
	CodeLength           int
}

// SignInChallengePasswordRequired asks the caller to supply the password.
type SignInChallengePasswordRequired struct {
	CredentialToken string
}

func (SignInChallengeOOBRequired) signInChallengeResult()      {}
func (SignInChallengePasswordRequired) signInChallengeResult() {}
func (Redirect) signInChallengeResult()                        {}
func (UnknownError) signInChallengeResult()                    {}

// SignInChallengeResponse is the raw /oauth2/challenge record.
type SignInChallengeResponse struct {
	StatusCode           int    `json:"-"`
	ChallengeType        string `json:"challenge_type"`
	CredentialToken      string `json:"credential_token"`
	ChallengeTargetLabel string `json:"challenge_target_label"`
	ChallengeChannel     string `json:"challenge_channel"`
	CodeLength           int    `json:"code_length"`
	APIError
}

// ParseSignInChallengeResponse decodes the wire body.
func ParseSignInChallengeResponse(r *HTTPResponse) (*SignInChallengeResponse, error) {
	out := &SignInChallengeResponse{}
	if err := decodeResponse(r, out); err != nil {
		return nil, err
	}
	out.StatusCode = r.StatusCode
	return out, nil
}

// ToResult classifies the challenge response.
func (r *SignInChallengeResponse) ToResult() SignInChallengeResult {
	if r.StatusCode >= 400 {
		return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
	}

	switch {
	case isRedirect(r.ChallengeType):
		return Redirect{}
	case r.ChallengeType == ChallengeTypeOOB:
		if isBlank(r.CredentialToken) || isBlank(r.ChallengeTargetLabel) ||
			isBlank(r.ChallengeChannel) || r.CodeLength <= 0 {
			return UnknownError{
				APIError:   invalidStateError("SignIn /challenge did not return a complete oob challenge"),
				StatusCode: r.StatusCode,
			}
		}
		return SignInChallengeOOBRequired{
			CredentialToken:      r.CredentialToken,
			ChallengeTargetLabel: r.ChallengeTargetLabel,
			ChallengeChannel:     r.ChallengeChannel,
			CodeLength:           r.CodeLength,
		}
	case r.ChallengeType == ChallengeTypePassword:
		if isBlank(r.CredentialToken) {
			return UnknownError{
				APIError:   invalidStateError("SignIn /challenge successful, but did not return a flow token"),
				StatusCode: r.StatusCode,
			}
		}
		return SignInChallengePasswordRequired{CredentialToken: r.CredentialToken}
	default:
		return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
	}
}

// SignInTokenResult is the closed result set of /oauth2/token.
type SignInTokenResult interface{ signInTokenResult() }

// SignInTokenSuccess carries the issued token set.
type SignInTokenSuccess struct {
	Tokens TokenResponse
}

// SignInTokenCredentialRequired reports that the presented grant is not
// enough and a challenge round is needed.
type SignInTokenCredentialRequired struct {
	CredentialToken string
	APIError
}

// SignInTokenUserNotFound reports an unknown username.
type SignInTokenUserNotFound struct {
	APIError
}

// SignInTokenPasswordIncorrect reports a rejected password grant.
type SignInTokenPasswordIncorrect struct {
	APIError
}

// SignInTokenCodeIncorrect reports a rejected one-time code.
type SignInTokenCodeIncorrect struct {
	APIError
}

func (SignInTokenSuccess) signInTokenResult()            {}
func (SignInTokenCredentialRequired) signInTokenResult() {}
func (SignInTokenUserNotFound) signInTokenResult()       {}
func (SignInTokenPasswordIncorrect) signInTokenResult()  {}
func (SignInTokenCodeIncorrect) signInTokenResult()      {}
func (Redirect) signInTokenResult()                      {}
func (UnknownError) signInTokenResult()                  {}

// SignInTokenResponse is the raw /oauth2/token record.
type SignInTokenResponse struct {
	StatusCode      int    `json:"-"`
	CredentialToken string `json:"credential_token"`
	TokenResponse
	APIError
}

// ParseSignInTokenResponse decodes the wire body.
func ParseSignInTokenResponse(r *HTTPResponse) (*SignInTokenResponse, error) {
	out := &SignInTokenResponse{}
	if err := decodeResponse(r, out); err != nil {
		return nil, err
	}
	out.StatusCode = r.StatusCode
	return out, nil
}

// ToResult classifies the token response. invalid_grant is ambiguous on
// this endpoint; the numeric error_codes disambiguate, so the order of the
// credential_required, password and oob checks must not change.
func (r *SignInTokenResponse) ToResult() SignInTokenResult {
	if r.StatusCode >= 400 {
		switch {
		case r.isUserNotFound():
			return SignInTokenUserNotFound{APIError: r.APIError}
		case r.isCredentialRequired():
			if isBlank(r.CredentialToken) {
				return UnknownError{
					APIError:   invalidStateError("SignIn /token requires a credential, but did not return a flow token"),
					StatusCode: r.StatusCode,
				}
			}
			return SignInTokenCredentialRequired{
				CredentialToken: r.CredentialToken,
				APIError:        r.APIError,
			}
		case r.isPasswordIncorrect():
			return SignInTokenPasswordIncorrect{APIError: r.APIError}
		case r.isInvalidOOBValue():
			return SignInTokenCodeIncorrect{APIError: r.APIError}
		default:
			return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
		}
	}

	if isBlank(r.AccessToken) || isBlank(r.RefreshToken) || isBlank(r.IDToken) {
		return UnknownError{
			APIError:   invalidStateError("SignIn /token successful, but did not return a complete token set"),
			StatusCode: r.StatusCode,
		}
	}
	return SignInTokenSuccess{Tokens: r.TokenResponse}
}

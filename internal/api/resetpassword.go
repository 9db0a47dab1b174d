package api

import "strings"

// ResetPasswordStartResult is the closed result set of /resetpassword/start.
type ResetPasswordStartResult interface{ resetPasswordStartResult() }

// ResetPasswordStartSuccess carries the flow token for the challenge call.
type ResetPasswordStartSuccess struct {
	PasswordResetToken string
}

// ResetPasswordStartUserNotFound reports an unknown username.
type ResetPasswordStartUserNotFound struct {
	APIError
}

func (ResetPasswordStartSuccess) resetPasswordStartResult()      {}
func (ResetPasswordStartUserNotFound) resetPasswordStartResult() {}
func (Redirect) resetPasswordStartResult()                       {}
func (UnknownError) resetPasswordStartResult()                   {}

// ResetPasswordStartResponse is the raw /resetpassword/start record.
type ResetPasswordStartResponse struct {
	StatusCode         int    `json:"-"`
	ChallengeType      string `json:"challenge_type"`
	PasswordResetToken string `json:"password_reset_token"`
	APIError
}

// ParseResetPasswordStartResponse decodes the wire body.
func ParseResetPasswordStartResponse(r *HTTPResponse) (*ResetPasswordStartResponse, error) {
	out := &ResetPasswordStartResponse{}
	if err := decodeResponse(r, out); err != nil {
		return nil, err
	}
	out.StatusCode = r.StatusCode
	return out, nil
}

// ToResult classifies the reset start response.
func (r *ResetPasswordStartResponse) ToResult() ResetPasswordStartResult {
	if r.StatusCode >= 400 {
		switch {
		case r.isUserNotFound():
			return ResetPasswordStartUserNotFound{APIError: r.APIError}
		default:
			return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
		}
	}

	if isRedirect(r.ChallengeType) {
		return Redirect{}
	}
	if isBlank(r.PasswordResetToken) {
		return UnknownError{
			APIError:   invalidStateError("ResetPassword /start successful, but did not return a flow token"),
			StatusCode: r.StatusCode,
		}
	}
	return ResetPasswordStartSuccess{PasswordResetToken: r.PasswordResetToken}
}

// ResetPasswordChallengeResult is the closed result set of
// /resetpassword/challenge.
type ResetPasswordChallengeResult interface{ resetPasswordChallengeResult() }

// ResetPasswordChallengeCodeRequired asks the caller to collect a
// one-time code.
type ResetPasswordChallengeCodeRequired struct {
	PasswordResetToken   string
	ChallengeTargetLabel string
	ChallengeChannel     string
	CodeLength           int
}

// ResetPasswordChallengeExpiredToken reports a stale flow token.
type ResetPasswordChallengeExpiredToken struct {
	APIError
}

func (ResetPasswordChallengeCodeRequired) resetPasswordChallengeResult() {}
func (ResetPasswordChallengeExpiredToken) resetPasswordChallengeResult() {}
func (Redirect) resetPasswordChallengeResult()                           {}
func (UnknownError) resetPasswordChallengeResult()                       {}

// ResetPasswordChallengeResponse is the raw /resetpassword/challenge record.
type ResetPasswordChallengeResponse struct {
	StatusCode           int    `json:"-"`
	ChallengeType        string `json:"challenge_type"`
	PasswordResetToken   string `json:"password_reset_token"`
	ChallengeTargetLabel string `json:"challenge_target_label"`
	ChallengeChannel     string `json:"challenge_channel"`
	CodeLength           int    `json:"code_length"`
	APIError
}

// ParseResetPasswordChallengeResponse decodes the wire body.
func ParseResetPasswordChallengeResponse(r *HTTPResponse) (*ResetPasswordChallengeResponse, error) {
	out := &ResetPasswordChallengeResponse{}
	if err := decodeResponse(r, out); err != nil {
		return nil, err
	}
	out.StatusCode = r.StatusCode
	return out, nil
}

// ToResult classifies the reset challenge response.
func (r *ResetPasswordChallengeResponse) ToResult() ResetPasswordChallengeResult {
	if r.StatusCode >= 400 {
		switch {
		case r.isExpiredToken():
			return ResetPasswordChallengeExpiredToken{APIError: r.APIError}
		default:
			return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
		}
	}

	switch {
	case isRedirect(r.ChallengeType):
		return Redirect{}
	case r.ChallengeType == ChallengeTypeOOB:
		if isBlank(r.PasswordResetToken) || isBlank(r.ChallengeTargetLabel) ||
			isBlank(r.ChallengeChannel) || r.CodeLength <= 0 {
			return UnknownError{
				APIError:   invalidStateError("ResetPassword /challenge did not return a complete oob challenge"),
				StatusCode: r.StatusCode,
			}
		}
		return ResetPasswordChallengeCodeRequired{
			PasswordResetToken:   r.PasswordResetToken,
			ChallengeTargetLabel: r.ChallengeTargetLabel,
			ChallengeChannel:     r.ChallengeChannel,
			CodeLength:           r.CodeLength,
		}
	default:
		return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
	}
}

// ResetPasswordContinueResult is the closed result set of
// /resetpassword/continue.
type ResetPasswordContinueResult interface{ resetPasswordContinueResult() }

// ResetPasswordContinuePasswordRequired carries the submit token for the
// new-password call.
type ResetPasswordContinuePasswordRequired struct {
	PasswordSubmitToken string
	ExpiresIn           int64
}

// ResetPasswordContinueCodeIncorrect reports a rejected one-time code.
type ResetPasswordContinueCodeIncorrect struct {
	APIError
}

// ResetPasswordContinueExpiredToken reports a stale flow token.
type ResetPasswordContinueExpiredToken struct {
	APIError
}

func (ResetPasswordContinuePasswordRequired) resetPasswordContinueResult() {}
func (ResetPasswordContinueCodeIncorrect) resetPasswordContinueResult()    {}
func (ResetPasswordContinueExpiredToken) resetPasswordContinueResult()     {}
func (Redirect) resetPasswordContinueResult()                              {}
func (UnknownError) resetPasswordContinueResult()                          {}

// ResetPasswordContinueResponse is the raw /resetpassword/continue record.
type ResetPasswordContinueResponse struct {
	StatusCode          int    `json:"-"`
	ChallengeType       string `json:"challenge_type"`
	PasswordSubmitToken string `json:"password_submit_token"`
	ExpiresIn           int64  `json:"expires_in"`
	APIError
}

// ParseResetPasswordContinueResponse decodes the wire body.
func ParseResetPasswordContinueResponse(r *HTTPResponse) (*ResetPasswordContinueResponse, error) {
	out := &ResetPasswordContinueResponse{}
	if err := decodeResponse(r, out); err != nil {
		return nil, err
	}
	out.StatusCode = r.StatusCode
	return out, nil
}

// ToResult classifies the reset continue response.
func (r *ResetPasswordContinueResponse) ToResult() ResetPasswordContinueResult {
	if r.StatusCode >= 400 {
		switch {
		case r.isInvalidOOBValue():
			return ResetPasswordContinueCodeIncorrect{APIError: r.APIError}
		case r.isExpiredToken():
			return ResetPasswordContinueExpiredToken{APIError: r.APIError}
		default:
			return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
		}
	}

	if isRedirect(r.ChallengeType) {
		return Redirect{}
	}
	if isBlank(r.PasswordSubmitToken) {
		return UnknownError{
			APIError:   invalidStateError("ResetPassword /continue successful, but did not return a flow token"),
			StatusCode: r.StatusCode,
		}
	}
	return ResetPasswordContinuePasswordRequired{
		PasswordSubmitToken: r.PasswordSubmitToken,
		ExpiresIn:           r.ExpiresIn,
	}
}

// ResetPasswordSubmitResult is the closed result set of
// /resetpassword/submit.
type ResetPasswordSubmitResult interface{ resetPasswordSubmitResult() }

// ResetPasswordSubmitSuccess carries the token used to poll for
// completion. PollInterval is nil when the service did not advertise one.
type ResetPasswordSubmitSuccess struct {
	PasswordResetToken string
	PollInterval       *int
}

// ResetPasswordSubmitPasswordInvalid reports a password-quality rejection.
type ResetPasswordSubmitPasswordInvalid struct {
	APIError
}

// ResetPasswordSubmitExpiredToken reports a stale flow token.
type ResetPasswordSubmitExpiredToken struct {
	APIError
}

func (ResetPasswordSubmitSuccess) resetPasswordSubmitResult()         {}
func (ResetPasswordSubmitPasswordInvalid) resetPasswordSubmitResult() {}
func (ResetPasswordSubmitExpiredToken) resetPasswordSubmitResult()    {}
func (UnknownError) resetPasswordSubmitResult()                       {}

// ResetPasswordSubmitResponse is the raw /resetpassword/submit record.
type ResetPasswordSubmitResponse struct {
	StatusCode         int    `json:"-"`
	PasswordResetToken string `json:"password_reset_token"`
	PollInterval       *int   `json:"poll_interval"`
	APIError
}

// ParseResetPasswordSubmitResponse decodes the wire body.
func ParseResetPasswordSubmitResponse(r *HTTPResponse) (*ResetPasswordSubmitResponse, error) {
	out := &ResetPasswordSubmitResponse{}
	if err := decodeResponse(r, out); err != nil {
		return nil, err
	}
	out.StatusCode = r.StatusCode
	return out, nil
}

// ToResult classifies the reset submit response. The password-quality
// codes are checked before expired_token; the service emits both with 400.
func (r *ResetPasswordSubmitResponse) ToResult() ResetPasswordSubmitResult {
	if r.StatusCode >= 400 {
		switch {
		case r.isPasswordInvalid():
			return ResetPasswordSubmitPasswordInvalid{APIError: r.APIError}
		case r.isExpiredToken():
			return ResetPasswordSubmitExpiredToken{APIError: r.APIError}
		default:
			return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
		}
	}

	if isBlank(r.PasswordResetToken) {
		return UnknownError{
			APIError:   invalidStateError("ResetPassword /submit successful, but did not return a flow token"),
			StatusCode: r.StatusCode,
		}
	}
	return ResetPasswordSubmitSuccess{
		PasswordResetToken: r.PasswordResetToken,
		PollInterval:       r.PollInterval,
	}
}

// Poll completion statuses reported by /resetpassword/poll_completion.
const (
	pollStatusSucceeded  = "succeeded"
	pollStatusInProgress = "in_progress"
	pollStatusNotStarted = "not_started"
	pollStatusFailed     = "failed"
)

// ResetPasswordPollCompletionResult is the closed result set of
// /resetpassword/poll_completion.
type ResetPasswordPollCompletionResult interface{ resetPasswordPollCompletionResult() }

// ResetPasswordPollingSucceeded reports the reset has been applied.
type ResetPasswordPollingSucceeded struct {
	SignInSLT string
	ExpiresIn int64
}

// ResetPasswordPollingInProgress reports the reset is still being applied.
type ResetPasswordPollingInProgress struct{}

// ResetPasswordPollingFailed reports the service gave up on the reset.
type ResetPasswordPollingFailed struct {
	APIError
}

func (ResetPasswordPollingSucceeded) resetPasswordPollCompletionResult()  {}
func (ResetPasswordPollingInProgress) resetPasswordPollCompletionResult() {}
func (ResetPasswordPollingFailed) resetPasswordPollCompletionResult()     {}
func (UnknownError) resetPasswordPollCompletionResult()                   {}

// ResetPasswordPollCompletionResponse is the raw
// /resetpassword/poll_completion record.
type ResetPasswordPollCompletionResponse struct {
	StatusCode int    `json:"-"`
	Status     string `json:"status"`
	SignInSLT  string `json:"signin_slt"`
	ExpiresIn  int64  `json:"expires_in"`
	APIError
}

// ParseResetPasswordPollCompletionResponse decodes the wire body.
func ParseResetPasswordPollCompletionResponse(r *HTTPResponse) (*ResetPasswordPollCompletionResponse, error) {
	out := &ResetPasswordPollCompletionResponse{}
	if err := decodeResponse(r, out); err != nil {
		return nil, err
	}
	out.StatusCode = r.StatusCode
	return out, nil
}

// ToResult classifies the poll completion response.
func (r *ResetPasswordPollCompletionResponse) ToResult() ResetPasswordPollCompletionResult {
	if r.StatusCode >= 400 {
		return UnknownError{APIError: r.APIError, StatusCode: r.StatusCode}
	}

	switch strings.ToLower(r.Status) {
	case pollStatusSucceeded:
		return ResetPasswordPollingSucceeded{SignInSLT: r.SignInSLT, ExpiresIn: r.ExpiresIn}
	case pollStatusInProgress, pollStatusNotStarted:
		return ResetPasswordPollingInProgress{}
	case pollStatusFailed:
		return ResetPasswordPollingFailed{APIError: r.APIError}
	default:
		return UnknownError{
			APIError:   invalidStateError("ResetPassword /poll_completion returned an unrecognized status"),
			StatusCode: r.StatusCode,
		}
	}
}

package api

import "strings"

// Named error codes returned in the "error" field of the identity service.
const (
	ErrorCodeUserNotFound              = "user_not_found"
	ErrorCodeInvalidGrant              = "invalid_grant"
	ErrorCodeInvalidRequest            = "invalid_request"
	ErrorCodeCredentialRequired        = "credential_required"
	ErrorCodeAttributesRequired        = "attributes_required"
	ErrorCodeUnsupportedChallengeType  = "unsupported_challenge_type"
	ErrorCodeExpiredToken              = "expired_token"
	ErrorCodeVerificationRequired      = "verification_required"
	ErrorCodePasswordTooWeak           = "password_too_weak"
	ErrorCodePasswordTooShort          = "password_too_short"
	ErrorCodePasswordTooLong           = "password_too_long"
	ErrorCodePasswordBanned            = "password_banned"
	ErrorCodePasswordRecentlyUsed      = "password_recently_used"
	ErrorCodeAttributeValidationFailed = "attribute_validation_failed"
	ErrorCodeUsernameAlreadyExists     = "username_already_exists"
	ErrorCodeInvalidOOBValue           = "invalid_oob_value"
	ErrorCodeAuthNotSupported          = "auth_not_supported"

	// ErrorCodeInvalidState is reserved for protocol-invariant violations:
	// the service reported success but omitted a field the next step needs.
	ErrorCodeInvalidState = "invalid_state"

	// ErrorCodePollTimeout is reserved for the reset-password completion
	// poll exceeding its wall-clock budget.
	ErrorCodePollTimeout = "password_reset_timeout"
)

// Numeric codes carried in error_codes[].
const (
	numericCodeInvalidParameter   = 90100
	numericCodeInvalidCredentials = 50126
	numericCodeIncorrectOOB       = 50181
)

// Challenge types advertised in the challenge_type field.
const (
	ChallengeTypeRedirect = "redirect"
	ChallengeTypeOOB      = "oob"
	ChallengeTypePassword = "password"
)

const invalidEmailDescription = "username parameter is empty or not valid"

func (e APIError) isUserNotFound() bool {
	return strings.EqualFold(e.Error, ErrorCodeUserNotFound)
}

func (e APIError) isInvalidGrant() bool {
	return strings.EqualFold(e.Error, ErrorCodeInvalidGrant)
}

func (e APIError) isCredentialRequired() bool {
	return strings.EqualFold(e.Error, ErrorCodeCredentialRequired)
}

func (e APIError) isAttributesRequired() bool {
	return strings.EqualFold(e.Error, ErrorCodeAttributesRequired)
}

func (e APIError) isUnsupportedChallengeType() bool {
	return strings.EqualFold(e.Error, ErrorCodeUnsupportedChallengeType)
}

func (e APIError) isExpiredToken() bool {
	return strings.EqualFold(e.Error, ErrorCodeExpiredToken)
}

func (e APIError) isVerificationRequired() bool {
	return strings.EqualFold(e.Error, ErrorCodeVerificationRequired)
}

func (e APIError) isUsernameAlreadyExists() bool {
	return strings.EqualFold(e.Error, ErrorCodeUsernameAlreadyExists)
}

func (e APIError) isAuthNotSupported() bool {
	return strings.EqualFold(e.Error, ErrorCodeAuthNotSupported)
}

func (e APIError) isAttributeValidationFailed() bool {
	return strings.EqualFold(e.Error, ErrorCodeAttributeValidationFailed)
}

func (e APIError) isInvalidOOBValue() bool {
	if strings.EqualFold(e.Error, ErrorCodeInvalidOOBValue) {
		return true
	}
	return e.isInvalidGrant() && e.hasNumericCode(numericCodeIncorrectOOB)
}

func (e APIError) isPasswordIncorrect() bool {
	return e.isInvalidGrant() && e.hasNumericCode(numericCodeInvalidCredentials)
}

// isPasswordInvalid covers the five password-quality rejections the service
// can raise on any endpoint that accepts a new password.
func (e APIError) isPasswordInvalid() bool {
	switch strings.ToLower(e.Error) {
	case ErrorCodePasswordTooWeak,
		ErrorCodePasswordTooShort,
		ErrorCodePasswordTooLong,
		ErrorCodePasswordBanned,
		ErrorCodePasswordRecentlyUsed:
		return true
	}
	return false
}

// isInvalidEmail matches the invalid_parameter rejection of a malformed
// username. The numeric code alone is ambiguous; the description narrows it.
func (e APIError) isInvalidEmail() bool {
	if len(e.ErrorCodes) == 0 || e.ErrorCodes[0] != numericCodeInvalidParameter {
		return false
	}
	return strings.Contains(strings.ToLower(e.ErrorDescription), invalidEmailDescription)
}

func (e APIError) hasNumericCode(code int) bool {
	for _, c := range e.ErrorCodes {
		if c == code {
			return true
		}
	}
	return false
}

func isRedirect(challengeType string) bool {
	return strings.EqualFold(challengeType, ChallengeTypeRedirect)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

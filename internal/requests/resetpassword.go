package requests

import "net/url"

// NewResetPasswordStartRequest builds the /resetpassword/start descriptor.
func NewResetPasswordStartRequest(cfg Config, username string) (*Request, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("username", username); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("client_id", cfg.ClientID)
	form.Set("challenge_type", cfg.challengeType())
	form.Set("username", username)
	return newRequest(cfg, PathResetPasswordStart, form), nil
}

// NewResetPasswordChallengeRequest builds the /resetpassword/challenge
// descriptor.
func NewResetPasswordChallengeRequest(cfg Config, passwordResetToken string) (*Request, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("password_reset_token", passwordResetToken); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("client_id", cfg.ClientID)
	form.Set("challenge_type", cfg.challengeType())
	form.Set("password_reset_token", passwordResetToken)
	return newRequest(cfg, PathResetPasswordChallenge, form), nil
}

// NewResetPasswordContinueRequest builds the /resetpassword/continue
// descriptor that submits the one-time code.
func NewResetPasswordContinueRequest(cfg Config, passwordResetToken, oob string) (*Request, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("password_reset_token", passwordResetToken); err != nil {
		return nil, err
	}
	if err := requireNonBlank("oob", oob); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("client_id", cfg.ClientID)
	form.Set("grant_type", GrantTypeOOB)
	form.Set("password_reset_token", passwordResetToken)
	form.Set("oob", oob)
	return newRequest(cfg, PathResetPasswordContinue, form), nil
}

// NewResetPasswordSubmitRequest builds the /resetpassword/submit
// descriptor that carries the new password.
func NewResetPasswordSubmitRequest(cfg Config, passwordSubmitToken, newPassword string) (*Request, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("password_submit_token", passwordSubmitToken); err != nil {
		return nil, err
	}
	if err := requireNonBlank("new_password", newPassword); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("client_id", cfg.ClientID)
	form.Set("password_submit_token", passwordSubmitToken)
	form.Set("new_password", newPassword)
	return newRequest(cfg, PathResetPasswordSubmit, form), nil
}

// NewResetPasswordPollCompletionRequest builds the
// /resetpassword/poll_completion descriptor.
func NewResetPasswordPollCompletionRequest(cfg Config, passwordResetToken string) (*Request, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("password_reset_token", passwordResetToken); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("client_id", cfg.ClientID)
	form.Set("password_reset_token", passwordResetToken)
	return newRequest(cfg, PathResetPasswordPollCompletion, form), nil
}

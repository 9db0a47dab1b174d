package requests

import (
	"net/url"
	"strings"
)

// NewSignInInitiateRequest builds the /oauth2/initiate descriptor.
func NewSignInInitiateRequest(cfg Config, username string) (*Request, error) {
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
	return newRequest(cfg, PathSignInInitiate, form), nil
}

// NewSignInChallengeRequest builds the /oauth2/challenge descriptor. The
// credential token is forwarded byte-for-byte.
func NewSignInChallengeRequest(cfg Config, credentialToken string) (*Request, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("credential_token", credentialToken); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("client_id", cfg.ClientID)
	form.Set("challenge_type", cfg.challengeType())
	form.Set("credential_token", credentialToken)
	return newRequest(cfg, PathSignInChallenge, form), nil
}

func newTokenRequest(cfg Config, grantType string, scopes []string, set func(url.Values)) *Request {
	form := url.Values{}
	form.Set("client_id", cfg.ClientID)
	form.Set("challenge_type", cfg.challengeType())
	form.Set("grant_type", grantType)
	form.Set("client_info", "true")
	if len(scopes) > 0 {
		form.Set("scope", strings.Join(scopes, " "))
	}
	set(form)
	return newRequest(cfg, PathSignInToken, form)
}

// NewOOBTokenRequest builds a /oauth2/token descriptor for the oob grant.
func NewOOBTokenRequest(cfg Config, credentialToken, oob string, scopes []string) (*Request, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("credential_token", credentialToken); err != nil {
		return nil, err
	}
	if err := requireNonBlank("oob", oob); err != nil {
		return nil, err
	}

	return newTokenRequest(cfg, GrantTypeOOB, scopes, func(form url.Values) {
		form.Set("credential_token", credentialToken)
		form.Set("oob", oob)
	}), nil
}

// NewPasswordTokenRequest builds a /oauth2/token descriptor for the
// password grant.
func NewPasswordTokenRequest(cfg Config, credentialToken, username, password string, scopes []string) (*Request, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("credential_token", credentialToken); err != nil {
		return nil, err
	}
	if err := requireNonBlank("username", username); err != nil {
		return nil, err
	}
	if err := requireNonBlank("password", password); err != nil {
		return nil, err
	}

	return newTokenRequest(cfg, GrantTypePassword, scopes, func(form url.Values) {
		form.Set("credential_token", credentialToken)
		form.Set("username", username)
		form.Set("password", password)
	}), nil
}

// NewSLTTokenRequest builds a /oauth2/token descriptor for the
// short-lived-token grant issued by a completed sign-up.
func NewSLTTokenRequest(cfg Config, signInSLT, username string, scopes []string) (*Request, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("signin_slt", signInSLT); err != nil {
		return nil, err
	}
	if err := requireNonBlank("username", username); err != nil {
		return nil, err
	}

	return newTokenRequest(cfg, GrantTypeSLT, scopes, func(form url.Values) {
		form.Set("signin_slt", signInSLT)
		form.Set("username", username)
	}), nil
}

// NewRefreshTokenRequest builds a /oauth2/token descriptor for the
// refresh grant used by silent acquisition.
func NewRefreshTokenRequest(cfg Config, refreshToken string, scopes []string) (*Request, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("refresh_token", refreshToken); err != nil {
		return nil, err
	}

	return newTokenRequest(cfg, GrantTypeRefreshToken, scopes, func(form url.Values) {
		form.Set("refresh_token", refreshToken)
	}), nil
}

package requests

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Continue grant types accepted by /signup/continue.
const (
	SignUpGrantOOB        = "oob"
	SignUpGrantPassword   = "password"
	SignUpGrantAttributes = "attributes"
)

func encodeAttributes(attributes map[string]string) (string, error) {
	if len(attributes) == 0 {
		return "", nil
	}
	raw, err := json.Marshal(attributes)
	if err != nil {
		return "", fmt.Errorf("encode attributes: %w", err)
	}
	return string(raw), nil
}

// NewSignUpStartRequest builds the /signup/start descriptor for a
// passwordless start.
func NewSignUpStartRequest(cfg Config, username string, attributes map[string]string) (*Request, error) {
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
	if encoded, err := encodeAttributes(attributes); err != nil {
		return nil, err
	} else if encoded != "" {
		form.Set("attributes", encoded)
	}
	return newRequest(cfg, PathSignUpStart, form), nil
}

// NewSignUpStartUsingPasswordRequest builds the /signup/start descriptor
// for a password start. A blank password is a contract violation here,
// before any network call.
func NewSignUpStartUsingPasswordRequest(cfg Config, username, password string, attributes map[string]string) (*Request, error) {
	if err := requireNonBlank("password", password); err != nil {
		return nil, err
	}
	req, err := NewSignUpStartRequest(cfg, username, attributes)
	if err != nil {
		return nil, err
	}
	req.Form.Set("password", password)
	return req, nil
}

// NewSignUpChallengeRequest builds the /signup/challenge descriptor.
func NewSignUpChallengeRequest(cfg Config, signupToken string) (*Request, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("signup_token", signupToken); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("client_id", cfg.ClientID)
	form.Set("challenge_type", cfg.challengeType())
	form.Set("signup_token", signupToken)
	return newRequest(cfg, PathSignUpChallenge, form), nil
}

func newSignUpContinueRequest(cfg Config, signupToken, grantType string) (*Request, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("signup_token", signupToken); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("client_id", cfg.ClientID)
	form.Set("grant_type", grantType)
	form.Set("signup_token", signupToken)
	return newRequest(cfg, PathSignUpContinue, form), nil
}

// NewSignUpSubmitCodeRequest builds a /signup/continue descriptor for the
// oob grant.
func NewSignUpSubmitCodeRequest(cfg Config, signupToken, oob string) (*Request, error) {
	if err := requireNonBlank("oob", oob); err != nil {
		return nil, err
	}
	req, err := newSignUpContinueRequest(cfg, signupToken, SignUpGrantOOB)
	if err != nil {
		return nil, err
	}
	req.Form.Set("oob", oob)
	return req, nil
}

// NewSignUpSubmitPasswordRequest builds a /signup/continue descriptor for
// the password grant.
func NewSignUpSubmitPasswordRequest(cfg Config, signupToken, password string) (*Request, error) {
	if err := requireNonBlank("password", password); err != nil {
		return nil, err
	}
	req, err := newSignUpContinueRequest(cfg, signupToken, SignUpGrantPassword)
	if err != nil {
		return nil, err
	}
	req.Form.Set("password", password)
	return req, nil
}

// NewSignUpSubmitAttributesRequest builds a /signup/continue descriptor
// for the attributes grant.
func NewSignUpSubmitAttributesRequest(cfg Config, signupToken string, attributes map[string]string) (*Request, error) {
	if len(attributes) == 0 {
		return nil, missing("attributes")
	}
	req, err := newSignUpContinueRequest(cfg, signupToken, SignUpGrantAttributes)
	if err != nil {
		return nil, err
	}
	encoded, err := encodeAttributes(attributes)
	if err != nil {
		return nil, err
	}
	req.Form.Set("attributes", encoded)
	return req, nil
}

package requests

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// ErrMissingArgument is returned when a builder is handed a blank value
// for a field its endpoint requires. It always wraps the field name.
var ErrMissingArgument = errors.New("missing required argument")

// Endpoint paths relative to the authority base URL.
const (
	PathSignInInitiate              = "/oauth2/v2.0/initiate"
	PathSignInChallenge             = "/oauth2/v2.0/challenge"
	PathSignInToken                 = "/oauth2/v2.0/token"
	PathSignUpStart                 = "/signup/v1.0/start"
	PathSignUpChallenge             = "/signup/v1.0/challenge"
	PathSignUpContinue              = "/signup/v1.0/continue"
	PathResetPasswordStart          = "/resetpassword/v1.0/start"
	PathResetPasswordChallenge      = "/resetpassword/v1.0/challenge"
	PathResetPasswordContinue       = "/resetpassword/v1.0/continue"
	PathResetPasswordSubmit         = "/resetpassword/v1.0/submit"
	PathResetPasswordPollCompletion = "/resetpassword/v1.0/poll_completion"
)

// Grant types accepted by the token endpoint.
const (
	GrantTypePassword     = "password"
	GrantTypeOOB          = "oob"
	GrantTypeSLT          = "slt"
	GrantTypeRefreshToken = "refresh_token"
)

// HeaderCorrelationID carries the per-request correlation id.
const HeaderCorrelationID = "client-request-id"

// Config is the per-client slice of engine configuration the builders
// need. ChallengeTypes is sent space-joined as challenge_type.
type Config struct {
	ClientID       string
	AuthorityURL   string
	ChallengeTypes []string
}

func (c Config) challengeType() string {
	return strings.Join(c.ChallengeTypes, " ")
}

func (c Config) endpoint(path string) string {
	return strings.TrimRight(c.AuthorityURL, "/") + path
}

func (c Config) validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return missing("client_id")
	}
	if strings.TrimSpace(c.AuthorityURL) == "" {
		return missing("authority_url")
	}
	if len(c.ChallengeTypes) == 0 {
		return missing("challenge_type")
	}
	return nil
}

// Request is an immutable descriptor: URL, headers, and the encoded form
// body. Header iteration order is fixed by sorting at the transport.
type Request struct {
	URL           string
	Headers       map[string]string
	Form          url.Values
	CorrelationID string
}

// EncodedBody renders the form body in canonical (sorted-key) encoding.
func (r *Request) EncodedBody() string {
	return r.Form.Encode()
}

func newRequest(cfg Config, path string, form url.Values) *Request {
	correlationID := uuid.NewString()
	return &Request{
		URL: cfg.endpoint(path),
		Headers: map[string]string{
			"Content-Type":      "application/x-www-form-urlencoded",
			HeaderCorrelationID: correlationID,
		},
		Form:          form,
		CorrelationID: correlationID,
	}
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingArgument, field)
}

func requireNonBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return missing(field)
	}
	return nil
}

package interactors

import (
	"context"

	"github.com/MrEthical07/goNativeAuth/internal/api"
	"github.com/MrEthical07/goNativeAuth/internal/requests"
)

// SignUpInteractor drives the /signup endpoint family.
type SignUpInteractor struct {
	cfg       requests.Config
	transport api.Transport
}

// NewSignUpInteractor builds a sign-up interactor for one client config.
func NewSignUpInteractor(cfg requests.Config, transport api.Transport) *SignUpInteractor {
	return &SignUpInteractor{cfg: cfg, transport: transport}
}

func (i *SignUpInteractor) post(ctx context.Context, req *requests.Request) (*api.HTTPResponse, error) {
	return i.transport.Post(ctx, req.URL, req.Headers, req.EncodedBody())
}

// PerformSignUpStart calls /signup/start without a password.
func (i *SignUpInteractor) PerformSignUpStart(ctx context.Context, username string, attributes map[string]string) (api.SignUpStartResult, error) {
	req, err := requests.NewSignUpStartRequest(i.cfg, username, attributes)
	if err != nil {
		return nil, err
	}
	return i.performStart(ctx, req)
}

// PerformSignUpStartUsingPassword calls /signup/start with a password.
func (i *SignUpInteractor) PerformSignUpStartUsingPassword(ctx context.Context, username, password string, attributes map[string]string) (api.SignUpStartResult, error) {
	req, err := requests.NewSignUpStartUsingPasswordRequest(i.cfg, username, password, attributes)
	if err != nil {
		return nil, err
	}
	return i.performStart(ctx, req)
}

func (i *SignUpInteractor) performStart(ctx context.Context, req *requests.Request) (api.SignUpStartResult, error) {
	resp, err := i.post(ctx, req)
	if err != nil {
		return nil, err
	}
	record, err := api.ParseSignUpStartResponse(resp)
	if err != nil {
		return nil, err
	}
	return record.ToResult(), nil
}

// PerformSignUpChallenge calls /signup/challenge.
func (i *SignUpInteractor) PerformSignUpChallenge(ctx context.Context, signupToken string) (api.SignUpChallengeResult, error) {
	req, err := requests.NewSignUpChallengeRequest(i.cfg, signupToken)
	if err != nil {
		return nil, err
	}
	resp, err := i.post(ctx, req)
	if err != nil {
		return nil, err
	}
	record, err := api.ParseSignUpChallengeResponse(resp)
	if err != nil {
		return nil, err
	}
	return record.ToResult(), nil
}

func (i *SignUpInteractor) performContinue(ctx context.Context, req *requests.Request) (api.SignUpContinueResult, error) {
	resp, err := i.post(ctx, req)
	if err != nil {
		return nil, err
	}
	record, err := api.ParseSignUpContinueResponse(resp)
	if err != nil {
		return nil, err
	}
	return record.ToResult(), nil
}

// PerformSignUpSubmitCode calls /signup/continue with the oob grant.
func (i *SignUpInteractor) PerformSignUpSubmitCode(ctx context.Context, signupToken, oob string) (api.SignUpContinueResult, error) {
	req, err := requests.NewSignUpSubmitCodeRequest(i.cfg, signupToken, oob)
	if err != nil {
		return nil, err
	}
	return i.performContinue(ctx, req)
}

// PerformSignUpSubmitPassword calls /signup/continue with the password
// grant.
func (i *SignUpInteractor) PerformSignUpSubmitPassword(ctx context.Context, signupToken, password string) (api.SignUpContinueResult, error) {
	req, err := requests.NewSignUpSubmitPasswordRequest(i.cfg, signupToken, password)
	if err != nil {
		return nil, err
	}
	return i.performContinue(ctx, req)
}

// PerformSignUpSubmitUserAttributes calls /signup/continue with the
// attributes grant.
func (i *SignUpInteractor) PerformSignUpSubmitUserAttributes(ctx context.Context, signupToken string, attributes map[string]string) (api.SignUpContinueResult, error) {
	req, err := requests.NewSignUpSubmitAttributesRequest(i.cfg, signupToken, attributes)
	if err != nil {
		return nil, err
	}
	return i.performContinue(ctx, req)
}

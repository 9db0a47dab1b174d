package interactors

import (
	"context"

	"github.com/MrEthical07/goNativeAuth/internal/api"
	"github.com/MrEthical07/goNativeAuth/internal/requests"
)

// SignInInteractor drives the /oauth2 endpoint family.
type SignInInteractor struct {
	cfg       requests.Config
	transport api.Transport
}

// NewSignInInteractor builds a sign-in interactor for one client config.
func NewSignInInteractor(cfg requests.Config, transport api.Transport) *SignInInteractor {
	return &SignInInteractor{cfg: cfg, transport: transport}
}

func (i *SignInInteractor) post(ctx context.Context, req *requests.Request) (*api.HTTPResponse, error) {
	return i.transport.Post(ctx, req.URL, req.Headers, req.EncodedBody())
}

// PerformSignInInitiate calls /oauth2/initiate.
func (i *SignInInteractor) PerformSignInInitiate(ctx context.Context, username string) (api.SignInInitiateResult, error) {
	req, err := requests.NewSignInInitiateRequest(i.cfg, username)
	if err != nil {
		return nil, err
	}
	resp, err := i.post(ctx, req)
	if err != nil {
		return nil, err
	}
	record, err := api.ParseSignInInitiateResponse(resp)
	if err != nil {
		return nil, err
	}
	return record.ToResult(), nil
}

// PerformSignInChallenge calls /oauth2/challenge.
func (i *SignInInteractor) PerformSignInChallenge(ctx context.Context, credentialToken string) (api.SignInChallengeResult, error) {
	req, err := requests.NewSignInChallengeRequest(i.cfg, credentialToken)
	if err != nil {
		return nil, err
	}
	resp, err := i.post(ctx, req)
	if err != nil {
		return nil, err
	}
	record, err := api.ParseSignInChallengeResponse(resp)
	if err != nil {
		return nil, err
	}
	return record.ToResult(), nil
}

func (i *SignInInteractor) performToken(ctx context.Context, req *requests.Request) (api.SignInTokenResult, error) {
	resp, err := i.post(ctx, req)
	if err != nil {
		return nil, err
	}
	record, err := api.ParseSignInTokenResponse(resp)
	if err != nil {
		return nil, err
	}
	return record.ToResult(), nil
}

// PerformOOBTokenRequest calls /oauth2/token with the oob grant.
func (i *SignInInteractor) PerformOOBTokenRequest(ctx context.Context, credentialToken, oob string, scopes []string) (api.SignInTokenResult, error) {
	req, err := requests.NewOOBTokenRequest(i.cfg, credentialToken, oob, scopes)
	if err != nil {
		return nil, err
	}
	return i.performToken(ctx, req)
}

// PerformPasswordTokenRequest calls /oauth2/token with the password grant.
func (i *SignInInteractor) PerformPasswordTokenRequest(ctx context.Context, credentialToken, username, password string, scopes []string) (api.SignInTokenResult, error) {
	req, err := requests.NewPasswordTokenRequest(i.cfg, credentialToken, username, password, scopes)
	if err != nil {
		return nil, err
	}
	return i.performToken(ctx, req)
}

// PerformSLTTokenRequest calls /oauth2/token with the short-lived-token
// grant.
func (i *SignInInteractor) PerformSLTTokenRequest(ctx context.Context, signInSLT, username string, scopes []string) (api.SignInTokenResult, error) {
	req, err := requests.NewSLTTokenRequest(i.cfg, signInSLT, username, scopes)
	if err != nil {
		return nil, err
	}
	return i.performToken(ctx, req)
}

// PerformRefreshTokenRequest calls /oauth2/token with the refresh grant.
func (i *SignInInteractor) PerformRefreshTokenRequest(ctx context.Context, refreshToken string, scopes []string) (api.SignInTokenResult, error) {
	req, err := requests.NewRefreshTokenRequest(i.cfg, refreshToken, scopes)
	if err != nil {
		return nil, err
	}
	return i.performToken(ctx, req)
}

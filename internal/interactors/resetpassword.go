package interactors

import (
	"context"

	"github.com/MrEthical07/goNativeAuth/internal/api"
	"github.com/MrEthical07/goNativeAuth/internal/requests"
)

// ResetPasswordInteractor drives the /resetpassword endpoint family.
type ResetPasswordInteractor struct {
	cfg       requests.Config
	transport api.Transport
}

// NewResetPasswordInteractor builds a reset-password interactor for one
// client config.
func NewResetPasswordInteractor(cfg requests.Config, transport api.Transport) *ResetPasswordInteractor {
	return &ResetPasswordInteractor{cfg: cfg, transport: transport}
}

func (i *ResetPasswordInteractor) post(ctx context.Context, req *requests.Request) (*api.HTTPResponse, error) {
	return i.transport.Post(ctx, req.URL, req.Headers, req.EncodedBody())
}

// PerformResetPasswordStart calls /resetpassword/start.
func (i *ResetPasswordInteractor) PerformResetPasswordStart(ctx context.Context, username string) (api.ResetPasswordStartResult, error) {
	req, err := requests.NewResetPasswordStartRequest(i.cfg, username)
	if err != nil {
		return nil, err
	}
	resp, err := i.post(ctx, req)
	if err != nil {
		return nil, err
	}
	record, err := api.ParseResetPasswordStartResponse(resp)
	if err != nil {
		return nil, err
	}
	return record.ToResult(), nil
}

// PerformResetPasswordChallenge calls /resetpassword/challenge.
func (i *ResetPasswordInteractor) PerformResetPasswordChallenge(ctx context.Context, passwordResetToken string) (api.ResetPasswordChallengeResult, error) {
	req, err := requests.NewResetPasswordChallengeRequest(i.cfg, passwordResetToken)
	if err != nil {
		return nil, err
	}
	resp, err := i.post(ctx, req)
	if err != nil {
		return nil, err
	}
	record, err := api.ParseResetPasswordChallengeResponse(resp)
	if err != nil {
		return nil, err
	}
	return record.ToResult(), nil
}

// PerformResetPasswordContinue calls /resetpassword/continue.
func (i *ResetPasswordInteractor) PerformResetPasswordContinue(ctx context.Context, passwordResetToken, oob string) (api.ResetPasswordContinueResult, error) {
	req, err := requests.NewResetPasswordContinueRequest(i.cfg, passwordResetToken, oob)
	if err != nil {
		return nil, err
	}
	resp, err := i.post(ctx, req)
	if err != nil {
		return nil, err
	}
	record, err := api.ParseResetPasswordContinueResponse(resp)
	if err != nil {
		return nil, err
	}
	return record.ToResult(), nil
}

// PerformResetPasswordSubmit calls /resetpassword/submit.
func (i *ResetPasswordInteractor) PerformResetPasswordSubmit(ctx context.Context, passwordSubmitToken, newPassword string) (api.ResetPasswordSubmitResult, error) {
	req, err := requests.NewResetPasswordSubmitRequest(i.cfg, passwordSubmitToken, newPassword)
	if err != nil {
		return nil, err
	}
	resp, err := i.post(ctx, req)
	if err != nil {
		return nil, err
	}
	record, err := api.ParseResetPasswordSubmitResponse(resp)
	if err != nil {
		return nil, err
	}
	return record.ToResult(), nil
}

// PerformResetPasswordPollCompletion calls /resetpassword/poll_completion.
func (i *ResetPasswordInteractor) PerformResetPasswordPollCompletion(ctx context.Context, passwordResetToken string) (api.ResetPasswordPollCompletionResult, error) {
	req, err := requests.NewResetPasswordPollCompletionRequest(i.cfg, passwordResetToken)
	if err != nil {
		return nil, err
	}
	resp, err := i.post(ctx, req)
	if err != nil {
		return nil, err
	}
	record, err := api.ParseResetPasswordPollCompletionResponse(resp)
	if err != nil {
		return nil, err
	}
	return record.ToResult(), nil
}

package api

import (
	"testing"
)

func TestSignInInitiateToResult(t *testing.T) {
	tests := []struct {
		name string
		resp SignInInitiateResponse
		want any
	}{
		{
			name: "success returns flow token",
			resp: SignInInitiateResponse{StatusCode: 200, CredentialToken: "ct-1"},
			want: SignInInitiateSuccess{CredentialToken: "ct-1"},
		},
		{
			name: "redirect challenge type wins over token",
			resp: SignInInitiateResponse{StatusCode: 200, ChallengeType: "redirect", CredentialToken: "ct-1"},
			want: Redirect{},
		},
		{
			name: "success without token is invalid state",
			resp: SignInInitiateResponse{StatusCode: 200},
			want: ErrorCodeInvalidState,
		},
		{
			name: "user not found",
			resp: SignInInitiateResponse{StatusCode: 400, APIError: APIError{Error: "user_not_found"}},
			want: SignInInitiateUserNotFound{APIError: APIError{Error: "user_not_found"}},
		},
		{
			name: "unrecognized error is unknown",
			resp: SignInInitiateResponse{StatusCode: 500, APIError: APIError{Error: "server_error"}},
			want: UnknownError{APIError: APIError{Error: "server_error"}, StatusCode: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.resp.ToResult()
			assertResult(t, got, tt.want)
		})
	}
}

func TestSignInChallengeToResult(t *testing.T) {
	tests := []struct {
		name string
		resp SignInChallengeResponse
		want any
	}{
		{
			name: "oob challenge carries full shape",
			resp: SignInChallengeResponse{
				StatusCode:           200,
				ChallengeType:        "oob",
				CredentialToken:      "ct-2",
				ChallengeTargetLabel: "u***@example.com",
				ChallengeChannel:     "email",
				CodeLength:           8,
			},
			want: SignInChallengeOOBRequired{
				CredentialToken:      "ct-2",
				ChallengeTargetLabel: "u***@example.com",
				ChallengeChannel:     "email",
				CodeLength:           8,
			},
		},
		{
			name: "oob challenge missing code length is invalid state",
			resp: SignInChallengeResponse{
				StatusCode:           200,
				ChallengeType:        "oob",
				CredentialToken:      "ct-2",
				ChallengeTargetLabel: "u***@example.com",
				ChallengeChannel:     "email",
			},
			want: ErrorCodeInvalidState,
		},
		{
			name: "password challenge",
			resp: SignInChallengeResponse{StatusCode: 200, ChallengeType: "password", CredentialToken: "ct-3"},
			want: SignInChallengePasswordRequired{CredentialToken: "ct-3"},
		},
		{
			name: "password challenge without token is invalid state",
			resp: SignInChallengeResponse{StatusCode: 200, ChallengeType: "password"},
			want: ErrorCodeInvalidState,
		},
		{
			name: "redirect",
			resp: SignInChallengeResponse{StatusCode: 200, ChallengeType: "Redirect"},
			want: Redirect{},
		},
		{
			name: "unrecognized challenge type is unknown",
			resp: SignInChallengeResponse{StatusCode: 200, ChallengeType: "webauthn"},
			want: UnknownError{StatusCode: 200},
		},
		{
			name: "error status is unknown",
			resp: SignInChallengeResponse{StatusCode: 400, APIError: APIError{Error: "invalid_request"}},
			want: UnknownError{APIError: APIError{Error: "invalid_request"}, StatusCode: 400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.resp.ToResult()
			assertResult(t, got, tt.want)
		})
	}
}

func TestSignInTokenToResult(t *testing.T) {
	fullTokens := TokenResponse{
		AccessToken:  "at",
		RefreshToken: "rt",
		IDToken:      "idt",
		TokenType:    "Bearer",
		ExpiresIn:    3600,
		Scope:        "openid offline_access",
	}

	tests := []struct {
		name string
		resp SignInTokenResponse
		want any
	}{
		{
			name: "success with complete token set",
			resp: SignInTokenResponse{StatusCode: 200, TokenResponse: fullTokens},
			want: SignInTokenSuccess{Tokens: fullTokens},
		},
		{
			name: "success missing refresh token is invalid state",
			resp: SignInTokenResponse{
				StatusCode:    200,
				TokenResponse: TokenResponse{AccessToken: "at", IDToken: "idt"},
			},
			want: ErrorCodeInvalidState,
		},
		{
			name: "credential required carries new flow token",
			resp: SignInTokenResponse{
				StatusCode:      400,
				CredentialToken: "ct-4",
				APIError:        APIError{Error: "credential_required"},
			},
			want: SignInTokenCredentialRequired{
				CredentialToken: "ct-4",
				APIError:        APIError{Error: "credential_required"},
			},
		},
		{
			name: "credential required without flow token is invalid state",
			resp: SignInTokenResponse{StatusCode: 400, APIError: APIError{Error: "credential_required"}},
			want: ErrorCodeInvalidState,
		},
		{
			name: "user not found checked before invalid grant",
			resp: SignInTokenResponse{
				StatusCode: 400,
				APIError:   APIError{Error: "user_not_found", ErrorCodes: []int{50126}},
			},
			want: SignInTokenUserNotFound{APIError: APIError{Error: "user_not_found", ErrorCodes: []int{50126}}},
		},
		{
			name: "invalid grant with credentials code is password incorrect",
			resp: SignInTokenResponse{
				StatusCode: 400,
				APIError:   APIError{Error: "invalid_grant", ErrorCodes: []int{50126}},
			},
			want: SignInTokenPasswordIncorrect{APIError: APIError{Error: "invalid_grant", ErrorCodes: []int{50126}}},
		},
		{
			name: "invalid grant with oob code is code incorrect",
			resp: SignInTokenResponse{
				StatusCode: 400,
				APIError:   APIError{Error: "invalid_grant", ErrorCodes: []int{50181}},
			},
			want: SignInTokenCodeIncorrect{APIError: APIError{Error: "invalid_grant", ErrorCodes: []int{50181}}},
		},
		{
			name: "explicit invalid oob value is code incorrect",
			resp: SignInTokenResponse{StatusCode: 400, APIError: APIError{Error: "invalid_oob_value"}},
			want: SignInTokenCodeIncorrect{APIError: APIError{Error: "invalid_oob_value"}},
		},
		{
			name: "bare invalid grant is unknown",
			resp: SignInTokenResponse{StatusCode: 400, APIError: APIError{Error: "invalid_grant"}},
			want: UnknownError{APIError: APIError{Error: "invalid_grant"}, StatusCode: 400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.resp.ToResult()
			assertResult(t, got, tt.want)
		})
	}
}

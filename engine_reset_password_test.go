package goNativeAuth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MrEthical07/goNativeAuth/internal/requests"
)

func TestResetPasswordHappyPath(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathResetPasswordStart, http.StatusOK, map[string]any{
		"password_reset_token": "prt-1",
	})
	stub.on(requests.PathResetPasswordChallenge, http.StatusOK, map[string]any{
		"challenge_type":         "oob",
		"password_reset_token":   "prt-2",
		"challenge_target_label": "u***@example.com",
		"challenge_channel":      "email",
		"code_length":            8,
	})
	stub.on(requests.PathResetPasswordContinue, http.StatusOK, map[string]any{
		"password_submit_token": "pst-1",
		"expires_in":            600,
	})
	stub.on(requests.PathResetPasswordSubmit, http.StatusOK, map[string]any{
		"password_reset_token": "prt-3",
	})
	stub.on(requests.PathResetPasswordPollCompletion, http.StatusOK, map[string]any{
		"status":     "succeeded",
		"signin_slt": "slt-1",
		"expires_in": 300,
	})

	engine := newTestEngine(t, stub)

	started, err := engine.ResetPasswordStart(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("ResetPasswordStart failed: %v", err)
	}
	codeRequired, ok := started.(ResetPasswordCodeRequired)
	if !ok {
		t.Fatalf("expected ResetPasswordCodeRequired, got %T", started)
	}
	if codeRequired.PasswordResetToken != "prt-2" || codeRequired.CodeLength != 8 {
		t.Fatalf("unexpected challenge: %+v", codeRequired)
	}

	submitted, err := engine.ResetPasswordSubmitCode(context.Background(), codeRequired.PasswordResetToken, "12345678")
	if err != nil {
		t.Fatalf("ResetPasswordSubmitCode failed: %v", err)
	}
	passwordRequired, ok := submitted.(ResetPasswordPasswordRequired)
	if !ok {
		t.Fatalf("expected ResetPasswordPasswordRequired, got %T", submitted)
	}
	if passwordRequired.PasswordSubmitToken != "pst-1" {
		t.Fatalf("unexpected submit token: %+v", passwordRequired)
	}

	result, err := engine.ResetPasswordSubmitNewPassword(context.Background(), passwordRequired.PasswordSubmitToken, "N3wPassw0rd!")
	if err != nil {
		t.Fatalf("ResetPasswordSubmitNewPassword failed: %v", err)
	}
	complete, ok := result.(ResetPasswordComplete)
	if !ok {
		t.Fatalf("expected ResetPasswordComplete, got %T", result)
	}
	if complete.SignInSLT != "slt-1" || complete.ExpiresIn != 300 {
		t.Fatalf("unexpected completion: %+v", complete)
	}

	polls := stub.calls(requests.PathResetPasswordPollCompletion)
	if len(polls) != 1 {
		t.Fatalf("expected a single poll, got %d", len(polls))
	}
	if got := polls[0]["password_reset_token"]; got != "prt-3" {
		t.Fatalf("poll token = %q", got)
	}
	if counterValue(t, engine, MetricResetPasswordStarted) != 1 {
		t.Fatal("expected started counter")
	}
	if counterValue(t, engine, MetricResetPasswordCompleted) != 1 {
		t.Fatal("expected completed counter")
	}
	if counterValue(t, engine, MetricResetPasswordPoll) != 1 {
		t.Fatal("expected poll counter")
	}
}

func TestResetPasswordStartUserNotFound(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathResetPasswordStart, http.StatusBadRequest, map[string]any{
		"error":             "user_not_found",
		"error_description": "The user account does not exist.",
	})

	engine := newTestEngine(t, stub)

	result, err := engine.ResetPasswordStart(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("ResetPasswordStart failed: %v", err)
	}
	notFound, ok := result.(ResetPasswordUserNotFound)
	if !ok {
		t.Fatalf("expected ResetPasswordUserNotFound, got %T", result)
	}
	if notFound.ErrorDescription != "The user account does not exist." {
		t.Fatalf("unexpected detail: %+v", notFound)
	}
	if counterValue(t, engine, MetricResetPasswordFailed) != 1 {
		t.Fatal("expected failure counter")
	}
}

func TestResetPasswordSubmitCodeIncorrect(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathResetPasswordContinue, http.StatusBadRequest, map[string]any{
		"error":       "invalid_grant",
		"error_codes": []int{50181},
	})

	engine := newTestEngine(t, stub)

	result, err := engine.ResetPasswordSubmitCode(context.Background(), "prt-2", "00000000")
	if err != nil {
		t.Fatalf("ResetPasswordSubmitCode failed: %v", err)
	}
	if _, ok := result.(ResetPasswordCodeIncorrect); !ok {
		t.Fatalf("expected ResetPasswordCodeIncorrect, got %T", result)
	}
}

func TestResetPasswordSubmitNewPasswordRejected(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathResetPasswordSubmit, http.StatusBadRequest, map[string]any{
		"error": "password_too_weak",
	})

	engine := newTestEngine(t, stub)

	result, err := engine.ResetPasswordSubmitNewPassword(context.Background(), "pst-1", "weak")
	if err != nil {
		t.Fatalf("ResetPasswordSubmitNewPassword failed: %v", err)
	}
	if _, ok := result.(ResetPasswordInvalidPassword); !ok {
		t.Fatalf("expected ResetPasswordInvalidPassword, got %T", result)
	}
	if len(stub.calls(requests.PathResetPasswordPollCompletion)) != 0 {
		t.Fatal("rejected password must not trigger polling")
	}
}

func TestResetPasswordResendCode(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathResetPasswordChallenge, http.StatusOK, map[string]any{
		"challenge_type":         "oob",
		"password_reset_token":   "prt-9",
		"challenge_target_label": "u***@example.com",
		"challenge_channel":      "email",
		"code_length":            8,
	})

	engine := newTestEngine(t, stub)

	result, err := engine.ResetPasswordResendCode(context.Background(), "prt-2")
	if err != nil {
		t.Fatalf("ResetPasswordResendCode failed: %v", err)
	}
	required, ok := result.(ResetPasswordCodeRequired)
	if !ok {
		t.Fatalf("expected ResetPasswordCodeRequired, got %T", result)
	}
	if required.PasswordResetToken != "prt-9" {
		t.Fatalf("expected rotated flow token, got %q", required.PasswordResetToken)
	}
}

func TestResetPasswordTokenExpired(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathResetPasswordSubmit, http.StatusBadRequest, map[string]any{
		"error": "expired_token",
	})

	engine := newTestEngine(t, stub)

	result, err := engine.ResetPasswordSubmitNewPassword(context.Background(), "pst-1", "N3wPassw0rd!")
	if err != nil {
		t.Fatalf("ResetPasswordSubmitNewPassword failed: %v", err)
	}
	if _, ok := result.(ResetPasswordTokenExpired); !ok {
		t.Fatalf("expected ResetPasswordTokenExpired, got %T", result)
	}
}

func TestResetPasswordPollTimeout(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathResetPasswordSubmit, http.StatusOK, map[string]any{
		"password_reset_token": "prt-3",
	})
	stub.on(requests.PathResetPasswordPollCompletion, http.StatusOK, map[string]any{
		"status": "in_progress",
	})

	engine, err := New().
		WithConfig(Config{
			ClientID:       "client-1",
			AuthorityURL:   stub.server.URL,
			ChallengeTypes: []string{ChallengeTypeOOB, ChallengeTypePassword},
			HTTP:           HTTPConfig{RequestTimeout: 5 * time.Second},
			Poll:           PollConfig{CompletionTimeout: 60 * time.Millisecond, DefaultInterval: 10 * time.Millisecond},
			Cache:          CacheConfig{Size: 8, RedisPrefix: "natc"},
			Metrics:        MetricsConfig{Enabled: true},
		}).
		WithHTTPClient(stub.server.Client()).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	result, err := engine.ResetPasswordSubmitNewPassword(context.Background(), "pst-1", "N3wPassw0rd!")
	if err != nil {
		t.Fatalf("ResetPasswordSubmitNewPassword failed: %v", err)
	}
	failed, ok := result.(ResetPasswordFailed)
	if !ok {
		t.Fatalf("expected ResetPasswordFailed, got %T", result)
	}
	if failed.ErrorCode != "password_reset_timeout" {
		t.Fatalf("expected timeout code, got %q", failed.ErrorCode)
	}
	if counterValue(t, engine, MetricResetPasswordPollTimeout) != 1 {
		t.Fatal("expected poll timeout counter")
	}
	if len(stub.calls(requests.PathResetPasswordPollCompletion)) < 2 {
		t.Fatal("expected repeated polling before the budget ran out")
	}
}

func TestResetPasswordPollFailedStatus(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathResetPasswordSubmit, http.StatusOK, map[string]any{
		"password_reset_token": "prt-3",
	})
	stub.on(requests.PathResetPasswordPollCompletion, http.StatusOK, map[string]any{
		"status": "failed",
		"error":  "password_reset_failed",
	})

	engine := newTestEngine(t, stub)

	result, err := engine.ResetPasswordSubmitNewPassword(context.Background(), "pst-1", "N3wPassw0rd!")
	if err != nil {
		t.Fatalf("ResetPasswordSubmitNewPassword failed: %v", err)
	}
	failed, ok := result.(ResetPasswordFailed)
	if !ok {
		t.Fatalf("expected ResetPasswordFailed, got %T", result)
	}
	if failed.ErrorCode != "password_reset_failed" {
		t.Fatalf("unexpected error code %q", failed.ErrorCode)
	}
}

func TestResetPasswordCompleteChainsIntoSignIn(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathResetPasswordSubmit, http.StatusOK, map[string]any{
		"password_reset_token": "prt-3",
	})
	stub.on(requests.PathResetPasswordPollCompletion, http.StatusOK, map[string]any{
		"status":     "succeeded",
		"signin_slt": "slt-7",
		"expires_in": 300,
	})
	stub.on(requests.PathSignInToken, http.StatusOK, tokenBody(t))

	engine := newTestEngine(t, stub)

	result, err := engine.ResetPasswordSubmitNewPassword(context.Background(), "pst-1", "N3wPassw0rd!")
	if err != nil {
		t.Fatalf("ResetPasswordSubmitNewPassword failed: %v", err)
	}
	complete, ok := result.(ResetPasswordComplete)
	if !ok {
		t.Fatalf("expected ResetPasswordComplete, got %T", result)
	}

	signedIn, err := engine.SignInWithContinuationToken(context.Background(), complete.SignInSLT, "user@example.com", nil)
	if err != nil {
		t.Fatalf("SignInWithContinuationToken failed: %v", err)
	}
	if _, ok := signedIn.(SignInComplete); !ok {
		t.Fatalf("expected SignInComplete, got %T", signedIn)
	}

	tokenCalls := stub.calls(requests.PathSignInToken)
	if got := tokenCalls[0]["signin_slt"]; got != "slt-7" {
		t.Fatalf("signin_slt = %q", got)
	}
	if got := tokenCalls[0]["grant_type"]; got != "slt" {
		t.Fatalf("grant_type = %q", got)
	}
}

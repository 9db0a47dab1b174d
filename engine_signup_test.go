package goNativeAuth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MrEthical07/goNativeAuth/internal/requests"
)

func TestSignUpStartLeadsToCodeChallenge(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathSignUpStart, http.StatusBadRequest, map[string]any{
		"error":                 "verification_required",
		"signup_token":          "st-1",
		"unverified_attributes": []map[string]string{{"name": "email"}},
	})
	stub.on(requests.PathSignUpChallenge, http.StatusOK, map[string]any{
		"challenge_type":         "oob",
		"signup_token":           "st-2",
		"challenge_target_label": "u***@example.com",
		"challenge_channel":      "email",
		"code_length":            8,
	})

	engine := newTestEngine(t, stub)

	result, err := engine.SignUpStart(context.Background(), "user@example.com", "", nil)
	if err != nil {
		t.Fatalf("SignUpStart failed: %v", err)
	}
	required, ok := result.(SignUpCodeRequired)
	if !ok {
		t.Fatalf("expected SignUpCodeRequired, got %T", result)
	}
	if required.SignupToken != "st-2" || required.CodeLength != 8 {
		t.Fatalf("unexpected challenge: %+v", required)
	}
	if counterValue(t, engine, MetricSignUpStarted) != 1 {
		t.Fatal("expected started counter")
	}
}

func TestSignUpStartWithPasswordSendsPassword(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathSignUpStart, http.StatusBadRequest, map[string]any{
		"error":                 "verification_required",
		"signup_token":          "st-1",
		"unverified_attributes": []map[string]string{{"name": "email"}},
	})
	stub.on(requests.PathSignUpChallenge, http.StatusOK, map[string]any{
		"challenge_type":         "oob",
		"signup_token":           "st-2",
		"challenge_target_label": "u***@example.com",
		"challenge_channel":      "email",
		"code_length":            8,
	})

	engine := newTestEngine(t, stub)

	if _, err := engine.SignUpStart(context.Background(), "user@example.com", "hunter22", map[string]string{"city": "Oslo"}); err != nil {
		t.Fatalf("SignUpStart failed: %v", err)
	}

	calls := stub.calls(requests.PathSignUpStart)
	if got := calls[0]["password"]; got != "hunter22" {
		t.Fatalf("password = %q", got)
	}
	var attrs map[string]string
	if err := json.Unmarshal([]byte(calls[0]["attributes"]), &attrs); err != nil {
		t.Fatalf("attributes not JSON: %v", err)
	}
	if attrs["city"] != "Oslo" {
		t.Fatalf("attributes = %v", attrs)
	}
}

func TestSignUpStartUsernameAlreadyExists(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathSignUpStart, http.StatusBadRequest, map[string]any{
		"error": "username_already_exists",
	})

	engine := newTestEngine(t, stub)

	result, err := engine.SignUpStart(context.Background(), "taken@example.com", "", nil)
	if err != nil {
		t.Fatalf("SignUpStart failed: %v", err)
	}
	if _, ok := result.(SignUpUsernameAlreadyExists); !ok {
		t.Fatalf("expected SignUpUsernameAlreadyExists, got %T", result)
	}
	if counterValue(t, engine, MetricSignUpFailed) != 1 {
		t.Fatal("expected failure counter")
	}
}

func TestSignUpStartInvalidAttributesNamed(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathSignUpStart, http.StatusBadRequest, map[string]any{
		"error":              "attribute_validation_failed",
		"invalid_attributes": []map[string]string{{"name": "city"}},
	})

	engine := newTestEngine(t, stub)

	result, err := engine.SignUpStart(context.Background(), "user@example.com", "", map[string]string{"city": ""})
	if err != nil {
		t.Fatalf("SignUpStart failed: %v", err)
	}
	invalid, ok := result.(SignUpInvalidAttributes)
	if !ok {
		t.Fatalf("expected SignUpInvalidAttributes, got %T", result)
	}
	if len(invalid.InvalidAttributes) != 1 || invalid.InvalidAttributes[0] != "city" {
		t.Fatalf("unexpected attribute names: %v", invalid.InvalidAttributes)
	}
}

func TestSignUpSubmitCodeCompletesWithContinuationToken(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathSignUpContinue, http.StatusOK, map[string]any{
		"signin_slt": "slt-1",
		"expires_in": 300,
	})

	engine := newTestEngine(t, stub)

	result, err := engine.SignUpSubmitCode(context.Background(), "st-2", "12345678")
	if err != nil {
		t.Fatalf("SignUpSubmitCode failed: %v", err)
	}
	complete, ok := result.(SignUpComplete)
	if !ok {
		t.Fatalf("expected SignUpComplete, got %T", result)
	}
	if complete.SignInSLT != "slt-1" || complete.ExpiresIn != 300 {
		t.Fatalf("unexpected completion: %+v", complete)
	}

	calls := stub.calls(requests.PathSignUpContinue)
	if got := calls[0]["grant_type"]; got != "oob" {
		t.Fatalf("grant_type = %q", got)
	}
	if counterValue(t, engine, MetricSignUpCompleted) != 1 {
		t.Fatal("expected completed counter")
	}
}

func TestSignUpCredentialRequiredBouncesToPassword(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathSignUpContinue, http.StatusBadRequest, map[string]any{
		"error":        "credential_required",
		"signup_token": "st-3",
	})
	stub.on(requests.PathSignUpChallenge, http.StatusOK, map[string]any{
		"challenge_type": "password",
		"signup_token":   "st-4",
	})

	engine := newTestEngine(t, stub)

	result, err := engine.SignUpSubmitCode(context.Background(), "st-2", "12345678")
	if err != nil {
		t.Fatalf("SignUpSubmitCode failed: %v", err)
	}
	required, ok := result.(SignUpPasswordRequired)
	if !ok {
		t.Fatalf("expected SignUpPasswordRequired, got %T", result)
	}
	if required.SignupToken != "st-4" {
		t.Fatalf("expected rotated flow token, got %q", required.SignupToken)
	}
}

func TestSignUpSubmitPasswordAttributesRequired(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathSignUpContinue, http.StatusBadRequest, map[string]any{
		"error":               "attributes_required",
		"signup_token":        "st-5",
		"required_attributes": []map[string]string{{"name": "displayName"}, {"name": "city"}},
	})

	engine := newTestEngine(t, stub)

	result, err := engine.SignUpSubmitPassword(context.Background(), "st-4", "hunter22")
	if err != nil {
		t.Fatalf("SignUpSubmitPassword failed: %v", err)
	}
	required, ok := result.(SignUpAttributesRequired)
	if !ok {
		t.Fatalf("expected SignUpAttributesRequired, got %T", result)
	}
	if required.SignupToken != "st-5" || len(required.RequiredAttributes) != 2 {
		t.Fatalf("unexpected variant: %+v", required)
	}
}

func TestSignUpSubmitAttributesRoundTrip(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathSignUpContinue, http.StatusOK, map[string]any{
		"signin_slt": "slt-2",
		"expires_in": 300,
	})

	engine := newTestEngine(t, stub)

	result, err := engine.SignUpSubmitAttributes(context.Background(), "st-5", map[string]string{
		"displayName": "Test User",
		"city":        "Oslo",
	})
	if err != nil {
		t.Fatalf("SignUpSubmitAttributes failed: %v", err)
	}
	if _, ok := result.(SignUpComplete); !ok {
		t.Fatalf("expected SignUpComplete, got %T", result)
	}

	calls := stub.calls(requests.PathSignUpContinue)
	if got := calls[0]["grant_type"]; got != "attributes" {
		t.Fatalf("grant_type = %q", got)
	}
	var attrs map[string]string
	if err := json.Unmarshal([]byte(calls[0]["attributes"]), &attrs); err != nil {
		t.Fatalf("attributes not JSON: %v", err)
	}
	if attrs["displayName"] != "Test User" {
		t.Fatalf("attributes = %v", attrs)
	}
}

func TestSignUpSubmitCodeIncorrect(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathSignUpContinue, http.StatusBadRequest, map[string]any{
		"error": "invalid_oob_value",
	})

	engine := newTestEngine(t, stub)

	result, err := engine.SignUpSubmitCode(context.Background(), "st-2", "00000000")
	if err != nil {
		t.Fatalf("SignUpSubmitCode failed: %v", err)
	}
	if _, ok := result.(SignUpCodeIncorrect); !ok {
		t.Fatalf("expected SignUpCodeIncorrect, got %T", result)
	}
}

func TestSignUpResendCodeRejectsPasswordChallenge(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathSignUpChallenge, http.StatusOK, map[string]any{
		"challenge_type": "password",
		"signup_token":   "st-6",
	})

	engine := newTestEngine(t, stub)

	result, err := engine.SignUpResendCode(context.Background(), "st-2")
	if err != nil {
		t.Fatalf("SignUpResendCode failed: %v", err)
	}
	unknown, ok := result.(UnknownError)
	if !ok {
		t.Fatalf("expected UnknownError, got %T", result)
	}
	if unknown.ErrorCode != "invalid_state" {
		t.Fatalf("expected invalid_state, got %q", unknown.ErrorCode)
	}
}

func TestSignUpTokenExpired(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathSignUpContinue, http.StatusBadRequest, map[string]any{
		"error": "expired_token",
	})

	engine := newTestEngine(t, stub)

	result, err := engine.SignUpSubmitCode(context.Background(), "st-2", "12345678")
	if err != nil {
		t.Fatalf("SignUpSubmitCode failed: %v", err)
	}
	if _, ok := result.(SignUpTokenExpired); !ok {
		t.Fatalf("expected SignUpTokenExpired, got %T", result)
	}
}

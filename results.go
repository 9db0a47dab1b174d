package goNativeAuth

import (
	"github.com/MrEthical07/goNativeAuth/internal/api"
)

// ErrorDetail defines a public type used by goNativeAuth APIs.
//
// ErrorDetail instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ErrorDetail struct {
	ErrorCode        string
	ErrorDescription string
	ErrorCodes       []int
	Details          []map[string]string
}

func errorDetail(e api.APIError) ErrorDetail {
	return ErrorDetail{
		ErrorCode:        e.Error,
		ErrorDescription: e.ErrorDescription,
		ErrorCodes:       e.ErrorCodes,
		Details:          e.Details,
	}
}

// Redirect reports that the authority requires a challenge type this
// headless client cannot satisfy; the caller must fall back to a hosted
// browser flow. Redirect implements every flow result union.
type Redirect struct{}

func (Redirect) signInResult()        {}
func (Redirect) signUpResult()        {}
func (Redirect) resetPasswordResult() {}

// UnknownError reports a response the engine could not classify as any
// known protocol outcome. It implements every flow result union; the raw
// error fields and HTTP status are preserved for diagnostics.
type UnknownError struct {
	ErrorDetail
	StatusCode int
}

func (UnknownError) signInResult()        {}
func (UnknownError) signUpResult()        {}
func (UnknownError) resetPasswordResult() {}

func unknownResult(u api.UnknownError) UnknownError {
	return UnknownError{
		ErrorDetail: errorDetail(u.APIError),
		StatusCode:  u.StatusCode,
	}
}

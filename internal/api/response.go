package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError carries the error fields common to every endpoint's failure
// responses. It is embedded in each response record and copied into the
// UnknownError variants unmodified.
type APIError struct {
	Error            string              `json:"error"`
	ErrorDescription string              `json:"error_description"`
	ErrorURI         string              `json:"error_uri"`
	ErrorCodes       []int               `json:"error_codes"`
	Details          []map[string]string `json:"details"`
}

func invalidStateError(description string) APIError {
	return APIError{
		Error:            ErrorCodeInvalidState,
		ErrorDescription: description,
	}
}

// UnknownError is the catch-all variant shared by every endpoint result
// set. It satisfies all result interfaces so classification can fall back
// to it from any endpoint without a per-endpoint wrapper type.
type UnknownError struct {
	APIError
	StatusCode int
}

// Redirect is the shared variant produced when the service requires a
// challenge type the headless client cannot satisfy.
type Redirect struct{}

// HTTPResponse is the raw transport outcome handed to the parsers.
type HTTPResponse struct {
	StatusCode int
	Body       []byte
}

func (r *HTTPResponse) isError() bool {
	return r.StatusCode >= http.StatusBadRequest
}

func decodeResponse(r *HTTPResponse, out any) error {
	if r == nil {
		return fmt.Errorf("nil http response")
	}
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decode response (status %d): %w", r.StatusCode, err)
	}
	return nil
}

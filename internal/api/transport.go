package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// Transport is the outbound HTTP seam. Implementations own connection
// pooling, TLS, and per-request timeouts; the engine never cancels an
// in-flight call itself.
type Transport interface {
	Post(ctx context.Context, url string, headers map[string]string, body string) (*HTTPResponse, error)
}

// HTTPTransport adapts a *http.Client to the Transport seam. Headers are
// applied in lexicographic key order so request logging and signing see a
// stable layout.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport wraps client; a nil client falls back to
// http.DefaultClient.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client}
}

// Post sends a form-encoded POST and returns the status and raw body.
// Non-2xx statuses are not errors here; classification happens upstream.
func (t *HTTPTransport) Post(ctx context.Context, url string, headers map[string]string, body string) (*HTTPResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		req.Header.Set(k, headers[k])
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &HTTPResponse{
		StatusCode: resp.StatusCode,
		Body:       raw,
	}, nil
}

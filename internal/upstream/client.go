// Package upstream performs outbound lookup calls against the external
// record services and normalizes their failures into a small fixed
// vocabulary safe to embed in responses.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Normalized error kinds. These are the only failure descriptions that
// may appear in a response body; upstream URLs, status codes and raw
// error text stay server-side.
const (
	KindTimeout          = "timeout"
	KindConnectionFailed = "connection-failed"
	KindNotFound         = "not-found"
	KindInvalidInput     = "invalid-input"
	KindHTTPError        = "http-error"
	KindUnexpected       = "unexpected"
)

// CallError is a normalized upstream failure.
type CallError struct {
	Kind string
}

// Error implements the error interface.
func (e *CallError) Error() string {
	return "upstream call failed: " + e.Kind
}

// Fields returns the error as response-entry fields, merged at the top
// level of the entry alongside the identifier tag.
func (e *CallError) Fields() map[string]any {
	return map[string]any{"error": e.Kind}
}

// Client performs single GET lookups with a bounded per-call timeout.
type Client struct {
	httpClient *http.Client
}

// NewClient creates an upstream client. Each call is cut off after the
// given timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

// Get issues a single GET against the given URL and returns the parsed
// JSON body, or a normalized CallError. Callers must branch on the
// error; there is no partial result.
func (c *Client) Get(ctx context.Context, url string) (any, *CallError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Warn("building upstream request failed", "error", err)
		return nil, &CallError{Kind: KindUnexpected}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "numlookup/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		kind := classifyTransportError(err)
		slog.Warn("upstream call failed", "kind", kind, "error", err)
		return nil, &CallError{Kind: kind}
	}
	defer resp.Body.Close()

	if kind := classifyStatus(resp.StatusCode); kind != "" {
		slog.Warn("upstream returned error status", "kind", kind, "status", resp.StatusCode)
		return nil, &CallError{Kind: kind}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Warn("reading upstream body failed", "error", err)
		return nil, &CallError{Kind: KindUnexpected}
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		slog.Warn("upstream body is not valid JSON", "error", err)
		return nil, &CallError{Kind: KindUnexpected}
	}

	return parsed, nil
}

// classifyTransportError maps a transport failure to a normalized kind.
func classifyTransportError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return KindConnectionFailed
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindConnectionFailed
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return KindConnectionFailed
	}
	return KindUnexpected
}

// classifyStatus maps a non-2xx status to a normalized kind, or returns
// "" for success.
func classifyStatus(status int) string {
	switch {
	case status >= 200 && status < 300:
		return ""
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusUnprocessableEntity:
		return KindInvalidInput
	default:
		return KindHTTPError
	}
}

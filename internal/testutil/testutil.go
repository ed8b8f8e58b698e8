// Package testutil provides test utilities and helpers.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"numlookup/internal/config"
)

// FakeUpstream starts a test server that answers every request with the
// given status and body. The server is shut down when the test ends.
func FakeUpstream(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return FakeUpstreamFunc(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

// FakeUpstreamFunc starts a test server with a custom handler. The
// server is shut down when the test ends.
func FakeUpstreamFunc(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

// UpstreamConfig returns a config pointing the three lookup endpoints
// at the given base URLs, with a short timeout suitable for tests.
func UpstreamConfig(mobileURL, aadhaarURL, familyURL string) *config.Config {
	return &config.Config{
		Env:             "test",
		MobileInfoURL:   mobileURL,
		AadhaarInfoURL:  aadhaarURL,
		FamilyInfoURL:   familyURL,
		UpstreamTimeout: 2 * time.Second,
	}
}

package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"numlookup/internal/testutil"
)

func newTestServer(t *testing.T, mobileURL, aadhaarURL, familyURL string) *Server {
	t.Helper()
	cfg := testutil.UpstreamConfig(mobileURL, aadhaarURL, familyURL)
	cfg.ServerAddr = ":0"
	srv := New(cfg)
	srv.RegisterRoutes()
	return srv
}

func TestGetDetailsMissingNumber(t *testing.T) {
	srv := newTestServer(t, "http://localhost:1", "http://localhost:1", "http://localhost:1")

	req, _ := http.NewRequest("GET", "/get_details", nil)
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["error"] != "Mobile number is required" {
		t.Errorf("error = %q, want %q", body["error"], "Mobile number is required")
	}
}

func TestGetDetailsInvalidNumber(t *testing.T) {
	srv := newTestServer(t, "http://localhost:1", "http://localhost:1", "http://localhost:1")

	tests := []struct {
		name   string
		number string
	}{
		{"too short", "12345"},
		{"contains letters", "98765asdf1"},
		{"contains plus", "+919876543210"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", "/get_details?number="+tt.number, nil)
			resp, err := srv.App.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}

			var body map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body["error"] != "Invalid mobile number format" {
				t.Errorf("error = %q", body["error"])
			}
		})
	}
}

func TestGetDetailsEndToEnd(t *testing.T) {
	mobile := testutil.FakeUpstream(t, http.StatusOK,
		`{"data": [{"id": 123456789012, "name": "A very long name that exceeds fifty characters in total length"}]}`)
	other := testutil.FakeUpstream(t, http.StatusOK, `{"name": "Resident"}`)

	srv := newTestServer(t, mobile.URL, other.URL, other.URL)

	req, _ := http.NewRequest("GET", "/get_details?number=9876543210", nil)
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}

	raw, _ := io.ReadAll(resp.Body)

	// Pretty-printed body
	if !strings.Contains(string(raw), "\n  ") {
		t.Error("response body is not indented")
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decoding body: %v", err)
	}

	for _, section := range []string{"MOBILE_INFO", "AADHAAR_INFO", "FAMILY_INFO"} {
		if _, ok := doc[section]; !ok {
			t.Errorf("missing section %s", section)
		}
	}

	personal, ok := doc["AADHAAR_INFO"].([]any)
	if !ok || len(personal) != 1 {
		t.Fatalf("AADHAAR_INFO = %v, want one entry", doc["AADHAAR_INFO"])
	}
	if tag := personal[0].(map[string]any)["aadhaar_number"]; tag != "123456789012" {
		t.Errorf("aadhaar_number = %v, want 123456789012", tag)
	}
}

func TestLegacyInfoRoute(t *testing.T) {
	srv := newTestServer(t, "http://localhost:1", "http://localhost:1", "http://localhost:1")

	req, _ := http.NewRequest("GET", "/info", nil)
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	// Same handler as /get_details: validation runs first.
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, "http://localhost:1", "http://localhost:1", "http://localhost:1")

	req, _ := http.NewRequest("GET", "/healthz", nil)
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestMetricsRoute(t *testing.T) {
	srv := newTestServer(t, "http://localhost:1", "http://localhost:1", "http://localhost:1")

	req, _ := http.NewRequest("GET", "/metrics", nil)
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

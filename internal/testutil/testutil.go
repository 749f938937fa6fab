// Package testutil provides httptest helpers for API client tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// Envelope wraps a payload in the API success envelope.
func Envelope(payload string) string {
	return fmt.Sprintf(`{"body":%s}`, payload)
}

// ErrorEnvelope builds the API failure envelope.
func ErrorEnvelope(code int, message string) string {
	return fmt.Sprintf(`{"error":{"code":%d,"message":%q}}`, code, message)
}

// Server starts an httptest server answering every request with the
// enveloped payload. The server is torn down with the test.
func Server(t *testing.T, payload string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, Envelope(payload))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ErrorServer starts an httptest server answering every request with
// the API failure envelope at the given status.
func ErrorServer(t *testing.T, status, code int, message string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, ErrorEnvelope(code, message))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// RecordingServer starts an httptest server capturing the last request
// method, path, query, and parsed form body before answering with the
// enveloped payload.
type Recorded struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
}

func RecordingServer(t *testing.T, payload string) (*httptest.Server, *Recorded) {
	t.Helper()

	rec := &Recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Query = r.URL.Query()
		// ParseForm only reads the body for POST/PUT/PATCH, so parse it
		// by hand to also capture form bodies on DELETE requests.
		if raw, err := io.ReadAll(r.Body); err != nil {
			t.Errorf("read body: %v", err)
		} else if form, err := url.ParseQuery(string(raw)); err != nil {
			t.Errorf("parse form: %v", err)
		} else {
			rec.Form = form
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, Envelope(payload))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

// MustJSON marshals v or fails the test.
func MustJSON(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}

package controld

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
)

// mobileconfig payloads skip the JSON envelope, so these tests run
// their own raw server instead of testutil.Server.
func rawServer(t *testing.T, payload []byte) (*httptest.Server, *url.Values) {
	t.Helper()

	query := &url.Values{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*query = r.URL.Query()
		w.Header().Set("Content-Type", "application/x-apple-aspen-config")
		w.Write(payload)
	}))
	t.Cleanup(srv.Close)
	return srv, query
}

func TestMobileConfigGenerate(t *testing.T) {
	payload := []byte("<?xml version=\"1.0\"?>\x00binary-ish")
	srv, query := rawServer(t, payload)

	got, err := testClient(srv.URL).MobileConfig().Generate(context.Background(), "dev1",
		&MobileConfigOptions{
			ExcludeWiFi:     []string{"HomeNet", "OfficeNet"},
			ExcludeDomain:   []string{"lan.example.com"},
			DontSign:        true,
			SkipCommonSSIDs: true,
			ClientID:        "laptop",
		})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("payload altered: %q", got)
	}

	q := *query
	if got := q["exclude_wifi[]"]; len(got) != 2 || got[0] != "HomeNet" {
		t.Errorf("exclude_wifi[] = %v", got)
	}
	if got := q["exclude_domain[]"]; len(got) != 1 || got[0] != "lan.example.com" {
		t.Errorf("exclude_domain[] = %v", got)
	}
	if got := q.Get("dont_sign"); got != "1" {
		t.Errorf("dont_sign = %q", got)
	}
	if got := q.Get("exclude_common"); got != "0" {
		t.Errorf("exclude_common = %q", got)
	}
	if got := q.Get("client_id"); got != "laptop" {
		t.Errorf("client_id = %q", got)
	}
}

func TestMobileConfigNilOptions(t *testing.T) {
	srv, query := rawServer(t, []byte("profile"))

	if _, err := testClient(srv.URL).MobileConfig().Generate(context.Background(), "dev1", nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(*query) != 0 {
		t.Errorf("nil options should send no query, got %v", *query)
	}
}

func TestMobileConfigGenerateToFile(t *testing.T) {
	payload := []byte("signed profile bytes")
	srv, _ := rawServer(t, payload)

	path := filepath.Join(t.TempDir(), "profiles", "dev1.mobileconfig")
	err := testClient(srv.URL).MobileConfig().GenerateToFile(context.Background(), "dev1", path, nil)
	if err != nil {
		t.Fatalf("GenerateToFile: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read profile: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("file content = %q", got)
	}
}

func TestMobileConfigErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"code":40401,"message":"unknown device"}}`)
	}))
	t.Cleanup(srv.Close)

	_, err := testClient(srv.URL).MobileConfig().Generate(context.Background(), "nope", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Code != 40401 {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

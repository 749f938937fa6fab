package controld

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ctrld-tools/controld-go/internal/testutil"
	"github.com/ctrld-tools/controld-go/pkg/model"
)

func testClient(baseURL string) *Client {
	return New(Config{Token: "test-token", BaseURL: baseURL})
}

func TestRequestUnwrapsEnvelope(t *testing.T) {
	srv := testutil.Server(t, `{"ips": []}`)

	raw, err := testClient(srv.URL).Access().request(context.Background(), "GET", "/access", nil, nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if string(raw) != `{"ips": []}` {
		t.Errorf("body = %s", raw)
	}
}

func TestRequestSendsAuthHeaders(t *testing.T) {
	var gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"body":{}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Account().UserData(context.Background())
	// UserData fails decoding an empty object; headers are what we check
	_ = err

	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
}

func TestAPIError(t *testing.T) {
	srv := testutil.ErrorServer(t, http.StatusForbidden, 1001, "Invalid token")

	_, err := testClient(srv.URL).Devices().List(context.Background(), DeviceFilterAll)
	if err == nil {
		t.Fatal("403 should return an error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != 403 || apiErr.Code != 1001 || apiErr.Message != "Invalid token" {
		t.Errorf("got %+v", apiErr)
	}

	want := "HTTP Status: 403 | Error Code: 1001 | Message: Invalid token"
	if apiErr.Error() != want {
		t.Errorf("Error() = %q, want %q", apiErr.Error(), want)
	}
}

func TestAPIErrorNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Misc().IP(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != 502 || apiErr.Code != 0 || apiErr.Message != "" {
		t.Errorf("non-JSON body should degrade to status-only error, got %+v", apiErr)
	}
}

func TestDecodeItemsPartialFailure(t *testing.T) {
	// the second element is missing required fields
	raw := []byte(`{"ips": [
		{"ip":"1.2.3.4","ts":1,"country":"US","city":"NYC","isp":"x","asn":1,"as_name":"X"},
		{"ip":"5.6.7.8"}
	]}`)

	_, err := decodeItems[model.KnownIP](raw, "ips")
	if err == nil {
		t.Fatal("one bad element should fail the whole list")
	}

	var missing *model.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingFieldError, got %T: %v", err, err)
	}
}

func TestDecodeItemsMissingKey(t *testing.T) {
	if _, err := decodeItems[model.KnownIP]([]byte(`{"other": []}`), "ips"); err == nil {
		t.Error("missing array key should fail")
	}
}

func TestDecodeItemsDeterministic(t *testing.T) {
	raw := []byte(`{"proxies": [
		{"PK":"nyc","city":"New York","country":"US","country_name":"United States","gps_lat":40.7,"gps_long":-74.0,"uid":"JFK"},
		{"PK":"ams","city":"Amsterdam","country":"NL","country_name":"Netherlands","gps_lat":52.3,"gps_long":4.8,"uid":"AMS"}
	]}`)

	first, err := decodeItems[model.Proxy](raw, "proxies")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	second, err := decodeItems[model.Proxy](raw, "proxies")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("lengths: %d, %d", len(first), len(second))
	}
	for i := range first {
		if first[i].UID != second[i].UID || first[i].City != second[i].City {
			t.Errorf("element %d differs between identical decodes", i)
		}
	}
}

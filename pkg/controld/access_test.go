package controld

import (
	"context"
	"testing"

	"github.com/ctrld-tools/controld-go/internal/testutil"
)

func TestAccessKnownIPsQuery(t *testing.T) {
	srv, rec := testutil.RecordingServer(t, `{"ips": []}`)

	if _, err := testClient(srv.URL).Access().KnownIPs(context.Background(), "dev1"); err != nil {
		t.Fatalf("KnownIPs: %v", err)
	}
	if rec.Method != "GET" || rec.Path != "/access" {
		t.Errorf("request = %s %s", rec.Method, rec.Path)
	}
	if got := rec.Query["device_id"]; len(got) != 1 || got[0] != "dev1" {
		t.Errorf("device_id = %v", got)
	}
}

func TestAccessLearn(t *testing.T) {
	srv, rec := testutil.RecordingServer(t, `{}`)

	form := &AccessForm{IPs: []string{"203.0.113.7", "203.0.113.8"}, DeviceID: "dev1"}
	if err := testClient(srv.URL).Access().Learn(context.Background(), form); err != nil {
		t.Fatalf("Learn: %v", err)
	}
	if rec.Method != "POST" {
		t.Errorf("method = %s", rec.Method)
	}
	if got := rec.Form["ips[]"]; len(got) != 2 || got[0] != "203.0.113.7" {
		t.Errorf("ips[] = %v", got)
	}
	if rec.Form.Get("device_id") != "dev1" {
		t.Errorf("device_id = %q", rec.Form.Get("device_id"))
	}
}

// Revoking a learned IP is a DELETE that still carries a form body.
func TestAccessDeleteSendsFormBody(t *testing.T) {
	srv, rec := testutil.RecordingServer(t, `{}`)

	form := &AccessForm{IPs: []string{"203.0.113.7"}, DeviceID: "dev1"}
	if err := testClient(srv.URL).Access().Delete(context.Background(), form); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rec.Method != "DELETE" {
		t.Errorf("method = %s", rec.Method)
	}
	if got := rec.Form["ips[]"]; len(got) != 1 || got[0] != "203.0.113.7" {
		t.Errorf("ips[] = %v", got)
	}
}

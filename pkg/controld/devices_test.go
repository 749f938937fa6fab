package controld

import (
	"context"
	"testing"

	"github.com/ctrld-tools/controld-go/internal/testutil"
	"github.com/ctrld-tools/controld-go/pkg/model"
)

const deviceListFixture = `{"devices": [{
	"PK": "abc123",
	"ts": 1700000000,
	"name": "office-router",
	"device_id": "abc123",
	"status": 1,
	"learn_ip": 0,
	"resolvers": {"uid": "abc123", "doh": "https://dns.controld.com/abc123", "dot": "abc123.dns.controld.com"},
	"profile": {"PK": "prof1", "updated": 1690000000, "name": "Default"},
	"user": "user1",
	"client_count": 2
}]}`

func TestDevicesList(t *testing.T) {
	srv, rec := testutil.RecordingServer(t, deviceListFixture)

	devices, err := testClient(srv.URL).Devices().List(context.Background(), DeviceFilterAll)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if rec.Method != "GET" || rec.Path != "/devices" {
		t.Errorf("request = %s %s", rec.Method, rec.Path)
	}
	if len(devices) != 1 || devices[0].Name != "office-router" {
		t.Errorf("devices = %+v", devices)
	}
}

func TestDevicesListFilterPath(t *testing.T) {
	tests := []struct {
		filter DeviceFilter
		path   string
	}{
		{DeviceFilterAll, "/devices"},
		{DeviceFilterUsers, "/devices/users"},
		{DeviceFilterRouters, "/devices/routers"},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			srv, rec := testutil.RecordingServer(t, `{"devices": []}`)

			if _, err := testClient(srv.URL).Devices().List(context.Background(), tt.filter); err != nil {
				t.Fatalf("List: %v", err)
			}
			if rec.Path != tt.path {
				t.Errorf("path = %s, want %s", rec.Path, tt.path)
			}
		})
	}
}

func TestCreateDeviceFormValues(t *testing.T) {
	stats := model.StatsFull
	form := &CreateDeviceForm{
		Name:       "laptop",
		ProfileID:  "prof1",
		Icon:       "desktop-mac",
		Stats:      &stats,
		LearnIP:    Bool(true),
		DdnsStatus: Bool(false),
	}

	v := form.Values()
	if v.Get("name") != "laptop" || v.Get("profile_id") != "prof1" || v.Get("icon") != "desktop-mac" {
		t.Errorf("identity values wrong: %v", v)
	}
	if v.Get("stats") != "2" {
		t.Errorf("stats = %q, want 2", v.Get("stats"))
	}
	if v.Get("learn_ip") != "1" {
		t.Errorf("learn_ip = %q, want 1", v.Get("learn_ip"))
	}
	// explicit false is sent as 0, unset is omitted
	if v.Get("ddns_status") != "0" {
		t.Errorf("ddns_status = %q, want 0", v.Get("ddns_status"))
	}
	if v.Has("restricted") {
		t.Error("unset optional field should be omitted")
	}
}

func TestModifyDeviceStatusCode(t *testing.T) {
	form := &ModifyDeviceForm{Status: Ptr(model.DeviceSoftDisabled)}
	if got := form.Values().Get("status"); got != "2" {
		t.Errorf("status = %q, want 2", got)
	}
}

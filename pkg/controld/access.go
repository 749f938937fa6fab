package controld

import (
	"context"
	"net/url"

	"github.com/ctrld-tools/controld-go/pkg/model"
)

// AccessForm names the IPs to authorize or revoke on a device.
type AccessForm struct {
	IPs      []string
	DeviceID string
}

func (f *AccessForm) Values() url.Values {
	v := url.Values{}
	setStrings(v, "ips", f.IPs)
	setString(v, "device_id", f.DeviceID)
	return v
}

// Access manages the IPs authorized to query a device.
type Access struct {
	*endpoint
}

// KnownIPs lists up to the latest 50 IPs that queried the device.
func (a *Access) KnownIPs(ctx context.Context, deviceID string) ([]model.KnownIP, error) {
	query := url.Values{}
	query.Set("device_id", deviceID)

	raw, err := a.request(ctx, "GET", pathAccess, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.KnownIP](raw, "ips")
}

// Learn authorizes the form's IPs on the device. Authorized IPs can use
// the legacy IPv4 resolver and proxies; on a restricted device only
// they can query at all.
func (a *Access) Learn(ctx context.Context, form *AccessForm) error {
	_, err := a.request(ctx, "POST", pathAccess, nil, form.Values())
	return err
}

// Delete revokes previously learned IPs from the device.
func (a *Access) Delete(ctx context.Context, form *AccessForm) error {
	_, err := a.request(ctx, "DELETE", pathAccess, nil, form.Values())
	return err
}

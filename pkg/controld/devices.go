package controld

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ctrld-tools/controld-go/pkg/model"
)

// DeviceFilter narrows a device listing by device class.
type DeviceFilter string

const (
	DeviceFilterAll     DeviceFilter = "all"
	DeviceFilterUsers   DeviceFilter = "users"
	DeviceFilterRouters DeviceFilter = "routers"
)

// CreateDeviceForm creates a new device. Name, ProfileID and Icon are
// required by the API.
type CreateDeviceForm struct {
	Name             string
	ProfileID        string
	ProfileID2       string
	Icon             string
	Stats            *model.Stats
	LegacyIPv4Status *bool
	LearnIP          *bool
	Restricted       *bool
	Desc             string
	DdnsStatus       *bool
	DdnsSubdomain    string
	DdnsExtStatus    *bool
	DdnsExtHost      string
	RemapDeviceID    string
	RemapClientID    string
}

func (f *CreateDeviceForm) Values() url.Values {
	v := url.Values{}
	setString(v, "name", f.Name)
	setString(v, "profile_id", f.ProfileID)
	setString(v, "profile_id2", f.ProfileID2)
	setString(v, "icon", f.Icon)
	setStats(v, "stats", f.Stats)
	setBool(v, "legacy_ipv4_status", f.LegacyIPv4Status)
	setBool(v, "learn_ip", f.LearnIP)
	setBool(v, "restricted", f.Restricted)
	setString(v, "desc", f.Desc)
	setBool(v, "ddns_status", f.DdnsStatus)
	setString(v, "ddns_subdomain", f.DdnsSubdomain)
	setBool(v, "ddns_ext_status", f.DdnsExtStatus)
	setString(v, "ddns_ext_host", f.DdnsExtHost)
	setString(v, "remap_device_id", f.RemapDeviceID)
	setString(v, "remap_client_id", f.RemapClientID)
	return v
}

// ModifyDeviceForm updates an existing device. All fields are optional;
// only set fields are sent.
type ModifyDeviceForm struct {
	Name              string
	ProfileID         string
	ProfileID2        string
	Stats             *model.Stats
	LegacyIPv4Status  *bool
	LearnIP           *bool
	Restricted        *bool
	Desc              string
	DdnsStatus        *bool
	DdnsSubdomain     string
	DdnsExtStatus     *bool
	DdnsExtHost       string
	Status            *model.DeviceStatus
	CtrldCustomConfig string
}

func (f *ModifyDeviceForm) Values() url.Values {
	v := url.Values{}
	setString(v, "name", f.Name)
	setString(v, "profile_id", f.ProfileID)
	setString(v, "profile_id2", f.ProfileID2)
	setStats(v, "stats", f.Stats)
	setBool(v, "legacy_ipv4_status", f.LegacyIPv4Status)
	setBool(v, "learn_ip", f.LearnIP)
	setBool(v, "restricted", f.Restricted)
	setString(v, "desc", f.Desc)
	setBool(v, "ddns_status", f.DdnsStatus)
	setString(v, "ddns_subdomain", f.DdnsSubdomain)
	setBool(v, "ddns_ext_status", f.DdnsExtStatus)
	setString(v, "ddns_ext_host", f.DdnsExtHost)
	setDeviceStatus(v, "status", f.Status)
	setString(v, "ctrld_custom_config", f.CtrldCustomConfig)
	return v
}

// Devices manages the DNS resolver endpoints bound to the account.
type Devices struct {
	*endpoint
}

// List returns devices associated with the account, optionally narrowed
// to user devices or routers.
func (d *Devices) List(ctx context.Context, filter DeviceFilter) ([]model.Device, error) {
	path := pathDevices
	switch filter {
	case DeviceFilterUsers:
		path += "/users"
	case DeviceFilterRouters:
		path += "/routers"
	}

	raw, err := d.request(ctx, "GET", path, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.Device](raw, "devices")
}

// Create registers a new device and returns it with its unique DNS
// resolvers.
func (d *Devices) Create(ctx context.Context, form *CreateDeviceForm) (*model.Device, error) {
	raw, err := d.request(ctx, "POST", pathDevices, nil, form.Values())
	if err != nil {
		return nil, err
	}
	device, err := decodeObject[model.Device](raw, "")
	if err != nil {
		return nil, err
	}
	return &device, nil
}

// Modify updates a device's settings.
func (d *Devices) Modify(ctx context.Context, deviceID string, form *ModifyDeviceForm) (*model.Device, error) {
	raw, err := d.request(ctx, "PUT", pathDevices+"/"+deviceID, nil, form.Values())
	if err != nil {
		return nil, err
	}
	device, err := decodeObject[model.Device](raw, "")
	if err != nil {
		return nil, err
	}
	return &device, nil
}

// Delete removes a device. This breaks DNS on any gadget still pointed
// at the device's resolvers.
func (d *Devices) Delete(ctx context.Context, deviceID string) error {
	_, err := d.request(ctx, "DELETE", pathDevices+"/"+deviceID, nil, nil)
	if err != nil {
		return fmt.Errorf("delete device %s: %w", deviceID, err)
	}
	return nil
}

// Types returns the allowed device type catalog.
func (d *Devices) Types(ctx context.Context) (*model.DeviceTypes, error) {
	raw, err := d.request(ctx, "GET", pathDevices+"/types", nil, nil)
	if err != nil {
		return nil, err
	}
	types, err := decodeObject[model.DeviceTypes](raw, "types")
	if err != nil {
		return nil, err
	}
	return &types, nil
}

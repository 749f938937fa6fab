package model

// Ddns is the dynamic DNS configuration exposing a device's last used IP.
type Ddns struct {
	Status    Status `json:"status"`
	Subdomain string `json:"subdomain"`
	Hostname  string `json:"hostname"`
	Record    string `json:"record"`

	Extra Extra `json:"-"`
}

func (d *Ddns) UnmarshalJSON(data []byte) error {
	type alias Ddns
	var v alias
	if err := unmarshalResource(data, "Ddns", &v, []string{"status", "subdomain", "hostname", "record"}, &v.Extra); err != nil {
		return err
	}
	*d = Ddns(v)
	return nil
}

// DdnsExt is the DDNS-based IP learning configuration.
type DdnsExt struct {
	Status Status `json:"status"`
	Host   string `json:"host"`

	Extra Extra `json:"-"`
}

func (d *DdnsExt) UnmarshalJSON(data []byte) error {
	type alias DdnsExt
	var v alias
	if err := unmarshalResource(data, "DdnsExt", &v, []string{"status", "host"}, &v.Extra); err != nil {
		return err
	}
	*d = DdnsExt(v)
	return nil
}

// Resolvers holds the DNS resolver endpoints unique to a device.
type Resolvers struct {
	UID string `json:"uid"`
	DOH string `json:"doh"`
	DOT string `json:"dot"`
	// Documented as an array of strings, observed as a bare string on some
	// devices; StringList accepts both.
	V4 StringList `json:"v4,omitempty"`
	V6 []string   `json:"v6,omitempty"`

	Extra Extra `json:"-"`
}

func (r *Resolvers) UnmarshalJSON(data []byte) error {
	type alias Resolvers
	var v alias
	if err := unmarshalResource(data, "Resolvers", &v, []string{"uid", "doh", "dot"}, &v.Extra); err != nil {
		return err
	}
	*r = Resolvers(v)
	return nil
}

// LegacyIPv4 is the legacy plain-DNS resolver configuration.
type LegacyIPv4 struct {
	Resolver string `json:"resolver"`
	Status   Status `json:"status"`

	Extra Extra `json:"-"`
}

func (l *LegacyIPv4) UnmarshalJSON(data []byte) error {
	type alias LegacyIPv4
	var v alias
	if err := unmarshalResource(data, "LegacyIPv4", &v, []string{"resolver", "status"}, &v.Extra); err != nil {
		return err
	}
	*l = LegacyIPv4(v)
	return nil
}

// ProfileRef identifies the profile enforced on a device.
type ProfileRef struct {
	PK      string `json:"PK"`
	Updated int64  `json:"updated"`
	Name    string `json:"name"`

	Extra Extra `json:"-"`
}

func (p *ProfileRef) UnmarshalJSON(data []byte) error {
	type alias ProfileRef
	var v alias
	if err := unmarshalResource(data, "ProfileRef", &v, []string{"PK", "updated", "name"}, &v.Extra); err != nil {
		return err
	}
	*p = ProfileRef(v)
	return nil
}

// CtrlD reports the state of the ctrld daemon paired with a device.
type CtrlD struct {
	LastFetch int64  `json:"last_fetch"`
	Status    Status `json:"status"`
	Version   string `json:"version"`

	Extra Extra `json:"-"`
}

func (c *CtrlD) UnmarshalJSON(data []byte) error {
	type alias CtrlD
	var v alias
	if err := unmarshalResource(data, "CtrlD", &v, []string{"last_fetch", "status", "version"}, &v.Extra); err != nil {
		return err
	}
	*c = CtrlD(v)
	return nil
}

// Device is a DNS resolver endpoint bound to an account, with its profile,
// resolvers, and settings.
type Device struct {
	PK           string         `json:"PK"`
	TS           int64          `json:"ts"`
	Name         string         `json:"name"`
	Stats        *Stats         `json:"stats,omitempty"`
	DeviceID     string         `json:"device_id"`
	Status       Status         `json:"status"`
	Restricted   *Status        `json:"restricted,omitempty"`
	LearnIP      Status         `json:"learn_ip"`
	Desc         string         `json:"desc,omitempty"`
	Ddns         *Ddns          `json:"ddns,omitempty"`
	DdnsExt      *DdnsExt       `json:"ddns_ext,omitempty"`
	Resolvers    Resolvers      `json:"resolvers"`
	LegacyIPv4   *LegacyIPv4    `json:"legacy_ipv4,omitempty"`
	Profile      ProfileRef     `json:"profile"`
	Icon         string         `json:"icon,omitempty"`
	BumpTLS      *Status        `json:"bump_tls,omitempty"`
	User         string         `json:"user"`
	ClientCount  int            `json:"client_count"`
	IPCount      int            `json:"ip_count,omitempty"`
	LastActivity int64          `json:"last_activity,omitempty"`
	Clients      map[string]any `json:"clients,omitempty"`
	CtrlD        *CtrlD         `json:"ctrld,omitempty"`

	Extra Extra `json:"-"`
}

var deviceRequired = []string{
	"PK", "ts", "name", "device_id", "status", "learn_ip",
	"resolvers", "profile", "user", "client_count",
}

func (d *Device) UnmarshalJSON(data []byte) error {
	type alias Device
	var v alias
	if err := unmarshalResource(data, "Device", &v, deviceRequired, &v.Extra); err != nil {
		return err
	}
	*d = Device(v)
	return nil
}

// DeviceSettings is the per-type default settings block inside an icon
// definition.
type DeviceSettings struct {
	Stats            *Stats  `json:"stats,omitempty"`
	LegacyIPv4Status *Status `json:"legacy_ipv4_status,omitempty"`
	LearnIP          *Status `json:"learn_ip,omitempty"`

	Extra Extra `json:"-"`
}

func (s *DeviceSettings) UnmarshalJSON(data []byte) error {
	type alias DeviceSettings
	var v alias
	if err := unmarshalResource(data, "DeviceSettings", &v, nil, &v.Extra); err != nil {
		return err
	}
	*s = DeviceSettings(v)
	return nil
}

// Icon describes one allowed device type.
type Icon struct {
	Name      string         `json:"name"`
	Settings  DeviceSettings `json:"settings"`
	Highlight []string       `json:"highlight,omitempty"`
	Require   []string       `json:"require,omitempty"`

	Extra Extra `json:"-"`
}

func (i *Icon) UnmarshalJSON(data []byte) error {
	type alias Icon
	var v alias
	if err := unmarshalResource(data, "Icon", &v, []string{"name", "settings"}, &v.Extra); err != nil {
		return err
	}
	*i = Icon(v)
	return nil
}

// OSIcons groups the operating system device types. Wire keys are
// hyphenated.
type OSIcons struct {
	MobileIOS      Icon `json:"mobile-ios"`
	MobileAndroid  Icon `json:"mobile-android"`
	DesktopWindows Icon `json:"desktop-windows"`
	DesktopMac     Icon `json:"desktop-mac"`
	DesktopLinux   Icon `json:"desktop-linux"`

	Extra Extra `json:"-"`
}

func (o *OSIcons) UnmarshalJSON(data []byte) error {
	type alias OSIcons
	var v alias
	if err := unmarshalResource(data, "OSIcons", &v, nil, &v.Extra); err != nil {
		return err
	}
	*o = OSIcons(v)
	return nil
}

// BrowserIcons groups the browser device types.
type BrowserIcons struct {
	Chrome  Icon `json:"browser-chrome"`
	Firefox Icon `json:"browser-firefox"`
	Edge    Icon `json:"browser-edge"`
	Brave   Icon `json:"browser-brave"`
	Other   Icon `json:"browser-other"`

	Extra Extra `json:"-"`
}

func (b *BrowserIcons) UnmarshalJSON(data []byte) error {
	type alias BrowserIcons
	var v alias
	if err := unmarshalResource(data, "BrowserIcons", &v, nil, &v.Extra); err != nil {
		return err
	}
	*b = BrowserIcons(v)
	return nil
}

// TVIcons groups the TV and streaming device types.
type TVIcons struct {
	TV      Icon `json:"tv"`
	Apple   Icon `json:"tv-apple"`
	Android Icon `json:"tv-android"`
	FireTV  Icon `json:"tv-firetv"`
	Samsung Icon `json:"tv-samsung"`

	Extra Extra `json:"-"`
}

func (t *TVIcons) UnmarshalJSON(data []byte) error {
	type alias TVIcons
	var v alias
	if err := unmarshalResource(data, "TVIcons", &v, nil, &v.Extra); err != nil {
		return err
	}
	*t = TVIcons(v)
	return nil
}

// RouterIcons groups the router device types.
type RouterIcons struct {
	Router      Icon `json:"router"`
	OpenWrt     Icon `json:"router-openwrt"`
	Ubiquiti    Icon `json:"router-ubiquiti"`
	Asus        Icon `json:"router-asus"`
	DDWrt       Icon `json:"router-ddwrt"`
	Linux       Icon `json:"router-linux"`
	GLiNet      Icon `json:"router-glinet"`
	Synology    Icon `json:"router-synology"`
	FreshTomato Icon `json:"router-freshtomato"`
	Windows     Icon `json:"router-windows"`
	PfSense     Icon `json:"router-pfsense"`
	OPNsense    Icon `json:"router-opnsense"`
	Firewalla   Icon `json:"router-firewalla"`

	Extra Extra `json:"-"`
}

func (r *RouterIcons) UnmarshalJSON(data []byte) error {
	type alias RouterIcons
	var v alias
	if err := unmarshalResource(data, "RouterIcons", &v, nil, &v.Extra); err != nil {
		return err
	}
	*r = RouterIcons(v)
	return nil
}

// DeviceTypeOS is the operating-system device type category.
type DeviceTypeOS struct {
	Name  string  `json:"name"`
	Icons OSIcons `json:"icons"`

	Extra Extra `json:"-"`
}

func (c *DeviceTypeOS) UnmarshalJSON(data []byte) error {
	type alias DeviceTypeOS
	var v alias
	if err := unmarshalResource(data, "DeviceTypeOS", &v, []string{"name", "icons"}, &v.Extra); err != nil {
		return err
	}
	*c = DeviceTypeOS(v)
	return nil
}

// DeviceTypeBrowser is the browser device type category.
type DeviceTypeBrowser struct {
	Name  string       `json:"name"`
	Icons BrowserIcons `json:"icons"`

	Extra Extra `json:"-"`
}

func (c *DeviceTypeBrowser) UnmarshalJSON(data []byte) error {
	type alias DeviceTypeBrowser
	var v alias
	if err := unmarshalResource(data, "DeviceTypeBrowser", &v, []string{"name", "icons"}, &v.Extra); err != nil {
		return err
	}
	*c = DeviceTypeBrowser(v)
	return nil
}

// DeviceTypeTV is the TV device type category.
type DeviceTypeTV struct {
	Name  string  `json:"name"`
	Icons TVIcons `json:"icons"`

	Extra Extra `json:"-"`
}

func (c *DeviceTypeTV) UnmarshalJSON(data []byte) error {
	type alias DeviceTypeTV
	var v alias
	if err := unmarshalResource(data, "DeviceTypeTV", &v, []string{"name", "icons"}, &v.Extra); err != nil {
		return err
	}
	*c = DeviceTypeTV(v)
	return nil
}

// DeviceTypeRouter is the router device type category.
type DeviceTypeRouter struct {
	Name     string      `json:"name"`
	Icons    RouterIcons `json:"icons"`
	SetupURL string      `json:"setup_url"`

	Extra Extra `json:"-"`
}

func (c *DeviceTypeRouter) UnmarshalJSON(data []byte) error {
	type alias DeviceTypeRouter
	var v alias
	if err := unmarshalResource(data, "DeviceTypeRouter", &v, []string{"name", "icons", "setup_url"}, &v.Extra); err != nil {
		return err
	}
	*c = DeviceTypeRouter(v)
	return nil
}

// DeviceTypes is the full device type categorization.
type DeviceTypes struct {
	OS      DeviceTypeOS      `json:"os"`
	Browser DeviceTypeBrowser `json:"browser"`
	TV      DeviceTypeTV      `json:"tv"`
	Router  DeviceTypeRouter  `json:"router"`

	Extra Extra `json:"-"`
}

func (t *DeviceTypes) UnmarshalJSON(data []byte) error {
	type alias DeviceTypes
	var v alias
	if err := unmarshalResource(data, "DeviceTypes", &v, []string{"os", "browser", "tv", "router"}, &v.Extra); err != nil {
		return err
	}
	*t = DeviceTypes(v)
	return nil
}

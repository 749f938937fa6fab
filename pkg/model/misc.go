package model

// IPInfo describes the caller's IP as seen by the API.
type IPInfo struct {
	IP      string `json:"ip"`
	Type    string `json:"type"`
	Org     string `json:"org"`
	ASN     int    `json:"asn"`
	Country string `json:"country"`
	Handler string `json:"handler"`
	POP     string `json:"pop"`

	Extra Extra `json:"-"`
}

var ipInfoRequired = []string{"ip", "type", "org", "asn", "country", "handler", "pop"}

func (i *IPInfo) UnmarshalJSON(data []byte) error {
	type alias IPInfo
	var v alias
	if err := unmarshalResource(data, "IPInfo", &v, ipInfoRequired, &v.Extra); err != nil {
		return err
	}
	*i = IPInfo(v)
	return nil
}

// Location is a geographic coordinate pair.
type Location struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`

	Extra Extra `json:"-"`
}

func (l *Location) UnmarshalJSON(data []byte) error {
	type alias Location
	var v alias
	if err := unmarshalResource(data, "Location", &v, []string{"lat", "long"}, &v.Extra); err != nil {
		return err
	}
	*l = Location(v)
	return nil
}

// FeatureStatus reports per-service availability at a point of presence.
type FeatureStatus struct {
	API int `json:"api"`
	DNS int `json:"dns"`
	Pxy int `json:"pxy"`

	Extra Extra `json:"-"`
}

func (f *FeatureStatus) UnmarshalJSON(data []byte) error {
	type alias FeatureStatus
	var v alias
	if err := unmarshalResource(data, "FeatureStatus", &v, []string{"api", "dns", "pxy"}, &v.Extra); err != nil {
		return err
	}
	*f = FeatureStatus(v)
	return nil
}

// Network is a ControlD point of presence.
type Network struct {
	IATACode    string        `json:"iata_code"`
	CityName    string        `json:"city_name"`
	CountryName string        `json:"country_name"`
	Location    Location      `json:"location"`
	Status      FeatureStatus `json:"status"`

	Extra Extra `json:"-"`
}

var networkRequired = []string{"iata_code", "city_name", "country_name", "location", "status"}

func (n *Network) UnmarshalJSON(data []byte) error {
	type alias Network
	var v alias
	if err := unmarshalResource(data, "Network", &v, networkRequired, &v.Extra); err != nil {
		return err
	}
	*n = Network(v)
	return nil
}

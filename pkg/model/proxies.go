package model

// Proxy is a redirect location usable as a rule target.
type Proxy struct {
	PK          string  `json:"PK"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	CountryName string  `json:"country_name"`
	GPSLat      float64 `json:"gps_lat"`
	GPSLong     float64 `json:"gps_long"`
	UID         string  `json:"uid"`
	Hidden      bool    `json:"hidden,omitempty"`

	Extra Extra `json:"-"`
}

var proxyRequired = []string{"PK", "city", "country", "country_name", "gps_lat", "gps_long", "uid"}

func (p *Proxy) UnmarshalJSON(data []byte) error {
	type alias Proxy
	var v alias
	if err := unmarshalResource(data, "Proxy", &v, proxyRequired, &v.Extra); err != nil {
		return err
	}
	*p = Proxy(v)
	return nil
}

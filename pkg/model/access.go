package model

// KnownIP is an IP address authorized to use a device, with the
// geolocation and ISP details learned for it.
type KnownIP struct {
	IP      string `json:"ip"`
	TS      int64  `json:"ts"`
	Country string `json:"country"`
	City    string `json:"city"`
	ISP     string `json:"isp"`
	ASN     int    `json:"asn"`
	ASName  string `json:"as_name"`

	Extra Extra `json:"-"`
}

var knownIPRequired = []string{"ip", "ts", "country", "city", "isp", "asn", "as_name"}

func (k *KnownIP) UnmarshalJSON(data []byte) error {
	type alias KnownIP
	var v alias
	if err := unmarshalResource(data, "KnownIP", &v, knownIPRequired, &v.Extra); err != nil {
		return err
	}
	*k = KnownIP(v)
	return nil
}

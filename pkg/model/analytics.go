package model

// LogLevel is one of the analytics logging levels the account can pick.
type LogLevel struct {
	PK    int    `json:"PK"`
	Title string `json:"title"`

	Extra Extra `json:"-"`
}

func (l *LogLevel) UnmarshalJSON(data []byte) error {
	type alias LogLevel
	var v alias
	if err := unmarshalResource(data, "LogLevel", &v, []string{"PK", "title"}, &v.Extra); err != nil {
		return err
	}
	*l = LogLevel(v)
	return nil
}

// StorageRegion is an analytics storage endpoint region.
type StorageRegion struct {
	PK          string `json:"PK"`
	CountryCode string `json:"country_code"`
	Title       string `json:"title"`

	Extra Extra `json:"-"`
}

func (s *StorageRegion) UnmarshalJSON(data []byte) error {
	type alias StorageRegion
	var v alias
	if err := unmarshalResource(data, "StorageRegion", &v, []string{"PK", "country_code", "title"}, &v.Extra); err != nil {
		return err
	}
	*s = StorageRegion(v)
	return nil
}

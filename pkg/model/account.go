package model

import "encoding/json"

// UserData is the authenticated account's detail record.
type UserData struct {
	LastActive    int64             `json:"last_active"`
	ProxyAccess   int               `json:"proxy_access"`
	EmailStatus   int               `json:"email_status"`
	Status        Status            `json:"status"`
	Email         string            `json:"email"`
	Date          string            `json:"date"`
	PK            string            `json:"PK"`
	TwoFA         int               `json:"twofa"`
	V             int               `json:"v"`
	SSO           string            `json:"sso"`
	StatsEndpoint string            `json:"stats_endpoint"`
	Debug         []json.RawMessage `json:"debug"`

	Extra Extra `json:"-"`
}

var userDataRequired = []string{
	"last_active", "proxy_access", "email_status", "status", "email",
	"date", "PK", "twofa", "v", "sso", "stats_endpoint", "debug",
}

func (u *UserData) UnmarshalJSON(data []byte) error {
	type alias UserData
	var v alias
	if err := unmarshalResource(data, "UserData", &v, userDataRequired, &v.Extra); err != nil {
		return err
	}
	*u = UserData(v)
	return nil
}

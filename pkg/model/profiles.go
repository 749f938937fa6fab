package model

import "encoding/json"

// Cbp is a profile's custom blocked page configuration.
type Cbp struct {
	CustomMessage string `json:"custom_message"`
	NoLink        int    `json:"no_link"`

	Extra Extra `json:"-"`
}

func (c *Cbp) UnmarshalJSON(data []byte) error {
	type alias Cbp
	var v alias
	if err := unmarshalResource(data, "Cbp", &v, []string{"custom_message", "no_link"}, &v.Extra); err != nil {
		return err
	}
	*c = Cbp(v)
	return nil
}

// OptionData is a configured option value on a profile.
type OptionData struct {
	PK    string          `json:"PK"`
	Value json.RawMessage `json:"value"`
	Cbp   *Cbp            `json:"cbp,omitempty"`

	Extra Extra `json:"-"`
}

func (o *OptionData) UnmarshalJSON(data []byte) error {
	type alias OptionData
	var v alias
	if err := unmarshalResource(data, "OptionData", &v, []string{"PK", "value"}, &v.Extra); err != nil {
		return err
	}
	*o = OptionData(v)
	return nil
}

// Opt is a profile's option count with the configured values.
type Opt struct {
	Count int          `json:"count"`
	Data  []OptionData `json:"data"`

	Extra Extra `json:"-"`
}

func (o *Opt) UnmarshalJSON(data []byte) error {
	type alias Opt
	var v alias
	if err := unmarshalResource(data, "Opt", &v, []string{"count", "data"}, &v.Extra); err != nil {
		return err
	}
	*o = Opt(v)
	return nil
}

// DefaultAction is the profile's fallback rule. The reference docs call
// this an array of strings but the API returns an object.
type DefaultAction struct {
	Do     Do     `json:"do"`
	Status Status `json:"status"`

	Extra Extra `json:"-"`
}

func (d *DefaultAction) UnmarshalJSON(data []byte) error {
	type alias DefaultAction
	var v alias
	if err := unmarshalResource(data, "DefaultAction", &v, []string{"do", "status"}, &v.Extra); err != nil {
		return err
	}
	*d = DefaultAction(v)
	return nil
}

// ProfileCounters holds the per-category rule counts for a profile.
type ProfileCounters struct {
	Flt   Count         `json:"flt"`
	Cflt  Count         `json:"cflt"`
	IPFlt Count         `json:"ipflt"`
	Rule  Count         `json:"rule"`
	Svc   Count         `json:"svc"`
	Grp   Count         `json:"grp"`
	Opt   Opt           `json:"opt"`
	Da    DefaultAction `json:"da"`

	Extra Extra `json:"-"`
}

var profileCountersRequired = []string{"flt", "cflt", "ipflt", "rule", "svc", "grp", "opt", "da"}

func (p *ProfileCounters) UnmarshalJSON(data []byte) error {
	type alias ProfileCounters
	var v alias
	if err := unmarshalResource(data, "ProfileCounters", &v, profileCountersRequired, &v.Extra); err != nil {
		return err
	}
	*p = ProfileCounters(v)
	return nil
}

// Profile is a DNS filtering profile.
type Profile struct {
	PK       string          `json:"PK"`
	Updated  int64           `json:"updated"`
	Name     string          `json:"name"`
	Counters ProfileCounters `json:"profile"`

	Extra Extra `json:"-"`
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	type alias Profile
	var v alias
	if err := unmarshalResource(data, "Profile", &v, []string{"PK", "updated", "name", "profile"}, &v.Extra); err != nil {
		return err
	}
	*p = Profile(v)
	return nil
}

// Option is one of the settings a profile can configure.
type Option struct {
	PK           string          `json:"PK"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Type         string          `json:"type"`
	DefaultValue json.RawMessage `json:"default_value"`
	InfoURL      string          `json:"info_url"`

	Extra Extra `json:"-"`
}

var optionRequired = []string{"PK", "title", "description", "type", "default_value", "info_url"}

func (o *Option) UnmarshalJSON(data []byte) error {
	type alias Option
	var v alias
	if err := unmarshalResource(data, "Option", &v, optionRequired, &v.Extra); err != nil {
		return err
	}
	*o = Option(v)
	return nil
}

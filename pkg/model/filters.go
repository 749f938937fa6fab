package model

import "encoding/json"

// FilterLevel is one sensitivity level of a native filter.
type FilterLevel struct {
	Type   string            `json:"type"`
	Name   string            `json:"name"`
	Status Status            `json:"status"`
	Title  string            `json:"title"`
	Opt    []json.RawMessage `json:"opt,omitempty"`

	Extra Extra `json:"-"`
}

func (l *FilterLevel) UnmarshalJSON(data []byte) error {
	type alias FilterLevel
	var v alias
	if err := unmarshalResource(data, "FilterLevel", &v, []string{"type", "name", "status", "title"}, &v.Extra); err != nil {
		return err
	}
	*l = FilterLevel(v)
	return nil
}

// FilterResolvers holds the resolver addresses a third-party filter is
// served from.
type FilterResolvers struct {
	V4 []string `json:"v4"`
	V6 []string `json:"v6"`

	Extra Extra `json:"-"`
}

func (r *FilterResolvers) UnmarshalJSON(data []byte) error {
	type alias FilterResolvers
	var v alias
	if err := unmarshalResource(data, "FilterResolvers", &v, []string{"v4", "v6"}, &v.Extra); err != nil {
		return err
	}
	*r = FilterResolvers(v)
	return nil
}

// ThirdPartyFilter is an external blocklist available to a profile.
type ThirdPartyFilter struct {
	PK          string          `json:"PK"`
	Additional  string          `json:"additional,omitempty"`
	Description string          `json:"description"`
	Name        string          `json:"name"`
	Resolvers   FilterResolvers `json:"resolvers"`
	Sources     []string        `json:"sources"`
	Status      Status          `json:"status"`

	Extra Extra `json:"-"`
}

var thirdPartyFilterRequired = []string{"PK", "description", "name", "resolvers", "sources", "status"}

func (f *ThirdPartyFilter) UnmarshalJSON(data []byte) error {
	type alias ThirdPartyFilter
	var v alias
	if err := unmarshalResource(data, "ThirdPartyFilter", &v, thirdPartyFilterRequired, &v.Extra); err != nil {
		return err
	}
	*f = ThirdPartyFilter(v)
	return nil
}

// NativeAction is the action attached to an enabled native filter.
type NativeAction struct {
	Do     Do     `json:"do"`
	Lvl    string `json:"lvl,omitempty"`
	Status Status `json:"status"`

	Extra Extra `json:"-"`
}

func (a *NativeAction) UnmarshalJSON(data []byte) error {
	type alias NativeAction
	var v alias
	if err := unmarshalResource(data, "NativeAction", &v, []string{"do", "status"}, &v.Extra); err != nil {
		return err
	}
	*a = NativeAction(v)
	return nil
}

// NativeFilter is a built-in ControlD filter.
type NativeFilter struct {
	PK          string        `json:"PK"`
	Action      *NativeAction `json:"action,omitempty"`
	Additional  string        `json:"additional,omitempty"`
	Description string        `json:"description"`
	Levels      []FilterLevel `json:"levels,omitempty"`
	Name        string        `json:"name"`
	Sources     []string      `json:"sources"`
	Status      Status        `json:"status"`

	Extra Extra `json:"-"`
}

var nativeFilterRequired = []string{"PK", "description", "name", "sources", "status"}

func (f *NativeFilter) UnmarshalJSON(data []byte) error {
	type alias NativeFilter
	var v alias
	if err := unmarshalResource(data, "NativeFilter", &v, nativeFilterRequired, &v.Extra); err != nil {
		return err
	}
	*f = NativeFilter(v)
	return nil
}

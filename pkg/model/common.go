package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Status is the enabled/disabled state shared by most resources.
// Numeric values are the wire representation.
type Status int

const (
	StatusDisabled Status = 0
	StatusEnabled  Status = 1
)

func (s Status) String() string {
	switch s {
	case StatusDisabled:
		return "DISABLED"
	case StatusEnabled:
		return "ENABLED"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// UnmarshalJSON parses the numeric wire code, failing on anything outside
// the closed enumeration.
func (s *Status) UnmarshalJSON(data []byte) error {
	code, err := enumCode(data)
	if err != nil {
		return &DecodeError{Resource: "Status", Err: err}
	}
	if code != 0 && code != 1 {
		return &UnknownCodeError{Enum: "Status", Code: code}
	}
	*s = Status(code)
	return nil
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(s))
}

// Do is the action discriminator for what happens to a matching DNS query.
type Do int

const (
	DoBlock    Do = 0
	DoBypass   Do = 1
	DoSpoof    Do = 2
	DoRedirect Do = 3
)

func (d Do) String() string {
	switch d {
	case DoBlock:
		return "BLOCK"
	case DoBypass:
		return "BYPASS"
	case DoSpoof:
		return "SPOOF"
	case DoRedirect:
		return "REDIRECT"
	}
	return fmt.Sprintf("Do(%d)", int(d))
}

func (d *Do) UnmarshalJSON(data []byte) error {
	code, err := enumCode(data)
	if err != nil {
		return &DecodeError{Resource: "Do", Err: err}
	}
	if code < 0 || code > 3 {
		return &UnknownCodeError{Enum: "Do", Code: code}
	}
	*d = Do(code)
	return nil
}

func (d Do) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(d))
}

// Stats is the analytics level configurable on a device.
type Stats int

const (
	StatsOff   Stats = 0
	StatsBasic Stats = 1
	StatsFull  Stats = 2
)

func (s Stats) String() string {
	switch s {
	case StatsOff:
		return "OFF"
	case StatsBasic:
		return "BASIC"
	case StatsFull:
		return "FULL"
	}
	return fmt.Sprintf("Stats(%d)", int(s))
}

// ParseStats converts an analytics level name ("OFF", "BASIC", "FULL")
// to its wire code.
func ParseStats(name string) (Stats, error) {
	switch name {
	case "OFF":
		return StatsOff, nil
	case "BASIC":
		return StatsBasic, nil
	case "FULL":
		return StatsFull, nil
	}
	return 0, fmt.Errorf("unknown analytics level %q", name)
}

func (s *Stats) UnmarshalJSON(data []byte) error {
	code, err := enumCode(data)
	if err != nil {
		return &DecodeError{Resource: "Stats", Err: err}
	}
	if code < 0 || code > 2 {
		return &UnknownCodeError{Enum: "Stats", Code: code}
	}
	*s = Stats(code)
	return nil
}

func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(s))
}

// DeviceStatus is the lifecycle state of a device.
type DeviceStatus int

const (
	DevicePending      DeviceStatus = 0
	DeviceActive       DeviceStatus = 1
	DeviceSoftDisabled DeviceStatus = 2
	DeviceHardDisabled DeviceStatus = 3
)

func (s DeviceStatus) String() string {
	switch s {
	case DevicePending:
		return "PENDING"
	case DeviceActive:
		return "ACTIVE"
	case DeviceSoftDisabled:
		return "SOFT_DISABLED"
	case DeviceHardDisabled:
		return "HARD_DISABLED"
	}
	return fmt.Sprintf("DeviceStatus(%d)", int(s))
}

func (s *DeviceStatus) UnmarshalJSON(data []byte) error {
	code, err := enumCode(data)
	if err != nil {
		return &DecodeError{Resource: "DeviceStatus", Err: err}
	}
	if code < 0 || code > 3 {
		return &UnknownCodeError{Enum: "DeviceStatus", Code: code}
	}
	*s = DeviceStatus(code)
	return nil
}

func (s DeviceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(s))
}

// enumCode parses a wire enum code. The API sends numbers; numeric strings
// are accepted as well since some endpoints echo form input back verbatim.
func enumCode(data []byte) (int64, error) {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if m, serr := strconv.ParseInt(s, 10, 64); serr == nil {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid enum code %s", string(data))
}

// Action is the routing decision attached to rules, folders, filters and
// services: what to do with a matching query, whether the rule is active,
// and the optional via / via_v6 routing targets.
type Action struct {
	Do     Do     `json:"do"`
	Status Status `json:"status"`
	Via    string `json:"via,omitempty"`
	ViaV6  string `json:"via_v6,omitempty"`

	Extra Extra `json:"-"`
}

func (a *Action) UnmarshalJSON(data []byte) error {
	type alias Action
	var v alias
	if err := unmarshalResource(data, "Action", &v, []string{"do", "status"}, &v.Extra); err != nil {
		return err
	}
	*a = Action(v)
	return nil
}

// Count wraps the count sub-records embedded in profiles and organizations.
type Count struct {
	Count int `json:"count"`

	Extra Extra `json:"-"`
}

func (c *Count) UnmarshalJSON(data []byte) error {
	type alias Count
	var v alias
	if err := unmarshalResource(data, "Count", &v, []string{"count"}, &v.Extra); err != nil {
		return err
	}
	*c = Count(v)
	return nil
}

// StringList accepts either a single string or an array of strings on the
// wire. The devices endpoint documents resolvers.v4 as an array but has
// been observed returning a bare string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return &DecodeError{Resource: "StringList", Err: err}
	}
	*l = StringList(many)
	return nil
}

package cli

import "github.com/ctrld-tools/controld-go/pkg/model"

// StatusText renders an enabled/disabled state with color.
func StatusText(s model.Status) string {
	if s == model.StatusEnabled {
		return Green(s.String())
	}
	return Dim(s.String())
}

// DoText renders a rule action with color: block red, bypass green,
// spoof and redirect yellow.
func DoText(d model.Do) string {
	switch d {
	case model.DoBlock:
		return Red(d.String())
	case model.DoBypass:
		return Green(d.String())
	default:
		return Yellow(d.String())
	}
}

// DeviceStatusText renders a device lifecycle state with color.
func DeviceStatusText(s model.DeviceStatus) string {
	switch s {
	case model.DeviceActive:
		return Green(s.String())
	case model.DevicePending:
		return Yellow(s.String())
	default:
		return Red(s.String())
	}
}

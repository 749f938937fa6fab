package util

import (
	"net"
	"regexp"
	"strings"
)

// Conservative hostname grammar: dot-separated labels of 1-63 alphanumerics
// or hyphens, no leading or trailing hyphen per label.
var domainPattern = regexp.MustCompile(
	`^[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?)*$`)

// IsValidIPv4 checks if a string is a valid IPv4 address
func IsValidIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil && strings.Count(s, ".") == 3
}

// IsValidIPv6 checks if a string is a valid IPv6 address
func IsValidIPv6(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && strings.Contains(s, ":")
}

// IsValidDomain checks s against the conservative hostname grammar.
func IsValidDomain(s string) bool {
	return s != "" && domainPattern.MatchString(s)
}

// IsProxyIdentifier returns true iff s is exactly three uppercase letters,
// the format of a proxy location code (e.g. "JFK").
func IsProxyIdentifier(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// CheckProxyIdentifier validates the via target of a REDIRECT action.
// The empty string means unset, which is an error: REDIRECT requires a
// proxy identifier.
func CheckProxyIdentifier(via string) error {
	if !IsProxyIdentifier(via) {
		return NewValidationError("via field must be a valid proxy identifier, got: " + display(via))
	}
	return nil
}

// CheckSpoofTarget validates the via target of a SPOOF action: a valid
// IPv4 address or domain name. The field is mandatory whenever this check
// runs, so the empty string is an error.
func CheckSpoofTarget(via string) error {
	if via == "" {
		return &RequiredError{Field: "via", Reason: "when do=SPOOF"}
	}
	if !IsValidIPv4(via) && !IsValidDomain(via) {
		return NewValidationError("via field must be a valid IPv4 address or domain name, got: " + display(via))
	}
	return nil
}

// CheckSpoofTargetV6 validates the optional via_v6 target of a SPOOF
// action. The empty string is valid (field unset).
func CheckSpoofTargetV6(viaV6 string) error {
	if viaV6 == "" {
		return nil
	}
	if !IsValidIPv6(viaV6) {
		return NewValidationError("via_v6 field must be a valid IPv6 address, got: " + display(viaV6))
	}
	return nil
}

func display(s string) string {
	if s == "" {
		return "<unset>"
	}
	return s
}

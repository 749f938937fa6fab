package util

import (
	"errors"
	"testing"
)

func TestIsProxyIdentifier(t *testing.T) {
	tests := []struct {
		via  string
		want bool
	}{
		{"JFK", true},
		{"AMS", true},
		{"jfk", false},
		{"JF", false},
		{"JFKX", false},
		{"J1K", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.via, func(t *testing.T) {
			if got := IsProxyIdentifier(tt.via); got != tt.want {
				t.Errorf("IsProxyIdentifier(%q) = %v, want %v", tt.via, got, tt.want)
			}
		})
	}
}

func TestCheckProxyIdentifier(t *testing.T) {
	if err := CheckProxyIdentifier("JFK"); err != nil {
		t.Errorf("CheckProxyIdentifier(JFK) = %v, want nil", err)
	}

	for _, via := range []string{"", "jfk", "example.com"} {
		err := CheckProxyIdentifier(via)
		if err == nil {
			t.Errorf("CheckProxyIdentifier(%q) = nil, want error", via)
			continue
		}
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("CheckProxyIdentifier(%q) should unwrap to ErrValidationFailed", via)
		}
	}
}

func TestCheckSpoofTarget(t *testing.T) {
	valid := []string{"127.0.0.1", "10.0.0.254", "example.com", "cdn.example.co.uk", "localhost"}
	for _, via := range valid {
		if err := CheckSpoofTarget(via); err != nil {
			t.Errorf("CheckSpoofTarget(%q) = %v, want nil", via, err)
		}
	}

	invalid := []string{"not a domain!", "-leading.example.com", "trailing-.example.com"}
	for _, via := range invalid {
		if err := CheckSpoofTarget(via); err == nil {
			t.Errorf("CheckSpoofTarget(%q) = nil, want error", via)
		}
	}
}

func TestCheckSpoofTargetUnset(t *testing.T) {
	err := CheckSpoofTarget("")
	if err == nil {
		t.Fatal("CheckSpoofTarget(\"\") = nil, want error")
	}
	if !errors.Is(err, ErrFieldRequired) {
		t.Errorf("unset spoof target should unwrap to ErrFieldRequired, got %v", err)
	}

	var reqErr *RequiredError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequiredError, got %T", err)
	}
	if reqErr.Field != "via" {
		t.Errorf("Field = %q, want via", reqErr.Field)
	}
}

func TestCheckSpoofTargetV6(t *testing.T) {
	// empty is valid, the field is optional
	if err := CheckSpoofTargetV6(""); err != nil {
		t.Errorf("CheckSpoofTargetV6(\"\") = %v, want nil", err)
	}
	if err := CheckSpoofTargetV6("::1"); err != nil {
		t.Errorf("CheckSpoofTargetV6(::1) = %v, want nil", err)
	}
	if err := CheckSpoofTargetV6("2606:1a40::1"); err != nil {
		t.Errorf("CheckSpoofTargetV6(2606:1a40::1) = %v, want nil", err)
	}

	for _, via := range []string{"not-ipv6", "127.0.0.1"} {
		if err := CheckSpoofTargetV6(via); err == nil {
			t.Errorf("CheckSpoofTargetV6(%q) = nil, want error", via)
		}
	}
}

func TestIsValidIPv4(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"127.0.0.1", true},
		{"255.255.255.255", true},
		{"256.0.0.1", false},
		{"::1", false},
		{"example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidIPv4(tt.addr); got != tt.want {
			t.Errorf("IsValidIPv4(%q) = %v, want %v", tt.addr, got, tt.want)
		}
	}
}

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		domain string
		want   bool
	}{
		{"example.com", true},
		{"a.b.c.example.com", true},
		{"xn--bcher-kva.example", true},
		{"not a domain!", false},
		{"double..dot.example", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidDomain(tt.domain); got != tt.want {
			t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, got, tt.want)
		}
	}
}

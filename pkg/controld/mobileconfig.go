package controld

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// MobileConfigOptions tune the generated Apple DNS profile.
type MobileConfigOptions struct {
	// ExcludeWiFi lists Wi-Fi SSIDs that bypass ControlD.
	ExcludeWiFi []string
	// ExcludeDomain lists domains that bypass ControlD.
	ExcludeDomain []string
	// DontSign skips signing the profile.
	DontSign bool
	// SkipCommonSSIDs leaves common captive portal hostnames out of the
	// exclusion list.
	SkipCommonSSIDs bool
	// ClientID is an optional client name identifier.
	ClientID string
}

func (o *MobileConfigOptions) query() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setStrings(v, "exclude_wifi", o.ExcludeWiFi)
	setStrings(v, "exclude_domain", o.ExcludeDomain)
	if o.DontSign {
		v.Set("dont_sign", "1")
	}
	if o.SkipCommonSSIDs {
		v.Set("exclude_common", "0")
	}
	setString(v, "client_id", o.ClientID)
	return v
}

// MobileConfig generates Apple .mobileconfig DNS profiles.
type MobileConfig struct {
	*endpoint
}

// Generate fetches the signed profile for a device. The payload is
// opaque binary, not the usual JSON envelope.
func (m *MobileConfig) Generate(ctx context.Context, deviceID string, opts *MobileConfigOptions) ([]byte, error) {
	return m.requestRaw(ctx, pathMobileConfig(deviceID), opts.query())
}

// GenerateToFile fetches the profile and writes it to path, creating
// parent directories as needed.
func (m *MobileConfig) GenerateToFile(ctx context.Context, deviceID, path string, opts *MobileConfigOptions) error {
	payload, err := m.Generate(ctx, deviceID, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create profile directory: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}

	return nil
}

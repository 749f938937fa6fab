// Package settings manages persistent user settings for the ctrlctl CLI.
package settings

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds persistent user preferences
type Settings struct {
	// Token is the stored API bearer token
	Token string `yaml:"token,omitempty"`

	// BaseURL overrides the production API endpoint
	BaseURL string `yaml:"base_url,omitempty"`

	// DefaultProfile is the profile to use when --profile is not specified
	DefaultProfile string `yaml:"default_profile,omitempty"`

	// DefaultDevice is the device to use when --device is not specified
	DefaultDevice string `yaml:"default_device,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "controld_settings.yaml"
	}
	return filepath.Join(home, ".controld", "settings.yaml")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	// Token lives in this file, keep it private
	return os.WriteFile(path, data, 0600)
}

// SetToken stores the API token
func (s *Settings) SetToken(token string) {
	s.Token = token
}

// SetBaseURL stores the API base URL override
func (s *Settings) SetBaseURL(baseURL string) {
	s.BaseURL = baseURL
}

// SetDefaultProfile sets the default profile id
func (s *Settings) SetDefaultProfile(profileID string) {
	s.DefaultProfile = profileID
}

// SetDefaultDevice sets the default device id
func (s *Settings) SetDefaultDevice(deviceID string) {
	s.DefaultDevice = deviceID
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}

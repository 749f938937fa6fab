package controld

import (
	"testing"
	"time"
)

func TestNewDefaultsBaseURL(t *testing.T) {
	c := New(Config{Token: "tok"})
	if c.cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", c.cfg.BaseURL, DefaultBaseURL)
	}

	c = New(Config{Token: "tok", BaseURL: "http://localhost:8080"})
	if c.cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q, override lost", c.cfg.BaseURL)
	}
}

func TestClientMemoizesGroups(t *testing.T) {
	c := New(Config{Token: "tok", Timeout: 5 * time.Second})

	if c.Devices() != c.Devices() {
		t.Error("Devices built twice")
	}
	if c.Account() != c.Account() {
		t.Error("Account built twice")
	}
	if c.Organizations() != c.Organizations() {
		t.Error("Organizations built twice")
	}
	if c.MobileConfig() != c.MobileConfig() {
		t.Error("MobileConfig built twice")
	}
}

func TestProfilesFacadeMemoizesSubGroups(t *testing.T) {
	c := New(Config{Token: "tok"})

	p := c.Profiles()
	if p != c.Profiles() {
		t.Error("ProfilesAPI built twice")
	}
	if p.Profiles() != p.Profiles() {
		t.Error("Profiles built twice")
	}
	if p.CustomRules() != p.CustomRules() {
		t.Error("CustomRules built twice")
	}
	if p.RuleFolders() != p.RuleFolders() {
		t.Error("RuleFolders built twice")
	}
	if p.DefaultRule() != p.DefaultRule() {
		t.Error("DefaultRule built twice")
	}
	if p.Filters() != p.Filters() {
		t.Error("Filters built twice")
	}
	if p.Services() != p.Services() {
		t.Error("Services built twice")
	}
	if p.Proxies() != p.Proxies() {
		t.Error("Proxies built twice")
	}
}

func TestGroupsUseSeparateHTTPClients(t *testing.T) {
	c := New(Config{Token: "tok"})

	if c.Devices().httpClient == c.Account().httpClient {
		t.Error("groups should not share a connection pool")
	}
}

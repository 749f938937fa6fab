package controld

import (
	"net/http"
	"sync"
	"time"
)

// Config carries the facade construction parameters. Only Token is
// required.
type Config struct {
	// Token is the API bearer token.
	Token string
	// BaseURL overrides the production API endpoint, mainly for tests.
	BaseURL string
	// Timeout bounds each round trip. Zero means no timeout.
	Timeout time.Duration
}

// Client is the facade over every API resource group. Groups are built
// on first use and memoized; each owns its own http.Client connection
// pool. A Client is safe for concurrent use.
type Client struct {
	cfg Config

	devicesOnce sync.Once
	devices     *Devices

	profilesOnce sync.Once
	profiles     *ProfilesAPI

	accessOnce sync.Once
	access     *Access

	accountOnce sync.Once
	account     *Account

	analyticsOnce sync.Once
	analytics     *Analytics

	billingOnce sync.Once
	billing     *Billing

	organizationsOnce sync.Once
	organizations     *Organizations

	servicesOnce sync.Once
	services     *Services

	miscOnce sync.Once
	misc     *Misc

	mobileConfigOnce sync.Once
	mobileConfig     *MobileConfig
}

// New builds a Client. No network I/O happens until an operation is
// called.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{cfg: cfg}
}

func (c *Client) newEndpoint() *endpoint {
	return newEndpoint(&http.Client{Timeout: c.cfg.Timeout}, c.cfg.BaseURL, c.cfg.Token)
}

// Devices returns the device management group.
func (c *Client) Devices() *Devices {
	c.devicesOnce.Do(func() {
		c.devices = &Devices{endpoint: c.newEndpoint()}
	})
	return c.devices
}

// Profiles returns the profile management facade.
func (c *Client) Profiles() *ProfilesAPI {
	c.profilesOnce.Do(func() {
		c.profiles = &ProfilesAPI{client: c}
	})
	return c.profiles
}

// Access returns the device IP access group.
func (c *Client) Access() *Access {
	c.accessOnce.Do(func() {
		c.access = &Access{endpoint: c.newEndpoint()}
	})
	return c.access
}

// Account returns the account group.
func (c *Client) Account() *Account {
	c.accountOnce.Do(func() {
		c.account = &Account{endpoint: c.newEndpoint()}
	})
	return c.account
}

// Analytics returns the analytics catalog group.
func (c *Client) Analytics() *Analytics {
	c.analyticsOnce.Do(func() {
		c.analytics = &Analytics{endpoint: c.newEndpoint()}
	})
	return c.analytics
}

// Billing returns the billing group.
func (c *Client) Billing() *Billing {
	c.billingOnce.Do(func() {
		c.billing = &Billing{endpoint: c.newEndpoint()}
	})
	return c.billing
}

// Organizations returns the organization group.
func (c *Client) Organizations() *Organizations {
	c.organizationsOnce.Do(func() {
		c.organizations = &Organizations{endpoint: c.newEndpoint()}
	})
	return c.organizations
}

// Services returns the global service catalog group.
func (c *Client) Services() *Services {
	c.servicesOnce.Do(func() {
		c.services = &Services{endpoint: c.newEndpoint()}
	})
	return c.services
}

// Misc returns the utility group.
func (c *Client) Misc() *Misc {
	c.miscOnce.Do(func() {
		c.misc = &Misc{endpoint: c.newEndpoint()}
	})
	return c.misc
}

// MobileConfig returns the Apple profile generator group.
func (c *Client) MobileConfig() *MobileConfig {
	c.mobileConfigOnce.Do(func() {
		c.mobileConfig = &MobileConfig{endpoint: c.newEndpoint()}
	})
	return c.mobileConfig
}

// ProfilesAPI groups the profile-scoped endpoints behind one facade.
// Sub-groups are built on first use and memoized.
type ProfilesAPI struct {
	client *Client

	profilesOnce sync.Once
	profiles     *Profiles

	rulesOnce sync.Once
	rules     *CustomRules

	foldersOnce sync.Once
	folders     *RuleFolders

	defaultRuleOnce sync.Once
	defaultRule     *DefaultRule

	filtersOnce sync.Once
	filters     *Filters

	servicesOnce sync.Once
	services     *ProfileServices

	proxiesOnce sync.Once
	proxies     *Proxies
}

// Profiles returns the profile CRUD group.
func (p *ProfilesAPI) Profiles() *Profiles {
	p.profilesOnce.Do(func() {
		p.profiles = &Profiles{endpoint: p.client.newEndpoint()}
	})
	return p.profiles
}

// CustomRules returns the custom rule group.
func (p *ProfilesAPI) CustomRules() *CustomRules {
	p.rulesOnce.Do(func() {
		p.rules = &CustomRules{endpoint: p.client.newEndpoint()}
	})
	return p.rules
}

// RuleFolders returns the rule folder group.
func (p *ProfilesAPI) RuleFolders() *RuleFolders {
	p.foldersOnce.Do(func() {
		p.folders = &RuleFolders{endpoint: p.client.newEndpoint()}
	})
	return p.folders
}

// DefaultRule returns the default rule group.
func (p *ProfilesAPI) DefaultRule() *DefaultRule {
	p.defaultRuleOnce.Do(func() {
		p.defaultRule = &DefaultRule{endpoint: p.client.newEndpoint()}
	})
	return p.defaultRule
}

// Filters returns the filter group.
func (p *ProfilesAPI) Filters() *Filters {
	p.filtersOnce.Do(func() {
		p.filters = &Filters{endpoint: p.client.newEndpoint()}
	})
	return p.filters
}

// Services returns the profile service rule group.
func (p *ProfilesAPI) Services() *ProfileServices {
	p.servicesOnce.Do(func() {
		p.services = &ProfileServices{endpoint: p.client.newEndpoint()}
	})
	return p.services
}

// Proxies returns the proxy listing group.
func (p *ProfilesAPI) Proxies() *Proxies {
	p.proxiesOnce.Do(func() {
		p.proxies = &Proxies{endpoint: p.client.newEndpoint()}
	})
	return p.proxies
}

package controld

import (
	"context"
	"net/url"
	"strings"

	"github.com/ctrld-tools/controld-go/pkg/model"
	"github.com/ctrld-tools/controld-go/pkg/util"
)

// CreateSubOrganizationForm creates a sub-organization under the
// caller's organization.
type CreateSubOrganizationForm struct {
	Name          string
	ContactEmail  string
	TwoFAReq      bool
	StatsEndpoint string
	MaxUsers      int
	MaxRouters    int
	Address       string
	Website       string
	ContactName   string
	ContactPhone  string
	ParentProfile string
}

// Validate checks the fields the API requires on creation.
func (f *CreateSubOrganizationForm) Validate() error {
	var b util.ValidationBuilder
	b.Add(f.Name != "", "name is required")
	b.Add(f.ContactEmail != "", "contact_email is required")
	b.Add(f.MaxUsers > 0, "max_users must be positive")
	b.Add(f.MaxRouters > 0, "max_routers must be positive")
	return b.Build()
}

func (f *CreateSubOrganizationForm) Values() url.Values {
	v := url.Values{}
	setString(v, "name", f.Name)
	setString(v, "contact_email", f.ContactEmail)
	setBool(v, "twofa_req", &f.TwoFAReq)
	setString(v, "stats_endpoint", f.StatsEndpoint)
	setInt(v, "max_users", &f.MaxUsers)
	setInt(v, "max_routers", &f.MaxRouters)
	setString(v, "address", f.Address)
	setString(v, "website", f.Website)
	setString(v, "contact_name", f.ContactName)
	setString(v, "contact_phone", f.ContactPhone)
	setString(v, "parent_profile", f.ParentProfile)
	return v
}

// ModifyOrganizationForm updates organization settings. Only set fields
// are sent.
type ModifyOrganizationForm struct {
	Name          string
	ContactEmail  string
	TwoFAReq      *bool
	StatsEndpoint string
	MaxUsers      *int
	MaxRouters    *int
	MaxDevices    *int
	Address       string
	Website       string
	ContactName   string
	ContactPhone  string
	ParentProfile string
}

func (f *ModifyOrganizationForm) Values() url.Values {
	v := url.Values{}
	setString(v, "name", f.Name)
	setString(v, "contact_email", f.ContactEmail)
	setBool(v, "twofa_req", f.TwoFAReq)
	setString(v, "stats_endpoint", f.StatsEndpoint)
	setInt(v, "max_users", f.MaxUsers)
	setInt(v, "max_routers", f.MaxRouters)
	setInt(v, "max_devices", f.MaxDevices)
	setString(v, "address", f.Address)
	setString(v, "website", f.Website)
	setString(v, "contact_name", f.ContactName)
	setString(v, "contact_phone", f.ContactPhone)
	setString(v, "parent_profile", f.ParentProfile)
	return v
}

// Organizations manages organizations and their sub-organizations.
// These endpoints have seen limited testing against real organization
// accounts; every call logs a warning.
type Organizations struct {
	*endpoint
}

func limitedTestingWarning() {
	rule := strings.Repeat("=", 72)
	util.Warn(rule)
	util.Warn("organization endpoints have limited testing, use at your own risk")
	util.Warn(rule)
}

// Info returns the caller's organization.
func (o *Organizations) Info(ctx context.Context) (*model.Organization, error) {
	limitedTestingWarning()

	raw, err := o.request(ctx, "GET", pathOrganizations+"/organization", nil, nil)
	if err != nil {
		return nil, err
	}
	org, err := decodeObject[model.Organization](raw, "organization")
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Members returns the organization membership.
func (o *Organizations) Members(ctx context.Context) ([]model.Member, error) {
	limitedTestingWarning()

	raw, err := o.request(ctx, "GET", pathOrganizations+"/members", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.Member](raw, "members")
}

// SubOrganizations returns the organization's sub-organizations.
func (o *Organizations) SubOrganizations(ctx context.Context) ([]model.SubOrganization, error) {
	limitedTestingWarning()

	raw, err := o.request(ctx, "GET", pathOrganizations+"/sub_organizations", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.SubOrganization](raw, "sub_organizations")
}

// CreateSubOrganization makes a new sub-organization.
func (o *Organizations) CreateSubOrganization(ctx context.Context, form *CreateSubOrganizationForm) (*model.SubOrganization, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	limitedTestingWarning()

	raw, err := o.request(ctx, "POST", pathOrganizations+"/suborg", nil, form.Values())
	if err != nil {
		return nil, err
	}
	sub, err := decodeObject[model.SubOrganization](raw, "sub_organization")
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Modify updates the caller's organization.
func (o *Organizations) Modify(ctx context.Context, form *ModifyOrganizationForm) (*model.Organization, error) {
	limitedTestingWarning()

	raw, err := o.request(ctx, "PUT", pathOrganizations, nil, form.Values())
	if err != nil {
		return nil, err
	}
	org, err := decodeObject[model.Organization](raw, "organization")
	if err != nil {
		return nil, err
	}
	return &org, nil
}

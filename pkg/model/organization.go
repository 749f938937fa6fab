package model

// MemberCount is the organization member total.
type MemberCount struct {
	Count int `json:"count"`

	Extra Extra `json:"-"`
}

func (m *MemberCount) UnmarshalJSON(data []byte) error {
	type alias MemberCount
	var v alias
	if err := unmarshalResource(data, "MemberCount", &v, []string{"count"}, &v.Extra); err != nil {
		return err
	}
	*m = MemberCount(v)
	return nil
}

// ProfileLimit is a count with an upper bound.
type ProfileLimit struct {
	Count int `json:"count"`
	Max   int `json:"max"`

	Extra Extra `json:"-"`
}

func (p *ProfileLimit) UnmarshalJSON(data []byte) error {
	type alias ProfileLimit
	var v alias
	if err := unmarshalResource(data, "ProfileLimit", &v, []string{"count", "max"}, &v.Extra); err != nil {
		return err
	}
	*p = ProfileLimit(v)
	return nil
}

// SeatLimit is a count with an upper bound and per-seat price. Used for
// both users and routers.
type SeatLimit struct {
	Count int `json:"count"`
	Max   int `json:"max"`
	Price int `json:"price"`

	Extra Extra `json:"-"`
}

func (s *SeatLimit) UnmarshalJSON(data []byte) error {
	type alias SeatLimit
	var v alias
	if err := unmarshalResource(data, "SeatLimit", &v, []string{"count", "max", "price"}, &v.Extra); err != nil {
		return err
	}
	*s = SeatLimit(v)
	return nil
}

// Organization is a full organization record with pricing.
type Organization struct {
	Website            string       `json:"website"`
	Address            string       `json:"address"`
	MaxProfiles        int          `json:"max_profiles"`
	Status             Status       `json:"status"`
	StatsEndpoint      string       `json:"stats_endpoint"`
	MaxUsers           int          `json:"max_users"`
	MaxLegacyResolvers int          `json:"max_legacy_resolvers"`
	Name               string       `json:"name"`
	Date               string       `json:"date"`
	MaxRouters         int          `json:"max_routers"`
	ContactEmail       string       `json:"contact_email"`
	PK                 int          `json:"PK"`
	Members            MemberCount  `json:"members"`
	Profiles           ProfileLimit `json:"profiles"`
	Users              SeatLimit    `json:"users"`
	Routers            SeatLimit    `json:"routers"`
	SubOrganizations   ProfileLimit `json:"sub_organizations"`
	PriceUsers         int          `json:"price_users"`
	PriceRouters       int          `json:"price_routers"`
	MaxSubOrgs         int          `json:"max_sub_orgs"`

	Extra Extra `json:"-"`
}

var organizationRequired = []string{
	"website", "address", "max_profiles", "status", "stats_endpoint",
	"max_users", "max_legacy_resolvers", "name", "date", "max_routers",
	"contact_email", "PK", "members", "profiles", "users", "routers",
	"sub_organizations", "price_users", "price_routers", "max_sub_orgs",
}

func (o *Organization) UnmarshalJSON(data []byte) error {
	type alias Organization
	var v alias
	if err := unmarshalResource(data, "Organization", &v, organizationRequired, &v.Extra); err != nil {
		return err
	}
	*o = Organization(v)
	return nil
}

// Permission is a member's permission level.
type Permission struct {
	Level     int  `json:"level"`
	Printable bool `json:"printable"`

	Extra Extra `json:"-"`
}

func (p *Permission) UnmarshalJSON(data []byte) error {
	type alias Permission
	var v alias
	if err := unmarshalResource(data, "Permission", &v, []string{"level", "printable"}, &v.Extra); err != nil {
		return err
	}
	*p = Permission(v)
	return nil
}

// Member is an organization member.
type Member struct {
	PK         string     `json:"PK"`
	Email      string     `json:"email"`
	LastActive int64      `json:"last_active"`
	TwoFA      int        `json:"twofa"`
	Status     Status     `json:"status"`
	Permission Permission `json:"permission"`

	Extra Extra `json:"-"`
}

var memberRequired = []string{"PK", "email", "last_active", "twofa", "status", "permission"}

func (m *Member) UnmarshalJSON(data []byte) error {
	type alias Member
	var v alias
	if err := unmarshalResource(data, "Member", &v, memberRequired, &v.Extra); err != nil {
		return err
	}
	*m = Member(v)
	return nil
}

// ParentOrg points a sub-organization at its parent organization.
type ParentOrg struct {
	Name string `json:"name"`
	PK   string `json:"PK"`

	Extra Extra `json:"-"`
}

func (p *ParentOrg) UnmarshalJSON(data []byte) error {
	type alias ParentOrg
	var v alias
	if err := unmarshalResource(data, "ParentOrg", &v, []string{"name", "PK"}, &v.Extra); err != nil {
		return err
	}
	*p = ParentOrg(v)
	return nil
}

// ParentProfile points a sub-organization at the profile it inherits.
type ParentProfile struct {
	Name    string `json:"name"`
	PK      string `json:"PK"`
	Updated int64  `json:"updated"`

	Extra Extra `json:"-"`
}

func (p *ParentProfile) UnmarshalJSON(data []byte) error {
	type alias ParentProfile
	var v alias
	if err := unmarshalResource(data, "ParentProfile", &v, []string{"name", "PK", "updated"}, &v.Extra); err != nil {
		return err
	}
	*p = ParentProfile(v)
	return nil
}

// SubOrganization is an organization nested under a parent.
type SubOrganization struct {
	Website            string        `json:"website"`
	Address            string        `json:"address"`
	MaxProfiles        int           `json:"max_profiles"`
	Status             Status        `json:"status"`
	StatsEndpoint      string        `json:"stats_endpoint"`
	MaxUsers           int           `json:"max_users"`
	MaxLegacyResolvers int           `json:"max_legacy_resolvers"`
	Name               string        `json:"name"`
	Date               string        `json:"date"`
	MaxRouters         int           `json:"max_routers"`
	ContactEmail       string        `json:"contact_email"`
	PK                 int           `json:"PK"`
	Members            MemberCount   `json:"members"`
	Profiles           ProfileLimit  `json:"profiles"`
	Users              SeatLimit     `json:"users"`
	Routers            SeatLimit     `json:"routers"`
	SubOrganizations   ProfileLimit  `json:"sub_organizations"`
	ContactName        string        `json:"contact_name"`
	ParentOrg          ParentOrg     `json:"parent_org"`
	TwoFAReq           int           `json:"twofa_req"`
	ParentProfile      ParentProfile `json:"parent_profile"`

	Extra Extra `json:"-"`
}

var subOrganizationRequired = []string{
	"website", "address", "max_profiles", "status", "stats_endpoint",
	"max_users", "max_legacy_resolvers", "name", "date", "max_routers",
	"contact_email", "PK", "members", "profiles", "users", "routers",
	"sub_organizations", "contact_name", "parent_org", "twofa_req",
	"parent_profile",
}

func (s *SubOrganization) UnmarshalJSON(data []byte) error {
	type alias SubOrganization
	var v alias
	if err := unmarshalResource(data, "SubOrganization", &v, subOrganizationRequired, &v.Extra); err != nil {
		return err
	}
	*s = SubOrganization(v)
	return nil
}

package controld

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ctrld-tools/controld-go/pkg/model"
	"github.com/ctrld-tools/controld-go/pkg/util"
)

// checkRuleAction applies the action constraints shared by rule and
// service forms: SPOOF needs a spoof target (IPv4 or hostname) and an
// optional IPv6 target; REDIRECT needs a proxy identifier and ignores
// via_v6 server-side.
func checkRuleAction(do *model.Do, via, viaV6 string) error {
	if do == nil {
		return nil
	}

	switch *do {
	case model.DoSpoof:
		if err := util.CheckSpoofTarget(via); err != nil {
			return err
		}
		if err := util.CheckSpoofTargetV6(viaV6); err != nil {
			return err
		}
	case model.DoRedirect:
		if err := util.CheckProxyIdentifier(via); err != nil {
			return err
		}
		if viaV6 != "" {
			util.Warn(`"via_v6" has no effect for REDIRECT`)
		}
	}

	return nil
}

// CreateRuleForm creates one custom rule per hostname.
type CreateRuleForm struct {
	Do        model.Do
	Status    model.Status
	Via       string
	ViaV6     string
	Group     *int
	Hostnames []string
}

// Validate applies the action constraints before any network I/O.
func (f *CreateRuleForm) Validate() error {
	return checkRuleAction(&f.Do, f.Via, f.ViaV6)
}

func (f *CreateRuleForm) Values() url.Values {
	v := url.Values{}
	v.Set("do", strconv.Itoa(int(f.Do)))
	v.Set("status", strconv.Itoa(int(f.Status)))
	setString(v, "via", f.Via)
	setString(v, "via_v6", f.ViaV6)
	setInt(v, "group", f.Group)
	setStrings(v, "hostnames", f.Hostnames)
	return v
}

// ModifyRuleForm updates custom rules for the named hostnames. Unset
// fields are left unchanged.
type ModifyRuleForm struct {
	Do        *model.Do
	Status    *model.Status
	Via       string
	ViaV6     string
	Group     *int
	Hostnames []string
}

// Validate applies the action constraints before any network I/O.
func (f *ModifyRuleForm) Validate() error {
	return checkRuleAction(f.Do, f.Via, f.ViaV6)
}

func (f *ModifyRuleForm) Values() url.Values {
	v := url.Values{}
	setDo(v, "do", f.Do)
	setStatus(v, "status", f.Status)
	setString(v, "via", f.Via)
	setString(v, "via_v6", f.ViaV6)
	setInt(v, "group", f.Group)
	setStrings(v, "hostnames", f.Hostnames)
	return v
}

// CustomRules manages per-hostname rules inside a profile.
type CustomRules struct {
	*endpoint
}

// List returns the custom rules in a folder. A nil folder lists the
// root folder.
func (r *CustomRules) List(ctx context.Context, profileID string, folderID *int) ([]model.CustomRule, error) {
	path := pathProfile(profileID, "/rules/")
	if folderID != nil {
		path += strconv.Itoa(*folderID)
	}

	raw, err := r.request(ctx, "GET", path, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.CustomRule](raw, "rules")
}

// Create makes one rule per hostname in the form.
func (r *CustomRules) Create(ctx context.Context, profileID string, form *CreateRuleForm) ([]model.ModifiedRule, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	raw, err := r.request(ctx, "POST", pathProfile(profileID, "/rules"), nil, form.Values())
	if err != nil {
		return nil, err
	}
	return decodeItems[model.ModifiedRule](raw, "rules")
}

// Modify updates the rules for the form's hostnames.
func (r *CustomRules) Modify(ctx context.Context, profileID string, form *ModifyRuleForm) ([]model.ModifiedRule, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	raw, err := r.request(ctx, "PUT", pathProfile(profileID, "/rules"), nil, form.Values())
	if err != nil {
		return nil, err
	}
	return decodeItems[model.ModifiedRule](raw, "rules")
}

// Delete removes all rules for a hostname.
func (r *CustomRules) Delete(ctx context.Context, profileID, hostname string) error {
	_, err := r.request(ctx, "DELETE", pathProfile(profileID, "/rules/"+hostname), nil, nil)
	return err
}

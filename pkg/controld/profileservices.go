package controld

import (
	"context"
	"net/url"

	"github.com/ctrld-tools/controld-go/pkg/model"
)

// ModifyServiceForm creates or updates the rule for a service on a
// profile.
type ModifyServiceForm struct {
	Do     *model.Do
	Status *model.Status
	Via    string
	ViaV6  string
}

// Validate applies the action constraints before any network I/O.
func (f *ModifyServiceForm) Validate() error {
	return checkRuleAction(f.Do, f.Via, f.ViaV6)
}

func (f *ModifyServiceForm) Values() url.Values {
	v := url.Values{}
	setDo(v, "do", f.Do)
	setStatus(v, "status", f.Status)
	setString(v, "via", f.Via)
	setString(v, "via_v6", f.ViaV6)
	return v
}

// ProfileServices manages service-based rules on a profile.
type ProfileServices struct {
	*endpoint
}

// List returns the services that have a rule configured on the profile.
func (s *ProfileServices) List(ctx context.Context, profileID string) ([]model.ProfileService, error) {
	raw, err := s.request(ctx, "GET", pathProfile(profileID, "/services"), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.ProfileService](raw, "services")
}

// Modify creates or updates the rule for one service.
func (s *ProfileServices) Modify(ctx context.Context, profileID, service string, form *ModifyServiceForm) ([]model.Action, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.request(ctx, "PUT", pathProfile(profileID, "/services/"+service), nil, form.Values())
	if err != nil {
		return nil, err
	}
	return decodeItems[model.Action](raw, "services")
}

package controld

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ctrld-tools/controld-go/pkg/model"
	"github.com/ctrld-tools/controld-go/pkg/util"
)

// CreateProfileForm creates a blank profile or clones an existing one.
type CreateProfileForm struct {
	Name           string
	CloneProfileID string
}

func (f *CreateProfileForm) Values() url.Values {
	if f.Name != "" && f.CloneProfileID != "" {
		util.Warn(`"name" will not be set because "clone_profile_id" is provided`)
	}

	v := url.Values{}
	setString(v, "name", f.Name)
	setString(v, "clone_profile_id", f.CloneProfileID)
	return v
}

// ModifyProfileForm updates profile settings. DisableTTL of 0 cancels a
// previous deactivation.
type ModifyProfileForm struct {
	Name        string
	DisableTTL  *int64
	LockStatus  *int
	LockMessage string
	Password    string
}

func (f *ModifyProfileForm) Values() url.Values {
	v := url.Values{}
	setString(v, "name", f.Name)
	setInt64(v, "disable_ttl", f.DisableTTL)
	setInt(v, "lock_status", f.LockStatus)
	setString(v, "lock_message", f.LockMessage)
	setString(v, "password", f.Password)
	return v
}

// ModifyOptionForm sets one option on a profile.
type ModifyOptionForm struct {
	Status model.Status
	Value  string
}

func (f *ModifyOptionForm) Values() url.Values {
	v := url.Values{}
	setStatus(v, "status", &f.Status)
	setString(v, "value", f.Value)
	return v
}

// Profiles manages DNS filtering profiles.
type Profiles struct {
	*endpoint
}

// List returns all profiles on the account.
func (p *Profiles) List(ctx context.Context) ([]model.Profile, error) {
	raw, err := p.request(ctx, "GET", pathProfiles, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.Profile](raw, "profiles")
}

// Create makes a new blank profile, or clones an existing one with all
// its rules and settings.
func (p *Profiles) Create(ctx context.Context, form *CreateProfileForm) ([]model.Profile, error) {
	raw, err := p.request(ctx, "POST", pathProfiles, nil, form.Values())
	if err != nil {
		return nil, err
	}
	return decodeItems[model.Profile](raw, "profiles")
}

// Modify updates an existing profile.
func (p *Profiles) Modify(ctx context.Context, profileID string, form *ModifyProfileForm) ([]model.Profile, error) {
	raw, err := p.request(ctx, "PUT", pathProfiles+"/"+profileID, nil, form.Values())
	if err != nil {
		return nil, err
	}
	return decodeItems[model.Profile](raw, "profiles")
}

// Delete removes an orphaned profile. Profiles still enforced by a
// device cannot be deleted.
func (p *Profiles) Delete(ctx context.Context, profileID string) error {
	_, err := p.request(ctx, "DELETE", pathProfiles+"/"+profileID, nil, nil)
	if err != nil {
		return fmt.Errorf("delete profile %s: %w", profileID, err)
	}
	return nil
}

// Options returns all options configurable on profiles.
func (p *Profiles) Options(ctx context.Context) ([]model.Option, error) {
	raw, err := p.request(ctx, "GET", pathProfiles+"/options", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.Option](raw, "options")
}

// ModifyOption sets an option on a profile by option name.
func (p *Profiles) ModifyOption(ctx context.Context, profileID, name string, form *ModifyOptionForm) ([]model.OptionData, error) {
	path := fmt.Sprintf("%s/%s/options/%s", pathProfiles, profileID, name)

	raw, err := p.request(ctx, "PUT", path, nil, form.Values())
	if err != nil {
		return nil, err
	}
	return decodeItems[model.OptionData](raw, "options")
}

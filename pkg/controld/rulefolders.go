package controld

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ctrld-tools/controld-go/pkg/model"
	"github.com/ctrld-tools/controld-go/pkg/util"
)

// CreateFolderForm creates a rule folder. Rules placed in the folder
// inherit its action.
type CreateFolderForm struct {
	Name   string
	Do     *model.Do
	Status *model.Status
	Via    string
	ViaV6  string
}

// Validate requires a folder name and applies the action constraints.
func (f *CreateFolderForm) Validate() error {
	if f.Name == "" {
		return util.NewValidationError("name is required")
	}
	return checkRuleAction(f.Do, f.Via, f.ViaV6)
}

func (f *CreateFolderForm) Values() url.Values {
	v := url.Values{}
	setString(v, "name", f.Name)
	setDo(v, "do", f.Do)
	setStatus(v, "status", f.Status)
	setString(v, "via", f.Via)
	setString(v, "via_v6", f.ViaV6)
	return v
}

// ModifyFolderForm updates a rule folder. Unset fields are left
// unchanged.
type ModifyFolderForm struct {
	Name   string
	Do     *model.Do
	Status *model.Status
	Via    string
	ViaV6  string
}

// Validate applies the action constraints.
func (f *ModifyFolderForm) Validate() error {
	return checkRuleAction(f.Do, f.Via, f.ViaV6)
}

func (f *ModifyFolderForm) Values() url.Values {
	v := url.Values{}
	setString(v, "name", f.Name)
	setDo(v, "do", f.Do)
	setStatus(v, "status", f.Status)
	setString(v, "via", f.Via)
	setString(v, "via_v6", f.ViaV6)
	return v
}

// RuleFolders manages rule folders (groups) inside a profile.
type RuleFolders struct {
	*endpoint
}

// List returns all folders in a profile.
func (r *RuleFolders) List(ctx context.Context, profileID string) ([]model.RuleFolder, error) {
	raw, err := r.request(ctx, "GET", pathProfile(profileID, "/groups"), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.RuleFolder](raw, "groups")
}

// Create makes a new folder and returns the profile's folders.
func (r *RuleFolders) Create(ctx context.Context, profileID string, form *CreateFolderForm) ([]model.RuleFolder, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	raw, err := r.request(ctx, "POST", pathProfile(profileID, "/groups"), nil, form.Values())
	if err != nil {
		return nil, err
	}
	return decodeItems[model.RuleFolder](raw, "groups")
}

// Modify updates a folder and returns the profile's folders.
func (r *RuleFolders) Modify(ctx context.Context, profileID string, folderID int, form *ModifyFolderForm) ([]model.RuleFolder, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	path := pathProfile(profileID, "/groups/"+strconv.Itoa(folderID))
	raw, err := r.request(ctx, "PUT", path, nil, form.Values())
	if err != nil {
		return nil, err
	}
	return decodeItems[model.RuleFolder](raw, "groups")
}

// Delete removes a folder and every rule inside it.
func (r *RuleFolders) Delete(ctx context.Context, profileID string, folderID int) error {
	path := pathProfile(profileID, "/groups/"+strconv.Itoa(folderID))
	_, err := r.request(ctx, "DELETE", path, nil, nil)
	return err
}

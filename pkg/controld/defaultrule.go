package controld

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ctrld-tools/controld-go/pkg/model"
)

// DefaultRuleForm sets the profile's fallback rule.
type DefaultRuleForm struct {
	Do     model.Do
	Status model.Status
	Via    string
}

func (f *DefaultRuleForm) Values() url.Values {
	v := url.Values{}
	v.Set("do", strconv.Itoa(int(f.Do)))
	v.Set("status", strconv.Itoa(int(f.Status)))
	setString(v, "via", f.Via)
	return v
}

// DefaultRule manages the fallback applied to queries no other rule
// matches.
type DefaultRule struct {
	*endpoint
}

// Get returns the current default rule.
func (d *DefaultRule) Get(ctx context.Context, profileID string) (*model.Action, error) {
	raw, err := d.request(ctx, "GET", pathProfile(profileID, "/default"), nil, nil)
	if err != nil {
		return nil, err
	}
	action, err := decodeObject[model.Action](raw, "default")
	if err != nil {
		return nil, err
	}
	return &action, nil
}

// Modify updates the default rule.
func (d *DefaultRule) Modify(ctx context.Context, profileID string, form *DefaultRuleForm) (*model.Action, error) {
	raw, err := d.request(ctx, "PUT", pathProfile(profileID, "/default"), nil, form.Values())
	if err != nil {
		return nil, err
	}
	action, err := decodeObject[model.Action](raw, "default")
	if err != nil {
		return nil, err
	}
	return &action, nil
}

package controld

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ctrld-tools/controld-go/pkg/model"
)

// ModifyFilterForm enables or disables a filter on a profile.
type ModifyFilterForm struct {
	Status model.Status
}

func (f *ModifyFilterForm) Values() url.Values {
	v := url.Values{}
	v.Set("status", strconv.Itoa(int(f.Status)))
	return v
}

// Filters manages the native and third-party blocklists on a profile.
type Filters struct {
	*endpoint
}

// Native returns the built-in filters and their states.
func (f *Filters) Native(ctx context.Context, profileID string) ([]model.NativeFilter, error) {
	raw, err := f.request(ctx, "GET", pathProfile(profileID, "/filters"), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.NativeFilter](raw, "filters")
}

// ThirdParty returns the external filter lists and their states.
func (f *Filters) ThirdParty(ctx context.Context, profileID string) ([]model.ThirdPartyFilter, error) {
	raw, err := f.request(ctx, "GET", pathProfile(profileID, "/filters/external"), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.ThirdPartyFilter](raw, "filters")
}

// Modify toggles a filter on the profile and returns the resulting
// state keyed by filter id.
func (f *Filters) Modify(ctx context.Context, profileID, filter string, form *ModifyFilterForm) (map[string]model.Action, error) {
	path := pathProfile(profileID, "/filters/filter/"+filter)

	raw, err := f.request(ctx, "PUT", path, nil, form.Values())
	if err != nil {
		return nil, err
	}

	var payload struct {
		Filters map[string]json.RawMessage `json:"filters"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	out := make(map[string]model.Action, len(payload.Filters))
	for key, value := range payload.Filters {
		var action model.Action
		if err := json.Unmarshal(value, &action); err != nil {
			return nil, fmt.Errorf("filters[%s]: %w", key, err)
		}
		out[key] = action
	}

	return out, nil
}

package controld

import (
	"context"

	"github.com/ctrld-tools/controld-go/pkg/model"
)

// Analytics exposes the analytics configuration catalogs.
type Analytics struct {
	*endpoint
}

// LogLevels returns the analytics log levels that can be enabled on
// devices.
func (a *Analytics) LogLevels(ctx context.Context) ([]model.LogLevel, error) {
	raw, err := a.request(ctx, "GET", pathAnalytics+"/levels", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.LogLevel](raw, "levels")
}

// StorageRegions returns the analytics storage regions that can be set
// on the account or organization.
func (a *Analytics) StorageRegions(ctx context.Context) ([]model.StorageRegion, error) {
	raw, err := a.request(ctx, "GET", pathAnalytics+"/endpoints", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.StorageRegion](raw, "endpoints")
}

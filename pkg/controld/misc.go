package controld

import (
	"context"

	"github.com/ctrld-tools/controld-go/pkg/model"
)

// Misc exposes the unauthenticated-style utility endpoints.
type Misc struct {
	*endpoint
}

// IP returns the caller's IP and the datacenter that handled the
// request.
func (m *Misc) IP(ctx context.Context) (*model.IPInfo, error) {
	raw, err := m.request(ctx, "GET", "/ip", nil, nil)
	if err != nil {
		return nil, err
	}
	info, err := decodeObject[model.IPInfo](raw, "")
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// NetworkStats returns per-POP service availability.
func (m *Misc) NetworkStats(ctx context.Context) ([]model.Network, error) {
	raw, err := m.request(ctx, "GET", "/network", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.Network](raw, "network")
}

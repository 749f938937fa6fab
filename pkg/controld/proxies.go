package controld

import (
	"context"

	"github.com/ctrld-tools/controld-go/pkg/model"
)

// Proxies lists the locations rule traffic can be redirected through.
type Proxies struct {
	*endpoint
}

// List returns the usable proxy locations.
func (p *Proxies) List(ctx context.Context) ([]model.Proxy, error) {
	raw, err := p.request(ctx, "GET", pathProxies, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.Proxy](raw, "proxies")
}

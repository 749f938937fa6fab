package controld

import (
	"context"

	"github.com/ctrld-tools/controld-go/pkg/model"
)

// Billing exposes payment history and subscription state.
type Billing struct {
	*endpoint
}

// Payments returns the full billing history.
func (b *Billing) Payments(ctx context.Context) ([]model.Payment, error) {
	raw, err := b.request(ctx, "GET", pathBilling+"/payments", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.Payment](raw, "payments")
}

// Subscriptions returns all active and canceled subscriptions.
func (b *Billing) Subscriptions(ctx context.Context) ([]model.Subscription, error) {
	raw, err := b.request(ctx, "GET", pathBilling+"/subscriptions", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.Subscription](raw, "subscriptions")
}

// ActiveProducts returns the products currently activated on the
// account.
func (b *Billing) ActiveProducts(ctx context.Context) ([]model.ActiveProduct, error) {
	raw, err := b.request(ctx, "GET", pathBilling+"/products", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.ActiveProduct](raw, "products")
}

package controld

import (
	"context"

	"github.com/ctrld-tools/controld-go/pkg/model"
)

// Account exposes the authenticated user's account record.
type Account struct {
	*endpoint
}

// UserData returns the account detail record.
func (a *Account) UserData(ctx context.Context) (*model.UserData, error) {
	raw, err := a.request(ctx, "GET", pathAccount, nil, nil)
	if err != nil {
		return nil, err
	}
	user, err := decodeObject[model.UserData](raw, "")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

package controld

import (
	"context"

	"github.com/ctrld-tools/controld-go/pkg/model"
)

// Services exposes the global service catalog used by filtering rules.
type Services struct {
	*endpoint
}

// Categories lists all service categories.
func (s *Services) Categories(ctx context.Context) ([]model.ServiceCategory, error) {
	raw, err := s.request(ctx, "GET", pathServices, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.ServiceCategory](raw, "categories")
}

// InCategory lists the services within one category.
func (s *Services) InCategory(ctx context.Context, category string) ([]model.Service, error) {
	raw, err := s.request(ctx, "GET", pathServices+"/"+category, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems[model.Service](raw, "services")
}

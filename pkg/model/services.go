package model

// ServiceCategory groups filterable services.
type ServiceCategory struct {
	PK          string `json:"PK"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`

	Extra Extra `json:"-"`
}

var serviceCategoryRequired = []string{"PK", "name", "description", "count"}

func (c *ServiceCategory) UnmarshalJSON(data []byte) error {
	type alias ServiceCategory
	var v alias
	if err := unmarshalResource(data, "ServiceCategory", &v, serviceCategoryRequired, &v.Extra); err != nil {
		return err
	}
	*c = ServiceCategory(v)
	return nil
}

// Service is one filterable service within a category.
type Service struct {
	PK             string   `json:"PK"`
	Category       string   `json:"category"`
	Name           string   `json:"name"`
	UnlockLocation string   `json:"unlock_location"`
	Locations      []string `json:"locations,omitempty"`
	Warning        string   `json:"warning,omitempty"`

	Extra Extra `json:"-"`
}

var serviceRequired = []string{"PK", "category", "name", "unlock_location"}

func (s *Service) UnmarshalJSON(data []byte) error {
	type alias Service
	var v alias
	if err := unmarshalResource(data, "Service", &v, serviceRequired, &v.Extra); err != nil {
		return err
	}
	*s = Service(v)
	return nil
}

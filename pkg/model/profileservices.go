package model

// ProfileService is a service rule configured on a profile.
type ProfileService struct {
	PK             string `json:"PK"`
	Name           string `json:"name"`
	UnlockLocation string `json:"unlock_location"`
	Warning        string `json:"warning,omitempty"`
	Category       string `json:"category"`
	Action         Action `json:"action"`

	Extra Extra `json:"-"`
}

var profileServiceRequired = []string{"PK", "name", "unlock_location", "category", "action"}

func (s *ProfileService) UnmarshalJSON(data []byte) error {
	type alias ProfileService
	var v alias
	if err := unmarshalResource(data, "ProfileService", &v, profileServiceRequired, &v.Extra); err != nil {
		return err
	}
	*s = ProfileService(v)
	return nil
}

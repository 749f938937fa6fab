package model

// CustomRule is a single hostname or IP rule inside a profile.
type CustomRule struct {
	PK      string `json:"PK"`
	Order   int    `json:"order"`
	Group   int    `json:"group"`
	Action  Action `json:"action"`
	Comment string `json:"comment,omitempty"`

	Extra Extra `json:"-"`
}

func (r *CustomRule) UnmarshalJSON(data []byte) error {
	type alias CustomRule
	var v alias
	if err := unmarshalResource(data, "CustomRule", &v, []string{"PK", "order", "group", "action"}, &v.Extra); err != nil {
		return err
	}
	*r = CustomRule(v)
	return nil
}

// ModifiedRule is the action block returned after creating or modifying
// a custom rule.
type ModifiedRule struct {
	Do     Do     `json:"do"`
	Status Status `json:"status"`
	Order  int    `json:"order"`
	Group  int    `json:"group"`
	Via    string `json:"via,omitempty"`
	ViaV6  string `json:"via_v6,omitempty"`

	Extra Extra `json:"-"`
}

func (r *ModifiedRule) UnmarshalJSON(data []byte) error {
	type alias ModifiedRule
	var v alias
	if err := unmarshalResource(data, "ModifiedRule", &v, []string{"do", "status", "order", "group"}, &v.Extra); err != nil {
		return err
	}
	*r = ModifiedRule(v)
	return nil
}

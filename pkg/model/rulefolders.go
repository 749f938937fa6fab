package model

// RuleFolder groups custom rules under a shared action.
type RuleFolder struct {
	PK     int    `json:"PK"`
	Group  string `json:"group"`
	Action Action `json:"action"`
	Count  int    `json:"count"`

	Extra Extra `json:"-"`
}

func (f *RuleFolder) UnmarshalJSON(data []byte) error {
	type alias RuleFolder
	var v alias
	if err := unmarshalResource(data, "RuleFolder", &v, []string{"PK", "group", "action", "count"}, &v.Extra); err != nil {
		return err
	}
	*f = RuleFolder(v)
	return nil
}

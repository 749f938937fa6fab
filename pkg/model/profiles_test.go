package model

import (
	"encoding/json"
	"testing"
)

const profileFixture = `{
	"PK": "prof1",
	"updated": 1690000000,
	"name": "Family",
	"profile": {
		"flt": {"count": 4},
		"cflt": {"count": 0},
		"ipflt": {"count": 0},
		"rule": {"count": 12},
		"svc": {"count": 2},
		"grp": {"count": 1},
		"opt": {"count": 1, "data": [{"PK": "block_page", "value": 1}]},
		"da": {"do": 1, "status": 0}
	}
}`

func TestProfileUnmarshal(t *testing.T) {
	var p Profile
	if err := json.Unmarshal([]byte(profileFixture), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if p.PK != "prof1" || p.Name != "Family" {
		t.Errorf("identity fields wrong: %+v", p)
	}
	if p.Counters.Rule.Count != 12 {
		t.Errorf("rule count = %d, want 12", p.Counters.Rule.Count)
	}

	// da comes back as an object even though the reference docs say array
	if p.Counters.Da.Do != DoBypass || p.Counters.Da.Status != StatusDisabled {
		t.Errorf("da = %+v", p.Counters.Da)
	}

	if len(p.Counters.Opt.Data) != 1 || p.Counters.Opt.Data[0].PK != "block_page" {
		t.Errorf("opt = %+v", p.Counters.Opt)
	}
}

func TestProfileMissingCounters(t *testing.T) {
	var p Profile
	if err := json.Unmarshal([]byte(`{"PK":"p","updated":1,"name":"x"}`), &p); err == nil {
		t.Fatal("missing profile counters should fail")
	}
}

func TestCustomRuleUnmarshal(t *testing.T) {
	data := `{
		"PK": "ads.example.com",
		"order": 1,
		"group": 0,
		"action": {"do": 0, "status": 1},
		"comment": "blocked by policy"
	}`

	var r CustomRule
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.PK != "ads.example.com" || r.Action.Do != DoBlock || r.Comment != "blocked by policy" {
		t.Errorf("got %+v", r)
	}
}

func TestNativeFilterOptionalAction(t *testing.T) {
	data := `{
		"PK": "ads",
		"description": "Blocks ads",
		"name": "Ads",
		"sources": ["internal"],
		"status": 0
	}`

	var f NativeFilter
	if err := json.Unmarshal([]byte(data), &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if f.Action != nil {
		t.Errorf("action should be nil when absent, got %+v", f.Action)
	}
	if f.Status != StatusDisabled {
		t.Errorf("status = %v", f.Status)
	}
}

func TestRuleFolderUnmarshal(t *testing.T) {
	data := `{"PK": 3, "group": "Streaming", "action": {"do": 3, "status": 1, "via": "JFK"}, "count": 7}`

	var f RuleFolder
	if err := json.Unmarshal([]byte(data), &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if f.PK != 3 || f.Group != "Streaming" || f.Action.Via != "JFK" {
		t.Errorf("got %+v", f)
	}
}

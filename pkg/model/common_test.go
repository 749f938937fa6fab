package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestStatusUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Status
		wantErr bool
	}{
		{"enabled", `1`, StatusEnabled, false},
		{"disabled", `0`, StatusDisabled, false},
		{"numeric string", `"1"`, StatusEnabled, false},
		{"out of range", `7`, 0, true},
		{"not a code", `"on"`, 0, true},
		{"trailing garbage", `"1x"`, 0, true},
		{"leading space", `" 1"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Status
			err := json.Unmarshal([]byte(tt.data), &s)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) = nil error, want error", tt.data)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.data, err)
			}
			if s != tt.want {
				t.Errorf("got %v, want %v", s, tt.want)
			}
		})
	}
}

func TestStatusUnknownCode(t *testing.T) {
	var s Status
	err := json.Unmarshal([]byte(`5`), &s)
	if !errors.Is(err, ErrUnknownCode) {
		t.Errorf("unknown code should unwrap to ErrUnknownCode, got %v", err)
	}

	var codeErr *UnknownCodeError
	if !errors.As(err, &codeErr) {
		t.Fatalf("expected *UnknownCodeError, got %T", err)
	}
	if codeErr.Enum != "Status" || codeErr.Code != 5 {
		t.Errorf("got %+v, want Enum=Status Code=5", codeErr)
	}
}

func TestDoRoundTrip(t *testing.T) {
	for code, want := range map[string]Do{
		`0`: DoBlock, `1`: DoBypass, `2`: DoSpoof, `3`: DoRedirect,
	} {
		var d Do
		if err := json.Unmarshal([]byte(code), &d); err != nil {
			t.Fatalf("Unmarshal(%s): %v", code, err)
		}
		if d != want {
			t.Errorf("Unmarshal(%s) = %v, want %v", code, d, want)
		}

		out, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", d, err)
		}
		if string(out) != code {
			t.Errorf("Marshal(%v) = %s, want %s", d, out, code)
		}
	}

	var d Do
	if err := json.Unmarshal([]byte(`4`), &d); err == nil {
		t.Error("Do code 4 should fail")
	}
}

func TestParseStats(t *testing.T) {
	for name, want := range map[string]Stats{"OFF": StatsOff, "BASIC": StatsBasic, "FULL": StatsFull} {
		got, err := ParseStats(name)
		if err != nil {
			t.Fatalf("ParseStats(%s): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseStats(%s) = %v, want %v", name, got, want)
		}
	}
	if _, err := ParseStats("MEDIUM"); err == nil {
		t.Error("ParseStats(MEDIUM) should fail")
	}
}

func TestActionUnmarshal(t *testing.T) {
	data := []byte(`{"do":2,"status":1,"via":"127.0.0.1","region":"eu"}`)

	var a Action
	if err := json.Unmarshal(data, &a); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if a.Do != DoSpoof || a.Status != StatusEnabled || a.Via != "127.0.0.1" {
		t.Errorf("got %+v", a)
	}
	if _, ok := a.Extra["region"]; !ok {
		t.Error("undeclared field should land in Extra")
	}
}

func TestActionMissingRequired(t *testing.T) {
	var a Action
	err := json.Unmarshal([]byte(`{"do":0}`), &a)
	if err == nil {
		t.Fatal("missing status should fail")
	}

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingFieldError, got %T", err)
	}
	if missing.Resource != "Action" || missing.Field != "status" {
		t.Errorf("got %+v, want Resource=Action Field=status", missing)
	}
	if !errors.Is(err, ErrMissingField) {
		t.Error("should unwrap to ErrMissingField")
	}
}

func TestStringList(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		var l StringList
		if err := json.Unmarshal([]byte(`["10.0.0.1","10.0.0.2"]`), &l); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if len(l) != 2 || l[0] != "10.0.0.1" {
			t.Errorf("got %v", l)
		}
	})

	t.Run("bare string", func(t *testing.T) {
		var l StringList
		if err := json.Unmarshal([]byte(`"10.0.0.1"`), &l); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if len(l) != 1 || l[0] != "10.0.0.1" {
			t.Errorf("got %v", l)
		}
	})

	t.Run("neither", func(t *testing.T) {
		var l StringList
		if err := json.Unmarshal([]byte(`42`), &l); err == nil {
			t.Error("numeric payload should fail")
		}
	})
}

package util

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		err := NewValidationError("via must be a proxy identifier")
		msg := err.Error()
		if !strings.Contains(msg, "via must be a proxy identifier") {
			t.Errorf("Error message should contain the error: %s", msg)
		}
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("ValidationError should unwrap to ErrValidationFailed")
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		err := NewValidationError("first problem", "second problem")
		msg := err.Error()
		if !strings.Contains(msg, "first problem") || !strings.Contains(msg, "second problem") {
			t.Errorf("Error message should contain all errors: %s", msg)
		}
	})
}

func TestValidationBuilder(t *testing.T) {
	b := &ValidationBuilder{}
	if b.HasErrors() {
		t.Error("empty builder should have no errors")
	}
	if err := b.Build(); err != nil {
		t.Errorf("empty builder should build nil, got %v", err)
	}

	b.Add(true, "satisfied condition adds nothing")
	if b.HasErrors() {
		t.Error("true condition should not record an error")
	}

	b.Add(false, "via is unset")
	b.AddErrorf("bad target %q", "not a domain!")
	if !b.HasErrors() {
		t.Error("builder should have errors after Add")
	}

	err := b.Build()
	if err == nil {
		t.Fatal("builder with errors should build an error")
	}
	if !errors.Is(err, ErrValidationFailed) {
		t.Error("built error should unwrap to ErrValidationFailed")
	}
}

func TestRequiredError(t *testing.T) {
	err := &RequiredError{Field: "via", Reason: "when do=SPOOF"}

	want := "via field is required when do=SPOOF"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrFieldRequired) {
		t.Error("RequiredError should unwrap to ErrFieldRequired")
	}
}

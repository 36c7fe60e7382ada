package forms

import (
	"testing"

	"collabnex/cli/internal/validate"
)

func emailRule(v string) (string, string) {
	lower := validate.NormalizeEmail(v)
	if !validate.IsValidEmail(lower) {
		return lower, "Invalid email format"
	}
	return lower, ""
}

func passwordRule(v string) (string, string) {
	if !validate.IsValidPassword(v) {
		return v, "Password must be 6+ characters"
	}
	return v, ""
}

func loginDraft() *Draft {
	return NewDraft(
		Field{Name: "email", Required: true, Rule: emailRule},
		Field{Name: "password", Required: true, Rule: passwordRule},
	)
}

func TestDraft_SubmitGate(t *testing.T) {
	d := loginDraft()

	if d.CanSubmit() {
		t.Error("empty draft must not be submittable")
	}

	d.Set("email", "bad")
	d.Set("password", "secret1")
	if d.CanSubmit() {
		t.Error("draft with field error must not be submittable")
	}
	if d.Error("email") != "Invalid email format" {
		t.Errorf("email error = %q", d.Error("email"))
	}

	d.Set("email", "Artist@Demo.com")
	if !d.CanSubmit() {
		t.Error("valid draft should be submittable")
	}
	if d.Value("email") != "artist@demo.com" {
		t.Errorf("email not normalized: %q", d.Value("email"))
	}
}

func TestDraft_InFlightBlocksDoubleSubmit(t *testing.T) {
	d := loginDraft()
	d.Set("email", "a@b.co")
	d.Set("password", "abcdef")

	if !d.BeginSubmit() {
		t.Fatal("first submit should be permitted")
	}
	if d.BeginSubmit() {
		t.Error("second submit while in flight must be blocked")
	}
	d.EndSubmit()
	if !d.BeginSubmit() {
		t.Error("submit after completion should be permitted again")
	}
}

func TestDraft_LiveFilter(t *testing.T) {
	d := NewDraft(Field{Name: "fullName", Required: true, Rule: func(v string) (string, string) {
		filtered := validate.FilterFullName(v)
		if !validate.IsValidFullName(filtered) {
			return filtered, "Full name must be at least 3 characters"
		}
		return filtered, ""
	}})

	d.Set("fullName", "J0hn!")
	if d.Value("fullName") != "Jhn" {
		t.Errorf("filtered value = %q; want %q", d.Value("fullName"), "Jhn")
	}
	if d.Error("fullName") != "" {
		t.Errorf("unexpected error: %q", d.Error("fullName"))
	}

	d.Set("fullName", "1!")
	if d.Error("fullName") == "" {
		t.Error("expected error for name that filters to empty")
	}
}

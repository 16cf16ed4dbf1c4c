package httpapi

import (
	"strings"
	"testing"
)

func TestCheckEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@x.com", true},
		{"first.last@sub.example.org", true},
		{"", false},
		{"not-an-email", false},
		{"missing@tld@twice.com", false},
	}

	for _, tt := range tests {
		errs := checkEmail(nil, tt.email)
		if (len(errs) == 0) != tt.valid {
			t.Fatalf("checkEmail(%q): errs=%v, want valid=%v", tt.email, errs, tt.valid)
		}
	}
}

func TestCheckPassword(t *testing.T) {
	if errs := checkPassword(nil, "longenough1"); len(errs) != 0 {
		t.Fatalf("expected valid password, got %v", errs)
	}
	if errs := checkPassword(nil, "short"); len(errs) == 0 {
		t.Fatalf("expected short password to be rejected")
	}
	if errs := checkPassword(nil, ""); len(errs) == 0 {
		t.Fatalf("expected empty password to be rejected")
	}
}

func TestCheckPhoneNumber(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+1 (555) 123-4567", true},
		{"5551234", true},
		{"12345", false},
		{"phone", false},
		{"", false},
	}

	for _, tt := range tests {
		errs := checkPhoneNumber(nil, tt.phone)
		if (len(errs) == 0) != tt.valid {
			t.Fatalf("checkPhoneNumber(%q): errs=%v, want valid=%v", tt.phone, errs, tt.valid)
		}
	}
}

func TestCheckName(t *testing.T) {
	if errs := checkName(nil, "firstName", "Ada"); len(errs) != 0 {
		t.Fatalf("expected valid name, got %v", errs)
	}
	if errs := checkName(nil, "firstName", "A"); len(errs) == 0 {
		t.Fatalf("expected one-character name to be rejected")
	}
	if errs := checkName(nil, "lastName", strings.Repeat("x", 51)); len(errs) == 0 {
		t.Fatalf("expected over-long name to be rejected")
	}
}

func TestCheckAddress(t *testing.T) {
	if errs := checkAddress(nil, "12 Example Street"); len(errs) != 0 {
		t.Fatalf("expected valid address, got %v", errs)
	}
	if errs := checkAddress(nil, "abc"); len(errs) == 0 {
		t.Fatalf("expected short address to be rejected")
	}
}

func TestCheckDateOfBirth(t *testing.T) {
	if _, errs := checkDateOfBirth(nil, "1990-12-10"); len(errs) != 0 {
		t.Fatalf("expected valid date, got %v", errs)
	}
	if _, errs := checkDateOfBirth(nil, "10/12/1990"); len(errs) == 0 {
		t.Fatalf("expected misformatted date to be rejected")
	}
	if _, errs := checkDateOfBirth(nil, "2999-01-01"); len(errs) == 0 {
		t.Fatalf("expected future date to be rejected")
	}
	if _, errs := checkDateOfBirth(nil, ""); len(errs) == 0 {
		t.Fatalf("expected empty date to be rejected")
	}
}

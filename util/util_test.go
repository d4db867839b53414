package util

import "testing"

func TestConvertStringToInt32(t *testing.T) {
	if v, err := ConvertStringToInt32("42"); err != nil || v != 42 {
		t.Errorf("Expected 42, got %d (%v)", v, err)
	}
	if _, err := ConvertStringToInt32("not-a-number"); err == nil {
		t.Error("Expected an error")
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b+c@sub.example.org"}
	invalid := []string{"", "not-an-email", "@example.com"}

	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("Expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("Expected %q to be invalid", email)
		}
	}
}

func TestAtoiOrDefault(t *testing.T) {
	if got := AtoiOrDefault(" 7 ", 1); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}
	if got := AtoiOrDefault("oops", 1); got != 1 {
		t.Errorf("Expected fallback 1, got %d", got)
	}
	if got := AtofOrDefault("4.5", 0); got != 4.5 {
		t.Errorf("Expected 4.5, got %f", got)
	}
	if got := AtofOrDefault("", 2.5); got != 2.5 {
		t.Errorf("Expected fallback 2.5, got %f", got)
	}
}

func TestHasPrefixes(t *testing.T) {
	if !HasPrefixes("/api/v1/book/3", "/api/v1/book/", "/api/v1/library/") {
		t.Error("Expected a prefix match")
	}
	if HasPrefixes("/healthcheck", "/api/") {
		t.Error("Expected no prefix match")
	}
}

func TestRandomString(t *testing.T) {
	s, err := RandomString(16)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(s) != 16 {
		t.Errorf("Expected 16 characters, got %d", len(s))
	}
}

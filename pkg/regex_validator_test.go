package pkg

import (
	"regexp"
	"testing"
	"time"
)

// TestValidatePattern tests the pattern safety checks
func TestValidatePattern(t *testing.T) {
	if err := ValidatePattern(`(?s)^/users/([^/]+)/$`); err != nil {
		t.Errorf("expected a generated route pattern to validate, got %v", err)
	}

	if err := ValidatePattern(`(a*)+`); err == nil {
		t.Error("expected a nested quantifier to be rejected")
	}

	longPattern := make([]byte, 1001)
	for i := range longPattern {
		longPattern[i] = 'a'
	}
	if err := ValidatePattern(string(longPattern)); err == nil {
		t.Error("expected an overlong pattern to be rejected")
	}

	if err := ValidatePattern(`(`); err == nil {
		t.Error("expected an uncompilable pattern to be rejected")
	}
}

// TestRegexValidatorMatch tests timeout-protected matching
func TestRegexValidatorMatch(t *testing.T) {
	rv := NewRegexValidator(500 * time.Millisecond)

	re := regexp.MustCompile(`^/users/([^/]+)/$`)
	matched, err := rv.Match(re, "/users/42/")
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	if !matched {
		t.Error("expected the pattern to match")
	}

	matched, err = rv.Match(re, "/books/42/")
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	if matched {
		t.Error("expected the pattern not to match")
	}
}

// TestRegexValidatorDefaults tests the default timeout fallback
func TestRegexValidatorDefaults(t *testing.T) {
	rv := NewRegexValidator(0)
	if rv.timeout != 100*time.Millisecond {
		t.Errorf("expected the default timeout, got %v", rv.timeout)
	}

	if DefaultRegexValidator().timeout != 100*time.Millisecond {
		t.Errorf("expected the default validator at 100ms")
	}
}

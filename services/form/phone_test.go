package form

import "testing"

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"0", "0"},
		{"010", "010"},
		{"0101", "010-1"},
		{"0101234", "010-1234"},
		{"01012345", "010-1234-5"},
		{"01012345678", "010-1234-5678"},
		{"010-1234-5678", "010-1234-5678"},
		{"010 1234 5678", "010-1234-5678"},
		{"010123456789999", "010-1234-5678"}, // capped at 11 digits
		{"abc010def1234", "010-1234"},
	}
	for _, c := range cases {
		if got := FormatPhone(c.raw); got != c.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestFormatPhoneIdempotent(t *testing.T) {
	inputs := []string{"01012345678", "010-1234", "011123", ""}
	for _, raw := range inputs {
		once := FormatPhone(raw)
		twice := FormatPhone(once)
		if once != twice {
			t.Errorf("FormatPhone not idempotent for %q: %q -> %q", raw, once, twice)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		raw     string
		valid   bool
		message string
	}{
		{"", true, ""},
		{"01012345678", true, ""},
		{"010-1234-5678", true, ""},
		{"0111234567", true, ""},
		{"02112345678", false, PhonePrefixError},
		{"01612345678", false, PhonePrefixError},
		{"1234", false, PhonePrefixError},
	}
	for _, c := range cases {
		valid, msg := ValidatePhone(c.raw)
		if valid != c.valid || msg != c.message {
			t.Errorf("ValidatePhone(%q) = (%v, %q), want (%v, %q)", c.raw, valid, msg, c.valid, c.message)
		}
	}
}

func TestPhoneComplete(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"", false},
		{"010123", false},
		{"01012345678", true},
		{"0111234567", true},
		{"02112345678", false}, // full length, wrong prefix
	}
	for _, c := range cases {
		if got := phoneComplete(c.raw); got != c.want {
			t.Errorf("phoneComplete(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

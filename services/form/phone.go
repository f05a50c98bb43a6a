package form

import (
	"regexp"
	"strings"
)

// PhonePrefixError is shown when the entered number does not start with an
// allowed mobile prefix.
const PhonePrefixError = "010 또는 011로 시작하는 휴대폰 번호를 입력해주세요."

var nonDigit = regexp.MustCompile(`\D`)

var allowedPhonePrefixes = []string{"010", "011"}

// phoneDigits strips everything but digits and caps at 11 significant digits.
func phoneDigits(raw string) string {
	digits := nonDigit.ReplaceAllString(raw, "")
	if len(digits) > 11 {
		digits = digits[:11]
	}
	return digits
}

// FormatPhone rewrites raw input into the hyphenated display form, inserting
// separators after the 3rd and 7th digit. Formatting is idempotent.
func FormatPhone(raw string) string {
	digits := phoneDigits(raw)
	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 7:
		return digits[:3] + "-" + digits[3:]
	default:
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	}
}

// ValidatePhone checks the prefix whitelist. Empty input counts as "not yet
// entered" and is valid; an invalid prefix yields the fixed error message.
func ValidatePhone(raw string) (bool, string) {
	digits := phoneDigits(raw)
	if digits == "" {
		return true, ""
	}
	for _, prefix := range allowedPhonePrefixes {
		if strings.HasPrefix(digits, prefix) {
			return true, ""
		}
	}
	return false, PhonePrefixError
}

// phoneComplete reports whether a full mobile number has been entered. Old
// 011 numbers have 10 digits, 010 numbers have 11.
func phoneComplete(raw string) bool {
	digits := phoneDigits(raw)
	if len(digits) < 10 {
		return false
	}
	ok, _ := ValidatePhone(raw)
	return ok
}

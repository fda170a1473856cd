package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// Validation regex patterns
var (
	gstinPattern     = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	pinPattern       = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	phonePattern     = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	stateCodePattern = regexp.MustCompile(`^(0[1-9]|[1-3][0-9])$`)
)

// ValidateGSTIN validates a GSTIN (15-character alphanumeric).
func ValidateGSTIN(gstin string) bool {
	gstin = strings.TrimSpace(strings.ToUpper(gstin))
	if gstin == "" {
		return true
	}
	return len(gstin) == 15 && gstinPattern.MatchString(gstin)
}

// ValidatePINCode validates an Indian PIN code (6 digits, first digit non-zero).
func ValidatePINCode(pin string) bool {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return true
	}
	return len(pin) == 6 && pinPattern.MatchString(pin)
}

// ValidatePhone validates an Indian mobile number (10 digits starting with 6-9).
func ValidatePhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return true
	}
	return len(phone) == 10 && phonePattern.MatchString(phone)
}

// ValidateEmail validates an email address format.
func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return true
	}
	return emailPattern.MatchString(email)
}

// ValidateStateCode validates a two-digit GST state code (01-39).
func ValidateStateCode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return true
	}
	return stateCodePattern.MatchString(code)
}

// GSTINStateCode returns the state code embedded in the first two digits of
// a valid GSTIN, or "" when gstin is blank or malformed.
func GSTINStateCode(gstin string) string {
	gstin = strings.TrimSpace(strings.ToUpper(gstin))
	if gstin == "" || !ValidateGSTIN(gstin) {
		return ""
	}
	return gstin[:2]
}

// clientFormatFields lists the client fields checked by ValidateClientFields.
var clientFormatFields = []string{
	"gstin", "state_code", "pin_code", "ship_pin_code", "phone", "email",
}

// ValidateClientFields validates format-specific client fields and returns a
// map of field -> error message for any violations. A GSTIN whose state prefix
// disagrees with state_code is also reported.
func ValidateClientFields(fields map[string]string) map[string]string {
	errors := make(map[string]string)

	if v := fields["gstin"]; v != "" && !ValidateGSTIN(v) {
		errors["gstin"] = "Invalid GSTIN format (expected: 15-character, e.g., 27AAPFU0939F1ZV)"
	}
	if v := fields["state_code"]; v != "" && !ValidateStateCode(v) {
		errors["state_code"] = "Invalid state code (expected: 2 digits, e.g., 27)"
	}
	if v := fields["pin_code"]; v != "" && !ValidatePINCode(v) {
		errors["pin_code"] = "Invalid PIN Code (expected: 6 digits, e.g., 400001)"
	}
	if v := fields["ship_pin_code"]; v != "" && !ValidatePINCode(v) {
		errors["ship_pin_code"] = "Invalid PIN Code (expected: 6 digits, e.g., 400001)"
	}
	if v := fields["phone"]; v != "" && !ValidatePhone(v) {
		errors["phone"] = "Invalid phone number (expected: 10 digits starting with 6-9)"
	}
	if v := fields["email"]; v != "" && !ValidateEmail(v) {
		errors["email"] = "Invalid email format"
	}

	if _, bad := errors["gstin"]; !bad {
		code := strings.TrimSpace(fields["state_code"])
		if prefix := GSTINStateCode(fields["gstin"]); prefix != "" && code != "" && prefix != code {
			errors["state_code"] = fmt.Sprintf("State code %s does not match GSTIN state %s", code, prefix)
		}
	}

	return errors
}

// ValidateClientRecord runs ValidateClientFields over a clients record.
func ValidateClientRecord(r *core.Record) map[string]string {
	fields := make(map[string]string, len(clientFormatFields))
	for _, name := range clientFormatFields {
		fields[name] = r.GetString(name)
	}
	return ValidateClientFields(fields)
}

// Package contact implements the in-memory contact directory: validated
// phone numbers, per-contact records and the address book that keys them
// by name.
//
// None of the types in this package are safe for concurrent use.
package contact

import (
	"errors"
	"fmt"
)

// PhoneLength is the exact number of digits a phone number must have.
const PhoneLength = 10

// ErrInvalidPhone is matched by every ValidationError via errors.Is.
var ErrInvalidPhone = errors.New("contact: invalid phone number")

// Field is a single stringifiable contact value.
type Field interface {
	fmt.Stringer
}

// Verify at compile time that value types implement Field.
var (
	_ Field = Name("")
	_ Field = Phone("")
)

// Name identifies a contact and doubles as its address book key.
type Name string

func (n Name) String() string { return string(n) }

// Phone is a phone number of exactly PhoneLength ASCII digits.
// The zero value is not a valid phone; use NewPhone.
type Phone string

func (p Phone) String() string { return string(p) }

// ValidationError reports why a phone number was rejected.
type ValidationError struct {
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("phone %q: %s", e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidPhone) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidPhone
}

// NewPhone validates s and returns it as a Phone. The digit check runs
// before the length check.
func NewPhone(s string) (Phone, error) {
	if !allDigits(s) {
		return "", &ValidationError{Value: s, Reason: "phone number must contain only digits"}
	}
	if len(s) != PhoneLength {
		return "", &ValidationError{Value: s, Reason: fmt.Sprintf("phone number must be exactly %d digits", PhoneLength)}
	}
	return Phone(s), nil
}

// allDigits reports whether s is non-empty and made only of ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

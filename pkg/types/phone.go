package types

import (
	"unicode"
	"unicode/utf8"
)

// PhoneLength is the exact number of digits in a phone number.
const PhoneLength = 10

// Phone is a phone number of exactly PhoneLength decimal digits.
// The zero value is not a valid Phone; use NewPhone.
type Phone struct {
	value string
}

// NewPhone validates value and returns a Phone.
// Returns a *ValidationError matching ErrPhoneValidation on failure.
func NewPhone(value string) (Phone, error) {
	if !ValidPhone(value) {
		return Phone{}, newPhoneValidationError(value)
	}
	return Phone{value: value}, nil
}

// ValidPhone reports whether value is exactly PhoneLength characters, all
// decimal digits. Any Unicode decimal digit counts, so "１２３４５６７８９０"
// is valid. Edit operations use it to check a new value before mutating a record.
func ValidPhone(value string) bool {
	if utf8.RuneCountInString(value) != PhoneLength {
		return false
	}
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Value returns the stored digits.
func (p Phone) Value() string { return p.value }

func (p Phone) String() string { return p.value }

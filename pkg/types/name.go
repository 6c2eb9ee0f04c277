package types

import "unicode/utf8"

// MinNameLength is the minimum number of characters in a contact name.
const MinNameLength = 2

// Name is a contact name of at least MinNameLength characters.
// The zero value is not a valid Name; use NewName.
type Name struct {
	value string
}

// NewName validates value and returns a Name.
// Returns a *ValidationError matching ErrNameValidation if value is shorter
// than MinNameLength characters.
func NewName(value string) (Name, error) {
	if !ValidName(value) {
		return Name{}, newNameValidationError(value)
	}
	return Name{value: value}, nil
}

// ValidName reports whether value satisfies the Name invariant.
func ValidName(value string) bool {
	return utf8.RuneCountInString(value) >= MinNameLength
}

// Value returns the stored name.
func (n Name) Value() string { return n.value }

func (n Name) String() string { return n.value }

package types

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Record is a named contact holding an ordered list of phone numbers.
// Duplicate phones are allowed.
type Record struct {
	id     string
	name   Name
	phones []Phone
}

// NewRecord creates a Record with no phones.
// Returns a *ValidationError matching ErrNameValidation if name is invalid.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{id: generateUUID(), name: n}, nil
}

// generateUUID generates a new UUID v7 for record IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// ID returns the record's UUID. It never takes part in lookups.
func (r *Record) ID() string { return r.id }

// Name returns the record's name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list in order.
func (r *Record) Phones() []Phone {
	return slices.Clone(r.phones)
}

// AddPhone validates value and appends it to the phone list.
// Returns a *ValidationError matching ErrPhoneValidation if value is invalid.
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to value.
// Returns a *NotFoundError matching ErrNotFound if no phone matches.
func (r *Record) RemovePhone(value string) error {
	i := r.indexOf(value)
	if i < 0 {
		return &NotFoundError{Kind: KindPhone, Value: value}
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return nil
}

// FindPhone returns the first phone equal to value.
// The boolean is false if no phone matches.
func (r *Record) FindPhone(value string) (Phone, bool) {
	i := r.indexOf(value)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// EditPhone replaces oldValue with newValue. newValue is validated first;
// then oldValue is removed and newValue appended, so an edited number moves
// to the end of the list. On error the phone list is unchanged.
func (r *Record) EditPhone(oldValue, newValue string) error {
	if !ValidPhone(newValue) {
		return newPhoneValidationError(newValue)
	}
	if err := r.RemovePhone(oldValue); err != nil {
		return err
	}
	return r.AddPhone(newValue)
}

func (r *Record) indexOf(value string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool {
		return p.value == value
	})
}

// String renders the record as
// "Contact name: {name}, phones: {p1}; {p2}".
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.value
	}
	return "Contact name: " + r.name.value + ", phones: " + strings.Join(values, "; ")
}

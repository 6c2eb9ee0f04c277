package types

import "strings"

// AddressBook maps contact names to records and enumerates them in
// insertion order. It is not safe for concurrent use.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty AddressBook.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores r under its name. An existing record with the same name
// is replaced silently and keeps its position in the enumeration order.
func (b *AddressBook) AddRecord(r *Record) {
	key := r.Name().Value()
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Find returns the record stored under name.
// The boolean is false if no such record exists.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name.
// Returns a *NotFoundError matching ErrNotFound if no such record exists.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return &NotFoundError{Kind: KindRecord, Value: name}
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.order) }

// Names returns the record names in enumeration order.
func (b *AddressBook) Names() []string {
	names := make([]string, len(b.order))
	copy(names, b.order)
	return names
}

// Records returns the records in enumeration order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// String renders each record on its own line, in enumeration order.
func (b *AddressBook) String() string {
	lines := make([]string, 0, len(b.order))
	for _, key := range b.order {
		lines = append(lines, b.records[key].String())
	}
	return strings.Join(lines, "\n")
}

// Package demo runs the reference address book walkthrough: build a book
// with two contacts, edit and look up a phone, then delete a contact.
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// contact is one seeded record.
type contact struct {
	name   string
	phones []string
}

var seed = []contact{
	{name: "John", phones: []string{"1234567890", "5555555555"}},
	{name: "Jane", phones: []string{"9876543210"}},
}

// Run executes the walkthrough and writes each rendering to w.
func Run(w io.Writer, log *slog.Logger) error {
	book := types.NewAddressBook()

	for _, c := range seed {
		rec, err := types.NewRecord(c.name)
		if err != nil {
			return fmt.Errorf("create record %q: %w", c.name, err)
		}
		for _, p := range c.phones {
			if err := rec.AddPhone(p); err != nil {
				return fmt.Errorf("add phone to %q: %w", c.name, err)
			}
		}
		book.AddRecord(rec)
		log.Debug("record added", "name", c.name, "id", rec.ID(), "phones", len(c.phones))
	}

	fmt.Fprintln(w, book)

	john, ok := book.Find("John")
	if !ok {
		return fmt.Errorf("find John: %w", types.ErrNotFound)
	}
	if err := john.EditPhone("1234567890", "1112223333"); err != nil {
		return fmt.Errorf("edit phone: %w", err)
	}
	log.Debug("phone edited", "name", "John", "old", "1234567890", "new", "1112223333")
	fmt.Fprintln(w, john)

	phone, ok := john.FindPhone("5555555555")
	if !ok {
		return fmt.Errorf("find phone: %w", &types.NotFoundError{Kind: types.KindPhone, Value: "5555555555"})
	}
	fmt.Fprintf(w, "%s: %s\n", john.Name(), phone)

	if err := book.Delete("Jane"); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	log.Debug("record deleted", "name", "Jane")
	fmt.Fprintln(w, book)

	return nil
}

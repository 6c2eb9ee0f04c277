// Package contacts is the public entry point for the address book.
// It re-exports the constructors from pkg/types so callers need a single import.
//
// Example:
//
//	book := contacts.NewAddressBook()
//	rec, err := contacts.NewRecord("John")
//	if err != nil {
//	    return err
//	}
//	_ = rec.AddPhone("1234567890")
//	book.AddRecord(rec)
//	fmt.Println(book)
package contacts

import "github.com/mesh-intelligence/addressbook/pkg/types"

// Version is the addressbook release version.
const Version = "0.1.0"

// Re-exported types.
type (
	AddressBook = types.AddressBook
	Record      = types.Record
	Name        = types.Name
	Phone       = types.Phone
)

// Re-exported constructors.
var (
	NewAddressBook = types.NewAddressBook
	NewRecord      = types.NewRecord
	NewName        = types.NewName
	NewPhone       = types.NewPhone
	ValidPhone     = types.ValidPhone
)

// Package types defines the value types, the Record and AddressBook
// containers, and the standard error types for the address book.
package types

package types

import "fmt"

// Field is a validated stored value with string rendering.
// Name and Phone implement it.
type Field interface {
	fmt.Stringer
	Value() string
}

var (
	_ Field = Name{}
	_ Field = Phone{}
)

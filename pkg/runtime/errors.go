package runtime

import "fmt"

// LookupError reports a name absent from the whole environment chain.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("variable '%s' not found", e.Name)
}

// AddressError reports an access outside the allocated store cells.
type AddressError struct {
	Address Address
	Size    int
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("address %d out of bounds (store size %d)", e.Address, e.Size)
}

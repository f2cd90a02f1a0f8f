package runtime

// Address identifies one cell of a Store.
type Address int

// Store is an append-only arena of mutable value cells. Addresses are never
// removed or renumbered.
type Store struct {
	cells []Value
}

func NewStore() *Store {
	return &Store{cells: make([]Value, 0, 64)}
}

// Len reports the number of allocated cells.
func (s *Store) Len() int {
	return len(s.cells)
}

// Next returns the address the following Extend call will hand out.
func (s *Store) Next() Address {
	return Address(len(s.cells))
}

// Extend appends a cell holding val and returns its address.
func (s *Store) Extend(val Value) Address {
	s.cells = append(s.cells, val)
	return Address(len(s.cells) - 1)
}

// Dereference returns the current contents of the cell at addr.
func (s *Store) Dereference(addr Address) (Value, error) {
	if !s.inBounds(addr) {
		return nil, &AddressError{Address: addr, Size: len(s.cells)}
	}
	return s.cells[addr], nil
}

// Assign overwrites the cell at addr. Writes outside the allocated range fail
// and leave the store untouched.
func (s *Store) Assign(addr Address, val Value) error {
	if !s.inBounds(addr) {
		return &AddressError{Address: addr, Size: len(s.cells)}
	}
	s.cells[addr] = val
	return nil
}

func (s *Store) inBounds(addr Address) bool {
	return addr >= 0 && int(addr) < len(s.cells)
}

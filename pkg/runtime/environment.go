package runtime

import "fmt"

// Env is a chain of frames mapping names to store addresses. It has exactly
// two variants: the session's *GlobalEnv and immutable *ExtEnv frames.
type Env interface {
	isEnv()
}

// GlobalEnv is the mutable root frame extended by define.
type GlobalEnv struct {
	names     []string
	addresses []Address
}

func NewGlobalEnv() *GlobalEnv {
	return &GlobalEnv{}
}

func (*GlobalEnv) isEnv() {}

// AddBinding appends name and addr in lockstep. An existing binding of the
// same name is not replaced; lookup keeps returning the first one.
func (g *GlobalEnv) AddBinding(name string, addr Address) {
	g.names = append(g.names, name)
	g.addresses = append(g.addresses, addr)
}

// Names returns the bound names in definition order.
func (g *GlobalEnv) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

func (g *GlobalEnv) lookup(name string) (Address, error) {
	for i, n := range g.names {
		if n == name {
			return g.addresses[i], nil
		}
	}
	return 0, &LookupError{Name: name}
}

// ExtEnv is a frame created per procedure call or let. Its shape never changes
// after construction.
type ExtEnv struct {
	names     []string
	addresses []Address
	parent    Env
}

// NewExtEnv builds a frame binding names to addrs under parent. The slices
// must have equal length.
func NewExtEnv(names []string, addrs []Address, parent Env) *ExtEnv {
	if len(names) != len(addrs) {
		panic(fmt.Sprintf("runtime: frame has %d names but %d addresses", len(names), len(addrs)))
	}
	if parent == nil {
		panic("runtime: extension frame requires a parent")
	}
	return &ExtEnv{names: names, addresses: addrs, parent: parent}
}

func (*ExtEnv) isEnv() {}

// Parent exposes the enclosing frame.
func (e *ExtEnv) Parent() Env {
	return e.parent
}

// Names returns the names bound directly in this frame.
func (e *ExtEnv) Names() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

// Lookup resolves name to an address, searching outward to the global frame.
func Lookup(env Env, name string) (Address, error) {
	for {
		switch e := env.(type) {
		case *GlobalEnv:
			return e.lookup(name)
		case *ExtEnv:
			for i, n := range e.names {
				if n == name {
					return e.addresses[i], nil
				}
			}
			env = e.parent
		default:
			return 0, &LookupError{Name: name}
		}
	}
}

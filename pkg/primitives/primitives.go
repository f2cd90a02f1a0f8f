package primitives

import (
	"fmt"
	"sort"

	"l21/interpreter-go/pkg/runtime"
)

// PrimitiveError reports an unknown operator or a bad argument list.
type PrimitiveError struct {
	Op      string
	Message string
}

func (e *PrimitiveError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func failf(op, format string, args ...any) error {
	return &PrimitiveError{Op: op, Message: fmt.Sprintf(format, args...)}
}

type primitive struct {
	name    string
	minArgs int
	maxArgs int // -1 for variadic
	fn      func(op string, args []runtime.Value) (runtime.Value, error)
}

// Table maps operator symbols to their implementations.
type Table struct {
	ops map[string]*primitive
}

var builtin = []*primitive{
	{"+", 0, -1, add},
	{"-", 1, -1, sub},
	{"*", 0, -1, mul},
	{"/", 1, -1, div},
	{"<", 2, 2, compareWith(func(c int) bool { return c < 0 })},
	{">", 2, 2, compareWith(func(c int) bool { return c > 0 })},
	{"=", 2, 2, compareWith(func(c int) bool { return c == 0 })},
	{"not", 1, 1, not},
	{"and", 2, 2, and},
	{"or", 2, 2, or},
	{"eq?", 2, 2, eq},
	{"string=?", 2, 2, stringEq},
	{"cons", 2, 2, cons},
	{"car", 1, 1, car},
	{"cdr", 1, 1, cdr},
	{"list", 0, -1, list},
	{"pair?", 1, 1, isKind(runtime.KindPair)},
	{"list?", 1, 1, isList},
	{"number?", 1, 1, isKind(runtime.KindNumber)},
	{"boolean?", 1, 1, isKind(runtime.KindBool)},
	{"symbol?", 1, 1, isKind(runtime.KindSymbol)},
	{"string?", 1, 1, isKind(runtime.KindString)},
}

var defaultTable = newTable(builtin)

func newTable(entries []*primitive) *Table {
	t := &Table{ops: make(map[string]*primitive, len(entries))}
	for _, p := range entries {
		t.ops[p.name] = p
	}
	return t
}

// Default returns the full operator table.
func Default() *Table {
	return defaultTable
}

// Restrict returns a table holding only the allowed operators.
func (t *Table) Restrict(allowed []string) (*Table, error) {
	entries := make([]*primitive, 0, len(allowed))
	for _, name := range allowed {
		p, ok := t.ops[name]
		if !ok {
			return nil, fmt.Errorf("primitives: unknown operator %q", name)
		}
		entries = append(entries, p)
	}
	return newTable(entries), nil
}

// Has reports whether op is registered in the table.
func (t *Table) Has(op string) bool {
	_, ok := t.ops[op]
	return ok
}

// Names returns the registered operators in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.ops))
	for name := range t.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply invokes op on already evaluated arguments.
func (t *Table) Apply(op string, args []runtime.Value) (runtime.Value, error) {
	p, ok := t.ops[op]
	if !ok {
		return nil, failf(op, "unknown primitive operator")
	}
	if len(args) < p.minArgs || (p.maxArgs >= 0 && len(args) > p.maxArgs) {
		return nil, failf(op, "wrong number of arguments: %d", len(args))
	}
	return p.fn(op, args)
}

// IsPrimitive reports whether op names a built-in operator.
func IsPrimitive(op string) bool {
	return defaultTable.Has(op)
}

// Apply invokes op from the default table.
func Apply(op string, args []runtime.Value) (runtime.Value, error) {
	return defaultTable.Apply(op, args)
}

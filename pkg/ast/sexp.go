package ast

import "github.com/nukata/goarith"

// SExp is a quoted datum. The set of variants is closed.
type SExp interface {
	sexpNode()
}

type NumberSExp struct {
	Value goarith.Number
}

type BoolSExp struct {
	Value bool
}

type StringSExp struct {
	Value string
}

type SymbolSExp struct {
	Name string
}

// EmptySExp is the empty list '().
type EmptySExp struct{}

type CompoundSExp struct {
	Car SExp
	Cdr SExp
}

func (NumberSExp) sexpNode()    {}
func (BoolSExp) sexpNode()      {}
func (StringSExp) sexpNode()    {}
func (SymbolSExp) sexpNode()    {}
func (EmptySExp) sexpNode()     {}
func (*CompoundSExp) sexpNode() {}

// ListSExp builds a proper list from items.
func ListSExp(items ...SExp) SExp {
	var out SExp = EmptySExp{}
	for i := len(items) - 1; i >= 0; i-- {
		out = &CompoundSExp{Car: items[i], Cdr: out}
	}
	return out
}

package runtime

import (
	"fmt"

	"github.com/nukata/goarith"

	"l21/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindBool
	KindString
	KindSymbol
	KindEmpty
	KindPair
	KindPrimOp
	KindClosure
	KindVoid
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindEmpty:
		return "empty"
	case KindPair:
		return "pair"
	case KindPrimOp:
		return "primitive"
	case KindClosure:
		return "closure"
	case KindVoid:
		return "void"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NumberValue struct {
	Val goarith.Number
}

func (v NumberValue) Kind() Kind { return KindNumber }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

//-----------------------------------------------------------------------------
// Quoted data
//-----------------------------------------------------------------------------

type SymbolValue struct {
	Name string
}

func (v SymbolValue) Kind() Kind { return KindSymbol }

// EmptyValue is the empty list.
type EmptyValue struct{}

func (EmptyValue) Kind() Kind { return KindEmpty }

type PairValue struct {
	Car Value
	Cdr Value
}

func (v *PairValue) Kind() Kind { return KindPair }

// List builds a proper list out of items.
func List(items ...Value) Value {
	var out Value = EmptyValue{}
	for i := len(items) - 1; i >= 0; i-- {
		out = &PairValue{Car: items[i], Cdr: out}
	}
	return out
}

// LiteralValue converts a quoted datum into its runtime value.
func LiteralValue(datum ast.SExp) Value {
	switch d := datum.(type) {
	case ast.NumberSExp:
		return NumberValue{Val: d.Value}
	case ast.BoolSExp:
		return BoolValue{Val: d.Value}
	case ast.StringSExp:
		return StringValue{Val: d.Value}
	case ast.SymbolSExp:
		return SymbolValue{Name: d.Name}
	case *ast.CompoundSExp:
		return &PairValue{Car: LiteralValue(d.Car), Cdr: LiteralValue(d.Cdr)}
	default:
		return EmptyValue{}
	}
}

//-----------------------------------------------------------------------------
// Procedures
//-----------------------------------------------------------------------------

// PrimOpValue is a primitive operator used as a first-class value.
type PrimOpValue struct {
	Op string
}

func (v PrimOpValue) Kind() Kind { return KindPrimOp }

// Closure pairs formal parameters and a body with the environment active when
// the lambda was evaluated.
type Closure struct {
	Params []string
	Body   []ast.Exp
	Env    Env
}

func (v *Closure) Kind() Kind { return KindClosure }

// VoidValue is the result of set! and of a sequence that ends in a define.
type VoidValue struct{}

func (VoidValue) Kind() Kind { return KindVoid }

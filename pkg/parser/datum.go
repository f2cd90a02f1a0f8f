package parser

import (
	"github.com/steelseries/golisp"

	"l21/interpreter-go/pkg/ast"
)

func isAtom(form *golisp.Data) bool {
	return !golisp.PairP(form) || golisp.NilP(form)
}

func symbolP(form *golisp.Data) bool {
	return form != nil && golisp.SymbolP(form)
}

func isSymbol(form *golisp.Data, name string) bool {
	return symbolP(form) && golisp.StringValue(form) == name
}

// listItems returns the elements of a proper list. The empty list yields an
// empty slice; atoms and improper lists report false.
func listItems(form *golisp.Data) ([]*golisp.Data, bool) {
	var items []*golisp.Data
	for cell := form; !golisp.NilP(cell); cell = golisp.Cdr(cell) {
		if !golisp.PairP(cell) {
			return nil, false
		}
		items = append(items, golisp.Car(cell))
	}
	return items, true
}

// parseDatum converts quoted syntax into a literal value.
func (r *reader) parseDatum(form *golisp.Data) (ast.SExp, error) {
	switch {
	case golisp.NilP(form):
		return ast.EmptySExp{}, nil
	case golisp.BooleanP(form):
		return ast.BoolSExp{Value: golisp.BooleanValue(form)}, nil
	case golisp.NumberP(form):
		n, ok := r.number(form)
		if !ok {
			return nil, syntaxErrorf(form, "parser: unreadable number")
		}
		return ast.NumberSExp{Value: n}, nil
	case golisp.StringP(form):
		return ast.StringSExp{Value: golisp.StringValue(form)}, nil
	case symbolP(form):
		return ast.SymbolSExp{Name: golisp.StringValue(form)}, nil
	case golisp.PairP(form):
		car, err := r.parseDatum(golisp.Car(form))
		if err != nil {
			return nil, err
		}
		cdr, err := r.parseDatum(golisp.Cdr(form))
		if err != nil {
			return nil, err
		}
		return &ast.CompoundSExp{Car: car, Cdr: cdr}, nil
	default:
		return nil, syntaxErrorf(form, "parser: unsupported datum")
	}
}

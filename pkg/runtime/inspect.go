package runtime

import (
	"strconv"
	"strings"
)

// Inspect renders a value in Scheme notation.
func Inspect(val Value) string {
	var b strings.Builder
	writeValue(&b, val)
	return b.String()
}

func writeValue(b *strings.Builder, val Value) {
	switch v := val.(type) {
	case nil:
		b.WriteString("<nil>")
	case NumberValue:
		if v.Val == nil {
			b.WriteString("0")
			return
		}
		b.WriteString(v.Val.String())
	case BoolValue:
		if v.Val {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case StringValue:
		b.WriteString(strconv.Quote(v.Val))
	case SymbolValue:
		b.WriteString(v.Name)
	case EmptyValue:
		b.WriteString("()")
	case *PairValue:
		writePair(b, v)
	case PrimOpValue:
		b.WriteString("#<primitive ")
		b.WriteString(v.Op)
		b.WriteString(">")
	case *Closure:
		b.WriteString("#<procedure (")
		b.WriteString(strings.Join(v.Params, " "))
		b.WriteString(")>")
	case VoidValue:
		b.WriteString("#<void>")
	default:
		b.WriteString("#<")
		b.WriteString(val.Kind().String())
		b.WriteString(">")
	}
}

func writePair(b *strings.Builder, p *PairValue) {
	b.WriteString("(")
	writeValue(b, p.Car)
	rest := p.Cdr
	for {
		next, ok := rest.(*PairValue)
		if !ok {
			break
		}
		b.WriteString(" ")
		writeValue(b, next.Car)
		rest = next.Cdr
	}
	if _, ok := rest.(EmptyValue); !ok {
		b.WriteString(" . ")
		writeValue(b, rest)
	}
	b.WriteString(")")
}

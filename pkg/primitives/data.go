package primitives

import (
	"l21/interpreter-go/pkg/runtime"
)

func not(_ string, args []runtime.Value) (runtime.Value, error) {
	b, ok := args[0].(runtime.BoolValue)
	return runtime.BoolValue{Val: ok && !b.Val}, nil
}

func booleans(op string, args []runtime.Value) (bool, bool, error) {
	l, lok := args[0].(runtime.BoolValue)
	r, rok := args[1].(runtime.BoolValue)
	if !lok || !rok {
		return false, false, failf(op, "arguments must be booleans")
	}
	return l.Val, r.Val, nil
}

func and(op string, args []runtime.Value) (runtime.Value, error) {
	l, r, err := booleans(op, args)
	if err != nil {
		return nil, err
	}
	return runtime.BoolValue{Val: l && r}, nil
}

func or(op string, args []runtime.Value) (runtime.Value, error) {
	l, r, err := booleans(op, args)
	if err != nil {
		return nil, err
	}
	return runtime.BoolValue{Val: l || r}, nil
}

// eq compares atoms by value and everything else by identity.
func eq(_ string, args []runtime.Value) (runtime.Value, error) {
	return runtime.BoolValue{Val: identical(args[0], args[1])}, nil
}

func identical(a, b runtime.Value) bool {
	switch x := a.(type) {
	case runtime.NumberValue:
		y, ok := b.(runtime.NumberValue)
		return ok && x.Val != nil && y.Val != nil && x.Val.Cmp(y.Val) == 0
	case runtime.BoolValue, runtime.StringValue, runtime.SymbolValue, runtime.EmptyValue, runtime.PrimOpValue:
		return a == b
	case *runtime.PairValue:
		y, ok := b.(*runtime.PairValue)
		return ok && x == y
	case *runtime.Closure:
		y, ok := b.(*runtime.Closure)
		return ok && x == y
	default:
		return false
	}
}

func stringEq(op string, args []runtime.Value) (runtime.Value, error) {
	l, lok := args[0].(runtime.StringValue)
	r, rok := args[1].(runtime.StringValue)
	if !lok || !rok {
		return nil, failf(op, "arguments must be strings")
	}
	return runtime.BoolValue{Val: l.Val == r.Val}, nil
}

func cons(_ string, args []runtime.Value) (runtime.Value, error) {
	return &runtime.PairValue{Car: args[0], Cdr: args[1]}, nil
}

func car(op string, args []runtime.Value) (runtime.Value, error) {
	p, ok := args[0].(*runtime.PairValue)
	if !ok {
		return nil, failf(op, "expected a pair, got %s", runtime.Inspect(args[0]))
	}
	return p.Car, nil
}

func cdr(op string, args []runtime.Value) (runtime.Value, error) {
	p, ok := args[0].(*runtime.PairValue)
	if !ok {
		return nil, failf(op, "expected a pair, got %s", runtime.Inspect(args[0]))
	}
	return p.Cdr, nil
}

func list(_ string, args []runtime.Value) (runtime.Value, error) {
	return runtime.List(args...), nil
}

func isList(_ string, args []runtime.Value) (runtime.Value, error) {
	v := args[0]
	for {
		switch p := v.(type) {
		case runtime.EmptyValue:
			return runtime.BoolValue{Val: true}, nil
		case *runtime.PairValue:
			v = p.Cdr
		default:
			return runtime.BoolValue{Val: false}, nil
		}
	}
}

func isKind(kind runtime.Kind) func(string, []runtime.Value) (runtime.Value, error) {
	return func(_ string, args []runtime.Value) (runtime.Value, error) {
		return runtime.BoolValue{Val: args[0] != nil && args[0].Kind() == kind}, nil
	}
}

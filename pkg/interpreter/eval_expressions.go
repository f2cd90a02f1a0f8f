package interpreter

import (
	"fmt"
	"log/slog"

	"l21/interpreter-go/pkg/ast"
	"l21/interpreter-go/pkg/runtime"
)

func (s *Session) evaluateExpression(node ast.CExp, env runtime.Env) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumExp:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.BoolExp:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.StrExp:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.LitExp:
		return runtime.LiteralValue(n.Value), nil
	case *ast.PrimOp:
		return runtime.PrimOpValue{Op: n.Op}, nil
	case *ast.VarRef:
		return s.evaluateVarRef(n, env)
	case *ast.IfExp:
		return s.evaluateIf(n, env)
	case *ast.ProcExp:
		return makeClosure(n, env), nil
	case *ast.AppExp:
		return s.evaluateApplication(n, env)
	case *ast.LetExp:
		return s.evaluateLet(n, env)
	case *ast.SetExp:
		return s.evaluateSet(n, env)
	default:
		return nil, fmt.Errorf("unsupported expression type: %T", node)
	}
}

func (s *Session) evaluateVarRef(ref *ast.VarRef, env runtime.Env) (runtime.Value, error) {
	addr, err := runtime.Lookup(env, ref.Name)
	if err != nil {
		return nil, err
	}
	return s.store.Dereference(addr)
}

func (s *Session) evaluateIf(expr *ast.IfExp, env runtime.Env) (runtime.Value, error) {
	test, err := s.evaluateExpression(expr.Test, env)
	if err != nil {
		return nil, err
	}
	if isTruthy(test) {
		return s.evaluateExpression(expr.Then, env)
	}
	return s.evaluateExpression(expr.Alt, env)
}

// isTruthy treats every value except #f as true.
func isTruthy(val runtime.Value) bool {
	b, ok := val.(runtime.BoolValue)
	return !ok || b.Val
}

func makeClosure(proc *ast.ProcExp, env runtime.Env) *runtime.Closure {
	params := make([]string, len(proc.Params))
	for i, p := range proc.Params {
		params[i] = p.Name
	}
	return &runtime.Closure{Params: params, Body: proc.Body, Env: env}
}

func (s *Session) evaluateApplication(app *ast.AppExp, env runtime.Env) (runtime.Value, error) {
	rator, err := s.evaluateExpression(app.Rator, env)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, 0, len(app.Rands))
	for _, rand := range app.Rands {
		val, err := s.evaluateExpression(rand, env)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	return s.applyProcedure(rator, args)
}

func (s *Session) applyProcedure(proc runtime.Value, args []runtime.Value) (runtime.Value, error) {
	switch fn := proc.(type) {
	case runtime.PrimOpValue:
		return s.primitives.Apply(fn.Op, args)
	case *runtime.Closure:
		if len(fn.Params) != len(args) {
			return nil, &ArityError{Params: fn.Params, Got: len(args)}
		}
		frame := s.bindFresh(fn.Params, args, fn.Env)
		s.logger.Debug("apply closure",
			slog.Any("params", fn.Params),
			slog.Int("store-size", s.store.Len()))
		return s.evalSequence(fn.Body, frame)
	default:
		return nil, &BadProcedureError{Value: proc}
	}
}

// bindFresh allocates one cell per value, in order, and chains a frame naming
// those cells onto parent.
func (s *Session) bindFresh(names []string, vals []runtime.Value, parent runtime.Env) *runtime.ExtEnv {
	addrs := make([]runtime.Address, len(vals))
	for i, val := range vals {
		addrs[i] = s.store.Extend(val)
	}
	return runtime.NewExtEnv(names, addrs, parent)
}

func (s *Session) evaluateLet(expr *ast.LetExp, env runtime.Env) (runtime.Value, error) {
	names := make([]string, len(expr.Bindings))
	vals := make([]runtime.Value, len(expr.Bindings))
	for i, b := range expr.Bindings {
		val, err := s.evaluateExpression(b.Val, env)
		if err != nil {
			return nil, err
		}
		names[i] = b.Var.Name
		vals[i] = val
	}
	frame := s.bindFresh(names, vals, env)
	s.logger.Debug("let frame",
		slog.Any("names", names),
		slog.Int("store-size", s.store.Len()))
	return s.evalSequence(expr.Body, frame)
}

func (s *Session) evaluateSet(expr *ast.SetExp, env runtime.Env) (runtime.Value, error) {
	if expr.Val == nil {
		return nil, ErrEmptySetValue
	}
	val, err := s.evaluateExpression(expr.Val, env)
	if err != nil {
		return nil, err
	}
	addr, err := runtime.Lookup(env, expr.Var.Name)
	if err != nil {
		return nil, err
	}
	if err := s.store.Assign(addr, val); err != nil {
		return nil, err
	}
	return runtime.VoidValue{}, nil
}

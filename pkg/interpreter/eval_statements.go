package interpreter

import (
	"fmt"
	"log/slog"

	"l21/interpreter-go/pkg/ast"
	"l21/interpreter-go/pkg/runtime"
)

// evalSequence evaluates exps left to right in env. A define binds its name in
// the global frame and evaluation continues; the value of the last
// expression is the value of the sequence.
func (s *Session) evalSequence(exps []ast.Exp, env runtime.Env) (runtime.Value, error) {
	if len(exps) == 0 {
		return nil, ErrEmptySequence
	}
	var result runtime.Value = runtime.VoidValue{}
	for _, exp := range exps {
		switch n := exp.(type) {
		case *ast.DefineExp:
			if err := s.evaluateDefine(n, env); err != nil {
				return nil, err
			}
			result = runtime.VoidValue{}
		case ast.CExp:
			val, err := s.evaluateExpression(n, env)
			if err != nil {
				return nil, err
			}
			result = val
		default:
			return nil, fmt.Errorf("unsupported expression type: %T", exp)
		}
	}
	return result, nil
}

// evaluateDefine evaluates the value in env, the environment of the running
// sequence, and always binds the name in the global frame.
func (s *Session) evaluateDefine(def *ast.DefineExp, env runtime.Env) error {
	val, err := s.evaluateExpression(def.Val, env)
	if err != nil {
		return err
	}
	addr := s.store.Extend(val)
	s.global.AddBinding(def.Var.Name, addr)
	s.logger.Debug("define",
		slog.String("name", def.Var.Name),
		slog.Int("address", int(addr)))
	return nil
}

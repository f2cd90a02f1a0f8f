package interpreter

import (
	"errors"
	"testing"

	"l21/interpreter-go/pkg/ast"
	"l21/interpreter-go/pkg/parser"
	"l21/interpreter-go/pkg/primitives"
	"l21/interpreter-go/pkg/runtime"
)

func TestApplyingNonProcedureIsBadProcedure(t *testing.T) {
	s := NewSession()
	_, err := s.EvaluateSource(`(5 6)`)
	var bad *BadProcedureError
	if !errors.As(err, &bad) {
		t.Fatalf("expected BadProcedureError, got %v", err)
	}
	if n, ok := bad.Value.(runtime.NumberValue); !ok || n.Val.String() != "5" {
		t.Fatalf("expected offending value 5, got %s", runtime.Inspect(bad.Value))
	}
	if bad.Error() != "bad procedure 5" {
		t.Fatalf("unexpected message %q", bad.Error())
	}
}

func TestUndefinedVariableIsLookupError(t *testing.T) {
	s := NewSession()
	_, err := s.EvaluateSource(`(+ 1 missing)`)
	var lookupErr *runtime.LookupError
	if !errors.As(err, &lookupErr) || lookupErr.Name != "missing" {
		t.Fatalf("expected LookupError for missing, got %v", err)
	}
}

func TestEmptyProgramAndBody(t *testing.T) {
	s := NewSession()
	if _, err := s.EvaluateProgram(ast.Prog()); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence for empty program, got %v", err)
	}
	if _, err := s.EvaluateSource(``); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence for empty source, got %v", err)
	}
	if _, err := s.EvaluateSource(`((lambda ()))`); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence for empty body, got %v", err)
	}
	if _, err := s.EvaluateSource(`(let ((a 1)))`); !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence for empty let body, got %v", err)
	}
}

func TestEmptySetValue(t *testing.T) {
	s := NewSession()
	mustEvaluateSource(t, s, `(define x 1)`)
	before := s.Store().Len()
	if _, err := s.EvaluateSource(`(set! x)`); !errors.Is(err, ErrEmptySetValue) {
		t.Fatalf("expected ErrEmptySetValue, got %v", err)
	}
	if s.Store().Len() != before {
		t.Fatalf("failed set! must not grow the store")
	}
}

func TestSetUnboundVariable(t *testing.T) {
	s := NewSession()
	_, err := s.EvaluateExpression(ast.Set("ghost", ast.Num(1)))
	var lookupErr *runtime.LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupError, got %v", err)
	}
}

func TestPrimitiveErrorsPropagateUnchanged(t *testing.T) {
	s := NewSession()
	_, err := s.EvaluateSource(`(car '())`)
	var primErr *primitives.PrimitiveError
	if !errors.As(err, &primErr) || primErr.Op != "car" {
		t.Fatalf("expected PrimitiveError from car, got %v", err)
	}
	if _, ok := err.(*primitives.PrimitiveError); !ok {
		t.Fatalf("primitive error should not be wrapped, got %T", err)
	}
}

func TestClosureArityMismatch(t *testing.T) {
	s := NewSession()
	mustEvaluateSource(t, s, `(define pair-up (lambda (a b) (cons a b)))`)
	before := s.Store().Len()
	_, err := s.EvaluateSource(`(pair-up 1)`)
	var arityErr *ArityError
	if !errors.As(err, &arityErr) {
		t.Fatalf("expected ArityError, got %v", err)
	}
	if len(arityErr.Params) != 2 || arityErr.Got != 1 {
		t.Fatalf("unexpected arity details %#v", arityErr)
	}
	if s.Store().Len() != before {
		t.Fatalf("arity failure must not allocate cells")
	}
}

func TestErrorsShortCircuitLeftToRight(t *testing.T) {
	s := NewSession()
	mustEvaluateSource(t, s, `(define grow (lambda (v) (let ((cell v)) cell)))`)
	before := s.Store().Len()
	_, err := s.EvaluateSource(`(list (grow 1) missing (grow 2))`)
	var lookupErr *runtime.LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupError, got %v", err)
	}
	// (grow 1) allocates a parameter cell and a let cell; (grow 2) never runs.
	if got := s.Store().Len() - before; got != 2 {
		t.Fatalf("expected 2 cells from the first operand only, got %d", got)
	}
}

func TestFailedDefineDoesNotBind(t *testing.T) {
	s := NewSession()
	if _, err := s.EvaluateSource(`(define x (car '()))`); err == nil {
		t.Fatalf("expected define to fail")
	}
	if _, err := runtime.Lookup(s.Global(), "x"); err == nil {
		t.Fatalf("failed define must not bind x")
	}
	if s.Store().Len() != 0 {
		t.Fatalf("failed define must not allocate a cell")
	}
}

func TestSyntaxErrorStopsEvaluation(t *testing.T) {
	s := NewSession()
	_, err := s.EvaluateSource(`(define x 1) (if x)`)
	var syntaxErr *parser.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if _, err := runtime.Lookup(s.Global(), "x"); err == nil {
		t.Fatalf("nothing should be evaluated after a syntax error")
	}
}

func TestUnbalancedSourceEvaluatesNothing(t *testing.T) {
	s := NewSession()
	_, err := s.EvaluateSource(`(define x 1)) (undefined-fn`)
	var syntaxErr *parser.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if s.Store().Len() != 0 {
		t.Fatalf("expected empty store, got %d cells", s.Store().Len())
	}
	if _, err := runtime.Lookup(s.Global(), "x"); err == nil {
		t.Fatalf("x must not be bound when the source is unbalanced")
	}
}

func TestNilExpressionIsRejected(t *testing.T) {
	s := NewSession()
	if _, err := s.EvaluateProgram(ast.Prog(nil)); err == nil {
		t.Fatalf("expected an error for a nil expression")
	}
	if _, err := s.EvaluateExpression(nil); err == nil {
		t.Fatalf("expected an error for a nil top-level expression")
	}
}

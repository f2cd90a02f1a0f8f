package interpreter

import (
	"math/big"
	"testing"

	"github.com/nukata/goarith"

	"l21/interpreter-go/pkg/runtime"
)

func mustEvaluateSource(t *testing.T, s *Session, source string) runtime.Value {
	t.Helper()
	val, err := s.EvaluateSource(source)
	if err != nil {
		t.Fatalf("evaluating %q failed: %v", source, err)
	}
	return val
}

func assertNumber(t *testing.T, val runtime.Value, want int64) {
	t.Helper()
	num, ok := val.(runtime.NumberValue)
	if !ok {
		t.Fatalf("expected number %d, got %s", want, runtime.Inspect(val))
	}
	if num.Val.Cmp(goarith.AsNumber(big.NewInt(want))) != 0 {
		t.Fatalf("expected %d, got %s", want, num.Val.String())
	}
}

func assertInspect(t *testing.T, val runtime.Value, want string) {
	t.Helper()
	if got := runtime.Inspect(val); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

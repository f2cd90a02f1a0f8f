package interpreter

import (
	"errors"
	"fmt"

	"l21/interpreter-go/pkg/runtime"
)

var (
	// ErrEmptySequence is returned for an empty program or procedure body.
	ErrEmptySequence = errors.New("empty sequence")
	// ErrEmptySetValue is returned for a set! without a value expression.
	ErrEmptySetValue = errors.New("empty set! value")
)

// BadProcedureError reports an application whose operator is neither a
// primitive nor a closure.
type BadProcedureError struct {
	Value runtime.Value
}

func (e *BadProcedureError) Error() string {
	return fmt.Sprintf("bad procedure %s", runtime.Inspect(e.Value))
}

// ArityError reports a closure applied to the wrong number of arguments.
type ArityError struct {
	Params []string
	Got    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity mismatch: procedure %s expects %d arguments, got %d", formatParams(e.Params), len(e.Params), e.Got)
}

func formatParams(params []string) string {
	return runtime.Inspect(&runtime.Closure{Params: params})
}

package parser

import (
	"errors"
	"fmt"

	"github.com/steelseries/golisp"

	"l21/interpreter-go/pkg/ast"
)

// programKeyword heads the (L21 exp ...) program form.
const programKeyword = "L21"

// SyntaxError reports malformed program text.
type SyntaxError struct {
	Message string
	Form    string
}

func (e *SyntaxError) Error() string {
	if e.Form == "" {
		return e.Message
	}
	return fmt.Sprintf("%s in %s", e.Message, e.Form)
}

func syntaxErrorf(form *golisp.Data, format string, args ...any) error {
	err := &SyntaxError{Message: fmt.Sprintf(format, args...)}
	if form != nil {
		err.Form = golisp.String(form)
	}
	return err
}

func wrapSyntaxError(form *golisp.Data, err error) error {
	if err == nil {
		return nil
	}
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr
	}
	return syntaxErrorf(form, "parser: %v", err)
}

// ParseProgram parses text holding exactly one (L21 exp ...) form.
func ParseProgram(text string) (*ast.Program, error) {
	r := newReader(text)
	forms, err := r.readAll()
	if err != nil {
		return nil, err
	}
	if len(forms) != 1 {
		return nil, syntaxErrorf(nil, "parser: program must be a single (%s exp ...) form, found %d forms", programKeyword, len(forms))
	}
	items, ok := listItems(forms[0])
	if !ok || len(items) == 0 || !isSymbol(items[0], programKeyword) {
		return nil, syntaxErrorf(forms[0], "parser: program must have the form (%s exp ...)", programKeyword)
	}
	return r.parseTopLevel(items[1:])
}

// ParseSource parses a sequence of top-level forms. A lone (L21 ...) form is
// treated as a program.
func ParseSource(text string) (*ast.Program, error) {
	r := newReader(text)
	forms, err := r.readAll()
	if err != nil {
		return nil, err
	}
	if len(forms) == 1 {
		if head, ok := listItems(forms[0]); ok && len(head) > 0 && isSymbol(head[0], programKeyword) {
			return r.parseTopLevel(head[1:])
		}
	}
	return r.parseTopLevel(forms)
}

// ParseExpression parses exactly one form, which may be a define.
func ParseExpression(text string) (ast.Exp, error) {
	program, err := ParseSource(text)
	if err != nil {
		return nil, err
	}
	if len(program.Exps) != 1 {
		return nil, &SyntaxError{Message: fmt.Sprintf("parser: expected one expression, found %d", len(program.Exps))}
	}
	return program.Exps[0], nil
}

func (r *reader) parseTopLevel(forms []*golisp.Data) (*ast.Program, error) {
	exps, err := r.parseSequence(forms)
	if err != nil {
		return nil, err
	}
	return ast.NewProgram(exps), nil
}

package parser

import (
	"github.com/steelseries/golisp"

	"l21/interpreter-go/pkg/ast"
	"l21/interpreter-go/pkg/primitives"
)

const (
	keywordDefine = "define"
	keywordLambda = "lambda"
	keywordIf     = "if"
	keywordLet    = "let"
	keywordSet    = "set!"
	keywordQuote  = "quote"
)

var specialForms = map[string]bool{
	keywordDefine:  true,
	keywordLambda:  true,
	keywordIf:      true,
	keywordLet:     true,
	keywordSet:     true,
	keywordQuote:   true,
	programKeyword: true,
}

// parseSequence parses program or body forms, where define is permitted.
func (r *reader) parseSequence(forms []*golisp.Data) ([]ast.Exp, error) {
	exps := make([]ast.Exp, 0, len(forms))
	for _, form := range forms {
		exp, err := r.parseExp(form)
		if err != nil {
			return nil, err
		}
		exps = append(exps, exp)
	}
	return exps, nil
}

func (r *reader) parseExp(form *golisp.Data) (ast.Exp, error) {
	if items, ok := listItems(form); ok && len(items) > 0 && isSymbol(items[0], keywordDefine) {
		return r.parseDefine(form, items)
	}
	return r.parseCExp(form)
}

func (r *reader) parseCExp(form *golisp.Data) (ast.CExp, error) {
	if golisp.NilP(form) {
		return nil, syntaxErrorf(form, "parser: empty combination")
	}
	if isAtom(form) {
		return r.parseAtomic(form)
	}
	items, ok := listItems(form)
	if !ok {
		return nil, syntaxErrorf(form, "parser: improper list is not an expression")
	}
	if len(items) == 0 {
		return nil, syntaxErrorf(form, "parser: empty combination")
	}
	if symbolP(items[0]) {
		switch golisp.StringValue(items[0]) {
		case keywordDefine:
			return nil, syntaxErrorf(form, "parser: define is not allowed in expression position")
		case keywordLambda:
			return r.parseProc(form, items)
		case keywordIf:
			return r.parseIf(form, items)
		case keywordLet:
			return r.parseLet(form, items)
		case keywordSet:
			return r.parseSet(form, items)
		case keywordQuote:
			if len(items) != 2 {
				return nil, syntaxErrorf(form, "parser: quote expects one datum")
			}
			datum, err := r.parseDatum(items[1])
			if err != nil {
				return nil, err
			}
			return ast.NewLitExp(datum), nil
		case programKeyword:
			return nil, syntaxErrorf(form, "parser: %s form is only allowed at top level", programKeyword)
		}
	}
	return r.parseApp(form, items)
}

func (r *reader) parseAtomic(form *golisp.Data) (ast.CExp, error) {
	switch {
	case golisp.BooleanP(form):
		return ast.NewBoolExp(golisp.BooleanValue(form)), nil
	case golisp.NumberP(form):
		n, ok := r.number(form)
		if !ok {
			return nil, syntaxErrorf(form, "parser: unreadable number")
		}
		return ast.NewNumExp(n), nil
	case golisp.StringP(form):
		return ast.NewStrExp(golisp.StringValue(form)), nil
	case symbolP(form):
		name := golisp.StringValue(form)
		if primitives.IsPrimitive(name) {
			return ast.NewPrimOp(name), nil
		}
		if specialForms[name] {
			return nil, syntaxErrorf(form, "parser: keyword %s used as a variable", name)
		}
		return ast.NewVarRef(name), nil
	default:
		return nil, syntaxErrorf(form, "parser: unsupported atom")
	}
}

func (r *reader) parseDefine(form *golisp.Data, items []*golisp.Data) (ast.Exp, error) {
	if len(items) < 3 {
		return nil, syntaxErrorf(form, "parser: define expects a name and a value")
	}
	// (define (name param ...) body ...) is sugar for a lambda.
	if header, ok := listItems(items[1]); ok && !isAtom(items[1]) {
		if len(header) == 0 {
			return nil, syntaxErrorf(form, "parser: define is missing a procedure name")
		}
		name, err := r.parseVarDecl(header[0])
		if err != nil {
			return nil, err
		}
		params, err := r.parseParams(form, header[1:])
		if err != nil {
			return nil, err
		}
		body, err := r.parseSequence(items[2:])
		if err != nil {
			return nil, err
		}
		return ast.NewDefineExp(name, ast.NewProcExp(params, body)), nil
	}
	if len(items) != 3 {
		return nil, syntaxErrorf(form, "parser: define expects exactly one value")
	}
	name, err := r.parseVarDecl(items[1])
	if err != nil {
		return nil, err
	}
	val, err := r.parseCExp(items[2])
	if err != nil {
		return nil, err
	}
	return ast.NewDefineExp(name, val), nil
}

func (r *reader) parseVarDecl(form *golisp.Data) (*ast.VarDecl, error) {
	if !symbolP(form) {
		return nil, syntaxErrorf(form, "parser: expected a variable name")
	}
	name := golisp.StringValue(form)
	if specialForms[name] || primitives.IsPrimitive(name) {
		return nil, syntaxErrorf(form, "parser: %s cannot be bound", name)
	}
	return ast.NewVarDecl(name), nil
}

func (r *reader) parseParams(form *golisp.Data, items []*golisp.Data) ([]*ast.VarDecl, error) {
	params := make([]*ast.VarDecl, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		decl, err := r.parseVarDecl(item)
		if err != nil {
			return nil, err
		}
		if seen[decl.Name] {
			return nil, syntaxErrorf(form, "parser: duplicate parameter %s", decl.Name)
		}
		seen[decl.Name] = true
		params = append(params, decl)
	}
	return params, nil
}

func (r *reader) parseProc(form *golisp.Data, items []*golisp.Data) (ast.CExp, error) {
	if len(items) < 2 {
		return nil, syntaxErrorf(form, "parser: lambda expects a parameter list")
	}
	paramForms, ok := listItems(items[1])
	if !ok || isAtom(items[1]) && !golisp.NilP(items[1]) {
		return nil, syntaxErrorf(form, "parser: lambda parameters must be a list")
	}
	params, err := r.parseParams(form, paramForms)
	if err != nil {
		return nil, err
	}
	body, err := r.parseSequence(items[2:])
	if err != nil {
		return nil, err
	}
	return ast.NewProcExp(params, body), nil
}

func (r *reader) parseIf(form *golisp.Data, items []*golisp.Data) (ast.CExp, error) {
	if len(items) != 4 {
		return nil, syntaxErrorf(form, "parser: if expects test, then and else expressions")
	}
	parts := make([]ast.CExp, 3)
	for i, item := range items[1:] {
		exp, err := r.parseCExp(item)
		if err != nil {
			return nil, err
		}
		parts[i] = exp
	}
	return ast.NewIfExp(parts[0], parts[1], parts[2]), nil
}

func (r *reader) parseLet(form *golisp.Data, items []*golisp.Data) (ast.CExp, error) {
	if len(items) < 2 {
		return nil, syntaxErrorf(form, "parser: let expects a binding list")
	}
	bindingForms, ok := listItems(items[1])
	if !ok {
		return nil, syntaxErrorf(form, "parser: let bindings must be a list")
	}
	bindings := make([]*ast.Binding, 0, len(bindingForms))
	seen := make(map[string]bool, len(bindingForms))
	for _, b := range bindingForms {
		pair, ok := listItems(b)
		if !ok || isAtom(b) || len(pair) != 2 {
			return nil, syntaxErrorf(b, "parser: let binding must be (name value)")
		}
		decl, err := r.parseVarDecl(pair[0])
		if err != nil {
			return nil, err
		}
		if seen[decl.Name] {
			return nil, syntaxErrorf(form, "parser: duplicate let binding %s", decl.Name)
		}
		seen[decl.Name] = true
		val, err := r.parseCExp(pair[1])
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, ast.NewBinding(decl, val))
	}
	body, err := r.parseSequence(items[2:])
	if err != nil {
		return nil, err
	}
	return ast.NewLetExp(bindings, body), nil
}

func (r *reader) parseSet(form *golisp.Data, items []*golisp.Data) (ast.CExp, error) {
	if len(items) < 2 || len(items) > 3 {
		return nil, syntaxErrorf(form, "parser: set! expects a variable and a value")
	}
	decl, err := r.parseVarDecl(items[1])
	if err != nil {
		return nil, err
	}
	target := ast.NewVarRef(decl.Name)
	if len(items) == 2 {
		return ast.NewSetExp(target, nil), nil
	}
	val, err := r.parseCExp(items[2])
	if err != nil {
		return nil, err
	}
	return ast.NewSetExp(target, val), nil
}

func (r *reader) parseApp(form *golisp.Data, items []*golisp.Data) (ast.CExp, error) {
	rator, err := r.parseCExp(items[0])
	if err != nil {
		return nil, err
	}
	rands := make([]ast.CExp, 0, len(items)-1)
	for _, item := range items[1:] {
		rand, err := r.parseCExp(item)
		if err != nil {
			return nil, wrapSyntaxError(form, err)
		}
		rands = append(rands, rand)
	}
	return ast.NewAppExp(rator, rands), nil
}

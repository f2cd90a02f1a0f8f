package ast

import (
	"math/big"

	"github.com/nukata/goarith"
)

// Literal and reference helpers.

func Num(value int64) *NumExp {
	return NewNumExp(goarith.AsNumber(big.NewInt(value)))
}

func Flt(value float64) *NumExp {
	return NewNumExp(goarith.AsNumber(value))
}

func Bool(value bool) *BoolExp {
	return NewBoolExp(value)
}

func Str(value string) *StrExp {
	return NewStrExp(value)
}

func Prim(op string) *PrimOp {
	return NewPrimOp(op)
}

func Var(name string) *VarRef {
	return NewVarRef(name)
}

func Decl(name string) *VarDecl {
	return NewVarDecl(name)
}

func Quote(value SExp) *LitExp {
	return NewLitExp(value)
}

func Sym(name string) SymbolSExp {
	return SymbolSExp{Name: name}
}

// Compound helpers.

func If(test, then, alt CExp) *IfExp {
	return NewIfExp(test, then, alt)
}

func Proc(params []string, body ...Exp) *ProcExp {
	decls := make([]*VarDecl, len(params))
	for i, p := range params {
		decls[i] = Decl(p)
	}
	return NewProcExp(decls, body)
}

func Bind(name string, val CExp) *Binding {
	return NewBinding(Decl(name), val)
}

func Let(bindings []*Binding, body ...Exp) *LetExp {
	return NewLetExp(bindings, body)
}

func App(rator CExp, rands ...CExp) *AppExp {
	return NewAppExp(rator, rands)
}

func Set(name string, val CExp) *SetExp {
	return NewSetExp(Var(name), val)
}

func Define(name string, val CExp) *DefineExp {
	return NewDefineExp(Decl(name), val)
}

func Prog(exps ...Exp) *Program {
	return NewProgram(exps)
}

package ast

import "github.com/nukata/goarith"

type NodeType string

const (
	NodeNumExp    NodeType = "NumExp"
	NodeBoolExp   NodeType = "BoolExp"
	NodeStrExp    NodeType = "StrExp"
	NodePrimOp    NodeType = "PrimOp"
	NodeVarRef    NodeType = "VarRef"
	NodeVarDecl   NodeType = "VarDecl"
	NodeLitExp    NodeType = "LitExp"
	NodeIfExp     NodeType = "IfExp"
	NodeProcExp   NodeType = "ProcExp"
	NodeBinding   NodeType = "Binding"
	NodeLetExp    NodeType = "LetExp"
	NodeAppExp    NodeType = "AppExp"
	NodeSetExp    NodeType = "SetExp"
	NodeDefineExp NodeType = "DefineExp"
	NodeProgram   NodeType = "Program"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

// Exp is anything that may appear in a program or body sequence: a DefineExp
// or any CExp.
type Exp interface {
	Node
	expNode()
}

type expMarker struct{}

func (expMarker) expNode() {}

// CExp is an expression that produces a value.
type CExp interface {
	Exp
	cexpNode()
}

type cexpMarker struct{}

func (cexpMarker) cexpNode() {}

// Atomic expressions

type NumExp struct {
	nodeImpl
	expMarker
	cexpMarker

	Value goarith.Number `json:"value"`
}

func NewNumExp(value goarith.Number) *NumExp {
	return &NumExp{nodeImpl: newNodeImpl(NodeNumExp), Value: value}
}

type BoolExp struct {
	nodeImpl
	expMarker
	cexpMarker

	Value bool `json:"value"`
}

func NewBoolExp(value bool) *BoolExp {
	return &BoolExp{nodeImpl: newNodeImpl(NodeBoolExp), Value: value}
}

type StrExp struct {
	nodeImpl
	expMarker
	cexpMarker

	Value string `json:"value"`
}

func NewStrExp(value string) *StrExp {
	return &StrExp{nodeImpl: newNodeImpl(NodeStrExp), Value: value}
}

// PrimOp references a primitive operator by its symbol.
type PrimOp struct {
	nodeImpl
	expMarker
	cexpMarker

	Op string `json:"op"`
}

func NewPrimOp(op string) *PrimOp {
	return &PrimOp{nodeImpl: newNodeImpl(NodePrimOp), Op: op}
}

type VarRef struct {
	nodeImpl
	expMarker
	cexpMarker

	Name string `json:"name"`
}

func NewVarRef(name string) *VarRef {
	return &VarRef{nodeImpl: newNodeImpl(NodeVarRef), Name: name}
}

// VarDecl names a binding site: a formal parameter, a let binding or a define.
type VarDecl struct {
	nodeImpl

	Name string `json:"name"`
}

func NewVarDecl(name string) *VarDecl {
	return &VarDecl{nodeImpl: newNodeImpl(NodeVarDecl), Name: name}
}

// LitExp carries a quoted datum.
type LitExp struct {
	nodeImpl
	expMarker
	cexpMarker

	Value SExp `json:"value"`
}

func NewLitExp(value SExp) *LitExp {
	return &LitExp{nodeImpl: newNodeImpl(NodeLitExp), Value: value}
}

// Compound expressions

type IfExp struct {
	nodeImpl
	expMarker
	cexpMarker

	Test CExp `json:"test"`
	Then CExp `json:"then"`
	Alt  CExp `json:"alt"`
}

func NewIfExp(test, then, alt CExp) *IfExp {
	return &IfExp{nodeImpl: newNodeImpl(NodeIfExp), Test: test, Then: then, Alt: alt}
}

type ProcExp struct {
	nodeImpl
	expMarker
	cexpMarker

	Params []*VarDecl `json:"params"`
	Body   []Exp      `json:"body"`
}

func NewProcExp(params []*VarDecl, body []Exp) *ProcExp {
	return &ProcExp{nodeImpl: newNodeImpl(NodeProcExp), Params: params, Body: body}
}

type Binding struct {
	nodeImpl

	Var *VarDecl `json:"var"`
	Val CExp     `json:"val"`
}

func NewBinding(v *VarDecl, val CExp) *Binding {
	return &Binding{nodeImpl: newNodeImpl(NodeBinding), Var: v, Val: val}
}

type LetExp struct {
	nodeImpl
	expMarker
	cexpMarker

	Bindings []*Binding `json:"bindings"`
	Body     []Exp      `json:"body"`
}

func NewLetExp(bindings []*Binding, body []Exp) *LetExp {
	return &LetExp{nodeImpl: newNodeImpl(NodeLetExp), Bindings: bindings, Body: body}
}

type AppExp struct {
	nodeImpl
	expMarker
	cexpMarker

	Rator CExp   `json:"rator"`
	Rands []CExp `json:"rands"`
}

func NewAppExp(rator CExp, rands []CExp) *AppExp {
	return &AppExp{nodeImpl: newNodeImpl(NodeAppExp), Rator: rator, Rands: rands}
}

// SetExp mutates the cell bound to Var. Val is nil when the source omitted it.
type SetExp struct {
	nodeImpl
	expMarker
	cexpMarker

	Var *VarRef `json:"var"`
	Val CExp    `json:"val,omitempty"`
}

func NewSetExp(v *VarRef, val CExp) *SetExp {
	return &SetExp{nodeImpl: newNodeImpl(NodeSetExp), Var: v, Val: val}
}

type DefineExp struct {
	nodeImpl
	expMarker

	Var *VarDecl `json:"var"`
	Val CExp     `json:"val"`
}

func NewDefineExp(v *VarDecl, val CExp) *DefineExp {
	return &DefineExp{nodeImpl: newNodeImpl(NodeDefineExp), Var: v, Val: val}
}

type Program struct {
	nodeImpl

	Exps []Exp `json:"exps"`
}

func NewProgram(exps []Exp) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Exps: exps}
}

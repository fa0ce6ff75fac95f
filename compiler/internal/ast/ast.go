package ast

import (
	"strings"

	"github.com/gdml-lang/gdml/compiler/internal/diag"
)

/*** NODES ***/

// Node is any syntax node. Pointer nodes compare by identity, which makes
// them usable as declaration handles.
type Node interface {
	Span() diag.Span
	node()
}

// Builtin is the declaration handle of everything the compiler defines
// itself (the root scope, primitive types, builtin operators).
var Builtin Node = builtin{}

type builtin struct{}

func (builtin) Span() diag.Span { return diag.BuiltinSpan }
func (builtin) node()           {}

// File is one parsed source file.
type File struct {
	Name  string
	Decls []Stmt
}

// TypeRef is a written type annotation such as `Int` or `geo::Point`.
// The single segment `_` asks for the type to be inferred.
type TypeRef struct {
	Path []string
	At   diag.Span
}

func (t *TypeRef) Span() diag.Span { return t.At }
func (*TypeRef) node()             {}

// Infer reports whether the annotation is the inference placeholder.
func (t *TypeRef) Infer() bool { return len(t.Path) == 1 && t.Path[0] == "_" }

func (t *TypeRef) String() string { return strings.Join(t.Path, "::") }

/*** STATEMENTS ***/

type Stmt interface {
	Node
	stmt()
}

type FuncDecl struct {
	Name   string
	Params []*Param
	Ret    *TypeRef // nil means Void
	Body   *Block
	At     diag.Span
}

type Param struct {
	Name string
	Type *TypeRef
	At   diag.Span
}

type ConstDecl struct {
	Name  string
	Type  *TypeRef // optional
	Value Expr
	At    diag.Span
}

// TypeDecl declares a nominal type.
type TypeDecl struct {
	Name string
	At   diag.Span
}

type LetStmt struct {
	Mutable bool
	Name    string
	Type    *TypeRef // optional
	Value   Expr
	At      diag.Span
}

type AssignStmt struct {
	Target *Ident
	Value  Expr
	At     diag.Span
}

type ReturnStmt struct {
	Value Expr // may be nil
	At    diag.Span
}

type ExprStmt struct {
	X Expr
}

type IfStmt struct {
	Cond Expr
	Then *Block
	Else *Block // optional
	At   diag.Span
}

type WhileStmt struct {
	Cond Expr
	Body *Block
	At   diag.Span
}

// Block is a braced statement list; it introduces a scope.
type Block struct {
	Stmts []Stmt
	At    diag.Span
}

func (n *FuncDecl) Span() diag.Span   { return n.At }
func (n *Param) Span() diag.Span      { return n.At }
func (n *ConstDecl) Span() diag.Span  { return n.At }
func (n *TypeDecl) Span() diag.Span   { return n.At }
func (n *LetStmt) Span() diag.Span    { return n.At }
func (n *AssignStmt) Span() diag.Span { return n.At }
func (n *ReturnStmt) Span() diag.Span { return n.At }
func (n *ExprStmt) Span() diag.Span   { return n.X.Span() }
func (n *IfStmt) Span() diag.Span     { return n.At }
func (n *WhileStmt) Span() diag.Span  { return n.At }
func (n *Block) Span() diag.Span      { return n.At }

func (*FuncDecl) node()   {}
func (*Param) node()      {}
func (*ConstDecl) node()  {}
func (*TypeDecl) node()   {}
func (*LetStmt) node()    {}
func (*AssignStmt) node() {}
func (*ReturnStmt) node() {}
func (*ExprStmt) node()   {}
func (*IfStmt) node()     {}
func (*WhileStmt) node()  {}
func (*Block) node()      {}

func (*FuncDecl) stmt()   {}
func (*ConstDecl) stmt()  {}
func (*TypeDecl) stmt()   {}
func (*LetStmt) stmt()    {}
func (*AssignStmt) stmt() {}
func (*ReturnStmt) stmt() {}
func (*ExprStmt) stmt()   {}
func (*IfStmt) stmt()     {}
func (*WhileStmt) stmt()  {}
func (*Block) stmt()      {}

/*** EXPRESSIONS ***/

type Expr interface {
	Node
	expr()
}

// Ident is a possibly qualified name: `x`, `math::pi`.
type Ident struct {
	Path []string
	At   diag.Span
}

func (n *Ident) String() string { return strings.Join(n.Path, "::") }

type IntLit struct {
	Value int64
	At    diag.Span
}

type FloatLit struct {
	Value float64
	At    diag.Span
}

type StrLit struct {
	Value string
	At    diag.Span
}

type BoolLit struct {
	Value bool
	At    diag.Span
}

type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
	At    diag.Span
}

type CallExpr struct {
	Callee Expr
	Args   []Expr
	At     diag.Span
}

func (n *Ident) Span() diag.Span      { return n.At }
func (n *IntLit) Span() diag.Span     { return n.At }
func (n *FloatLit) Span() diag.Span   { return n.At }
func (n *StrLit) Span() diag.Span     { return n.At }
func (n *BoolLit) Span() diag.Span    { return n.At }
func (n *BinaryExpr) Span() diag.Span { return n.At }
func (n *CallExpr) Span() diag.Span   { return n.At }

func (*Ident) node()      {}
func (*IntLit) node()     {}
func (*FloatLit) node()   {}
func (*StrLit) node()     {}
func (*BoolLit) node()    {}
func (*BinaryExpr) node() {}
func (*CallExpr) node()   {}

func (*Ident) expr()      {}
func (*IntLit) expr()     {}
func (*FloatLit) expr()   {}
func (*StrLit) expr()     {}
func (*BoolLit) expr()    {}
func (*BinaryExpr) expr() {}
func (*CallExpr) expr()   {}

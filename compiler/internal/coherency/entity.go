package coherency

import (
	"fmt"

	"github.com/gdml-lang/gdml/compiler/internal/ast"
	"github.com/gdml-lang/gdml/compiler/internal/diag"
)

// EntityKind classifies named program elements.
type EntityKind int

const (
	EntityVar EntityKind = iota
	EntityParam
	EntityConst
	EntityFunc
	EntityBuiltinOp
)

func (k EntityKind) String() string {
	switch k {
	case EntityVar:
		return "variable"
	case EntityParam:
		return "parameter"
	case EntityConst:
		return "constant"
	case EntityFunc:
		return "function"
	case EntityBuiltinOp:
		return "operator"
	default:
		return "unknown"
	}
}

// Op is a binary operator token.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpMod Op = "%"
	OpEq  Op = "=="
	OpNeq Op = "!="
	OpLss Op = "<"
	OpLeq Op = "<="
	OpGtr Op = ">"
	OpGeq Op = ">="
	OpAnd Op = "&&"
	OpOr  Op = "||"
)

// BinOp is the signature of a builtin binary operator.
type BinOp struct {
	Lhs    Ty
	Op     Op
	Rhs    Ty
	Result Ty
}

// Entity is a named, referenceable program element.
type Entity struct {
	Name    FullPath
	Kind    EntityKind
	Ty      Ty   // value type; result type for functions
	Params  []Ty // functions only
	Mutable bool
	Decl    ast.Node
	Span    diag.Span

	// BinOp is set for EntityBuiltinOp.
	BinOp *BinOp
}

// AccessibleOutsideFunction reports whether the entity may be referenced
// from a function nested inside the scope that declares it. Constants,
// functions and operators may; ordinary bindings may not.
func (e *Entity) AccessibleOutsideFunction() bool {
	switch e.Kind {
	case EntityConst, EntityFunc, EntityBuiltinOp:
		return true
	default:
		return false
	}
}

// BinOpPath is the name under which the operator `lhs op rhs` is stored.
// The single segment cannot collide with an identifier.
func BinOpPath(lhs Ty, op Op, rhs Ty) FullPath {
	return FullPath{fmt.Sprintf("op%s(%s,%s)", op, lhs, rhs)}
}

// NewBuiltinBinOp returns the entity for a builtin operator row.
func NewBuiltinBinOp(lhs Ty, op Op, rhs Ty, result Ty) Entity {
	return Entity{
		Name:  BinOpPath(lhs, op, rhs),
		Kind:  EntityBuiltinOp,
		Ty:    result,
		Decl:  ast.Builtin,
		Span:  diag.BuiltinSpan,
		BinOp: &BinOp{Lhs: lhs, Op: op, Rhs: rhs, Result: result},
	}
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s %s", e.Kind, e.Name)
}

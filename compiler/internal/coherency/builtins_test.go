package coherency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdml-lang/gdml/compiler/internal/ast"
	"github.com/gdml-lang/gdml/compiler/internal/diag"
)

func TestRootDeclaresExactlyThePrimitives(t *testing.T) {
	v := NewVisitor(diag.NewLogger(nil))
	for _, name := range []string{"Void", "Bool", "Int", "Float", "String"} {
		found := v.FindTy(NewPath(name))
		require.True(t, found.IsSome(), "type %s", name)
		assert.Equal(t, name, found.Value.String())
	}
	for _, name := range []string{"int", "Str", "Unknown", "Point", "{unknown}"} {
		assert.True(t, v.FindTy(NewPath(name)).IsNone(), "type %s", name)
	}
	assert.Equal(t, 5, v.Tree().Root().Types().Len())
}

func TestBuiltinOperatorTable(t *testing.T) {
	type row struct {
		lhs Ty
		op  Op
		rhs Ty
		res Ty
	}
	want := []row{
		{Void, OpEq, Void, Bool},
		{String, OpEq, String, Bool},
		{String, OpAdd, String, String},
		{String, OpMul, Int, String},
		{Bool, OpEq, Bool, Bool},
		{Bool, OpAnd, Bool, Bool},
		{Bool, OpOr, Bool, Bool},
	}
	for _, num := range []Ty{Int, Float} {
		for _, op := range []Op{OpAdd, OpSub, OpDiv, OpMul, OpMod} {
			want = append(want, row{num, op, num, num})
		}
		for _, op := range []Op{OpEq, OpGtr, OpLss} {
			want = append(want, row{num, op, num, Bool})
		}
	}
	require.Len(t, BuiltinOps(), len(want))

	v := NewVisitor(diag.NewLogger(nil))
	for _, r := range want {
		found := v.FindEntity(Path(BinOpPath(r.lhs, r.op, r.rhs)))
		require.True(t, found.IsSome(), "%s %s %s", r.lhs, r.op, r.rhs)
		e := found.Value
		require.NotNil(t, e.BinOp)
		assert.Equal(t, EntityBuiltinOp, e.Kind)
		assert.Equal(t, r.lhs, e.BinOp.Lhs)
		assert.Equal(t, r.op, e.BinOp.Op)
		assert.Equal(t, r.rhs, e.BinOp.Rhs)
		assert.Equal(t, r.res, e.BinOp.Result)
		assert.Equal(t, r.res, e.Ty)
		assert.True(t, e.AccessibleOutsideFunction())
		assert.Equal(t, ast.Builtin, e.Decl)
		assert.True(t, e.Span.IsBuiltin())
	}
	assert.Equal(t, len(want), v.Tree().Root().Entities().Len())
}

func TestOperatorsNotInTableAreAbsent(t *testing.T) {
	v := NewVisitor(diag.NewLogger(nil))
	absent := []FullPath{
		BinOpPath(Int, OpNeq, Int),
		BinOpPath(Int, OpLeq, Int),
		BinOpPath(Int, OpAdd, Float),
		BinOpPath(Int, OpMul, String),
		BinOpPath(Bool, OpAdd, Bool),
		BinOpPath(String, OpLss, String),
	}
	for _, p := range absent {
		assert.True(t, v.FindEntity(Path(p)).IsNone(), "%s", p)
	}
}

func TestOperatorsVisibleInsideNestedFunctions(t *testing.T) {
	v := NewVisitor(diag.NewLogger(nil))
	var fn, blk ScopeID
	v.EnterScope(&fn, func() ScopeInfo { return ScopeInfo{Level: LevelFunction} })
	v.EnterScope(&blk, func() ScopeInfo { return ScopeInfo{Level: LevelBlock} })
	assert.True(t, v.FindEntity(Path(BinOpPath(Int, OpAdd, Int))).IsSome())
	assert.True(t, v.FindTy(NewPath("Int")).IsSome())
}

package coherency

// builtinOps is the complete table of builtin binary operators. Adding an
// operator means adding a row here.
var builtinOps = []BinOp{
	{Void, OpEq, Void, Bool},

	{Int, OpAdd, Int, Int},
	{Int, OpSub, Int, Int},
	{Int, OpDiv, Int, Int},
	{Int, OpMul, Int, Int},
	{Int, OpMod, Int, Int},
	{Int, OpEq, Int, Bool},
	{Int, OpGtr, Int, Bool},
	{Int, OpLss, Int, Bool},

	{Float, OpAdd, Float, Float},
	{Float, OpSub, Float, Float},
	{Float, OpDiv, Float, Float},
	{Float, OpMul, Float, Float},
	{Float, OpMod, Float, Float},
	{Float, OpEq, Float, Bool},
	{Float, OpGtr, Float, Bool},
	{Float, OpLss, Float, Bool},

	{String, OpEq, String, Bool},
	{String, OpAdd, String, String},
	{String, OpMul, Int, String},

	{Bool, OpEq, Bool, Bool},

	{Bool, OpAnd, Bool, Bool},
	{Bool, OpOr, Bool, Bool},
}

// BuiltinOps returns a copy of the builtin operator table.
func BuiltinOps() []BinOp {
	return append([]BinOp(nil), builtinOps...)
}

// populateBuiltins declares the primitive types and builtin operators in
// the root scope.
func populateBuiltins(root *Scope) {
	for _, ty := range Primitives {
		root.types.Insert(FullPath{ty.String()}, ty)
	}
	for _, row := range builtinOps {
		op := NewBuiltinBinOp(row.Lhs, row.Op, row.Rhs, row.Result)
		root.entities.Insert(op.Name, op)
	}
}

package ast

// Constructors for building trees by hand (tests, fixtures, tools).
// Spans are left zero; set At on the returned node when a test needs one.

func NewFile(name string, decls ...Stmt) *File { return &File{Name: name, Decls: decls} }

func T(path ...string) *TypeRef { return &TypeRef{Path: path} }

func Fn(name string, params []*Param, ret *TypeRef, body ...Stmt) *FuncDecl {
	return &FuncDecl{Name: name, Params: params, Ret: ret, Body: Blk(body...)}
}

func P(name string, ty *TypeRef) *Param { return &Param{Name: name, Type: ty} }

func Params(ps ...*Param) []*Param { return ps }

func Const(name string, ty *TypeRef, value Expr) *ConstDecl {
	return &ConstDecl{Name: name, Type: ty, Value: value}
}

func TypeDef(name string) *TypeDecl { return &TypeDecl{Name: name} }

func Let(name string, ty *TypeRef, value Expr) *LetStmt {
	return &LetStmt{Name: name, Type: ty, Value: value}
}

func LetMut(name string, ty *TypeRef, value Expr) *LetStmt {
	return &LetStmt{Mutable: true, Name: name, Type: ty, Value: value}
}

func Assign(name string, value Expr) *AssignStmt {
	return &AssignStmt{Target: Id(name), Value: value}
}

func Ret(value Expr) *ReturnStmt { return &ReturnStmt{Value: value} }

func Do(x Expr) *ExprStmt { return &ExprStmt{X: x} }

func If(cond Expr, then *Block, els *Block) *IfStmt {
	return &IfStmt{Cond: cond, Then: then, Else: els}
}

func While(cond Expr, body ...Stmt) *WhileStmt {
	return &WhileStmt{Cond: cond, Body: Blk(body...)}
}

func Blk(stmts ...Stmt) *Block { return &Block{Stmts: stmts} }

func Id(path ...string) *Ident { return &Ident{Path: path} }

func Int(v int64) *IntLit       { return &IntLit{Value: v} }
func Float(v float64) *FloatLit { return &FloatLit{Value: v} }
func Str(v string) *StrLit      { return &StrLit{Value: v} }
func Bool(v bool) *BoolLit      { return &BoolLit{Value: v} }

func Bin(left Expr, op string, right Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right}
}

func Call(callee string, args ...Expr) *CallExpr {
	return &CallExpr{Callee: Id(callee), Args: args}
}

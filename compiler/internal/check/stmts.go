package check

import (
	"github.com/gdml-lang/gdml/compiler/internal/ast"
	"github.com/gdml-lang/gdml/compiler/internal/coherency"
	"github.com/gdml-lang/gdml/compiler/internal/diag"
)

/* ---------- pass two: statements ---------- */

func (c *checker) checkStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		c.checkStmt(s)
	}
}

func (c *checker) checkStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.TypeDecl:
		// hoisted
	case *ast.FuncDecl:
		c.checkFunc(st)
	case *ast.ConstDecl:
		c.checkConst(st)
	case *ast.LetStmt:
		c.checkLet(st)
	case *ast.AssignStmt:
		c.checkAssign(st)
	case *ast.ReturnStmt:
		c.checkReturn(st)
	case *ast.ExprStmt:
		c.exprType(st.X)
	case *ast.IfStmt:
		c.checkCond(st.Cond)
		c.checkBlock(st.Then)
		if st.Else != nil {
			c.checkBlock(st.Else)
		}
	case *ast.WhileStmt:
		c.checkCond(st.Cond)
		c.checkBlock(st.Body)
	case *ast.Block:
		c.checkBlock(st)
	}
}

// checkFunc checks a function body once; a call site may already have
// checked it ahead of its position.
func (c *checker) checkFunc(fn *ast.FuncDecl) {
	if c.checked[fn] {
		return
	}
	c.checked[fn] = true
	c.enter(fn)
	c.locals = push(c.locals, nil)
	for _, p := range fn.Params {
		if e := c.info.Decls[p]; e != nil {
			c.addLocal(e)
		}
	}
	if fn.Body != nil {
		c.checkStmts(fn.Body.Stmts)
	}

	// an inferred return never seen means the function yields nothing
	s := c.v.CurrentScope()
	if inferring(s.Return()) {
		s.SetReturn(coherency.InferredReturn(coherency.Void, nil))
		if e := c.funcs[s.ID()]; e != nil {
			e.Ty = coherency.Void
		}
	}

	c.reportUnused()
	c.v.LeaveScope()
}

func (c *checker) checkBlock(b *ast.Block) {
	if b == nil {
		return
	}
	c.enter(b)
	c.checkStmts(b.Stmts)
	c.v.LeaveScope()
}

func (c *checker) checkConst(cd *ast.ConstDecl) {
	vt := c.exprType(cd.Value)
	e := c.info.Decls[cd]
	if e == nil {
		return
	}
	if cd.Type != nil {
		e.Ty = c.v.ExpectEq(vt, e.Ty, cd.Value.Span())
		return
	}
	e.Ty = vt
}

func (c *checker) checkLet(st *ast.LetStmt) {
	ty := c.exprType(st.Value)
	if st.Type != nil && !st.Type.Infer() {
		ty = c.v.ExpectEq(ty, c.resolveType(st.Type), st.Value.Span())
	}
	name := declName(st.Name)
	if !c.canDeclare(name, st) {
		return
	}
	e := c.v.PushEntity(coherency.Entity{
		Name:    name,
		Kind:    coherency.EntityVar,
		Ty:      ty,
		Mutable: st.Mutable,
		Decl:    st,
		Span:    st.At,
	})
	c.info.Decls[st] = e
	c.addLocal(e)
}

func (c *checker) checkAssign(st *ast.AssignStmt) {
	vt := c.exprType(st.Value)
	e := c.resolveEntity(st.Target)
	if e == nil {
		return
	}
	if e.Kind != coherency.EntityVar || !e.Mutable {
		c.errorf("type", "immutable", "GTE0005", st.At, "Cannot assign to immutable %s %s", e.Kind, st.Target)
		return
	}
	c.v.ExpectEq(vt, e.Ty, st.Value.Span())
}

func (c *checker) checkCond(cond ast.Expr) {
	c.v.ExpectEq(c.exprType(cond), coherency.Bool, cond.Span())
}

// checkReturn checks the returned value against the enclosing function.
// The first return of a function with an inferred result fixes its type;
// a bare return fixes it to Void.
func (c *checker) checkReturn(st *ast.ReturnStmt) {
	ty := coherency.Void
	span := st.At
	if st.Value != nil {
		ty = c.exprType(st.Value)
		span = st.Value.Span()
	}

	id, ok := c.v.FindScope(coherency.ByLevel(coherency.LevelFunction))
	if !ok {
		c.errorf("type", "return_value", "GTE0006", st.At, "Return outside of a function")
		return
	}
	fs := c.info.Tree.Scope(id)
	ret := fs.Return()
	switch ret.Kind {
	case coherency.ReturnVoid:
		if st.Value != nil && !ty.ConvertibleTo(coherency.Void) {
			c.errorf("type", "return_value", "GTE0006", span, "Unexpected return value in function returning Void")
		}
	case coherency.ReturnInferred:
		if inferring(ret) {
			fs.SetReturn(coherency.InferredReturn(ty, st.Value))
			if e := c.funcs[id]; e != nil {
				e.Ty = ty
			}
			return
		}
		c.v.ExpectEq(ty, ret.Ty, span)
	default:
		c.v.ExpectEq(ty, ret.Ty, span)
	}
}

/* ---------- unused bindings ---------- */

func (c *checker) addLocal(e *coherency.Entity) {
	if t := top(c.locals); t != nil {
		*t = append(*t, e)
	}
}

// reportUnused closes the innermost locals frame.
func (c *checker) reportUnused() {
	frame := top(c.locals)
	if frame == nil {
		return
	}
	if c.opts.warnUnused {
		for _, e := range *frame {
			name := e.Name.String()
			if c.used[e] || ignoredName(name) {
				continue
			}
			c.report(diag.Warning, "lint", "unused", "GLW0001", e.Span, "Unused %s %s", e.Kind, name)
		}
	}
	c.locals = pop(c.locals)
}

package check

import (
	"github.com/gdml-lang/gdml/compiler/internal/ast"
	"github.com/gdml-lang/gdml/compiler/internal/coherency"
)

/* ---------- pass one: scopes and hoisted declarations ---------- */

// declareStmts hoists the types, functions and constants of one statement
// list into the active scope and creates the scopes nested in it. Types go
// first so signatures can name types declared further down.
func (c *checker) declareStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		if td, ok := s.(*ast.TypeDecl); ok {
			c.declareType(td)
		}
	}
	for _, s := range stmts {
		switch st := s.(type) {
		case *ast.FuncDecl:
			c.declareFunc(st)
		case *ast.ConstDecl:
			c.declareConst(st)
		case *ast.IfStmt:
			c.declareBlock(st.Then)
			if st.Else != nil {
				c.declareBlock(st.Else)
			}
		case *ast.WhileStmt:
			c.declareBlock(st.Body)
		case *ast.Block:
			c.declareBlock(st)
		}
	}
}

func (c *checker) declareType(td *ast.TypeDecl) {
	name := declName(td.Name)
	if !c.canDeclare(name, td) {
		return
	}
	c.v.PushTy(name, coherency.Named(name))
}

func (c *checker) declareFunc(fn *ast.FuncDecl) {
	ret := coherency.NoReturn()
	switch {
	case fn.Ret == nil:
	case fn.Ret.Infer():
		ret = coherency.InferredReturn(coherency.Unknown, nil)
	default:
		ret = coherency.ExplicitReturn(c.resolveType(fn.Ret))
	}

	params := make([]coherency.Ty, 0, len(fn.Params))
	for _, p := range fn.Params {
		params = append(params, c.resolveType(p.Type))
	}

	name := declName(fn.Name)
	var ent *coherency.Entity
	if c.canDeclare(name, fn) {
		ent = c.v.PushEntity(coherency.Entity{
			Name:   name,
			Kind:   coherency.EntityFunc,
			Ty:     ret.Ty,
			Params: params,
			Decl:   fn,
			Span:   fn.At,
		})
		c.info.Decls[fn] = ent
	}

	var id coherency.ScopeID
	c.v.EnterScope(&id, func() coherency.ScopeInfo {
		return coherency.ScopeInfo{Level: coherency.LevelFunction, Decl: fn, Return: ret}
	})
	c.info.Scopes[fn] = id
	if ent != nil {
		c.funcs[id] = ent
	}
	for i, p := range fn.Params {
		pn := declName(p.Name)
		if !c.canDeclare(pn, p) {
			continue
		}
		c.info.Decls[p] = c.v.PushEntity(coherency.Entity{
			Name: pn,
			Kind: coherency.EntityParam,
			Ty:   params[i],
			Decl: p,
			Span: p.At,
		})
	}
	if fn.Body != nil {
		c.info.Scopes[fn.Body] = id
		c.declareStmts(fn.Body.Stmts)
	}
	c.v.LeaveScope()
}

// declareConst hoists the constant with its annotated type. Unannotated
// constants take the type of their value in the second pass.
func (c *checker) declareConst(cd *ast.ConstDecl) {
	name := declName(cd.Name)
	if !c.canDeclare(name, cd) {
		return
	}
	ty := coherency.Unknown
	if cd.Type != nil {
		ty = c.resolveType(cd.Type)
	}
	c.info.Decls[cd] = c.v.PushEntity(coherency.Entity{
		Name: name,
		Kind: coherency.EntityConst,
		Ty:   ty,
		Decl: cd,
		Span: cd.At,
	})
}

func (c *checker) declareBlock(b *ast.Block) {
	if b == nil {
		return
	}
	var id coherency.ScopeID
	c.v.EnterScope(&id, func() coherency.ScopeInfo {
		return coherency.ScopeInfo{Level: coherency.LevelBlock, Decl: b, Return: coherency.NoReturn()}
	})
	c.info.Scopes[b] = id
	c.declareStmts(b.Stmts)
	c.v.LeaveScope()
}

// canDeclare reports a redeclaration in the active scope.
func (c *checker) canDeclare(name coherency.FullPath, at ast.Node) bool {
	if !c.v.CurrentScope().DeclaredLocally(name) {
		return true
	}
	c.errorf("resolve", "redeclared", "GCE0004", at.Span(),
		"Type or variable %s already exists in this scope", name)
	return false
}

// resolveType maps an annotation to a type, reporting unknown names.
func (c *checker) resolveType(ref *ast.TypeRef) coherency.Ty {
	if ref == nil || ref.Infer() {
		return coherency.Unknown
	}
	p := pathOf(ref.Path)
	found := c.v.FindTy(p)
	ty, ok := found.Option()
	if !ok {
		c.errorf("resolve", "unknown_type", "GCE0003", ref.At, "Unknown type %s", p)
		return coherency.Unknown
	}
	c.checkAmbiguous(p, ref.At, true)
	return ty
}

package check

import (
	"go.uber.org/zap"

	"github.com/gdml-lang/gdml/compiler/internal/ast"
	"github.com/gdml-lang/gdml/compiler/internal/coherency"
	"github.com/gdml-lang/gdml/compiler/internal/diag"
)

/* ---------- expressions ---------- */

// exprType computes and records the type of e. Errors recover with Unknown,
// which no later check complains about.
func (c *checker) exprType(e ast.Expr) coherency.Ty {
	ty := c.typeOf(e)
	if e != nil {
		c.info.Types[e] = ty
	}
	return ty
}

func (c *checker) typeOf(e ast.Expr) coherency.Ty {
	switch x := e.(type) {
	case nil:
		return coherency.Unknown
	case *ast.IntLit:
		return coherency.Int
	case *ast.FloatLit:
		return coherency.Float
	case *ast.StrLit:
		return coherency.String
	case *ast.BoolLit:
		return coherency.Bool
	case *ast.Ident:
		ent := c.resolveEntity(x)
		if ent == nil || ent.Kind == coherency.EntityFunc {
			return coherency.Unknown
		}
		return ent.Ty
	case *ast.BinaryExpr:
		return c.binaryType(x)
	case *ast.CallExpr:
		return c.callType(x)
	default:
		return coherency.Unknown
	}
}

// binaryType looks the operator up in the scope chain under its
// type-qualified name.
func (c *checker) binaryType(x *ast.BinaryExpr) coherency.Ty {
	lt := c.exprType(x.Left)
	rt := c.exprType(x.Right)
	if lt.IsUnknown() || rt.IsUnknown() {
		return coherency.Unknown
	}
	op := coherency.Op(x.Op)
	found := c.v.FindEntity(coherency.Path(coherency.BinOpPath(lt, op, rt)))
	if ent, ok := found.Option(); ok && ent.BinOp != nil {
		return ent.BinOp.Result
	}
	c.errorf("type", "no_operator", "GTE0002", x.At, "No operator %s for types %s and %s", op, lt, rt)
	return coherency.Unknown
}

func (c *checker) callType(x *ast.CallExpr) coherency.Ty {
	args := make([]coherency.Ty, len(x.Args))
	for i, a := range x.Args {
		args[i] = c.exprType(a)
	}

	id, ok := x.Callee.(*ast.Ident)
	if !ok {
		c.exprType(x.Callee)
		c.errorf("type", "not_callable", "GTE0004", x.Callee.Span(), "Expression is not a function")
		return coherency.Unknown
	}
	fn := c.resolveEntity(id)
	if fn == nil {
		return coherency.Unknown
	}
	if fn.Kind != coherency.EntityFunc {
		c.errorf("type", "not_callable", "GTE0004", id.At, "%s %s is not a function", fn.Kind, id)
		return coherency.Unknown
	}
	c.info.Types[id] = coherency.Unknown

	if len(args) != len(fn.Params) {
		c.errorf("type", "arity", "GTE0003", x.At,
			"Function %s expects %d argument(s), got %d", id, len(fn.Params), len(args))
	}
	for i := 0; i < len(args) && i < len(fn.Params); i++ {
		c.v.ExpectEq(args[i], fn.Params[i], x.Args[i].Span())
	}
	if fd, ok := fn.Decl.(*ast.FuncDecl); ok && c.returnPending(fd) {
		c.checkAhead(fd)
	}
	return fn.Ty
}

// returnPending reports whether fd infers its result and its body has not
// been checked yet.
func (c *checker) returnPending(fd *ast.FuncDecl) bool {
	id, ok := c.info.Scopes[fd]
	return ok && !c.checked[fd] && inferring(c.info.Tree.Scope(id).Return())
}

// checkAhead checks fd before its position in the file so a call site that
// comes first sees the inferred result. The active scope is restored after.
func (c *checker) checkAhead(fd *ast.FuncDecl) {
	here := c.v.Current()
	c.log.Debug("Checking ahead", zap.String("fn", fd.Name))
	c.checkFunc(fd)
	c.v.EnterScope(&here, nil)
}

/* ---------- names ---------- */

// resolveEntity finds the entity id refers to and records the use. It
// reports unknown names and bindings hidden by a function boundary.
func (c *checker) resolveEntity(id *ast.Ident) *coherency.Entity {
	p := pathOf(id.Path)
	found := c.v.FindEntity(p)
	switch found.State {
	case coherency.FoundNone:
		c.errorf("resolve", "unknown_name", "GCE0001", id.At, "Unknown name %s", p)
		return nil
	case coherency.FoundNotAvailable:
		c.errorf("resolve", "not_capturable", "GCE0002", id.At,
			"Cannot capture %s from an enclosing function; only constants, types and functions are visible here", p)
		return nil
	}
	ent := found.Value
	c.checkAmbiguous(p, id.At, false)
	c.info.Uses[id] = ent
	c.used[ent] = true
	return ent
}

// checkAmbiguous warns when the scope that resolves p holds more than one
// full path ending with it.
func (c *checker) checkAmbiguous(p coherency.Path, span diag.Span, types bool) {
	n := 0
	c.info.Tree.Chain(c.v.Current(), func(s *coherency.Scope) bool {
		if types {
			n = len(s.Types().Matches(p))
		} else {
			n = len(s.Entities().Matches(p))
		}
		return n == 0
	})
	if n > 1 {
		c.report(diag.Warning, "resolve", "ambiguous", "GCW0005", span, "Ambiguous reference %s", p)
	}
}

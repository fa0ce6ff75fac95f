package check

import (
	"go.uber.org/zap"

	"github.com/gdml-lang/gdml/compiler/internal/ast"
	"github.com/gdml-lang/gdml/compiler/internal/coherency"
	"github.com/gdml-lang/gdml/compiler/internal/diag"
)

/* ---------- public info ---------- */

// Info is what the checker learned about a file.
type Info struct {
	// Types is the type of every checked expression.
	Types map[ast.Expr]coherency.Ty
	// Uses maps an identifier to the entity it resolved to.
	Uses map[*ast.Ident]*coherency.Entity
	// Scopes is the scope introduced by each FuncDecl and Block.
	Scopes map[ast.Node]coherency.ScopeID
	// Decls is the entity declared by each fn, const, let and param.
	Decls map[ast.Node]*coherency.Entity

	// FileScope holds the file's top-level declarations.
	FileScope coherency.ScopeID
	Tree      *coherency.Tree
}

// TypeOf returns the recorded type of e, or Unknown.
func (i *Info) TypeOf(e ast.Expr) coherency.Ty {
	if t, ok := i.Types[e]; ok {
		return t
	}
	return coherency.Unknown
}

/* ---------- options ---------- */

type options struct {
	log        *zap.Logger
	warnUnused bool
	maxErrors  int
}

// Option configures CheckFile.
type Option func(*options)

// WithLogger traces the walk to log.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WarnUnused toggles the unused binding warning (on by default).
func WarnUnused(on bool) Option {
	return func(o *options) { o.warnUnused = on }
}

// MaxErrors stops reporting errors after n of them; 0 means no limit.
func MaxErrors(n int) Option {
	return func(o *options) { o.maxErrors = n }
}

/* ---------- driver ---------- */

// CheckFile walks f twice. The first pass creates every scope and hoists
// types, functions and constants so they can be used before their
// declaration; the second re-enters those scopes and checks bodies.
// Diagnostics go to sink; the returned Info is complete even when errors
// were reported.
func CheckFile(f *ast.File, sink diag.Sink, opts ...Option) *Info {
	o := options{log: zap.NewNop(), warnUnused: true}
	for _, opt := range opts {
		opt(&o)
	}

	limited := &limitSink{sink: sink, max: o.maxErrors}
	v := coherency.NewVisitor(limited)
	v.WithLogger(o.log)

	c := &checker{
		v:    v,
		opts: o,
		log:  o.log.With(zap.String("component", "check"), zap.String("file", f.Name)),
		info: &Info{
			Types:  map[ast.Expr]coherency.Ty{},
			Uses:   map[*ast.Ident]*coherency.Entity{},
			Scopes: map[ast.Node]coherency.ScopeID{},
			Decls:  map[ast.Node]*coherency.Entity{},
			Tree:   v.Tree(),
		},
		used:    map[*coherency.Entity]bool{},
		funcs:   map[coherency.ScopeID]*coherency.Entity{},
		checked: map[*ast.FuncDecl]bool{},
	}

	v.EnterScope(&c.info.FileScope, func() coherency.ScopeInfo {
		return coherency.ScopeInfo{Level: coherency.LevelBlock, Return: coherency.NoReturn()}
	})
	c.log.Debug("Declaring", zap.Int("decls", len(f.Decls)))
	c.declareStmts(f.Decls)
	v.LeaveScope()

	c.log.Debug("Checking")
	fileScope := c.info.FileScope
	v.EnterScope(&fileScope, nil)
	c.locals = push(c.locals, nil)
	c.checkStmts(f.Decls)
	c.reportUnused()
	v.LeaveScope()

	c.log.Debug("Checked file", zap.Int("scopes", c.info.Tree.Len()), zap.Int("errors", limited.errs))
	return c.info
}

type checker struct {
	v    *coherency.Visitor
	opts options
	log  *zap.Logger
	info *Info

	// locals declared in each open function, for the unused warning
	locals [][]*coherency.Entity
	used   map[*coherency.Entity]bool

	// function entity owning each function scope
	funcs map[coherency.ScopeID]*coherency.Entity

	// bodies already checked, or being checked
	checked map[*ast.FuncDecl]bool
}

// enter re-enters the scope recorded for n during the first pass.
func (c *checker) enter(n ast.Node) {
	id, ok := c.info.Scopes[n]
	if !ok {
		panic(&coherency.ContractViolation{Op: "enter scope", Reason: "node has no scope from the declaration pass"})
	}
	c.v.EnterScope(&id, nil)
}

package coherency

import (
	"fmt"

	"github.com/gdml-lang/gdml/compiler/internal/ast"
)

// ScopeID addresses a scope in a Tree. IDs stay valid for the life of the
// tree no matter how many scopes are added later.
type ScopeID uint32

const (
	// NoScope marks the absence of a scope reference.
	NoScope ScopeID = 0
	// RootID is the builtin root scope of every tree.
	RootID ScopeID = 1
)

// IsValid reports whether id refers to an allocated scope.
func (id ScopeID) IsValid() bool { return id != NoScope }

// ScopeLevel orders scope kinds: Block < Function.
type ScopeLevel uint8

const (
	// Block scopes see every binding of their enclosing scopes.
	LevelBlock ScopeLevel = iota
	// Function scopes only see constants, types and functions from outside.
	LevelFunction
)

func (l ScopeLevel) String() string {
	switch l {
	case LevelBlock:
		return "block"
	case LevelFunction:
		return "function"
	default:
		return fmt.Sprintf("level(%d)", uint8(l))
	}
}

// ReturnKind says what a scope must yield.
type ReturnKind uint8

const (
	ReturnVoid ReturnKind = iota
	ReturnExplicit
	ReturnInferred
)

// Return describes the value a scope yields. For ReturnInferred, Expr is the
// expression the type was taken from.
type Return struct {
	Kind ReturnKind
	Ty   Ty
	Expr ast.Expr
}

func NoReturn() Return                           { return Return{Kind: ReturnVoid, Ty: Void} }
func ExplicitReturn(ty Ty) Return                { return Return{Kind: ReturnExplicit, Ty: ty} }
func InferredReturn(ty Ty, from ast.Expr) Return { return Return{Kind: ReturnInferred, Ty: ty, Expr: from} }

// Scope is one lexical region. Its relations to other scopes are IDs into
// the owning Tree.
type Scope struct {
	id       ScopeID
	parent   ScopeID
	children []ScopeID
	level    ScopeLevel
	types    Space[Ty]
	entities Space[Entity]
	ret      Return
	decl     ast.Node
}

func (s *Scope) ID() ScopeID              { return s.id }
func (s *Scope) Parent() ScopeID          { return s.parent }
func (s *Scope) Level() ScopeLevel        { return s.level }
func (s *Scope) Decl() ast.Node           { return s.decl }
func (s *Scope) Return() Return           { return s.ret }
func (s *Scope) SetReturn(r Return)       { s.ret = r }
func (s *Scope) Types() *Space[Ty]        { return &s.types }
func (s *Scope) Entities() *Space[Entity] { return &s.entities }

// Children returns the child scope IDs in creation order.
func (s *Scope) Children() []ScopeID {
	return append([]ScopeID(nil), s.children...)
}

// DeclaredLocally reports whether this scope itself stores a type or an
// entity under the full path.
func (s *Scope) DeclaredLocally(path FullPath) bool {
	if _, ok := s.entities.Find(path); ok {
		return true
	}
	_, ok := s.types.Find(path)
	return ok
}

// Tree owns every scope. Scopes are addressed by ScopeID; index 0 is unused
// so that the zero ScopeID means "no scope".
type Tree struct {
	scopes []*Scope
}

// NewTree returns a tree holding only the builtin root scope.
func NewTree() *Tree {
	t := &Tree{scopes: []*Scope{nil}}
	root := t.alloc(NoScope, LevelBlock, ast.Builtin, NoReturn())
	populateBuiltins(root)
	return t
}

func (t *Tree) alloc(parent ScopeID, level ScopeLevel, decl ast.Node, ret Return) *Scope {
	s := &Scope{
		id:     ScopeID(len(t.scopes)),
		parent: parent,
		level:  level,
		decl:   decl,
		ret:    ret,
	}
	t.scopes = append(t.scopes, s)
	if parent.IsValid() {
		p := t.scopes[parent]
		p.children = append(p.children, s.id)
	}
	return s
}

// NewChild creates a scope under parent and returns its ID.
func (t *Tree) NewChild(parent ScopeID, level ScopeLevel, decl ast.Node, ret Return) ScopeID {
	t.mustHave(parent)
	return t.alloc(parent, level, decl, ret).id
}

// Scope returns the scope with the given ID.
func (t *Tree) Scope(id ScopeID) *Scope {
	t.mustHave(id)
	return t.scopes[id]
}

// Has reports whether id is allocated in this tree.
func (t *Tree) Has(id ScopeID) bool {
	return id.IsValid() && int(id) < len(t.scopes)
}

// Len is the number of scopes, root included.
func (t *Tree) Len() int { return len(t.scopes) - 1 }

// Root returns the builtin root scope.
func (t *Tree) Root() *Scope { return t.scopes[RootID] }

func (t *Tree) mustHave(id ScopeID) {
	if !t.Has(id) {
		panic(&ContractViolation{Op: "scope lookup", Reason: fmt.Sprintf("scope %d is not part of this tree", id)})
	}
}

// Chain calls fn for id and each of its ancestors up to the root, stopping
// early when fn returns false.
func (t *Tree) Chain(id ScopeID, fn func(*Scope) bool) {
	for cur := id; cur.IsValid(); {
		s := t.Scope(cur)
		if !fn(s) {
			return
		}
		cur = s.parent
	}
}

/* ---------- scope search criteria ---------- */

type findKind uint8

const (
	findByLevel findKind = iota
	findByDecl
	findTopMost
)

// FindScope is a search criterion over a scope's level and declaration.
type FindScope struct {
	kind  findKind
	level ScopeLevel
	decl  ast.Node
}

// ByLevel matches scopes whose level is at least level.
func ByLevel(level ScopeLevel) FindScope { return FindScope{kind: findByLevel, level: level} }

// ByDecl matches the scope introduced by decl.
func ByDecl(decl ast.Node) FindScope { return FindScope{kind: findByDecl, decl: decl} }

// TopMost matches the first scope visited.
func TopMost() FindScope { return FindScope{kind: findTopMost} }

// Matches reports whether s satisfies the criterion.
func (f FindScope) Matches(s *Scope) bool {
	switch f.kind {
	case findByLevel:
		return s.level >= f.level
	case findByDecl:
		return s.decl == f.decl
	default:
		return true
	}
}

/* ---------- contract violations ---------- */

// ContractViolation is the panic value raised when a driver misuses the
// scope tree. It signals a compiler bug, never a user error.
type ContractViolation struct {
	Op     string
	Reason string
}

func (c *ContractViolation) Error() string {
	return fmt.Sprintf("coherency: %s: %s", c.Op, c.Reason)
}

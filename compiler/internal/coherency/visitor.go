package coherency

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gdml-lang/gdml/compiler/internal/ast"
	"github.com/gdml-lang/gdml/compiler/internal/diag"
)

// ScopeInfo describes a scope about to be created by EnterScope.
type ScopeInfo struct {
	Level  ScopeLevel
	Decl   ast.Node
	Return Return
}

// Visitor is driven by a tree walker: it tracks the active scope while the
// walker descends, answers name and type lookups from there, and reports
// type disagreements to the diagnostic sink.
//
// A Visitor is not safe for concurrent use; only its sink is shared.
type Visitor struct {
	logger  diag.Sink
	tree    *Tree
	current ScopeID

	log *zap.Logger
}

// NewVisitor returns a visitor positioned at a fresh builtin root scope.
func NewVisitor(sink diag.Sink) *Visitor {
	return &Visitor{
		logger:  sink,
		tree:    NewTree(),
		current: RootID,
		log:     zap.NewNop(),
	}
}

// WithLogger sets the zap logger used for scope tracing.
func (v *Visitor) WithLogger(log *zap.Logger) {
	v.log = log.With(zap.String("component", "coherency"))
}

// SetLogger replaces the diagnostic sink.
func (v *Visitor) SetLogger(sink diag.Sink) { v.logger = sink }

// Tree returns the scope tree built so far.
func (v *Visitor) Tree() *Tree { return v.tree }

// Current returns the active scope ID.
func (v *Visitor) Current() ScopeID { return v.current }

// CurrentScope returns the active scope.
func (v *Visitor) CurrentScope() *Scope { return v.tree.Scope(v.current) }

// FindEntity resolves p from the active scope outwards.
//
// Once the walk has left a Function-level scope, only entities accessible
// outside functions are returned as Some; others come back NotAvailable.
// A name declared directly in the function scope is still visible there.
func (v *Visitor) FindEntity(p Path) FoundItem[*Entity] {
	res := None[*Entity]()
	outsideFunction := false
	v.tree.Chain(v.current, func(s *Scope) bool {
		if e, ok := s.entities.Lookup(p); ok {
			if !outsideFunction || e.AccessibleOutsideFunction() {
				res = Some(e)
			} else {
				res = NotAvailable(e)
			}
			return false
		}
		if s.level >= LevelFunction {
			outsideFunction = true
		}
		return true
	})
	return res
}

// FindTy resolves p against the type spaces from the active scope outwards.
// Types are visible across function boundaries.
func (v *Visitor) FindTy(p Path) FoundItem[Ty] {
	res := None[Ty]()
	v.tree.Chain(v.current, func(s *Scope) bool {
		if t, ok := s.types.Lookup(p); ok {
			res = Some(*t)
			return false
		}
		return true
	})
	return res
}

// FindScope returns the innermost scope, starting at the active one, that
// matches the criterion.
func (v *Visitor) FindScope(c FindScope) (ScopeID, bool) {
	found := NoScope
	v.tree.Chain(v.current, func(s *Scope) bool {
		if c.Matches(s) {
			found = s.id
			return false
		}
		return true
	})
	return found, found.IsValid()
}

// EnterScope makes a scope active. If *scope already names a scope (a
// later pass re-descending into the tree) that scope is re-entered;
// otherwise orCreate describes a new child of the active scope, whose ID is
// written back to *scope.
func (v *Visitor) EnterScope(scope *ScopeID, orCreate func() ScopeInfo) {
	if scope.IsValid() {
		if !v.tree.Has(*scope) {
			panic(&ContractViolation{Op: "enter scope", Reason: fmt.Sprintf("scope %d is not part of this tree", *scope)})
		}
		v.current = *scope
		v.log.Debug("Re-entered scope", zap.Uint32("scope", uint32(v.current)))
		return
	}
	info := orCreate()
	if info.Decl == nil {
		info.Decl = ast.Builtin
	}
	*scope = v.tree.NewChild(v.current, info.Level, info.Decl, info.Return)
	v.log.Debug("Entered new scope",
		zap.Uint32("scope", uint32(*scope)),
		zap.Uint32("parent", uint32(v.current)),
		zap.Stringer("level", info.Level))
	v.current = *scope
}

// LeaveScope makes the parent of the active scope active. Leaving the root
// is a driver bug and panics with a *ContractViolation.
func (v *Visitor) LeaveScope() {
	s := v.tree.Scope(v.current)
	if !s.parent.IsValid() {
		panic(&ContractViolation{Op: "leave scope", Reason: "the active scope is the root"})
	}
	v.log.Debug("Left scope", zap.Uint32("scope", uint32(v.current)))
	v.current = s.parent
}

// PushEntity declares e in the active scope and returns the stored entity.
func (v *Visitor) PushEntity(e Entity) *Entity {
	return v.CurrentScope().entities.Insert(e.Name, e)
}

// PushTy declares ty under path in the active scope.
func (v *Visitor) PushTy(path FullPath, ty Ty) {
	v.CurrentScope().types.Insert(path, ty)
}

// EmitMsg forwards a message to the sink. A visitor without a sink panics
// with a *ContractViolation.
func (v *Visitor) EmitMsg(m diag.Message) {
	if v.logger == nil {
		panic(&ContractViolation{Op: "emit message", Reason: "no diagnostic sink"})
	}
	v.logger.Log(m)
}

// ExpectEq reports an error when actual is not convertible to expected and
// returns the merge of both, so checking can go on with the best type known.
func (v *Visitor) ExpectEq(actual, expected Ty, span diag.Span) Ty {
	if !actual.ConvertibleTo(expected) {
		ce := diag.MustLookup("type", "mismatch", "GTE0001", "type mismatch")
		v.EmitMsg(diag.NewMessage(diag.Error, span, "Expected type %s, got type %s", expected, actual).WithCode(ce.ID))
	}
	return expected.Or(actual)
}

package coherency

/* ---------- types ---------- */

// TyKind enumerates the closed set of type shapes.
type TyKind int

const (
	// KindUnknown is the error-recovery placeholder. It carries no
	// information and converts to and from everything.
	KindUnknown TyKind = iota
	KindVoid
	KindBool
	KindInt
	KindFloat
	KindString
	// KindNamed is a user-declared nominal type.
	KindNamed
)

// Ty is a cheap comparable type value.
type Ty struct {
	kind TyKind
	name string // full path of a named type, joined with Separator
}

var (
	Unknown = Ty{kind: KindUnknown}
	Void    = Ty{kind: KindVoid}
	Bool    = Ty{kind: KindBool}
	Int     = Ty{kind: KindInt}
	Float   = Ty{kind: KindFloat}
	String  = Ty{kind: KindString}
)

// Primitives lists the types every root scope declares, in order.
var Primitives = []Ty{Void, Bool, Int, Float, String}

// Named returns the nominal type declared under path.
func Named(path FullPath) Ty { return Ty{kind: KindNamed, name: path.String()} }

func (t Ty) Kind() TyKind { return t.kind }

// IsUnknown reports whether t carries no usable information.
func (t Ty) IsUnknown() bool { return t.kind == KindUnknown }

// ConvertibleTo reports whether a value of type t may be used where
// expected is required.
func (t Ty) ConvertibleTo(expected Ty) bool {
	if t.IsUnknown() || expected.IsUnknown() {
		return true
	}
	return t == expected
}

// Or merges an expected type with the actual one: expected wins unless it
// is Unknown.
func (t Ty) Or(actual Ty) Ty {
	if t.IsUnknown() {
		return actual
	}
	return t
}

func (t Ty) String() string {
	switch t.kind {
	case KindVoid:
		return "Void"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindNamed:
		return t.name
	default:
		return "{unknown}"
	}
}

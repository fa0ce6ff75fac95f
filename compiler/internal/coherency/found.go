package coherency

// Found is the state of a lookup.
type Found uint8

const (
	// FoundNone means no scope in the chain declares the name.
	FoundNone Found = iota
	// FoundSome means the name was found and is reachable.
	FoundSome
	// FoundNotAvailable means the name was found but visibility rules hide it.
	FoundNotAvailable
)

func (f Found) String() string {
	switch f {
	case FoundSome:
		return "some"
	case FoundNotAvailable:
		return "not available"
	default:
		return "none"
	}
}

// FoundItem is the result of a scoped lookup. Value is set for FoundSome and
// FoundNotAvailable.
type FoundItem[T any] struct {
	State Found
	Value T
}

func Some[T any](v T) FoundItem[T]         { return FoundItem[T]{State: FoundSome, Value: v} }
func NotAvailable[T any](v T) FoundItem[T] { return FoundItem[T]{State: FoundNotAvailable, Value: v} }
func None[T any]() FoundItem[T]            { return FoundItem[T]{} }

// Option returns the value only when it is reachable.
func (f FoundItem[T]) Option() (T, bool) {
	if f.State == FoundSome {
		return f.Value, true
	}
	var zero T
	return zero, false
}

func (f FoundItem[T]) IsSome() bool         { return f.State == FoundSome }
func (f FoundItem[T]) IsNotAvailable() bool { return f.State == FoundNotAvailable }
func (f FoundItem[T]) IsNone() bool         { return f.State == FoundNone }

package coherency

import "strings"

// Separator joins path segments when printing.
const Separator = "::"

// Path is a name as written at a use site. It may be partial: `pi` can
// stand for `math::pi`.
type Path []string

// FullPath is the complete identity under which a value is stored.
type FullPath []string

// NewPath builds a Path from its segments.
func NewPath(segments ...string) Path { return Path(segments) }

// ParsePath splits `a::b::c` into a Path.
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	return Path(strings.Split(s, Separator))
}

// Full promotes p to a FullPath as-is.
func (p Path) Full() FullPath { return FullPath(append([]string(nil), p...)) }

func (p Path) String() string { return strings.Join(p, Separator) }

// Join appends a segment to a full path.
func (f FullPath) Join(segment string) FullPath {
	out := make(FullPath, 0, len(f)+1)
	return append(append(out, f...), segment)
}

// EndsWith reports whether p is an exact contiguous suffix of f.
func (f FullPath) EndsWith(p Path) bool {
	if len(p) > len(f) {
		return false
	}
	off := len(f) - len(p)
	for i, seg := range p {
		if f[off+i] != seg {
			return false
		}
	}
	return true
}

// Equal reports segment-wise equality.
func (f FullPath) Equal(o FullPath) bool {
	if len(f) != len(o) {
		return false
	}
	for i := range f {
		if f[i] != o[i] {
			return false
		}
	}
	return true
}

func (f FullPath) String() string { return strings.Join(f, Separator) }

// key is the map key of a full path. Segments never contain NUL.
func (f FullPath) key() string { return strings.Join(f, "\x00") }

// Package wide implements the wide-character string representation. The
// code-unit width is platform-fixed: 16-bit UTF-16 units on Windows, 32-bit
// UTF-32 units everywhere else. Char is a type alias for the platform unit
// and UnitBytes is the compile-time width constant; callers branch on it the
// same way the conversion functions in the root package do.
package wide

import "slices"

// String is an immutable wide-character sequence. The backing storage always
// keeps one NUL code unit past the sequence end so Terminated can expose a
// C-style buffer without copying. Values are only constructed by this
// package; the zero value is the empty string.
type String struct {
	u []Char
}

var nullTerm = [1]Char{0}

// newTerminated copies units into fresh storage with a trailing NUL.
func newTerminated(units []Char) String {
	if len(units) == 0 {
		return String{}
	}
	buf := make([]Char, len(units)+1)
	copy(buf, units)
	return String{u: buf[:len(units)]}
}

// Of returns a String holding a copy of units.
func Of(units []Char) String {
	return newTerminated(units)
}

// Len returns the sequence length in code units.
func (s String) Len() int { return len(s.u) }

// IsEmpty reports whether the sequence has no code units.
func (s String) IsEmpty() bool { return len(s.u) == 0 }

// Units returns the code units without the terminator. The slice aliases the
// string's storage and must not be modified.
func (s String) Units() []Char { return s.u }

// Terminated returns the code units including the trailing NUL, aliasing the
// string's storage. Valid only for the String's lifetime.
func (s String) Terminated() []Char {
	if cap(s.u) > len(s.u) {
		return s.u[:len(s.u)+1]
	}
	return nullTerm[:]
}

// Equal reports whether two sequences hold identical code units.
func (s String) Equal(o String) bool {
	return slices.Equal(s.u, o.u)
}

// Package ustr implements the UTF-16 string representation the bridge
// converts to and from, plus the Buffer holder used to hand NUL-terminated
// UTF-16 sequences to C-style consumers.
//
// A String is either an owned copy of its code units or a read-only alias
// over memory owned elsewhere. Aliased strings are only valid for the
// source's lifetime; Clone makes them independent.
package ustr

import (
	"slices"

	"github.com/IllusiveMan196/strbridge/internal/u16"
)

// String is an immutable UTF-16 code-unit sequence.
type String struct {
	u     []uint16
	alias bool
}

// FromUTF8 converts a UTF-8 string, failing on malformed input.
func FromUTF8(s string) (String, error) {
	units, err := u16.Encode(s)
	if err != nil {
		return String{}, err
	}
	return String{u: units}, nil
}

// FromUTF8Lenient converts a UTF-8 string, substituting U+FFFD for
// malformed byte sequences.
func FromUTF8Lenient(s string) String {
	return String{u: u16.EncodeLenientAlloc(s)}
}

// FromUTF32 converts UTF-32 code units, failing on values that are not
// Unicode scalar values.
func FromUTF32(units []uint32) (String, error) {
	u, err := u16.EncodeUTF32(units)
	if err != nil {
		return String{}, err
	}
	return String{u: u}, nil
}

// FromUnits returns a String holding a copy of the given code units.
func FromUnits(units []uint16) String {
	return String{u: slices.Clone(units)}
}

// Alias returns a read-only String view over units without copying. The
// result is valid only while the source buffer is; it must not outlive or
// observe mutation of it.
func Alias(units []uint16) String {
	return String{u: units, alias: true}
}

// FromUTF16LE converts a UTF-16 little-endian byte sequence. Code units are
// taken as-is, so unpaired surrogate halves are preserved rather than
// substituted. The only failure is an odd byte count.
func FromUTF16LE(b []byte) (String, error) {
	u, err := u16.UnitsFromUTF16LE(b)
	if err != nil {
		return String{}, err
	}
	return String{u: u}, nil
}

// UTF16LE returns the sequence in UTF-16 little-endian byte form, code
// units preserved as-is.
func (s String) UTF16LE() []byte {
	return u16.UnitsToUTF16LE(s.u)
}

// Len returns the sequence length in code units.
func (s String) Len() int { return len(s.u) }

// IsEmpty reports whether the sequence has no code units.
func (s String) IsEmpty() bool { return len(s.u) == 0 }

// IsAlias reports whether the String aliases caller-owned memory.
func (s String) IsAlias() bool { return s.alias }

// Units returns the code units. The slice aliases the String's storage and
// must not be modified.
func (s String) Units() []uint16 { return s.u }

// UTF8 converts the sequence to a UTF-8 string, failing on unpaired
// surrogate halves.
func (s String) UTF8() (string, error) {
	return u16.Decode(s.u)
}

// String converts the sequence to UTF-8, substituting U+FFFD for unpaired
// surrogate halves.
func (s String) String() string {
	return u16.DecodeLenient(s.u)
}

// UTF32 converts the sequence to UTF-32 code units, failing on unpaired
// surrogate halves.
func (s String) UTF32() ([]uint32, error) {
	return u16.DecodeUTF32(s.u)
}

// Clone returns an owned deep copy, detaching any alias.
func (s String) Clone() String {
	return String{u: slices.Clone(s.u)}
}

// Equal reports whether two sequences hold identical code units.
func (s String) Equal(o String) bool {
	return slices.Equal(s.u, o.u)
}

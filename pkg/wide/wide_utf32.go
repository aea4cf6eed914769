//go:build !windows

package wide

import (
	"unicode"
	"unicode/utf8"

	"github.com/IllusiveMan196/strbridge/internal/u16"
	"github.com/IllusiveMan196/strbridge/zc"
)

// Char is the platform wide code unit: 32-bit, UTF-32 encoded.
type Char = uint32

// UnitBytes is the wide code-unit width in bytes.
const UnitBytes = 4

// FromUTF8 converts a UTF-8 string, failing on malformed input.
func FromUTF8(s string) (String, error) {
	if !utf8.ValidString(s) {
		return String{}, u16.ErrMalformedUTF8
	}
	return FromRunes([]rune(s)), nil
}

// FromUTF8Lenient converts a UTF-8 string, substituting U+FFFD for
// malformed byte sequences.
func FromUTF8Lenient(s string) String {
	return FromRunes([]rune(s))
}

// FromRunes converts a rune slice.
func FromRunes(r []rune) String {
	return newTerminated(zc.RunesToU32(r))
}

// UTF8 converts the sequence to a UTF-8 string, failing on code units that
// are not Unicode scalar values.
func (s String) UTF8() (string, error) {
	for _, c := range s.u {
		if c > unicode.MaxRune || (c >= 0xD800 && c < 0xE000) {
			return "", u16.ErrInvalidUTF32
		}
	}
	return string(zc.U32ToRunes(s.u)), nil
}

// String converts the sequence to UTF-8, substituting U+FFFD for invalid
// code units.
func (s String) String() string {
	return string(zc.U32ToRunes(s.u))
}

// Runes returns the decoded code points as a fresh slice.
func (s String) Runes() []rune {
	return append([]rune(nil), zc.U32ToRunes(s.u)...)
}

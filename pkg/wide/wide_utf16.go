//go:build windows

package wide

import (
	"unicode/utf16"

	"github.com/IllusiveMan196/strbridge/internal/u16"
)

// Char is the platform wide code unit: 16-bit, UTF-16 encoded.
type Char = uint16

// UnitBytes is the wide code-unit width in bytes.
const UnitBytes = 2

// FromUTF8 converts a UTF-8 string, failing on malformed input.
func FromUTF8(s string) (String, error) {
	units, err := u16.Encode(s)
	if err != nil {
		return String{}, err
	}
	return newTerminated(units), nil
}

// FromUTF8Lenient converts a UTF-8 string, substituting U+FFFD for
// malformed byte sequences.
func FromUTF8Lenient(s string) String {
	return newTerminated(u16.EncodeLenientAlloc(s))
}

// FromRunes converts a rune slice.
func FromRunes(r []rune) String {
	return newTerminated(utf16.Encode(r))
}

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

// Runes returns the decoded code points as a fresh slice.
func (s String) Runes() []rune {
	return utf16.Decode(s.u)
}

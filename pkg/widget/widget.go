// Package widget implements the platform-widget string representation: an
// opaque wrapper over the platform wide encoding with UTF-8 accessors,
// matching the conversion contract of a toolkit string type. The internal
// sequence always holds valid Unicode scalar values, so the UTF-8 accessor
// cannot fail.
package widget

import (
	"github.com/IllusiveMan196/strbridge/internal/u16"
	"github.com/IllusiveMan196/strbridge/pkg/wide"
)

// String is an immutable widget-toolkit string.
type String struct {
	w wide.String
}

// FromUTF8 converts a UTF-8 string, failing on malformed input.
func FromUTF8(s string) (String, error) {
	w, err := wide.FromUTF8(s)
	if err != nil {
		return String{}, err
	}
	return String{w: w}, nil
}

// FromUTF8Unchecked converts a UTF-8 string without strict validation;
// malformed byte sequences are substituted with U+FFFD. Intended for input
// already known to be valid.
func FromUTF8Unchecked(s string) String {
	return String{w: wide.FromUTF8Lenient(s)}
}

// FromUTF16LE converts a UTF-16 little-endian byte sequence. Widget strings
// hold only Unicode scalar values, so malformed input, unpaired surrogate
// halves included, is substituted with U+FFFD; the error is only ever a
// transform failure.
func FromUTF16LE(b []byte) (String, error) {
	s, err := u16.DecodeUTF16LE(b)
	if err != nil {
		return String{}, err
	}
	return FromUTF8Unchecked(s), nil
}

// UTF16LE returns the string in UTF-16 little-endian byte form.
func (s String) UTF16LE() ([]byte, error) {
	return u16.EncodeUTF16LE(s.UTF8())
}

// FromWide returns a String holding a copy of the wide sequence.
func FromWide(w wide.String) String {
	return String{w: wide.Of(w.Units())}
}

// UTF8 returns the UTF-8 form of the string.
func (s String) UTF8() string {
	return s.w.String()
}

// String implements fmt.Stringer.
func (s String) String() string { return s.UTF8() }

// Wide returns a copy of the string's wide-character sequence.
func (s String) Wide() wide.String {
	return wide.Of(s.w.Units())
}

// WideRef returns the internal wide sequence without copying, for the
// zero-copy view paths. The result aliases the String's storage and must be
// treated as read-only.
func (s String) WideRef() wide.String { return s.w }

// Len returns the string length in platform wide code units.
func (s String) Len() int { return s.w.Len() }

// IsEmpty reports whether the string is empty.
func (s String) IsEmpty() bool { return s.w.IsEmpty() }

// Equal reports whether two strings hold identical code units.
func (s String) Equal(o String) bool { return s.w.Equal(o.w) }

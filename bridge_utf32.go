//go:build !windows

package strbridge

import (
	"github.com/IllusiveMan196/strbridge/internal/u16"
	"github.com/IllusiveMan196/strbridge/pkg/ustr"
	"github.com/IllusiveMan196/strbridge/pkg/wide"
)

// The platform wide code unit is 32-bit UTF-32, so every crossing between
// wide and ustr is a real UTF-32/UTF-16 transcode and always copies.

// UFromWide converts a wide sequence to a Unicode-library string, failing
// on code units that are not Unicode scalar values.
func UFromWide(w wide.String) (ustr.String, error) {
	return ustr.FromUTF32(w.Units())
}

// WideFromU converts a Unicode-library string to a wide sequence, failing
// on unpaired surrogate halves.
func WideFromU(u ustr.String) (wide.String, error) {
	units, err := u.UTF32()
	if err != nil {
		return wide.String{}, err
	}
	return wide.Of(units), nil
}

// RawFromWide produces a NUL-terminated UTF-16 buffer from a wide sequence.
// Never fails: invalid code units are substituted leniently and empty or
// unconvertible input yields the shared empty buffer.
func RawFromWide(w wide.String) ustr.Buffer {
	units := w.Units()
	n := u16.LenientLen32(units)
	if n == 0 {
		return ustr.Null()
	}
	buf := ustr.NewOwned(int32(n))
	if !u16.EncodeLenient32(buf.Data(), units) {
		// cannot happen after a successful measure pass; prefer an empty
		// result over a partial buffer
		buf.Release()
		return ustr.Null()
	}
	return buf
}

// Package strbridge converts character data between the string
// representations used across the application's subsystems: UTF-8 Go
// strings, platform wide-character sequences (wide.String), widget-toolkit
// strings (widget.String) and UTF-16 Unicode-library strings (ustr.String).
//
// Copying conversions validate their input and return an error on malformed
// data. View-constructing conversions (UFromWide, UFromWidget on 16-bit
// platforms) alias the source's memory and are only valid for its lifetime.
// The Raw* entry points never fail: they produce a NUL-terminated UTF-16
// buffer unconditionally, degrading to the shared empty buffer on malformed
// or empty input so the result can always be handed to a C-style consumer.
package strbridge

import (
	"github.com/IllusiveMan196/strbridge/internal/u16"
	"github.com/IllusiveMan196/strbridge/pkg/ustr"
	"github.com/IllusiveMan196/strbridge/pkg/wide"
	"github.com/IllusiveMan196/strbridge/pkg/widget"
)

// Sentinel errors surfaced by the strict conversion paths.
var (
	ErrMalformedUTF8     = u16.ErrMalformedUTF8
	ErrUnpairedSurrogate = u16.ErrUnpairedSurrogate
	ErrInvalidUTF32      = u16.ErrInvalidUTF32
)

// UTF8FromWide converts a wide sequence to UTF-8, failing on malformed
// input.
func UTF8FromWide(w wide.String) (string, error) {
	return w.UTF8()
}

// WideFromUTF8 converts a UTF-8 string to a wide sequence, failing on
// malformed input.
func WideFromUTF8(s string) (wide.String, error) {
	return wide.FromUTF8(s)
}

// WidgetFromUTF8 converts a UTF-8 string to a widget string, failing on
// malformed input.
func WidgetFromUTF8(s string) (widget.String, error) {
	return widget.FromUTF8(s)
}

// UTF8FromWidget converts a widget string to UTF-8.
func UTF8FromWidget(w widget.String) string {
	return w.UTF8()
}

// WideFromWidget converts a widget string to a wide sequence, copying.
func WideFromWidget(w widget.String) wide.String {
	return w.Wide()
}

// WidgetFromWide converts a wide sequence to a widget string, copying.
func WidgetFromWide(w wide.String) widget.String {
	return widget.FromWide(w)
}

// UFromUTF8 converts a UTF-8 string to a Unicode-library string, failing on
// malformed input.
func UFromUTF8(s string) (ustr.String, error) {
	return ustr.FromUTF8(s)
}

// UTF8FromU converts a Unicode-library string to UTF-8, failing on unpaired
// surrogate halves.
func UTF8FromU(u ustr.String) (string, error) {
	return u.UTF8()
}

// UFromWidget converts a widget string to a Unicode-library string. Same
// contract as UFromWide: on 16-bit wide platforms the result is a read-only
// view bounded by the widget string's lifetime.
func UFromWidget(w widget.String) (ustr.String, error) {
	return UFromWide(w.WideRef())
}

// WidgetFromU converts a Unicode-library string to a widget string, always
// copying.
func WidgetFromU(u ustr.String) (widget.String, error) {
	w, err := WideFromU(u)
	if err != nil {
		return widget.String{}, err
	}
	return widget.FromWide(w), nil
}

// RawFromUTF8 produces a NUL-terminated UTF-16 buffer from UTF-8 input.
// It never fails: malformed sequences are substituted leniently and empty
// or unconvertible input yields the shared empty buffer.
func RawFromUTF8(s string) ustr.Buffer {
	n := u16.LenientLen(s)
	if n == 0 {
		return ustr.Null()
	}
	buf := ustr.NewOwned(int32(n))
	if !u16.EncodeLenient(buf.Data(), s) {
		// cannot happen after a successful measure pass; prefer an empty
		// result over a partial buffer
		buf.Release()
		return ustr.Null()
	}
	return buf
}

// RawFromWidget produces a NUL-terminated UTF-16 buffer from a widget
// string. Never fails; same lifetime contract as RawFromWide.
func RawFromWidget(w widget.String) ustr.Buffer {
	return RawFromWide(w.WideRef())
}

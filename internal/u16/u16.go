// Package u16 implements the trusted transcoding primitives behind the
// string bridge: strict and lenient UTF-8/UTF-16 transforms, UTF-32
// transcoding and the UTF-16LE byte form used for OS and wire interop.
//
// Strict functions fail with a sentinel error on malformed input. Lenient
// functions never fail; malformed sequences are substituted with U+FFFD.
package u16

import (
	"bytes"
	"encoding/binary"
	"errors"
	"slices"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/IllusiveMan196/strbridge/zc"
)

var (
	ErrMalformedUTF8     = errors.New("u16: malformed UTF-8 input")
	ErrUnpairedSurrogate = errors.New("u16: unpaired surrogate half")
	ErrInvalidUTF32      = errors.New("u16: invalid UTF-32 code unit")
)

// UTF-16 surrogate range bounds.
const (
	surr1 = 0xD800
	surr2 = 0xDC00
	surr3 = 0xE000
)

var utf16le = xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM)

// Encode converts UTF-8 input to UTF-16 code units, failing on malformed
// byte sequences.
func Encode(s string) ([]uint16, error) {
	if !utf8.ValidString(s) {
		return nil, ErrMalformedUTF8
	}
	return utf16.Encode([]rune(s)), nil
}

// Decode converts UTF-16 code units to a UTF-8 string, failing on unpaired
// surrogate halves.
func Decode(u []uint16) (string, error) {
	if err := Validate(u); err != nil {
		return "", err
	}
	return string(utf16.Decode(u)), nil
}

// Validate reports whether u is well-formed UTF-16, i.e. every surrogate
// half is part of a high/low pair.
func Validate(u []uint16) error {
	for i := 0; i < len(u); i++ {
		switch c := u[i]; {
		case c >= surr1 && c < surr2:
			if i+1 >= len(u) || u[i+1] < surr2 || u[i+1] >= surr3 {
				return ErrUnpairedSurrogate
			}
			i++
		case c >= surr2 && c < surr3:
			return ErrUnpairedSurrogate
		}
	}
	return nil
}

// DecodeLenient converts UTF-16 code units to a UTF-8 string, substituting
// U+FFFD for unpaired surrogate halves.
func DecodeLenient(u []uint16) string {
	return string(utf16.Decode(u))
}

// EncodeLenientAlloc converts UTF-8 input to freshly allocated UTF-16 code
// units, substituting U+FFFD for malformed byte sequences.
func EncodeLenientAlloc(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// LenientLen is the measure pass of the lenient UTF-8 transform: the number
// of UTF-16 code units EncodeLenient will produce, substitutions included.
func LenientLen(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++ // substituted with U+FFFD, one unit
		}
	}
	return n
}

// EncodeLenient writes the lenient UTF-16 transform of s into dst followed
// by a NUL terminator. It reports false if dst is too small; dst sized with
// LenientLen(s)+1 always succeeds.
func EncodeLenient(dst []uint16, s string) bool {
	i := 0
	for _, r := range s {
		if utf16.RuneLen(r) < 0 {
			r = utf8.RuneError
		}
		if r < 0x10000 {
			if i+1 >= len(dst) {
				return false
			}
			dst[i] = uint16(r)
			i++
		} else {
			if i+2 >= len(dst) {
				return false
			}
			r1, r2 := utf16.EncodeRune(r)
			dst[i] = uint16(r1)
			dst[i+1] = uint16(r2)
			i += 2
		}
	}
	if i >= len(dst) {
		return false
	}
	dst[i] = 0
	return true
}

func validScalar(u uint32) bool {
	return u <= unicode.MaxRune && !(u >= surr1 && u < surr3)
}

// EncodeUTF32 converts UTF-32 code units to UTF-16, failing on surrogate
// values or units beyond the Unicode range.
func EncodeUTF32(u []uint32) ([]uint16, error) {
	for _, c := range u {
		if !validScalar(c) {
			return nil, ErrInvalidUTF32
		}
	}
	return utf16.Encode(zc.U32ToRunes(u)), nil
}

// DecodeUTF32 converts UTF-16 code units to UTF-32, failing on unpaired
// surrogate halves.
func DecodeUTF32(u []uint16) ([]uint32, error) {
	if err := Validate(u); err != nil {
		return nil, err
	}
	return zc.RunesToU32(utf16.Decode(u)), nil
}

// LenientLen32 is the measure pass of the lenient UTF-32 transform.
func LenientLen32(u []uint32) int {
	n := 0
	for _, c := range u {
		if validScalar(c) {
			n += utf16.RuneLen(rune(c))
		} else {
			n++
		}
	}
	return n
}

// EncodeLenient32 writes the lenient UTF-32 to UTF-16 transform of u into
// dst followed by a NUL terminator, substituting U+FFFD for invalid units.
// It reports false if dst is too small.
func EncodeLenient32(dst []uint16, u []uint32) bool {
	i := 0
	for _, c := range u {
		r := rune(c)
		if !validScalar(c) {
			r = utf8.RuneError
		}
		if r < 0x10000 {
			if i+1 >= len(dst) {
				return false
			}
			dst[i] = uint16(r)
			i++
		} else {
			if i+2 >= len(dst) {
				return false
			}
			r1, r2 := utf16.EncodeRune(r)
			dst[i] = uint16(r1)
			dst[i+1] = uint16(r2)
			i += 2
		}
	}
	if i >= len(dst) {
		return false
	}
	dst[i] = 0
	return true
}

// DecodeUTF16LE converts a UTF-16 little-endian byte sequence to a UTF-8
// string. Malformed input is substituted, not rejected; the error is only
// ever a transform failure.
func DecodeUTF16LE(b []byte) (string, error) {
	out, _, err := transform.Bytes(utf16le.NewDecoder(), b)
	if err != nil {
		return "", err
	}
	return zc.BytesToString(out), nil
}

// EncodeUTF16LE converts a UTF-8 string to its UTF-16 little-endian byte
// form.
func EncodeUTF16LE(s string) ([]byte, error) {
	out, _, err := transform.Bytes(utf16le.NewEncoder(), zc.StringToBytes(s))
	if err != nil {
		return nil, err
	}
	return out, nil
}

var hostLE = binary.NativeEndian.Uint16([]byte{0x34, 0x12}) == 0x1234

// UnitsToUTF16LE returns the UTF-16LE byte form of raw code units. Unlike
// EncodeUTF16LE it does not transcode, so unpaired surrogate halves come
// through unchanged.
func UnitsToUTF16LE(u []uint16) []byte {
	if len(u) == 0 {
		return nil
	}
	if hostLE {
		return bytes.Clone(zc.U16ToBytes(u))
	}
	b := make([]byte, 2*len(u))
	for i, c := range u {
		binary.LittleEndian.PutUint16(b[2*i:], c)
	}
	return b
}

// UnitsFromUTF16LE parses UTF-16LE bytes into raw code units, preserving
// unpaired surrogate halves. The only failure is an odd byte count.
func UnitsFromUTF16LE(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, zc.ErrOddLength
	}
	if len(b) == 0 {
		return nil, nil
	}
	if hostLE {
		if u, err := zc.BytesToU16(b); err == nil {
			return slices.Clone(u), nil
		}
		// misaligned input takes the portable path below
	}
	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return u, nil
}

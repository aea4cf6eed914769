// Package zc (zero-copy) holds the unsafe reinterpretation primitives used
// by the string bridge. Every function here aliases the input's backing
// memory instead of copying it, so the result is only valid for the input's
// lifetime and must be treated as read-only unless the caller owns both ends.
//
// All unsafe code in the module lives in this package; the representation
// packages build their zero-copy paths on top of these factories.
package zc

import (
	"errors"
	"unsafe"
)

var (
	ErrMisaligned = errors.New("zc: byte buffer not aligned for uint16 units")
	ErrOddLength  = errors.New("zc: byte length not a multiple of the unit size")
)

// StringToBytes aliases s as a byte slice without copying. Strings are
// immutable, so the returned slice must not be written to.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesToString aliases b as a string without copying. The caller must not
// modify b afterwards.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// U16ToBytes aliases u as its in-memory byte form, host endianness. Byte
// alignment is always satisfied, so this direction cannot fail.
func U16ToBytes(u []uint16) []byte {
	if len(u) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(u))), len(u)*2)
}

// BytesToU16 aliases b as []uint16, host endianness. It fails on an odd
// byte count or a buffer whose start is not aligned for uint16 access.
func BytesToU16(b []byte) ([]uint16, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%2 != 0 {
		return nil, ErrOddLength
	}
	if uintptr(unsafe.Pointer(unsafe.SliceData(b)))%unsafe.Alignof(uint16(0)) != 0 {
		return nil, ErrMisaligned
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/2), nil
}

// RunesToU32 aliases a rune slice as []uint32. rune is int32, so element
// size and alignment are identical and no check is needed.
func RunesToU32(r []rune) []uint32 {
	if len(r) == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(r))), len(r))
}

// U32ToRunes aliases a []uint32 as a rune slice. Inverse of RunesToU32;
// values above unicode.MaxRune come through unchanged and must be handled
// by the caller.
func U32ToRunes(u []uint32) []rune {
	if len(u) == 0 {
		return nil
	}
	return unsafe.Slice((*rune)(unsafe.Pointer(unsafe.SliceData(u))), len(u))
}

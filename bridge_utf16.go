//go:build windows

package strbridge

import (
	"github.com/IllusiveMan196/strbridge/pkg/ustr"
	"github.com/IllusiveMan196/strbridge/pkg/wide"
)

// The platform wide code unit is 16-bit UTF-16, the same bits ustr uses, so
// the wide-to-ustr direction needs no transcoding at all.

// UFromWide constructs a read-only Unicode-library string view over the
// wide sequence's storage without copying. The view is only valid for the
// source's lifetime. The error is always nil on this platform.
func UFromWide(w wide.String) (ustr.String, error) {
	return ustr.Alias(w.Units()), nil
}

// WideFromU converts a Unicode-library string to a wide sequence, copying.
// The error is always nil on this platform.
func WideFromU(u ustr.String) (wide.String, error) {
	return wide.Of(u.Units()), nil
}

// RawFromWide produces a NUL-terminated UTF-16 buffer aliasing the wide
// sequence's own storage; no allocation, no copy. The source must outlive
// the returned buffer. Never fails.
func RawFromWide(w wide.String) ustr.Buffer {
	return ustr.NewNonOwned(w.Terminated())
}

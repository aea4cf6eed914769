//go:build !windows

package strbridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IllusiveMan196/strbridge/pkg/ustr"
	"github.com/IllusiveMan196/strbridge/pkg/wide"
)

func TestWideUnitWidth(t *testing.T) {
	require.Equal(t, 4, wide.UnitBytes)
}

func TestUFromWideCopiesOn32Bit(t *testing.T) {
	w, err := WideFromUTF8("café")
	require.NoError(t, err)
	u, err := UFromWide(w)
	require.NoError(t, err)
	assert.False(t, u.IsAlias(), "UTF-32 platform must transcode, not alias")
	assert.Equal(t, []uint16{0x63, 0x61, 0x66, 0xE9}, u.Units())
}

func TestUFromWideRejectsInvalidUnits(t *testing.T) {
	w := wide.Of([]wide.Char{'a', 0xD800})
	_, err := UFromWide(w)
	require.ErrorIs(t, err, ErrInvalidUTF32)
}

func TestRawFromWideSubstitutesInvalidUnits(t *testing.T) {
	w := wide.Of([]wide.Char{'a', 0xD800, 'b'})
	buf := RawFromWide(w)
	defer buf.Release()
	require.True(t, buf.IsOwned())
	assert.Equal(t, []uint16{'a', 0xFFFD, 'b'}, buf.Units())
}

func TestWideFromURejectsUnpaired(t *testing.T) {
	u, err := UFromUTF8("ok")
	require.NoError(t, err)
	if _, err := WideFromU(u); err != nil {
		t.Fatalf("valid input must convert, got %v", err)
	}
	bad := ustr.FromUnits([]uint16{0xDC00})
	_, err = WideFromU(bad)
	require.ErrorIs(t, err, ErrUnpairedSurrogate)
}

//go:build windows

package strbridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IllusiveMan196/strbridge/pkg/wide"
)

func TestWideUnitWidth(t *testing.T) {
	require.Equal(t, 2, wide.UnitBytes)
}

func TestUFromWideZeroCopy(t *testing.T) {
	w, err := WideFromUTF8("café")
	require.NoError(t, err)
	u, err := UFromWide(w)
	require.NoError(t, err)
	require.True(t, u.IsAlias(), "16-bit platform must alias, not copy")
	// byte-for-byte the same storage
	assert.Equal(t, []uint16{0x63, 0x61, 0x66, 0xE9}, u.Units())
	assert.Same(t, &w.Units()[0], &u.Units()[0])
}

func TestRawFromWideZeroCopy(t *testing.T) {
	w, err := WideFromUTF8("café")
	require.NoError(t, err)
	buf := RawFromWide(w)
	require.False(t, buf.IsOwned())
	require.Equal(t, int32(0), buf.Capacity())
	assert.Equal(t, []uint16{0x63, 0x61, 0x66, 0xE9}, buf.Units())
	assert.Same(t, &w.Terminated()[0], &buf.Data()[0])
	buf.Release() // no-op for a non-owned alias
	assert.Equal(t, wide.Char(0x63), w.Units()[0])
}

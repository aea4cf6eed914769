package strbridge

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCafeScenario(t *testing.T) {
	in := "café"
	require.Len(t, []byte(in), 5)

	w, err := WideFromUTF8(in)
	require.NoError(t, err)
	require.Equal(t, 4, w.Len())

	out, err := UTF8FromWide(w)
	require.NoError(t, err)
	require.Equal(t, in, out)
	require.Len(t, []byte(out), 5)
}

func TestWideRoundTrip(t *testing.T) {
	for _, s := range []string{"", "ascii", "café", "日本語", "a\U0001F600b", "mixed ħēļлo"} {
		w, err := WideFromUTF8(s)
		require.NoError(t, err, s)
		out, err := UTF8FromWide(w)
		require.NoError(t, err, s)
		assert.Equal(t, s, out)
	}
}

func TestWideFromUTF8Strict(t *testing.T) {
	_, err := WideFromUTF8("a\x80b")
	require.ErrorIs(t, err, ErrMalformedUTF8)
}

func TestWidgetConversions(t *testing.T) {
	wg, err := WidgetFromUTF8("héllo")
	require.NoError(t, err)
	assert.Equal(t, "héllo", UTF8FromWidget(wg))

	w := WideFromWidget(wg)
	back := WidgetFromWide(w)
	assert.True(t, back.Equal(wg))

	_, err = WidgetFromUTF8("\xff")
	require.ErrorIs(t, err, ErrMalformedUTF8)
}

func TestUConversions(t *testing.T) {
	u, err := UFromUTF8("café")
	require.NoError(t, err)
	s, err := UTF8FromU(u)
	require.NoError(t, err)
	assert.Equal(t, "café", s)

	w, err := WideFromU(u)
	require.NoError(t, err)
	out, err := UTF8FromWide(w)
	require.NoError(t, err)
	assert.Equal(t, "café", out)

	wg, err := WidgetFromU(u)
	require.NoError(t, err)
	assert.Equal(t, "café", UTF8FromWidget(wg))
}

// The view-constructing conversion and the copying conversion must produce
// the same code-unit sequence for the same input, whether or not the view
// was zero-copy on this platform.
func TestViewMatchesCopy(t *testing.T) {
	for _, s := range []string{"ascii", "café", "日本語", "a\U0001F600b"} {
		w, err := WideFromUTF8(s)
		require.NoError(t, err)
		view, err := UFromWide(w)
		require.NoError(t, err)
		copied, err := UFromUTF8(s)
		require.NoError(t, err)
		assert.True(t, view.Equal(copied), s)

		wg := WidgetFromWide(w)
		fromWidget, err := UFromWidget(wg)
		require.NoError(t, err)
		assert.True(t, fromWidget.Equal(copied), s)
	}
}

func TestRawFromUTF8(t *testing.T) {
	buf := RawFromUTF8("café")
	defer buf.Release()
	require.True(t, buf.IsOwned())
	require.Equal(t, int32(5), buf.Capacity())
	assert.Equal(t, []uint16{0x63, 0x61, 0x66, 0xE9}, buf.Units())
	data := buf.Data()
	assert.Equal(t, uint16(0), data[len(data)-1])
}

func TestRawEmptyInput(t *testing.T) {
	w, err := WideFromUTF8("")
	require.NoError(t, err)

	a := RawFromUTF8("")
	require.False(t, a.IsOwned())
	require.Equal(t, int32(0), a.Capacity())
	require.Equal(t, []uint16{0}, a.Data())

	b := RawFromWide(w)
	require.False(t, b.IsOwned())
	require.Equal(t, int32(0), b.Capacity())
	require.Equal(t, []uint16{0}, b.Data())
}

func TestRawMalformedInput(t *testing.T) {
	// a lone continuation byte must not fail; it is substituted
	buf := RawFromUTF8("\x80")
	defer buf.Release()
	data := buf.Data()
	require.NotEmpty(t, data)
	require.Equal(t, uint16(0), data[len(data)-1])
	assert.Equal(t, []uint16{0xFFFD}, buf.Units())
}

func TestRawFromWide(t *testing.T) {
	w, err := WideFromUTF8("café")
	require.NoError(t, err)
	buf := RawFromWide(w)
	defer buf.Release()
	assert.Equal(t, []uint16{0x63, 0x61, 0x66, 0xE9}, buf.Units())
	data := buf.Data()
	assert.Equal(t, uint16(0), data[len(data)-1])
}

func TestRawFromWidget(t *testing.T) {
	wg, err := WidgetFromUTF8("hé")
	require.NoError(t, err)
	buf := RawFromWidget(wg)
	defer buf.Release()
	assert.Equal(t, []uint16{0x68, 0xE9}, buf.Units())
}

func TestRawEmptyConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				buf := RawFromUTF8("")
				if buf.IsOwned() {
					t.Error("empty buffer must be non-owned")
					return
				}
				if buf.Data()[0] != 0 {
					t.Error("shared empty buffer corrupted")
					return
				}
				buf.Release()
			}
		}()
	}
	wg.Wait()
}

func FuzzRawFromUTF8(f *testing.F) {
	f.Add("café")
	f.Add("")
	f.Add("\x80")
	f.Add("a\xc3\x28b")
	f.Fuzz(func(t *testing.T, s string) {
		buf := RawFromUTF8(s)
		defer buf.Release()
		data := buf.Data()
		if len(data) == 0 {
			t.Fatal("raw buffer must never be empty")
		}
		if data[len(data)-1] != 0 {
			t.Fatalf("raw buffer must be NUL-terminated, got %#x", data[len(data)-1])
		}
	})
}

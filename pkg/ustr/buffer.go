package ustr

import "sync"

// Buffer holds a NUL-terminated UTF-16 sequence that is either an owned
// allocation or a read-only alias into memory owned elsewhere. Owned storage
// is recycled through a pool, so a Buffer must be released exactly once and
// ownership hands off through Move, never by copying the value: a copied
// owned Buffer would return its storage to the pool twice, and a copied
// alias would have no lifetime bound.
//
// Write access to Data is legitimate only between NewOwned and the point the
// Buffer is first exposed to other code.
type Buffer struct {
	owned bool
	data  []uint16
	// capacity in code units, terminator included. Only meaningful when
	// owned; -1 marks a non-owned buffer of unknown size.
	capacity int32
}

// nullData backs every Null buffer. Never written, never pooled, safe to
// share between goroutines.
var nullData = [1]uint16{0}

var ownedPool = sync.Pool{
	New: func() any {
		s := make([]uint16, 0, 64)
		return &s
	},
}

// NewOwned allocates an owned buffer with room for length code units plus
// the NUL terminator. Storage may come from the recycle pool and is not
// zeroed beyond what the caller writes.
func NewOwned(length int32) Buffer {
	n := int(length) + 1
	p := ownedPool.Get().(*[]uint16)
	s := *p
	if cap(s) < n {
		s = make([]uint16, n)
	} else {
		s = s[:n]
	}
	return Buffer{owned: true, data: s, capacity: int32(n)}
}

// NewNonOwned wraps an existing NUL-terminated sequence without copying or
// taking ownership. data must stay valid and unchanged for the Buffer's
// lifetime. An empty sequence degrades to Null.
func NewNonOwned(data []uint16) Buffer {
	if len(data) == 0 {
		return Null()
	}
	return Buffer{owned: false, data: data, capacity: -1}
}

// Null returns a non-owned buffer holding the shared single-NUL sequence.
// The backing storage is immutable and never released, so concurrent Null
// buffers are safe.
func Null() Buffer {
	return Buffer{owned: false, data: nullData[:], capacity: 0}
}

// Move transfers the buffer, owned or aliased, to the returned value and
// neutralizes the receiver: afterwards the receiver owns nothing, aliases
// nothing and Release on it is a no-op.
func (b *Buffer) Move() Buffer {
	m := *b
	b.owned = false
	b.data = nil
	b.capacity = 0
	return m
}

// Release returns owned storage to the pool and neutralizes the buffer.
// It is a no-op on non-owned, moved-from and already-released buffers.
func (b *Buffer) Release() {
	if !b.owned {
		return
	}
	s := b.data[:0]
	ownedPool.Put(&s)
	b.owned = false
	b.data = nil
	b.capacity = 0
}

// IsOwned reports whether the buffer owns its storage.
func (b *Buffer) IsOwned() bool { return b.owned }

// Data returns the full NUL-terminated storage, terminator included. Nil
// for a moved-from buffer.
func (b *Buffer) Data() []uint16 { return b.data }

// Units returns the code units without the terminator.
func (b *Buffer) Units() []uint16 {
	if len(b.data) == 0 {
		return nil
	}
	return b.data[:len(b.data)-1]
}

// Capacity returns the available storage in code units for owned buffers
// and 0 for non-owned ones.
func (b *Buffer) Capacity() int32 {
	if b.capacity < 0 {
		return 0
	}
	return b.capacity
}

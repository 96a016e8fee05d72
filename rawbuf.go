package vec

import "unsafe"

// RawBuffer owns a contiguous block of reserved slots for up to Cap()
// elements of type T. The buffer has no notion of which slots hold live
// elements; that bookkeeping belongs entirely to its owner. A RawBuffer
// must never be copied: ownership of the block is unique, and buffers
// change hands only through MoveFrom and Swap.
//
// The block is allocated as typed memory so that reserved slots remain
// visible to the garbage collector. Unlike raw byte storage, reserved
// slots therefore read as zero values rather than garbage; "constructed"
// is still purely a property tracked by the owner.
type RawBuffer[T any] struct {
	mem []T // reserved slots; len(mem) is the capacity, nil iff capacity 0
}

// NewRawBuffer allocates storage for n element slots without constructing
// any element. n == 0 yields a zero buffer with a nil base, which is
// always valid to hold, swap, and release. n < 0 panics.
func NewRawBuffer[T any](n int) RawBuffer[T] {
	if n < 0 {
		panic("vec: negative buffer capacity")
	}
	if n == 0 {
		return RawBuffer[T]{}
	}
	return RawBuffer[T]{mem: make([]T, n)}
}

// Cap returns the number of element slots the buffer holds.
func (b *RawBuffer[T]) Cap() int {
	return len(b.mem)
}

// Base returns the address of slot 0, or nil for a zero buffer.
func (b *RawBuffer[T]) Base() *T {
	if len(b.mem) == 0 {
		return nil
	}
	return &b.mem[0]
}

// At returns the address of slot i. The one-past-end address At(Cap())
// is explicitly permitted so end-of-range positions can be computed;
// anything beyond that panics. For a zero buffer only At(0) is valid
// and returns nil.
func (b *RawBuffer[T]) At(i int) *T {
	if i < 0 || i > len(b.mem) {
		panic("vec: buffer offset out of range")
	}
	if len(b.mem) == 0 {
		return nil
	}
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(&b.mem[0]), uintptr(i)*unsafe.Sizeof(zero)))
}

// Swap exchanges the blocks of two buffers in O(1).
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.mem, other.mem = other.mem, b.mem
}

// MoveFrom transfers ownership of other's block to b, dropping whatever
// b held. other is reset to a zero buffer so it can never release a
// block it no longer owns.
func (b *RawBuffer[T]) MoveFrom(other *RawBuffer[T]) {
	b.mem = other.mem
	other.mem = nil
}

// Release drops the block, returning the buffer to the zero state. The
// owner must already have torn down any live elements it placed in the
// block; Release never touches element state. Safe to call repeatedly
// and on a zero buffer.
func (b *RawBuffer[T]) Release() {
	b.mem = nil
}

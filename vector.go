package vec

import "iter"

// Vector is a generic contiguous growable array. It owns at most one
// RawBuffer and is solely responsible for constructing, relocating, and
// tearing down the elements inside it. Slots [0, Len()) are live;
// slots [Len(), Cap()) are reserved. Not goroutine-safe.
type Vector[T any] struct {
	buf  RawBuffer[T]
	size int
	life Lifecycle[T]

	reallocs  int // buffer replacements (growth and Reserve)
	relocated int // elements moved or cloned across buffers
}

// New returns an empty vector: length 0, capacity 0, no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithLifecycle returns an empty vector whose elements are managed
// by life.
func NewWithLifecycle[T any](life Lifecycle[T]) *Vector[T] {
	return &Vector[T]{life: life}
}

// NewSized returns a vector of n default-constructed elements with
// capacity at least n. n < 0 panics.
func NewSized[T any](n int) *Vector[T] {
	return NewSizedWithLifecycle[T](n, Lifecycle[T]{})
}

// NewSizedWithLifecycle is NewSized with an element lifecycle. The
// lifecycle's New hook, when set, produces each element.
func NewSizedWithLifecycle[T any](n int, life Lifecycle[T]) *Vector[T] {
	v := &Vector[T]{buf: NewRawBuffer[T](n), size: n, life: life}
	if life.New != nil {
		for i := 0; i < n; i++ {
			*v.buf.At(i) = life.New()
		}
	}
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots the vector can fill before it must
// reallocate.
func (v *Vector[T]) Cap() int {
	return v.buf.Cap()
}

// At returns the address of element i. The address is valid only until
// the next structural mutation of the vector. Panics if i is not a live
// position.
func (v *Vector[T]) At(i int) *T {
	v.checkIndex(i)
	return v.buf.At(i)
}

// Get returns a copy of element i. Panics if i is not a live position.
func (v *Vector[T]) Get(i int) T {
	v.checkIndex(i)
	return *v.buf.At(i)
}

// Set overwrites element i with val through the lifecycle's assignment
// operation. Panics if i is not a live position.
func (v *Vector[T]) Set(i int, val T) error {
	v.checkIndex(i)
	return v.assignSlot(v.buf.At(i), &val)
}

// Elems returns the live elements as a slice view over the vector's
// buffer. The view shares storage with the vector and is valid only
// until the next structural mutation. For an empty vector the view is
// empty.
func (v *Vector[T]) Elems() []T {
	return v.buf.mem[:v.size]
}

// All returns an iterator over (index, element) pairs in order. The
// vector must not be structurally mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.buf.At(i)) {
				return
			}
		}
	}
}

// Swap exchanges the contents of two vectors in O(1), lifecycles and
// counters included.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.life, other.life = other.life, v.life
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
	v.relocated, other.relocated = other.relocated, v.relocated
}

// Take transfers the vector's contents into a new vector in O(1),
// leaving v empty with capacity 0.
func (v *Vector[T]) Take() *Vector[T] {
	nv := &Vector[T]{life: v.life}
	nv.buf.MoveFrom(&v.buf)
	nv.size, v.size = v.size, 0
	nv.reallocs, v.reallocs = v.reallocs, 0
	nv.relocated, v.relocated = v.relocated, 0
	return nv
}

// MoveFrom adopts other's contents in O(1) by exchanging state with it.
// The previous contents of v are owned by other afterwards and are torn
// down when other is released or reassigned.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Swap(other)
}

// Clone returns an independent element-wise duplicate of the vector,
// with capacity equal to the length. Returns ErrNotCloneable when the
// lifecycle offers no duplication operation. A clone failure partway
// through tears down the partial duplicate and returns the error.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if !v.life.copyable() {
		return nil, ErrNotCloneable
	}
	nv := &Vector[T]{life: v.life}
	if v.size == 0 {
		return nv, nil
	}
	nv.buf = NewRawBuffer[T](v.size)
	if v.life.Clone != nil {
		if err := v.cloneRange(nv.buf.mem, v.Elems()); err != nil {
			nv.buf.Release()
			return nil, err
		}
	} else {
		copy(nv.buf.mem, v.Elems())
	}
	nv.size = v.size
	return nv, nil
}

// CopyFrom overwrites v with an element-wise duplicate of other.
//
// When other's length exceeds v's capacity a full duplicate is built
// first and swapped in, so a failure leaves v untouched. Otherwise the
// overlapping prefix is overwritten in place via assignment, surplus
// elements are torn down, and missing elements are cloned onto the
// tail; a hook failure on this path leaves v valid but with partially
// overwritten contents.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	if !v.life.copyable() {
		return ErrNotCloneable
	}
	if other.size > v.buf.Cap() {
		tmp, err := other.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}
	n := min(v.size, other.size)
	for i := 0; i < n; i++ {
		if err := v.assignSlot(v.buf.At(i), other.buf.At(i)); err != nil {
			return err
		}
	}
	if v.size > other.size {
		v.destroyRange(v.buf.mem[other.size:v.size])
	} else if other.size > v.size {
		if v.life.Clone != nil {
			if err := v.cloneRange(v.buf.mem[v.size:other.size], other.buf.mem[v.size:other.size]); err != nil {
				return err
			}
		} else {
			copy(v.buf.mem[v.size:other.size], other.buf.mem[v.size:other.size])
		}
	}
	v.size = other.size
	return nil
}

// Equal reports whether v and other hold the same elements in the same
// order under eq.
func (v *Vector[T]) Equal(other *Vector[T], eq func(a, b T) bool) bool {
	if v.size != other.size {
		return false
	}
	for i := 0; i < v.size; i++ {
		if !eq(*v.buf.At(i), *other.buf.At(i)) {
			return false
		}
	}
	return true
}

// Release tears down all live elements and drops the buffer, returning
// the vector to the empty state. The vector remains usable afterwards.
// Safe to call repeatedly.
func (v *Vector[T]) Release() {
	v.destroyRange(v.Elems())
	v.size = 0
	v.buf.Release()
}

func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
}

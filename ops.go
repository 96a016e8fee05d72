package vec

import "fmt"

// Reserve ensures capacity of at least n slots. With n <= Cap() it is a
// no-op; otherwise the live elements are relocated into a new buffer of
// capacity n and the old buffer is dropped. Length and element order
// are unchanged. A relocation failure leaves the vector untouched.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.buf.Cap() {
		return nil
	}
	return v.realloc(n, -1, nil)
}

// Resize sets the length to n. Shrinking tears down the trailing
// elements and keeps the capacity. Growing reserves capacity if needed,
// then default-constructs the new trailing elements. n < 0 panics.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		panic("vec: negative size")
	case n < v.size:
		v.destroyRange(v.buf.mem[n:v.size])
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		if v.life.New != nil {
			for i := v.size; i < n; i++ {
				*v.buf.At(i) = v.life.New()
			}
		}
	}
	v.size = n
	return nil
}

// PushBack appends val. If the vector is full it grows first; on a
// relocation failure the vector is unchanged and val, already owned by
// the vector, is torn down.
func (v *Vector[T]) PushBack(val T) error {
	_, err := v.pushTail(&val)
	return err
}

// EmplaceBack appends a new element produced by construct (nil means
// default construction) and returns its address. The address is valid
// only until the next structural mutation.
func (v *Vector[T]) EmplaceBack(construct func() T) (*T, error) {
	var val T
	if construct != nil {
		val = construct()
	} else {
		val = v.construct()
	}
	return v.pushTail(&val)
}

func (v *Vector[T]) pushTail(val *T) (*T, error) {
	if v.size == v.buf.Cap() {
		if err := v.realloc(v.grownCap(), v.size, val); err != nil {
			return nil, err
		}
	} else {
		*v.buf.At(v.size) = *val
	}
	v.size++
	return v.buf.At(v.size - 1), nil
}

// PopBack tears down the last element and shortens the vector by one.
// Panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.destroySlot(v.buf.At(v.size - 1))
	v.size--
}

// Insert places val at position i, shifting elements [i, Len()) one
// slot right; the order of all other elements is preserved. i == Len()
// appends. Panics unless 0 <= i <= Len().
//
// When spare capacity allows an in-place insert at a non-end position,
// the vacated slot is overwritten through the lifecycle's assignment
// operation, so lifecycles using clone-based relocation need Assign (or
// Clone) — a strictly stronger requirement than appends have. A hook
// failure during the in-place shift leaves the vector valid but with
// partially shifted contents; a failure on the reallocating path leaves
// it untouched.
func (v *Vector[T]) Insert(i int, val T) error {
	return v.emplace(i, &val)
}

// Emplace inserts a new element produced by construct (nil means
// default construction) at position i. See Insert for the contract.
func (v *Vector[T]) Emplace(i int, construct func() T) error {
	var val T
	if construct != nil {
		val = construct()
	} else {
		val = v.construct()
	}
	return v.emplace(i, &val)
}

func (v *Vector[T]) emplace(i int, val *T) error {
	if i < 0 || i > v.size {
		panic("vec: insert position out of range")
	}
	if i == v.size {
		_, err := v.pushTail(val)
		return err
	}
	if v.size == v.buf.Cap() {
		if err := v.realloc(v.grownCap(), i, val); err != nil {
			return err
		}
		v.size++
		return nil
	}
	return v.insertInPlace(i, val)
}

// insertInPlace shifts [i, size) one slot right inside the current
// buffer and writes val at i. The slot one past the live range is
// activated by relocating the last element into it; the rest of the
// shift moves back-to-front to avoid overlap corruption.
func (v *Vector[T]) insertInPlace(i int, val *T) error {
	if v.life.moveRelocates() {
		copy(v.buf.mem[i+1:v.size+1], v.buf.mem[i:v.size])
		*v.buf.At(i) = *val
		v.size++
		return nil
	}
	// Clone-relocating lifecycle: activate the tail slot by cloning,
	// then shift live slots by assignment. Failures past the first
	// clone leave the vector valid but partially shifted.
	last := v.buf.At(v.size - 1)
	c, err := v.life.Clone(last)
	if err != nil {
		return fmt.Errorf("vec: clone: %w", err)
	}
	*v.buf.At(v.size) = c
	v.size++
	for j := v.size - 2; j > i; j-- {
		if err := v.assignSlot(v.buf.At(j), v.buf.At(j-1)); err != nil {
			return err
		}
	}
	return v.assignSlot(v.buf.At(i), val)
}

// Erase tears down the element at position i, shifts elements
// [i+1, Len()) one slot left, and shortens the vector by one. No
// reallocation occurs. Returns i, which now holds the element that
// followed the erased one (or Len() when the last element was erased).
// Panics unless i is a live position.
//
// For lifecycles using clone-based relocation the shift goes through
// the assignment operation; a hook failure there is unreportable and
// panics.
func (v *Vector[T]) Erase(i int) int {
	v.checkIndex(i)
	if v.life.moveRelocates() {
		v.destroySlot(v.buf.At(i))
		copy(v.buf.mem[i:v.size-1], v.buf.mem[i+1:v.size])
		clear(v.buf.mem[v.size-1 : v.size])
		v.size--
		return i
	}
	for j := i; j < v.size-1; j++ {
		if err := v.assignSlot(v.buf.At(j), v.buf.At(j+1)); err != nil {
			panic("vec: assignment failed during erase: " + err.Error())
		}
	}
	v.destroySlot(v.buf.At(v.size - 1))
	v.size--
	return i
}

// Clear tears down all live elements but keeps the buffer for reuse.
func (v *Vector[T]) Clear() {
	v.destroyRange(v.Elems())
	v.size = 0
}

// grownCap returns the doubled capacity for a full vector.
func (v *Vector[T]) grownCap() int {
	if c := v.buf.Cap(); c > 0 {
		return 2 * c
	}
	return 1
}

// realloc replaces the buffer with one of newCap slots, relocating the
// live elements into it. With gap >= 0 a one-slot hole is left at that
// position and val is placed in it before relocation, so a new element
// reaches its final position without ever entering the old buffer.
//
// The old buffer is not touched until the new one is fully populated:
// on a clone failure the partial new buffer is torn down and the vector
// is exactly as it was before the call. val, when present, is owned by
// the vector from the moment it is placed and is torn down on failure.
func (v *Vector[T]) realloc(newCap, gap int, val *T) error {
	nb := NewRawBuffer[T](newCap)
	if gap >= 0 {
		*nb.At(gap) = *val
	}
	if v.life.moveRelocates() {
		if gap < 0 {
			v.moveRange(nb.mem[:v.size], v.buf.mem[:v.size])
		} else {
			v.moveRange(nb.mem[:gap], v.buf.mem[:gap])
			v.moveRange(nb.mem[gap+1:v.size+1], v.buf.mem[gap:v.size])
		}
	} else {
		if err := v.cloneRelocate(&nb, gap); err != nil {
			if gap >= 0 {
				v.destroySlot(nb.At(gap))
			}
			nb.Release()
			return err
		}
		v.destroyRange(v.buf.mem[:v.size])
	}
	v.buf.Swap(&nb)
	nb.Release()
	v.reallocs++
	v.relocated += v.size
	return nil
}

// cloneRelocate populates nb with duplicates of the live elements,
// skipping the gap slot. On failure everything it constructed is torn
// down; the gap element and the old buffer are the caller's problem.
func (v *Vector[T]) cloneRelocate(nb *RawBuffer[T], gap int) error {
	if gap < 0 {
		return v.cloneRange(nb.mem[:v.size], v.buf.mem[:v.size])
	}
	if err := v.cloneRange(nb.mem[:gap], v.buf.mem[:gap]); err != nil {
		return err
	}
	if err := v.cloneRange(nb.mem[gap+1:v.size+1], v.buf.mem[gap:v.size]); err != nil {
		v.destroyRange(nb.mem[:gap])
		return err
	}
	return nil
}

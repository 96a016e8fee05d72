package vec

import (
	"errors"
	"fmt"
)

// ErrNotCloneable is returned when a duplication is requested (Clone,
// CopyFrom) for a lifecycle that offers no duplication operation.
var ErrNotCloneable = errors.New("vec: element lifecycle offers no duplication operation")

// Lifecycle describes how a Vector constructs, duplicates, relocates,
// and tears down its elements. The zero value gives plain-data
// semantics: default construction is the zero value, duplication and
// assignment are plain stores, relocation is a bitwise move, and
// destroying a slot zeroes it so the garbage collector can reclaim
// anything it referenced.
//
// Relocation policy: when live elements must move from an old buffer to
// a new one (Reserve, growth-triggered appends and inserts), the vector
// relocates by destructive bitwise move if Relocatable is set or no
// Clone hook exists. Otherwise it relocates by cloning, leaving the old
// buffer intact until the new one is fully populated; a clone failure
// tears the partial new buffer down and the vector is left exactly as
// it was before the call.
type Lifecycle[T any] struct {
	// New produces a default-constructed element. Used by NewSized and
	// by a growing Resize. nil means the zero value.
	New func() T

	// Clone duplicates the element at src. Required for Clone/CopyFrom
	// on the vector and used as the failure-safe relocation fallback.
	// nil means the type offers no duplication operation; plain-data
	// types (nil Destroy) then duplicate by bitwise copy.
	Clone func(src *T) (T, error)

	// Assign overwrites the live element at dst with the value at src.
	// Required by in-place Insert at a non-end position, which is a
	// strictly stronger requirement than appends need. nil falls back
	// to Clone-then-Destroy, or a plain store for plain-data types.
	Assign func(dst, src *T) error

	// Destroy tears an element down. Invoked exactly once per live
	// element, never on a reserved slot. The slot is re-zeroed after
	// the hook returns.
	Destroy func(*T)

	// Relocatable declares that a bitwise move of T between slots is
	// valid and cannot fail, selecting the fast relocation path even
	// when Clone is set.
	Relocatable bool
}

// moveRelocates reports whether cross-buffer relocation uses the
// destructive bitwise move path.
func (l *Lifecycle[T]) moveRelocates() bool {
	return l.Relocatable || l.Clone == nil
}

// copyable reports whether elements can be duplicated at all: either a
// Clone hook exists, or the type is plain data and a bitwise copy is a
// valid duplicate.
func (l *Lifecycle[T]) copyable() bool {
	return l.Clone != nil || l.Destroy == nil
}

// construct default-constructs an element value.
func (v *Vector[T]) construct() T {
	if v.life.New != nil {
		return v.life.New()
	}
	var zero T
	return zero
}

// destroySlot tears down the live element at p and re-zeroes the slot,
// returning it to the reserved state.
func (v *Vector[T]) destroySlot(p *T) {
	if v.life.Destroy != nil {
		v.life.Destroy(p)
	}
	var zero T
	*p = zero
}

// destroyRange tears down every live element in s.
func (v *Vector[T]) destroyRange(s []T) {
	for i := range s {
		v.destroySlot(&s[i])
	}
}

// assignSlot overwrites the live element at dst with the value at src.
func (v *Vector[T]) assignSlot(dst, src *T) error {
	switch {
	case v.life.Assign != nil:
		if err := v.life.Assign(dst, src); err != nil {
			return fmt.Errorf("vec: assign: %w", err)
		}
		return nil
	case v.life.Clone != nil:
		c, err := v.life.Clone(src)
		if err != nil {
			return fmt.Errorf("vec: assign via clone: %w", err)
		}
		v.destroySlot(dst)
		*dst = c
		return nil
	default:
		*dst = *src
		return nil
	}
}

// moveRange relocates src into dst by bitwise move and deadens the
// source slots. dst must be reserved (no live elements) and must not
// overlap src.
func (v *Vector[T]) moveRange(dst, src []T) {
	copy(dst, src)
	clear(src)
}

// cloneRange duplicates src into dst slot by slot. On failure the
// partial prefix it constructed is torn down and src is untouched.
// dst must be reserved and must not overlap src.
func (v *Vector[T]) cloneRange(dst, src []T) error {
	for i := range src {
		c, err := v.life.Clone(&src[i])
		if err != nil {
			v.destroyRange(dst[:i])
			return fmt.Errorf("vec: clone: %w", err)
		}
		dst[i] = c
	}
	return nil
}

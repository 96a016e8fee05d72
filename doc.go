// Package vec implements a generic contiguous growable array (vector)
// built on an explicit raw-storage layer that separates reserved
// capacity from live elements.
//
// # Overview
//
// A Vector owns a single contiguous block of element slots and tracks
// how many of them hold live elements. Capacity (slots that exist) and
// length (slots that are live) are managed separately, which makes the
// container useful for:
//
//   - Append-heavy workloads with amortized O(1) growth
//   - Element types that need explicit teardown (handles, pools, refs)
//   - Workloads that reserve capacity up front to avoid reallocation
//   - Failure-safe duplication: a failed copy leaves the source intact
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // Tear down live elements, drop the buffer
//
//	// Append values; capacity doubles as needed (1, 2, 4, 8, ...)
//	v.PushBack(10)
//	v.PushBack(20)
//
//	// Positional editing
//	v.Insert(1, 99) // [10 99 20]
//	v.Erase(0)      // [99 20]
//
//	// Indexed access and iteration
//	first := v.Get(0)
//	for i, e := range v.All() {
//		fmt.Println(i, e)
//	}
//	_ = first
//
// # Element Lifecycles
//
// By default elements are treated as plain data: stores and bitwise
// relocation, with dead slots zeroed so the garbage collector can
// reclaim anything they referenced. Types that need more use a
// Lifecycle:
//
//	v := vec.NewWithLifecycle[*Conn](vec.Lifecycle[*Conn]{
//		Clone:   cloneConn,                     // duplication, may fail
//		Destroy: func(c **Conn) { (*c).Close() },
//	})
//
// When a Lifecycle declares Clone and does not declare the type
// Relocatable, the vector relocates elements across buffers by cloning
// and keeps the old buffer intact until the new one is fully populated.
// A clone failure then leaves the vector exactly as it was before the
// call. See Lifecycle for the full relocation policy.
//
// # Thread Safety
//
// Vector is not goroutine-safe. It is a strictly single-owner value;
// concurrent access requires external synchronization.
//
// # Growth & Memory Layout
//
// Elements live in one contiguous typed block. When an append or
// insert finds the block full, a new block of twice the capacity is
// allocated and the live elements are relocated into it. Any
// reallocation, and any erase, invalidates previously obtained element
// addresses and views; this is a caller obligation, not detected at
// runtime.
//
// # Important Notes
//
//   - Addresses from At/Elems are valid only until the next structural
//     mutation of the vector
//   - PopBack on an empty vector and out-of-range indexing are
//     programmer errors and panic
//   - Reserved slots hold zero values until an element is constructed
//     in them; destroyed slots are re-zeroed
//   - Operations return a non-nil error only when a Lifecycle hook
//     fails; plain-data vectors never see one
//
// # Metrics and Monitoring
//
// The vector tracks its reallocation behavior:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocs)
//	fmt.Printf("Elements relocated: %d\n", m.Relocated)
package vec

// Package vec implements a growable contiguous vector built on raw slot
// storage, with explicit element lifetime management.
//
// # Overview
//
// A Vector owns zero or more live elements laid out inside a RawBuffer
// whose capacity is at least the element count. The buffer knows nothing
// about element lifetimes; the vector is the sole authority on which
// slots hold live elements. This split is what makes the container
// useful when elements are more than plain values:
//
//   - Elements with real setup/teardown (handles, pooled buffers)
//   - Deep-copy semantics decoupled from Go's shallow assignment
//   - Deterministic unwinding when a copy or constructor fails partway
//   - Custom allocators, including failing ones for exhaustion testing
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // Destroy elements and drop storage
//
//	v.PushBack(1)
//	v.PushBack(2)
//	v.Insert(1, 99) // [1 99 2]
//
//	for _, x := range v.View() {
//		fmt.Println(x)
//	}
//
// # Element Lifecycles
//
// Element semantics are described by a Lifecycle. Plain value types use
// the built-in Plain lifecycle (zeroing construct/destroy, assignment
// copy/move) and never fail. Types needing deep copies or fallible
// construction supply their own Lifecycle; the optional Copier and
// Mover capabilities are detected once, at vector construction.
//
//	v, err := vec.NewWith[Conn](connLifecycle{}, nil, 0)
//
// # Growth and Failure Safety
//
// Appending to a full vector doubles capacity (minimum 1). During the
// reallocation the appended element is constructed into the new buffer
// first, then existing elements are transferred around it: by move
// when the lifecycle provides one (moves cannot fail), by copy
// otherwise. A failed copy unwinds everything already constructed in
// the new buffer, so the original vector is left exactly as it was.
// The same discipline covers NewSize, Clone, Reserve, Resize and the
// reallocating insert path.
//
// In-place operations that reuse existing storage (same-capacity
// CopyFrom, non-reallocating Emplace/Insert, Erase) give only a basic
// guarantee: after a mid-operation copy failure the vector is still
// internally consistent and destructible, but its contents may reflect
// a partially completed transfer. This asymmetry is intentional;
// upgrading those paths would cost a reallocation they exist to avoid.
//
// # Thread Safety
//
// Vector is not goroutine-safe. For concurrent access, use SafeVector:
//
//	sv := vec.NewSafeVector[int]()
//	sv.PushBack(1)
//	sv.Do(func(v *vec.Vector[int]) {
//		v.Insert(0, 99)
//	})
//
// # Performance Characteristics
//
//   - PushBack / PopBack: O(1) amortized
//   - Insert / Erase: O(n) in elements shifted
//   - Reserve / growth: O(n) transfer
//   - At / Front / Back: O(1)
//
// # Important Notes
//
//   - Addresses returned by At, Front, Back, Emplace and View are
//     invalidated by any mutation that reallocates
//   - Out-of-range indexes, popping an empty vector and inserting
//     outside [0, Len()] are caller bugs and panic
//   - A RawBuffer must be moved or swapped, never duplicated by
//     assignment; its storage identity is unique
//
// # Metrics and Monitoring
//
// The vector provides a snapshot of its storage usage:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Bytes in use: %d of %d\n", m.SizeInUse, m.CapacityBytes)
package vec

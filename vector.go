package vec

// Vector is a growable contiguous sequence of elements of type T.
// Slots [0, Len()) of the backing RawBuffer hold live elements; slots
// [Len(), Cap()) are raw storage. Not goroutine-safe; use SafeVector
// for concurrent access.
type Vector[T any] struct {
	data RawBuffer[T]
	size int

	lc    Lifecycle[T]
	cp    Copier[T] // nil when the lifecycle cannot copy
	mv    Mover[T]  // nil when the lifecycle has no non-failing move
	alloc AllocatorFunc[T]
}

// New creates an empty vector of plain value elements. It allocates
// nothing until the first growing mutation.
func New[T any]() *Vector[T] {
	v, _ := NewWith[T](nil, nil, 0)
	return v
}

// NewSize creates a vector of size default-constructed plain value
// elements, with capacity exactly size.
func NewSize[T any](size int) (*Vector[T], error) {
	return NewWith[T](nil, nil, size)
}

// NewWith creates a vector of size default-constructed elements managed
// by lc, allocating through alloc. A nil lc means Plain[T](); a nil
// alloc means HeapAlloc[T]. The lifecycle's Copier and Mover
// capabilities are detected here, once; it must provide at least one of
// the two or NewWith panics. If element construction fails partway, the
// elements already constructed are destroyed and the storage released
// before the error is returned.
func NewWith[T any](lc Lifecycle[T], alloc AllocatorFunc[T], size int) (*Vector[T], error) {
	if lc == nil {
		lc = Plain[T]()
	}
	v := &Vector[T]{lc: lc, alloc: alloc}
	v.cp, _ = lc.(Copier[T])
	v.mv, _ = lc.(Mover[T])
	if v.cp == nil && v.mv == nil {
		panic("vec: lifecycle provides neither copy nor move")
	}
	if size == 0 {
		return v, nil
	}

	data, err := NewRawBuffer[T](size, alloc)
	if err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		if err := lc.Construct(data.At(i)); err != nil {
			destroyRange(lc, &data, 0, i)
			data.Release()
			return nil, err
		}
	}
	v.data = data
	v.size = size
	return v, nil
}

// Clone returns a new vector holding copies of v's elements in order,
// with capacity exactly v.Len(). The clone shares no storage with v.
// A failed element copy destroys the copies made so far and releases
// the new storage; v is untouched. Panics if the lifecycle cannot copy.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if v.cp == nil {
		panic("vec: element lifecycle is not copyable")
	}
	out := &Vector[T]{lc: v.lc, cp: v.cp, mv: v.mv, alloc: v.alloc}
	if v.size == 0 {
		return out, nil
	}

	data, err := NewRawBuffer[T](v.size, v.alloc)
	if err != nil {
		return nil, err
	}
	for i := 0; i < v.size; i++ {
		if err := v.cp.CopyConstruct(data.At(i), v.data.At(i)); err != nil {
			destroyRange(v.lc, &data, 0, i)
			data.Release()
			return nil, err
		}
	}
	out.data = data
	out.size = v.size
	return out, nil
}

// Move transfers v's buffer and length into a new vector in O(1).
// v stays valid but is left empty with no storage.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{data: v.data.Move(), size: v.size, lc: v.lc, cp: v.cp, mv: v.mv, alloc: v.alloc}
	v.size = 0
	return out
}

// CopyFrom makes v hold copies of rhs's elements. When rhs does not fit
// in v's current capacity, a full copy is built aside and swapped in,
// so a failure leaves v exactly as it was. When it fits, existing
// storage is reused: the overlapping prefix is overwritten by copy
// assignment, then excess elements are destroyed or the extra ones
// copy-constructed. No reallocation happens, and only the basic
// guarantee applies on failure. Both vectors must manage their elements
// with the same lifecycle.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if v.cp == nil {
		panic("vec: element lifecycle is not copyable")
	}

	if rhs.size > v.data.Capacity() {
		tmp, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.destroyAll()
		return nil
	}

	overlap := min(v.size, rhs.size)
	for i := 0; i < overlap; i++ {
		if err := v.cp.CopyAssign(v.data.At(i), rhs.data.At(i)); err != nil {
			return err
		}
	}
	if rhs.size < v.size {
		destroyRange(v.lc, &v.data, rhs.size, v.size)
	} else {
		for i := v.size; i < rhs.size; i++ {
			if err := v.cp.CopyConstruct(v.data.At(i), rhs.data.At(i)); err != nil {
				destroyRange(v.lc, &v.data, v.size, i)
				return err
			}
		}
	}
	v.size = rhs.size
	return nil
}

// MoveFrom destroys v's current elements, drops its storage, and takes
// ownership of rhs's buffer and length in O(1). rhs is left empty.
func (v *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.destroyAll()
	v.data = rhs.data.Move()
	v.size = rhs.size
	rhs.size = 0
}

// Swap exchanges the buffers and lengths of two vectors in O(1). Both
// vectors must manage their elements with the same lifecycle.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Reserve grows capacity to exactly newCapacity, transferring existing
// elements into the new storage, by move when the lifecycle provides
// one, by copy otherwise. A failed copy unwinds the new storage and
// leaves v untouched. No-op when newCapacity does not exceed Cap().
func (v *Vector[T]) Reserve(newCapacity int) error {
	if newCapacity <= v.data.Capacity() {
		return nil
	}
	newData, err := NewRawBuffer[T](newCapacity, v.alloc)
	if err != nil {
		return err
	}
	if err := v.relocate(&newData, 0, v.size, 0); err != nil {
		newData.Release()
		return err
	}
	v.commit(&newData)
	return nil
}

// Resize sets the element count to newSize. Shrinking destroys the
// trailing elements in place. Growing reserves capacity, then
// default-constructs the new tail; if a construction fails the new
// elements built so far are destroyed and the length is unchanged
// (capacity may have grown). Negative sizes panic.
func (v *Vector[T]) Resize(newSize int) error {
	if newSize < 0 {
		panic("vec: negative size")
	}
	switch {
	case newSize == v.size:
		return nil
	case newSize < v.size:
		destroyRange(v.lc, &v.data, newSize, v.size)
	default:
		if err := v.Reserve(newSize); err != nil {
			return err
		}
		for i := v.size; i < newSize; i++ {
			if err := v.lc.Construct(v.data.At(i)); err != nil {
				destroyRange(v.lc, &v.data, v.size, i)
				return err
			}
		}
	}
	v.size = newSize
	return nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots the backing buffer owns.
func (v *Vector[T]) Cap() int {
	return v.data.Capacity()
}

// At returns the address of element i. i must be in [0, Len()).
// The address is invalidated by any reallocating mutation.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return v.data.At(i)
}

// Front returns the address of the first element. Panics when empty.
func (v *Vector[T]) Front() *T {
	if v.size == 0 {
		panic("vec: front of empty vector")
	}
	return v.data.At(0)
}

// Back returns the address of the last element. Panics when empty.
func (v *Vector[T]) Back() *T {
	if v.size == 0 {
		panic("vec: back of empty vector")
	}
	return v.data.At(v.size - 1)
}

// View returns the live elements as a slice sharing the vector's
// storage, with capacity clamped to its length. The view is invalidated
// by any reallocating mutation.
func (v *Vector[T]) View() []T {
	return v.data.view(v.size)
}

// Clear destroys all live elements but keeps the storage, leaving an
// empty vector with unchanged capacity.
func (v *Vector[T]) Clear() {
	destroyRange(v.lc, &v.data, 0, v.size)
	v.size = 0
}

// Release destroys all live elements and drops the storage. The vector
// stays valid: empty, capacity zero, ready for reuse.
func (v *Vector[T]) Release() {
	v.destroyAll()
}

func (v *Vector[T]) destroyAll() {
	destroyRange(v.lc, &v.data, 0, v.size)
	v.data.Release()
	v.size = 0
}

// relocate transfers elements [from, to) of the current buffer into dst
// starting at dstOff, moving when the lifecycle allows and copying
// otherwise. On a failed copy the destination range constructed so far
// is destroyed; the source elements are left intact.
func (v *Vector[T]) relocate(dst *RawBuffer[T], from, to, dstOff int) error {
	if v.mv != nil {
		for i := from; i < to; i++ {
			v.mv.MoveConstruct(dst.At(dstOff+i-from), v.data.At(i))
		}
		return nil
	}
	for i := from; i < to; i++ {
		if err := v.cp.CopyConstruct(dst.At(dstOff+i-from), v.data.At(i)); err != nil {
			destroyRange(v.lc, dst, dstOff, dstOff+i-from)
			return err
		}
	}
	return nil
}

// commit destroys the old elements and swaps newData in as the backing
// buffer. The element count is unchanged; callers adjust it themselves.
func (v *Vector[T]) commit(newData *RawBuffer[T]) {
	destroyRange(v.lc, &v.data, 0, v.size)
	v.data.Swap(newData)
	newData.Release()
}

// assign transfers *src over the live element *dst, moving when the
// lifecycle allows it. Only the copy fallback can fail.
func (v *Vector[T]) assign(dst, src *T) error {
	if v.mv != nil {
		v.mv.MoveAssign(dst, src)
		return nil
	}
	return v.cp.CopyAssign(dst, src)
}

func destroyRange[T any](lc Lifecycle[T], b *RawBuffer[T], from, to int) {
	for i := from; i < to; i++ {
		lc.Destroy(b.At(i))
	}
}

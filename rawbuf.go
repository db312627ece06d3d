package vec

// RawBuffer owns a fixed block of slots for elements of type T. It
// tracks capacity only: as far as the buffer is concerned no slot holds
// a live element, and it never constructs or destroys anything. Which
// slots are live is the owner's bookkeeping.
//
// Ownership of the storage is unique. A RawBuffer is handed around by
// Move and Swap, never by assignment; duplicating one by assignment
// gives two owners of the same slots and is a contract violation.
type RawBuffer[T any] struct {
	slots []T // full capacity, raw; length == capacity
}

// NewRawBuffer allocates a buffer of exactly capacity slots through
// alloc (HeapAlloc if alloc is nil). A capacity of zero performs no
// allocation. Negative capacity is a caller bug and panics.
func NewRawBuffer[T any](capacity int, alloc AllocatorFunc[T]) (RawBuffer[T], error) {
	if capacity < 0 {
		panic("vec: negative buffer capacity")
	}
	if capacity == 0 {
		return RawBuffer[T]{}, nil
	}
	if alloc == nil {
		alloc = HeapAlloc[T]
	}
	slots, err := alloc(capacity)
	if err != nil {
		return RawBuffer[T]{}, err
	}
	return RawBuffer[T]{slots: slots}, nil
}

// At returns the address of slot i. i must be in [0, Capacity());
// past-the-end positions are expressed as indexes, never addresses.
func (b *RawBuffer[T]) At(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic("vec: raw buffer index out of range")
	}
	return &b.slots[i]
}

// Capacity returns the number of slots the buffer owns.
func (b *RawBuffer[T]) Capacity() int {
	return len(b.slots)
}

// Swap exchanges the storage of two buffers. Element liveness is the
// owners' bookkeeping and is unaffected.
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Move transfers ownership of b's storage to the returned buffer,
// leaving b with capacity zero and no storage.
func (b *RawBuffer[T]) Move() RawBuffer[T] {
	moved := RawBuffer[T]{slots: b.slots}
	b.slots = nil
	return moved
}

// Release drops the storage without destroying any elements in it.
// Destroying live elements first is the owner's responsibility.
func (b *RawBuffer[T]) Release() {
	b.slots = nil
}

// view returns the first n slots as a slice with capacity clamped to n,
// so appends on the view cannot reach the buffer's raw tail.
func (b *RawBuffer[T]) view(n int) []T {
	if n == 0 {
		return nil
	}
	return b.slots[:n:n]
}

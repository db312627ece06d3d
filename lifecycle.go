package vec

// Lifecycle describes how elements of type T come into and go out of
// existence inside raw slots. Every element type used with a Vector
// needs one; plain value types can use Plain.
//
// Construct default-constructs an element into a slot whose previous
// contents are undefined. Destroy ends an element's lifetime and must
// leave the slot safe to release or reuse as raw storage.
type Lifecycle[T any] interface {
	Construct(dst *T) error
	Destroy(p *T)
}

// Copier is the optional copy capability of a Lifecycle. CopyConstruct
// builds a new element in a raw slot from *src; CopyAssign overwrites a
// live element. Both may fail, and a failed call must leave *src intact
// and *dst either untouched (CopyConstruct) or still live (CopyAssign).
type Copier[T any] interface {
	CopyConstruct(dst, src *T) error
	CopyAssign(dst, src *T) error
}

// Mover is the optional move capability of a Lifecycle. Implementing it
// declares that transfers of T cannot fail: MoveConstruct builds a new
// element in a raw slot by stealing *src's state, MoveAssign does the
// same over a live element. *src is left live but empty of state, and
// must still be destroyable. The vector relocates elements by move
// whenever a Lifecycle provides one, and falls back to copying
// otherwise; a Lifecycle must provide at least one of the two.
type Mover[T any] interface {
	MoveConstruct(dst, src *T)
	MoveAssign(dst, src *T)
}

// Plain returns the Lifecycle for ordinary value types: construction
// and destruction zero the slot, copies and moves are plain assignment,
// and nothing can fail. A move leaves the source zeroed.
func Plain[T any]() Lifecycle[T] {
	return plain[T]{}
}

type plain[T any] struct{}

func (plain[T]) Construct(dst *T) error {
	var zero T
	*dst = zero
	return nil
}

// Destroy zeroes the slot so anything the element referenced becomes
// collectable.
func (plain[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

func (plain[T]) CopyConstruct(dst, src *T) error {
	*dst = *src
	return nil
}

func (plain[T]) CopyAssign(dst, src *T) error {
	*dst = *src
	return nil
}

func (plain[T]) MoveConstruct(dst, src *T) {
	var zero T
	*dst = *src
	*src = zero
}

func (plain[T]) MoveAssign(dst, src *T) {
	var zero T
	*dst = *src
	*src = zero
}

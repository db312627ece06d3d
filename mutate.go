package vec

// grownCapacity is the growth policy: double, with a floor of one slot.
// Only consulted when the vector is full, so size equals capacity here.
func (v *Vector[T]) grownCapacity() int {
	if v.size == 0 {
		return 1
	}
	return v.size * 2
}

// PushBack appends a copy of value. Amortized O(1); when the vector is
// full it reallocates at double capacity, constructing the appended
// element before anything else is touched, so a failure leaves v
// exactly as it was. Panics if the lifecycle cannot copy.
func (v *Vector[T]) PushBack(value T) error {
	if v.cp == nil {
		panic("vec: element lifecycle is not copyable")
	}
	return v.pushBackWith(func(dst *T) error {
		return v.cp.CopyConstruct(dst, &value)
	})
}

// PushBackMove appends the element held in *value, transferring its
// state with the lifecycle's move when one is provided and copying
// otherwise. With a move, *value is left in its moved-from state.
func (v *Vector[T]) PushBackMove(value *T) error {
	if v.mv != nil {
		return v.pushBackWith(func(dst *T) error {
			v.mv.MoveConstruct(dst, value)
			return nil
		})
	}
	return v.pushBackWith(func(dst *T) error {
		return v.cp.CopyConstruct(dst, value)
	})
}

// EmplaceBack constructs the new last element in place. build is handed
// the raw slot to construct into; a nil build default-constructs.
// Returns the address of the new element, valid until the next
// reallocating mutation. Same growth and safety behavior as PushBack.
func (v *Vector[T]) EmplaceBack(build func(*T) error) (*T, error) {
	if err := v.pushBackWith(v.buildOrDefault(build)); err != nil {
		return nil, err
	}
	return v.data.At(v.size - 1), nil
}

func (v *Vector[T]) buildOrDefault(build func(*T) error) func(*T) error {
	if build == nil {
		return v.lc.Construct
	}
	return build
}

func (v *Vector[T]) pushBackWith(construct func(*T) error) error {
	if v.size == v.data.Capacity() {
		newData, err := NewRawBuffer[T](v.grownCapacity(), v.alloc)
		if err != nil {
			return err
		}
		// The appended element goes in first: if its construction
		// fails, the fresh buffer is discarded and v is untouched.
		if err := construct(newData.At(v.size)); err != nil {
			newData.Release()
			return err
		}
		if err := v.relocate(&newData, 0, v.size, 0); err != nil {
			v.lc.Destroy(newData.At(v.size))
			newData.Release()
			return err
		}
		v.commit(&newData)
	} else {
		if err := construct(v.data.At(v.size)); err != nil {
			return err
		}
	}
	v.size++
	return nil
}

// Insert places a copy of value at index i, shifting elements [i, Len())
// one slot right. i must be in [0, Len()]. Returns the address of the
// inserted element, valid until the next reallocating mutation.
func (v *Vector[T]) Insert(i int, value T) (*T, error) {
	if v.cp == nil {
		panic("vec: element lifecycle is not copyable")
	}
	return v.Emplace(i, func(dst *T) error {
		return v.cp.CopyConstruct(dst, &value)
	})
}

// InsertMove is Insert transferring the element out of *value, moving
// when the lifecycle provides a move and copying otherwise.
func (v *Vector[T]) InsertMove(i int, value *T) (*T, error) {
	if v.mv != nil {
		return v.Emplace(i, func(dst *T) error {
			v.mv.MoveConstruct(dst, value)
			return nil
		})
	}
	return v.Emplace(i, func(dst *T) error {
		return v.cp.CopyConstruct(dst, value)
	})
}

// Emplace constructs a new element at index i, shifting elements
// [i, Len()) one slot right. i must be in [0, Len()]; a nil build
// default-constructs. When the vector is full the element is built
// directly into its final slot in the new buffer and the prefix and
// suffix are transferred around it, so a failure leaves v untouched.
// When storage is reused, the shift happens in place and a failing copy
// fallback gives only the basic guarantee: v stays consistent, but its
// contents may reflect a partial shift. Returns the address of the
// inserted element, valid until the next reallocating mutation.
func (v *Vector[T]) Emplace(i int, build func(*T) error) (*T, error) {
	if i < 0 || i > v.size {
		panic("vec: insert position out of range")
	}
	construct := v.buildOrDefault(build)

	if v.size == v.data.Capacity() {
		return v.emplaceRealloc(i, construct)
	}
	if i == v.size {
		if err := construct(v.data.At(i)); err != nil {
			return nil, err
		}
		v.size++
		return v.data.At(i), nil
	}
	return v.emplaceInPlace(i, construct)
}

func (v *Vector[T]) emplaceRealloc(i int, construct func(*T) error) (*T, error) {
	newData, err := NewRawBuffer[T](v.grownCapacity(), v.alloc)
	if err != nil {
		return nil, err
	}
	if err := construct(newData.At(i)); err != nil {
		newData.Release()
		return nil, err
	}
	if err := v.relocate(&newData, 0, i, 0); err != nil {
		v.lc.Destroy(newData.At(i))
		newData.Release()
		return nil, err
	}
	if err := v.relocate(&newData, i, v.size, i+1); err != nil {
		destroyRange(v.lc, &newData, 0, i)
		v.lc.Destroy(newData.At(i))
		newData.Release()
		return nil, err
	}
	v.commit(&newData)
	v.size++
	return v.data.At(i), nil
}

func (v *Vector[T]) emplaceInPlace(i int, construct func(*T) error) (*T, error) {
	// Build the value aside first; a failing constructor must not
	// disturb the sequence.
	var staged T
	if err := construct(&staged); err != nil {
		return nil, err
	}

	// Claim the trailing slot by transferring the current last element
	// into it. Nothing has shifted yet, so a failed copy is still safe.
	last := v.data.At(v.size - 1)
	if v.mv != nil {
		v.mv.MoveConstruct(v.data.At(v.size), last)
	} else if err := v.cp.CopyConstruct(v.data.At(v.size), last); err != nil {
		v.lc.Destroy(&staged)
		return nil, err
	}
	v.size++

	// Shift (i, end) right, back to front. From here on a failing copy
	// fallback leaves a partial shift behind: basic guarantee.
	for j := v.size - 2; j > i; j-- {
		if err := v.assign(v.data.At(j), v.data.At(j-1)); err != nil {
			v.lc.Destroy(&staged)
			return nil, err
		}
	}
	err := v.assign(v.data.At(i), &staged)
	v.lc.Destroy(&staged)
	if err != nil {
		return nil, err
	}
	return v.data.At(i), nil
}

// PopBack destroys the last element and shortens the vector by one.
// Popping an empty vector is a caller bug and panics.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: pop of empty vector")
	}
	v.size--
	v.lc.Destroy(v.data.At(v.size))
}

// Erase removes the element at index i, shifting the elements after it
// one slot left and destroying the trailing duplicate. i must be in
// [0, Len()). Returns the index of the element now occupying position
// i, which equals Len() when the last element was erased. A failing
// copy fallback mid-shift leaves a partial shift behind: basic
// guarantee.
func (v *Vector[T]) Erase(i int) (int, error) {
	if i < 0 || i >= v.size {
		panic("vec: erase position out of range")
	}
	for j := i; j < v.size-1; j++ {
		if err := v.assign(v.data.At(j), v.data.At(j+1)); err != nil {
			return i, err
		}
	}
	v.PopBack()
	return i, nil
}

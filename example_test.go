package vec

import "fmt"

// Example demonstrates basic vector usage
func Example() {
	v := New[int]()
	defer v.Release() // Destroy elements and drop storage

	for i := 1; i <= 3; i++ {
		v.PushBack(i * 10)
	}
	fmt.Printf("Elements: %v\n", v.View())
	fmt.Printf("Len: %d, Cap: %d\n", v.Len(), v.Cap())

	// Insert in the middle, erase the old element
	v.Insert(1, 99)
	fmt.Printf("After insert: %v\n", v.View())
	v.Erase(2)
	fmt.Printf("After erase: %v\n", v.View())

	// Reserve up front to avoid reallocation during a burst of appends
	v.Reserve(10)
	v.PushBack(40)
	fmt.Printf("Cap after reserve+push: %d\n", v.Cap())

	// Output:
	// Elements: [10 20 30]
	// Len: 3, Cap: 4
	// After insert: [10 99 20 30]
	// After erase: [10 99 30]
	// Cap after reserve+push: 10
}

// ExampleNewWith demonstrates a custom element lifecycle with deep copies
func ExampleNewWith() {
	v, _ := NewWith[[]byte](bufLifecycle{}, nil, 0)
	defer v.Release()

	data := []byte("hello")
	v.PushBack(data)

	// The vector holds a deep copy; mutating the caller's slice
	// does not reach it.
	data[0] = 'H'
	fmt.Printf("caller: %s, vector: %s\n", data, *v.At(0))

	// Output:
	// caller: Hello, vector: hello
}

// bufLifecycle deep-copies byte slices so elements never alias caller
// memory.
type bufLifecycle struct{}

func (bufLifecycle) Construct(dst *[]byte) error { *dst = nil; return nil }
func (bufLifecycle) Destroy(p *[]byte)           { *p = nil }

func (bufLifecycle) CopyConstruct(dst, src *[]byte) error {
	*dst = append([]byte(nil), *src...)
	return nil
}

func (bufLifecycle) CopyAssign(dst, src *[]byte) error {
	*dst = append((*dst)[:0], *src...)
	return nil
}

// ExampleVector_Metrics demonstrates storage monitoring
func ExampleVector_Metrics() {
	v := New[int64]()
	defer v.Release()

	v.Reserve(8)
	for i := int64(0); i < 6; i++ {
		v.PushBack(i)
	}

	m := v.Metrics()
	fmt.Printf("Len: %d of %d slots\n", m.Len, m.Cap)
	fmt.Printf("Bytes in use: %d of %d\n", m.SizeInUse, m.CapacityBytes)
	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)

	// Output:
	// Len: 6 of 8 slots
	// Bytes in use: 48 of 64
	// Utilization: 75.00%
}

// ExampleSafeVector demonstrates thread-safe vector usage
func ExampleSafeVector() {
	s := NewSafeVector[int]()
	defer s.Release()

	s.PushBack(1)
	s.PushBack(2)

	// Compound operations run under the lock via Do.
	s.Do(func(v *Vector[int]) {
		v.Insert(0, 0)
	})

	fmt.Printf("Len: %d\n", s.Len())
	fmt.Printf("First: %d\n", s.Get(0))

	// Output:
	// Len: 3
	// First: 0
}

// ExampleCapAlloc demonstrates bounding a vector's footprint
func ExampleCapAlloc() {
	v, _ := NewWith[int](nil, CapAlloc[int](4), 0)
	defer v.Release()

	for i := 0; i < 4; i++ {
		v.PushBack(i)
	}

	// Growth to 8 slots exceeds the allocator's budget; the vector is
	// left exactly as it was.
	err := v.PushBack(4)
	fmt.Printf("error: %v\n", err != nil)
	fmt.Printf("len: %d, cap: %d\n", v.Len(), v.Cap())

	// Output:
	// error: true
	// len: 4, cap: 4
}

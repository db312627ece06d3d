package vec

import "sync"

// SafeVector is a mutex-protected wrapper around Vector for concurrent
// access. All operations are thread-safe but come with the overhead of
// mutex locking. Addresses into the vector's storage are not exposed;
// compound or address-taking operations go through Do.
type SafeVector[T any] struct {
	mu sync.Mutex
	v  *Vector[T]
}

// NewSafeVector creates an empty thread-safe vector of plain value
// elements.
func NewSafeVector[T any]() *SafeVector[T] {
	return &SafeVector[T]{v: New[T]()}
}

// NewSafeVectorWith creates a thread-safe vector of size
// default-constructed elements managed by lc, allocating through alloc.
func NewSafeVectorWith[T any](lc Lifecycle[T], alloc AllocatorFunc[T], size int) (*SafeVector[T], error) {
	v, err := NewWith[T](lc, alloc, size)
	if err != nil {
		return nil, err
	}
	return &SafeVector[T]{v: v}, nil
}

// Do runs fn with the underlying vector while holding the lock.
// Addresses obtained inside fn must not be retained past it.
func (s *SafeVector[T]) Do(fn func(v *Vector[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.v)
}

// Len thread-safely returns the number of live elements.
func (s *SafeVector[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Len()
}

// Cap thread-safely returns the number of owned slots.
func (s *SafeVector[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Cap()
}

// Get thread-safely reads out the element at index i by plain
// assignment, bypassing any Copier the lifecycle may have.
func (s *SafeVector[T]) Get(i int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.v.At(i)
}

// PushBack thread-safely appends a copy of value.
func (s *SafeVector[T]) PushBack(value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.PushBack(value)
}

// PopBack thread-safely destroys the last element.
func (s *SafeVector[T]) PopBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.PopBack()
}

// Insert thread-safely places a copy of value at index i.
func (s *SafeVector[T]) Insert(i int, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.v.Insert(i, value)
	return err
}

// Erase thread-safely removes the element at index i.
func (s *SafeVector[T]) Erase(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.v.Erase(i)
	return err
}

// Reserve thread-safely grows capacity to at least newCapacity.
func (s *SafeVector[T]) Reserve(newCapacity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Reserve(newCapacity)
}

// Resize thread-safely sets the element count to newSize.
func (s *SafeVector[T]) Resize(newSize int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Resize(newSize)
}

// Clear thread-safely destroys all elements, keeping the storage.
func (s *SafeVector[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Clear()
}

// Release thread-safely destroys all elements and drops the storage.
func (s *SafeVector[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Release()
}

// Metrics thread-safely returns a snapshot of storage statistics.
func (s *SafeVector[T]) Metrics() VectorMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Metrics()
}

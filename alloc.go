package vec

import (
	"errors"
	"fmt"
)

// ErrAllocationFailure is returned (wrapped) when an allocator cannot
// provide the requested storage. Operations that fail this way leave
// the vector exactly as it was before the call.
var ErrAllocationFailure = errors.New("vec: allocation failure")

// AllocatorFunc produces storage for n slots of T. The returned slice
// must have length n; its contents are treated as raw, with no element
// lifetime implied. Called only with n > 0.
type AllocatorFunc[T any] func(n int) ([]T, error)

// HeapAlloc is the default allocator. It takes slot storage from the Go
// heap and never fails.
func HeapAlloc[T any](n int) ([]T, error) {
	return make([]T, n), nil
}

// CapAlloc returns an allocator that refuses any single request larger
// than maxSlots, failing with ErrAllocationFailure. Useful for bounding
// a vector's footprint and for exercising exhaustion paths in tests.
func CapAlloc[T any](maxSlots int) AllocatorFunc[T] {
	return func(n int) ([]T, error) {
		if n > maxSlots {
			return nil, fmt.Errorf("%w: %d slots requested, limit is %d", ErrAllocationFailure, n, maxSlots)
		}
		return make([]T, n), nil
	}
}

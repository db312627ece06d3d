package vec

import (
	"errors"
	"testing"
)

func TestNewRawBuffer(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{"zero capacity", 0},
		{"single slot", 1},
		{"many slots", 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewRawBuffer[int](tt.capacity, nil)
			if err != nil {
				t.Fatalf("NewRawBuffer(%d) error = %v", tt.capacity, err)
			}
			if b.Capacity() != tt.capacity {
				t.Errorf("Capacity() = %d, want %d", b.Capacity(), tt.capacity)
			}
			if tt.capacity == 0 && b.slots != nil {
				t.Error("zero-capacity buffer should own no storage")
			}
		})
	}
}

func TestNewRawBufferNegativeCapacityPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for negative capacity")
		}
	}()
	NewRawBuffer[int](-1, nil)
}

func TestNewRawBufferAllocatorFailure(t *testing.T) {
	_, err := NewRawBuffer[int](16, CapAlloc[int](8))
	if !errors.Is(err, ErrAllocationFailure) {
		t.Errorf("error = %v, want ErrAllocationFailure", err)
	}
}

func TestRawBufferAt(t *testing.T) {
	b, _ := NewRawBuffer[int](4, nil)

	// Distinct slots have distinct addresses and hold writes.
	*b.At(0) = 10
	*b.At(3) = 40
	if *b.At(0) != 10 || *b.At(3) != 40 {
		t.Errorf("slot writes not retained: got %d, %d", *b.At(0), *b.At(3))
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for At(capacity)")
		}
	}()
	b.At(4)
}

func TestRawBufferSwap(t *testing.T) {
	a, _ := NewRawBuffer[int](2, nil)
	b, _ := NewRawBuffer[int](5, nil)
	*a.At(0) = 1
	*b.At(0) = 9

	a.Swap(&b)

	if a.Capacity() != 5 || b.Capacity() != 2 {
		t.Errorf("capacities after swap = %d, %d, want 5, 2", a.Capacity(), b.Capacity())
	}
	if *a.At(0) != 9 || *b.At(0) != 1 {
		t.Errorf("slot contents after swap = %d, %d, want 9, 1", *a.At(0), *b.At(0))
	}
}

func TestRawBufferMove(t *testing.T) {
	a, _ := NewRawBuffer[int](3, nil)
	*a.At(1) = 7

	moved := a.Move()

	if a.Capacity() != 0 {
		t.Errorf("source capacity after move = %d, want 0", a.Capacity())
	}
	if a.slots != nil {
		t.Error("source should own no storage after move")
	}
	if moved.Capacity() != 3 || *moved.At(1) != 7 {
		t.Errorf("moved buffer capacity = %d, slot = %d, want 3, 7", moved.Capacity(), *moved.At(1))
	}
}

func TestRawBufferRelease(t *testing.T) {
	b, _ := NewRawBuffer[int](3, nil)
	b.Release()
	if b.Capacity() != 0 {
		t.Errorf("Capacity after Release = %d, want 0", b.Capacity())
	}
}

func TestRawBufferView(t *testing.T) {
	b, _ := NewRawBuffer[int](8, nil)
	for i := 0; i < 3; i++ {
		*b.At(i) = i + 1
	}

	view := b.view(3)
	if len(view) != 3 || cap(view) != 3 {
		t.Errorf("view len/cap = %d/%d, want 3/3", len(view), cap(view))
	}
	if view[0] != 1 || view[2] != 3 {
		t.Errorf("view contents = %v, want [1 2 3]", view)
	}
	if b.view(0) != nil {
		t.Error("view(0) should be nil")
	}
}

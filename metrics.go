package vec

import "unsafe"

// ElemSize returns the size in bytes of one element slot.
func (v *Vector[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.size * v.ElemSize()
}

// CapacityBytes returns the number of bytes owned by the backing buffer.
func (v *Vector[T]) CapacityBytes() int {
	return v.data.Capacity() * v.ElemSize()
}

// Utilization returns the ratio of live slots to owned slots (0.0 to
// 1.0). Returns 0.0 when the vector owns no storage.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.data.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Metrics returns a snapshot of vector storage statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.size,
		Cap:           v.data.Capacity(),
		ElemSize:      v.ElemSize(),
		SizeInUse:     v.SizeInUse(),
		CapacityBytes: v.CapacityBytes(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Owned slots
	ElemSize      int     // Bytes per slot
	SizeInUse     int     // Bytes occupied by live elements
	CapacityBytes int     // Bytes owned by the backing buffer
	Utilization   float64 // Ratio of live to owned slots (0.0-1.0)
}

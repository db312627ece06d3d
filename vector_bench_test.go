package vec

import "testing"

// BenchmarkAppend compares vector appends against the builtin slice
// append they compete with.
func BenchmarkAppend(b *testing.B) {
	b.Run("PushBack/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int]()
			for j := 0; j < 1024; j++ {
				v.PushBack(j)
			}
		}
	})

	b.Run("PushBack/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 1024; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	b.Run("PushBackReserved/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int]()
			v.Reserve(1024)
			for j := 0; j < 1024; j++ {
				v.PushBack(j)
			}
		}
	})

	b.Run("PushBackReserved/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, 1024)
			for j := 0; j < 1024; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})
}

func BenchmarkInsertFront(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := New[int]()
		v.Reserve(256)
		for j := 0; j < 256; j++ {
			v.Insert(0, j)
		}
	}
}

func BenchmarkEraseFront(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v := New[int]()
		for j := 0; j < 256; j++ {
			v.PushBack(j)
		}
		b.StartTimer()
		for v.Len() > 0 {
			v.Erase(0)
		}
	}
}

func BenchmarkClone(b *testing.B) {
	v := New[int]()
	for j := 0; j < 1024; j++ {
		v.PushBack(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := v.Clone()
		if err != nil {
			b.Fatal(err)
		}
		c.Release()
	}
}

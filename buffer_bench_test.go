package podvec

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/hupe1980/podvec/testutil"
)

func reportGC(b *testing.B, before *runtime.MemStats) {
	b.Helper()
	runtime.GC()
	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	b.ReportMetric(float64(after.NumGC-before.NumGC), "gcs")
	b.ReportMetric(float64(after.PauseTotalNs-before.PauseTotalNs)/1e6, "gc_pause_ms")
}

// BenchmarkAppend compares appending into each allocator against a plain
// Go slice with the same element type.
func BenchmarkAppend(b *testing.B) {
	particles := testutil.NewRNG(1).Particles(10_000)

	for _, name := range []string{"offheap", "heap"} {
		alloc := OffHeap()
		if name == "heap" {
			alloc = Heap()
		}
		b.Run(name, func(b *testing.B) {
			runtime.GC()
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			b.ReportAllocs()
			for b.Loop() {
				buf, err := New[testutil.Particle](WithAllocator(alloc))
				if err != nil {
					b.Fatal(err)
				}
				for _, p := range particles {
					_ = buf.Append(p)
				}
				_ = buf.Close()
			}

			b.StopTimer()
			reportGC(b, &m)
		})
	}

	b.Run("slice", func(b *testing.B) {
		runtime.GC()
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		b.ReportAllocs()
		for b.Loop() {
			s := make([]testutil.Particle, 0, DefaultCapacity)
			for _, p := range particles {
				s = append(s, p)
			}
			runtime.KeepAlive(s)
		}

		b.StopTimer()
		reportGC(b, &m)
	})
}

func BenchmarkAppendSlice(b *testing.B) {
	vs := testutil.NewRNG(1).Float32s(4096)

	b.ReportAllocs()
	for b.Loop() {
		buf, _ := New[float32]()
		_ = buf.AppendSlice(vs)
		_ = buf.Close()
	}
}

func BenchmarkRemove(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		b.Run(fmt.Sprintf("ordered/n=%d", n), func(b *testing.B) {
			buf, _ := New[int64](WithCapacity(n))
			defer buf.Close()
			for b.Loop() {
				b.StopTimer()
				buf.Clear()
				for i := 0; i < n; i++ {
					_ = buf.Append(int64(i))
				}
				b.StartTimer()
				_ = buf.RemoveAt(0)
			}
		})
		b.Run(fmt.Sprintf("fast/n=%d", n), func(b *testing.B) {
			buf, _ := New[int64](WithCapacity(n))
			defer buf.Close()
			for b.Loop() {
				b.StopTimer()
				buf.Clear()
				for i := 0; i < n; i++ {
					_ = buf.Append(int64(i))
				}
				b.StartTimer()
				_ = buf.RemoveAtFast(0)
			}
		})
	}
}

func BenchmarkIterate(b *testing.B) {
	buf, _ := New[float64](WithCapacity(1 << 16))
	defer buf.Close()
	for i := 0; i < 1<<16; i++ {
		_ = buf.Append(float64(i))
	}

	b.Run("slice", func(b *testing.B) {
		for b.Loop() {
			var sum float64
			for _, v := range buf.Slice() {
				sum += v
			}
			_ = sum
		}
	})

	b.Run("all", func(b *testing.B) {
		for b.Loop() {
			var sum float64
			for _, v := range buf.All() {
				sum += v
			}
			_ = sum
		}
	})

	b.Run("foreach", func(b *testing.B) {
		for b.Loop() {
			var sum float64
			buf.ForEach(func(v float64) { sum += v })
			_ = sum
		}
	})

	b.Run("ref", func(b *testing.B) {
		for b.Loop() {
			buf.ForEachRef(func(_ int, v *float64) { *v += 1 })
		}
	})
}

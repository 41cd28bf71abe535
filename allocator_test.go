package podvec

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/podvec/internal/cmem"
	"github.com/hupe1980/podvec/internal/mmap"
	"github.com/hupe1980/podvec/testutil"
)

func allocators(t *testing.T) map[string]Allocator {
	t.Helper()
	all := map[string]Allocator{
		"offheap": OffHeap(),
		"heap":    Heap(),
	}
	if cmem.Supported {
		all["cheap"] = CHeap()
	}
	return all
}

func TestAllocators_AlignmentAndGrowth(t *testing.T) {
	alignments := []int{8, 64, 128, mmap.PageSize(), mmap.PageSize() * 2}

	for name, alloc := range allocators(t) {
		for _, align := range alignments {
			t.Run(name, func(t *testing.T) {
				b := newBuffer[testutil.Particle](t,
					WithAllocator(alloc),
					WithAlignment(align),
					WithCapacity(3),
				)

				want := testutil.NewRNG(int64(align)).Particles(200)
				for _, p := range want {
					require.NoError(t, b.Append(p))
					require.Equal(t, uintptr(0), uintptr(b.Pointer())%uintptr(align))
				}
				assert.Equal(t, want, b.Slice())
			})
		}
	}
}

func TestCHeap_NotSupported(t *testing.T) {
	if cmem.Supported {
		t.Skip("built with malloc_cgo")
	}
	_, err := New[int](WithAllocator(CHeap()))
	assert.ErrorIs(t, err, ErrAllocationFailed)
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestWithAllocator_NilUsesDefault(t *testing.T) {
	b := newBuffer[int](t, WithAllocator(nil))
	require.NoError(t, b.Append(1))
	assert.Equal(t, []int{1}, b.Slice())
}

var errBoom = errors.New("boom")

// failAfter serves n allocations from the heap and fails the rest.
func failAfter(n int) Allocator {
	calls := 0
	return AllocatorFunc(func(size, alignment int) (Block, error) {
		calls++
		if calls > n {
			return nil, errBoom
		}
		return Heap().Allocate(size, alignment)
	})
}

func TestNew_AllocationFailure(t *testing.T) {
	b, err := New[int](WithAllocator(failAfter(0)))
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrAllocationFailed)
	assert.ErrorIs(t, err, errBoom)
}

func TestGrow_FailureLeavesBufferUnchanged(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	b := newBuffer[int](t,
		WithAllocator(failAfter(1)),
		WithCapacity(2),
		WithGrowthFactor(2),
		WithMetricsCollector(metrics),
	)
	fill(t, b, 1, 2)
	ptr := b.Pointer()

	ops := map[string]func() error{
		"append":       func() error { return b.Append(3) },
		"append slice": func() error { return b.AppendSlice([]int{3, 4}) },
		"self alias":   func() error { return b.AppendSlice(b.Slice()) },
		"insert":       func() error { return b.Insert(0, 0) },
		"reserve":      func() error { return b.Reserve(10) },
	}
	for name, op := range ops {
		err := op()
		assert.ErrorIs(t, err, ErrAllocationFailed, name)
		assert.ErrorIs(t, err, errBoom, name)

		assert.Equal(t, 2, b.Len(), name)
		assert.Equal(t, 2, b.Cap(), name)
		assert.Equal(t, ptr, b.Pointer(), name)
		assert.Equal(t, []int{1, 2}, b.Slice(), name)
	}

	stats := metrics.GetStats()
	assert.Equal(t, int64(len(ops)), stats.AllocErrors)
	assert.Zero(t, stats.GrowCount)

	// Non-growing operations still work
	require.NoError(t, b.RemoveAt(0))
	assert.Equal(t, []int{2}, b.Slice())
}

type shortBlock struct{ data []byte }

func (s *shortBlock) Bytes() []byte { return s.data }
func (s *shortBlock) Close() error  { return nil }

func TestNew_RejectsBadBlocks(t *testing.T) {
	short := AllocatorFunc(func(size, alignment int) (Block, error) {
		return &shortBlock{data: make([]byte, size-1)}, nil
	})
	_, err := New[int64](WithAllocator(short))
	assert.ErrorIs(t, err, ErrAllocationFailed)

	misaligned := AllocatorFunc(func(size, alignment int) (Block, error) {
		data, err := Heap().Allocate(size+1, alignment)
		if err != nil {
			return nil, err
		}
		return &shortBlock{data: data.Bytes()[1:]}, nil
	})
	_, err = New[int64](WithAllocator(misaligned))
	assert.ErrorIs(t, err, ErrAllocationFailed)

	none := AllocatorFunc(func(int, int) (Block, error) { return nil, nil })
	_, err = New[int64](WithAllocator(none))
	assert.ErrorIs(t, err, ErrAllocationFailed)
}

func TestAllocatorFunc_ReceivesSizeAndAlignment(t *testing.T) {
	var gotSize, gotAlign int
	spy := AllocatorFunc(func(size, alignment int) (Block, error) {
		gotSize, gotAlign = size, alignment
		return Heap().Allocate(size, alignment)
	})

	newBuffer[[4]float32](t, WithAllocator(spy), WithCapacity(10), WithAlignment(256))

	assert.Equal(t, 10*int(unsafe.Sizeof([4]float32{})), gotSize)
	assert.Equal(t, 256, gotAlign)
}

package podvec

import (
	"github.com/hupe1980/podvec/internal/cmem"
	"github.com/hupe1980/podvec/internal/mem"
	"github.com/hupe1980/podvec/internal/mmap"
)

// Block is one contiguous allocation owned by a Buffer.
type Block interface {
	// Bytes returns the block's memory. The first byte honours the
	// alignment passed to Allocate. After Close it returns nil.
	Bytes() []byte
	// Close returns the memory to its allocator. It is idempotent.
	Close() error
}

// Allocator provides raw memory blocks for buffer storage.
//
// Implementations must return blocks of at least size bytes whose start
// address is a multiple of alignment. The contents of a fresh block are
// unspecified.
type Allocator interface {
	Allocate(size, alignment int) (Block, error)
}

// AllocatorFunc adapts a function to the Allocator interface.
type AllocatorFunc func(size, alignment int) (Block, error)

// Allocate implements Allocator.
func (f AllocatorFunc) Allocate(size, alignment int) (Block, error) {
	return f(size, alignment)
}

// OffHeap returns the default allocator. It backs every block with an
// anonymous memory mapping that the garbage collector neither scans nor
// accounts for. Blocks are rounded up to whole pages by the OS.
//
// Buffers using it must be closed, otherwise the mapping is only reclaimed
// by the finalization safety net, if at all.
func OffHeap() Allocator {
	return AllocatorFunc(func(size, alignment int) (Block, error) {
		m, err := mmap.MapAnonAligned(size, alignment)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
}

// Heap returns an allocator that carves aligned blocks out of the Go heap.
// The garbage collector reclaims them, so it suits platforms without mmap
// and short-lived buffers.
func Heap() Allocator {
	return AllocatorFunc(func(size, alignment int) (Block, error) {
		b, err := mem.NewBlock(size, alignment)
		if err != nil {
			return nil, err
		}
		return b, nil
	})
}

// CHeap returns an allocator backed by posix_memalign. It only works in
// builds with cgo and the malloc_cgo tag; otherwise Allocate fails with
// ErrNotSupported.
func CHeap() Allocator {
	return AllocatorFunc(func(size, alignment int) (Block, error) {
		if !cmem.Supported {
			return nil, ErrNotSupported
		}
		b, err := cmem.Alloc(size, alignment)
		if err != nil {
			return nil, err
		}
		return b, nil
	})
}

//go:build cgo && malloc_cgo && unix

package cmem

// #include <stdlib.h>
import "C"

import (
	"sync/atomic"
	"unsafe"
)

// Supported reports whether the C allocator is compiled in.
const Supported = true

// Block is a C-heap allocation.
type Block struct {
	ptr    unsafe.Pointer
	data   []byte
	closed atomic.Bool
}

// Alloc allocates size bytes aligned to alignment with posix_memalign.
// The memory is not zeroed.
func Alloc(size, alignment int) (*Block, error) {
	if size <= 0 || alignment <= 0 || alignment&(alignment-1) != 0 {
		return nil, ErrInvalidArgument
	}
	// posix_memalign wants a multiple of sizeof(void*)
	if minAlign := int(unsafe.Sizeof(uintptr(0))); alignment < minAlign {
		alignment = minAlign
	}

	var p unsafe.Pointer
	if rc := C.posix_memalign(&p, C.size_t(alignment), C.size_t(size)); rc != 0 || p == nil {
		return nil, ErrOutOfMemory
	}

	return &Block{
		ptr:  p,
		data: unsafe.Slice((*byte)(p), size),
	}, nil
}

// Bytes returns the block's memory, or nil after Close.
func (b *Block) Bytes() []byte {
	if b.closed.Load() {
		return nil
	}
	return b.data
}

// Close frees the block. It is idempotent.
func (b *Block) Close() error {
	if b.closed.Swap(true) {
		return nil
	}
	C.free(b.ptr)
	b.ptr = nil
	b.data = nil
	return nil
}

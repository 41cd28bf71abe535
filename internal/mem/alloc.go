// Package mem provides memory allocation utilities.
package mem

import (
	"errors"
	"unsafe"
)

// ErrInvalidAlignment is returned when the alignment is not a power of two.
var ErrInvalidAlignment = errors.New("mem: alignment must be a power of two")

// AllocAligned allocates a byte slice of the given size aligned to alignment.
// The returned slice is guaranteed to start at a memory address divisible by alignment.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size, alignment int) ([]byte, error) {
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return nil, ErrInvalidAlignment
	}
	if size <= 0 {
		return nil, nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	buf := make([]byte, size+alignment)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (uintptr(alignment) - (addr & uintptr(alignment-1))) & uintptr(alignment-1)

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)], nil
}

// Block is a Go-heap allocation. Close drops the reference so the garbage
// collector can reclaim the array once no other slice points into it.
type Block struct {
	data []byte
}

// NewBlock allocates an aligned Go-heap block.
func NewBlock(size, alignment int) (*Block, error) {
	data, err := AllocAligned(size, alignment)
	if err != nil {
		return nil, err
	}
	return &Block{data: data}, nil
}

// Bytes returns the aligned slice, or nil after Close.
func (b *Block) Bytes() []byte {
	return b.data
}

// Close releases the block. It is idempotent.
func (b *Block) Close() error {
	b.data = nil
	return nil
}

package mmap

import (
	"os"
	"sync/atomic"
	"unsafe"
)

// Mapping represents an anonymous memory mapping.
// It owns the underlying reservation and is responsible for unmapping it.
type Mapping struct {
	data   []byte // aligned view handed out to callers
	raw    []byte // full reservation as returned by the OS
	closed atomic.Bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// PageSize returns the OS page size. Every mapping starts on a page boundary.
func PageSize() int {
	return os.Getpagesize()
}

// MapAnonAligned creates a read-write anonymous mapping of size bytes whose
// first byte is aligned to alignment. The memory is zeroed and lives outside
// the Go heap.
func MapAnonAligned(size, alignment int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return nil, ErrInvalidAlignment
	}

	reserve := size
	if alignment > PageSize() {
		reserve += alignment
	}

	raw, unmapFunc, err := osMapAnon(reserve)
	if err != nil {
		return nil, err
	}

	addr := uintptr(unsafe.Pointer(&raw[0])) //nolint:gosec // unsafe is required for alignment
	offset := int((uintptr(alignment) - (addr & uintptr(alignment-1))) & uintptr(alignment-1))

	return &Mapping{
		data:  raw[offset : offset+size : offset+size],
		raw:   raw,
		unmap: unmapFunc,
	}, nil
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.unmap != nil && m.raw != nil {
		return m.unmap(m.raw)
	}
	return nil
}

// Bytes returns the aligned byte slice.
// Warning: The slice is valid only until Close() is called.
// Accessing the slice after Close() results in undefined behavior (likely a crash).
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

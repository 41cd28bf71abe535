package cmem

import "errors"

var (
	// ErrNotSupported is returned when the package was built without malloc_cgo.
	ErrNotSupported = errors.New("cmem: C allocator not available (build with cgo and -tags malloc_cgo)")
	// ErrInvalidArgument is returned for non-positive sizes or invalid alignments.
	ErrInvalidArgument = errors.New("cmem: invalid size or alignment")
	// ErrOutOfMemory is returned when the C allocator fails.
	ErrOutOfMemory = errors.New("cmem: out of memory")
)

package mmap

import "errors"

var (
	// ErrInvalidSize is returned when the requested size is not positive.
	ErrInvalidSize = errors.New("mmap: invalid size")
	// ErrInvalidAlignment is returned when the alignment is not a power of two.
	ErrInvalidAlignment = errors.New("mmap: alignment must be a power of two")
)

package podvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrowthPolicy is returned when the starting capacity and growth
	// factor can never increase the capacity.
	ErrInvalidGrowthPolicy = errors.New("podvec: growth policy does not increase capacity")
	// ErrIndexOutOfRange is returned when an index is outside the valid range
	// for the requested operation.
	ErrIndexOutOfRange = errors.New("podvec: index out of range")
	// ErrElementNotFound is returned by value lookups that find no match.
	ErrElementNotFound = errors.New("podvec: element not found")
	// ErrInsufficientDestinationSpace is returned when a copy-out target
	// cannot hold the live elements at the given offset.
	ErrInsufficientDestinationSpace = errors.New("podvec: destination too small")
	// ErrNotSupported is returned by operations that are not
	// implemented, such as TrimExcess.
	ErrNotSupported = errors.New("podvec: operation not supported")
	// ErrClosed is returned when using a buffer after Close.
	ErrClosed = errors.New("podvec: buffer is closed")
	// ErrInvalidAlignment is returned when the alignment is not a positive
	// power of two.
	ErrInvalidAlignment = errors.New("podvec: alignment must be a power of two")
	// ErrInvalidElementType is returned when the element type holds pointers
	// or has zero size.
	ErrInvalidElementType = errors.New("podvec: element type is not plain old data")
	// ErrCapacityOverflow is returned when a capacity or byte size does not
	// fit an int.
	ErrCapacityOverflow = errors.New("podvec: capacity overflow")
	// ErrAllocationFailed is returned when the allocator cannot provide a block.
	ErrAllocationFailed = errors.New("podvec: allocation failed")
)

// IndexError reports an index outside the valid range of an operation.
//
// It matches ErrIndexOutOfRange with errors.Is.
type IndexError struct {
	Op     string
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("podvec: %s: index %d out of range [0:%d]", e.Op, e.Index, e.Length)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

// GrowthPolicyError reports a starting capacity and growth factor pair that
// would never grow the buffer.
//
// It matches ErrInvalidGrowthPolicy with errors.Is.
type GrowthPolicyError struct {
	StartingCapacity int
	GrowthFactor     float64
}

func (e *GrowthPolicyError) Error() string {
	return fmt.Sprintf("podvec: capacity %d with growth factor %v does not grow; increase the factor",
		e.StartingCapacity, e.GrowthFactor)
}

// Is reports whether target is ErrInvalidGrowthPolicy.
func (e *GrowthPolicyError) Is(target error) bool { return target == ErrInvalidGrowthPolicy }

func indexError(op string, index, length int) error {
	return &IndexError{Op: op, Index: index, Length: length}
}

package podvec

import (
	"fmt"
	"math"
	"reflect"
	"runtime"
	"time"
	"unsafe"

	"github.com/hupe1980/podvec/internal/conv"
	"github.com/hupe1980/podvec/internal/layout"
	"github.com/hupe1980/podvec/resource"
)

// Buffer is a growable, contiguous array of plain-old-data values stored in
// a single block obtained from an Allocator (off-heap by default).
//
// T must be free of Go pointers: no pointers, strings, slices, maps,
// interfaces, channels or funcs, at any depth. New rejects other types.
//
// A Buffer is not safe for concurrent use. Any operation that grows the
// buffer moves the elements to a new block, which invalidates every pointer,
// slice or raw address previously obtained from Ref, Slice, Bytes or Pointer.
// Writing through such a stale reference is undefined behavior.
//
// Close releases the block. A Buffer that becomes unreachable without being
// closed is released by a runtime cleanup at some later GC cycle, but
// programs must not depend on that: the off-heap block is invisible to the
// garbage collector and never creates memory pressure that triggers it.
// The cleanup also frees the block under any view from Ref, Slice, Bytes or
// Pointer that outlives the Buffer, so the Buffer must stay reachable while
// such views are in use.
type Buffer[T comparable] struct {
	own      *owner
	data     unsafe.Pointer
	length   int
	capacity int

	growthFactor float64
	alignment    int
	elemSize     int
	typeName     string

	allocator  Allocator
	controller *resource.Controller
	logger     *Logger
	metrics    MetricsCollector
	cleanup    runtime.Cleanup
}

// owner holds the current block apart from the Buffer, so the runtime
// cleanup can release it without keeping the Buffer reachable.
type owner struct {
	block      Block
	bytes      int
	controller *resource.Controller
}

func releaseOwner(o *owner) {
	if o.block == nil {
		return
	}
	_ = o.block.Close()
	o.controller.ReleaseMemory(int64(o.bytes))
	o.block = nil
}

// New creates an empty Buffer with room for the starting capacity.
//
// It fails with ErrInvalidElementType, ErrInvalidGrowthPolicy,
// ErrInvalidAlignment or ErrAllocationFailed; no memory is held on failure.
func New[T comparable](opts ...Option) (*Buffer[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	typ := reflect.TypeFor[T]()
	if err := layout.CheckPOD(typ); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidElementType, err)
	}
	if err := validateGrowthPolicy(o.capacity, o.growthFactor); err != nil {
		return nil, err
	}
	if o.alignment <= 0 || o.alignment&(o.alignment-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlignment, o.alignment)
	}

	var zero T
	elemSize := int(unsafe.Sizeof(zero))

	b := &Buffer[T]{
		growthFactor: o.growthFactor,
		alignment:    max(o.alignment, int(unsafe.Alignof(zero))),
		elemSize:     elemSize,
		typeName:     typ.String(),
		allocator:    o.allocator,
		controller:   o.controller,
		logger:       o.logger.WithElementType(typ.String(), elemSize),
		metrics:      o.metricsCollector,
	}

	block, bytes, err := b.allocate(o.capacity)
	if err != nil {
		return nil, err
	}

	b.own = &owner{block: block, bytes: bytes, controller: o.controller}
	b.data = unsafe.Pointer(unsafe.SliceData(block.Bytes()))
	b.capacity = o.capacity
	b.cleanup = runtime.AddCleanup(b, releaseOwner, b.own)

	return b, nil
}

// validateGrowthPolicy rejects combinations where floor(capacity*factor)
// does not exceed capacity, which would make growth loop forever.
func validateGrowthPolicy(capacity int, factor float64) error {
	policyErr := &GrowthPolicyError{StartingCapacity: capacity, GrowthFactor: factor}
	if capacity < 1 || !(factor > 1) || math.IsInf(factor, 1) {
		return policyErr
	}
	next, err := conv.ScaleFloor(capacity, factor)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCapacityOverflow, err)
	}
	if next <= capacity {
		return policyErr
	}
	return nil
}

// allocate obtains a block for capacity elements, reserving its size from
// the controller first. On failure nothing stays reserved.
func (b *Buffer[T]) allocate(capacity int) (Block, int, error) {
	size, err := conv.MulInt(capacity, b.elemSize)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %d elements of %d bytes: %w", ErrCapacityOverflow, capacity, b.elemSize, err)
	}

	if err := b.controller.TryAcquireMemory(int64(size)); err != nil {
		b.metrics.RecordAllocate(size, 0, err)
		b.logger.LogAllocate(capacity, size, err)
		return nil, 0, fmt.Errorf("podvec: reserve %d bytes: %w", size, err)
	}

	start := time.Now()
	block, err := b.allocator.Allocate(size, b.alignment)
	if err == nil {
		err = checkBlock(block, size, b.alignment)
	}
	b.metrics.RecordAllocate(size, time.Since(start), err)
	b.logger.LogAllocate(capacity, size, err)

	if err != nil {
		b.controller.ReleaseMemory(int64(size))
		return nil, 0, fmt.Errorf("%w: %d bytes: %w", ErrAllocationFailed, size, err)
	}

	return block, size, nil
}

func checkBlock(block Block, size, alignment int) error {
	if block == nil {
		return fmt.Errorf("allocator returned no block")
	}
	data := block.Bytes()
	if len(data) < size {
		_ = block.Close()
		return fmt.Errorf("allocator returned %d bytes, want %d", len(data), size)
	}
	if uintptr(unsafe.Pointer(unsafe.SliceData(data)))%uintptr(alignment) != 0 {
		_ = block.Close()
		return fmt.Errorf("allocator returned a block not aligned to %d", alignment)
	}
	return nil
}

// Reserve ensures the capacity is at least need elements.
//
// The capacity advances by repeated steps of floor(capacity*factor) until
// it reaches need, then the buffer moves to a new block in a single
// reallocation that copies only the live elements. On failure the buffer
// is unchanged.
func (b *Buffer[T]) Reserve(need int) error {
	if b.own == nil {
		return ErrClosed
	}
	if need <= b.capacity {
		return nil
	}

	next := b.capacity
	for next < need {
		n, err := conv.ScaleFloor(next, b.growthFactor)
		if err != nil || n <= next {
			return fmt.Errorf("%w: cannot grow past %d elements", ErrCapacityOverflow, next)
		}
		next = n
	}

	return b.grow(next)
}

func (b *Buffer[T]) grow(capacity int) error {
	oldCapacity := b.capacity

	block, bytes, err := b.allocate(capacity)
	if err != nil {
		b.logger.LogGrow(oldCapacity, capacity, b.length, err)
		return err
	}

	dst := unsafe.Pointer(unsafe.SliceData(block.Bytes()))
	copy(unsafe.Slice((*T)(dst), b.length), b.Slice())

	old, oldBytes := b.own.block, b.own.bytes
	b.own.block, b.own.bytes = block, bytes
	b.data = dst
	b.capacity = capacity

	// The new block is live; a failed close of the old one is only logged.
	_ = b.release(old, oldCapacity, oldBytes)

	b.metrics.RecordGrow(oldCapacity, capacity)
	b.logger.LogGrow(oldCapacity, capacity, b.length, nil)

	return nil
}

func (b *Buffer[T]) release(block Block, capacity, bytes int) error {
	err := block.Close()
	b.controller.ReleaseMemory(int64(bytes))
	b.metrics.RecordRelease(bytes)
	b.logger.LogRelease(capacity, bytes, err)
	return err
}

// TrimExcess would shrink the capacity towards the length. It is not
// implemented and always returns ErrNotSupported, so callers are never led
// to believe memory was reclaimed.
func (b *Buffer[T]) TrimExcess() error {
	return ErrNotSupported
}

// Close releases the backing block and makes the buffer inert. Further calls
// to Close are no-ops; other checked operations return ErrClosed.
func (b *Buffer[T]) Close() error {
	if b.own == nil {
		return nil
	}
	b.cleanup.Stop()

	own := b.own
	err := b.release(own.block, b.capacity, own.bytes)
	own.block = nil

	b.own = nil
	b.data = nil
	b.length = 0
	b.capacity = 0

	return err
}

// Closed reports whether Close has been called.
func (b *Buffer[T]) Closed() bool {
	return b.own == nil
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	return b.length
}

// Cap returns the number of allocated element slots.
func (b *Buffer[T]) Cap() int {
	return b.capacity
}

// GrowthFactor returns the multiplier applied on growth.
func (b *Buffer[T]) GrowthFactor() float64 {
	return b.growthFactor
}

// Alignment returns the effective start address alignment in bytes.
func (b *Buffer[T]) Alignment() int {
	return b.alignment
}

// ElementSize returns the size of T in bytes.
func (b *Buffer[T]) ElementSize() int {
	return b.elemSize
}

// SizeInBytes returns the size of the allocated slots in bytes.
func (b *Buffer[T]) SizeInBytes() int {
	return b.capacity * b.elemSize
}

// UsedBytes returns the size of the live elements in bytes.
func (b *Buffer[T]) UsedBytes() int {
	return b.length * b.elemSize
}

func (b *Buffer[T]) String() string {
	return fmt.Sprintf("Buffer[%s]{len: %d, cap: %d, elem: %dB, align: %d, factor: %v}",
		b.typeName, b.length, b.capacity, b.elemSize, b.alignment, b.growthFactor)
}

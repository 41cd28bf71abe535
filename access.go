package podvec

import (
	"fmt"
	"iter"
	"runtime"
	"unsafe"
)

// Get returns a copy of the element at index i.
func (b *Buffer[T]) Get(i int) (T, error) {
	if i < 0 || i >= b.length {
		var zero T
		if b.own == nil {
			return zero, ErrClosed
		}
		return zero, indexError("get", i, b.length)
	}
	v := *(*T)(unsafe.Add(b.data, i*b.elemSize))
	runtime.KeepAlive(b)
	return v, nil
}

// Set overwrites the element at index i.
func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= b.length {
		if b.own == nil {
			return ErrClosed
		}
		return indexError("set", i, b.length)
	}
	*(*T)(unsafe.Add(b.data, i*b.elemSize)) = v
	runtime.KeepAlive(b)
	return nil
}

// Ref returns a pointer to the live slot at index i, the fast path for
// in-place updates. It panics with an *IndexError if i is out of range,
// like slice indexing.
//
// The pointer aliases the buffer's block: it is invalidated by any call that
// grows the buffer and by Close. It does not keep the Buffer reachable; if
// the Buffer is collected, its cleanup frees the block under the pointer.
// Keep the Buffer alive while the pointer is in use, e.g. with
// defer buf.Close() or runtime.KeepAlive(buf).
func (b *Buffer[T]) Ref(i int) *T {
	if uint(i) >= uint(b.length) {
		panic(indexError("ref", i, b.length))
	}
	return (*T)(unsafe.Add(b.data, i*b.elemSize))
}

// Slice returns the live elements as a slice that aliases the buffer's
// block. Its capacity equals its length, so appending to it with the
// builtin append copies to the Go heap instead of writing past Len.
//
// The slice is invalidated by any call that grows the buffer and by Close.
// Like Ref, it does not keep the Buffer reachable: the Buffer must outlive
// every use of the slice.
func (b *Buffer[T]) Slice() []T {
	if b.length == 0 {
		return nil
	}
	return unsafe.Slice((*T)(b.data), b.length)
}

// Bytes returns the live elements as raw bytes, aliasing the buffer's block.
// The same invalidation and reachability rules as Slice apply.
func (b *Buffer[T]) Bytes() []byte {
	if b.length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(b.data), b.length*b.elemSize)
}

// Pointer returns the start address of the block, for handing the live
// region to native consumers. It is nil after Close and must not be used
// after the next call that grows the buffer, or once the Buffer is no longer
// reachable.
func (b *Buffer[T]) Pointer() unsafe.Pointer {
	return b.data
}

// IndexOf returns the index of the first element equal to v.
// It returns -1 and ErrElementNotFound if there is none.
//
// Equality is Go's ==; a NaN float never matches.
func (b *Buffer[T]) IndexOf(v T) (int, error) {
	if b.own == nil {
		return -1, ErrClosed
	}
	for i, x := range b.Slice() {
		if x == v {
			runtime.KeepAlive(b)
			return i, nil
		}
	}
	runtime.KeepAlive(b)
	return -1, ErrElementNotFound
}

// Contains reports whether any element equals v.
func (b *Buffer[T]) Contains(v T) bool {
	_, err := b.IndexOf(v)
	return err == nil
}

// CopyTo copies the live elements into dst starting at dst[offset] and
// returns the number copied. It fails with ErrInsufficientDestinationSpace
// if dst cannot hold Len elements from offset.
func (b *Buffer[T]) CopyTo(dst []T, offset int) (int, error) {
	if b.own == nil {
		return 0, ErrClosed
	}
	if offset < 0 {
		return 0, indexError("copy", offset, len(dst))
	}
	if offset > len(dst) || b.length > len(dst)-offset {
		return 0, fmt.Errorf("%w: %d elements at offset %d into %d slots",
			ErrInsufficientDestinationSpace, b.length, offset, len(dst))
	}
	n := copy(dst[offset:], b.Slice())
	runtime.KeepAlive(b)
	return n, nil
}

// CopyToUnsafe copies the live elements to dst without any bounds check.
// dst must have room for Len aligned values of T.
func (b *Buffer[T]) CopyToUnsafe(dst unsafe.Pointer) {
	if b.length == 0 {
		return
	}
	copy(unsafe.Slice((*T)(dst), b.length), b.Slice())
	runtime.KeepAlive(b)
}

// All returns an iterator over index/value pairs in index order.
//
// Each step re-reads the slot, so edits made through Set or Ref during the
// loop are visible. Structural changes (append, insert, remove) during
// iteration are not supported.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.length; i++ {
			if !yield(i, *(*T)(unsafe.Add(b.data, i*b.elemSize))) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in index order.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.length; i++ {
			if !yield(*(*T)(unsafe.Add(b.data, i*b.elemSize))) {
				return
			}
		}
	}
}

// ForEach calls fn with every element in index order.
func (b *Buffer[T]) ForEach(fn func(v T)) {
	for i := 0; i < b.length; i++ {
		fn(*(*T)(unsafe.Add(b.data, i*b.elemSize)))
	}
}

// ForEachRef calls fn with the index of and a pointer to every live slot,
// for in-place updates. fn must not change the buffer's length.
func (b *Buffer[T]) ForEachRef(fn func(i int, v *T)) {
	for i := 0; i < b.length; i++ {
		fn(i, (*T)(unsafe.Add(b.data, i*b.elemSize)))
	}
}

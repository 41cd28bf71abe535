package podvec

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/podvec/internal/conv"
)

// slots returns every allocated slot, live or not.
func (b *Buffer[T]) slots() []T {
	return unsafe.Slice((*T)(b.data), b.capacity)
}

// Append adds v after the last element, growing first if the buffer is full.
func (b *Buffer[T]) Append(v T) error {
	if b.own == nil {
		return ErrClosed
	}
	if b.length == b.capacity {
		if err := b.Reserve(b.length + 1); err != nil {
			return err
		}
	}

	*(*T)(unsafe.Add(b.data, b.length*b.elemSize)) = v
	b.length++

	return nil
}

// AppendSlice adds all of vs in order with at most one reallocation.
// An empty vs is a no-op. vs may alias the buffer's own live elements.
func (b *Buffer[T]) AppendSlice(vs []T) error {
	if b.own == nil {
		return ErrClosed
	}
	if len(vs) == 0 {
		return nil
	}

	need, err := conv.AddInt(b.length, len(vs))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCapacityOverflow, err)
	}

	if need > b.capacity {
		// Growth frees the current block, so a source inside it must be
		// re-resolved against the new one.
		if off, ok := b.offsetOf(vs); ok {
			if err := b.Reserve(need); err != nil {
				return err
			}
			vs = b.slots()[off : off+len(vs)]
		} else if err := b.Reserve(need); err != nil {
			return err
		}
	}

	copy(b.slots()[b.length:need], vs)
	b.length = need

	return nil
}

// AppendBuffer adds the live elements of other. Passing the receiver itself
// duplicates its contents. Bytes are copied; other keeps its own block.
func (b *Buffer[T]) AppendBuffer(other *Buffer[T]) error {
	if b.own == nil {
		return ErrClosed
	}
	if other == nil {
		return nil
	}
	if other.own == nil {
		return ErrClosed
	}
	return b.AppendSlice(other.Slice())
}

// AppendUnsafe adds n elements read from the contiguous memory at p.
//
// Nothing about p is checked: it must point to at least n valid, aligned
// values of T.
func (b *Buffer[T]) AppendUnsafe(p unsafe.Pointer, n int) error {
	if n < 0 {
		return indexError("append", n, 0)
	}
	if n == 0 {
		return nil
	}
	return b.AppendSlice(unsafe.Slice((*T)(p), n))
}

// offsetOf reports the slot index at which vs starts if it points into the
// buffer's current block.
func (b *Buffer[T]) offsetOf(vs []T) (int, bool) {
	p := uintptr(unsafe.Pointer(unsafe.SliceData(vs)))
	base := uintptr(b.data)
	end := base + uintptr(b.capacity*b.elemSize)
	if p < base || p >= end {
		return 0, false
	}
	return int((p - base) / uintptr(b.elemSize)), true
}

// Insert places v at index i, shifting the elements at [i, Len) one slot to
// the right. i may equal Len, which appends.
func (b *Buffer[T]) Insert(i int, v T) error {
	if b.own == nil {
		return ErrClosed
	}
	if i < 0 || i > b.length {
		return indexError("insert", i, b.length)
	}
	if err := b.Reserve(b.length + 1); err != nil {
		return err
	}

	s := b.slots()
	copy(s[i+1:b.length+1], s[i:b.length])
	s[i] = v
	b.length++

	return nil
}

// RemoveAt deletes the element at index i and closes the gap by shifting
// the trailing elements left, preserving order. It costs O(Len-i); use
// RemoveAtFast when order does not matter.
func (b *Buffer[T]) RemoveAt(i int) error {
	if b.own == nil {
		return ErrClosed
	}
	if i < 0 || i >= b.length {
		return indexError("remove", i, b.length)
	}

	s := b.slots()
	copy(s[i:b.length-1], s[i+1:b.length])
	b.length--

	return nil
}

// RemoveAtFast deletes the element at index i in O(1) by moving the last
// element into its slot. The relative order of the remaining elements is
// not preserved.
func (b *Buffer[T]) RemoveAtFast(i int) error {
	if b.own == nil {
		return ErrClosed
	}
	if i < 0 || i >= b.length {
		return indexError("remove", i, b.length)
	}

	s := b.slots()
	s[i] = s[b.length-1]
	b.length--

	return nil
}

// Remove deletes the first element equal to v, preserving order.
// It returns ErrElementNotFound if there is none.
func (b *Buffer[T]) Remove(v T) error {
	i, err := b.IndexOf(v)
	if err != nil {
		return err
	}
	return b.RemoveAt(i)
}

// Clear sets the length to zero. The capacity and the block are kept.
func (b *Buffer[T]) Clear() {
	b.length = 0
}

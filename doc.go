// Package podvec provides a growable, contiguous buffer of plain-old-data
// values stored outside the Go heap.
//
// A Buffer[T] owns one block of memory from an Allocator (anonymous mmap by
// default). Appends are amortized O(1); when the block is full the capacity
// is multiplied by a fixed growth factor and the live elements move to a new
// block in a single copy. Because the block is invisible to the garbage
// collector, large buffers add no GC scan work and no GC pressure.
//
// # Quick Start
//
//	buf, err := podvec.New[Particle](
//	    podvec.WithCapacity(1024),
//	    podvec.WithGrowthFactor(2),
//	)
//	if err != nil { ... }
//	defer buf.Close()
//
//	_ = buf.Append(Particle{X: 1})
//	buf.Ref(0).X += 1          // in-place update
//	for i, p := range buf.All() { ... }
//
// # Element Types
//
// T must be free of Go pointers at any depth: numbers, bools, arrays and
// structs of those. Strings, slices, maps, pointers, interfaces, channels and
// funcs are rejected by New with ErrInvalidElementType, since the garbage
// collector would not see references stored off-heap.
//
// # Removal
//
// RemoveAt preserves order and costs O(n). RemoveAtFast moves the last
// element into the hole in O(1) and does not preserve order.
//
// # Aliasing
//
// Ref, Slice, Bytes and Pointer expose the block directly. Anything obtained
// from them is invalid after the next operation that grows the buffer and
// after Close.
//
// These views do not keep the Buffer reachable. A Buffer that is never
// closed is freed by a runtime cleanup once it becomes unreachable, and a
// view still in use then points at unmapped memory and faults. Keep the
// Buffer alive for as long as its views are used:
//
//	buf, _ := podvec.New[float32]()
//	defer buf.Close() // keeps buf reachable until return
//	s := buf.Slice()
//
// or call runtime.KeepAlive(buf) after the last use of a view.
//
// # Memory Budget
//
// Off-heap memory is not covered by GOMEMLIMIT. Use a resource.Controller
// with WithMemoryController to bound the memory of a group of buffers.
//
// # Concurrency
//
// A Buffer is not safe for concurrent use. Loggers, metrics collectors and
// controllers may be shared between buffers owned by different goroutines.
package podvec

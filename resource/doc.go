// Package resource provides a shared budget for off-heap memory.
//
// Buffers allocate outside the Go heap, so GOMEMLIMIT and the garbage
// collector never see them. A Controller gives a group of buffers a hard
// upper bound instead:
//
//	ctrl := resource.NewController(resource.Config{MemoryLimitBytes: 64 << 20})
//	buf, err := podvec.New[float32](podvec.WithMemoryController(ctrl))
//
// Buffers reserve the size of a new block before allocating it and return
// the size of the old block after freeing it. A growth that would exceed the
// limit fails with ErrMemoryLimitExceeded and leaves the buffer untouched.
//
// A Controller is safe for concurrent use, so buffers owned by different
// goroutines can share one.
package resource

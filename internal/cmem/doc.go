// Package cmem allocates aligned blocks from the C heap.
//
// It is only functional when built with cgo and the malloc_cgo build tag:
//
//	go build -tags malloc_cgo ./...
//
// Without the tag, Alloc returns ErrNotSupported.
package cmem

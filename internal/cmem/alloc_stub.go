//go:build !(cgo && malloc_cgo && unix)

package cmem

// Supported reports whether the C allocator is compiled in.
const Supported = false

// Block is a C-heap allocation. It cannot be created in this build.
type Block struct{}

// Alloc always fails with ErrNotSupported in this build.
func Alloc(int, int) (*Block, error) {
	return nil, ErrNotSupported
}

// Bytes returns nil.
func (b *Block) Bytes() []byte { return nil }

// Close is a no-op.
func (b *Block) Close() error { return nil }

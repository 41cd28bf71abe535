package cmem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlloc(t *testing.T) {
	if !Supported {
		_, err := Alloc(64, 64)
		assert.ErrorIs(t, err, ErrNotSupported)
		t.Skip("built without malloc_cgo")
	}

	for _, align := range []int{1, 8, 64, 128, 4096} {
		b, err := Alloc(1000, align)
		require.NoError(t, err)

		data := b.Bytes()
		require.Len(t, data, 1000)
		addr := uintptr(unsafe.Pointer(&data[0]))
		assert.Equal(t, uintptr(0), addr%uintptr(align))

		data[999] = 1
		require.NoError(t, b.Close())
		require.NoError(t, b.Close())
		assert.Nil(t, b.Bytes())
	}

	_, err := Alloc(0, 64)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Alloc(64, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

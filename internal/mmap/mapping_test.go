package mmap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAnon_ReadWriteClose(t *testing.T) {
	m, err := MapAnonAligned(100, 1)
	require.NoError(t, err)

	data := m.Bytes()
	require.Len(t, data, 100)

	// Anonymous mappings are zeroed
	for _, b := range data {
		require.Zero(t, b)
	}

	data[0] = 0xAB
	data[99] = 0xCD
	assert.Equal(t, byte(0xAB), m.Bytes()[0])
	assert.Equal(t, byte(0xCD), m.Bytes()[99])

	require.NoError(t, m.Close())
	assert.Nil(t, m.Bytes())

	// Idempotent
	require.NoError(t, m.Close())
}

func TestMapAnonAligned(t *testing.T) {
	page := PageSize()
	alignments := []int{1, 8, 64, 128, page, page * 4}

	for _, align := range alignments {
		m, err := MapAnonAligned(1000, align)
		require.NoError(t, err, "alignment %d", align)

		data := m.Bytes()
		require.Len(t, data, 1000)
		addr := uintptr(unsafe.Pointer(&data[0]))
		assert.Equal(t, uintptr(0), addr%uintptr(align), "address %d should be aligned to %d", addr, align)

		if align > page {
			assert.GreaterOrEqual(t, len(m.raw), 1000+align)
		} else {
			assert.Equal(t, 1000, len(m.raw))
		}

		require.NoError(t, m.Close())
	}
}

func TestMapAnon_InvalidArguments(t *testing.T) {
	_, err := MapAnonAligned(0, 1)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = MapAnonAligned(-1, 1)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = MapAnonAligned(64, 3)
	assert.ErrorIs(t, err, ErrInvalidAlignment)

	_, err = MapAnonAligned(64, 0)
	assert.ErrorIs(t, err, ErrInvalidAlignment)
}

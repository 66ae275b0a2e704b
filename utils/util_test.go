package utils

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	V "pointfill.com/pointfill/vector"
)

func TestTransfer(t *testing.T) {
	positionSlice := make([]V.Vec32, 20)
	for i := range positionSlice {
		positionSlice[i] = V.Vec32{float32(i), 1, 0}
	}
	uSlice := make([]V.Vec32, 20)
	uPtr := unsafe.Pointer(&uSlice[0])

	require.NoError(t, TransferPositionData(uPtr, positionSlice, len(positionSlice)-1))

	for i := 0; i < len(positionSlice)-1; i++ {
		assert.True(t, V.VecEquals(positionSlice[i], uSlice[i]), "Improper Buffer Load at index %d", i)
	}
	assert.Equal(t, V.Vec32{}, uSlice[19], "past count stays untouched")

	require.NoError(t, TransferPositionData(uPtr, positionSlice, len(positionSlice)))
	assert.Equal(t, positionSlice[19], uSlice[19])
}

func TestTransferBounds(t *testing.T) {
	src := []V.Vec32{{1, 2, 3}}
	dst := make([]V.Vec32, 1)
	ptr := unsafe.Pointer(&dst[0])

	assert.Error(t, TransferPositionData(ptr, src, 0))
	assert.Error(t, TransferPositionData(ptr, src, 2))
	assert.Error(t, TransferPositionData(nil, src, 1))
}

func TestTransferScalar(t *testing.T) {
	src := []float32{0.25, 0.5, 0.75}
	dst := make([]float32, 3)

	require.NoError(t, TransferScalarData(unsafe.Pointer(&dst[0]), src, 3))
	assert.Equal(t, src, dst)
	assert.Error(t, TransferScalarData(unsafe.Pointer(&dst[0]), src, 4))
}

func TestScalePositions(t *testing.T) {
	pos := []V.Vec32{{2, 2, 2}, {0, 0, 0}}
	ScalePositions(pos, V.Vec32{1, 1, 1}, 0.5)
	assert.Equal(t, []V.Vec32{{1.5, 1.5, 1.5}, {0.5, 0.5, 0.5}}, pos)
}

package utils

import (
	"fmt"
	"unsafe"

	V "pointfill.com/pointfill/vector"
)

//Positional Data Transfer into raw memory, typically a mapped GL buffer.
//dst must hold at least count elements of the source type

//TransferPositionData copies the first count positions to dst
func TransferPositionData(dst unsafe.Pointer, posArray []V.Vec32, count int) error {
	if err := checkTransfer(dst, count, len(posArray)); err != nil {
		return err
	}
	copy(unsafe.Slice((*V.Vec32)(dst), count), posArray[:count])
	return nil
}

//TransferScalarData copies the first count floats (per point alpha) to dst
func TransferScalarData(dst unsafe.Pointer, values []float32, count int) error {
	if err := checkTransfer(dst, count, len(values)); err != nil {
		return err
	}
	copy(unsafe.Slice((*float32)(dst), count), values[:count])
	return nil
}

func checkTransfer(dst unsafe.Pointer, count int, length int) error {
	if count <= 0 || count > length {
		return fmt.Errorf("size of buffer transfer out of bounds: %d of %d", count, length)
	}
	if dst == nil {
		return fmt.Errorf("no valid pointer to the target memory location")
	}
	return nil
}

//Scales Position List Points Around an Origin in place
func ScalePositions(pos []V.Vec32, origin V.Vec32, scale float32) {
	for i := range pos {
		pos[i].Sub(origin).Scale(scale).Add(origin)
	}
}

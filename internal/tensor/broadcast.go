package tensor

// flatOffset maps an output index onto an operand's buffer.
//
// The operand is aligned against the trailing axes of index, so a shorter
// operand repeats over the leading output axes. Operand axes of size 1 always
// read position 0 along that axis.
func flatOffset(index []int, shape Shape, strides []int, base int) int {
	lead := len(index) - len(shape)
	off := base
	for axis, dim := range shape {
		if dim == 1 {
			continue
		}
		off += index[lead+axis] * strides[axis]
	}
	return off
}

// broadcastRead returns the element of v addressed by an output index of a
// broadcast result.
func (v *View[T]) broadcastRead(index []int) T {
	return v.data.At(flatOffset(index, v.shape, v.strides, v.offset))
}

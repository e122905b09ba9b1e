package tensor

import "slices"

// Equal reports structural equality: same shape, same strides and the same
// backing elements from each descriptor's offset to the end of its buffer.
//
// Two tensors holding the same logical values in different layouts (for
// example a transposed view and its Contiguous copy) are not Equal.
func (v *View[T]) Equal(other Reader[T]) bool {
	o := other.AsView()
	if !v.shape.Equal(o.shape) || !slices.Equal(v.strides, o.strides) {
		return false
	}
	n := v.data.Len() - v.offset
	if n != o.data.Len()-o.offset {
		return false
	}
	for i := range n {
		if v.data.At(v.offset+i) != o.data.At(o.offset+i) {
			return false
		}
	}
	return true
}

// EqualNested reports whether nested has exactly the shape of v and holds
// the same values in row-major order.
func (v *View[T]) EqualNested(nested any) bool {
	values, err := collectNested[T](nested, v.shape)
	if err != nil {
		return false
	}
	i := 0
	for x := range v.Iter() {
		if x != values[i] {
			return false
		}
		i++
	}
	return true
}

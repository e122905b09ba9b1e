package tensor

import "reflect"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros[float32](tensor.Shape{3, 4})
func Zeros[T Numeric](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return newTensor[T](shape.Clone()), nil
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full[float32](tensor.Shape{3, 3}, 3.14)
func Full[T Numeric](shape Shape, value T) (*Tensor[T], error) {
	t, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range t.buf.data {
		t.buf.data[i] = value
	}
	return t, nil
}

// FromVec builds a tensor from a nested literal of any depth. The shape is
// read off the nesting; every level must be regular, otherwise the call
// fails with ErrShapeMismatch. A scalar literal yields a 0-d tensor and an
// empty innermost list a zero-sized one.
//
// Example:
//
//	t, err := tensor.FromVec[int32]([][]int32{{1, 2, 3}, {4, 5, 6}}) // shape [2, 3]
func FromVec[T Numeric](nested any) (*Tensor[T], error) {
	shape := nestedShape(reflect.ValueOf(nested))
	data, err := collectNested[T](nested, shape)
	if err != nil {
		return nil, err
	}
	return fromData(shape, data), nil
}

// FromVecRef is FromVec. The literal is always copied.
func FromVecRef[T Numeric](nested any) (*Tensor[T], error) {
	return FromVec[T](nested)
}

// FromShape builds a tensor of the given shape from a flat row-major slice.
// The slice is copied; its length must equal the number of elements.
//
// Example:
//
//	t, err := tensor.FromShape(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
func FromShape[T Numeric](shape Shape, data []T) (*Tensor[T], error) {
	if err := checkFlat(shape, len(data)); err != nil {
		return nil, err
	}
	return fromData(shape.Clone(), append(make([]T, 0, len(data)), data...)), nil
}

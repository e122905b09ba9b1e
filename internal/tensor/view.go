package tensor

// Reader is implemented by every tensor descriptor that can be read through:
// *Tensor, *View and *ViewMut. Binary operations accept any Reader as their
// right operand.
type Reader[T Numeric] interface {
	AsView() *View[T]
}

// View is a read-only, zero-copy window onto a tensor's buffer.
// Any number of Views may alias the same buffer.
type View[T Numeric] struct {
	layout
	data Storage[T]
}

// ViewOf wraps a caller-owned slice as a read-only view with a contiguous
// layout. The slice is not copied.
func ViewOf[T Numeric](shape Shape, data []T) (*View[T], error) {
	if err := checkFlat(shape, len(data)); err != nil {
		return nil, err
	}
	return &View[T]{layout: contiguousLayout(shape.Clone()), data: shared[T](data)}, nil
}

func checkFlat(shape Shape, n int) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if shape.NumElements() != n {
		return newShapeError(shape, Shape{n})
	}
	return nil
}

// AsView implements Reader.
func (v *View[T]) AsView() *View[T] { return v }

func (v *View[T]) derive(l layout) *View[T] {
	return &View[T]{layout: l, data: v.data}
}

// Axis returns a view with axis k moved to the front and the other axes
// kept in their original order.
func (v *View[T]) Axis(k int) (*View[T], error) {
	l, err := v.axis(k)
	if err != nil {
		return nil, err
	}
	return v.derive(l), nil
}

// Slice fixes the leading len(index) axes and returns the remaining sub-tensor.
func (v *View[T]) Slice(index []int) (*View[T], error) {
	l, err := v.slice(index)
	if err != nil {
		return nil, err
	}
	return v.derive(l), nil
}

// AxisSlice is Axis(axis) followed by Slice(index).
func (v *View[T]) AxisSlice(axis int, index []int) (*View[T], error) {
	a, err := v.Axis(axis)
	if err != nil {
		return nil, err
	}
	return a.Slice(index)
}

// Batch restricts the leading axis to the half-open range [start, end).
func (v *View[T]) Batch(start, end int) (*View[T], error) {
	l, err := v.batch(start, end)
	if err != nil {
		return nil, err
	}
	return v.derive(l), nil
}

// Permute reorders the axes: axis i of the result is axis axes[i] of v.
func (v *View[T]) Permute(axes []int) (*View[T], error) {
	l, err := v.permute(axes)
	if err != nil {
		return nil, err
	}
	return v.derive(l), nil
}

// Transpose reverses the axis order.
func (v *View[T]) Transpose() *View[T] {
	return v.derive(v.transpose())
}

// T is shorthand for Transpose.
func (v *View[T]) T() *View[T] { return v.Transpose() }

// Flatten collapses all axes after the first into one: shape [d0, d1*...*dn].
// It is only meaningful when those trailing axes are laid out contiguously.
func (v *View[T]) Flatten() (*View[T], error) {
	l, err := v.flatten()
	if err != nil {
		return nil, err
	}
	return v.derive(l), nil
}

// GetVal reads the element at a full index tuple.
func (v *View[T]) GetVal(index []int) (T, error) {
	off, err := v.locate(index, v.data.Len())
	if err != nil {
		var zero T
		return zero, err
	}
	return v.data.At(off), nil
}

// Data returns a copy of the entire backing buffer, independent of the
// view's offset and strides.
func (v *View[T]) Data() []T {
	out := make([]T, v.data.Len())
	for i := range out {
		out[i] = v.data.At(i)
	}
	return out
}

// Contiguous copies the logical elements of v, in iteration order, into a
// new owned tensor of the same shape.
func (v *View[T]) Contiguous() *Tensor[T] {
	out := newTensor[T](v.shape.Clone())
	i := 0
	for x := range v.Iter() {
		out.buf.data[i] = x
		i++
	}
	return out
}

// Max returns the largest logical element, or the zero value if v is empty.
func (v *View[T]) Max() T {
	return v.reduce(func(acc, x T) bool { return x > acc })
}

// Min returns the smallest logical element, or the zero value if v is empty.
func (v *View[T]) Min() T {
	return v.reduce(func(acc, x T) bool { return x < acc })
}

func (v *View[T]) reduce(better func(acc, x T) bool) T {
	var acc T
	first := true
	for x := range v.Iter() {
		if first || better(acc, x) {
			acc, first = x, false
		}
	}
	return acc
}

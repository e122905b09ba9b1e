package tensor

import "slices"

// layout is the descriptor shared by Tensor, View and ViewMut: it maps a
// logical index tuple onto a flat buffer offset.
//
// Zero-sized layouts (a 0 anywhere in shape) carry empty strides and address
// no elements.
type layout struct {
	shape   Shape
	strides []int
	offset  int
}

func contiguousLayout(shape Shape) layout {
	return layout{shape: shape, strides: shape.ComputeStrides()}
}

// Shape returns a copy of the dimensions.
func (l *layout) Shape() Shape { return l.shape.Clone() }

// Strides returns a copy of the per-axis strides.
func (l *layout) Strides() []int { return slices.Clone(l.strides) }

// Offset returns the flat index of the first logical element.
func (l *layout) Offset() int { return l.offset }

// NDim returns the number of axes.
func (l *layout) NDim() int { return len(l.shape) }

// NElems returns the number of logical elements.
func (l *layout) NElems() int { return l.shape.NumElements() }

// IsContiguous reports whether the layout has row-major strides.
func (l *layout) IsContiguous() bool {
	return slices.Equal(l.strides, l.shape.ComputeStrides())
}

func (l *layout) zeroSized() bool { return l.shape.HasZero() }

// stride returns the stride of axis, or 0 for zero-sized layouts.
func (l *layout) stride(axis int) int {
	if axis < len(l.strides) {
		return l.strides[axis]
	}
	return 0
}

// normalized drops the strides of a layout that became zero-sized.
func normalized(shape Shape, strides []int, offset int) layout {
	if shape.HasZero() {
		strides = []int{}
	}
	return layout{shape: shape, strides: strides, offset: offset}
}

// reorder returns a layout whose axis i is axis order[i] of l.
func (l *layout) reorder(order []int) layout {
	shape := make(Shape, len(order))
	strides := make([]int, len(order))
	for i, ax := range order {
		shape[i] = l.shape[ax]
		strides[i] = l.stride(ax)
	}
	return normalized(shape, strides, l.offset)
}

// axis rotates axis k to the front, keeping the others in order.
func (l *layout) axis(k int) (layout, error) {
	if k < 0 || k >= len(l.shape) {
		return layout{}, newAxisError(k, len(l.shape))
	}
	order := make([]int, 0, len(l.shape))
	order = append(order, k)
	for i := range l.shape {
		if i != k {
			order = append(order, i)
		}
	}
	return l.reorder(order), nil
}

// slice fixes the leading len(index) axes.
func (l *layout) slice(index []int) (layout, error) {
	if len(index) > len(l.shape) {
		return layout{}, newShapeError(index, l.shape)
	}
	offset := l.offset
	for i, idx := range index {
		if idx < 0 || idx >= l.shape[i] {
			return layout{}, newSlicingError(index, l.shape)
		}
		offset += idx * l.stride(i)
	}
	rest := len(index)
	var strides []int
	if len(l.strides) > 0 {
		strides = slices.Clone(l.strides[rest:])
	}
	return normalized(l.shape[rest:].Clone(), strides, offset), nil
}

// batch restricts the leading axis to [start, end).
func (l *layout) batch(start, end int) (layout, error) {
	if len(l.shape) == 0 {
		return layout{}, newAxisError(0, 0)
	}
	if start < 0 || start > end || end > l.shape[0] {
		return layout{}, newSlicingError([]int{start, end}, l.shape)
	}
	shape := l.shape.Clone()
	shape[0] = end - start
	return normalized(shape, slices.Clone(l.strides), l.offset+start*l.stride(0)), nil
}

// permute reorders the axes; axes must be a permutation of 0..ndim-1.
func (l *layout) permute(axes []int) (layout, error) {
	if len(axes) != len(l.shape) {
		return layout{}, newDimensionError(len(l.shape), len(axes))
	}
	seen := make([]bool, len(axes))
	for _, ax := range axes {
		if ax < 0 || ax >= len(l.shape) || seen[ax] {
			return layout{}, newAxisError(ax, len(l.shape))
		}
		seen[ax] = true
	}
	return l.reorder(axes), nil
}

// transpose reverses the axis order.
func (l *layout) transpose() layout {
	order := make([]int, len(l.shape))
	for i := range order {
		order[i] = len(order) - 1 - i
	}
	return l.reorder(order)
}

// flatten keeps the leading axis and collapses the rest into one.
// The strides assume the trailing axes are contiguous.
func (l *layout) flatten() (layout, error) {
	if len(l.shape) == 0 {
		return layout{}, newAxisError(0, 0)
	}
	rest := l.shape[1:].NumElements()
	return normalized(Shape{l.shape[0], rest}, []int{rest, 1}, l.offset), nil
}

// locate resolves a full index tuple to a flat offset into a buffer of n
// elements.
func (l *layout) locate(index []int, n int) (int, error) {
	if len(index) != len(l.shape) {
		return 0, newShapeError(index, l.shape)
	}
	off := l.offset
	for i, idx := range index {
		if idx < 0 || idx >= l.shape[i] {
			return 0, newIndexError(idx, l.shape[i])
		}
		off += idx * l.stride(i)
	}
	if off >= n {
		return 0, newIndexError(off, n)
	}
	return off, nil
}

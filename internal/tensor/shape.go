package tensor

// Shape represents the dimensions of a tensor, outermost axis first.
type Shape []int

// NumElements returns the product of the dimensions.
// A 0-d shape has one element; a shape containing 0 has none.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative. Zero-sized axes are allowed.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return newParamError("negative dimension %d at axis %d of shape %s", dim, i, formatDims(s))
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String renders the shape as "[2, 3]"; the 0-d shape is "[]".
func (s Shape) String() string { return formatDims(s) }

// HasZero reports whether any dimension is 0.
func (s Shape) HasZero() bool {
	for _, dim := range s {
		if dim == 0 {
			return true
		}
	}
	return false
}

// ComputeStrides calculates row-major strides for the shape:
// stride[i] is the product of all dimensions after i.
// The result is empty for a 0-d shape and for a shape containing a 0.
func (s Shape) ComputeStrides() []int {
	if len(s) == 0 || s.HasZero() {
		return []int{}
	}
	strides := make([]int, len(s))
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape and a flag indicating if broadcasting is needed.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(5)    + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, ErrShapeMismatchBroadcast
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	n := max(len(a), len(b))
	result := make(Shape, n)
	needsBroadcast := false

	for i := range n {
		aDim, bDim := dimFromRight(a, i), dimFromRight(b, i)

		switch {
		case aDim == bDim:
			result[n-1-i] = aDim
		case aDim == 1:
			result[n-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[n-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, newBroadcastError(a, b)
		}
	}

	return result, needsBroadcast, nil
}

// MatMulShapes computes the output shape of a batched matrix product.
// Both operands need at least two axes; the trailing two are the matrix axes
// and must satisfy a[-1] == b[-2]. The leading batch axes broadcast.
//
// Examples:
//
//	(2, 3)       x (3, 4)    → (2, 4)
//	(5, 2, 3)    x (3, 4)    → (5, 2, 4)
//	(5, 1, 2, 3) x (4, 3, 2) → (5, 4, 2, 2)
func MatMulShapes(a, b Shape) (Shape, error) {
	if len(a) < 2 || len(b) < 2 {
		return nil, newBroadcastError(a, b)
	}
	na, nb := len(a), len(b)
	if a[na-1] != b[nb-2] {
		return nil, newBroadcastError(a, b)
	}
	batch, _, err := BroadcastShapes(a[:na-2], b[:nb-2])
	if err != nil {
		return nil, newBroadcastError(a, b)
	}
	return append(batch, a[na-2], b[nb-1]), nil
}

// dimFromRight returns the i-th dimension counted from the last axis,
// or 1 when s has fewer axes.
func dimFromRight(s Shape, i int) int {
	if idx := len(s) - 1 - i; idx >= 0 {
		return s[idx]
	}
	return 1
}

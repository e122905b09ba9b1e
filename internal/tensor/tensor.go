package tensor

// Tensor is an n-dimensional array that owns its buffer.
//
// Every read-only operation of View is available on a Tensor through
// embedding. Mutation goes through a ViewMut obtained from ViewMut or one of
// the *Mut methods, which take the tensor's lease; at most one mutable view
// family may be alive per tensor.
//
// Example:
//
//	t, _ := tensor.FromVec[float32]([][]float32{{1, 2, 3}, {4, 5, 6}})
//	row, _ := t.Slice([]int{1}) // [4, 5, 6], no copy
//	sum, _ := t.Add(row)        // broadcast over the leading axis
type Tensor[T Numeric] struct {
	View[T]
	buf *buffer[T]
}

// newTensor allocates a zero-filled contiguous tensor. shape is not copied.
func newTensor[T Numeric](shape Shape) *Tensor[T] {
	return fromData(shape, make([]T, shape.NumElements()))
}

// fromData wraps data as a contiguous tensor without copying.
func fromData[T Numeric](shape Shape, data []T) *Tensor[T] {
	buf := &buffer[T]{data: data}
	return &Tensor[T]{View: View[T]{layout: contiguousLayout(shape), data: buf}, buf: buf}
}

// Clone returns a deep copy with the same shape, strides and offset.
func (t *Tensor[T]) Clone() *Tensor[T] {
	buf := &buffer[T]{data: append([]T(nil), t.buf.data...)}
	l := layout{shape: t.shape.Clone(), strides: t.Strides(), offset: t.offset}
	return &Tensor[T]{View: View[T]{layout: l, data: buf}, buf: buf}
}

// ViewMut takes the tensor's lease and returns a writable view of the whole
// tensor. It fails with ErrBorrowed while another mutable view is alive.
// The caller must Release the returned view.
func (t *Tensor[T]) ViewMut() (*ViewMut[T], error) {
	ls, err := t.buf.acquire()
	if err != nil {
		return nil, err
	}
	return newViewMut(t.layout, t.buf.data, ls), nil
}

// AsViewMut implements Mutable.
func (t *Tensor[T]) AsViewMut() (*ViewMut[T], error) { return t.ViewMut() }

// derived takes the lease and applies f to the root mutable view. On error
// the lease is handed back.
func (t *Tensor[T]) derived(f func(*ViewMut[T]) (*ViewMut[T], error)) (*ViewMut[T], error) {
	root, err := t.ViewMut()
	if err != nil {
		return nil, err
	}
	v, err := f(root)
	if err != nil {
		root.Release()
		return nil, err
	}
	return v, nil
}

// mutate runs f under the tensor's lease and releases it afterwards.
func (t *Tensor[T]) mutate(f func(*ViewMut[T]) error) error {
	root, err := t.ViewMut()
	if err != nil {
		return err
	}
	defer root.Release()
	return f(root)
}

// AxisMut takes the lease and returns the writable counterpart of Axis.
func (t *Tensor[T]) AxisMut(k int) (*ViewMut[T], error) {
	return t.derived(func(v *ViewMut[T]) (*ViewMut[T], error) { return v.AxisMut(k) })
}

// SliceMut takes the lease and returns the writable counterpart of Slice.
func (t *Tensor[T]) SliceMut(index []int) (*ViewMut[T], error) {
	return t.derived(func(v *ViewMut[T]) (*ViewMut[T], error) { return v.SliceMut(index) })
}

// AxisSliceMut takes the lease and returns the writable counterpart of AxisSlice.
func (t *Tensor[T]) AxisSliceMut(axis int, index []int) (*ViewMut[T], error) {
	return t.derived(func(v *ViewMut[T]) (*ViewMut[T], error) { return v.AxisSliceMut(axis, index) })
}

// BatchMut takes the lease and returns the writable counterpart of Batch.
func (t *Tensor[T]) BatchMut(start, end int) (*ViewMut[T], error) {
	return t.derived(func(v *ViewMut[T]) (*ViewMut[T], error) { return v.BatchMut(start, end) })
}

// PermuteMut takes the lease and returns the writable counterpart of Permute.
func (t *Tensor[T]) PermuteMut(axes []int) (*ViewMut[T], error) {
	return t.derived(func(v *ViewMut[T]) (*ViewMut[T], error) { return v.PermuteMut(axes) })
}

// TransposeMut takes the lease and returns the writable counterpart of Transpose.
func (t *Tensor[T]) TransposeMut() (*ViewMut[T], error) {
	return t.derived(func(v *ViewMut[T]) (*ViewMut[T], error) { return v.TransposeMut(), nil })
}

// TMut is shorthand for TransposeMut.
func (t *Tensor[T]) TMut() (*ViewMut[T], error) { return t.TransposeMut() }

// FlattenMut takes the lease and returns the writable counterpart of Flatten.
func (t *Tensor[T]) FlattenMut() (*ViewMut[T], error) {
	return t.derived(func(v *ViewMut[T]) (*ViewMut[T], error) { return v.FlattenMut() })
}

// SetVal writes the element at a full index tuple.
func (t *Tensor[T]) SetVal(index []int, val T) error {
	return t.mutate(func(v *ViewMut[T]) error { return v.SetVal(index, val) })
}

// Apply replaces every element x with f(x).
func (t *Tensor[T]) Apply(f func(T) T) error {
	return t.mutate(func(v *ViewMut[T]) error { return v.Apply(f) })
}

// AddScalar adds s to every element in place.
func (t *Tensor[T]) AddScalar(s T) error {
	return t.mutate(func(v *ViewMut[T]) error { return v.AddScalar(s) })
}

// SubScalar subtracts s from every element in place.
func (t *Tensor[T]) SubScalar(s T) error {
	return t.mutate(func(v *ViewMut[T]) error { return v.SubScalar(s) })
}

// MulScalar multiplies every element by s in place.
func (t *Tensor[T]) MulScalar(s T) error {
	return t.mutate(func(v *ViewMut[T]) error { return v.MulScalar(s) })
}

// Relu clamps negative elements to zero in place.
func (t *Tensor[T]) Relu() error {
	return t.mutate(func(v *ViewMut[T]) error { return v.Relu() })
}

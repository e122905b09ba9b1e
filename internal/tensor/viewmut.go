package tensor

// ViewMut is an exclusive, writable window onto a tensor's buffer.
//
// A ViewMut derived from a Tensor holds the tensor's lease until Release is
// called. Views reborrowed from a ViewMut (AxisMut, SliceMut, ...) share that
// lease, so releasing any of them releases the whole family. All read-only
// methods of View are available through embedding.
type ViewMut[T Numeric] struct {
	View[T]
	mut   MutableStorage[T]
	lease *lease
}

// Mutable is implemented by descriptors that can hand out a ViewMut:
// *Tensor (acquiring its lease) and *ViewMut (reborrowing).
type Mutable[T Numeric] interface {
	NDim() int
	AsViewMut() (*ViewMut[T], error)
}

func newViewMut[T Numeric](l layout, data []T, ls *lease) *ViewMut[T] {
	return &ViewMut[T]{
		View:  View[T]{layout: l, data: shared[T](data)},
		mut:   exclusive[T](data),
		lease: ls,
	}
}

// ViewMutOf wraps a caller-owned slice as a writable view with a contiguous
// layout. The slice is not copied and no lease is taken on it.
func ViewMutOf[T Numeric](shape Shape, data []T) (*ViewMut[T], error) {
	if err := checkFlat(shape, len(data)); err != nil {
		return nil, err
	}
	return newViewMut(contiguousLayout(shape.Clone()), data, newLease(nil)), nil
}

// AsViewMut implements Mutable by reborrowing v.
func (v *ViewMut[T]) AsViewMut() (*ViewMut[T], error) {
	if err := v.lease.check(); err != nil {
		return nil, err
	}
	return v, nil
}

// Release returns the lease to the owning tensor. It is safe to call more
// than once; writes through any view of the family fail afterwards.
func (v *ViewMut[T]) Release() { v.lease.release() }

func (v *ViewMut[T]) reborrow(l layout) *ViewMut[T] {
	return &ViewMut[T]{View: View[T]{layout: l, data: v.data}, mut: v.mut, lease: v.lease}
}

// AxisMut is the writable counterpart of Axis.
func (v *ViewMut[T]) AxisMut(k int) (*ViewMut[T], error) {
	l, err := v.axis(k)
	if err != nil {
		return nil, err
	}
	return v.reborrow(l), nil
}

// SliceMut is the writable counterpart of Slice.
func (v *ViewMut[T]) SliceMut(index []int) (*ViewMut[T], error) {
	l, err := v.slice(index)
	if err != nil {
		return nil, err
	}
	return v.reborrow(l), nil
}

// AxisSliceMut is AxisMut(axis) followed by SliceMut(index).
func (v *ViewMut[T]) AxisSliceMut(axis int, index []int) (*ViewMut[T], error) {
	a, err := v.AxisMut(axis)
	if err != nil {
		return nil, err
	}
	return a.SliceMut(index)
}

// BatchMut is the writable counterpart of Batch.
func (v *ViewMut[T]) BatchMut(start, end int) (*ViewMut[T], error) {
	l, err := v.batch(start, end)
	if err != nil {
		return nil, err
	}
	return v.reborrow(l), nil
}

// PermuteMut is the writable counterpart of Permute.
func (v *ViewMut[T]) PermuteMut(axes []int) (*ViewMut[T], error) {
	l, err := v.permute(axes)
	if err != nil {
		return nil, err
	}
	return v.reborrow(l), nil
}

// TransposeMut is the writable counterpart of Transpose.
func (v *ViewMut[T]) TransposeMut() *ViewMut[T] {
	return v.reborrow(v.transpose())
}

// TMut is shorthand for TransposeMut.
func (v *ViewMut[T]) TMut() *ViewMut[T] { return v.TransposeMut() }

// FlattenMut is the writable counterpart of Flatten.
func (v *ViewMut[T]) FlattenMut() (*ViewMut[T], error) {
	l, err := v.flatten()
	if err != nil {
		return nil, err
	}
	return v.reborrow(l), nil
}

// SetVal writes the element at a full index tuple.
func (v *ViewMut[T]) SetVal(index []int, val T) error {
	if err := v.lease.check(); err != nil {
		return err
	}
	off, err := v.locate(index, v.mut.Len())
	if err != nil {
		return err
	}
	v.mut.Set(off, val)
	return nil
}

// Apply replaces every logical element x with f(x).
func (v *ViewMut[T]) Apply(f func(T) T) error {
	if err := v.lease.check(); err != nil {
		return err
	}
	for p := range v.IterMut() {
		*p = f(*p)
	}
	return nil
}

// AddScalar adds s to every logical element in place.
func (v *ViewMut[T]) AddScalar(s T) error {
	return v.Apply(func(x T) T { return x + s })
}

// SubScalar subtracts s from every logical element in place.
func (v *ViewMut[T]) SubScalar(s T) error {
	return v.Apply(func(x T) T { return x - s })
}

// MulScalar multiplies every logical element by s in place.
func (v *ViewMut[T]) MulScalar(s T) error {
	return v.Apply(func(x T) T { return x * s })
}

package tensor

import "iter"

// odometer enumerates the index tuples of a shape in row-major order,
// last axis fastest. A 0-d shape yields a single empty tuple; a shape
// containing 0 yields nothing.
type odometer struct {
	shape   Shape
	index   []int
	started bool
	done    bool
}

func newOdometer(shape Shape) *odometer {
	return &odometer{
		shape: shape,
		index: make([]int, len(shape)),
		done:  shape.HasZero(),
	}
}

// next advances to the following tuple and reports whether one exists.
func (o *odometer) next() bool {
	if o.done {
		return false
	}
	if !o.started {
		o.started = true
		return true
	}
	for axis := len(o.index) - 1; axis >= 0; axis-- {
		o.index[axis]++
		if o.index[axis] < o.shape[axis] {
			return true
		}
		o.index[axis] = 0
	}
	o.done = true
	return false
}

// offsets yields the flat buffer offset of every logical element.
func (l *layout) offsets() iter.Seq[int] {
	return func(yield func(int) bool) {
		o := newOdometer(l.shape)
		for o.next() {
			off := l.offset
			for i, idx := range o.index {
				off += idx * l.strides[i]
			}
			if !yield(off) {
				return
			}
		}
	}
}

// Indices yields every index tuple of the shape in row-major order.
// Each yielded slice is a fresh copy.
func (l *layout) Indices() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		o := newOdometer(l.shape)
		for o.next() {
			if !yield(append([]int(nil), o.index...)) {
				return
			}
		}
	}
}

// Iter yields the logical elements of v in row-major order.
func (v *View[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for off := range v.offsets() {
			if !yield(v.data.At(off)) {
				return
			}
		}
	}
}

// IterMut yields a pointer to each logical element of v in row-major order.
// Once v's lease is released the sequence stops and yields nothing more.
func (v *ViewMut[T]) IterMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for off := range v.offsets() {
			if v.lease.check() != nil || !yield(v.mut.Ptr(off)) {
				return
			}
		}
	}
}

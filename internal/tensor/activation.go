package tensor

import "math"

// Relu clamps negative elements to zero in place.
func (v *ViewMut[T]) Relu() error {
	var zero T
	return v.Apply(func(x T) T {
		if x < zero {
			return zero
		}
		return x
	})
}

// Softmax normalizes x in place along axis: every lane of elements that
// differ only in their axis coordinate is replaced by exp(x-max)/sum.
//
// The returned view has axis moved to the front (see Axis). When x is a
// *Tensor the view holds the tensor's lease and must be released.
func Softmax[F Float](x Mutable[F], axis int) (*ViewMut[F], error) {
	if axis < 0 || axis >= x.NDim() {
		return nil, newAxisError(axis, x.NDim())
	}
	root, err := x.AsViewMut()
	if err != nil {
		return nil, err
	}
	v, err := root.AxisMut(axis)
	if err != nil {
		return nil, err
	}
	if v.zeroSized() {
		return v, nil
	}

	n, step := v.shape[0], v.strides[0]
	lanes := newOdometer(v.shape[1:])
	for lanes.next() {
		base := v.offset
		for i, idx := range lanes.index {
			base += idx * v.strides[i+1]
		}
		softmaxLane(v.mut, base, step, n)
	}
	return v, nil
}

func softmaxLane[F Float](s MutableStorage[F], base, step, n int) {
	peak := s.At(base)
	for i := 1; i < n; i++ {
		peak = max(peak, s.At(base+i*step))
	}
	var sum float64
	for i := range n {
		off := base + i*step
		e := math.Exp(float64(s.At(off) - peak))
		s.Set(off, F(e))
		sum += e
	}
	for i := range n {
		off := base + i*step
		s.Set(off, F(float64(s.At(off))/sum))
	}
}

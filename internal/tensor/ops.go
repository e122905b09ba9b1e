package tensor

// Add returns a + b elementwise with NumPy-style broadcasting.
func Add[T Numeric](a, b Reader[T]) (*Tensor[T], error) {
	return elementwise(a.AsView(), b.AsView(), func(x, y T) T { return x + y })
}

// Sub returns a - b elementwise with NumPy-style broadcasting.
func Sub[T Numeric](a, b Reader[T]) (*Tensor[T], error) {
	return elementwise(a.AsView(), b.AsView(), func(x, y T) T { return x - y })
}

// Mul returns the batched matrix product of a and b.
func Mul[T Numeric](a, b Reader[T]) (*Tensor[T], error) {
	return matmul(a.AsView(), b.AsView())
}

// Add returns v + rhs elementwise with NumPy-style broadcasting.
func (v *View[T]) Add(rhs Reader[T]) (*Tensor[T], error) { return Add[T](v, rhs) }

// Sub returns v - rhs elementwise with NumPy-style broadcasting.
func (v *View[T]) Sub(rhs Reader[T]) (*Tensor[T], error) { return Sub[T](v, rhs) }

// Mul returns the batched matrix product v x rhs.
func (v *View[T]) Mul(rhs Reader[T]) (*Tensor[T], error) { return Mul[T](v, rhs) }

// elementwise applies op over the broadcast of a and b and collects the
// results into a new contiguous tensor.
func elementwise[T Numeric](a, b *View[T], op func(x, y T) T) (*Tensor[T], error) {
	shape, needsBroadcast, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	out := newTensor[T](shape)
	data := out.buf.data

	// Fast path: same shape, both row-major.
	if !needsBroadcast && a.IsContiguous() && b.IsContiguous() {
		for i := range data {
			data[i] = op(a.data.At(a.offset+i), b.data.At(b.offset+i))
		}
		return out, nil
	}

	o := newOdometer(shape)
	for i := 0; o.next(); i++ {
		data[i] = op(a.broadcastRead(o.index), b.broadcastRead(o.index))
	}
	return out, nil
}

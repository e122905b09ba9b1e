package tensor

// Update writes a nested literal into the sub-tensor addressed by prefix.
//
// The literal must have exactly the shape of the addressed sub-tensor, else
// the call fails with ErrShapeMismatch and nothing is written. When prefix
// addresses a single element, both a scalar and a one-element list are
// accepted. The mutated sub-view rooted at prefix is returned so updates can
// be chained.
//
// Example:
//
//	v, _ := t.ViewMut()
//	v.Update(nil, [][]int{{1, 2}, {3, 4}})
//	v.Update([]int{1}, []int{30, 40})
//	v.Update([]int{0, 0}, 10)
func (v *ViewMut[T]) Update(prefix []int, nested any) (*ViewMut[T], error) {
	if err := v.lease.check(); err != nil {
		return nil, err
	}
	l, err := v.slice(prefix)
	if err != nil {
		return nil, err
	}
	if len(l.shape) == 0 {
		nested = unwrapSingleton(nested)
	}
	values, err := collectNested[T](nested, l.shape)
	if err != nil {
		return nil, err
	}

	i := 0
	for off := range l.offsets() {
		v.mut.Set(off, values[i])
		i++
	}
	return v.reborrow(l), nil
}

// Update takes the tensor's lease, writes nested into the sub-tensor
// addressed by prefix and returns the mutated sub-view. The caller must
// Release it.
func (t *Tensor[T]) Update(prefix []int, nested any) (*ViewMut[T], error) {
	return t.derived(func(v *ViewMut[T]) (*ViewMut[T], error) { return v.Update(prefix, nested) })
}

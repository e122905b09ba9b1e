package tensor

// matmul computes the batched product of a and b.
//
// The trailing two axes are the matrix axes: [..., M, K] x [..., K, N] gives
// [..., M, N]. Leading batch axes broadcast against each other, and each
// output matrix is computed with the plain triple loop.
func matmul[T Numeric](a, b *View[T]) (*Tensor[T], error) {
	shape, err := MatMulShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	out := newTensor[T](shape)

	na, nb, nc := len(a.shape), len(b.shape), len(shape)
	m, n, k := shape[nc-2], shape[nc-1], a.shape[na-1]
	if out.zeroSized() || k == 0 {
		return out, nil
	}

	// Matrix-axis strides.
	sam, sak := a.strides[na-2], a.strides[na-1]
	sbk, sbn := b.strides[nb-2], b.strides[nb-1]

	aBatch, aBatchStrides := a.shape[:na-2], a.strides[:na-2]
	bBatch, bBatchStrides := b.shape[:nb-2], b.strides[:nb-2]

	data := out.buf.data
	o := newOdometer(shape[:nc-2])
	for base := 0; o.next(); base += m * n {
		baseA := flatOffset(o.index, aBatch, aBatchStrides, a.offset)
		baseB := flatOffset(o.index, bBatch, bBatchStrides, b.offset)

		for i := range m {
			rowA := baseA + i*sam
			for j := range n {
				colB := baseB + j*sbn
				var sum T
				for p := range k {
					sum += a.data.At(rowA+p*sak) * b.data.At(colB+p*sbk)
				}
				data[base+i*n+j] = sum
			}
		}
	}
	return out, nil
}

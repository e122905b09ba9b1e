package tensor

import (
	"fmt"
	"testing"
)

func benchTensor(b *testing.B, shape Shape) *Tensor[float32] {
	b.Helper()
	data := make([]float32, shape.NumElements())
	for i := range data {
		data[i] = float32(i%17) * 0.25
	}
	t, err := FromShape(shape, data)
	if err != nil {
		b.Fatal(err)
	}
	return t
}

func BenchmarkTensorCreation(b *testing.B) {
	shape := Shape{100, 100}
	nested := make([][]float32, 100)
	for i := range nested {
		nested[i] = make([]float32, 100)
	}

	b.Run("Zeros", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Zeros[float32](shape)
		}
	})

	b.Run("FromVec", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = FromVec[float32](nested)
		}
	})
}

func BenchmarkElementwise(b *testing.B) {
	x := benchTensor(b, Shape{256, 256})
	y := benchTensor(b, Shape{256, 256})
	row := benchTensor(b, Shape{256})

	b.Run("Add/contiguous", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = x.Add(y)
		}
	})

	b.Run("Add/broadcast", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = x.Add(row)
		}
	})

	b.Run("Add/transposed", func(b *testing.B) {
		xt := x.T()
		for i := 0; i < b.N; i++ {
			_, _ = xt.Add(y)
		}
	})
}

func BenchmarkMatMul(b *testing.B) {
	for _, n := range []int{16, 64, 128} {
		x := benchTensor(b, Shape{n, n})
		y := benchTensor(b, Shape{n, n})
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = x.Mul(y)
			}
		})
	}

	x := benchTensor(b, Shape{8, 32, 32})
	y := benchTensor(b, Shape{32, 32})
	b.Run("batched_8x32x32", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = x.Mul(y)
		}
	})
}

func BenchmarkSoftmax(b *testing.B) {
	x := benchTensor(b, Shape{64, 512})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := Softmax[float32](x, 1)
		if err != nil {
			b.Fatal(err)
		}
		v.Release()
	}
}

func BenchmarkIter(b *testing.B) {
	x := benchTensor(b, Shape{128, 128})
	v, err := x.Permute([]int{1, 0})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum float32
		for e := range v.Iter() {
			sum += e
		}
		_ = sum
	}
}

package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3, 4}, 24},
		{Shape{2, 0, 4}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.NumElements(), "shape %v", tt.shape)
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  []int
	}{
		{"vector", Shape{5}, []int{1}},
		{"matrix", Shape{2, 3}, []int{3, 1}},
		{"3d", Shape{2, 3, 4}, []int{12, 4, 1}},
		{"scalar", Shape{}, []int{}},
		{"zero-sized", Shape{2, 0, 3}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.ComputeStrides())
		})
	}
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{2, 0, 3}.Validate())
	assert.NoError(t, Shape{}.Validate())

	err := Shape{2, -1}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 7
	assert.Equal(t, Shape{2, 3}, s)
	assert.True(t, s.Equal(Shape{2, 3}))
	assert.False(t, s.Equal(c))
	assert.False(t, s.Equal(Shape{2, 3, 1}))
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "[2, 3]", Shape{2, 3}.String())
	assert.Equal(t, "[]", Shape{}.String())

	_, err := MatMulShapes(Shape{2, 3}, Shape{4, 5})
	assert.EqualError(t, err, "The two shapes are not compatible for broadcasting [ SHAPE(A): "+
		Shape{2, 3}.String()+" | SHAPE(B): "+Shape{4, 5}.String()+" ]")
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Shape
		want      Shape
		broadcast bool
	}{
		{"same", Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{"column", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true},
		{"row", Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true},
		{"shorter operand", Shape{5}, Shape{3, 5}, Shape{3, 5}, true},
		{"both expand", Shape{2, 1, 4}, Shape{3, 1}, Shape{2, 3, 4}, true},
		{"scalar", Shape{}, Shape{2, 2}, Shape{2, 2}, true},
		{"zero against one", Shape{0, 3}, Shape{1, 3}, Shape{0, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, needs, err := BroadcastShapes(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.broadcast, needs)
		})
	}
}

func TestBroadcastShapesIncompatible(t *testing.T) {
	_, _, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatchBroadcast)

	var te *Error
	require.True(t, errors.As(err, &te))
	assert.Equal(t, Shape{3, 4}, te.ShapeA)
	assert.Equal(t, Shape{3, 5}, te.ShapeB)
}

func TestMatMulShapes(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want Shape
	}{
		{"2d", Shape{2, 3}, Shape{3, 4}, Shape{2, 4}},
		{"batched lhs", Shape{5, 2, 3}, Shape{3, 4}, Shape{5, 2, 4}},
		{"batched rhs", Shape{2, 3}, Shape{7, 3, 4}, Shape{7, 2, 4}},
		{"broadcast batches", Shape{5, 1, 2, 3}, Shape{4, 3, 2}, Shape{5, 4, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatMulShapes(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatMulShapesErrors(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
	}{
		{"inner mismatch", Shape{2, 3}, Shape{4, 2}},
		{"vector lhs", Shape{3}, Shape{3, 4}},
		{"vector rhs", Shape{2, 3}, Shape{3}},
		{"batch mismatch", Shape{2, 2, 3}, Shape{3, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MatMulShapes(tt.a, tt.b)
			assert.ErrorIs(t, err, ErrShapeMismatchBroadcast)
		})
	}
}

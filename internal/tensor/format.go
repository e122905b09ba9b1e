package tensor

import (
	"fmt"
	"strings"
)

// String renders the logical elements as nested brackets, one level per
// axis: [[1, 2, 3], [4, 5, 6]]. A 0-d tensor renders as its bare value.
func (v *View[T]) String() string {
	var sb strings.Builder
	v.format(&sb, 0, v.offset)
	return sb.String()
}

func (v *View[T]) format(sb *strings.Builder, axis, off int) {
	if axis == len(v.shape) {
		fmt.Fprint(sb, v.data.At(off))
		return
	}
	sb.WriteByte('[')
	for i := range v.shape[axis] {
		if i > 0 {
			sb.WriteString(", ")
		}
		v.format(sb, axis+1, off+i*v.stride(axis))
	}
	sb.WriteByte(']')
}

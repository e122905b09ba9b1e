package tensor

import "reflect"

// Nested literals are Go slices or arrays of any depth ([][]float32,
// [][]any, [3][2]int, ...) whose leaves are numeric values. They are walked
// with reflection so one code path serves every depth and element type.

// deref strips interfaces and pointers around a literal node.
func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isList(v reflect.Value) bool {
	return v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array)
}

// nestedShape measures a literal by following first elements down to a leaf.
// An empty list ends the descent with a 0 dimension.
func nestedShape(v reflect.Value) Shape {
	shape := Shape{}
	for v = deref(v); isList(v); v = deref(v.Index(0)) {
		shape = append(shape, v.Len())
		if v.Len() == 0 {
			break
		}
	}
	return shape
}

// walkNested visits the leaves of v in row-major order. Each level must be a
// list whose length equals the corresponding entry of shape; once shape is
// exhausted the node is handed to visit as a leaf.
func walkNested(v reflect.Value, shape Shape, visit func(leaf reflect.Value) error) error {
	v = deref(v)
	if len(shape) == 0 {
		return visit(v)
	}
	if !isList(v) {
		return newShapeError(shape, Shape{})
	}
	if v.Len() != shape[0] {
		return newShapeError(shape, Shape{v.Len()})
	}
	for i := range v.Len() {
		if err := walkNested(v.Index(i), shape[1:], visit); err != nil {
			return err
		}
	}
	return nil
}

// leafValue converts a numeric leaf to T.
func leafValue[T Numeric](v reflect.Value) (T, error) {
	var zero T
	v = deref(v)
	if !v.IsValid() {
		return zero, newParamError("nil element in nested literal")
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
	case reflect.Slice, reflect.Array:
		return zero, newShapeError(nestedShape(v), Shape{})
	default:
		return zero, newParamError("unsupported element type %s in nested literal", v.Type())
	}
	return v.Convert(reflect.TypeOf(zero)).Interface().(T), nil
}

// collectNested validates nested against shape and returns its leaves as a
// flat row-major slice.
func collectNested[T Numeric](nested any, shape Shape) ([]T, error) {
	out := make([]T, 0, shape.NumElements())
	err := walkNested(reflect.ValueOf(nested), shape, func(leaf reflect.Value) error {
		x, err := leafValue[T](leaf)
		if err != nil {
			return err
		}
		out = append(out, x)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// unwrapSingleton reduces a one-element list literal to its element, so a
// fully indexed Update accepts both 41 and []int{41}.
func unwrapSingleton(nested any) any {
	v := deref(reflect.ValueOf(nested))
	for isList(v) && v.Len() == 1 {
		v = deref(v.Index(0))
	}
	if !v.IsValid() {
		return nested
	}
	return v.Interface()
}

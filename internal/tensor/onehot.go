package tensor

// FromOneHot encodes labels as a [len(labels), classes] uint8 matrix.
// Classes are numbered in order of first appearance; row i has a single 1 in
// the column of labels[i].
//
// Example:
//
//	FromOneHot([]string{"cat", "dog", "cat"}) // [[1, 0], [0, 1], [1, 0]]
func FromOneHot[L comparable](labels []L) (*Tensor[uint8], error) {
	if len(labels) == 0 {
		return nil, newParamError("one-hot encoding needs at least one label")
	}
	ids := make(map[L]int, len(labels))
	classes := make([]int, len(labels))
	for i, label := range labels {
		id, ok := ids[label]
		if !ok {
			id = len(ids)
			ids[label] = id
		}
		classes[i] = id
	}

	out := newTensor[uint8](Shape{len(labels), len(ids)})
	for row, id := range classes {
		out.buf.data[row*len(ids)+id] = 1
	}
	return out, nil
}

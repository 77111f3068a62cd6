package frd

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Tensor is a complex frequency response indexed by output, input and
// frequency point. Data is stored row major with the frequency axis last,
// so Channel(i, j) is a contiguous view of one transfer channel.
type Tensor struct {
	outputs, inputs, n int
	data               []complex128
}

// NewTensor returns a zero-filled (outputs x inputs x n) tensor.
func NewTensor(outputs, inputs, n int) (*Tensor, error) {
	if outputs < 1 || inputs < 1 || n < 1 {
		return nil, fmt.Errorf("%w: tensor shape (%d, %d, %d)",
			ErrShapeMismatch, outputs, inputs, n)
	}
	return &Tensor{
		outputs: outputs,
		inputs:  inputs,
		n:       n,
		data:    make([]complex128, outputs*inputs*n),
	}, nil
}

// TensorOf copies data, laid out row major as (outputs, inputs, n), into a
// new tensor. The number of frequency points is inferred from the data
// length.
func TensorOf(outputs, inputs int, data []complex128) (*Tensor, error) {
	if outputs < 1 || inputs < 1 || len(data) == 0 || len(data)%(outputs*inputs) != 0 {
		return nil, fmt.Errorf("%w: %d samples do not fill a (%d, %d, n) tensor",
			ErrShapeMismatch, len(data), outputs, inputs)
	}
	t, err := NewTensor(outputs, inputs, len(data)/(outputs*inputs))
	if err != nil {
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}

// Ones returns an all-ones tensor, the unity response.
func Ones(outputs, inputs, n int) (*Tensor, error) {
	t, err := NewTensor(outputs, inputs, n)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = 1
	}
	return t, nil
}

// Dims returns the number of outputs, inputs and frequency points.
func (t *Tensor) Dims() (outputs, inputs, n int) {
	return t.outputs, t.inputs, t.n
}

func (t *Tensor) index(i, j, k int) int {
	if i < 0 || i >= t.outputs || j < 0 || j >= t.inputs || k < 0 || k >= t.n {
		panic(fmt.Sprintf("frd: tensor index (%d, %d, %d) out of shape (%d, %d, %d)",
			i, j, k, t.outputs, t.inputs, t.n))
	}
	return (i*t.inputs+j)*t.n + k
}

// At returns the response of channel (i, j) at frequency point k.
func (t *Tensor) At(i, j, k int) complex128 {
	return t.data[t.index(i, j, k)]
}

// Set stores the response of channel (i, j) at frequency point k.
func (t *Tensor) Set(i, j, k int, v complex128) {
	t.data[t.index(i, j, k)] = v
}

// Channel returns a copy of the (i, j) transfer channel over all
// frequency points.
func (t *Tensor) Channel(i, j int) []complex128 {
	start := t.index(i, j, 0)
	out := make([]complex128, t.n)
	copy(out, t.data[start:start+t.n])
	return out
}

// SliceAt returns a copy of the (outputs x inputs) response matrix at
// frequency point k.
func (t *Tensor) SliceAt(k int) *mat.CDense {
	out := mat.NewCDense(t.outputs, t.inputs, nil)
	for i := 0; i < t.outputs; i++ {
		for j := 0; j < t.inputs; j++ {
			out.Set(i, j, t.At(i, j, k))
		}
	}
	return out
}

// SetSliceAt stores an (outputs x inputs) response matrix at frequency
// point k.
func (t *Tensor) SetSliceAt(k int, m mat.CMatrix) {
	for i := 0; i < t.outputs; i++ {
		for j := 0; j < t.inputs; j++ {
			t.Set(i, j, k, m.At(i, j))
		}
	}
}

// Clone returns an independent copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	out := &Tensor{outputs: t.outputs, inputs: t.inputs, n: t.n}
	out.data = make([]complex128, len(t.data))
	copy(out.data, t.data)
	return out
}

package frd

import "fmt"

// Array is a complex result with an explicit shape. Data is flattened in
// row-major order over Shape; a scalar has an empty Shape and one entry.
type Array struct {
	Shape []int
	Data  []complex128
}

// Scalar returns the single entry of a scalar or single-element array.
func (a *Array) Scalar() (complex128, error) {
	if len(a.Data) != 1 {
		return 0, fmt.Errorf("%w: array of shape %v is not scalar",
			ErrShapeMismatch, a.Shape)
	}
	return a.Data[0], nil
}

// RealArray is the float64 counterpart of Array.
type RealArray struct {
	Shape []int
	Data  []float64
}

// View couples a complex array with the signal labels its leading axes
// span. Views are copies of the owning model's data; mutating one never
// touches the model.
type View struct {
	Array
	Outputs []string
	Inputs  []string
}

// RealView couples a real array with the signal labels its leading axes
// span.
type RealView struct {
	RealArray
	Outputs []string
	Inputs  []string
}

package frd

import (
	"fmt"
	"math"

	"github.com/hammal/lti"
	"gonum.org/v1/gonum/mat"
)

// Operand is the canonical tagged form of everything the algebra can
// combine with a model: a scalar, a constant matrix, another linear
// system, or a model itself. All arithmetic operates on this form only.
type Operand interface {
	// toFRD coerces the operand onto the target frequency grid. The
	// outputs/inputs hint sizes scalar operands; operands carrying their
	// own shape ignore it.
	toFRD(omega []float64, outputs, inputs int, tol float64) (*Model, error)
}

// Scalar is a constant scalar operand, replicated across the grid.
type Scalar complex128

func (s Scalar) toFRD(omega []float64, outputs, inputs int, _ float64) (*Model, error) {
	t, err := NewTensor(outputs, inputs, len(omega))
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = complex128(s)
	}
	return FromSamples(t, omega, WithSmoothing())
}

// Matrix is a constant matrix operand, elementwise constant across the
// grid.
type Matrix struct {
	M mat.CMatrix
}

// Constant wraps a constant complex matrix as an operand.
func Constant(m mat.CMatrix) Operand { return Matrix{M: m} }

func (c Matrix) toFRD(omega []float64, _, _ int, _ float64) (*Model, error) {
	p, q := c.M.Dims()
	t, err := NewTensor(p, q, len(omega))
	if err != nil {
		return nil, err
	}
	for i := 0; i < p; i++ {
		for j := 0; j < q; j++ {
			v := c.M.At(i, j)
			for k := range omega {
				t.Set(i, j, k, v)
			}
		}
	}
	return FromSamples(t, omega, WithSmoothing())
}

type systemOperand struct {
	sys lti.System
}

// System wraps a linear system as an operand; combining it samples the
// system on the target grid.
func System(sys lti.System) Operand { return systemOperand{sys: sys} }

func (s systemOperand) toFRD(omega []float64, _, _ int, _ float64) (*Model, error) {
	return FromSystem(s.sys, omega, WithSmoothing())
}

// Grids must agree point for point, in stored order: grids are combined
// index-by-index, so a reordering of the same frequencies would silently
// pair samples taken at different points.
func (m *Model) toFRD(omega []float64, _, _ int, tol float64) (*Model, error) {
	if len(omega) != len(m.omega) {
		return nil, fmt.Errorf("%w: frequency grids have %d and %d points; resampling is not implemented",
			ErrConversion, len(omega), len(m.omega))
	}
	for k, w := range omega {
		if math.Abs(w-m.omega[k]) >= tol {
			return nil, fmt.Errorf("%w: frequency grids differ at point %d (%g vs %g); resampling is not implemented",
				ErrConversion, k, w, m.omega[k])
		}
	}
	return m, nil
}

// AsOperand is the boundary that maps heterogeneous values onto the
// canonical operand form. Unsupported types fail with ErrConversion
// naming the offending type.
func AsOperand(v any) (Operand, error) {
	switch x := v.(type) {
	case Operand:
		return x, nil
	case int:
		return Scalar(complex(float64(x), 0)), nil
	case float64:
		return Scalar(complex(x, 0)), nil
	case complex128:
		return Scalar(x), nil
	case mat.CMatrix:
		return Constant(x), nil
	case lti.System:
		return System(x), nil
	}
	return nil, fmt.Errorf("%w: can't convert type %T", ErrConversion, v)
}

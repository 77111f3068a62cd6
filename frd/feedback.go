package frd

import (
	"fmt"

	"github.com/hammal/lti"
	"github.com/hammal/lti/gonumExtensions"
	"gonum.org/v1/gonum/mat"
)

// Feedback closes the loop around the receiver M through the operand N:
// per frequency sample the closed-loop response is
//
//	M (I - sign*N*M)^{-1}
//
// so the conventional negative feedback uses sign = -1, giving
// M (I + N*M)^{-1}, and sign = +1 the positive-feedback convention. The
// operand's inputs must match the receiver's outputs and vice versa.
func (m *Model) Feedback(other Operand, sign float64) (*Model, error) {
	rhs, err := other.toFRD(m.omega, m.resp.inputs, m.resp.outputs, m.tol)
	if err != nil {
		return nil, err
	}
	if m.resp.outputs != rhs.resp.inputs || m.resp.inputs != rhs.resp.outputs {
		return nil, fmt.Errorf("%w: feedback of a %dx%d system through a %dx%d system",
			ErrDimension, m.resp.outputs, m.resp.inputs,
			rhs.resp.outputs, rhs.resp.inputs)
	}
	tb, err := lti.Common(m.tb, rhs.tb)
	if err != nil {
		return nil, err
	}

	q := m.resp.inputs
	t, err := NewTensor(m.resp.outputs, q, m.resp.n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < m.resp.n; k++ {
		mk := m.resp.SliceAt(k)
		nk := rhs.resp.SliceAt(k)

		nm := gonumExtensions.CMul(nk, mk)
		loop := mat.NewCDense(q, q, nil)
		for i := 0; i < q; i++ {
			for j := 0; j < q; j++ {
				v := -complex(sign, 0) * nm.At(i, j)
				if i == j {
					v++
				}
				loop.Set(i, j, v)
			}
		}
		inv, err := gonumExtensions.CInverse(loop)
		if err != nil {
			return nil, fmt.Errorf("%w: singular closed loop at omega=%g",
				ErrDomain, m.omega[k])
		}
		t.SetSliceAt(k, gonumExtensions.CMul(mk, inv))
	}
	return m.derived(t, rhs.omega, tb, m.Smoothed())
}

// Append combines two systems block diagonally: the receiver occupies the
// top-left block of the combined response, the operand the bottom-right,
// zeros elsewhere. Input and output order is preserved.
func (m *Model) Append(other Operand) (*Model, error) {
	rhs, err := other.toFRD(m.omega, 1, 1, m.tol)
	if err != nil {
		return nil, err
	}
	tb, err := lti.Common(m.tb, rhs.tb)
	if err != nil {
		return nil, err
	}

	p1, q1, n := m.resp.Dims()
	p2, q2, _ := rhs.resp.Dims()
	t, err := NewTensor(p1+p2, q1+q2, n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < n; k++ {
		for i := 0; i < p1; i++ {
			for j := 0; j < q1; j++ {
				t.Set(i, j, k, m.resp.At(i, j, k))
			}
		}
		for i := 0; i < p2; i++ {
			for j := 0; j < q2; j++ {
				t.Set(p1+i, q1+j, k, rhs.resp.At(i, j, k))
			}
		}
	}
	return m.derived(t, m.omega, tb, m.Smoothed())
}

package frd

import (
	"fmt"
	"math"
)

// evaluator is the two-variant evaluation model: an exact grid lookup or
// a smoothed spline evaluation. Dispatch happens on the variant, never on
// a nil check at the call site.
type evaluator interface {
	eval(omega []float64, out *Tensor) error
}

// exactGrid answers queries only at grid frequencies, matched within tol.
type exactGrid struct {
	resp  *Tensor
	omega []float64
	tol   float64
}

func (e *exactGrid) eval(omega []float64, out *Tensor) error {
	for q, w := range omega {
		k, ok := matchFrequency(e.omega, w, e.tol)
		if !ok {
			return fmt.Errorf("%w: not all frequencies are in the grid (omega=%g)",
				ErrDomain, w)
		}
		for i := 0; i < e.resp.outputs; i++ {
			for j := 0; j < e.resp.inputs; j++ {
				out.Set(i, j, q, e.resp.At(i, j, k))
			}
		}
	}
	return nil
}

// matchFrequency finds the grid entry within tol of w. The grid is not
// guaranteed sorted, so the scan is linear.
func matchFrequency(grid []float64, w, tol float64) (int, bool) {
	for k, g := range grid {
		if math.Abs(g-w) <= tol {
			return k, true
		}
	}
	return 0, false
}

// smoothedGrid answers queries at any real frequency through the fitted
// per-channel splines.
type smoothedGrid struct {
	resp    *Tensor
	splines []*bspline // row major over (output, input)
}

func (s *smoothedGrid) eval(omega []float64, out *Tensor) error {
	for i := 0; i < s.resp.outputs; i++ {
		for j := 0; j < s.resp.inputs; j++ {
			sp := s.splines[i*s.resp.inputs+j]
			for q, w := range omega {
				re, im := sp.evalAt(w)
				out.Set(i, j, q, complex(re, im))
			}
		}
	}
	return nil
}

// Eval evaluates the response at the given angular frequencies and
// returns the full (outputs, inputs, len(omega)) tensor. Without an
// interpolation model every frequency must match a grid entry within the
// model tolerance; with one, any real frequency is accepted.
func (m *Model) Eval(omega []float64) (*Tensor, error) {
	if len(omega) == 0 {
		return nil, fmt.Errorf("%w: no frequencies given", ErrDomain)
	}
	out, err := NewTensor(m.resp.outputs, m.resp.inputs, len(omega))
	if err != nil {
		return nil, err
	}
	if err := m.eval.eval(omega, out); err != nil {
		return nil, err
	}
	return out, nil
}

// EvalResponse evaluates at the given frequencies and applies the model's
// squeeze policy to the result shape.
func (m *Model) EvalResponse(omega []float64) (*Array, error) {
	t, err := m.Eval(omega)
	if err != nil {
		return nil, err
	}
	return squeezeArray(t, false, m.squeeze)
}

// EvalAt evaluates at a single angular frequency; the frequency axis is
// treated as scalar by the squeeze policy.
func (m *Model) EvalAt(w float64) (*Array, error) {
	t, err := m.Eval([]float64{w})
	if err != nil {
		return nil, err
	}
	return squeezeArray(t, true, m.squeeze)
}

// Call evaluates the model as a transfer function at points in the
// complex plane. Every argument must be purely imaginary; a nonzero real
// part fails with ErrDomain.
func (m *Model) Call(s []complex128) (*Array, error) {
	omega := make([]float64, len(s))
	for i, v := range s {
		if real(v) != 0 {
			return nil, fmt.Errorf("%w: call accepts only purely imaginary arguments, got %v",
				ErrDomain, v)
		}
		omega[i] = imag(v)
	}
	return m.EvalResponse(omega)
}

// CallAt evaluates at a single purely imaginary point.
func (m *Model) CallAt(s complex128) (*Array, error) {
	if real(s) != 0 {
		return nil, fmt.Errorf("%w: call accepts only purely imaginary arguments, got %v",
			ErrDomain, s)
	}
	return m.EvalAt(imag(s))
}

// squeezeArray shapes a full evaluation tensor per the squeeze policy.
// The tensor layout is row major, so only the shape changes.
func squeezeArray(t *Tensor, scalarQuery bool, policy Squeeze) (*Array, error) {
	var shape []int
	switch policy {
	case SqueezeNever:
		shape = []int{t.outputs, t.inputs, t.n}
	case SqueezeAlways:
		for _, d := range []int{t.outputs, t.inputs, t.n} {
			if d != 1 {
				shape = append(shape, d)
			}
		}
	case SqueezeAuto:
		switch {
		case t.outputs == 1 && t.inputs == 1 && scalarQuery:
			shape = []int{}
		case t.outputs == 1 && t.inputs == 1:
			shape = []int{t.n}
		case scalarQuery:
			shape = []int{t.outputs, t.inputs}
		default:
			shape = []int{t.outputs, t.inputs, t.n}
		}
	default:
		return nil, fmt.Errorf("%w: unknown squeeze value %d", ErrConfiguration, policy)
	}
	if shape == nil {
		shape = []int{}
	}
	return &Array{Shape: shape, Data: append([]complex128(nil), t.data...)}, nil
}

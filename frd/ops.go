package frd

import (
	"fmt"

	"github.com/hammal/lti"
	"github.com/hammal/lti/gonumExtensions"
)

// derived assembles a fresh result model, inheriting the receiver's
// configuration flags but regenerating default labels for the new shape.
func (m *Model) derived(resp *Tensor, omega []float64, tb lti.Timebase, smooth bool) (*Model, error) {
	out := &Model{
		resp:  resp,
		omega: append([]float64(nil), omega...),
		tb:    tb,
	}
	sq := m.squeeze
	tol := m.tol
	cfg := &config{smooth: smooth, squeeze: &sq, tolerance: &tol, resolver: m.resolver}
	if err := finish(out, cfg); err != nil {
		return nil, err
	}
	return out, nil
}

// onesPromote broadcasts a SISO model to shape (p, q) by replicating its
// single channel, the parallel-connection promotion.
func (m *Model) onesPromote(p, q int) *Model {
	t, _ := NewTensor(p, q, m.resp.n)
	for i := 0; i < p; i++ {
		for j := 0; j < q; j++ {
			for k := 0; k < m.resp.n; k++ {
				t.Set(i, j, k, m.resp.At(0, 0, k))
			}
		}
	}
	return &Model{resp: t, omega: m.omega, tb: m.tb}
}

// blockReplicate appends count copies of the model along the diagonal,
// the series-connection promotion.
func (m *Model) blockReplicate(count int) *Model {
	p, q, n := m.resp.Dims()
	t, _ := NewTensor(p*count, q*count, n)
	for c := 0; c < count; c++ {
		for i := 0; i < p; i++ {
			for j := 0; j < q; j++ {
				for k := 0; k < n; k++ {
					t.Set(c*p+i, c*q+j, k, m.resp.At(i, j, k))
				}
			}
		}
	}
	return &Model{resp: t, omega: m.omega, tb: m.tb}
}

// scaled multiplies the response elementwise by v, preserving smoothing.
func (m *Model) scaled(v complex128) (*Model, error) {
	t := m.resp.Clone()
	for i := range t.data {
		t.data[i] *= v
	}
	return m.derived(t, m.omega, m.tb, m.Smoothed())
}

// Neg returns the elementwise negation on the same grid.
func (m *Model) Neg() *Model {
	t := m.resp.Clone()
	for i := range t.data {
		t.data[i] = -t.data[i]
	}
	out, _ := m.derived(t, m.omega, m.tb, false)
	return out
}

// Add combines two systems in parallel. SISO operands are promoted to the
// other side's shape; after promotion the input and output counts must
// match.
func (m *Model) Add(other Operand) (*Model, error) {
	rhs, err := other.toFRD(m.omega, m.resp.outputs, m.resp.inputs, m.tol)
	if err != nil {
		return nil, err
	}
	return m.addModel(rhs)
}

// Sub subtracts, as addition of the negated operand.
func (m *Model) Sub(other Operand) (*Model, error) {
	rhs, err := other.toFRD(m.omega, m.resp.outputs, m.resp.inputs, m.tol)
	if err != nil {
		return nil, err
	}
	return m.addModel(rhs.Neg())
}

func (m *Model) addModel(rhs *Model) (*Model, error) {
	lhs := m
	if lhs.IsSISO() && !rhs.IsSISO() {
		lhs = lhs.onesPromote(rhs.resp.outputs, rhs.resp.inputs)
	} else if !lhs.IsSISO() && rhs.IsSISO() {
		rhs = rhs.onesPromote(lhs.resp.outputs, lhs.resp.inputs)
	}
	if lhs.resp.inputs != rhs.resp.inputs {
		return nil, fmt.Errorf("%w: the first summand has %d input(s), the second has %d",
			ErrDimension, lhs.resp.inputs, rhs.resp.inputs)
	}
	if lhs.resp.outputs != rhs.resp.outputs {
		return nil, fmt.Errorf("%w: the first summand has %d output(s), the second has %d",
			ErrDimension, lhs.resp.outputs, rhs.resp.outputs)
	}
	tb, err := lti.Common(lhs.tb, rhs.tb)
	if err != nil {
		return nil, err
	}

	t := lhs.resp.Clone()
	for i := range t.data {
		t.data[i] += rhs.resp.data[i]
	}
	return m.derived(t, rhs.omega, tb, false)
}

// Mul combines two systems in series: per frequency sample the matrix
// product left * right. A scalar operand scales the response elementwise.
// SISO operands are promoted by diagonal replication; after promotion the
// left input count must equal the right output count. The result is
// smoothing-enabled only when both operands are.
func (m *Model) Mul(other Operand) (*Model, error) {
	if s, ok := other.(Scalar); ok {
		return m.scaled(complex128(s))
	}
	rhs, err := other.toFRD(m.omega, m.resp.outputs, m.resp.inputs, m.tol)
	if err != nil {
		return nil, err
	}
	smooth := m.Smoothed() && rhs.Smoothed()

	lhs := m
	if lhs.IsSISO() && !rhs.IsSISO() {
		lhs = lhs.blockReplicate(rhs.resp.outputs)
	} else if !lhs.IsSISO() && rhs.IsSISO() {
		rhs = rhs.blockReplicate(lhs.resp.inputs)
	}
	if lhs.resp.inputs != rhs.resp.outputs {
		return nil, fmt.Errorf("%w: H = G1*G2: G1 has %d input(s), G2 has %d output(s)",
			ErrDimension, lhs.resp.inputs, rhs.resp.outputs)
	}
	tb, err := lti.Common(lhs.tb, rhs.tb)
	if err != nil {
		return nil, err
	}

	t, err := NewTensor(lhs.resp.outputs, rhs.resp.inputs, lhs.resp.n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < t.n; k++ {
		t.SetSliceAt(k, gonumExtensions.CMul(lhs.resp.SliceAt(k), rhs.resp.SliceAt(k)))
	}
	return m.derived(t, m.omega, tb, smooth)
}

// RMul mirrors Mul with the product order reversed: per sample
// right * left, for expressions where the receiver is the right factor.
func (m *Model) RMul(other Operand) (*Model, error) {
	if s, ok := other.(Scalar); ok {
		return m.scaled(complex128(s))
	}
	rhs, err := other.toFRD(m.omega, m.resp.outputs, m.resp.inputs, m.tol)
	if err != nil {
		return nil, err
	}
	smooth := m.Smoothed() && rhs.Smoothed()

	lhs := m
	if lhs.IsSISO() && !rhs.IsSISO() {
		lhs = lhs.blockReplicate(rhs.resp.inputs)
	} else if !lhs.IsSISO() && rhs.IsSISO() {
		rhs = rhs.blockReplicate(lhs.resp.outputs)
	}
	if lhs.resp.outputs != rhs.resp.inputs {
		return nil, fmt.Errorf("%w: H = G1*G2: G1 has %d input(s), G2 has %d output(s)",
			ErrDimension, rhs.resp.inputs, lhs.resp.outputs)
	}
	tb, err := lti.Common(lhs.tb, rhs.tb)
	if err != nil {
		return nil, err
	}

	t, err := NewTensor(rhs.resp.outputs, lhs.resp.inputs, lhs.resp.n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < t.n; k++ {
		t.SetSliceAt(k, gonumExtensions.CMul(rhs.resp.SliceAt(k), lhs.resp.SliceAt(k)))
	}
	return m.derived(t, m.omega, tb, smooth)
}

// Div divides elementwise by a SISO system or scales by the reciprocal of
// a scalar. Division by a MIMO system is not defined for response data.
func (m *Model) Div(other Operand) (*Model, error) {
	if s, ok := other.(Scalar); ok {
		return m.scaled(1 / complex128(s))
	}
	rhs, err := other.toFRD(m.omega, 1, 1, m.tol)
	if err != nil {
		return nil, err
	}
	if !rhs.IsSISO() {
		return nil, fmt.Errorf("%w: division by a %dx%d system",
			ErrUnsupported, rhs.resp.outputs, rhs.resp.inputs)
	}
	tb, err := lti.Common(m.tb, rhs.tb)
	if err != nil {
		return nil, err
	}
	smooth := m.Smoothed() && rhs.Smoothed()

	t := m.resp.Clone()
	for i := 0; i < t.outputs; i++ {
		for j := 0; j < t.inputs; j++ {
			for k := 0; k < t.n; k++ {
				t.Set(i, j, k, t.At(i, j, k)/rhs.resp.At(0, 0, k))
			}
		}
	}
	return m.derived(t, m.omega, tb, smooth)
}

// RDiv divides the operand by the receiver: a scalar dividend scales the
// elementwise reciprocal, a system dividend requires the receiver to be
// SISO.
func (m *Model) RDiv(other Operand) (*Model, error) {
	if s, ok := other.(Scalar); ok {
		t := m.resp.Clone()
		for i := range t.data {
			t.data[i] = complex128(s) / t.data[i]
		}
		return m.derived(t, m.omega, m.tb, m.Smoothed())
	}
	rhs, err := other.toFRD(m.omega, 1, 1, m.tol)
	if err != nil {
		return nil, err
	}
	if !m.IsSISO() {
		return nil, fmt.Errorf("%w: division by a %dx%d system",
			ErrUnsupported, m.resp.outputs, m.resp.inputs)
	}
	return rhs.Div(m)
}

// Pow raises the system to an integer power. Exponent 0 yields the unity
// response, positive exponents repeated series connection, negative
// exponents the reciprocal construction.
func (m *Model) Pow(n int) (*Model, error) {
	if n == 0 {
		t, err := Ones(m.resp.outputs, m.resp.inputs, m.resp.n)
		if err != nil {
			return nil, err
		}
		return m.derived(t, m.omega, m.tb, m.Smoothed())
	}
	if n > 0 {
		prev, err := m.Pow(n - 1)
		if err != nil {
			return nil, err
		}
		return m.Mul(prev)
	}

	ones, err := Ones(m.resp.outputs, m.resp.inputs, m.resp.n)
	if err != nil {
		return nil, err
	}
	unity, err := m.derived(ones, m.omega, m.tb, false)
	if err != nil {
		return nil, err
	}
	recip, err := unity.Div(m)
	if err != nil {
		return nil, err
	}
	rest, err := m.Pow(n + 1)
	if err != nil {
		return nil, err
	}
	return recip.Mul(rest)
}

package frd_test

import (
	"testing"

	"github.com/hammal/lti"
	"github.com/hammal/lti/frd"
	"github.com/hammal/lti/ssm"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestAsOperand(t *testing.T) {
	op, err := frd.AsOperand(3)
	require.NoError(t, err)
	require.Equal(t, frd.Scalar(3), op)

	op, err = frd.AsOperand(2.5)
	require.NoError(t, err)
	require.Equal(t, frd.Scalar(2.5), op)

	op, err = frd.AsOperand(1 + 2i)
	require.NoError(t, err)
	require.Equal(t, frd.Scalar(1+2i), op)

	cm := mat.NewCDense(2, 2, []complex128{1, 2, 3, 4})
	op, err = frd.AsOperand(cm)
	require.NoError(t, err)
	require.Equal(t, frd.Constant(cm), op)

	sys, err := ssm.NewIntegratorChain(1, 1)
	require.NoError(t, err)
	op, err = frd.AsOperand(sys)
	require.NoError(t, err)
	require.Equal(t, frd.System(sys), op)

	m := sisoModel(t, []complex128{1}, []float64{1})
	op, err = frd.AsOperand(m)
	require.NoError(t, err)
	require.Same(t, m, op)

	_, err = frd.AsOperand("nope")
	require.ErrorIs(t, err, frd.ErrConversion)
	require.Contains(t, err.Error(), "string")
}

func TestScalarOperandConversion(t *testing.T) {
	m := sisoModel(t, []complex128{1, 2}, []float64{1, 2})

	sum, err := m.Add(frd.Scalar(3))
	require.NoError(t, err)
	require.Equal(t, complex128(4), sum.Data().At(0, 0, 0))
	require.Equal(t, complex128(5), sum.Data().At(0, 0, 1))

	// The converted constant carries an interpolation model, so a scalar
	// cannot be lifted onto a single-point grid.
	one := sisoModel(t, []complex128{1}, []float64{1})
	_, err = one.Add(frd.Scalar(3))
	require.ErrorIs(t, err, frd.ErrShapeMismatch)
}

func TestMatrixOperandConversion(t *testing.T) {
	m := constModel(t, 2, 2, 1, []float64{1, 2})
	k := mat.NewCDense(2, 2, []complex128{1, 0, 0, 2})

	sum, err := m.Add(frd.Constant(k))
	require.NoError(t, err)
	require.Equal(t, complex128(2), sum.Data().At(0, 0, 0))
	require.Equal(t, complex128(1), sum.Data().At(0, 1, 0))
	require.Equal(t, complex128(3), sum.Data().At(1, 1, 1))
}

func TestModelOperandGridChecks(t *testing.T) {
	a := sisoModel(t, []complex128{1, 2}, []float64{1, 2})

	// Different grid lengths refuse to combine.
	b := sisoModel(t, []complex128{1, 2, 3}, []float64{1, 2, 3})
	_, err := a.Add(b)
	require.ErrorIs(t, err, frd.ErrConversion)
	require.Contains(t, err.Error(), "resampling is not implemented")

	// Same length, different points.
	c := sisoModel(t, []complex128{1, 2}, []float64{1, 3})
	_, err = a.Add(c)
	require.ErrorIs(t, err, frd.ErrConversion)

	// Points within the tolerance count as the same grid.
	d := sisoModel(t, []complex128{10, 20}, []float64{1 + 1e-12, 2})
	sum, err := a.Add(d)
	require.NoError(t, err)
	require.Equal(t, complex128(11), sum.Data().At(0, 0, 0))
}

func TestModelOperandGridOrder(t *testing.T) {
	// Grids carrying the same frequencies in a different order hold
	// samples at different points per index and must not combine.
	desc := sisoModel(t, []complex128{5, 1}, []float64{5, 1})
	asc := sisoModel(t, []complex128{1, 5}, []float64{1, 5})
	_, err := desc.Add(asc)
	require.ErrorIs(t, err, frd.ErrConversion)

	// Identically ordered descending grids align sample for sample.
	desc2 := sisoModel(t, []complex128{50, 10}, []float64{5, 1})
	sum, err := desc.Add(desc2)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 1}, sum.Frequency())
	require.Equal(t, complex128(55), sum.Data().At(0, 0, 0))
	require.Equal(t, complex128(11), sum.Data().At(0, 0, 1))
}

func TestSystemOperandConversion(t *testing.T) {
	// 1/s sampled on the grid, then added to a unity response.
	sys, err := ssm.NewIntegratorChain(1, 1)
	require.NoError(t, err)

	m := sisoModel(t, []complex128{1, 1}, []float64{1, 2})
	sum, err := m.Add(frd.System(sys))
	require.NoError(t, err)

	// 1 + 1/(j*1) and 1 + 1/(j*2).
	requireCloseC(t, 1-1i, sum.Data().At(0, 0, 0), 1e-12)
	requireCloseC(t, 1-0.5i, sum.Data().At(0, 0, 1), 1e-12)
	require.True(t, sum.Timebase().IsContinuous())
}

func TestOperandTimebaseConflict(t *testing.T) {
	a := sisoModel(t, []complex128{1, 1}, []float64{1, 2},
		frd.WithTimebase(lti.Continuous()))
	b := sisoModel(t, []complex128{1, 1}, []float64{1, 2},
		frd.WithTimebase(lti.Discrete(0.1)))

	_, err := a.Add(b)
	require.ErrorIs(t, err, lti.ErrTimebase)
}

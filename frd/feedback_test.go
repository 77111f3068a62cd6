package frd_test

import (
	"testing"

	"github.com/hammal/lti/frd"
	"github.com/stretchr/testify/require"
)

func TestFeedbackUnityLoop(t *testing.T) {
	// Closing a unity response on itself with the negative convention
	// gives 1/(1+1) = 0.5.
	a := sisoModel(t, []complex128{1}, []float64{1})

	closed, err := a.Feedback(a, -1)
	require.NoError(t, err)
	require.Equal(t, complex128(0.5), closed.Data().At(0, 0, 0))
}

func TestFeedbackZeroIsIdentity(t *testing.T) {
	a := sisoModel(t, []complex128{2, 3i}, []float64{1, 2})
	zero := sisoModel(t, []complex128{0, 0}, []float64{1, 2})

	closed, err := a.Feedback(zero, -1)
	require.NoError(t, err)
	require.Equal(t, a.Data(), closed.Data())
}

func TestFeedbackSign(t *testing.T) {
	a := sisoModel(t, []complex128{2}, []float64{1})
	k := sisoModel(t, []complex128{0.5}, []float64{1})

	// Negative convention: 2/(1 + 0.5*2) = 1.
	neg, err := a.Feedback(k, -1)
	require.NoError(t, err)
	requireCloseC(t, 1, neg.Data().At(0, 0, 0), 1e-12)

	// Positive convention: 2/(1 - 0.5*2) diverges; use gain 0.25 instead:
	// 2/(1 - 0.25*2) = 4.
	k2 := sisoModel(t, []complex128{0.25}, []float64{1})
	pos, err := a.Feedback(k2, 1)
	require.NoError(t, err)
	requireCloseC(t, 4, pos.Data().At(0, 0, 0), 1e-12)
}

func TestFeedbackMIMO(t *testing.T) {
	// Diagonal plant, unity feedback: each channel closes independently.
	tensor, err := frd.NewTensor(2, 2, 1)
	require.NoError(t, err)
	tensor.Set(0, 0, 0, 2)
	tensor.Set(1, 1, 0, 4)
	p, err := frd.FromSamples(tensor, []float64{1})
	require.NoError(t, err)

	eye, err := frd.NewTensor(2, 2, 1)
	require.NoError(t, err)
	eye.Set(0, 0, 0, 1)
	eye.Set(1, 1, 0, 1)
	k, err := frd.FromSamples(eye, []float64{1})
	require.NoError(t, err)

	closed, err := p.Feedback(k, -1)
	require.NoError(t, err)
	requireCloseC(t, 2.0/3, closed.Data().At(0, 0, 0), 1e-12)
	requireCloseC(t, 0.8, closed.Data().At(1, 1, 0), 1e-12)
	requireCloseC(t, 0, closed.Data().At(0, 1, 0), 1e-12)
}

func TestFeedbackSingularLoop(t *testing.T) {
	a := sisoModel(t, []complex128{1}, []float64{1})

	// 1/(1 - 1*1) has no closed loop.
	_, err := a.Feedback(a, 1)
	require.ErrorIs(t, err, frd.ErrDomain)
	require.Contains(t, err.Error(), "singular closed loop at omega=1")
}

func TestFeedbackDimensionMismatch(t *testing.T) {
	a := constModel(t, 2, 3, 1, []float64{1})
	b := constModel(t, 2, 2, 1, []float64{1})
	_, err := a.Feedback(b, -1)
	require.ErrorIs(t, err, frd.ErrDimension)
}

func TestAppend(t *testing.T) {
	a := sisoModel(t, []complex128{1, 2}, []float64{1, 2})
	b := constModel(t, 2, 2, 5, []float64{1, 2})

	both, err := a.Append(b)
	require.NoError(t, err)
	require.Equal(t, 3, both.NumOutputs())
	require.Equal(t, 3, both.NumInputs())

	// Top-left block carries the receiver, bottom-right the operand, the
	// off-diagonal blocks are zero.
	require.Equal(t, complex128(1), both.Data().At(0, 0, 0))
	require.Equal(t, complex128(2), both.Data().At(0, 0, 1))
	require.Equal(t, complex128(5), both.Data().At(1, 1, 0))
	require.Equal(t, complex128(5), both.Data().At(2, 2, 1))
	require.Equal(t, complex128(0), both.Data().At(0, 1, 0))
	require.Equal(t, complex128(0), both.Data().At(1, 0, 0))
}

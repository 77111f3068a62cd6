package frd_test

import (
	"math/cmplx"
	"testing"

	"github.com/hammal/lti/frd"
	"github.com/stretchr/testify/require"
)

func requireCloseC(t *testing.T, want, got complex128, tol float64) {
	t.Helper()
	require.InDelta(t, 0, cmplx.Abs(got-want), tol, "want %v, got %v", want, got)
}

// sisoModel builds a SISO model from a response slice and grid.
func sisoModel(t *testing.T, resp []complex128, omega []float64, opts ...frd.Option) *frd.Model {
	t.Helper()
	m, err := frd.FromSlice(resp, omega, opts...)
	require.NoError(t, err)
	return m
}

// constModel builds a constant-valued model of the given shape.
func constModel(t *testing.T, outputs, inputs int, v complex128, omega []float64, opts ...frd.Option) *frd.Model {
	t.Helper()
	tensor, err := frd.NewTensor(outputs, inputs, len(omega))
	require.NoError(t, err)
	for i := 0; i < outputs; i++ {
		for j := 0; j < inputs; j++ {
			for k := range omega {
				tensor.Set(i, j, k, v)
			}
		}
	}
	m, err := frd.FromSamples(tensor, omega, opts...)
	require.NoError(t, err)
	return m
}

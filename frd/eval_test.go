package frd_test

import (
	"testing"

	"github.com/hammal/lti/frd"
	"github.com/stretchr/testify/require"
)

func TestEvalOnGrid(t *testing.T) {
	m := sisoModel(t, []complex128{1 + 1i, 2, 3 - 1i}, []float64{1, 10, 100})

	got, err := m.Eval([]float64{10, 1})
	require.NoError(t, err)
	_, _, n := got.Dims()
	require.Equal(t, 2, n)
	require.Equal(t, complex128(2), got.At(0, 0, 0))
	require.Equal(t, 1+1i, got.At(0, 0, 1))
}

func TestEvalOffGridFails(t *testing.T) {
	m := sisoModel(t, []complex128{1, 2}, []float64{1, 10})

	_, err := m.Eval([]float64{5})
	require.ErrorIs(t, err, frd.ErrDomain)
	require.Contains(t, err.Error(), "not all frequencies are in the grid")

	_, err = m.Eval(nil)
	require.ErrorIs(t, err, frd.ErrDomain)
}

func TestEvalTolerance(t *testing.T) {
	m := sisoModel(t, []complex128{7}, []float64{1})

	// Within the default tolerance the nearest grid point answers.
	a, err := m.EvalAt(1 + 1e-9)
	require.NoError(t, err)
	v, err := a.Scalar()
	require.NoError(t, err)
	require.Equal(t, complex128(7), v)

	// A wider tolerance widens the match window.
	loose, err := m.Configured(frd.WithTolerance(0.5))
	require.NoError(t, err)
	got, err := loose.EvalAt(1.3)
	require.NoError(t, err)
	v, err = got.Scalar()
	require.NoError(t, err)
	require.Equal(t, complex128(7), v)

	// The original keeps its window.
	_, err = m.EvalAt(1.3)
	require.ErrorIs(t, err, frd.ErrDomain)

	// A smoothed model is unaffected: it matches no grid entries.
	sm := sisoModel(t, []complex128{1, 3}, []float64{1, 3}, frd.WithSmoothing())
	smLoose, err := sm.Configured(frd.WithTolerance(0.5))
	require.NoError(t, err)
	got, err = smLoose.EvalAt(2)
	require.NoError(t, err)
	v, err = got.Scalar()
	require.NoError(t, err)
	requireCloseC(t, 2, v, 1e-9)
}

func TestCall(t *testing.T) {
	m := sisoModel(t, []complex128{1 - 1i, 4}, []float64{1, 10})

	got, err := m.Call([]complex128{1i, 10i})
	require.NoError(t, err)
	require.Equal(t, []int{2}, got.Shape)
	require.Equal(t, 1-1i, got.Data[0])
	require.Equal(t, complex128(4), got.Data[1])

	// A nonzero real part is outside the data's domain.
	_, err = m.Call([]complex128{1 + 1i})
	require.ErrorIs(t, err, frd.ErrDomain)
	_, err = m.CallAt(2 + 1i)
	require.ErrorIs(t, err, frd.ErrDomain)
}

func TestCallAtMatchesEvalAt(t *testing.T) {
	m := sisoModel(t, []complex128{3 + 4i}, []float64{2})

	a, err := m.CallAt(2i)
	require.NoError(t, err)
	b, err := m.EvalAt(2)
	require.NoError(t, err)
	require.Equal(t, b, a)
	v, err := a.Scalar()
	require.NoError(t, err)
	require.Equal(t, 3+4i, v)
}

func TestSqueezePolicies(t *testing.T) {
	siso := sisoModel(t, []complex128{1, 2}, []float64{1, 2})
	mimo := constModel(t, 2, 3, 1, []float64{1, 2})

	cases := []struct {
		name        string
		m           *frd.Model
		squeeze     frd.Squeeze
		scalarQuery bool
		want        []int
	}{
		{"auto siso vector", siso, frd.SqueezeAuto, false, []int{2}},
		{"auto siso scalar", siso, frd.SqueezeAuto, true, []int{}},
		{"auto mimo vector", mimo, frd.SqueezeAuto, false, []int{2, 3, 2}},
		{"auto mimo scalar", mimo, frd.SqueezeAuto, true, []int{2, 3}},
		{"never siso vector", siso, frd.SqueezeNever, false, []int{1, 1, 2}},
		{"never siso scalar", siso, frd.SqueezeNever, true, []int{1, 1, 1}},
		{"always siso vector", siso, frd.SqueezeAlways, false, []int{2}},
		{"always siso scalar", siso, frd.SqueezeAlways, true, []int{}},
		{"always mimo scalar", mimo, frd.SqueezeAlways, true, []int{2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := tc.m.Configured(frd.WithSqueeze(tc.squeeze))
			require.NoError(t, err)
			var got *frd.Array
			if tc.scalarQuery {
				got, err = m.EvalAt(m.Frequency()[0])
			} else {
				got, err = m.EvalResponse(m.Frequency())
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got.Shape)
		})
	}
}

func TestConfiguredRejectsDataChanges(t *testing.T) {
	m := sisoModel(t, []complex128{1, 2}, []float64{1, 2})

	_, err := m.Configured(frd.WithSmoothing())
	require.ErrorIs(t, err, frd.ErrConfiguration)

	_, err = m.Configured(frd.WithLabels([]string{"a", "b"}, []string{"c"}))
	require.ErrorIs(t, err, frd.ErrConfiguration)

	renamed, err := m.Configured(frd.WithName("renamed"),
		frd.WithLabels([]string{"y"}, []string{"u"}))
	require.NoError(t, err)
	require.Equal(t, "renamed", renamed.Name())
	require.Equal(t, []string{"y"}, renamed.OutputNames())
	// The original is untouched.
	require.Equal(t, "", m.Name())
	require.Equal(t, []string{"y[0]"}, m.OutputNames())
}

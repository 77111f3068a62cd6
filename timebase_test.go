package lti_test

import (
	"testing"

	"github.com/hammal/lti"
	"github.com/stretchr/testify/require"
)

func TestCommonTimebase(t *testing.T) {
	tests := []struct {
		name    string
		a, b    lti.Timebase
		want    lti.Timebase
		wantErr bool
	}{
		{"unspecified yields other", lti.Unspecified(), lti.Continuous(), lti.Continuous(), false},
		{"other yields unspecified", lti.Discrete(0.5), lti.Unspecified(), lti.Discrete(0.5), false},
		{"continuous joins continuous", lti.Continuous(), lti.Continuous(), lti.Continuous(), false},
		{"equal periods join", lti.Discrete(0.1), lti.Discrete(0.1), lti.Discrete(0.1), false},
		{"unknown period joins discrete", lti.DiscreteUnspecified(), lti.Discrete(0.25), lti.Discrete(0.25), false},
		{"discrete joins unknown period", lti.Discrete(0.25), lti.DiscreteUnspecified(), lti.Discrete(0.25), false},
		{"continuous vs discrete fails", lti.Continuous(), lti.Discrete(1), lti.Timebase{}, true},
		{"period mismatch fails", lti.Discrete(0.1), lti.Discrete(0.2), lti.Timebase{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := lti.Common(tc.a, tc.b)
			if tc.wantErr {
				require.ErrorIs(t, err, lti.ErrTimebase)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTimebaseProperties(t *testing.T) {
	require.True(t, lti.Continuous().IsContinuous())
	require.False(t, lti.Continuous().IsDiscrete())

	// Unspecified timebases are sampled on the imaginary axis.
	require.True(t, lti.Unspecified().IsContinuous())

	tb := lti.Discrete(0.5)
	require.True(t, tb.IsDiscrete())
	ts, known := tb.SampleTime()
	require.True(t, known)
	require.Equal(t, 0.5, ts)

	_, known = lti.DiscreteUnspecified().SampleTime()
	require.False(t, known)

	// Non-positive periods degrade to an unknown period.
	_, known = lti.Discrete(0).SampleTime()
	require.False(t, known)

	require.Equal(t, "continuous", lti.Continuous().String())
	require.Equal(t, "discrete, ts=0.5", lti.Discrete(0.5).String())
	require.Equal(t, "unspecified", lti.Unspecified().String())
}

// Package ssm implements linear state space models
//
//	x'(t) = A x(t) + B u(t)
//	y(t)  = C x(t) + D u(t)
//
// evaluated in the frequency domain: the response at a complex frequency s
// is G(s) = C (sI - A)^{-1} B + D. The models satisfy lti.System and serve
// as sampling sources for frequency response data.
package ssm

import (
	"errors"
	"fmt"

	"github.com/hammal/lti"
	"github.com/hammal/lti/gonumExtensions"
	"github.com/hammal/lti/signal"
	"gonum.org/v1/gonum/mat"
)

// ErrDimensions is returned when the state space matrices do not conform.
var ErrDimensions = errors.New("ssm: system parameters don't match")

// StateSpace represents a linear state space model with state dynamics A,
// input matrix B, observation matrix C and feedthrough D.
type StateSpace struct {
	// State Dynamics
	A mat.Matrix
	// Input matrix
	B mat.Matrix
	// Observation matrix
	C mat.Matrix
	// Feedthrough matrix, may be nil for none
	D mat.Matrix

	tb      lti.Timebase
	name    string
	outputs []string
	inputs  []string
}

// Option configures a StateSpace.
type Option func(*StateSpace)

// WithName sets the system name.
func WithName(name string) Option {
	return func(s *StateSpace) { s.name = name }
}

// WithTimebase sets the system timebase. The default is continuous time.
func WithTimebase(tb lti.Timebase) Option {
	return func(s *StateSpace) { s.tb = tb }
}

// WithLabels sets the output and input signal labels.
func WithLabels(outputs, inputs []string) Option {
	return func(s *StateSpace) {
		s.outputs = append([]string(nil), outputs...)
		s.inputs = append([]string(nil), inputs...)
	}
}

// NewStateSpace creates a new linear state space model. A must be square
// and B, C and D must conform to it; D may be nil for a strictly proper
// system.
func NewStateSpace(A, B, C, D mat.Matrix, opts ...Option) (*StateSpace, error) {
	// Check that system parameters match
	m, n := A.Dims()
	mB, nB := B.Dims()
	mC, nC := C.Dims()
	if m != n || mB != n || nC != n {
		return nil, fmt.Errorf("%w: A is %dx%d, B is %dx%d, C is %dx%d",
			ErrDimensions, m, n, mB, nB, mC, nC)
	}
	if D != nil {
		mD, nD := D.Dims()
		if mD != mC || nD != nB {
			return nil, fmt.Errorf("%w: D is %dx%d, want %dx%d",
				ErrDimensions, mD, nD, mC, nB)
		}
	}

	sys := StateSpace{A: A, B: B, C: C, D: D, tb: lti.Continuous()}
	for _, opt := range opts {
		opt(&sys)
	}
	if sys.outputs == nil {
		sys.outputs = signal.DefaultLabels("y", mC)
	}
	if sys.inputs == nil {
		sys.inputs = signal.DefaultLabels("u", nB)
	}
	if len(sys.outputs) != mC || len(sys.inputs) != nB {
		return nil, fmt.Errorf("%w: %d output and %d input labels for a %dx%d system",
			ErrDimensions, len(sys.outputs), len(sys.inputs), mC, nB)
	}
	return &sys, nil
}

// NewIntegratorChain returns a state space model of an integrator chain of
// size N where each stage applies stageGain, so the single input to single
// output response is (stageGain/s)^N.
func NewIntegratorChain(N int, stageGain float64, opts ...Option) (*StateSpace, error) {
	a := make([]float64, N*N)
	b := make([]float64, N)
	c := make([]float64, N)
	b[0] = stageGain
	c[N-1] = 1
	for row := 0; row < N; row++ {
		for column := 0; column < N; column++ {
			if row == (column + 1) {
				a[row*N+column] = stageGain
			}
		}
	}
	A := mat.NewDense(N, N, a)
	B := mat.NewDense(N, 1, b)
	C := mat.NewDense(1, N, c)
	return NewStateSpace(A, B, C, nil, opts...)
}

// Evaluate returns G(s) = C (sI - A)^{-1} B + D.
func (sys *StateSpace) Evaluate(s complex128) (*mat.CDense, error) {
	n, _ := sys.A.Dims()

	// sI - A
	res := mat.NewCDense(n, n, nil)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			v := complex(-sys.A.At(row, col), 0)
			if row == col {
				v += s
			}
			res.Set(row, col, v)
		}
	}
	inv, err := gonumExtensions.CInverse(res)
	if err != nil {
		return nil, fmt.Errorf("ssm: evaluating at s=%v: %w", s, err)
	}

	tmp := gonumExtensions.CMul(inv, gonumExtensions.Complexify(sys.B))
	g := gonumExtensions.CMul(gonumExtensions.Complexify(sys.C), tmp)
	if sys.D != nil {
		p, q := g.Dims()
		for row := 0; row < p; row++ {
			for col := 0; col < q; col++ {
				g.Set(row, col, g.At(row, col)+complex(sys.D.At(row, col), 0))
			}
		}
	}
	if gonumExtensions.NaNOrInf(g) {
		return nil, fmt.Errorf("ssm: response at s=%v is not finite", s)
	}
	return g, nil
}

// IsContinuousTime reports whether the model evolves in continuous time.
func (sys *StateSpace) IsContinuousTime() bool { return sys.tb.IsContinuous() }

// Timebase returns the model timebase.
func (sys *StateSpace) Timebase() lti.Timebase { return sys.tb }

// Name returns the system name.
func (sys *StateSpace) Name() string { return sys.name }

// OutputNames returns the ordered output labels.
func (sys *StateSpace) OutputNames() []string {
	return append([]string(nil), sys.outputs...)
}

// InputNames returns the ordered input labels.
func (sys *StateSpace) InputNames() []string {
	return append([]string(nil), sys.inputs...)
}

// StateSpaceOrder returns the state space order.
func (sys *StateSpace) StateSpaceOrder() int {
	m, _ := sys.A.Dims()
	return m
}

// ObservationSpaceOrder returns the observation space order.
func (sys *StateSpace) ObservationSpaceOrder() int {
	m, _ := sys.C.Dims()
	return m
}

// InputSpaceOrder returns the input space order.
func (sys *StateSpace) InputSpaceOrder() int {
	_, n := sys.B.Dims()
	return n
}

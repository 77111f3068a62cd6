// Package lti defines the common vocabulary shared by linear-system
// representations: the Timebase marker and the System capability that
// produces a complex frequency response at a point in the complex plane.
package lti

import "gonum.org/v1/gonum/mat"

// System is an abstract linear system that can be sampled in the frequency
// domain. A continuous-time system is evaluated at s = jw, a discrete-time
// system at z = exp(jw*ts).
type System interface {
	// Evaluate returns the (outputs x inputs) response matrix at the
	// complex frequency s.
	Evaluate(s complex128) (*mat.CDense, error)
	// IsContinuousTime reports whether the system evolves in continuous
	// time.
	IsContinuousTime() bool
	// Timebase returns the system timebase.
	Timebase() Timebase
	// Name returns the system name, possibly empty.
	Name() string
	// OutputNames returns the ordered output signal labels.
	OutputNames() []string
	// InputNames returns the ordered input signal labels.
	InputNames() []string
}

package lti

import (
	"errors"
	"fmt"
)

// ErrTimebase is returned when two timebases cannot be combined.
var ErrTimebase = errors.New("lti: incompatible timebases")

type timebaseKind int

const (
	kindUnspecified timebaseKind = iota
	kindContinuous
	kindDiscrete
)

// Timebase marks a system as continuous time or discrete time, optionally
// carrying the sample period of a discrete system. The zero value is an
// unspecified timebase, compatible with everything.
type Timebase struct {
	kind timebaseKind
	ts   float64
}

// Unspecified returns a timebase that is neither continuous nor discrete.
func Unspecified() Timebase { return Timebase{} }

// Continuous returns the continuous-time timebase.
func Continuous() Timebase { return Timebase{kind: kindContinuous} }

// Discrete returns a discrete-time timebase with sample period ts.
// A non-positive ts gives a discrete timebase with unknown period.
func Discrete(ts float64) Timebase {
	if ts <= 0 {
		return Timebase{kind: kindDiscrete}
	}
	return Timebase{kind: kindDiscrete, ts: ts}
}

// DiscreteUnspecified returns a discrete-time timebase with unknown period.
func DiscreteUnspecified() Timebase { return Timebase{kind: kindDiscrete} }

// IsContinuous reports whether the timebase is continuous time. An
// unspecified timebase counts as continuous, mirroring the convention that
// an unmarked system is sampled on the imaginary axis.
func (tb Timebase) IsContinuous() bool { return tb.kind != kindDiscrete }

// IsDiscrete reports whether the timebase is discrete time.
func (tb Timebase) IsDiscrete() bool { return tb.kind == kindDiscrete }

// SampleTime returns the sample period and whether one is known.
func (tb Timebase) SampleTime() (float64, bool) {
	return tb.ts, tb.kind == kindDiscrete && tb.ts > 0
}

func (tb Timebase) String() string {
	switch {
	case tb.kind == kindUnspecified:
		return "unspecified"
	case tb.kind == kindContinuous:
		return "continuous"
	case tb.ts > 0:
		return fmt.Sprintf("discrete, ts=%g", tb.ts)
	default:
		return "discrete"
	}
}

// Common joins two timebases. An unspecified timebase yields the other
// side; equal timebases join to themselves; a discrete timebase with
// unknown period joins with any discrete timebase. Everything else fails
// with ErrTimebase.
func Common(a, b Timebase) (Timebase, error) {
	switch {
	case a.kind == kindUnspecified:
		return b, nil
	case b.kind == kindUnspecified:
		return a, nil
	case a.kind != b.kind:
		return Timebase{}, fmt.Errorf("%w: %v and %v", ErrTimebase, a, b)
	case a.kind == kindContinuous:
		return a, nil
	case a.ts == 0:
		return b, nil
	case b.ts == 0:
		return a, nil
	case a.ts == b.ts:
		return a, nil
	}
	return Timebase{}, fmt.Errorf("%w: %v and %v", ErrTimebase, a, b)
}

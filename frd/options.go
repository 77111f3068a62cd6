package frd

import (
	"fmt"

	"github.com/hammal/lti"
	"github.com/hammal/lti/signal"
)

// Squeeze selects how singleton axes of evaluated responses are collapsed.
type Squeeze int

const (
	// SqueezeAuto collapses the output/input axes for SISO data and keeps
	// them otherwise; the frequency axis follows the query shape.
	SqueezeAuto Squeeze = iota
	// SqueezeAlways removes every singleton axis.
	SqueezeAlways
	// SqueezeNever keeps all three axes.
	SqueezeNever
)

type enumMode int

const (
	modeResponse enumMode = iota
	modeMagPhase
	modeSingular
)

type config struct {
	smooth    bool
	tb        *lti.Timebase
	squeeze   *Squeeze
	mode      *enumMode
	outputs   []string
	inputs    []string
	name      *string
	title     *string
	plotType  *string
	tolerance *float64
	resolver  signal.Resolver
}

// Option configures construction of a Model.
type Option func(*config) error

// WithSmoothing fits an interpolating spline per channel so the response
// can be evaluated between grid frequencies.
func WithSmoothing() Option {
	return func(c *config) error {
		c.smooth = true
		return nil
	}
}

// WithTimebase sets the model timebase. When constructing from a system,
// the given timebase is joined with the system's own.
func WithTimebase(tb lti.Timebase) Option {
	return func(c *config) error {
		c.tb = &tb
		return nil
	}
}

// WithSqueeze sets the squeeze policy for evaluated responses.
func WithSqueeze(s Squeeze) Option {
	return func(c *config) error {
		if s != SqueezeAuto && s != SqueezeAlways && s != SqueezeNever {
			return fmt.Errorf("%w: unknown squeeze value %d", ErrConfiguration, s)
		}
		c.squeeze = &s
		return nil
	}
}

// WithLabels sets the output and input signal labels.
func WithLabels(outputs, inputs []string) Option {
	return func(c *config) error {
		c.outputs = append([]string(nil), outputs...)
		c.inputs = append([]string(nil), inputs...)
		return nil
	}
}

// WithName sets the model name.
func WithName(name string) Option {
	return func(c *config) error {
		c.name = &name
		return nil
	}
}

// WithMagPhase makes Components enumerate (magnitude, phase, frequency)
// instead of (frequency, response).
func WithMagPhase() Option {
	return func(c *config) error {
		if c.mode != nil && *c.mode != modeMagPhase {
			return fmt.Errorf("%w: conflicting enumeration modes", ErrConfiguration)
		}
		m := modeMagPhase
		c.mode = &m
		return nil
	}
}

// WithSingularValues restores the legacy enumeration of (first input
// column, frequency) used by singular value consumers.
func WithSingularValues() Option {
	return func(c *config) error {
		if c.mode != nil && *c.mode != modeSingular {
			return fmt.Errorf("%w: conflicting enumeration modes", ErrConfiguration)
		}
		m := modeSingular
		c.mode = &m
		return nil
	}
}

// WithTolerance sets the grid matching tolerance used by evaluation and
// conversion. The default is DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(c *config) error {
		if tol <= 0 {
			return fmt.Errorf("%w: tolerance %g must be positive", ErrConfiguration, tol)
		}
		c.tolerance = &tol
		return nil
	}
}

// WithResolver injects the label resolver used by Subsystem.
func WithResolver(r signal.Resolver) Option {
	return func(c *config) error {
		if r == nil {
			return fmt.Errorf("%w: nil resolver", ErrConfiguration)
		}
		c.resolver = r
		return nil
	}
}

// WithTitle stores a display title, passed through opaquely to plotting
// collaborators.
func WithTitle(title string) Option {
	return func(c *config) error {
		c.title = &title
		return nil
	}
}

// WithPlotType stores a display plot type hint, passed through opaquely
// to plotting collaborators.
func WithPlotType(plotType string) Option {
	return func(c *config) error {
		c.plotType = &plotType
		return nil
	}
}

func applyOptions(opts []Option) (*config, error) {
	var c config
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

package frd

import (
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/hammal/lti"
	"github.com/hammal/lti/signal"
)

// FromSamples builds a model from a response tensor and a matching
// frequency grid. The grid is stored as given; smoothing requires it to
// be strictly increasing.
func FromSamples(resp *Tensor, omega []float64, opts ...Option) (*Model, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(omega) == 0 {
		return nil, fmt.Errorf("%w: empty response or frequency grid", ErrShapeMismatch)
	}
	if resp.n != len(omega) {
		return nil, fmt.Errorf("%w: %d frequency points for a grid of %d",
			ErrShapeMismatch, resp.n, len(omega))
	}

	m := &Model{
		resp:  resp.Clone(),
		omega: append([]float64(nil), omega...),
	}
	if err := finish(m, cfg); err != nil {
		return nil, err
	}
	return m, nil
}

// FromSlice builds a single-input single-output model from a 1-D response
// slice, reshaped to (1, 1, n).
func FromSlice(resp []complex128, omega []float64, opts ...Option) (*Model, error) {
	if len(resp) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrShapeMismatch)
	}
	t, err := TensorOf(1, 1, resp)
	if err != nil {
		return nil, err
	}
	return FromSamples(t, omega, opts...)
}

// FromSystem samples a linear system on the given frequencies, sorted
// ascending. Continuous-time systems are sampled at s = jw, discrete-time
// systems at z = exp(jw*ts); a discrete system with unknown period uses
// ts = 1. Labels, timebase and a derived name are inherited from the
// system unless overridden by options.
func FromSystem(sys lti.System, omega []float64, opts ...Option) (*Model, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(omega) == 0 {
		return nil, fmt.Errorf("%w: empty frequency grid", ErrShapeMismatch)
	}

	grid := append([]float64(nil), omega...)
	sort.Float64s(grid)

	resp, err := sample(sys, grid)
	if err != nil {
		return nil, err
	}

	tb := sys.Timebase()
	if cfg.tb != nil {
		if tb, err = lti.Common(tb, *cfg.tb); err != nil {
			return nil, err
		}
		cfg.tb = nil
	}

	m := &Model{resp: resp, omega: grid, tb: tb}
	if cfg.outputs == nil && cfg.inputs == nil {
		m.outputs = sys.OutputNames()
		m.inputs = sys.InputNames()
	}
	if cfg.name == nil && sys.Name() != "" {
		m.name = signal.DerivedName(sys.Name(), "sampled")
	}
	if err := finish(m, cfg); err != nil {
		return nil, err
	}
	return m, nil
}

// CopyOf builds a model from an existing one, with options overriding
// labels, name and configuration flags. Requesting smoothing refits the
// interpolation model on the copied data.
func CopyOf(src *Model, opts ...Option) (*Model, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	m := &Model{
		resp:     src.resp.Clone(),
		omega:    append([]float64(nil), src.omega...),
		tb:       src.tb,
		name:     src.name,
		squeeze:  src.squeeze,
		mode:     src.mode,
		tol:      src.tol,
		resolver: src.resolver,
		title:    src.title,
		plotType: src.plotType,
	}
	if cfg.outputs == nil && cfg.inputs == nil {
		m.outputs = src.OutputNames()
		m.inputs = src.InputNames()
	}
	cfg.smooth = cfg.smooth || src.Smoothed()
	if cfg.tb != nil {
		if m.tb, err = lti.Common(m.tb, *cfg.tb); err != nil {
			return nil, err
		}
		cfg.tb = nil
	}
	if err := finish(m, cfg); err != nil {
		return nil, err
	}
	return m, nil
}

// sample evaluates sys at every frequency of the sorted grid.
func sample(sys lti.System, grid []float64) (*Tensor, error) {
	var resp *Tensor
	ts := 1.0
	if t, ok := sys.Timebase().SampleTime(); ok {
		ts = t
	}
	for k, w := range grid {
		var s complex128
		if sys.IsContinuousTime() {
			s = complex(0, w)
		} else {
			s = cmplx.Exp(complex(0, w*ts))
		}
		g, err := sys.Evaluate(s)
		if err != nil {
			return nil, fmt.Errorf("frd: sampling system at omega=%g: %w", w, err)
		}
		p, q := g.Dims()
		if resp == nil {
			if resp, err = NewTensor(p, q, len(grid)); err != nil {
				return nil, err
			}
		}
		if p != resp.outputs || q != resp.inputs {
			return nil, fmt.Errorf("%w: system response changed shape at omega=%g",
				ErrShapeMismatch, w)
		}
		resp.SetSliceAt(k, g)
	}
	return resp, nil
}

// finish fills defaults, applies the remaining configuration and builds
// the evaluation variant.
func finish(m *Model, cfg *config) error {
	if m.outputs == nil {
		m.outputs = signal.DefaultLabels("y", m.resp.outputs)
	}
	if m.inputs == nil {
		m.inputs = signal.DefaultLabels("u", m.resp.inputs)
	}
	if cfg.outputs != nil || cfg.inputs != nil {
		if len(cfg.outputs) != m.resp.outputs || len(cfg.inputs) != m.resp.inputs {
			return fmt.Errorf("%w: %d output and %d input labels for a %dx%d model",
				ErrConfiguration, len(cfg.outputs), len(cfg.inputs),
				m.resp.outputs, m.resp.inputs)
		}
		m.outputs = append([]string(nil), cfg.outputs...)
		m.inputs = append([]string(nil), cfg.inputs...)
	}
	if cfg.tb != nil {
		m.tb = *cfg.tb
	}
	if cfg.name != nil {
		m.name = *cfg.name
	}
	if cfg.squeeze != nil {
		m.squeeze = *cfg.squeeze
	}
	if cfg.mode != nil {
		m.mode = *cfg.mode
	}
	if cfg.title != nil {
		m.title = *cfg.title
	}
	if cfg.plotType != nil {
		m.plotType = *cfg.plotType
	}
	m.tol = DefaultTolerance
	if cfg.tolerance != nil {
		m.tol = *cfg.tolerance
	}
	m.resolver = cfg.resolver
	if m.resolver == nil {
		m.resolver = signal.DefaultResolver{}
	}

	if cfg.smooth {
		splines, err := fitChannels(m.resp, m.omega)
		if err != nil {
			return err
		}
		m.eval = &smoothedGrid{resp: m.resp, splines: splines}
	} else {
		m.eval = &exactGrid{resp: m.resp, omega: m.omega, tol: m.tol}
	}
	return nil
}

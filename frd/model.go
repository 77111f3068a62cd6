// Package frd represents linear systems by sampled complex frequency
// response data: gain and phase on a finite frequency grid, with the
// algebra needed to combine, evaluate and query such data as if it were a
// closed-form transfer function.
package frd

import (
	"fmt"
	"math/cmplx"
	"strings"

	"github.com/hammal/lti"
	"github.com/hammal/lti/signal"
)

// DefaultTolerance bounds all frequency grid comparisons: exact-match
// evaluation and conversion compatibility checks.
const DefaultTolerance = 1e-8

// Model is a frequency response data model. Instances are immutable;
// every operator allocates a fresh instance and accessors hand out
// copies.
type Model struct {
	resp  *Tensor
	omega []float64
	tb    lti.Timebase
	eval  evaluator

	outputs []string
	inputs  []string
	name    string

	squeeze  Squeeze
	mode     enumMode
	tol      float64
	resolver signal.Resolver

	// Opaque display hints for plotting collaborators.
	title    string
	plotType string
}

// NumOutputs returns the number of outputs.
func (m *Model) NumOutputs() int { return m.resp.outputs }

// NumInputs returns the number of inputs.
func (m *Model) NumInputs() int { return m.resp.inputs }

// IsSISO reports whether the model has a single input and a single output.
func (m *Model) IsSISO() bool { return m.resp.outputs == 1 && m.resp.inputs == 1 }

// Smoothed reports whether the model carries an interpolation model.
func (m *Model) Smoothed() bool {
	_, ok := m.eval.(*smoothedGrid)
	return ok
}

// Timebase returns the model timebase.
func (m *Model) Timebase() lti.Timebase { return m.tb }

// Name returns the model name, possibly empty.
func (m *Model) Name() string { return m.name }

// Title returns the display title hint.
func (m *Model) Title() string { return m.title }

// PlotType returns the display plot type hint.
func (m *Model) PlotType() string { return m.plotType }

// OutputNames returns the ordered output labels.
func (m *Model) OutputNames() []string {
	return append([]string(nil), m.outputs...)
}

// InputNames returns the ordered input labels.
func (m *Model) InputNames() []string {
	return append([]string(nil), m.inputs...)
}

// Frequency returns a copy of the frequency grid in rad/s.
func (m *Model) Frequency() []float64 {
	return append([]float64(nil), m.omega...)
}

// Data returns a copy of the response tensor.
func (m *Model) Data() *Tensor { return m.resp.Clone() }

// ResponseView returns the complex response as a labeled
// (outputs, inputs, n) view.
func (m *Model) ResponseView() *View {
	t := m.resp
	return &View{
		Array: Array{
			Shape: []int{t.outputs, t.inputs, t.n},
			Data:  append([]complex128(nil), t.data...),
		},
		Outputs: m.OutputNames(),
		Inputs:  m.InputNames(),
	}
}

// Magnitude returns the response magnitude as a labeled
// (outputs, inputs, n) view.
func (m *Model) Magnitude() *RealView {
	return m.realView(cmplx.Abs)
}

// Phase returns the wrapped response phase in radians as a labeled
// (outputs, inputs, n) view.
func (m *Model) Phase() *RealView {
	return m.realView(func(v complex128) float64 { return cmplx.Phase(v) })
}

func (m *Model) realView(f func(complex128) float64) *RealView {
	t := m.resp
	data := make([]float64, len(t.data))
	for i, v := range t.data {
		data[i] = f(v)
	}
	return &RealView{
		RealArray: RealArray{Shape: []int{t.outputs, t.inputs, t.n}, Data: data},
		Outputs:   m.OutputNames(),
		Inputs:    m.InputNames(),
	}
}

// Configured returns a reconfigured copy of the model sharing the same
// response data. Only output conventions may change: squeeze policy,
// enumeration mode, tolerance, resolver, labels, name and display hints.
// Options that would resample or refit the data fail with
// ErrConfiguration.
func (m *Model) Configured(opts ...Option) (*Model, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if cfg.smooth || cfg.tb != nil {
		return nil, fmt.Errorf("%w: Configured cannot change response data", ErrConfiguration)
	}

	out := *m
	if cfg.squeeze != nil {
		out.squeeze = *cfg.squeeze
	}
	if cfg.mode != nil {
		out.mode = *cfg.mode
	}
	if cfg.tolerance != nil {
		out.tol = *cfg.tolerance
		// The exact-grid evaluator captured the construction-time
		// tolerance; rebind it. The smoothed variant matches no grid
		// entries and stays as is.
		if !m.Smoothed() {
			out.eval = &exactGrid{resp: out.resp, omega: out.omega, tol: out.tol}
		}
	}
	if cfg.resolver != nil {
		out.resolver = cfg.resolver
	}
	if cfg.name != nil {
		out.name = *cfg.name
	}
	if cfg.title != nil {
		out.title = *cfg.title
	}
	if cfg.plotType != nil {
		out.plotType = *cfg.plotType
	}
	if cfg.outputs != nil || cfg.inputs != nil {
		if len(cfg.outputs) != m.resp.outputs || len(cfg.inputs) != m.resp.inputs {
			return nil, fmt.Errorf("%w: %d output and %d input labels for a %dx%d model",
				ErrConfiguration, len(cfg.outputs), len(cfg.inputs),
				m.resp.outputs, m.resp.inputs)
		}
		out.outputs = append([]string(nil), cfg.outputs...)
		out.inputs = append([]string(nil), cfg.inputs...)
	}
	return &out, nil
}

// String renders the response as a frequency/response table per channel.
func (m *Model) String() string {
	var b strings.Builder
	name := m.name
	if name == "" {
		name = "frd"
	}
	fmt.Fprintf(&b, "%s: %d outputs, %d inputs, %d frequencies, %s\n",
		name, m.resp.outputs, m.resp.inputs, len(m.omega), m.tb)

	mimo := !m.IsSISO()
	for j := 0; j < m.resp.inputs; j++ {
		for i := 0; i < m.resp.outputs; i++ {
			if mimo {
				fmt.Fprintf(&b, "\nInput %d to output %d:\n", j+1, i+1)
			}
			b.WriteString("Freq [rad/s]  Response\n")
			b.WriteString("------------  ---------------------\n")
			for k, w := range m.omega {
				v := m.resp.At(i, j, k)
				fmt.Fprintf(&b, "%12.3f  %10.4g%+10.4gj\n", w, real(v), imag(v))
			}
		}
	}
	return b.String()
}

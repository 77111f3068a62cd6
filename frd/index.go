package frd

import (
	"github.com/hammal/lti/signal"
)

// Subsystem returns a new model restricted to the selected output rows
// and input columns. Selectors are resolved against the model's labels by
// the injected resolver, so label names may be used alongside positional
// indices. Grid and timebase carry over; the name is wrapped as derived.
func (m *Model) Subsystem(outputs, inputs signal.Selector) (*Model, error) {
	outIdx, outLabels, err := m.resolver.Resolve(outputs, m.outputs)
	if err != nil {
		return nil, err
	}
	inIdx, inLabels, err := m.resolver.Resolve(inputs, m.inputs)
	if err != nil {
		return nil, err
	}

	t, err := NewTensor(len(outIdx), len(inIdx), m.resp.n)
	if err != nil {
		return nil, err
	}
	for i, oi := range outIdx {
		for j, ij := range inIdx {
			for k := 0; k < m.resp.n; k++ {
				t.Set(i, j, k, m.resp.At(oi, ij, k))
			}
		}
	}

	sub := &Model{
		resp:  t,
		omega: append([]float64(nil), m.omega...),
		tb:    m.tb,
		name:  signal.DerivedName(m.name, "indexed"),
	}
	sq := m.squeeze
	tol := m.tol
	cfg := &config{
		outputs:   outLabels,
		inputs:    inLabels,
		squeeze:   &sq,
		tolerance: &tol,
		resolver:  m.resolver,
	}
	if err := finish(sub, cfg); err != nil {
		return nil, err
	}
	return sub, nil
}

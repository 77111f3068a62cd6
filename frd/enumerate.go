package frd

import (
	"fmt"
	"math/cmplx"
)

// Components is the enumeration product of a model, replacing the legacy
// tuple protocol. Exactly the fields of the configured mode are set:
// Frequency and Response by default, Magnitude, Phase and Frequency in
// magnitude/phase mode, Singular and Frequency in the legacy
// singular-value mode.
type Components struct {
	Frequency []float64
	Response  *Array
	Magnitude *RealArray
	Phase     *RealArray
	Singular  *Array
}

// Arity reports the tuple length of the configured enumeration mode,
// 3 in magnitude/phase mode and 2 otherwise, supporting fixed-arity
// destructuring by callers.
func (m *Model) Arity() int {
	if m.mode == modeMagPhase {
		return 3
	}
	return 2
}

// Components returns the enumeration product for the configured mode.
// The response arrays are shaped by the model's squeeze policy.
func (m *Model) Components() (*Components, error) {
	c := &Components{Frequency: m.Frequency()}
	switch m.mode {
	case modeResponse:
		arr, err := squeezeArray(m.resp, false, m.squeeze)
		if err != nil {
			return nil, err
		}
		c.Response = arr
	case modeMagPhase:
		arr, err := squeezeArray(m.resp, false, m.squeeze)
		if err != nil {
			return nil, err
		}
		mag := &RealArray{Shape: arr.Shape, Data: make([]float64, len(arr.Data))}
		phase := &RealArray{Shape: arr.Shape, Data: make([]float64, len(arr.Data))}
		for i, v := range arr.Data {
			mag.Data[i] = cmplx.Abs(v)
			phase.Data[i] = cmplx.Phase(v)
		}
		c.Magnitude = mag
		c.Phase = phase
	case modeSingular:
		// First input column of the raw response, unsqueezed.
		p, _, n := m.resp.Dims()
		data := make([]complex128, 0, p*n)
		for i := 0; i < p; i++ {
			data = append(data, m.resp.Channel(i, 0)...)
		}
		c.Singular = &Array{Shape: []int{p, n}, Data: data}
	}
	return c, nil
}

// Component gives positional access into the enumeration product for
// legacy callers: in the default mode element 0 is the frequency grid
// ([]float64) and element 1 the response (*Array); in magnitude/phase
// mode the order is magnitude, phase, frequency; in singular-value mode
// the response column comes first.
func (m *Model) Component(i int) (any, error) {
	c, err := m.Components()
	if err != nil {
		return nil, err
	}
	var items []any
	switch m.mode {
	case modeResponse:
		items = []any{c.Frequency, c.Response}
	case modeMagPhase:
		items = []any{c.Magnitude, c.Phase, c.Frequency}
	case modeSingular:
		items = []any{c.Singular, c.Frequency}
	}
	if i < 0 || i >= len(items) {
		return nil, fmt.Errorf("%w: component %d of %d", ErrConfiguration, i, len(items))
	}
	return items[i], nil
}

package frd

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// bspline is one fitted parametric curve, parameterized over the
// frequency grid and mapping a query frequency to the real and imaginary
// response parts of a single channel.
type bspline struct {
	degree       int
	knots        []float64
	creal, cimag []float64
}

// fitChannels fits one parametric spline per (output, input) channel.
// The fit degree is 3 when the grid has at least 4 points, otherwise
// n-1; at least 2 points are required and the grid must be strictly
// increasing. Fit weights are 1/(|response| + 0.001), emphasising
// low-magnitude accuracy.
func fitChannels(resp *Tensor, omega []float64) ([]*bspline, error) {
	n := len(omega)
	if n < 2 {
		return nil, fmt.Errorf("%w: can't smooth with only %d frequency", ErrShapeMismatch, n)
	}
	for k := 1; k < n; k++ {
		if omega[k] <= omega[k-1] {
			return nil, fmt.Errorf("%w: smoothing requires a strictly increasing frequency grid",
				ErrShapeMismatch)
		}
	}
	degree := 3
	if n < 4 {
		degree = n - 1
	}

	splines := make([]*bspline, resp.outputs*resp.inputs)
	for i := 0; i < resp.outputs; i++ {
		for j := 0; j < resp.inputs; j++ {
			channel := resp.Channel(i, j)
			re := make([]float64, n)
			im := make([]float64, n)
			weights := make([]float64, n)
			for k, v := range channel {
				re[k] = real(v)
				im[k] = imag(v)
				weights[k] = 1.0 / (cmplx.Abs(v) + 0.001)
			}
			sp, err := fitBSpline(omega, re, im, weights, degree)
			if err != nil {
				return nil, err
			}
			splines[i*resp.inputs+j] = sp
		}
	}
	return splines, nil
}

// fitBSpline fits a degree-k B-spline through the n data points by
// solving the weighted collocation system. Knots are clamped at the grid
// ends with de Boor averaged interior knots, which keeps the collocation
// matrix nonsingular for strictly increasing grids; the fit therefore
// reproduces the samples at the grid points.
func fitBSpline(u, re, im, w []float64, k int) (*bspline, error) {
	n := len(u)
	knots := make([]float64, n+k+1)
	for i := 0; i <= k; i++ {
		knots[i] = u[0]
		knots[n+k-i] = u[n-1]
	}
	for j := 1; j <= n-k-1; j++ {
		sum := 0.0
		for i := j; i < j+k; i++ {
			sum += u[i]
		}
		knots[k+j] = sum / float64(k)
	}

	a := mat.NewDense(n, n, nil)
	rhs := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, w[i]*bsplineBasis(knots, j, k, u[i]))
		}
		rhs.Set(i, 0, w[i]*re[i])
		rhs.Set(i, 1, w[i]*im[i])
	}

	var sol mat.Dense
	if err := sol.Solve(a, rhs); err != nil {
		return nil, fmt.Errorf("%w: degenerate frequency grid for spline fit",
			ErrShapeMismatch)
	}

	sp := &bspline{
		degree: k,
		knots:  knots,
		creal:  make([]float64, n),
		cimag:  make([]float64, n),
	}
	for j := 0; j < n; j++ {
		sp.creal[j] = sol.At(j, 0)
		sp.cimag[j] = sol.At(j, 1)
	}
	return sp, nil
}

// evalAt evaluates the fitted curve, clamping the parameter to the
// fitted frequency range.
func (sp *bspline) evalAt(x float64) (re, im float64) {
	lo := sp.knots[sp.degree]
	hi := sp.knots[len(sp.knots)-1-sp.degree]
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	for j := range sp.creal {
		b := bsplineBasis(sp.knots, j, sp.degree, x)
		if b == 0 {
			continue
		}
		re += sp.creal[j] * b
		im += sp.cimag[j] * b
	}
	return re, im
}

// bsplineBasis is the Cox-de Boor recursion for the j-th basis function
// of degree k over the knot vector t. The last span is treated as closed
// so the curve endpoint at the final knot is included.
func bsplineBasis(t []float64, j, k int, x float64) float64 {
	if k == 0 {
		tmax := t[len(t)-1]
		if t[j] <= x && x < t[j+1] {
			return 1
		}
		if x == tmax && t[j] < t[j+1] && t[j+1] == tmax {
			return 1
		}
		return 0
	}
	var left, right float64
	if d := t[j+k] - t[j]; d > 0 {
		left = (x - t[j]) / d * bsplineBasis(t, j, k-1, x)
	}
	if d := t[j+k+1] - t[j+1]; d > 0 {
		right = (t[j+k+1] - x) / d * bsplineBasis(t, j+1, k-1, x)
	}
	return left + right
}

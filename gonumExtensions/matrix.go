// Package gonumExtensions supplies the complex matrix helpers that gonum's
// mat package stops short of: identity and constant CDense constructors,
// promotion of real matrices to complex, a matrix product, a Gauss-Jordan
// inverse, and a NaN/Inf scan. gonum factorizations and Dense arithmetic
// only cover float64 matrices, so the product and inverse are written out
// here.
package gonumExtensions

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when a matrix cannot be inverted.
var ErrSingular = errors.New("gonumExtensions: matrix is singular")

// CFull returns a (m by n) complex matrix filled with value
func CFull(m, n int, value complex128) *mat.CDense {
	data := make([]complex128, m*n)
	for index := range data {
		data[index] = value
	}
	return mat.NewCDense(m, n, data)
}

// COnes returns a (m by n) complex matrix filled with ones
func COnes(m, n int) *mat.CDense {
	return CFull(m, n, 1)
}

// CEye returns the (n by n) complex identity matrix
func CEye(n int) *mat.CDense {
	tmp := mat.NewCDense(n, n, nil)
	for entry := 0; entry < n; entry++ {
		tmp.Set(entry, entry, 1)
	}
	return tmp
}

// Complexify copies a real matrix into a complex one.
func Complexify(a mat.Matrix) *mat.CDense {
	m, n := a.Dims()
	tmp := mat.NewCDense(m, n, nil)
	for row := 0; row < m; row++ {
		for col := 0; col < n; col++ {
			tmp.Set(row, col, complex(a.At(row, col), 0))
		}
	}
	return tmp
}

// CMul returns the matrix product a * b. gonum's CDense carries no
// multiplication method, so the product is accumulated here. The inner
// dimensions must agree.
func CMul(a, b mat.CMatrix) *mat.CDense {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ca != rb {
		panic(mat.ErrShape)
	}
	out := mat.NewCDense(ra, cb, nil)
	for row := 0; row < ra; row++ {
		for col := 0; col < cb; col++ {
			var sum complex128
			for k := 0; k < ca; k++ {
				sum += a.At(row, k) * b.At(k, col)
			}
			out.Set(row, col, sum)
		}
	}
	return out
}

// CInverse returns the inverse of a square complex matrix, computed by
// Gauss-Jordan elimination with partial pivoting.
func CInverse(a mat.CMatrix) (*mat.CDense, error) {
	m, n := a.Dims()
	if m != n {
		return nil, errors.New("gonumExtensions: matrix is not square")
	}

	// Work on an augmented copy [a | I].
	work := make([]complex128, n*n)
	inv := make([]complex128, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			work[row*n+col] = a.At(row, col)
		}
		inv[row*n+row] = 1
	}

	for col := 0; col < n; col++ {
		// Pivot on the largest remaining entry in this column.
		pivot := col
		max := cmplx.Abs(work[col*n+col])
		for row := col + 1; row < n; row++ {
			if v := cmplx.Abs(work[row*n+col]); v > max {
				max = v
				pivot = row
			}
		}
		if max == 0 {
			return nil, ErrSingular
		}
		if pivot != col {
			for k := 0; k < n; k++ {
				work[col*n+k], work[pivot*n+k] = work[pivot*n+k], work[col*n+k]
				inv[col*n+k], inv[pivot*n+k] = inv[pivot*n+k], inv[col*n+k]
			}
		}

		scale := work[col*n+col]
		for k := 0; k < n; k++ {
			work[col*n+k] /= scale
			inv[col*n+k] /= scale
		}
		for row := 0; row < n; row++ {
			if row == col || work[row*n+col] == 0 {
				continue
			}
			factor := work[row*n+col]
			for k := 0; k < n; k++ {
				work[row*n+k] -= factor * work[col*n+k]
				inv[row*n+k] -= factor * inv[col*n+k]
			}
		}
	}
	return mat.NewCDense(n, n, inv), nil
}

// NaNOrInf checks if there are any NaN or Inf entries in matrix
func NaNOrInf(matrix mat.CMatrix) bool {
	m, n := matrix.Dims()
	for row := 0; row < m; row++ {
		for col := 0; col < n; col++ {
			v := matrix.At(row, col)
			if math.IsNaN(real(v)) || math.IsNaN(imag(v)) ||
				math.IsInf(real(v), 0) || math.IsInf(imag(v), 0) {
				return true
			}
		}
	}
	return false
}

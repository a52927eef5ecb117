package fit

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/28H4/plot-playground/src/errs"
)

// Polyfit fits a polynomial of the given degree to (x, y) by least squares and
// returns the coefficients c[0] + c[1]x + c[2]x^2 + ...
func Polyfit(x, y []float64, degree int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, errs.Shapef("x has %d values, y has %d", len(x), len(y))
	}
	if degree < 0 {
		return nil, errs.Configf("polynomial degree %d", degree)
	}
	if len(x) < degree+1 {
		return nil, errs.Fitf("degree %d fit needs %d points, got %d", degree, degree+1, len(x))
	}
	a := vandermonde(x, degree)
	b := mat.NewDense(len(y), 1, y)
	c := mat.NewDense(degree+1, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)
	if err := qr.SolveTo(c, false, b); err != nil {
		return nil, fmt.Errorf("%w: could not solve QR: %v", errs.ErrFit, err)
	}
	return mat.Col(nil, 0, c), nil
}

// PolyEval evaluates the coefficients returned by Polyfit at x.
func PolyEval(coeffs []float64, x float64) float64 {
	v := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		v = v*x + coeffs[i]
	}
	return v
}

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}

// Linspace returns n evenly spaced values over [lo, hi], both ends included.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Package fit holds the numerical side of the plotting programs: ordinary least
// squares, residuals, a reference polynomial fit and spline smoothing.
package fit

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/28H4/plot-playground/src/errs"
)

// LinearResult is the outcome of an ordinary least-squares line fit.
type LinearResult struct {
	Slope           float64
	Intercept       float64
	RValue          float64 // Pearson correlation coefficient
	PValue          float64 // two-sided, null hypothesis slope == 0
	StdErr          float64 // standard error of the slope
	InterceptStdErr float64
	N               int
}

// At evaluates the fitted line at x.
func (r LinearResult) At(x float64) float64 { return r.Slope*x + r.Intercept }

// LinRegress fits y = slope*x + intercept by ordinary least squares.
func LinRegress(x, y []float64) (LinearResult, error) {
	if len(x) != len(y) {
		return LinearResult{}, errs.Shapef("x has %d values, y has %d", len(x), len(y))
	}
	n := len(x)
	if n < 2 {
		return LinearResult{}, errs.Fitf("linear regression needs at least 2 points, got %d", n)
	}
	if allEqual(x) {
		return LinearResult{}, errs.Fitf("cannot fit a line when all x values are identical (%g)", x[0])
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	res := LinearResult{Slope: slope, Intercept: intercept, N: n}

	if n == 2 {
		// Two points define the line exactly.
		res.RValue = math.Copysign(1, slope)
		if y[0] == y[1] {
			res.RValue = 0
			res.PValue = 1
		}
		return res, nil
	}

	r := 0.0
	if !allEqual(y) {
		r = stat.Correlation(x, y, nil)
	}
	r = math.Max(-1, math.Min(1, r))
	res.RValue = r

	df := float64(n - 2)
	if 1-r*r <= 1e-300 {
		res.PValue = 0
	} else {
		tStat := r * math.Sqrt(df/((1-r)*(1+r)))
		st := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
		res.PValue = 2 * st.CDF(-math.Abs(tStat))
	}

	// Biased (1/n) moments, as in the usual closed form for the standard errors.
	scale := float64(n-1) / float64(n)
	ssxm := stat.Variance(x, nil) * scale
	ssym := stat.Variance(y, nil) * scale
	xmean := stat.Mean(x, nil)
	res.StdErr = math.Sqrt(math.Max(0, (1-r*r)*ssym/ssxm/df))
	res.InterceptStdErr = res.StdErr * math.Sqrt(ssxm+xmean*xmean)
	return res, nil
}

// Residuals returns y - fitted(x) for every point. The caller guarantees len(x) == len(y).
func Residuals(x, y []float64, res LinearResult) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = y[i] - res.At(x[i])
	}
	return out
}

// Evaluate samples the fitted line at every x.
func Evaluate(x []float64, res LinearResult) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = res.At(v)
	}
	return out
}

func allEqual(v []float64) bool {
	for _, a := range v[1:] {
		if a != v[0] {
			return false
		}
	}
	return true
}

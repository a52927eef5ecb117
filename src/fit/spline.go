package fit

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"

	"github.com/28H4/plot-playground/src/errs"
	"github.com/28H4/plot-playground/src/logging"
)

var logger = logging.For("fit")

const (
	// DegreeLinear connects the points with straight segments.
	DegreeLinear = 1
	// DegreeCubic is the default smoothing degree.
	DegreeCubic = 3

	// minCubicPoints is the smallest series a cubic spline is defined for.
	minCubicPoints = 4
)

// Curve is a smoothed representation of one series, sampled on a dense grid.
type Curve struct {
	// Degree actually used (1 or 3).
	Degree int
	// Fallback is set when a cubic fit was requested but the series was too
	// short and the curve was degraded to linear.
	Fallback bool
	X        []float64
	Y        []float64
}

// Smooth fits an interpolating spline of the given degree through (x, y) and
// samples it at `samples` evenly spaced points across the x-range.
//
// The cubic spline uses not-a-knot end conditions, which is the same curve as
// an interpolating (zero smoothing) cubic B-spline. Series with fewer than four
// points are degraded to degree 1; fewer than two points is a fit error.
func Smooth(x, y []float64, degree, samples int) (Curve, error) {
	if len(x) != len(y) {
		return Curve{}, errs.Shapef("x has %d values, y has %d", len(x), len(y))
	}
	if degree != DegreeLinear && degree != DegreeCubic {
		return Curve{}, errs.Configf("spline degree must be 1 or 3, got %d", degree)
	}
	if samples < 2 {
		return Curve{}, errs.Configf("spline needs at least 2 samples, got %d", samples)
	}
	if len(x) < 2 {
		return Curve{}, errs.Fitf("spline needs at least 2 points, got %d", len(x))
	}

	xs, ys := sortedPairs(x, y)
	for i := 1; i < len(xs); i++ {
		if xs[i] == xs[i-1] {
			return Curve{}, errs.Fitf("duplicate x value %g", xs[i])
		}
	}

	c := Curve{Degree: degree}
	if degree == DegreeCubic && len(xs) < minCubicPoints {
		c.Degree = DegreeLinear
		c.Fallback = true
		logger.Debugf("%d points are too few for a cubic spline, using degree %d", len(xs), c.Degree)
	}

	var pred interp.FittablePredictor
	if c.Degree == DegreeCubic {
		pred = &interp.NotAKnotCubic{}
	} else {
		pred = &interp.PiecewiseLinear{}
	}
	if err := pred.Fit(xs, ys); err != nil {
		return Curve{}, errs.Fitf("degree %d spline: %v", c.Degree, err)
	}

	c.X = Linspace(xs[0], xs[len(xs)-1], samples)
	c.Y = make([]float64, len(c.X))
	for i, v := range c.X {
		c.Y[i] = pred.Predict(v)
	}
	return c, nil
}

// TailBelow reports whether the last y value of a series is below threshold.
// It is the stock predicate for switching a decaying series to a linear fit.
func TailBelow(threshold float64) func(x, y []float64) bool {
	return func(_, y []float64) bool {
		return len(y) > 0 && y[len(y)-1] < threshold
	}
}

// DropNaN returns copies of x and y without the points where either value is NaN.
func DropNaN(x, y []float64) ([]float64, []float64) {
	ox := make([]float64, 0, len(x))
	oy := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		ox = append(ox, x[i])
		oy = append(oy, y[i])
	}
	return ox, oy
}

func sortedPairs(x, y []float64) ([]float64, []float64) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })
	xs := make([]float64, len(x))
	ys := make([]float64, len(y))
	for i, j := range idx {
		xs[i], ys[i] = x[j], y[j]
	}
	return xs, ys
}

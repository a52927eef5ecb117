// Package multifit draws several y-series that share one x column: each
// series as colored markers overlaid by a smoothing spline, plus one legend
// entry per series.
package multifit

import (
	"fmt"
	"image"
	"time"

	"github.com/28H4/plot-playground/src/colormap"
	"github.com/28H4/plot-playground/src/config"
	"github.com/28H4/plot-playground/src/dataset"
	"github.com/28H4/plot-playground/src/errs"
	"github.com/28H4/plot-playground/src/figure"
	"github.com/28H4/plot-playground/src/fit"
	"github.com/28H4/plot-playground/src/logging"
)

var logger = logging.For("multifit")

// LinearCondition decides per series whether to fit it linearly instead of
// with the configured spline degree.
type LinearCondition func(x, y []float64) bool

// Options controls colors and smoothing.
type Options struct {
	// Colormap names the map the series colors are spread over.
	Colormap string
	// Degree is 1 or 3; zero means 3.
	Degree int
	// Samples is the number of points each curve is evaluated at; zero means 50.
	Samples int
	// Linear, when set and true for a series, forces degree 1 for it.
	Linear LinearCondition
}

// DefaultOptions returns viridis colors and 50-point cubic curves.
func DefaultOptions() Options {
	return Options{Colormap: colormap.Default, Degree: fit.DegreeCubic, Samples: 50}
}

// OptionsFromConfig maps the program configuration onto Options.
func OptionsFromConfig(cfg config.MultiFit) Options {
	o := Options{Colormap: cfg.Colormap, Degree: cfg.Fit.Degree, Samples: cfg.Fit.Samples}
	if cfg.Fit.LinearBelow != nil {
		o.Linear = fit.TailBelow(*cfg.Fit.LinearBelow)
	}
	return o
}

// SeriesReport summarizes how one series was fitted.
type SeriesReport struct {
	Label    string
	Points   int
	Degree   int
	Fallback bool
}

// Plot adds every series of ys to fig. See PlotWithReport.
func Plot(fig *figure.Figure, x []float64, ys [][]float64, labels []string, opts Options) error {
	_, err := PlotWithReport(fig, x, ys, labels, opts)
	return err
}

// PlotWithReport fits all series first and only then draws them, so fig is
// left untouched when any series fails.
func PlotWithReport(fig *figure.Figure, x []float64, ys [][]float64, labels []string, opts Options) ([]SeriesReport, error) {
	if len(labels) != len(ys) {
		return nil, errs.Shapef("%d labels for %d series", len(labels), len(ys))
	}
	for i, y := range ys {
		if len(y) != len(x) {
			return nil, errs.Shapef("series %q has %d values, x has %d", labels[i], len(y), len(x))
		}
	}
	if opts.Degree == 0 {
		opts.Degree = fit.DegreeCubic
	}
	if opts.Samples == 0 {
		opts.Samples = 50
	}
	colors, err := colormap.ColorsByName(opts.Colormap, len(ys))
	if err != nil {
		return nil, err
	}

	type fitted struct {
		x, y  []float64
		curve fit.Curve
	}
	all := make([]fitted, len(ys))
	reports := make([]SeriesReport, len(ys))
	for i, y := range ys {
		xs, yv := fit.DropNaN(x, y)
		degree := opts.Degree
		if opts.Linear != nil && opts.Linear(xs, yv) {
			degree = fit.DegreeLinear
		}
		curve, err := fit.Smooth(xs, yv, degree, opts.Samples)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", labels[i], err)
		}
		all[i] = fitted{x: xs, y: yv, curve: curve}
		reports[i] = SeriesReport{Label: labels[i], Points: len(xs), Degree: curve.Degree, Fallback: curve.Fallback}
		if len(xs) < len(x) {
			logger.Debugf("series %q: dropped %d missing points", labels[i], len(x)-len(xs))
		}
	}

	fig.SetColorCycle(colors)
	for i, s := range all {
		col := fig.NextColor()
		if err := fig.Scatter(labels[i], s.x, s.y, col); err != nil {
			return nil, err
		}
		if err := fig.Line(labels[i]+" fit", s.curve.X, s.curve.Y, col); err != nil {
			return nil, err
		}
		fig.AddLegendEntry(figure.LegendEntry{Name: labels[i], Color: col, Line: true, Marker: true})
	}
	return reports, nil
}

// Render draws an already loaded table with the program configuration and
// returns the image and the per-series summary.
func Render(cfg config.MultiFit, tab dataset.Table) (image.Image, []SeriesReport, error) {
	defer logger.TimeTrack(time.Now(), "render")
	fig := figure.New(cfg.Figure)
	reports, err := PlotWithReport(fig, tab.X, tab.Columns, tab.Labels, OptionsFromConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	img, err := fig.Render()
	if err != nil {
		return nil, nil, err
	}
	return img, reports, nil
}

// TableOptions converts the data section of the configuration for dataset.LoadTable.
func TableOptions(d config.Data) dataset.TableOptions {
	return dataset.TableOptions{
		Header:     dataset.HeaderOptions{Uppercase: d.Uppercase, Delimiter: d.Delimiter},
		HeaderLine: d.HeaderLine,
		SkipHeader: d.SkipHeader,
		XScale:     d.XScale,
	}
}

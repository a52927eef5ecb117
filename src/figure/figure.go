// Package figure is the drawing surface shared by the scatter/fit programs.
// It collects scatter and line series, keeps its own legend entries and
// renders everything through go-chart into an image.
package figure

import (
	"bytes"
	"image"
	"image/png"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/28H4/plot-playground/src/config"
	"github.com/28H4/plot-playground/src/errs"
	"github.com/28H4/plot-playground/src/logging"
)

var logger = logging.For("figure")

// DotWidth is the marker radius of scatter series in pixels.
const DotWidth = 4

// pointStyle renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		StrokeColor: col.WithAlpha(0),
		DotWidth:    DotWidth,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 1.5,
		StrokeColor: col,
	}
}

// LegendEntry is one row of the figure legend. Line and Marker select the
// swatch drawn next to the name.
type LegendEntry struct {
	Name   string
	Color  drawing.Color
	Line   bool
	Marker bool
}

// Figure accumulates series for one chart panel.
type Figure struct {
	cfg config.Figure

	series  []chart.Series
	entries []LegendEntry

	cycle []drawing.Color
	next  int

	scatters int
	curves   int

	hideXAxis bool
}

// New returns an empty figure for the given options.
func New(cfg config.Figure) *Figure {
	return &Figure{cfg: cfg}
}

// Config returns the options the figure was created with.
func (f *Figure) Config() config.Figure { return f.cfg }

// SetColorCycle replaces the automatic color sequence and restarts it.
func (f *Figure) SetColorCycle(colors []drawing.Color) {
	f.cycle = append([]drawing.Color(nil), colors...)
	f.next = 0
}

// NextColor returns the next color of the cycle, wrapping around. Without a
// cycle it falls back to go-chart's default palette.
func (f *Figure) NextColor() drawing.Color {
	i := f.next
	f.next++
	if len(f.cycle) == 0 {
		return chart.GetDefaultColor(i)
	}
	return f.cycle[i%len(f.cycle)]
}

// HideXAxis suppresses the x axis (used for the upper panel of stacked figures).
func (f *Figure) HideXAxis() { f.hideXAxis = true }

// Scatter adds markers at (x, y). NaN pairs are skipped.
func (f *Figure) Scatter(name string, x, y []float64, col drawing.Color) error {
	xs, ys, err := finitePairs(x, y)
	if err != nil {
		return err
	}
	f.series = append(f.series, chart.ContinuousSeries{Name: name, Style: pointStyle(col), XValues: xs, YValues: ys})
	f.scatters++
	return nil
}

// Line adds a polyline through (x, y). NaN pairs are skipped.
func (f *Figure) Line(name string, x, y []float64, col drawing.Color) error {
	xs, ys, err := finitePairs(x, y)
	if err != nil {
		return err
	}
	f.series = append(f.series, chart.ContinuousSeries{Name: name, Style: lineStyle(col), XValues: xs, YValues: ys})
	f.curves++
	return nil
}

// AddLegendEntry appends a row to the legend.
func (f *Figure) AddLegendEntry(e LegendEntry) { f.entries = append(f.entries, e) }

// Scatters reports how many scatter series were added.
func (f *Figure) Scatters() int { return f.scatters }

// Curves reports how many line series were added.
func (f *Figure) Curves() int { return f.curves }

// LegendEntries returns the legend rows in insertion order.
func (f *Figure) LegendEntries() []LegendEntry {
	return append([]LegendEntry(nil), f.entries...)
}

func finitePairs(x, y []float64) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, errs.Shapef("x has %d values, y has %d", len(x), len(y))
	}
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) || math.IsInf(x[i], 0) || math.IsInf(y[i], 0) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys, nil
}

// dataBounds scans all series for the extent of x or y values.
func (f *Figure) dataBounds(useX bool) (float64, float64, bool) {
	lo, hi := math.MaxFloat64, -math.MaxFloat64
	for _, s := range f.series {
		cs, ok := s.(chart.ContinuousSeries)
		if !ok {
			continue
		}
		vals := cs.YValues
		if useX {
			vals = cs.XValues
		}
		for _, v := range vals {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi, lo != math.MaxFloat64
}

// Render draws the figure at its configured size.
func (f *Figure) Render() (image.Image, error) {
	if len(f.series) == 0 {
		return nil, errs.Shapef("figure %q has no series to draw", f.cfg.Title)
	}
	xLo, xHi, okX := f.dataBounds(true)
	yLo, yHi, okY := f.dataBounds(false)
	if !okX || !okY {
		return nil, errs.Shapef("figure %q has no finite points", f.cfg.Title)
	}

	xAxis := chart.XAxis{Name: f.cfg.XLabel}
	xAxis.Range, xAxis.Ticks = axisRange(f.cfg.XLim, xLo, xHi)
	if f.hideXAxis {
		xAxis = chart.XAxis{Style: chart.Style{Hidden: true}, Range: xAxis.Range, Ticks: xAxis.Ticks}
	}
	yAxis := chart.YAxis{Name: f.cfg.YLabel}
	yAxis.Range, yAxis.Ticks = axisRange(f.cfg.YLim, yLo, yHi)

	padTop := 14
	if f.cfg.Title != "" {
		padTop = 36
	}
	padBottom := 16
	if f.hideXAxis {
		padBottom = 4
	}
	padBottom += captionHeight(f.cfg.Hint)
	padRight := 12
	legend := f.cfg.Legend.Placement()
	if legend == config.LegendOutsideRight && len(f.entries) > 0 {
		padRight += legendWidthEstimate(f.entries, f.cfg.Legend.Title) + 16
	}

	ch := chart.Chart{
		Title:      f.cfg.Title,
		Width:      f.cfg.Width,
		Height:     f.cfg.Height,
		Background: chart.Style{Padding: chart.Box{Top: padTop, Left: 16, Right: padRight, Bottom: padBottom}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     f.series,
	}
	if legend != config.LegendNone && len(f.entries) > 0 {
		ch.Elements = []chart.Renderable{drawLegend(f.entries, f.cfg.Legend.Title, legend, f.cfg.Width)}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		logger.Warnf("render %q: %v", f.cfg.Title, err)
		return nil, errs.Shapef("render %q: %v", f.cfg.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, err
	}
	if f.cfg.Hint != "" {
		img = DrawCaption(img, f.cfg.Hint)
	}
	return img, nil
}

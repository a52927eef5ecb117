// Package residuals builds the two-panel diagram of a linear fit: data and
// fit line on top, the fit residuals in a short panel below sharing the x
// range, with one legend covering both panels.
package residuals

import (
	"image"
	"math"
	"time"

	"github.com/28H4/plot-playground/src/colormap"
	"github.com/28H4/plot-playground/src/config"
	"github.com/28H4/plot-playground/src/errs"
	"github.com/28H4/plot-playground/src/figure"
	"github.com/28H4/plot-playground/src/fit"
	"github.com/28H4/plot-playground/src/logging"
	"github.com/28H4/plot-playground/src/sample"
)

var logger = logging.For("residuals")

// Diagram is a fitted data set split over two panels.
type Diagram struct {
	cfg       config.Residuals
	x, y      []float64
	fit       fit.LinearResult
	residuals []float64

	upper *figure.Figure
	lower *figure.Figure
}

// Generate returns the synthetic data set described by cfg:
// y = slope*x + intercept plus Gaussian noise on the integer range.
func Generate(cfg config.Residuals) ([]float64, []float64) {
	x := sample.Arange(cfg.XStart, cfg.XStop)
	return x, sample.Noisy(x, sample.Linear(cfg.Slope, cfg.Intercept), cfg.Sigma, cfg.Seed)
}

// Build fits y over x and lays out both panels.
func Build(x, y []float64, cfg config.Residuals) (*Diagram, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	res, err := fit.LinRegress(x, y)
	if err != nil {
		return nil, err
	}
	resid := fit.Residuals(x, y, res)
	logger.Debugf("slope=%.4f intercept=%.4f r=%.4f p=%.3g", res.Slope, res.Intercept, res.RValue, res.PValue)

	upperH := int(math.Round(float64(cfg.Height) / (1 + cfg.PanelRatio)))
	lowerH := cfg.Height - upperH
	if lowerH < 60 {
		return nil, errs.Configf("figure height %d leaves %dpx for the residual panel", cfg.Height, lowerH)
	}

	// Both panels get the same x range so their points line up.
	xlim := cfg.XLim
	if xlim == nil {
		lo, hi := x[0], x[0]
		for _, v := range x {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		pad := (hi - lo) * 0.05
		xlim = &config.Limits{Min: lo - pad, Max: hi + pad}
	}

	upperCfg := cfg.Figure
	upperCfg.Height = upperH
	upperCfg.XLim = xlim
	upperCfg.XLabel = ""
	upperCfg.Hint = ""

	lowerCfg := config.Figure{
		Width:  cfg.Width,
		Height: lowerH,
		XLabel: cfg.XLabel,
		YLabel: cfg.ResidualYLabel,
		XLim:   xlim,
		YLim:   &config.Limits{Min: cfg.ResidualLim.Min, Max: cfg.ResidualLim.Max},
		Legend: config.Legend{Position: config.LegendNone},
	}

	dataCol, _ := colormap.Named("tab:blue")
	fitCol, _ := colormap.Named("tab:orange")
	residCol, _ := colormap.Named("tab:green")

	d := &Diagram{cfg: cfg, x: x, y: y, fit: res, residuals: resid}
	d.upper = figure.New(upperCfg)
	d.upper.HideXAxis()
	if err := d.upper.Scatter(cfg.DataLabel, x, y, dataCol); err != nil {
		return nil, err
	}
	if err := d.upper.Line(cfg.FitLabel, x, fit.Evaluate(x, res), fitCol); err != nil {
		return nil, err
	}
	d.lower = figure.New(lowerCfg)
	if err := d.lower.Scatter(cfg.ResidualLabel, x, resid, residCol); err != nil {
		return nil, err
	}

	// one legend for both panels, drawn in the upper one
	d.upper.AddLegendEntry(figure.LegendEntry{Name: cfg.DataLabel, Color: dataCol, Marker: true})
	d.upper.AddLegendEntry(figure.LegendEntry{Name: cfg.FitLabel, Color: fitCol, Line: true})
	d.upper.AddLegendEntry(figure.LegendEntry{Name: cfg.ResidualLabel, Color: residCol, Marker: true})
	return d, nil
}

// Fit returns the regression result.
func (d *Diagram) Fit() fit.LinearResult { return d.fit }

// Residuals returns y minus the fitted line, in input order.
func (d *Diagram) Residuals() []float64 { return append([]float64(nil), d.residuals...) }

// Upper returns the data panel.
func (d *Diagram) Upper() *figure.Figure { return d.upper }

// Lower returns the residual panel.
func (d *Diagram) Lower() *figure.Figure { return d.lower }

// Render draws both panels and stacks them into one image of the configured size.
func (d *Diagram) Render() (image.Image, error) {
	defer logger.TimeTrack(time.Now(), "render")
	top, err := d.upper.Render()
	if err != nil {
		return nil, err
	}
	bottom, err := d.lower.Render()
	if err != nil {
		return nil, err
	}
	img := figure.StackVertical(top, bottom)
	if d.cfg.Hint != "" {
		img = figure.DrawCaption(img, d.cfg.Hint)
	}
	return img, nil
}

package mfp

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/28H4/plot-playground/src/config"
	"github.com/28H4/plot-playground/src/errs"
	"github.com/28H4/plot-playground/src/figure"
	"github.com/28H4/plot-playground/src/logging"
)

var logger = logging.For("mfp")

// SecondaryTick is a mean free path tick placed on the pressure axis.
type SecondaryTick struct {
	MeanFreePath float64 // µm
	Pressure     float64 // Pa, where the tick sits
	Label        string
}

// SecondaryTicks returns one tick per power of ten of the mean free path
// whose pressure lies inside [pmin, pmax], ordered by increasing pressure.
func SecondaryTicks(t Transform, pmin, pmax float64) []SecondaryTick {
	if !(pmin > 0) || !(pmax > pmin) {
		return nil
	}
	lo, hi := t.MeanFreePath(pmax), t.MeanFreePath(pmin)
	var ticks []SecondaryTick
	for e := math.Floor(math.Log10(hi)); e >= math.Ceil(math.Log10(lo)); e-- {
		lambda := math.Pow(10, e)
		ticks = append(ticks, SecondaryTick{
			MeanFreePath: lambda,
			Pressure:     t.Pressure(lambda),
			Label:        strconv.FormatFloat(lambda, 'g', -1, 64),
		})
	}
	return ticks
}

// pxToLength converts pixels to plot units at the raster resolution.
func pxToLength(px int) vg.Length {
	return vg.Length(px) * vg.Inch / vgimg.DefaultDPI
}

// Render draws the configured chart: process regions over a logarithmic
// pressure axis, the y axis hidden, and a mean free path axis along the top.
func Render(cfg config.MeanFreePath) (image.Image, error) {
	defer logger.TimeTrack(time.Now(), "render")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tr, err := NewTransform(cfg.Temperature, cfg.CrossSection)
	if err != nil {
		return nil, err
	}
	regions, err := RegionsFromConfig(cfg.Regions)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.HideY()

	var (
		anchors plotter.XYs
		texts   []string
	)
	for _, r := range regions {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: r.X(), Y: r.Y()},
			{X: r.X() + r.Width(), Y: r.Y()},
			{X: r.X() + r.Width(), Y: r.Y() + r.Height()},
			{X: r.X(), Y: r.Y() + r.Height()},
		})
		if err != nil {
			return nil, errs.Shapef("region %q: %v", r.Label(), err)
		}
		poly.Color = r.FillWithAlpha()
		poly.LineStyle.Width = 0
		poly.LineStyle.Color = poly.Color
		p.Add(poly)
		if txt, tx, ty := r.Text(); txt != "" {
			anchors = append(anchors, plotter.XY{X: tx, Y: ty})
			texts = append(texts, txt)
		}
	}
	if len(texts) > 0 {
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: anchors, Labels: texts})
		if err != nil {
			return nil, errs.Shapef("region labels: %v", err)
		}
		p.Add(labels)
	}
	// Fixed limits override the ranges collected from the plotters.
	p.X.Min, p.X.Max = cfg.XLim.Min, cfg.XLim.Max
	p.Y.Min, p.Y.Max = cfg.YLim.Min, cfg.YLim.Max

	canvas := vgimg.New(pxToLength(cfg.Width), pxToLength(cfg.Height))
	dc := draw.New(canvas)
	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())

	tickLen := p.X.Tick.Length
	pad := vg.Points(3)
	tickStyle := p.X.Tick.Label
	tickStyle.XAlign, tickStyle.YAlign = text.XCenter, text.YBottom
	labelStyle := p.X.Label.TextStyle
	labelStyle.XAlign, labelStyle.YAlign = text.XCenter, text.YBottom
	top := tickLen + pad + tickStyle.Height("0") + pad + labelStyle.Height(cfg.SecondaryLabel) + pad

	area := draw.Crop(dc, 0, 0, 0, -top)
	p.Draw(area)
	data := p.DataCanvas(area)
	trX, _ := p.Transforms(&data)

	// secondary axis along the top edge of the data area
	y0 := data.Max.Y
	dc.StrokeLine2(p.X.LineStyle, data.Min.X, y0, data.Max.X, y0)
	ticks := SecondaryTicks(tr, cfg.XLim.Min, cfg.XLim.Max)
	for _, tk := range ticks {
		x := trX(tk.Pressure)
		dc.StrokeLine2(p.X.Tick.LineStyle, x, y0, x, y0+tickLen)
		dc.FillText(tickStyle, vg.Point{X: x, Y: y0 + tickLen + pad}, tk.Label)
	}
	if cfg.SecondaryLabel != "" {
		labelY := y0 + tickLen + pad + tickStyle.Height("0") + pad
		dc.FillText(labelStyle, vg.Point{X: (data.Min.X + data.Max.X) / 2, Y: labelY}, cfg.SecondaryLabel)
	}
	logger.Debugf("%d regions, %d mean free path ticks", len(regions), len(ticks))

	var img image.Image = canvas.Image()
	if cfg.Hint != "" {
		img = figure.DrawCaption(img, cfg.Hint)
	}
	return img, nil
}

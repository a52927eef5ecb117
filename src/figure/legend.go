package figure

import (
	"unicode/utf8"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/28H4/plot-playground/src/config"
)

const (
	legendFontSize = 9.0
	legendPad      = 6
	legendRowGap   = 5
	legendSwatch   = 22
	legendTextGap  = 6
)

// legendWidthEstimate sizes the outside-right gutter before any text can be measured.
func legendWidthEstimate(entries []LegendEntry, title string) int {
	longest := utf8.RuneCountInString(title)
	for _, e := range entries {
		if n := utf8.RuneCountInString(e.Name); n > longest {
			longest = n
		}
	}
	return 2*legendPad + legendSwatch + legendTextGap + longest*7
}

// drawLegend renders the legend box at one of the config.Legend* placements.
func drawLegend(entries []LegendEntry, title, placement string, chartWidth int) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		if defaults.Font != nil {
			r.SetFont(defaults.Font)
		}
		r.SetFontSize(legendFontSize)
		r.SetFontColor(chart.DefaultTextColor)

		textW, rowH := 0, 0
		measure := func(s string) {
			tb := r.MeasureText(s)
			if tb.Width() > textW {
				textW = tb.Width()
			}
			if tb.Height() > rowH {
				rowH = tb.Height()
			}
		}
		if title != "" {
			measure(title)
		}
		for _, e := range entries {
			measure(e.Name)
		}
		rows := len(entries)
		if title != "" {
			rows++
		}
		w := 2*legendPad + legendSwatch + legendTextGap + textW
		h := 2*legendPad + rows*rowH + (rows-1)*legendRowGap

		const margin = 8
		var left, top int
		switch placement {
		case config.LegendUpperRight:
			left, top = cb.Right-w-margin, cb.Top+margin
		case config.LegendLowerLeft:
			left, top = cb.Left+margin, cb.Bottom-h-margin
		case config.LegendLowerRight:
			left, top = cb.Right-w-margin, cb.Bottom-h-margin
		case config.LegendOutsideRight:
			left, top = chartWidth-w-margin, cb.Top
		default:
			left, top = cb.Left+margin, cb.Top+margin
		}
		box := chart.Box{Top: top, Left: left, Right: left + w, Bottom: top + h}
		chart.Draw.Box(r, box, chart.Style{
			FillColor:   drawing.ColorWhite.WithAlpha(230),
			StrokeColor: drawing.ColorFromHex("cccccc"),
			StrokeWidth: 1,
		})

		r.SetFontColor(chart.DefaultTextColor)
		y := top + legendPad
		if title != "" {
			tb := r.MeasureText(title)
			r.Text(title, left+(w-tb.Width())/2, y+rowH)
			y += rowH + legendRowGap
		}
		for _, e := range entries {
			mid := y + rowH/2
			sx := left + legendPad
			if e.Line {
				r.SetStrokeColor(e.Color)
				r.SetStrokeWidth(1.5)
				r.SetStrokeDashArray(nil)
				r.MoveTo(sx, mid)
				r.LineTo(sx+legendSwatch, mid)
				r.Stroke()
			}
			if e.Marker {
				r.SetFillColor(e.Color)
				r.SetStrokeColor(e.Color)
				r.SetStrokeWidth(1)
				r.Circle(DotWidth-1, sx+legendSwatch/2, mid)
				r.FillStroke()
			}
			r.SetFontColor(chart.DefaultTextColor)
			r.Text(e.Name, sx+legendSwatch+legendTextGap, y+rowH)
			y += rowH + legendRowGap
		}
	}
}

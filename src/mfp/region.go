package mfp

import (
	"fmt"
	"image/color"

	"github.com/28H4/plot-playground/src/colormap"
	"github.com/28H4/plot-playground/src/config"
	"github.com/28H4/plot-playground/src/errs"
)

// Region is a translucent rectangle in data coordinates (pressure, row)
// marking the typical operating range of one process. It cannot be changed
// after NewRegion.
type Region struct {
	label         string
	x, y          float64
	width, height float64
	alpha         float64
	fill          color.NRGBA

	text         string
	textX, textY float64
}

// NewRegion validates and builds a region. x must be positive because the
// pressure axis is logarithmic.
func NewRegion(label string, x, y, width, height, alpha float64, fill color.Color) (Region, error) {
	switch {
	case !(width > 0) || !(height > 0):
		return Region{}, errs.Configf("region %q: size %gx%g must be positive", label, width, height)
	case !(x > 0):
		return Region{}, errs.Configf("region %q: x %g must be positive on a log axis", label, x)
	case alpha < 0 || alpha > 1:
		return Region{}, errs.Configf("region %q: alpha %g outside [0, 1]", label, alpha)
	case fill == nil:
		return Region{}, errs.Configf("region %q: fill color is required", label)
	}
	return Region{
		label:  label,
		x:      x,
		y:      y,
		width:  width,
		height: height,
		alpha:  alpha,
		fill:   color.NRGBAModel.Convert(fill).(color.NRGBA),
	}, nil
}

// WithText returns a copy of r carrying a text label anchored at (x, y).
func (r Region) WithText(text string, x, y float64) Region {
	r.text, r.textX, r.textY = text, x, y
	return r
}

func (r Region) Label() string     { return r.label }
func (r Region) X() float64        { return r.x }
func (r Region) Y() float64        { return r.y }
func (r Region) Width() float64    { return r.width }
func (r Region) Height() float64   { return r.height }
func (r Region) Alpha() float64    { return r.alpha }
func (r Region) Fill() color.Color { return r.fill }

// Text returns the annotation and its anchor.
func (r Region) Text() (string, float64, float64) { return r.text, r.textX, r.textY }

// FillWithAlpha is the fill color with the region's alpha applied.
func (r Region) FillWithAlpha() color.NRGBA {
	c := r.fill
	c.A = uint8(r.alpha*255 + 0.5)
	return c
}

// RegionsFromConfig builds regions from their YAML description.
func RegionsFromConfig(specs []config.Region) ([]Region, error) {
	out := make([]Region, 0, len(specs))
	for _, s := range specs {
		fill, err := colormap.Named(s.Color)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", s.Name, err)
		}
		r, err := NewRegion(s.Name, s.X, s.Y, s.Width, s.Height, s.Alpha, fill)
		if err != nil {
			return nil, err
		}
		if s.Text != "" {
			if !(s.TextX > 0) {
				return nil, errs.Configf("region %q: text x %g must be positive on a log axis", s.Name, s.TextX)
			}
			r = r.WithText(s.Text, s.TextX, s.TextY)
		}
		out = append(out, r)
	}
	return out, nil
}

// DefaultRegions returns the PVD, ICP, CCP and CVD process windows.
func DefaultRegions() []Region {
	regions, _ := RegionsFromConfig(config.DefaultMeanFreePath().Regions)
	return regions
}

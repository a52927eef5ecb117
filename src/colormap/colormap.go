// Package colormap provides continuous color schemes and the evenly spaced
// color cycles drawn from them.
package colormap

import (
	"math"
	"sort"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/28H4/plot-playground/src/errs"
)

// Default is the perceptually uniform map used when none is configured.
const Default = "viridis"

// Colormap maps normalized values [0, 1] to colors.
type Colormap interface {
	At(t float64) drawing.Color
}

// Linear interpolates between evenly spaced color stops.
type Linear struct {
	stops []drawing.Color
}

// At returns the color at position t; values outside [0, 1] are clamped.
func (c Linear) At(t float64) drawing.Color {
	if t <= 0 || math.IsNaN(t) {
		return c.stops[0]
	}
	if t >= 1 {
		return c.stops[len(c.stops)-1]
	}
	idx := t * float64(len(c.stops)-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= len(c.stops) {
		upper = len(c.stops) - 1
	}
	return interpolate(c.stops[lower], c.stops[upper], idx-float64(lower))
}

func interpolate(c1, c2 drawing.Color, t float64) drawing.Color {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
	}
	return drawing.Color{R: mix(c1.R, c2.R), G: mix(c1.G, c2.G), B: mix(c1.B, c2.B), A: 255}
}

var registry = map[string]Colormap{
	"viridis": Linear{stops: []drawing.Color{
		{R: 68, G: 1, B: 84, A: 255},
		{R: 72, G: 35, B: 116, A: 255},
		{R: 64, G: 67, B: 135, A: 255},
		{R: 52, G: 94, B: 141, A: 255},
		{R: 41, G: 120, B: 142, A: 255},
		{R: 32, G: 144, B: 140, A: 255},
		{R: 34, G: 167, B: 132, A: 255},
		{R: 68, G: 190, B: 112, A: 255},
		{R: 121, G: 209, B: 81, A: 255},
		{R: 189, G: 222, B: 38, A: 255},
		{R: 253, G: 231, B: 37, A: 255},
	}},
	"plasma": Linear{stops: []drawing.Color{
		{R: 13, G: 8, B: 135, A: 255},
		{R: 75, G: 3, B: 161, A: 255},
		{R: 125, G: 3, B: 168, A: 255},
		{R: 168, G: 34, B: 150, A: 255},
		{R: 203, G: 70, B: 121, A: 255},
		{R: 229, G: 107, B: 93, A: 255},
		{R: 248, G: 148, B: 65, A: 255},
		{R: 253, G: 195, B: 40, A: 255},
		{R: 240, G: 249, B: 33, A: 255},
	}},
	"inferno": Linear{stops: []drawing.Color{
		{R: 0, G: 0, B: 4, A: 255},
		{R: 40, G: 11, B: 84, A: 255},
		{R: 101, G: 21, B: 110, A: 255},
		{R: 159, G: 42, B: 99, A: 255},
		{R: 212, G: 72, B: 66, A: 255},
		{R: 245, G: 125, B: 21, A: 255},
		{R: 250, G: 193, B: 39, A: 255},
		{R: 252, G: 255, B: 164, A: 255},
	}},
	"magma": Linear{stops: []drawing.Color{
		{R: 0, G: 0, B: 4, A: 255},
		{R: 28, G: 16, B: 68, A: 255},
		{R: 79, G: 18, B: 123, A: 255},
		{R: 129, G: 37, B: 129, A: 255},
		{R: 181, G: 54, B: 122, A: 255},
		{R: 229, G: 80, B: 100, A: 255},
		{R: 251, G: 135, B: 97, A: 255},
		{R: 254, G: 194, B: 135, A: 255},
		{R: 252, G: 253, B: 191, A: 255},
	}},
	"cividis": Linear{stops: []drawing.Color{
		{R: 0, G: 34, B: 78, A: 255},
		{R: 35, G: 62, B: 108, A: 255},
		{R: 87, G: 92, B: 109, A: 255},
		{R: 124, G: 123, B: 120, A: 255},
		{R: 166, G: 157, B: 117, A: 255},
		{R: 211, G: 193, B: 100, A: 255},
		{R: 254, G: 232, B: 56, A: 255},
	}},
	"greys": Linear{stops: []drawing.Color{
		{R: 255, G: 255, B: 255, A: 255},
		{R: 0, G: 0, B: 0, A: 255},
	}},
}

// Lookup returns the registered colormap with the given (case-insensitive) name.
// An empty name selects Default.
func Lookup(name string) (Colormap, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = Default
	}
	cm, ok := registry[key]
	if !ok {
		return nil, errs.Configf("unknown colormap %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return cm, nil
}

// Names lists the registered colormaps in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Colors picks n colors evenly spaced along cm: color i is cm.At(i/n).
// The assignment depends only on the index, never on the data.
func Colors(cm Colormap, n int) []drawing.Color {
	if n <= 0 {
		return nil
	}
	out := make([]drawing.Color, n)
	for i := range out {
		out[i] = cm.At(float64(i) / float64(n))
	}
	return out
}

// ColorsByName is Lookup followed by Colors.
func ColorsByName(name string, n int) ([]drawing.Color, error) {
	cm, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return Colors(cm, n), nil
}

var named = map[string]drawing.Color{
	"black":  {R: 0, G: 0, B: 0, A: 255},
	"white":  {R: 255, G: 255, B: 255, A: 255},
	"red":    {R: 255, G: 0, B: 0, A: 255},
	"green":  {R: 0, G: 128, B: 0, A: 255},
	"blue":   {R: 0, G: 0, B: 255, A: 255},
	"orange": {R: 255, G: 165, B: 0, A: 255},
	"purple": {R: 128, G: 0, B: 128, A: 255},
	"gray":   {R: 128, G: 128, B: 128, A: 255},
	"grey":   {R: 128, G: 128, B: 128, A: 255},
	// matplotlib's default cycle colors
	"tab:blue":   {R: 31, G: 119, B: 180, A: 255},
	"tab:orange": {R: 255, G: 127, B: 14, A: 255},
	"tab:green":  {R: 44, G: 160, B: 44, A: 255},
	"tab:red":    {R: 214, G: 39, B: 40, A: 255},
}

// Named resolves a color name ("green", "tab:blue") or a hex string ("#1f77b4").
func Named(name string) (drawing.Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := named[key]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(key, "#")
	if len(hex) == 6 && isHex(hex) {
		return drawing.ColorFromHex(hex), nil
	}
	return drawing.Color{}, errs.Configf("unknown color %q", name)
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

package figure

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// StackVertical places the panels top to bottom on a white canvas as wide as the widest one.
func StackVertical(panels ...image.Image) image.Image {
	w, h := 0, 0
	for _, p := range panels {
		if p == nil {
			continue
		}
		b := p.Bounds()
		if b.Dx() > w {
			w = b.Dx()
		}
		h += b.Dy()
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	y := 0
	for _, p := range panels {
		if p == nil {
			continue
		}
		b := p.Bounds()
		draw.Draw(out, image.Rect(0, y, b.Dx(), y+b.Dy()), p, b.Min, draw.Over)
		y += b.Dy()
	}
	return out
}

const captionMargin, captionPad = 4, 3

// captionHeight is the space DrawCaption takes from the bottom of a figure.
func captionHeight(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	n := len(strings.Split(strings.TrimRight(text, "\n"), "\n"))
	return n*basicfont.Face7x13.Metrics().Height.Ceil() + 2*captionPad + captionMargin
}

// DrawCaption writes text in the bottom-left corner of a copy of img. Each
// line of text gets its own row on a light band so it stays readable over
// grid lines and data.
func DrawCaption(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	lineH := face.Metrics().Height.Ceil()
	dr := &font.Drawer{Dst: out, Src: image.NewUniform(color.RGBA{R: 51, G: 51, B: 51, A: 255}), Face: face}
	width := 0
	for _, l := range lines {
		if w := dr.MeasureString(l).Ceil(); w > width {
			width = w
		}
	}
	band := image.Rect(b.Min.X+captionMargin, b.Max.Y-captionHeight(text), b.Min.X+captionMargin+width+2*captionPad, b.Max.Y-captionMargin)
	draw.Draw(out, band, image.NewUniform(color.NRGBA{R: 245, G: 245, B: 245, A: 230}), image.Point{}, draw.Over)

	ascent := face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		dr.Dot = fixed.P(band.Min.X+captionPad, band.Min.Y+captionPad+i*lineH+ascent)
		dr.DrawString(l)
	}
	return out
}

// Blank returns a plain white image, used when there is nothing to draw yet.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// SavePNG encodes img to path, creating parent directories.
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

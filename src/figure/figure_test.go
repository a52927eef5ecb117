package figure

import (
	"errors"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/28H4/plot-playground/src/config"
	"github.com/28H4/plot-playground/src/errs"
)

func testConfig() config.Figure {
	return config.Figure{
		Title:  "test",
		Width:  400,
		Height: 300,
		XLabel: "x",
		YLabel: "y",
		Legend: config.Legend{Position: config.LegendUpperLeft, Title: "series"},
	}
}

func TestRenderSizeAndCounts(t *testing.T) {
	f := New(testConfig())
	x := []float64{0, 1, 2, 3}
	if err := f.Scatter("pts", x, []float64{0, 1, 4, 9}, f.NextColor()); err != nil {
		t.Fatalf("Scatter: %v", err)
	}
	if err := f.Line("fit", x, []float64{0, 1.1, 3.9, 9.2}, f.NextColor()); err != nil {
		t.Fatalf("Line: %v", err)
	}
	f.AddLegendEntry(LegendEntry{Name: "pts", Marker: true})
	f.AddLegendEntry(LegendEntry{Name: "fit", Line: true})
	if f.Scatters() != 1 || f.Curves() != 1 || len(f.LegendEntries()) != 2 {
		t.Fatalf("counts: scatters=%d curves=%d legend=%d", f.Scatters(), f.Curves(), len(f.LegendEntries()))
	}
	img, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("size = %v, want 400x300", b)
	}
}

func TestRenderWithLimitsAndOutsideLegend(t *testing.T) {
	cfg := testConfig()
	cfg.XLim = &config.Limits{Min: 0, Max: 31}
	cfg.YLim = &config.Limits{Min: 0, Max: 8000}
	cfg.Legend.Position = config.LegendOutsideRight
	cfg.Hint = "hint"
	f := New(cfg)
	if err := f.Scatter("a", []float64{1, 2, math.NaN()}, []float64{10, 7000, 3}, drawing.ColorBlue); err != nil {
		t.Fatalf("Scatter: %v", err)
	}
	f.AddLegendEntry(LegendEntry{Name: "A", Color: drawing.ColorBlue, Line: true, Marker: true})
	if _, err := f.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestShapeErrors(t *testing.T) {
	f := New(testConfig())
	if err := f.Scatter("bad", []float64{1, 2}, []float64{1}, drawing.ColorBlack); !errors.Is(err, errs.ErrShape) {
		t.Fatalf("expected shape error, got %v", err)
	}
	if _, err := f.Render(); !errors.Is(err, errs.ErrShape) {
		t.Fatalf("empty figure should not render, got %v", err)
	}
}

func TestColorCycleWraps(t *testing.T) {
	f := New(testConfig())
	f.SetColorCycle([]drawing.Color{drawing.ColorRed, drawing.ColorGreen})
	got := []drawing.Color{f.NextColor(), f.NextColor(), f.NextColor()}
	if !got[0].Equals(drawing.ColorRed) || !got[1].Equals(drawing.ColorGreen) || !got[2].Equals(drawing.ColorRed) {
		t.Fatalf("unexpected cycle %v", got)
	}
}

func TestTicksPinLimits(t *testing.T) {
	ticks := ticksWithin(0, 31, tickTarget)
	if ticks[0].Value != 0 || ticks[len(ticks)-1].Value != 31 {
		t.Fatalf("ticks do not span limits: %v", ticks)
	}
	if ticks[len(ticks)-1].Label != "" {
		t.Fatalf("off-grid limit should be unlabeled: %+v", ticks[len(ticks)-1])
	}
	for _, tk := range ticks {
		if tk.Value < 0 || tk.Value > 31 {
			t.Fatalf("tick outside limits: %v", tk)
		}
	}
}

func TestGridTicks(t *testing.T) {
	got := gridTicks(0, 1, tickTarget)
	want := []float64{0, 0.2, 0.4, 0.6, 0.8, 1}
	if len(got) != len(want) {
		t.Fatalf("gridTicks(0, 1) = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("gridTicks(0, 1)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if got := gridTicks(-6, 6, tickTarget); got[0] != -6 || got[len(got)-1] != 6 {
		t.Fatalf("gridTicks(-6, 6) = %v", got)
	}
	if gridTicks(3, 3, tickTarget) != nil {
		t.Fatalf("empty span should give no ticks")
	}
}

func TestPaddedBounds(t *testing.T) {
	if lo, hi := paddedBounds(0, 10); lo != -2 || hi != 12 {
		t.Fatalf("paddedBounds(0, 10) = %v, %v", lo, hi)
	}
	if lo, hi := paddedBounds(5, 5); !(lo < 5 && hi > 5) {
		t.Fatalf("flat data should still get a span: %v, %v", lo, hi)
	}
}

func TestFormatNumericTick(t *testing.T) {
	cases := map[float64]string{0: "0", 5: "5", 2.5: "2.5", 8000: "8000", -6: "-6", 12.5: "12.5"}
	for v, want := range cases {
		if got := FormatNumericTick(v); got != want {
			t.Fatalf("FormatNumericTick(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestStackVertical(t *testing.T) {
	top := Blank(100, 60)
	bottom := Blank(80, 20)
	out := StackVertical(top, bottom)
	if b := out.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Fatalf("stacked size = %v", b)
	}
}

func TestDrawCaptionKeepsSize(t *testing.T) {
	img := DrawCaption(Blank(200, 50), "Hint: test")
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 50 {
		t.Fatalf("hint changed size: %v", b)
	}
	if DrawCaption(nil, "x") != nil {
		t.Fatalf("nil image should pass through")
	}
}

func TestDrawCaptionMultiLine(t *testing.T) {
	img := DrawCaption(Blank(200, 50), "seed 7\nsigma 3")
	white := func(x, y int) bool {
		r, g, b, _ := img.At(x, y).RGBA()
		return r == 0xffff && g == 0xffff && b == 0xffff
	}
	// two 13px rows plus padding sit above the 4px bottom margin
	if white(5, 44) || white(5, 16) {
		t.Fatalf("caption band missing in the bottom-left corner")
	}
	if !white(199, 0) || !white(5, 2) {
		t.Fatalf("caption painted outside its band")
	}
}

func TestSavePNG(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out", "blank.png")
	if err := SavePNG(p, Blank(10, 10)); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	fh, err := os.Open(p)
	if err != nil {
		t.Fatal(err)
	}
	defer fh.Close()
	cfg, err := png.DecodeConfig(fh)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 10 || cfg.Height != 10 {
		t.Fatalf("saved size %dx%d", cfg.Width, cfg.Height)
	}
	var _ image.Image = Blank(1, 1)
}

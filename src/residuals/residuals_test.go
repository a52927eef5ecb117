package residuals

import (
	"errors"
	"math"
	"testing"

	"github.com/28H4/plot-playground/src/config"
	"github.com/28H4/plot-playground/src/errs"
)

func TestGenerateRecoversLine(t *testing.T) {
	cfg := config.DefaultResiduals()
	cfg.Sigma = 1
	cfg.Seed = 2024
	x, y := Generate(cfg)
	if len(x) != 21 || x[0] != -10 || x[20] != 10 {
		t.Fatalf("unexpected x support %v", x)
	}
	d, err := Build(x, y, cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if f := d.Fit(); math.Abs(f.Slope-4) > 0.5 || math.Abs(f.Intercept) > 1 {
		t.Fatalf("fit slope=%v intercept=%v", f.Slope, f.Intercept)
	}
	sum := 0.0
	for _, r := range d.Residuals() {
		sum += r
	}
	if math.Abs(sum) > 1e-9 {
		t.Fatalf("residuals sum to %v", sum)
	}
}

func TestDefaultsRecoverLine(t *testing.T) {
	cfg := config.DefaultResiduals()
	x, y := Generate(cfg)
	d, err := Build(x, y, cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if f := d.Fit(); math.Abs(f.Slope-4) > 0.5 || math.Abs(f.Intercept) > 1 {
		t.Fatalf("default seed %d: slope=%v intercept=%v", cfg.Seed, f.Slope, f.Intercept)
	}
}

func TestBuildPanelsAndLegend(t *testing.T) {
	cfg := config.DefaultResiduals()
	x, y := Generate(cfg)
	d, err := Build(x, y, cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Upper().Scatters() != 1 || d.Upper().Curves() != 1 || d.Lower().Scatters() != 1 {
		t.Fatalf("panels: upper %d/%d lower %d", d.Upper().Scatters(), d.Upper().Curves(), d.Lower().Scatters())
	}
	entries := d.Upper().LegendEntries()
	want := []string{cfg.DataLabel, cfg.FitLabel, cfg.ResidualLabel}
	if len(entries) != len(want) {
		t.Fatalf("combined legend has %d entries", len(entries))
	}
	for i, e := range entries {
		if e.Name != want[i] {
			t.Fatalf("legend entry %d = %q, want %q", i, e.Name, want[i])
		}
	}
	if len(d.Lower().LegendEntries()) != 0 {
		t.Fatalf("lower panel should not carry its own legend")
	}
	upper, lower := d.Upper().Config(), d.Lower().Config()
	if *upper.XLim != *lower.XLim {
		t.Fatalf("panels do not share the x range: %v vs %v", *upper.XLim, *lower.XLim)
	}
	if lower.YLim.Min != -6 || lower.YLim.Max != 6 {
		t.Fatalf("residual range %v", *lower.YLim)
	}
}

func TestRenderSize(t *testing.T) {
	cfg := config.DefaultResiduals()
	x, y := Generate(cfg)
	d, err := Build(x, y, cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	img, err := d.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != cfg.Width || b.Dy() != cfg.Height {
		t.Fatalf("image %v, want %dx%d", b, cfg.Width, cfg.Height)
	}
}

func TestBuildErrors(t *testing.T) {
	cfg := config.DefaultResiduals()
	if _, err := Build([]float64{1, 2, 3}, []float64{1, 2}, cfg); !errors.Is(err, errs.ErrShape) {
		t.Fatalf("expected shape error, got %v", err)
	}
	if _, err := Build([]float64{1}, []float64{1}, cfg); !errors.Is(err, errs.ErrFit) {
		t.Fatalf("expected fit error, got %v", err)
	}
	cfg.Height = 100
	if _, err := Build([]float64{1, 2, 3}, []float64{1, 2, 3}, cfg); !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("expected configuration error for a tiny figure, got %v", err)
	}
}

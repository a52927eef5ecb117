package report

import (
	"strings"
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/28H4/plot-playground/src/fit"
	"github.com/28H4/plot-playground/src/multifit"
)

func TestFitSummary(t *testing.T) {
	out := FitSummary("linear fit", fit.LinearResult{Slope: 4.01, Intercept: -0.2, RValue: 0.99, PValue: 1e-12, StdErr: 0.05, N: 21})
	for _, want := range []string{"linear fit", "slope", "4.0100", "intercept", "-0.2000", "points", "21"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSeriesTable(t *testing.T) {
	reports := []multifit.SeriesReport{
		{Label: "10EV", Points: 21, Degree: 1},
		{Label: "20EV", Points: 3, Degree: 1, Fallback: true},
		{Label: "50EV", Points: 21, Degree: 3},
	}
	out := SeriesTable("Ion flux", reports, []drawing.Color{drawing.ColorRed, drawing.ColorGreen})
	for _, want := range []string{"Ion flux", "10EV", "20EV", "50EV", "1*", "too few points"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(out, "\n")
	// border + title + header + 3 rows + footnote + border
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d:\n%s", len(lines), out)
	}
}

func TestHex(t *testing.T) {
	if got := hex(drawing.Color{R: 68, G: 1, B: 84, A: 255}); got != "#440154" {
		t.Fatalf("hex = %q", got)
	}
}

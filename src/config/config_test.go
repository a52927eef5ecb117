package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/28H4/plot-playground/src/errs"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "plot.yaml")
	if err := os.WriteFile(p, []byte(strings.TrimSpace(body)+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDefaultsValidate(t *testing.T) {
	for name, v := range map[string]Validator{
		"residuals":    DefaultResiduals(),
		"multifit":     DefaultMultiFit(),
		"meanfreepath": DefaultMeanFreePath(),
	} {
		if err := v.Validate(); err != nil {
			t.Fatalf("%s defaults invalid: %v", name, err)
		}
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	p := writeYAML(t, `
title: Custom
colormap: plasma
legend:
  position: upper-right
data:
  file: other.txt
  x_scale: 1
fit:
  samples: 120
`)
	cfg := DefaultMultiFit()
	if err := Load(p, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "Custom" || cfg.Colormap != "plasma" || cfg.Legend.Position != LegendUpperRight {
		t.Fatalf("figure overlay not applied: %+v", cfg.Figure)
	}
	if cfg.Data.File != "other.txt" || cfg.Data.XScale != 1 || cfg.Fit.Samples != 120 {
		t.Fatalf("nested overlay not applied: %+v %+v", cfg.Data, cfg.Fit)
	}
	// untouched keys keep their defaults
	if cfg.Fit.Degree != 3 || cfg.Data.SkipHeader != 2 || cfg.YLim == nil || cfg.YLim.Max != 8000 {
		t.Fatalf("defaults lost: %+v %+v %+v", cfg.Fit, cfg.Data, cfg.YLim)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"colormap", "colormap: rainbow-ish"},
		{"legend", "legend:\n  position: middle"},
		{"degree", "fit:\n  degree: 2"},
		{"samples", "fit:\n  samples: 1"},
		{"limits", "xlim:\n  min: 5\n  max: 1"},
		{"size", "width: 0"},
		{"unknown key", "colour: red"},
	}
	for _, c := range cases {
		cfg := DefaultMultiFit()
		err := Load(writeYAML(t, c.body), &cfg)
		if !errors.Is(err, errs.ErrConfiguration) {
			t.Fatalf("%s: expected configuration error, got %v", c.name, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg := DefaultResiduals()
	err := Load(filepath.Join(t.TempDir(), "missing.yaml"), &cfg)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestResidualsValidation(t *testing.T) {
	cfg := DefaultResiduals()
	cfg.PanelRatio = 0
	if err := cfg.Validate(); !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("panel ratio 0 accepted: %v", err)
	}
	cfg = DefaultResiduals()
	cfg.XStop = cfg.XStart + 1
	if err := cfg.Validate(); !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("single-point range accepted: %v", err)
	}
}

func TestMeanFreePathValidation(t *testing.T) {
	cfg := DefaultMeanFreePath()
	cfg.XLim = &Limits{Min: 0, Max: 10}
	if err := cfg.Validate(); !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("non-positive log limit accepted: %v", err)
	}
	cfg = DefaultMeanFreePath()
	cfg.Temperature = -1
	if err := cfg.Validate(); !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("negative temperature accepted: %v", err)
	}
	if len(DefaultMeanFreePath().Regions) != 4 {
		t.Fatalf("expected the four process regions")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	out, err := Marshal(DefaultMeanFreePath())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, want := range []string{"temperature: 400", "secondary_label:", "PE-CVD"} {
		if !strings.Contains(out, want) {
			t.Fatalf("marshalled config missing %q:\n%s", want, out)
		}
	}
}

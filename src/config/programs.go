package config

import (
	"github.com/28H4/plot-playground/src/errs"
)

// Residuals configures the scatter/fit/residuals diagram.
type Residuals struct {
	Figure `yaml:",inline"`

	// Synthetic data: y = Slope*x + Intercept + N(0, Sigma) on x = XStart..XStop-1.
	Slope     float64 `yaml:"slope"`
	Intercept float64 `yaml:"intercept"`
	Sigma     float64 `yaml:"sigma"`
	Seed      uint64  `yaml:"seed"`
	XStart    int     `yaml:"x_start"`
	XStop     int     `yaml:"x_stop"`

	DataLabel     string `yaml:"data_label"`
	FitLabel      string `yaml:"fit_label"`
	ResidualLabel string `yaml:"residual_label"`
	// ResidualYLabel is the y-axis name of the lower panel.
	ResidualYLabel string `yaml:"residual_ylabel"`
	// ResidualLim is the fixed, symmetric y-range of the lower panel.
	ResidualLim Limits `yaml:"residual_lim"`
	// PanelRatio is the lower panel height relative to the upper one.
	PanelRatio float64 `yaml:"panel_ratio"`
}

// DefaultResiduals mirrors the classic example: 4x with sigma 3 noise on -10..10.
func DefaultResiduals() Residuals {
	return Residuals{
		Figure: Figure{
			Width:  640,
			Height: 480,
			XLabel: "x label [a.u.]",
			YLabel: "y label [a.u.]",
			Legend: Legend{Position: LegendUpperLeft},
		},
		Slope:          4,
		Intercept:      0,
		Sigma:          3,
		Seed:           20210633,
		XStart:         -10,
		XStop:          11,
		DataLabel:      "noisy data",
		FitLabel:       "linear fit",
		ResidualLabel:  "residues",
		ResidualYLabel: "residues [a.u.]",
		ResidualLim:    Limits{Min: -6, Max: 6},
		PanelRatio:     0.3,
	}
}

// Validate implements Validator.
func (r Residuals) Validate() error {
	if err := r.Figure.Validate(); err != nil {
		return err
	}
	if r.XStop-r.XStart < 2 {
		return errs.Configf("x range %d..%d needs at least 2 points", r.XStart, r.XStop)
	}
	if r.Sigma < 0 {
		return errs.Configf("noise sigma %g must not be negative", r.Sigma)
	}
	if err := r.ResidualLim.validate("residual"); err != nil {
		return err
	}
	if r.PanelRatio <= 0 || r.PanelRatio > 1 {
		return errs.Configf("panel ratio %g must be in (0, 1]", r.PanelRatio)
	}
	return nil
}

// Data describes the multi-series input file.
type Data struct {
	File string `yaml:"file"`
	// HeaderLine is the 0-based line holding the column labels.
	HeaderLine int `yaml:"header_line"`
	// SkipHeader lines are ignored before numeric parsing starts.
	SkipHeader int    `yaml:"skip_header"`
	Uppercase  bool   `yaml:"uppercase"`
	Delimiter  string `yaml:"delimiter,omitempty"`
	// XScale multiplies the x column (e.g. 1e3 for mm -> µm).
	XScale float64 `yaml:"x_scale"`
}

// Fit is the smoothing policy of the multi-series plotter.
type Fit struct {
	Degree  int `yaml:"degree"`
	Samples int `yaml:"samples"`
	// LinearBelow switches a series to a linear fit when its last y value is below it.
	LinearBelow *float64 `yaml:"linear_below,omitempty"`
}

// MultiFit configures the multi-series scatter + spline plotter.
type MultiFit struct {
	Figure `yaml:",inline"`
	Data   Data `yaml:"data"`
	Fit    Fit  `yaml:"fit"`
}

// DefaultMultiFit reproduces the ion flux example figure.
func DefaultMultiFit() MultiFit {
	tail := 10.0
	return MultiFit{
		Figure: Figure{
			Title:    "Interaction of the ions with the side walls",
			Width:    800,
			Height:   480,
			XLabel:   "Height in hole [µm]",
			YLabel:   "Number of Ions",
			XLim:     &Limits{Min: 0, Max: 31},
			YLim:     &Limits{Min: 0, Max: 8000},
			Legend:   Legend{Position: LegendOutsideRight, Title: "Ion flux"},
			Colormap: "viridis",
		},
		Data: Data{
			File:       "example_data.pid",
			HeaderLine: 0,
			SkipHeader: 2,
			Uppercase:  true,
			XScale:     1e3,
		},
		Fit: Fit{
			Degree:      3,
			Samples:     50,
			LinearBelow: &tail,
		},
	}
}

// Validate implements Validator.
func (m MultiFit) Validate() error {
	if err := m.Figure.Validate(); err != nil {
		return err
	}
	if m.Data.File == "" {
		return errs.Configf("data file is required")
	}
	if m.Data.HeaderLine < 0 || m.Data.SkipHeader < 0 {
		return errs.Configf("header line %d / skip header %d must not be negative", m.Data.HeaderLine, m.Data.SkipHeader)
	}
	if m.Data.XScale == 0 {
		return errs.Configf("x scale must not be zero")
	}
	if m.Fit.Degree != 1 && m.Fit.Degree != 3 {
		return errs.Configf("spline degree must be 1 or 3, got %d", m.Fit.Degree)
	}
	if m.Fit.Samples < 2 {
		return errs.Configf("spline samples must be at least 2, got %d", m.Fit.Samples)
	}
	return nil
}

// Region is a labeled rectangle of the reference chart, in data coordinates.
type Region struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Alpha  float64 `yaml:"alpha"`
	Color  string  `yaml:"color"`
	Text   string  `yaml:"text"`
	TextX  float64 `yaml:"text_x"`
	TextY  float64 `yaml:"text_y"`
}

// MeanFreePath configures the dual-axis pressure / mean free path chart.
type MeanFreePath struct {
	Figure `yaml:",inline"`
	// Temperature in kelvin.
	Temperature float64 `yaml:"temperature"`
	// CrossSection is the collision cross section in m².
	CrossSection   float64  `yaml:"cross_section"`
	SecondaryLabel string   `yaml:"secondary_label"`
	Regions        []Region `yaml:"regions"`
}

// DefaultMeanFreePath returns the plasma application overview chart.
func DefaultMeanFreePath() MeanFreePath {
	const alpha, text = 0.2, 0.25
	return MeanFreePath{
		Figure: Figure{
			Width:  700,
			Height: 250,
			XLabel: "Pressure [Pa]",
			XLim:   &Limits{Min: 0.01, Max: 1000},
			YLim:   &Limits{Min: -0.1, Max: 4.1},
			Legend: Legend{Position: LegendNone},
		},
		Temperature:    400,
		CrossSection:   1e-18,
		SecondaryLabel: "Mean free path [µm]",
		Regions: []Region{
			{Name: "PVD", X: 0.05, Y: 0, Width: 3.95, Height: 0.9, Alpha: alpha, Color: "green", Text: "PVD", TextX: 0.3, TextY: text},
			{Name: "ICP", X: 0.5, Y: 1, Width: 9.5, Height: 0.9, Alpha: alpha, Color: "green", Text: "dry etching (ICP)", TextX: 0.7, TextY: 1 + text},
			{Name: "CCP", X: 1, Y: 2, Width: 49, Height: 0.9, Alpha: alpha, Color: "green", Text: "dry etching (CCP)", TextX: 2, TextY: 2 + text},
			{Name: "CVD", X: 100, Y: 3, Width: 700, Height: 0.9, Alpha: alpha, Color: "green", Text: "PE-CVD", TextX: 170, TextY: 3 + text},
		},
	}
}

// Validate implements Validator.
func (m MeanFreePath) Validate() error {
	if err := m.Figure.Validate(); err != nil {
		return err
	}
	if m.Temperature <= 0 {
		return errs.Configf("temperature %g K must be positive", m.Temperature)
	}
	if m.CrossSection <= 0 {
		return errs.Configf("cross section %g m² must be positive", m.CrossSection)
	}
	if m.XLim == nil || m.XLim.Min <= 0 {
		return errs.Configf("pressure axis is logarithmic and needs positive x limits")
	}
	if m.YLim == nil {
		return errs.Configf("y limits are required for the region layout")
	}
	return nil
}

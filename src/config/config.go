// Package config holds the explicit, validated option sets of the three
// plotting programs. Each program starts from its Default* value and may
// overlay a YAML file on top of it.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/28H4/plot-playground/src/colormap"
	"github.com/28H4/plot-playground/src/errs"
)

// Legend placements understood by the figure renderer.
const (
	LegendUpperLeft    = "upper-left"
	LegendUpperRight   = "upper-right"
	LegendLowerLeft    = "lower-left"
	LegendLowerRight   = "lower-right"
	LegendOutsideRight = "outside-right"
	LegendNone         = "none"
)

var legendPositions = []string{LegendUpperLeft, LegendUpperRight, LegendLowerLeft, LegendLowerRight, LegendOutsideRight, LegendNone}

// Limits is an axis range.
type Limits struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (l Limits) validate(axis string) error {
	if !(l.Min < l.Max) {
		return errs.Configf("%s limits: min %g must be below max %g", axis, l.Min, l.Max)
	}
	return nil
}

// Legend configures legend placement and title.
type Legend struct {
	Position string `yaml:"position"`
	Title    string `yaml:"title,omitempty"`
}

// Placement returns the normalized legend position.
func (l Legend) Placement() string {
	return strings.ToLower(strings.TrimSpace(l.Position))
}

// Figure is the part every program shares: size, labels, limits, legend.
type Figure struct {
	Title  string  `yaml:"title,omitempty"`
	Width  int     `yaml:"width"`  // pixels
	Height int     `yaml:"height"` // pixels
	XLabel string  `yaml:"xlabel,omitempty"`
	YLabel string  `yaml:"ylabel,omitempty"`
	XLim   *Limits `yaml:"xlim,omitempty"`
	YLim   *Limits `yaml:"ylim,omitempty"`
	Legend Legend  `yaml:"legend"`
	// Colormap names the continuous map series colors are drawn from.
	Colormap string `yaml:"colormap,omitempty"`
	// Hint is stamped on the bottom-left of the rendered image when set.
	Hint string `yaml:"hint,omitempty"`
}

// Validate checks the shared figure options.
func (f Figure) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return errs.Configf("figure size %dx%d must be positive", f.Width, f.Height)
	}
	if f.XLim != nil {
		if err := f.XLim.validate("x"); err != nil {
			return err
		}
	}
	if f.YLim != nil {
		if err := f.YLim.validate("y"); err != nil {
			return err
		}
	}
	pos := f.Legend.Placement()
	known := false
	for _, p := range legendPositions {
		if pos == p {
			known = true
			break
		}
	}
	if !known {
		return errs.Configf("legend position %q (known: %s)", f.Legend.Position, strings.Join(legendPositions, ", "))
	}
	if f.Colormap != "" {
		if _, err := colormap.Lookup(f.Colormap); err != nil {
			return err
		}
	}
	return nil
}

// Validator is implemented by every program configuration.
type Validator interface {
	Validate() error
}

// Load overlays the YAML file at path onto dst (which should already hold
// defaults) and validates the result. Unknown keys are rejected.
func Load(path string, dst Validator) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errs.NotFoundf("config file %s", path)
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: parse %s: %v", errs.ErrConfiguration, path, err)
	}
	return dst.Validate()
}

// Marshal renders a configuration as YAML (used to print the effective config).
func Marshal(v interface{}) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

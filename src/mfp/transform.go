// Package mfp draws the pressure overview chart of plasma processes with a
// second x axis showing the gas mean free path at each pressure.
package mfp

import (
	"gonum.org/v1/gonum/unit/constant"

	"github.com/28H4/plot-playground/src/errs"
)

// Defaults of the kinetic gas model.
const (
	DefaultTemperature  = 400.0 // K
	DefaultCrossSection = 1e-18 // m²
)

var boltzmann = float64(constant.Boltzmann)

// Transform converts between pressure in Pa and mean free path in µm for an
// ideal gas at a fixed temperature and collision cross section. The map is
// its own inverse: λ = kT/(pσ) and p = kT/(λσ), with the µm scaling applied
// in both directions.
type Transform struct {
	temperature  float64
	crossSection float64
}

// NewTransform validates the gas parameters.
func NewTransform(temperature, crossSection float64) (Transform, error) {
	if !(temperature > 0) {
		return Transform{}, errs.Configf("temperature %g K must be positive", temperature)
	}
	if !(crossSection > 0) {
		return Transform{}, errs.Configf("cross section %g m² must be positive", crossSection)
	}
	return Transform{temperature: temperature, crossSection: crossSection}, nil
}

// DefaultTransform is the 400 K, 1e-18 m² gas.
func DefaultTransform() Transform {
	return Transform{temperature: DefaultTemperature, crossSection: DefaultCrossSection}
}

func (t Transform) Temperature() float64  { return t.temperature }
func (t Transform) CrossSection() float64 { return t.crossSection }

// MeanFreePath returns λ in µm for pressure p in Pa.
func (t Transform) MeanFreePath(p float64) float64 {
	return boltzmann * t.temperature / (p * t.crossSection) * 1e6
}

// Pressure returns p in Pa for a mean free path λ in µm.
func (t Transform) Pressure(lambda float64) float64 {
	return boltzmann * t.temperature / (lambda * t.crossSection) * 1e6
}

// Functions returns the forward and inverse conversions as plain functions.
func (t Transform) Functions() (toMeanFreePath, toPressure func(float64) float64) {
	return t.MeanFreePath, t.Pressure
}

// Package sample synthesizes small datasets for the example figures.
package sample

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Arange returns the integers start, start+1, ..., stop-1 as floats.
func Arange(start, stop int) []float64 {
	if stop <= start {
		return nil
	}
	out := make([]float64, 0, stop-start)
	for v := start; v < stop; v++ {
		out = append(out, float64(v))
	}
	return out
}

// Linear returns f(x) = slope*x + intercept.
func Linear(slope, intercept float64) func(float64) float64 {
	return func(x float64) float64 { return slope*x + intercept }
}

// Noisy evaluates f at every x and adds Gaussian noise with standard deviation
// sigma. The same seed always yields the same values.
func Noisy(x []float64, f func(float64) float64, sigma float64, seed uint64) []float64 {
	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = f(v)
		if sigma > 0 {
			out[i] += noise.Rand()
		}
	}
	return out
}

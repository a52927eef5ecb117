package sample

import (
	"math"
	"testing"

	"github.com/28H4/plot-playground/src/fit"
)

func TestArange(t *testing.T) {
	x := Arange(-10, 11)
	if len(x) != 21 || x[0] != -10 || x[20] != 10 {
		t.Fatalf("Arange(-10, 11) = %v", x)
	}
	if Arange(3, 3) != nil {
		t.Fatalf("empty range should be nil")
	}
}

func TestNoisyIsDeterministic(t *testing.T) {
	x := Arange(0, 8)
	a := Noisy(x, Linear(1, 0), 2, 42)
	b := Noisy(x, Linear(1, 0), 2, 42)
	c := Noisy(x, Linear(1, 0), 2, 43)
	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different values at %d: %v vs %v", i, a[i], b[i])
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Fatalf("different seeds produced identical noise")
	}
}

func TestNoisyWithoutNoiseIsExact(t *testing.T) {
	x := Arange(-2, 3)
	y := Noisy(x, Linear(4, 1), 0, 1)
	for i, v := range x {
		if y[i] != 4*v+1 {
			t.Fatalf("y[%d]=%v want %v", i, y[i], 4*v+1)
		}
	}
}

// TestRegressionRecoversSlope is the end-to-end example: y = 4x + noise on
// x = -10..10 must give back a slope near 4 and an intercept near 0.
func TestRegressionRecoversSlope(t *testing.T) {
	x := Arange(-10, 11)
	y := Noisy(x, Linear(4, 0), 1, 2024)
	res, err := fit.LinRegress(x, y)
	if err != nil {
		t.Fatalf("LinRegress: %v", err)
	}
	if math.Abs(res.Slope-4) > 0.5 {
		t.Fatalf("slope %v not within 4±0.5", res.Slope)
	}
	if math.Abs(res.Intercept) > 1 {
		t.Fatalf("intercept %v not within 0±1", res.Intercept)
	}
	if res.RValue < 0.95 {
		t.Fatalf("r=%v unexpectedly weak for sigma=1", res.RValue)
	}
}

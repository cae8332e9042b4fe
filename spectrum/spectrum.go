// Package spectrum provides spectrum-domain helpers: bin extraction,
// piecewise-linear interpolation, and Welch power spectral density
// estimation.
//
// FFTs are delegated to the algo-fft backend; this package only operates on
// real signals and complex spectrum bins.
package spectrum

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re, im := splitParts(in)
	out := make([]float64, len(in))
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re, im := splitParts(in)
	out := make([]float64, len(in))
	vecmath.Power(out, re, im)
	return out
}

func splitParts(in []complex128) (re, im []float64) {
	re = make([]float64, len(in))
	im = make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}

// InterpolateLinear evaluates the piecewise-linear curve defined by the
// knots (x, y) at each query point. Query points need not be sorted.
//
// x must be strictly increasing and have the same length as y. Queries
// outside the knot range clamp to the nearest endpoint value, so resampling
// a curve onto a wider grid never extrapolates.
func InterpolateLinear(x, y, queryX []float64) ([]float64, error) {
	if err := validateKnots(x, y); err != nil {
		return nil, err
	}

	out := make([]float64, len(queryX))
	for i, q := range queryX {
		out[i] = lerpKnots(x, y, q)
	}
	return out, nil
}

func validateKnots(x, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("interpolate requires non-empty x and y")
	}
	if len(x) != len(y) {
		return fmt.Errorf("interpolate x/y length mismatch: %d != %d", len(x), len(y))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("interpolate x must be strictly increasing at index %d", i)
		}
	}
	return nil
}

func lerpKnots(x, y []float64, q float64) float64 {
	last := len(x) - 1
	switch {
	case q <= x[0]:
		return y[0]
	case q >= x[last]:
		return y[last]
	}

	j := sort.SearchFloat64s(x, q)
	t := (q - x[j-1]) / (x[j] - x[j-1])
	return y[j-1] + t*(y[j]-y[j-1])
}

// PowerToDB converts linear power values to dB (10*log10 convention) into a
// new slice. Zero maps to -Inf.
func PowerToDB(power []float64) []float64 {
	out := make([]float64, len(power))
	for i, p := range power {
		if p == 0 {
			out[i] = math.Inf(-1)
			continue
		}
		out[i] = 10 * math.Log10(p)
	}
	return out
}

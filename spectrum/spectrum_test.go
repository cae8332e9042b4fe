package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-seis/internal/testutil"
)

func TestMagnitude(t *testing.T) {
	in := []complex128{complex(3, 4), complex(0, 0), complex(-1, 0)}
	testutil.RequireSliceNearlyEqual(t, Magnitude(in), []float64{5, 0, 1}, 1e-12)
}

func TestMagnitudeEmpty(t *testing.T) {
	if Magnitude(nil) != nil {
		t.Fatal("Magnitude(nil) should be nil")
	}
}

func TestPower(t *testing.T) {
	in := []complex128{complex(3, 4), complex(0, 2)}
	testutil.RequireSliceNearlyEqual(t, Power(in), []float64{25, 4}, 1e-12)
}

func TestInterpolateLinear(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 10, 30}

	out, err := InterpolateLinear(x, y, []float64{0.5, 1, 1.5})
	if err != nil {
		t.Fatalf("InterpolateLinear() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{5, 10, 20}, 1e-12)
}

func TestInterpolateLinearClamps(t *testing.T) {
	out, err := InterpolateLinear([]float64{1, 2}, []float64{5, 7}, []float64{0, 3})
	if err != nil {
		t.Fatalf("InterpolateLinear() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{5, 7}, 1e-12)
}

func TestInterpolateLinearErrors(t *testing.T) {
	if _, err := InterpolateLinear(nil, nil, []float64{1}); err == nil {
		t.Fatal("expected error for empty knots")
	}
	if _, err := InterpolateLinear([]float64{1, 2}, []float64{1}, nil); err == nil {
		t.Fatal("expected error for length mismatch")
	}
	if _, err := InterpolateLinear([]float64{2, 1}, []float64{1, 2}, nil); err == nil {
		t.Fatal("expected error for non-increasing x")
	}
}

func TestPowerToDB(t *testing.T) {
	out := PowerToDB([]float64{1, 10, 0.1, 0})
	testutil.RequireSliceNearlyEqual(t, out[:3], []float64{0, 10, -10}, 1e-12)
	if !math.IsInf(out[3], -1) {
		t.Fatalf("PowerToDB(0) = %v, want -Inf", out[3])
	}
}

package noise

import (
	"testing"

	"github.com/cwbudde/algo-seis/internal/testutil"
	"github.com/cwbudde/algo-seis/spectrum"
)

func TestNewModel(t *testing.T) {
	m, err := NewModel([]float64{-160, -150, -140}, []float64{1, 10, 100})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	testutil.RequireSliceEqual(t, m.PSD(), []float64{-160, -150, -140})
	testutil.RequireSliceEqual(t, m.Periods(), []float64{1, 10, 100})
}

func TestNewModelLengthMismatch(t *testing.T) {
	_, err := NewModel([]float64{-160, -150}, []float64{1, 10, 100})
	if err == nil {
		t.Fatal("NewModel() expected error for mismatched lengths")
	}
}

func TestNewModelEmpty(t *testing.T) {
	if _, err := NewModel(nil, nil); err == nil {
		t.Fatal("NewModel() expected error for empty input")
	}
	if _, err := NewModel([]float64{}, []float64{}); err == nil {
		t.Fatal("NewModel() expected error for empty slices")
	}
}

func TestNewModelUnsortedPeriods(t *testing.T) {
	_, err := NewModel([]float64{-160, -150, -140}, []float64{1, 100, 10})
	if err == nil {
		t.Fatal("NewModel() expected error for unsorted periods")
	}
	_, err = NewModel([]float64{-160, -150}, []float64{10, 10})
	if err == nil {
		t.Fatal("NewModel() expected error for duplicate periods")
	}
}

func TestModelImmutable(t *testing.T) {
	psd := []float64{-160, -150}
	periods := []float64{1, 10}
	m, err := NewModel(psd, periods)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	// Mutating the construction inputs must not reach the model.
	psd[0] = 0
	periods[0] = 99
	if m.PSDAt(0) != -160 || m.PeriodAt(0) != 1 {
		t.Fatal("model shares storage with construction input")
	}

	// Mutating accessor results must not reach the model either.
	m.PSD()[1] = 0
	m.Periods()[1] = 0
	if m.PSDAt(1) != -150 || m.PeriodAt(1) != 10 {
		t.Fatal("model shares storage with accessor output")
	}
}

func TestModelEqual(t *testing.T) {
	a, _ := NewModel([]float64{-160, -150}, []float64{1, 10})
	b, _ := NewModel([]float64{-160, -150}, []float64{1, 10})
	c, _ := NewModel([]float64{-160, -151}, []float64{1, 10})
	d, _ := NewModel([]float64{-160}, []float64{1})

	if !a.Equal(b) {
		t.Fatal("identical models not Equal")
	}
	if a.Equal(c) {
		t.Fatal("models with different psd reported Equal")
	}
	if a.Equal(d) {
		t.Fatal("models with different lengths reported Equal")
	}
}

func TestModelInterpDB(t *testing.T) {
	m, _ := NewModel([]float64{-160, -150, -140}, []float64{1, 10, 100})

	if got := m.interpDB(10, -200); got != -150 {
		t.Fatalf("interpDB(10) = %v, want exact knot -150", got)
	}
	if got := m.interpDB(5.5, -200); got != -155 {
		t.Fatalf("interpDB(5.5) = %v, want -155", got)
	}
	if got := m.interpDB(0.5, -200); got != -200 {
		t.Fatalf("interpDB(0.5) = %v, want fill -200", got)
	}
	if got := m.interpDB(1000, -200); got != -200 {
		t.Fatalf("interpDB(1000) = %v, want fill -200", got)
	}
}

// Inside the knot range the model lookup and the generic resampler evaluate
// the same piecewise-linear curve. The estimator tests lean on that when they
// build reference curves with spectrum.InterpolateLinear.
func TestModelInterpDBMatchesInterpolateLinear(t *testing.T) {
	m := NLNM()
	queries := []float64{0.1, 0.35, 1, 5.5, 31.6, 342, 9000, 100000}

	want, err := spectrum.InterpolateLinear(m.Periods(), m.PSD(), queries)
	if err != nil {
		t.Fatalf("InterpolateLinear() error = %v", err)
	}
	got := make([]float64, len(queries))
	for i, q := range queries {
		got[i] = m.interpDB(q, -200)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

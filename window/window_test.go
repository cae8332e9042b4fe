package window

import (
	"math"
	"testing"
)

func TestGenerateHannSymmetric(t *testing.T) {
	w, err := Generate(TypeHann, 9)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(w) != 9 {
		t.Fatalf("len = %d, want 9", len(w))
	}
	if w[0] != 0 || w[8] != 0 {
		t.Fatalf("symmetric Hann endpoints = %v, %v, want 0", w[0], w[8])
	}
	if math.Abs(w[4]-1) > 1e-12 {
		t.Fatalf("center = %v, want 1", w[4])
	}
	for i := range w {
		if math.Abs(w[i]-w[len(w)-1-i]) > 1e-12 {
			t.Fatalf("asymmetry at index %d", i)
		}
	}
}

func TestGeneratePeriodic(t *testing.T) {
	w, err := Generate(TypeHann, 8, WithPeriodic())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	// Periodic form: first coefficient zero, the implied next sample
	// wraps to zero rather than ending on it.
	if w[0] != 0 {
		t.Fatalf("w[0] = %v, want 0", w[0])
	}
	if w[len(w)-1] == 0 {
		t.Fatal("periodic Hann must not end on zero")
	}
}

func TestGenerateRectangular(t *testing.T) {
	w, err := Generate(TypeRectangular, 16)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i, v := range w {
		if v != 1 {
			t.Fatalf("index %d: %v, want 1", i, v)
		}
	}
	if SumSquares(w) != 16 {
		t.Fatalf("SumSquares = %v, want 16", SumSquares(w))
	}
}

func TestGenerateWelchWindow(t *testing.T) {
	w, err := Generate(TypeWelch, 11)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if w[0] != 0 || w[10] != 0 {
		t.Fatalf("Welch endpoints = %v, %v, want 0", w[0], w[10])
	}
	if math.Abs(w[5]-1) > 1e-12 {
		t.Fatalf("Welch center = %v, want 1", w[5])
	}
}

func TestGenerateSizeOne(t *testing.T) {
	w, err := Generate(TypeHamming, 1)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(w) != 1 || w[0] != 1 {
		t.Fatalf("Generate(size=1) = %v, want [1]", w)
	}
}

func TestGenerateValidation(t *testing.T) {
	if _, err := Generate(TypeHann, 0); err == nil {
		t.Fatal("expected error for size 0")
	}
	if _, err := Generate(TypeHann, -4); err == nil {
		t.Fatal("expected error for negative size")
	}
	if _, err := Generate(Type(99), 16); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestApply(t *testing.T) {
	coeffs, err := Generate(TypeHann, 4)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	samples := []float64{1, 1, 1, 1}

	out, err := Apply(samples, coeffs)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	for i := range out {
		if math.Abs(out[i]-coeffs[i]) > 1e-12 {
			t.Fatalf("index %d: %v, want %v", i, out[i], coeffs[i])
		}
	}
	if samples[1] != 1 {
		t.Fatal("Apply must not modify input")
	}

	if err := ApplyInPlace(samples, coeffs); err != nil {
		t.Fatalf("ApplyInPlace() error = %v", err)
	}
	if math.Abs(samples[1]-coeffs[1]) > 1e-12 {
		t.Fatal("ApplyInPlace did not window the samples")
	}
}

func TestApplyLengthMismatch(t *testing.T) {
	coeffs, _ := Generate(TypeHann, 4)
	if _, err := Apply([]float64{1, 2}, coeffs); err == nil {
		t.Fatal("expected error for length mismatch")
	}
	if err := ApplyInPlace([]float64{1, 2}, coeffs); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

package noise

import (
	"fmt"
	"sort"
)

// Model is an empirical noise curve: a power spectral density level in dB
// sampled at a sparse, strictly increasing grid of periods in seconds.
//
// A Model is immutable after construction. The sample arrays are copied in
// and only exposed through copying or read-only accessors, so a Model can be
// shared across goroutines without synchronization.
type Model struct {
	psd     []float64
	periods []float64
}

// NewModel constructs a Model from paired PSD (dB) and period (seconds)
// samples. Both slices must be non-empty and of equal length, and periods
// must be strictly increasing. The inputs are copied.
func NewModel(psd, periods []float64) (Model, error) {
	if len(psd) == 0 || len(periods) == 0 {
		return Model{}, errEmptyModel
	}
	if len(psd) != len(periods) {
		return Model{}, fmt.Errorf("%w: %d != %d", errLengthMismatch, len(psd), len(periods))
	}
	for i := 1; i < len(periods); i++ {
		if !(periods[i] > periods[i-1]) {
			return Model{}, fmt.Errorf("%w: index %d", errUnsortedPeriods, i)
		}
	}

	m := Model{
		psd:     make([]float64, len(psd)),
		periods: make([]float64, len(periods)),
	}
	copy(m.psd, psd)
	copy(m.periods, periods)
	return m, nil
}

// mustModel builds a Model from package-level literal tables.
func mustModel(psd, periods []float64) Model {
	m, err := NewModel(psd, periods)
	if err != nil {
		panic(err)
	}
	return m
}

// Len returns the number of knots.
func (m Model) Len() int { return len(m.psd) }

// PSD returns a copy of the PSD samples in dB.
func (m Model) PSD() []float64 {
	out := make([]float64, len(m.psd))
	copy(out, m.psd)
	return out
}

// Periods returns a copy of the period samples in seconds.
func (m Model) Periods() []float64 {
	out := make([]float64, len(m.periods))
	copy(out, m.periods)
	return out
}

// PSDAt returns the PSD value at knot index i.
func (m Model) PSDAt(i int) float64 { return m.psd[i] }

// PeriodAt returns the period value at knot index i.
func (m Model) PeriodAt(i int) float64 { return m.periods[i] }

// Equal reports whether two models hold elementwise identical samples.
func (m Model) Equal(other Model) bool {
	if len(m.psd) != len(other.psd) {
		return false
	}
	for i := range m.psd {
		if m.psd[i] != other.psd[i] || m.periods[i] != other.periods[i] {
			return false
		}
	}
	return true
}

// interpDB evaluates the model curve at an arbitrary period by piecewise
// linear interpolation over its knots. Periods outside the covered range
// return fill.
func (m Model) interpDB(period, fill float64) float64 {
	n := len(m.periods)
	if n == 0 || period < m.periods[0] || period > m.periods[n-1] {
		return fill
	}
	j := sort.SearchFloat64s(m.periods, period)
	if j < n && m.periods[j] == period {
		return m.psd[j]
	}
	t0, t1 := m.periods[j-1], m.periods[j]
	frac := (period - t0) / (t1 - t0)
	return m.psd[j-1] + frac*(m.psd[j]-m.psd[j-1])
}

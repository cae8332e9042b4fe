package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-seis/window"
)

const defaultSegmentLength = 256

// WelchOption configures the Welch estimator.
type WelchOption func(*welchConfig)

type welchConfig struct {
	segLen  int
	overlap float64
	winType window.Type
}

// WithSegmentLength sets the per-segment FFT length. Must be a power of two.
func WithSegmentLength(n int) WelchOption {
	return func(c *welchConfig) {
		c.segLen = n
	}
}

// WithOverlap sets the fractional segment overlap in [0,1). Default 0.5.
func WithOverlap(frac float64) WelchOption {
	return func(c *welchConfig) {
		c.overlap = frac
	}
}

// WithWindow sets the segment window type. Default Hann.
func WithWindow(t window.Type) WelchOption {
	return func(c *welchConfig) {
		c.winType = t
	}
}

// Welch estimates the one-sided power spectral density of signal by averaged
// modified periodograms.
//
// Each segment is demeaned, windowed, and transformed; segment power spectra
// are density-scaled by 1/(fs*sum(w^2)) and averaged. The returned freq and
// psd slices have segLen/2+1 bins from DC to the Nyquist frequency
// 0.5/delta.
func Welch(signal []float64, delta float64, opts ...WelchOption) (freq, psd []float64, err error) {
	cfg := welchConfig{
		segLen:  defaultSegmentLength,
		overlap: 0.5,
		winType: window.TypeHann,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if delta <= 0 {
		return nil, nil, fmt.Errorf("welch delta must be > 0: %f", delta)
	}
	if cfg.segLen <= 0 || cfg.segLen&(cfg.segLen-1) != 0 {
		return nil, nil, fmt.Errorf("welch segment length must be a power of two: %d", cfg.segLen)
	}
	if len(signal) < cfg.segLen {
		return nil, nil, fmt.Errorf("welch signal shorter than segment: %d < %d", len(signal), cfg.segLen)
	}
	if cfg.overlap < 0 || cfg.overlap >= 1 {
		return nil, nil, fmt.Errorf("welch overlap must be in [0,1): %f", cfg.overlap)
	}

	coeffs, err := window.Generate(cfg.winType, cfg.segLen, window.WithPeriodic())
	if err != nil {
		return nil, nil, fmt.Errorf("welch window generation failed: %w", err)
	}

	step := cfg.segLen - int(cfg.overlap*float64(cfg.segLen))
	if step < 1 {
		step = 1
	}

	plan, err := algofft.NewPlan64(cfg.segLen)
	if err != nil {
		return nil, nil, fmt.Errorf("welch: failed to create FFT plan: %w", err)
	}

	bins := cfg.segLen/2 + 1
	acc := make([]float64, bins)
	seg := make([]float64, cfg.segLen)
	buf := make([]complex128, cfg.segLen)
	out := make([]complex128, cfg.segLen)
	segments := 0

	for start := 0; start+cfg.segLen <= len(signal); start += step {
		copy(seg, signal[start:start+cfg.segLen])
		demean(seg)
		if err := window.ApplyInPlace(seg, coeffs); err != nil {
			return nil, nil, fmt.Errorf("welch windowing failed: %w", err)
		}
		for i, v := range seg {
			buf[i] = complex(v, 0)
		}
		if err := plan.Forward(out, buf); err != nil {
			return nil, nil, fmt.Errorf("welch: forward FFT failed: %w", err)
		}
		power := Power(out[:bins])
		for i, p := range power {
			acc[i] += p
		}
		segments++
	}

	// Density scaling: 1/(fs*sum(w^2)) = delta/sum(w^2), with one-sided
	// doubling for all bins except DC and Nyquist.
	scale := delta / (window.SumSquares(coeffs) * float64(segments))
	psd = acc
	for i := range psd {
		psd[i] *= scale
		if i != 0 && i != bins-1 {
			psd[i] *= 2
		}
	}

	freq = make([]float64, bins)
	df := 1 / (float64(cfg.segLen) * delta)
	for i := range freq {
		freq[i] = float64(i) * df
	}
	return freq, psd, nil
}

// WelchDB estimates the one-sided PSD in dB (10*log10 convention).
func WelchDB(signal []float64, delta float64, opts ...WelchOption) (freq, psd []float64, err error) {
	freq, psd, err = Welch(signal, delta, opts...)
	if err != nil {
		return nil, nil, err
	}
	return freq, PowerToDB(psd), nil
}

func demean(x []float64) {
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	mean := sum / float64(len(x))
	for i := range x {
		x[i] -= mean
	}
}

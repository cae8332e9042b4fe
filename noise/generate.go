package noise

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-seis/trace"
)

// outOfBandDB fills PSD lookups for frequencies the model does not cover.
// It sits far below either Peterson curve, so no spurious energy is injected
// outside the modeled band.
const outOfBandDB = -200.0

// minFFTSize keeps the synthesis buffer large enough that the center trim
// always has margin on both sides, even for tiny requests.
const minFFTSize = 16

// Generator synthesizes time-domain noise records from a [Model].
//
// A Generator is stateless across calls: every call draws from a fresh
// random source, so concurrent Generate calls are independent.
type Generator struct {
	delta    float64
	seed     int64
	seeded   bool
	velocity bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithDelta sets the sampling interval in seconds.
func WithDelta(delta float64) Option {
	return func(g *Generator) {
		g.delta = delta
	}
}

// WithSampleRate sets the sampling rate in Hz, the reciprocal of the
// sampling interval.
func WithSampleRate(rate float64) Option {
	return func(g *Generator) {
		if rate == 0 {
			g.delta = 0
			return
		}
		g.delta = 1 / rate
	}
}

// WithSeed sets a deterministic seed for the random phase draws. The same
// seed reproduces the output bit for bit.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.seeded = true
	}
}

// WithVelocity integrates the synthesized acceleration to ground velocity.
func WithVelocity() Option {
	return func(g *Generator) {
		g.velocity = true
	}
}

// NewGenerator creates a noise generator. Without options it produces
// unseeded acceleration records at a 1 second sampling interval.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{delta: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Delta returns the configured sampling interval in seconds.
func (g *Generator) Delta() float64 { return g.delta }

// Generate synthesizes npts samples of noise whose spectral content follows
// the model curve.
//
// The synthesis runs on an internal buffer of M samples, the next power of
// two at or above 2*npts: the model is sampled on the one-sided frequency
// grid of that buffer, converted from dB to linear spectral amplitude, given
// a uniformly random phase per bin, and inverse transformed. The central
// npts samples are extracted, so the edge artifacts of the sharply defined
// spectrum fall outside the retained window, and the mean of the retained
// segment is removed. No linear detrend is applied.
func (g *Generator) Generate(m Model, npts int) ([]float64, error) {
	if err := validateRequest(npts, g.delta); err != nil {
		return nil, err
	}
	if m.Len() == 0 {
		return nil, errEmptyModel
	}

	fftSize := nextPowerOf2(2 * npts)
	if fftSize < minFFTSize {
		fftSize = minFFTSize
	}
	half := fftSize / 2
	freqStep := 1 / (float64(fftSize) * g.delta)
	rng := g.newRand()

	// One-sided spectrum with DC forced to zero, mirrored into conjugate
	// symmetry so the inverse transform is real.
	spec := make([]complex128, fftSize)
	for k := 1; k <= half; k++ {
		db := m.interpDB(1/(float64(k)*freqStep), outOfBandDB)
		// Density scaling: a bin pair of amplitude a contributes 2*a^2/M^2
		// to the signal power, so this choice makes the one-sided PSD of
		// the output equal the model level.
		amp := math.Sqrt(math.Pow(10, db/10) * float64(fftSize) / g.delta / 2)
		phase := (1 - 2*rng.Float64()) * math.Pi // uniform on (-pi, pi]
		if k == half {
			// Nyquist bin must stay real.
			spec[k] = complex(amp*math.Cos(phase), 0)
			continue
		}
		spec[k] = complex(amp*math.Cos(phase), amp*math.Sin(phase))
		spec[fftSize-k] = complex(real(spec[k]), -imag(spec[k]))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("noise: failed to create FFT plan: %w", err)
	}
	td := make([]complex128, fftSize)
	if err := plan.Inverse(td, spec); err != nil {
		return nil, fmt.Errorf("noise: inverse FFT failed: %w", err)
	}

	accel := make([]float64, fftSize)
	for i, v := range td {
		accel[i] = real(v)
	}

	start := (fftSize - npts) / 2
	out := make([]float64, npts)
	if g.velocity {
		// Integrate the full buffer first so the integration transient
		// lands in the discarded margins, then trim with the same left
		// offset as the acceleration window.
		copy(out, cumtrapz(accel, g.delta)[start:])
	} else {
		copy(out, accel[start:])
	}
	demean(out)
	return out, nil
}

// GenerateTrace synthesizes a record and wraps it with the generator's
// sampling interval.
func (g *Generator) GenerateTrace(m Model, npts int) (*trace.Trace, error) {
	data, err := g.Generate(m, npts)
	if err != nil {
		return nil, err
	}
	return trace.New(data, g.delta)
}

func (g *Generator) newRand() *rand.Rand {
	if g.seeded {
		return rand.New(rand.NewSource(g.seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// cumtrapz computes the cumulative trapezoidal integral of x sampled at
// spacing dx. The result has len(x)-1 samples.
func cumtrapz(x []float64, dx float64) []float64 {
	out := make([]float64, len(x)-1)
	sum := 0.0
	for i := 1; i < len(x); i++ {
		sum += 0.5 * dx * (x[i] + x[i-1])
		out[i-1] = sum
	}
	return out
}

func demean(x []float64) {
	if len(x) == 0 {
		return
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	mean := sum / float64(len(x))
	for i := range x {
		x[i] -= mean
	}
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

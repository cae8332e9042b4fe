// Package trace defines the structural interfaces shared by the toolkit's
// data sources and a concrete in-memory record type.
//
// The interfaces are deliberately minimal: any type exposing the same method
// surface is usable without wrapping, whether it is backed by a synthesized
// record, a SAC file, or something else entirely.
package trace

import (
	"fmt"
	"time"
)

// Seismogram is an evenly sampled single-component record.
type Seismogram interface {
	// Data returns the samples as a plain ordered sequence.
	Data() []float64
	// Delta returns the sampling interval in seconds.
	Delta() float64
	// Begin returns the time of the first sample. A zero time means the
	// record carries no absolute timing.
	Begin() time.Time
	// Npts returns the number of samples.
	Npts() int
}

// Station describes a recording site.
type Station interface {
	Code() string
	Latitude() float64
	Longitude() float64
	Elevation() float64
}

// Event describes a seismic source.
type Event interface {
	Latitude() float64
	Longitude() float64
	Depth() float64
	Origin() time.Time
}

// Trace is an in-memory [Seismogram]. Begin time is caller-supplied metadata
// and defaults to the zero time.
type Trace struct {
	data  []float64
	delta float64
	begin time.Time
}

var _ Seismogram = (*Trace)(nil)

// TraceOption configures a Trace.
type TraceOption func(*Trace)

// WithBegin attaches the time of the first sample.
func WithBegin(t time.Time) TraceOption {
	return func(tr *Trace) {
		tr.begin = t
	}
}

// New creates a Trace over a copy of data sampled at interval delta.
func New(data []float64, delta float64, opts ...TraceOption) (*Trace, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("trace: data must not be empty")
	}
	if delta <= 0 {
		return nil, fmt.Errorf("trace: delta must be > 0: %f", delta)
	}

	tr := &Trace{
		data:  make([]float64, len(data)),
		delta: delta,
	}
	copy(tr.data, data)
	for _, opt := range opts {
		if opt != nil {
			opt(tr)
		}
	}
	return tr, nil
}

// Data returns the samples.
func (t *Trace) Data() []float64 { return t.data }

// Delta returns the sampling interval in seconds.
func (t *Trace) Delta() float64 { return t.delta }

// Begin returns the time of the first sample.
func (t *Trace) Begin() time.Time { return t.begin }

// Npts returns the number of samples.
func (t *Trace) Npts() int { return len(t.data) }

// End returns the time of the last sample, or the zero time when the trace
// carries no begin time.
func (t *Trace) End() time.Time {
	if t.begin.IsZero() {
		return time.Time{}
	}
	span := time.Duration(float64(len(t.data)-1) * t.delta * float64(time.Second))
	return t.begin.Add(span)
}

// Package noise synthesizes seismic ambient noise from the Peterson (1993)
// empirical noise models.
//
// The New Low Noise Model ([NLNM]) and New High Noise Model ([NHNM]) bound
// the power spectral density of background noise observed at quiet and noisy
// stations worldwide. [Peterson] blends between the two curves, producing a
// noise floor of arbitrary severity, and [Generator.Generate] turns any model
// into a time-domain record by random-phase spectral synthesis.
//
// # Usage
//
// Build a model halfway between the quiet and noisy bounds and synthesize
// ten minutes of 10 Hz ground acceleration:
//
//	m, _ := noise.Peterson(0.5)
//	g := noise.NewGenerator(
//	    noise.WithSampleRate(10),
//	    noise.WithSeed(42),
//	)
//	accel, _ := g.Generate(m, 6000)
//
// Add [WithVelocity] to integrate the synthesized acceleration to ground
// velocity before the record is extracted.
//
// All models are immutable and all generator calls are independent, so both
// may be shared freely across goroutines.
package noise

package noise

// Peterson (1993), Observations and modeling of seismic background noise,
// USGS Open-File Report 93-322. PSD in dB re (m/s^2)^2/Hz, periods in
// seconds. The knot values below are the piecewise model evaluated at its
// own segment boundaries.

var nlnm = mustModel(
	[]float64{
		-168.00, -166.70, -166.70, -169.20, -163.70, -148.65, -141.10,
		-141.10, -149.00, -163.75, -166.25, -162.13, -177.50, -185.00,
		-187.50, -187.50, -185.00, -184.99, -187.49, -184.38, -151.88,
		-103.13,
	},
	[]float64{
		0.10, 0.17, 0.40, 0.80, 1.24, 2.40, 4.30,
		5.00, 6.00, 10.00, 12.00, 15.60, 21.90, 31.60,
		45.00, 70.00, 101.00, 154.00, 328.00, 600.00, 10000.00,
		100000.00,
	},
)

var nhnm = mustModel(
	[]float64{
		-91.50, -97.41, -110.50, -120.00, -98.00, -96.50, -101.00,
		-113.50, -120.00, -138.50, -126.00, -80.14, -48.51,
	},
	[]float64{
		0.10, 0.22, 0.32, 0.80, 3.80, 4.60, 6.30,
		7.90, 15.40, 20.00, 354.80, 10000.00, 100000.00,
	},
)

// NLNM returns the New Low Noise Model, the quiet-station bound.
func NLNM() Model { return nlnm }

// NHNM returns the New High Noise Model, the noisy-station bound.
func NHNM() Model { return nhnm }

// Peterson builds a noise model at the requested severity level in [0,1].
//
// Level 0 is the NLNM, level 1 the NHNM. Intermediate levels are defined on
// the sorted union of both period grids, with the PSD at each knot linearly
// blended between the two curves:
//
//	psd = nlnm + level*(nhnm - nlnm)
//
// The result is a pure function of level.
func Peterson(level float64) (Model, error) {
	if err := validateLevel(level); err != nil {
		return Model{}, err
	}

	switch level {
	case 0:
		return nlnm, nil
	case 1:
		return nhnm, nil
	}

	periods := mergePeriods(nlnm.periods, nhnm.periods)
	psd := make([]float64, len(periods))
	for i, p := range periods {
		lo := nlnm.interpDB(p, 0)
		hi := nhnm.interpDB(p, 0)
		psd[i] = lo + level*(hi-lo)
	}
	return NewModel(psd, periods)
}

// mergePeriods merges two sorted knot grids into their sorted,
// duplicate-free union.
func mergePeriods(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

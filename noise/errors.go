package noise

import (
	"errors"
	"fmt"
)

var (
	errEmptyModel      = errors.New("noise model must not be empty")
	errLengthMismatch  = errors.New("psd and period arrays must have same length")
	errUnsortedPeriods = errors.New("periods must be strictly increasing")
)

func validateLevel(level float64) error {
	if level < 0 || level > 1 {
		return fmt.Errorf("noise level must be in [0,1]: %f", level)
	}
	return nil
}

func validateRequest(npts int, delta float64) error {
	if npts <= 0 {
		return fmt.Errorf("noise npts must be > 0: %d", npts)
	}
	if delta <= 0 {
		return fmt.Errorf("noise delta must be > 0: %f", delta)
	}
	return nil
}

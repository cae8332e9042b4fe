// Command seisnoise synthesizes Peterson-model ambient noise and writes it
// as a binary SAC file.
//
// Usage:
//
//	seisnoise [flags] -o output.sac
//
// Examples:
//
//	seisnoise -level 0.5 -npts 6000 -delta 0.1 -o quiet.sac
//	seisnoise -level 1 -npts 86400 -rate 1 -seed 7 -velocity -o noisy.sac
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cwbudde/algo-seis/noise"
	"github.com/cwbudde/algo-seis/sac"
)

func main() {
	var (
		level    = flag.Float64("level", 0.5, "noise level in [0,1]: 0 = NLNM, 1 = NHNM")
		npts     = flag.Int("npts", 6000, "number of samples to synthesize")
		delta    = flag.Float64("delta", 0, "sampling interval in seconds")
		rate     = flag.Float64("rate", 0, "sampling rate in Hz (alternative to -delta)")
		seed     = flag.Int64("seed", 0, "random seed for reproducible output")
		seeded   = false
		velocity = flag.Bool("velocity", false, "integrate acceleration to velocity")
		output   = flag.String("o", "", "output SAC file path (required)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: seisnoise [flags] -o output.sac\n\n")
		fmt.Fprintf(os.Stderr, "Synthesizes Peterson-model ambient noise as a SAC file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seeded = true
		}
	})

	if *output == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *delta != 0 && *rate != 0 {
		fatalf("use either -delta or -rate, not both")
	}
	if *delta == 0 && *rate == 0 {
		*delta = 1
	}

	model, err := noise.Peterson(*level)
	if err != nil {
		fatalf("%v", err)
	}

	opts := []noise.Option{noise.WithDelta(*delta)}
	if *rate != 0 {
		opts = []noise.Option{noise.WithSampleRate(*rate)}
	}
	if seeded {
		opts = append(opts, noise.WithSeed(*seed))
	}
	if *velocity {
		opts = append(opts, noise.WithVelocity())
	}

	tr, err := noise.NewGenerator(opts...).GenerateTrace(model, *npts)
	if err != nil {
		fatalf("%v", err)
	}

	f := sac.FromTrace(tr)
	f.SetReferenceTime(time.Now().UTC())
	if *velocity {
		f.SetDepType(sac.DepVelocity)
	} else {
		f.SetDepType(sac.DepAcceleration)
	}
	if err := f.WriteFile(*output); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("wrote %d samples at delta %g s to %s\n", tr.Npts(), tr.Delta(), *output)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "seisnoise: "+format+"\n", args...)
	os.Exit(1)
}

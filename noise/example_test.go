package noise_test

import (
	"fmt"

	"github.com/cwbudde/algo-seis/noise"
)

func ExamplePeterson() {
	m, err := noise.Peterson(0.5)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d knots from %.2g s to %.2g s\n", m.Len(), m.PeriodAt(0), m.PeriodAt(m.Len()-1))
	// Output:
	// 31 knots from 0.1 s to 1e+05 s
}

func ExampleGenerator_Generate() {
	m, err := noise.Peterson(0.5)
	if err != nil {
		panic(err)
	}

	g := noise.NewGenerator(
		noise.WithSampleRate(10),
		noise.WithSeed(42),
	)
	accel, err := g.Generate(m, 6000)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d samples at delta %g s\n", len(accel), g.Delta())
	// Output:
	// 6000 samples at delta 0.1 s
}

// Command spharm-regrid resamples a single physical-space grid row
// between two longitude resolutions, using the same ecosystem resampler
// the teacher uses for audio sample-rate conversion. The core spectral
// engine never needs this: it always operates at its one fixed nlon, but
// a caller preparing input for a different geometry does.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	dspresample "github.com/cwbudde/algo-dsp/dsp/resample"
)

func main() {
	fromNlon := flag.Int("from", 64, "Source number of longitude points")
	toNlon := flag.Int("to", 128, "Destination number of longitude points")
	wavenumber := flag.Int("wavenumber", 3, "Zonal wavenumber of the synthetic test row")
	flag.Parse()

	if *fromNlon < 4 || *toNlon < 4 {
		fmt.Fprintln(os.Stderr, "spharm-regrid: --from and --to must each be >= 4")
		os.Exit(1)
	}

	row := make([]float64, *fromNlon)
	for i := range row {
		row[i] = math.Cos(2 * math.Pi * float64(*wavenumber) * float64(i) / float64(*fromNlon))
	}

	r, err := dspresample.NewForRates(
		float64(*fromNlon),
		float64(*toNlon),
		dspresample.WithQuality(dspresample.QualityBest),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spharm-regrid: building resampler: %v\n", err)
		os.Exit(1)
	}
	out := r.Process(row)

	fmt.Printf("Resampled %d -> %d points (wavenumber %d)\n", *fromNlon, *toNlon, *wavenumber)
	for i, v := range out {
		fmt.Printf("%4d  %+.6f\n", i, v)
	}
}

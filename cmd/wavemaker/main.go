// Command wavemaker computes a JONSWAP wave spectrum, partitions it
// into frequency bins, and prints the paddle stroke amplitude per bin.
//
// Usage:
//
//	wavemaker [flags]
//
// The spectrum is either given explicitly or derived from a wind
// observation:
//
//	wavemaker -vel10 10 -fetch 100000 -bins 10 -depth 0.7
//	wavemaker -alpha 0.0081 -wp 0.8 -wmax 3 -bins 8 -kind piston
//	wavemaker -vel10 10 -fetch 100000 -plot spectrum.png
//	wavemaker -vel10 10 -fetch 100000 -drive drive.txt -duration 120
//
// Each run overwrites the sweep table (default jonswap_spec.txt) with
// two whitespace-delimited columns, w and amp.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/cwbudde/algo-wavemaker/bins"
	"github.com/cwbudde/algo-wavemaker/integrate"
	"github.com/cwbudde/algo-wavemaker/jonswap"
	"github.com/cwbudde/algo-wavemaker/paddle"
	"github.com/cwbudde/algo-wavemaker/report"
	"github.com/cwbudde/algo-wavemaker/sea"
)

func main() {
	var (
		alpha = flag.Float64("alpha", 0.0081, "energy scale")
		wp    = flag.Float64("wp", 0.8, "peak angular frequency [rad/s]")
		wmax  = flag.Float64("wmax", 3, "upper bound of the spectral domain [rad/s]")
		gamma = flag.Float64("gamma", 3.3, "peak enhancement factor")
		s1    = flag.Float64("s1", 0.07, "spectral width for w <= wp")
		s2    = flag.Float64("s2", 0.09, "spectral width for w > wp")

		vel10 = flag.Float64("vel10", 0, "wind speed at 10 m [m/s]; with -fetch, overrides the explicit parameters")
		fetch = flag.Float64("fetch", 0, "fetch length [m]")

		nBins  = flag.Int("bins", 10, "number of frequency bins")
		dw     = flag.Float64("dw", 0.01, "integration step [rad/s]")
		budget = flag.Float64("budget", 0.75, "total stroke budget; 0 disables renormalization")
		mode   = flag.String("mode", "raw", "per-bin output form: raw or density")
		depth  = flag.Float64("depth", 0.7, "water depth [m]")
		kind   = flag.String("kind", "flap", "wavemaker geometry: flap or piston")
		scheme = flag.String("scheme", "peak-weighted-normal", "bin sampling: peak-weighted-normal or uniform-jittered")
		seed   = flag.Uint64("seed", 1, "random seed for bin sampling and drive phases")

		out       = flag.String("out", "jonswap_spec.txt", "sweep table output path")
		sweepMax  = flag.Float64("sweep-max", 3, "sweep upper frequency [rad/s]")
		sweepStep = flag.Float64("sweep-step", 0.001, "sweep step [rad/s]")
		plotPath  = flag.String("plot", "", "optional spectrum plot output (PNG)")

		drivePath = flag.String("drive", "", "optional drive signal output path")
		rate      = flag.Float64("rate", 50, "drive signal sample rate [Hz]")
		duration  = flag.Float64("duration", 60, "drive signal length [s]")
		limit     = flag.Float64("limit", 0, "drive signal peak stroke limit; 0 disables")
	)

	flag.Parse()

	params, err := buildParams(*alpha, *wp, *wmax, *gamma, *s1, *s2, *vel10, *fetch)
	if err != nil {
		fatal(err)
	}

	sampling, err := bins.ParseScheme(*scheme)
	if err != nil {
		fatal(err)
	}

	outMode, err := integrate.ParseMode(*mode)
	if err != nil {
		fatal(err)
	}

	geometry, err := paddle.ParseKind(*kind)
	if err != nil {
		fatal(err)
	}

	sc := sea.Scenario{
		Params: params,
		Bins:   *nBins,
		Step:   *dw,
		Mode:   outMode,
		Budget: *budget,
		Depth:  *depth,
		Kind:   geometry,
	}

	result, err := sea.Run(sc, bins.WithScheme(sampling), bins.WithSeed(*seed))
	if err != nil {
		fatal(err)
	}

	if err := report.Params(os.Stdout, params); err != nil {
		fatal(err)
	}

	if err := report.Summary(os.Stdout, result); err != nil {
		fatal(err)
	}

	fmt.Println()

	if err := report.BinTable(os.Stdout, result); err != nil {
		fatal(err)
	}

	if err := report.WriteSweepFile(*out, params, 0, *sweepMax, *sweepStep); err != nil {
		fatal(err)
	}

	if *plotPath != "" {
		if err := savePlot(*plotPath, params, *sweepMax, *sweepStep); err != nil {
			fatal(err)
		}
	}

	if *drivePath != "" {
		cfg := paddle.SynthConfig{SampleRate: *rate, Duration: *duration, StrokeLimit: *limit}

		src := rand.NewPCG(*seed, *seed)

		signal, err := paddle.Synthesize(result.Strokes, result.Centers, cfg, src)
		if err != nil {
			fatal(err)
		}

		if err := writeDrive(*drivePath, signal, *rate); err != nil {
			fatal(err)
		}
	}
}

// buildParams prefers the wind observation when one is given; a partial
// observation (only one of -vel10/-fetch) is an error rather than a
// silent fallback.
func buildParams(alpha, wp, wmax, gamma, s1, s2, vel10, fetch float64) (jonswap.Params, error) {
	if vel10 != 0 || fetch != 0 {
		return jonswap.FromWindFetch(vel10, fetch)
	}

	p := jonswap.Params{Alpha: alpha, Wp: wp, Wmax: wmax, Gamma: gamma, S1: s1, S2: s2}

	return p, p.Validate()
}

// writeDrive writes the drive signal as a two-column t\tx table.
func writeDrive(path string, signal []float64, rate float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	for i, v := range signal {
		if _, err := fmt.Fprintf(f, "%g\t%g\n", float64(i)/rate, v); err != nil {
			f.Close()
			return err
		}
	}

	return f.Close()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// Package report renders pipeline results for humans and writes the
// flat-text spectrum table. It is pure presentation: nothing here feeds
// back into the computation.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavemaker/jonswap"
	"github.com/cwbudde/algo-wavemaker/sea"
)

// Errors returned by the sweep writer.
var (
	ErrInvalidRange = errors.New("report: sweep range must satisfy lo < hi")
	ErrInvalidStep  = errors.New("report: sweep step must be positive")
)

// Params writes a human-readable dump of the spectrum parameters. When
// the parameters were derived from a wind observation, the observation
// is included.
func Params(w io.Writer, p jonswap.Params) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "jonswap params:")
	fmt.Fprintf(tw, "alpha\t%g\n", p.Alpha)
	fmt.Fprintf(tw, "gamma\t%g\n", p.Gamma)
	fmt.Fprintf(tw, "w_p\t%g\n", p.Wp)
	fmt.Fprintf(tw, "w_max\t%g\n", p.Wmax)
	fmt.Fprintf(tw, "s1\t%g\t(w <= w_p)\n", p.S1)
	fmt.Fprintf(tw, "s2\t%g\t(w > w_p)\n", p.S2)

	if p.Vel10 > 0 && p.Fetch > 0 {
		fmt.Fprintf(tw, "vel10\t%g\n", p.Vel10)
		fmt.Fprintf(tw, "F\t%g\n", p.Fetch)
	}

	return tw.Flush()
}

// Summary writes the bin count and result vector sizes.
func Summary(w io.Writer, r sea.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Nbins\t%d\n", r.Set.NumBins())
	fmt.Fprintf(tw, "Amps\t[ 1 x %d ]\n", len(r.Strokes))
	fmt.Fprintf(tw, "W_c\t[ 1 x %d ]\n", len(r.Centers))

	return tw.Flush()
}

// BinTable writes one row per bin: its edges, center frequency, and
// stroke amplitude.
func BinTable(w io.Writer, r sea.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Bin\tW_c\tAmp\n")

	edges := r.Set.Edges()
	for i, s := range r.Strokes {
		fmt.Fprintf(tw, "%.4g - %.4g\t%.4g\t%.6g\n", edges[i], edges[i+1], r.Centers[i], s)
	}

	return tw.Flush()
}

// WriteSweep writes a two-column whitespace-delimited table of the
// spectral density over [lo, hi] at the given step, one `w amp` row per
// sample. A lo of zero (or below) starts at step instead, where the
// density is defined.
func WriteSweep(w io.Writer, p jonswap.Params, lo, hi, step float64) error {
	if step <= 0 {
		return ErrInvalidStep
	}

	if hi <= lo {
		return ErrInvalidRange
	}

	if err := p.Validate(); err != nil {
		return err
	}

	if lo <= 0 {
		lo = step
	}

	if _, err := fmt.Fprintf(w, "w\tamp\n"); err != nil {
		return err
	}

	for x := lo; x <= hi; x += step {
		d, err := p.Density(x)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "%g\t%g\n", x, d); err != nil {
			return err
		}
	}

	return nil
}

// WriteSweepFile writes the sweep table to path, truncating any
// previous content.
func WriteSweepFile(path string, p jonswap.Params, lo, hi, step float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if err := WriteSweep(f, p, lo, hi, step); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Package integrate converts a wave spectrum and a bin partition into
// per-bin energies by composite trapezoidal integration.
package integrate

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavemaker/bins"
	"github.com/cwbudde/algo-wavemaker/jonswap"
)

// Errors returned by integration and renormalization.
var (
	ErrInvalidStep   = errors.New("integrate: step must be positive")
	ErrInvalidBudget = errors.New("integrate: stroke budget must be positive")
	ErrZeroTotal     = errors.New("integrate: total energy is zero")
	ErrUnknownMode   = errors.New("integrate: unknown output mode")
)

// Mode selects the per-bin output form.
type Mode int

// Output modes.
const (
	// ModeRaw reports each bin's integrated energy.
	ModeRaw Mode = iota

	// ModeDensity reports each bin's energy divided by its width,
	// the depth-independent form used for reporting.
	ModeDensity
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeRaw:
		return "raw"
	case ModeDensity:
		return "density"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a configuration name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "raw":
		return ModeRaw, nil
	case "density":
		return ModeDensity, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Config holds the integration settings.
type Config struct {
	Step float64 // trapezoid step dw in rad/s, must be > 0
	Mode Mode
}

// PerBin integrates the spectral density over each bin of the partition
// and returns one value per bin, in bin order. The result is a fresh
// slice on every call.
//
// Each bin [lo, hi) is integrated with the composite trapezoid rule at
// step cfg.Step; the final partial step is clamped to hi. The first bin
// starts sampling at cfg.Step instead of 0 because the density is
// undefined at w = 0. The step must be small enough to place at least
// one trapezoid in every bin, otherwise that bin integrates to zero.
func PerBin(params jonswap.Params, set bins.BinSet, cfg Config) ([]float64, error) {
	if cfg.Step <= 0 {
		return nil, ErrInvalidStep
	}

	if cfg.Mode != ModeRaw && cfg.Mode != ModeDensity {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(cfg.Mode))
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	edges := set.Edges()
	widths := set.Widths()

	out := make([]float64, set.NumBins())
	for i := range out {
		lo, hi := edges[i], edges[i+1]
		if lo == 0 {
			lo = cfg.Step
		}

		energy, err := binEnergy(params, lo, hi, cfg.Step)
		if err != nil {
			return nil, fmt.Errorf("integrate: bin %d: %w", i, err)
		}

		if cfg.Mode == ModeDensity {
			energy /= widths[i]
		}

		out[i] = energy
	}

	return out, nil
}

// binEnergy runs the composite trapezoid rule over [lo, hi).
func binEnergy(params jonswap.Params, lo, hi, step float64) (float64, error) {
	area := 0.0

	for x := lo; x < hi; x += step {
		upper := x + step
		if upper > hi {
			upper = hi
		}

		d1, err := params.Density(x)
		if err != nil {
			return 0, err
		}

		d2, err := params.Density(upper)
		if err != nil {
			return 0, err
		}

		area += (upper - x) * (d1 + d2) / 2
	}

	return area, nil
}

// NormalizeToBudget rescales the per-bin energies so their sum equals
// the caller-supplied stroke budget. The input is left untouched; the
// scaled values are returned as a fresh slice.
func NormalizeToBudget(energies []float64, budget float64) ([]float64, error) {
	if budget <= 0 {
		return nil, ErrInvalidBudget
	}

	total := vecmath.Sum(energies)
	if total == 0 {
		return nil, ErrZeroTotal
	}

	out := make([]float64, len(energies))
	vecmath.ScaleBlock(out, energies, budget/total)

	return out, nil
}

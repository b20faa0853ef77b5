// Package sea runs the full wavemaker pipeline: spectrum, bin
// partition, per-bin energy, and paddle stroke amplitudes.
//
// Run is a pure function: every call produces fresh result slices.
// Callers that want the historical append-across-runs behavior opt in
// through an Accumulator.
package sea

import (
	"errors"

	"github.com/cwbudde/algo-wavemaker/bins"
	"github.com/cwbudde/algo-wavemaker/integrate"
	"github.com/cwbudde/algo-wavemaker/jonswap"
	"github.com/cwbudde/algo-wavemaker/paddle"
)

// Errors returned by scenario validation.
var (
	ErrInvalidBinCount = errors.New("sea: bin count must be >= 1")
	ErrInvalidBudget   = errors.New("sea: stroke budget must not be negative")
)

// Scenario describes one end-to-end run.
type Scenario struct {
	Params jonswap.Params
	Bins   int            // number of frequency bins
	Step   float64        // integration step dw in rad/s
	Mode   integrate.Mode // per-bin output form
	Budget float64        // total stroke budget; 0 disables renormalization
	Depth  float64        // water depth in m
	Kind   paddle.Kind    // wavemaker geometry
}

// Validate checks the scenario settings.
func (s Scenario) Validate() error {
	if err := s.Params.Validate(); err != nil {
		return err
	}

	if s.Bins < 1 {
		return ErrInvalidBinCount
	}

	if s.Step <= 0 {
		return integrate.ErrInvalidStep
	}

	if s.Budget < 0 {
		return ErrInvalidBudget
	}

	if s.Depth <= 0 {
		return paddle.ErrInvalidDepth
	}

	return nil
}

// Result holds one run's outputs. All slices are freshly allocated and
// share no memory with the pipeline stages.
type Result struct {
	Set      bins.BinSet
	Centers  []float64
	Energies []float64
	Strokes  []float64
}

// Run executes the pipeline for the scenario. Partitioning options
// (scheme, random source, attempt bound) pass through to the bin
// partitioner. Stages run strictly in dependency order; the first
// failing stage aborts the run with no partial results.
func Run(sc Scenario, opts ...bins.Option) (Result, error) {
	if err := sc.Validate(); err != nil {
		return Result{}, err
	}

	pt, err := bins.NewPartitioner(sc.Params, opts...)
	if err != nil {
		return Result{}, err
	}

	set, err := pt.Partition(sc.Bins)
	if err != nil {
		return Result{}, err
	}

	energies, err := integrate.PerBin(sc.Params, set, integrate.Config{Step: sc.Step, Mode: sc.Mode})
	if err != nil {
		return Result{}, err
	}

	if sc.Budget > 0 {
		energies, err = integrate.NormalizeToBudget(energies, sc.Budget)
		if err != nil {
			return Result{}, err
		}
	}

	strokes, err := paddle.StrokeSlice(energies, set, sc.Depth, sc.Kind)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Set:      set,
		Centers:  set.Centers(),
		Energies: energies,
		Strokes:  strokes,
	}, nil
}

// Accumulator collects energies and strokes across repeated runs. This
// is the explicit opt-in replacement for the historical behavior where
// the model appended into its own output vectors on every call.
type Accumulator struct {
	Energies []float64
	Strokes  []float64
}

// Add appends a run's vectors to the accumulated ones.
func (a *Accumulator) Add(r Result) {
	a.Energies = append(a.Energies, r.Energies...)
	a.Strokes = append(a.Strokes, r.Strokes...)
}

// Reset drops everything accumulated so far.
func (a *Accumulator) Reset() {
	a.Energies = a.Energies[:0]
	a.Strokes = a.Strokes[:0]
}

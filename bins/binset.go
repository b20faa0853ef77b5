package bins

import (
	"errors"
	"fmt"
)

// Errors returned by bin set construction.
var (
	ErrEmptyBinSet     = errors.New("bins: wmax must be positive")
	ErrBoundOrder      = errors.New("bins: boundaries must be strictly increasing")
	ErrBoundOutOfRange = errors.New("bins: boundaries must lie strictly inside (0, wmax)")
)

// BinSet is an immutable partition of [0, wmax) into contiguous bins.
//
// The n-1 interior boundaries are strictly increasing and lie strictly
// inside (0, wmax), yielding exactly n bins with implicit outer edges 0
// and wmax. Accessors return fresh slices; a BinSet is never mutated
// after construction.
type BinSet struct {
	bounds []float64
	wmax   float64
}

// NewBinSet builds a BinSet from interior boundaries and an upper edge.
// The boundaries must be strictly increasing and strictly inside
// (0, wmax); an empty boundary slice yields the trivial single-bin set.
func NewBinSet(bounds []float64, wmax float64) (BinSet, error) {
	if wmax <= 0 {
		return BinSet{}, ErrEmptyBinSet
	}

	for i, b := range bounds {
		if b <= 0 || b >= wmax {
			return BinSet{}, fmt.Errorf("bins: boundary %d = %g: %w", i, b, ErrBoundOutOfRange)
		}

		if i > 0 && b <= bounds[i-1] {
			return BinSet{}, fmt.Errorf("bins: boundary %d = %g: %w", i, b, ErrBoundOrder)
		}
	}

	set := BinSet{
		bounds: make([]float64, len(bounds)),
		wmax:   wmax,
	}
	copy(set.bounds, bounds)

	return set, nil
}

// NumBins returns the number of bins (interior boundaries + 1).
func (s BinSet) NumBins() int {
	return len(s.bounds) + 1
}

// Wmax returns the upper edge of the partitioned domain.
func (s BinSet) Wmax() float64 {
	return s.wmax
}

// Bounds returns a copy of the interior boundaries in ascending order.
func (s BinSet) Bounds() []float64 {
	out := make([]float64, len(s.bounds))
	copy(out, s.bounds)
	return out
}

// Edges returns all n+1 bin edges including the implicit outer edges:
// 0, b_1, ..., b_{n-1}, wmax.
func (s BinSet) Edges() []float64 {
	out := make([]float64, 0, len(s.bounds)+2)
	out = append(out, 0)
	out = append(out, s.bounds...)
	out = append(out, s.wmax)
	return out
}

// Centers returns the representative center frequency of each bin, the
// midpoint of its two edges. The first bin spans [0, b_1) so its center
// is b_1/2; the last spans [b_{n-1}, wmax) with center (b_{n-1}+wmax)/2.
func (s BinSet) Centers() []float64 {
	edges := s.Edges()

	out := make([]float64, len(edges)-1)
	for i := range out {
		out[i] = (edges[i] + edges[i+1]) / 2
	}

	return out
}

// Widths returns the width of each bin.
func (s BinSet) Widths() []float64 {
	edges := s.Edges()

	out := make([]float64, len(edges)-1)
	for i := range out {
		out[i] = edges[i+1] - edges[i]
	}

	return out
}

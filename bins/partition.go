package bins

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-wavemaker/jonswap"
)

// Scheme selects the boundary sampling strategy.
type Scheme int

// Available sampling schemes.
const (
	// PeakWeightedNormal draws boundaries from N(wp, wp/2) with rejection,
	// concentrating bins near the spectral peak.
	PeakWeightedNormal Scheme = iota

	// UniformJittered spaces boundaries evenly at wmax/n and perturbs each
	// by up to ±20% of the bin width. Deterministic draw count.
	UniformJittered
)

// String returns the configuration name of the scheme.
func (s Scheme) String() string {
	switch s {
	case PeakWeightedNormal:
		return "peak-weighted-normal"
	case UniformJittered:
		return "uniform-jittered"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ParseScheme maps a configuration name to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch name {
	case "peak-weighted-normal":
		return PeakWeightedNormal, nil
	case "uniform-jittered":
		return UniformJittered, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
}

// DefaultAttemptsPerBin bounds the rejection sampling loop: a partition
// into n bins may draw at most DefaultAttemptsPerBin*n candidates before
// failing with ErrSamplingDivergence.
const DefaultAttemptsPerBin = 10000

// Errors returned by partitioning.
var (
	ErrTooFewBins         = errors.New("bins: bin count must be >= 1")
	ErrSamplingDivergence = errors.New("bins: boundary sampling failed to converge")
	ErrUnknownScheme      = errors.New("bins: unknown sampling scheme")
)

// Partitioner produces bin partitions of a spectrum's frequency domain.
type Partitioner struct {
	wp             float64
	wmax           float64
	scheme         Scheme
	src            rand.Source
	attemptsPerBin int
}

// Option configures a Partitioner.
type Option func(*Partitioner)

// WithScheme selects the boundary sampling scheme.
func WithScheme(scheme Scheme) Option {
	return func(p *Partitioner) {
		p.scheme = scheme
	}
}

// WithSource sets the random source used for boundary sampling. Passing
// an explicit source makes partitions reproducible.
func WithSource(src rand.Source) Option {
	return func(p *Partitioner) {
		if src != nil {
			p.src = src
		}
	}
}

// WithSeed seeds a fresh PCG source, shorthand for WithSource.
func WithSeed(seed uint64) Option {
	return func(p *Partitioner) {
		p.src = rand.NewPCG(seed, seed)
	}
}

// WithAttemptsPerBin overrides the rejection sampling bound.
func WithAttemptsPerBin(n int) Option {
	return func(p *Partitioner) {
		if n > 0 {
			p.attemptsPerBin = n
		}
	}
}

// NewPartitioner creates a partitioner for the spectrum's domain. The
// spectrum parameters supply the peak frequency and upper bound; they
// must validate.
func NewPartitioner(params jonswap.Params, opts ...Option) (*Partitioner, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	p := &Partitioner{
		wp:             params.Wp,
		wmax:           params.Wmax,
		scheme:         PeakWeightedNormal,
		attemptsPerBin: DefaultAttemptsPerBin,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	if p.src == nil {
		p.src = rand.NewPCG(1, 1)
	}

	return p, nil
}

// Partition splits [0, wmax) into n contiguous bins and returns the
// resulting immutable BinSet. n must be >= 1; n = 1 yields the trivial
// single-bin set with no interior boundaries.
func (p *Partitioner) Partition(n int) (BinSet, error) {
	if n < 1 {
		return BinSet{}, ErrTooFewBins
	}

	if n == 1 {
		return BinSet{wmax: p.wmax}, nil
	}

	var bounds []float64

	switch p.scheme {
	case PeakWeightedNormal:
		var err error

		bounds, err = p.samplePeakWeighted(n)
		if err != nil {
			return BinSet{}, err
		}
	case UniformJittered:
		bounds = p.sampleUniformJittered(n)
	default:
		return BinSet{}, fmt.Errorf("%w: %d", ErrUnknownScheme, int(p.scheme))
	}

	return BinSet{bounds: bounds, wmax: p.wmax}, nil
}

// samplePeakWeighted rejection-samples n-1 distinct boundaries from
// N(wp, wp/2), accepting only values strictly inside (0, wmax).
// Duplicates are merged, which can require extra draws; the total draw
// count is capped at attemptsPerBin*n.
func (p *Partitioner) samplePeakWeighted(n int) ([]float64, error) {
	dist := distuv.Normal{
		Mu:    p.wp,
		Sigma: p.wp / 2,
		Src:   p.src,
	}

	limit := p.attemptsPerBin * n
	want := n - 1

	seen := make(map[float64]struct{}, want)
	bounds := make([]float64, 0, want)

	for draws := 0; len(bounds) < want; draws++ {
		if draws >= limit {
			return nil, fmt.Errorf("%w: %d of %d boundaries after %d draws",
				ErrSamplingDivergence, len(bounds), want, draws)
		}

		b := dist.Rand()
		if b <= 0 || b >= p.wmax {
			continue
		}

		if _, dup := seen[b]; dup {
			continue
		}

		seen[b] = struct{}{}
		bounds = append(bounds, b)
	}

	sort.Float64s(bounds)

	return bounds, nil
}

// sampleUniformJittered places boundaries at i*wmax/n plus a uniform
// jitter of at most ±20% of the bin width. Adjacent boundaries keep a
// gap of at least 0.6 bin widths, so the result is always strictly
// increasing and strictly inside (0, wmax).
func (p *Partitioner) sampleUniformJittered(n int) []float64 {
	rng := rand.New(p.src)
	width := p.wmax / float64(n)

	bounds := make([]float64, n-1)
	for i := range bounds {
		jitter := (rng.Float64()*2 - 1) * 0.2 * width
		bounds[i] = float64(i+1)*width + jitter
	}

	return bounds
}

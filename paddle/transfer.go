package paddle

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavemaker/bins"
	"github.com/cwbudde/algo-wavemaker/jonswap"
)

// Errors returned by the transfer computations.
var (
	ErrInvalidDepth     = errors.New("paddle: water depth must be positive")
	ErrInvalidFrequency = errors.New("paddle: center frequency must be positive")
	ErrDegenerateBin    = errors.New("paddle: wavenumber too small for transfer function")
	ErrUnknownKind      = errors.New("paddle: unknown wavemaker kind")
	ErrNegativeEnergy   = errors.New("paddle: bin energy must not be negative")
	ErrInvalidWidth     = errors.New("paddle: bin width must be positive")
	ErrLengthMismatch   = errors.New("paddle: energy count must match bin count")
)

// khDegenerate is the threshold below which the relative depth kh is
// treated as a degenerate bin: the flap transfer function divides by kh
// and both geometries lose all stroke authority as kh -> 0.
const khDegenerate = 1e-9

// khDeepWater is the relative depth beyond which the hyperbolic terms
// would overflow; both geometries are indistinguishable from their
// deep-water limit long before that.
const khDeepWater = 350

// Kind selects the wavemaker geometry.
type Kind int

// Wavemaker geometries.
const (
	Flap Kind = iota
	Piston
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case Flap:
		return "flap"
	case Piston:
		return "piston"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a configuration name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "flap":
		return Flap, nil
	case "piston":
		return Piston, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Wavenumber returns the relative depth kh for angular frequency w and
// water depth via the explicit Eckart/Fenton approximation:
//
//	k0 = w²/g
//	kh = k0*depth * (1 - exp(-(k0*depth)^1.25))^-0.4
//
// In deep water the correction factor tends to 1 and kh approaches
// k0*depth.
func Wavenumber(w, depth float64) (float64, error) {
	if depth <= 0 {
		return 0, ErrInvalidDepth
	}

	if w <= 0 {
		return 0, ErrInvalidFrequency
	}

	kd := w * w / jonswap.Gravity * depth

	return kd * math.Pow(1-math.Exp(-math.Pow(kd, 1.25)), -0.4), nil
}

// TransferRatio returns the height-to-stroke ratio HoS of the wavemaker
// for relative depth kh:
//
//	piston: 2*(cosh(2kh)-1) / (sinh(2kh) + 2kh)
//	flap  : 4*(sinh(kh)/kh) * (kh*sinh(kh) - cosh(kh) + 1) / (sinh(2kh) + 2kh)
//
// A vanishing kh fails with ErrDegenerateBin instead of propagating a
// division by zero.
func TransferRatio(kh float64, kind Kind) (float64, error) {
	if kh < khDegenerate {
		return 0, fmt.Errorf("%w: kh = %g", ErrDegenerateBin, kh)
	}

	switch kind {
	case Piston:
		if kh > khDeepWater {
			return 2, nil
		}

		return 2 * (math.Cosh(2*kh) - 1) / (math.Sinh(2*kh) + 2*kh), nil
	case Flap:
		if kh > khDeepWater {
			return 2 * (kh - 1) / kh, nil
		}

		sinh := math.Sinh(kh)

		return 4 * (sinh / kh) * (kh*sinh - math.Cosh(kh) + 1) / (math.Sinh(2*kh) + 2*kh), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// Stroke converts one bin's energy, width, and center frequency into a
// physical paddle stroke amplitude at the given water depth:
//
//	stroke = sqrt(2*energy*width) / HoS(kh)
func Stroke(energy, width, wc, depth float64, kind Kind) (float64, error) {
	if energy < 0 {
		return 0, ErrNegativeEnergy
	}

	if width <= 0 {
		return 0, ErrInvalidWidth
	}

	kh, err := Wavenumber(wc, depth)
	if err != nil {
		return 0, err
	}

	hos, err := TransferRatio(kh, kind)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(2*energy*width) / hos, nil
}

// StrokeSlice converts a per-bin energy vector into per-bin stroke
// amplitudes using the partition's center frequencies and widths. The
// result is a fresh slice; a failing bin fails the whole call with its
// index in the error, producing no partial results.
func StrokeSlice(energies []float64, set bins.BinSet, depth float64, kind Kind) ([]float64, error) {
	if len(energies) != set.NumBins() {
		return nil, fmt.Errorf("%w: %d energies for %d bins", ErrLengthMismatch, len(energies), set.NumBins())
	}

	centers := set.Centers()
	widths := set.Widths()

	out := make([]float64, len(energies))
	for i, e := range energies {
		s, err := Stroke(e, widths[i], centers[i], depth, kind)
		if err != nil {
			return nil, fmt.Errorf("paddle: bin %d: %w", i, err)
		}

		out[i] = s
	}

	return out, nil
}

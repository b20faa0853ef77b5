package jonswap

import (
	"errors"
	"fmt"
	"math"
)

// Gravity is the gravitational acceleration in m/s² used throughout the
// spectrum and transfer computations.
const Gravity = 9.81

// Errors returned by spectrum construction and evaluation.
var (
	ErrInvalidAlpha         = errors.New("jonswap: alpha must be positive")
	ErrInvalidPeakFrequency = errors.New("jonswap: peak frequency must be positive")
	ErrFrequencyOrder       = errors.New("jonswap: wmax must be greater than wp")
	ErrInvalidGamma         = errors.New("jonswap: gamma must be positive")
	ErrInvalidShape         = errors.New("jonswap: shape parameters must be positive")
	ErrInvalidWindSpeed     = errors.New("jonswap: wind speed must be positive")
	ErrInvalidFetch         = errors.New("jonswap: fetch must be positive")
	ErrNonPositiveFrequency = errors.New("jonswap: frequency must be positive")
)

// Params holds the JONSWAP spectrum shape parameters.
//
// A Params value is immutable after construction: all evaluation methods
// take a value receiver and never modify it.
type Params struct {
	Alpha float64 // energy scale (Phillips constant)
	Wp    float64 // peak angular frequency in rad/s
	Wmax  float64 // upper bound of the spectral domain in rad/s
	Gamma float64 // peak enhancement factor
	S1    float64 // spectral width for w <= Wp
	S2    float64 // spectral width for w > Wp

	// Wind observation the parameters were derived from, retained for
	// reporting only. Zero when Params was constructed directly.
	Vel10 float64 // wind speed at 10 m in m/s
	Fetch float64 // fetch length in m
}

// Validate checks that the spectrum parameters are physically meaningful.
func (p Params) Validate() error {
	if p.Alpha <= 0 {
		return ErrInvalidAlpha
	}

	if p.Wp <= 0 {
		return ErrInvalidPeakFrequency
	}

	if p.Wmax <= p.Wp {
		return ErrFrequencyOrder
	}

	if p.Gamma <= 0 {
		return ErrInvalidGamma
	}

	if p.S1 <= 0 || p.S2 <= 0 {
		return ErrInvalidShape
	}

	return nil
}

// FromWindFetch derives spectrum parameters from a 10 m wind speed and a
// fetch length using the standard JONSWAP closed-form relations:
//
//	alpha = 0.076 * ((vel10²/F) / g)^0.22
//	wp    = 22 * cbrt(g² / (vel10*F))
//	wmax  = 33*wp / (2π)
//
// The peak enhancement factor and spectral widths take the canonical
// values gamma = 3.3, s1 = 0.7, s2 = 0.9. The wind observation is
// retained on the returned Params for reporting and plays no further
// role in any computation.
func FromWindFetch(vel10, fetch float64) (Params, error) {
	if vel10 <= 0 {
		return Params{}, ErrInvalidWindSpeed
	}

	if fetch <= 0 {
		return Params{}, ErrInvalidFetch
	}

	wp := 22 * math.Cbrt(Gravity*Gravity/(vel10*fetch))

	p := Params{
		Alpha: 0.076 * math.Pow((vel10*vel10/fetch)/Gravity, 0.22),
		Wp:    wp,
		Wmax:  33 * wp / (2 * math.Pi),
		Gamma: 3.3,
		S1:    0.7,
		S2:    0.9,
		Vel10: vel10,
		Fetch: fetch,
	}

	return p, nil
}

// Density evaluates the JONSWAP spectral density at angular frequency w:
//
//	s(w)    = s1 if w <= wp else s2
//	r(w)    = exp(-((w-wp)/(s(w)*wp))² / 2)
//	S(w)    = alpha * g² * w⁻⁵ * exp(-1.2*(wp/w)⁴) * gamma^r(w)
//
// The density is undefined at w = 0 (the w⁻⁵ term diverges); calling
// Density with w <= 0 returns ErrNonPositiveFrequency.
func (p Params) Density(w float64) (float64, error) {
	if w <= 0 {
		return 0, ErrNonPositiveFrequency
	}

	s := p.S1
	if w > p.Wp {
		s = p.S2
	}

	dev := (w - p.Wp) / (s * p.Wp)
	r := math.Exp(-dev * dev / 2)

	ratio := p.Wp / w
	ratio2 := ratio * ratio
	decay := math.Exp(-1.2 * ratio2 * ratio2)

	return p.Alpha * Gravity * Gravity * math.Pow(w, -5) * decay * math.Pow(p.Gamma, r), nil
}

// DensitySlice evaluates the density elementwise over an ordered sequence
// of frequencies. Element i of the output corresponds to element i of the
// input; no index is skipped. Any non-positive frequency fails the whole
// call with the offending index in the error.
func (p Params) DensitySlice(w []float64) ([]float64, error) {
	out := make([]float64, len(w))

	for i, wi := range w {
		d, err := p.Density(wi)
		if err != nil {
			return nil, fmt.Errorf("jonswap: w[%d]: %w", i, err)
		}
		out[i] = d
	}

	return out, nil
}

// PeakDensity returns the density at the spectral peak. At w = wp the
// peak-enhancement exponent r is exactly 1, so the value reduces to
// alpha*g²*wp⁻⁵*exp(-1.2)*gamma.
func (p Params) PeakDensity() float64 {
	return p.Alpha * Gravity * Gravity * math.Pow(p.Wp, -5) * math.Exp(-1.2) * p.Gamma
}

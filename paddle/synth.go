package paddle

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by drive-signal synthesis.
var (
	ErrInvalidSampleRate = errors.New("paddle: sample rate must be positive")
	ErrInvalidDuration   = errors.New("paddle: duration must be positive")
	ErrNoComponents      = errors.New("paddle: component set is empty")
	ErrComponentMismatch = errors.New("paddle: stroke and frequency counts differ")
)

// SynthConfig holds the drive-signal realization settings.
type SynthConfig struct {
	SampleRate  float64 // samples per second
	Duration    float64 // signal length in seconds
	StrokeLimit float64 // peak stroke clamp; 0 disables limiting
}

// Validate checks the synthesis settings.
func (c SynthConfig) Validate() error {
	if c.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	if c.Duration <= 0 {
		return ErrInvalidDuration
	}

	if c.StrokeLimit < 0 {
		return fmt.Errorf("paddle: stroke limit must not be negative: %g", c.StrokeLimit)
	}

	return nil
}

// Synthesize realizes a set of stroke components as a paddle drive time
// series. Each component is a cosine at its bin's center frequency with
// the bin's stroke amplitude and a random phase drawn from src; the sum
// is evaluated through an inverse FFT. Frequencies are in rad/s.
//
// With a positive StrokeLimit the signal peak is rescaled down to the
// limit when it exceeds it; the limit never scales a quiet signal up.
//
// This is a one-shot batch computation: the whole series is produced in
// a single call and the function holds no state between calls.
func Synthesize(strokes, centers []float64, cfg SynthConfig, src rand.Source) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(strokes) == 0 {
		return nil, ErrNoComponents
	}

	if len(strokes) != len(centers) {
		return nil, fmt.Errorf("%w: %d strokes, %d frequencies",
			ErrComponentMismatch, len(strokes), len(centers))
	}

	samples := int(math.Round(cfg.SampleRate * cfg.Duration))
	if samples < 1 {
		return nil, ErrInvalidDuration
	}

	fftSize := nextPowerOf2(samples)
	if fftSize < 8 {
		fftSize = 8
	}

	if src == nil {
		src = rand.NewPCG(1, 1)
	}
	rng := rand.New(src)

	// Conjugate-symmetric half spectrum: a component of amplitude A at
	// bin k contributes X[k] = (N*A/2)*e^(i phi) and its mirror, so the
	// normalized inverse transform yields A*cos(2*pi*k*n/N + phi).
	spectrum := make([]complex128, fftSize)
	binSpacing := 2 * math.Pi * cfg.SampleRate / float64(fftSize)

	for i, s := range strokes {
		if centers[i] <= 0 {
			return nil, fmt.Errorf("paddle: component %d: %w", i, ErrInvalidFrequency)
		}

		bin := int(math.Round(centers[i] / binSpacing))
		if bin < 1 {
			bin = 1
		}

		if bin > fftSize/2-1 {
			bin = fftSize/2 - 1
		}

		c := cmplx.Rect(s*float64(fftSize)/2, rng.Float64()*2*math.Pi)
		spectrum[bin] += c
		spectrum[fftSize-bin] += cmplx.Conj(c)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("paddle: failed to create FFT plan: %w", err)
	}

	wave := make([]complex128, fftSize)
	if err := plan.Inverse(wave, spectrum); err != nil {
		return nil, fmt.Errorf("paddle: inverse FFT failed: %w", err)
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = real(wave[i])
	}

	if cfg.StrokeLimit > 0 {
		if peak := vecmath.MaxAbs(out); peak > cfg.StrokeLimit {
			vecmath.ScaleBlockInPlace(out, cfg.StrokeLimit/peak)
		}
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}

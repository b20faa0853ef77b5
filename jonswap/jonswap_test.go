package jonswap

import (
	"errors"
	"math"
	"testing"
)

func TestParamsValidate(t *testing.T) {
	valid := Params{Alpha: 0.0081, Wp: 0.8, Wmax: 3, Gamma: 3.3, S1: 0.07, S2: 0.09}

	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr error
	}{
		{"valid", func(*Params) {}, nil},
		{"zero alpha", func(p *Params) { p.Alpha = 0 }, ErrInvalidAlpha},
		{"negative alpha", func(p *Params) { p.Alpha = -1 }, ErrInvalidAlpha},
		{"zero wp", func(p *Params) { p.Wp = 0 }, ErrInvalidPeakFrequency},
		{"wmax below wp", func(p *Params) { p.Wmax = 0.5 }, ErrFrequencyOrder},
		{"wmax equals wp", func(p *Params) { p.Wmax = p.Wp }, ErrFrequencyOrder},
		{"zero gamma", func(p *Params) { p.Gamma = 0 }, ErrInvalidGamma},
		{"zero s1", func(p *Params) { p.S1 = 0 }, ErrInvalidShape},
		{"negative s2", func(p *Params) { p.S2 = -0.1 }, ErrInvalidShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)

			if err := p.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDensityRejectsNonPositiveFrequency(t *testing.T) {
	p := Params{Alpha: 0.0081, Wp: 0.8, Wmax: 3, Gamma: 3.3, S1: 0.07, S2: 0.09}

	for _, w := range []float64{0, -0.5} {
		if _, err := p.Density(w); !errors.Is(err, ErrNonPositiveFrequency) {
			t.Errorf("Density(%g) error = %v, want ErrNonPositiveFrequency", w, err)
		}
	}
}

func TestDensityAtPeak(t *testing.T) {
	p := Params{Alpha: 0.0081, Wp: 0.8, Wmax: 3, Gamma: 3.3, S1: 0.07, S2: 0.09}

	// alpha*g²*wp⁻⁵*exp(-1.2)*gamma, pinned as a regression literal.
	const want = 2.364469195004008

	got, err := p.Density(p.Wp)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Density(wp) = %.15g, want %.15g", got, want)
	}

	if pk := p.PeakDensity(); math.Abs(pk-want) > 1e-12 {
		t.Errorf("PeakDensity() = %.15g, want %.15g", pk, want)
	}
}

func TestDensityRegressionValues(t *testing.T) {
	p := Params{Alpha: 0.0081, Wp: 0.8, Wmax: 3, Gamma: 3.3, S1: 0.07, S2: 0.09}

	tests := []struct {
		w    float64
		want float64
	}{
		{0.5, 0.009583905791826768}, // below peak, s1 branch
		{1.2, 0.2471570649223703},   // above peak, s2 branch
	}

	for _, tt := range tests {
		got, err := p.Density(tt.w)
		if err != nil {
			t.Fatal(err)
		}

		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Density(%g) = %.15g, want %.15g", tt.w, got, tt.want)
		}
	}
}

func TestDensityShapeBranch(t *testing.T) {
	// With wildly different s1 and s2, the value just below the peak must
	// follow the s1 branch and just above it the s2 branch. The boundary
	// w = wp is inclusive to s1.
	narrow := Params{Alpha: 0.0081, Wp: 0.8, Wmax: 3, Gamma: 3.3, S1: 0.01, S2: 10}
	wide := Params{Alpha: 0.0081, Wp: 0.8, Wmax: 3, Gamma: 3.3, S1: 10, S2: 0.01}

	below, _ := narrow.Density(0.79)
	belowWide, _ := wide.Density(0.79)
	if below == belowWide {
		t.Error("density below peak should depend on s1")
	}

	above, _ := narrow.Density(0.81)
	aboveWide, _ := wide.Density(0.81)
	if above == aboveWide {
		t.Error("density above peak should depend on s2")
	}

	// At w = wp the exponent r is 1 regardless of the shape parameter, so
	// both parameter sets agree exactly.
	atNarrow, _ := narrow.Density(0.8)
	atWide, _ := wide.Density(0.8)
	if atNarrow != atWide {
		t.Errorf("density at peak should not depend on shape: %g vs %g", atNarrow, atWide)
	}
}

func TestDensitySliceElementwise(t *testing.T) {
	p := Params{Alpha: 0.0081, Wp: 0.8, Wmax: 3, Gamma: 3.3, S1: 0.07, S2: 0.09}

	w := []float64{0.3, 0.8, 1.5, 2.9}

	got, err := p.DensitySlice(w)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != len(w) {
		t.Fatalf("length = %d, want %d", len(got), len(w))
	}

	// Strict 1:1 correspondence, including index 0.
	for i, wi := range w {
		want, err := p.Density(wi)
		if err != nil {
			t.Fatal(err)
		}

		if got[i] != want {
			t.Errorf("out[%d] = %g, want Density(%g) = %g", i, got[i], wi, want)
		}
	}
}

func TestDensitySliceRejectsZero(t *testing.T) {
	p := Params{Alpha: 0.0081, Wp: 0.8, Wmax: 3, Gamma: 3.3, S1: 0.07, S2: 0.09}

	if _, err := p.DensitySlice([]float64{0.5, 0, 1.5}); !errors.Is(err, ErrNonPositiveFrequency) {
		t.Errorf("error = %v, want ErrNonPositiveFrequency", err)
	}
}

func TestFromWindFetch(t *testing.T) {
	p, err := FromWindFetch(10, 100000)
	if err != nil {
		t.Fatal(err)
	}

	// Closed-form relations evaluated directly, pinned as literals.
	if math.Abs(p.Alpha-0.010061121893912086) > 1e-15 {
		t.Errorf("alpha = %.15g", p.Alpha)
	}

	if math.Abs(p.Wp-1.0081736733065412) > 1e-12 {
		t.Errorf("wp = %.15g", p.Wp)
	}

	if math.Abs(p.Wmax-5.2950421788610385) > 1e-12 {
		t.Errorf("wmax = %.15g", p.Wmax)
	}

	if p.Gamma != 3.3 || p.S1 != 0.7 || p.S2 != 0.9 {
		t.Errorf("canonical shape parameters = %g/%g/%g", p.Gamma, p.S1, p.S2)
	}

	if p.Vel10 != 10 || p.Fetch != 100000 {
		t.Errorf("wind observation not retained: vel10=%g fetch=%g", p.Vel10, p.Fetch)
	}

	if err := p.Validate(); err != nil {
		t.Errorf("derived parameters should validate: %v", err)
	}
}

func TestFromWindFetchValidation(t *testing.T) {
	tests := []struct {
		name     string
		vel10, f float64
		wantErr  error
	}{
		{"zero wind", 0, 1000, ErrInvalidWindSpeed},
		{"negative wind", -5, 1000, ErrInvalidWindSpeed},
		{"zero fetch", 10, 0, ErrInvalidFetch},
		{"negative fetch", 10, -1, ErrInvalidFetch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromWindFetch(tt.vel10, tt.f); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

package bins

import (
	"errors"
	"testing"
)

func TestNewBinSetValidation(t *testing.T) {
	tests := []struct {
		name    string
		bounds  []float64
		wmax    float64
		wantErr error
	}{
		{"valid", []float64{0.5, 1, 2}, 3, nil},
		{"trivial", nil, 3, nil},
		{"zero wmax", nil, 0, ErrEmptyBinSet},
		{"bound at zero", []float64{0, 1}, 3, ErrBoundOutOfRange},
		{"bound at wmax", []float64{1, 3}, 3, ErrBoundOutOfRange},
		{"bound above wmax", []float64{4}, 3, ErrBoundOutOfRange},
		{"unsorted", []float64{2, 1}, 3, ErrBoundOrder},
		{"duplicate", []float64{1, 1}, 3, ErrBoundOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBinSet(tt.bounds, tt.wmax)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewBinSet() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBinSetAccessors(t *testing.T) {
	set, err := NewBinSet([]float64{0.5, 1.5}, 4)
	if err != nil {
		t.Fatal(err)
	}

	if got := set.NumBins(); got != 3 {
		t.Errorf("NumBins() = %d, want 3", got)
	}

	wantEdges := []float64{0, 0.5, 1.5, 4}
	if got := set.Edges(); !equalSlices(got, wantEdges) {
		t.Errorf("Edges() = %v, want %v", got, wantEdges)
	}

	wantCenters := []float64{0.25, 1, 2.75}
	if got := set.Centers(); !equalSlices(got, wantCenters) {
		t.Errorf("Centers() = %v, want %v", got, wantCenters)
	}

	wantWidths := []float64{0.5, 1, 2.5}
	if got := set.Widths(); !equalSlices(got, wantWidths) {
		t.Errorf("Widths() = %v, want %v", got, wantWidths)
	}
}

func TestBinSetImmutable(t *testing.T) {
	set, err := NewBinSet([]float64{1, 2}, 3)
	if err != nil {
		t.Fatal(err)
	}

	// Mutating any returned slice must not affect the set.
	set.Bounds()[0] = 99
	set.Edges()[0] = 99

	if got := set.Bounds()[0]; got != 1 {
		t.Errorf("Bounds()[0] = %g after external mutation, want 1", got)
	}
}

func TestBinSetTrivial(t *testing.T) {
	set, err := NewBinSet(nil, 5)
	if err != nil {
		t.Fatal(err)
	}

	if set.NumBins() != 1 {
		t.Fatalf("NumBins() = %d, want 1", set.NumBins())
	}

	centers := set.Centers()
	if len(centers) != 1 || centers[0] != 2.5 {
		t.Errorf("Centers() = %v, want [2.5]", centers)
	}
}

func equalSlices(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

package integrate

import (
	"testing"

	"github.com/cwbudde/algo-wavemaker/bins"
)

func BenchmarkPerBin(b *testing.B) {
	params := testParams()

	set, err := bins.NewBinSet([]float64{0.4, 0.7, 0.9, 1.3, 2.0}, params.Wmax)
	if err != nil {
		b.Fatal(err)
	}

	cfg := Config{Step: 0.001}

	b.ResetTimer()

	for b.Loop() {
		if _, err := PerBin(params, set, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

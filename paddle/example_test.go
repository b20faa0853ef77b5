package paddle_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavemaker/paddle"
)

func ExampleStroke() {
	stroke, err := paddle.Stroke(0.01, 0.5, 2.0, 0.7, paddle.Piston)
	if err != nil {
		panic(err)
	}

	fmt.Printf("stroke = %.4f m\n", stroke)

	// Output:
	// stroke = 0.1800 m
}

func ExampleTransferRatio() {
	kh, err := paddle.Wavenumber(2.0, 0.7)
	if err != nil {
		panic(err)
	}

	piston, err := paddle.TransferRatio(kh, paddle.Piston)
	if err != nil {
		panic(err)
	}

	flap, err := paddle.TransferRatio(kh, paddle.Flap)
	if err != nil {
		panic(err)
	}

	fmt.Printf("kh     = %.4f\n", kh)
	fmt.Printf("piston = %.4f\n", piston)
	fmt.Printf("flap   = %.4f\n", flap)

	// Output:
	// kh     = 0.5566
	// piston = 0.5555
	// flap   = 0.2847
}

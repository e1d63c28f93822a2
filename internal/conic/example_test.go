package conic_test

import (
	"fmt"

	"github.com/irfansharif/conics/internal/conic"
)

func ExampleAnalyze() {
	an, err := conic.Analyze(conic.Config{A: 1, B: -2, C: 1})
	if err != nil {
		panic(err)
	}
	fmt.Println(an.Equation)
	fmt.Println(an.Vertex, an.Metadata.Band)
	for _, lp := range an.Lattice[:3] {
		fmt.Println(lp.Point)
	}
	// Output:
	// y = x² - 2x + 1
	// (1, 0) narrow
	// (-3, 16)
	// (-2, 9)
	// (-1, 4)
}

func ExampleFormatEquation() {
	fmt.Println(conic.FormatEquation(conic.Parabola(0.25)))
	fmt.Println(conic.FormatEquation(conic.Config{A: -1, C: 4}))
	// Output:
	// y = x²/4
	// y = -x² + 4
}

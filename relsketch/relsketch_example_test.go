package relsketch_test

import (
	"fmt"

	"github.com/quantilelab/sketches-go/relsketch"
)

func Example() {
	sketch, err := relsketch.MemoryOptimal(0.01)
	if err != nil {
		panic(err)
	}

	for i := 1; i <= 1000; i++ {
		if err := sketch.Accept(float64(i)); err != nil {
			panic(err)
		}
	}

	anotherSketch, err := relsketch.MemoryOptimal(0.01)
	if err != nil {
		panic(err)
	}
	for i := 1001; i <= 2000; i++ {
		if err := anotherSketch.Accept(float64(i)); err != nil {
			panic(err)
		}
	}
	if err := sketch.MergeWith(anotherSketch); err != nil {
		panic(err)
	}

	quantiles, err := sketch.ValuesAtQuantiles([]float64{0.5, 0.75, 0.9, 1})
	if err != nil {
		panic(err)
	}
	// Each returned value is within 1% of the exact quantile.
	fmt.Println(len(quantiles), sketch.TotalCount())
	// Output:
	// 4 2000
}

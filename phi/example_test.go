package phi_test

import (
	"fmt"

	"github.com/anywave/ra-constants/phi"
)

func ExamplePower() {
	fmt.Printf("%.6f\n", phi.Power(2))
	fmt.Printf("%.6f\n", phi.Power(-1))

	// Output:
	// 2.618034
	// 0.618034
}

func ExampleFibonacciRatio() {
	fmt.Printf("%.4f\n", phi.FibonacciRatio(10))

	// Output:
	// 1.6182
}

func ExampleIsRatioDefault() {
	fmt.Println(phi.IsRatioDefault(1.0, phi.Phi))
	fmt.Println(phi.IsRatioDefault(1.0, 2.0))

	// Output:
	// true
	// false
}

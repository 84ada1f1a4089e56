package fixed_test

import (
	"fmt"

	"github.com/cwbudde/algo-dspref/dsp/fixed"
)

func ExampleSaturatingMul() {
	const q = 15
	a := int64(3 << (q - 2)) // 0.75
	b := int64(1 << (q - 1)) // 0.5

	fmt.Println(fixed.SaturatingMul(a, b, q))

	// Output:
	// 12288
}

func ExampleSaturate() {
	fmt.Println(fixed.Saturate(1<<31 - 1))
	fmt.Println(fixed.Saturate(1 << 31))
	fmt.Println(fixed.Saturate(-1<<31 - 1))

	// Output:
	// 2147483647
	// -2147483648
	// 2147483647
}

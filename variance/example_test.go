// SPDX-License-Identifier: MIT

package variance_test

import (
	"fmt"

	"github.com/larovann/winnow/variance"
	"gonum.org/v1/gonum/mat"
)

// Example demonstrates dropping a constant column with the default
// threshold of zero.
func Example() {
	X := mat.NewDense(3, 3, []float64{
		1, 4, 0.5,
		1, 5, 0.5,
		1, 6, 0.5,
	})

	sel := variance.NewSelector()
	Xr, err := sel.FitTransform(X)
	if err != nil {
		fmt.Println(err)
		return
	}

	r, c := Xr.Dims()
	mask, _ := sel.SupportMask()
	fmt.Printf("shape %dx%d mask %v\n", r, c, mask)
	// Output:
	// shape 3x1 mask [false true false]
}

package sweep_test

import (
	"context"
	"fmt"
	"math"

	"github.com/larovann/winnow/sweep"
)

// ExampleRun sweeps a toy one-dimensional objective and reports the winner.
func ExampleRun() {
	candidates := []float64{0.1, 0.3, 0.5, 0.7}

	_, best, err := sweep.Run(context.Background(), candidates,
		func(_ context.Context, x float64) (float64, error) {
			return -math.Pow(x-0.3, 2), nil // peak at 0.3
		},
		sweep.WithWorkers(2),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("best=%.1f\n", best.Param)
	// Output:
	// best=0.3
}

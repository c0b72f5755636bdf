package sim_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsim/ratings"
	"github.com/katalvlaran/lvlsim/sim"
)

// ExampleCosine compares three items through the users who rated them:
// user 12 rated all three, user 40 only the first two. Items 0 and 1
// receive identical scores everywhere, so their similarity is maximal.
func ExampleCosine() {
	yr := ratings.Table{
		12: {{X: 0, Score: 4}, {X: 1, Score: 4}, {X: 2, Score: 1}},
		40: {{X: 0, Score: 5}, {X: 1, Score: 5}},
	}

	m, err := sim.Cosine(3, yr, nil) // nil → DefaultOptions
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("sim(0,1) = %.2f\n", m.At(0, 1))
	fmt.Printf("sim(1,0) = %.2f\n", m.At(1, 0))
	// Output:
	// sim(0,1) = 1.00
	// sim(1,0) = 1.00
}

// ExampleMSD shows the two branches of the combination rule: perfect
// agreement scores the co-rating count, disagreement divides the count
// by the squared difference.
func ExampleMSD() {
	yr := ratings.Table{
		12: {{X: 0, Score: 4}, {X: 1, Score: 4}, {X: 2, Score: 1}},
		40: {{X: 0, Score: 5}, {X: 1, Score: 5}},
	}

	m, err := sim.MSD(3, yr, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("sim(0,1) = %.2f\n", m.At(0, 1)) // 2 shared users, no disagreement
	fmt.Printf("sim(0,2) = %.2f\n", m.At(0, 2)) // 1 shared user, (4−1)² = 9
	// Output:
	// sim(0,1) = 2.00
	// sim(0,2) = 0.11
}

// ExampleMeanDiff exposes the systematic offset between two entities:
// item 0 scores three points above item 2 on their shared evidence, and
// the matrix is antisymmetric by construction.
func ExampleMeanDiff() {
	yr := ratings.Table{
		12: {{X: 0, Score: 4}, {X: 1, Score: 4}, {X: 2, Score: 1}},
		40: {{X: 0, Score: 5}, {X: 1, Score: 5}},
	}

	m, err := sim.MeanDiff(3, yr, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("offset(0,2) = %.1f\n", m.At(0, 2))
	fmt.Printf("offset(2,0) = %.1f\n", m.At(2, 0))
	// Output:
	// offset(0,2) = 3.0
	// offset(2,0) = -3.0
}

// ExamplePearson runs in parallel: four workers accumulate private sums
// over disjoint user blocks and merge before the combination pass. The
// result is the same as the sequential run.
func ExamplePearson() {
	yr := ratings.Table{
		12: {{X: 0, Score: 1}, {X: 1, Score: 3}},
		40: {{X: 0, Score: 2}, {X: 1, Score: 5}},
		57: {{X: 0, Score: 3}, {X: 1, Score: 7}},
	}

	opts := sim.DefaultOptions()
	opts.Workers = 4

	m, err := sim.Pearson(2, yr, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("sim(0,1) = %.2f\n", m.At(0, 1)) // item 1 = 2·item 0 + 1
	// Output:
	// sim(0,1) = 1.00
}

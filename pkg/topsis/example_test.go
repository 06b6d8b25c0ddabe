package topsis_test

import (
	"fmt"

	"github.com/ahrav/go-topsis/pkg/topsis"
)

func ExampleRank() {
	ranking, err := topsis.Rank(
		[]float64{0.64339, 0.28284, 0.07377},
		[]bool{true, true, true},
		[]float64{
			80, 70, 91, 90,
			80, 71, 90, 78,
			0, 1, 0, 4,
		},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, alt := range ranking {
		fmt.Printf("%d %.4f\n", alt.ID, alt.Score)
	}
	// Output:
	// 3 0.8312
	// 2 0.5511
	// 0 0.3294
	// 1 0.1480
}

func ExampleRanking_Degenerate() {
	ranking, err := topsis.Rank(
		[]float64{0.5, 0.5},
		[]bool{true, false},
		[]float64{0, 0, 0, 4, 2, 9},
		topsis.WithDegeneratePolicy(topsis.DegeneratePropagate),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(ranking.IDs(), ranking.Degenerate())
	// Output: [0 1 2] [0 1 2]
}

func ExampleRanker_Rank() {
	ranker, err := topsis.New(topsis.WithParallelism(4))
	if err != nil {
		fmt.Println(err)
		return
	}

	// Price is a cost criterion, quality a benefit one.
	ranking, err := ranker.Rank(
		[]float64{0.4, 0.6},
		[]bool{false, true},
		[]float64{
			250, 300, 180,
			7, 9, 5,
		},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(ranking.IDs())
	// Output: [1 0 2]
}

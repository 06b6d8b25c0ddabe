package topsis

import (
	"fmt"
	"testing"
)

// BenchmarkRank compares the sequential and fanned-out column paths.
func BenchmarkRank(b *testing.B) {
	sizes := []struct{ rows, cols int }{
		{10, 5},
		{1_000, 20},
		{10_000, 50},
	}

	for _, size := range sizes {
		weights := make([]float64, size.cols)
		benefit := make([]bool, size.cols)
		alternatives := make([]float64, size.rows*size.cols)
		for j := range size.cols {
			weights[j] = 1 / float64(size.cols)
			benefit[j] = j%2 == 0
			for i := range size.rows {
				alternatives[j*size.rows+i] = float64((i*31+j*17)%101 + 1)
			}
		}

		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("%dx%d_workers%d", size.rows, size.cols, workers), func(b *testing.B) {
				r, err := New(WithParallelism(workers))
				if err != nil {
					b.Fatalf("unexpected error: %v", err)
				}

				b.ResetTimer()
				b.ReportAllocs()

				for i := 0; i < b.N; i++ {
					if _, err := r.Rank(weights, benefit, alternatives); err != nil {
						b.Fatalf("unexpected error: %v", err)
					}
				}
			})
		}
	}
}

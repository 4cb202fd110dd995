package experiment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Layout decides which blocks of a trial are testing blocks.
type Layout int

// Block layouts.
const (
	// TestEven makes blocks 0, 2, 4 ... the testing blocks.
	TestEven Layout = iota
	// TestOdd makes blocks 1, 3, 5 ... the testing blocks.
	TestOdd
)

func (l Layout) isTesting(block int) bool {
	if l == TestOdd {
		return block%2 == 1
	}

	return block%2 == 0
}

// SplitBlocks splits data into n consecutive blocks. When the data cannot be
// split evenly, the first len(data) % n blocks get one extra row.
func SplitBlocks[T any](data []T, n int) [][]T {
	if n <= 0 {
		panic(fmt.Sprintf("experiment: cannot split into %d blocks", n))
	}

	size, extra := len(data)/n, len(data)%n
	blocks := make([][]T, n)

	start := 0
	for i := range blocks {
		end := start + size
		if i < extra {
			end++
		}

		blocks[i] = data[start:end]
		start = end
	}

	return blocks
}

// TestingErrors returns, for every testing block, the sum over samples and
// dimensions of |post - truth|.
func TestingErrors(
	post, truth [][]float64,
	numBlocks int,
	layout Layout,
) []float64 {
	if len(post) != len(truth) {
		panic(fmt.Sprintf("experiment: %d post samples but %d truth samples",
			len(post), len(truth)))
	}

	postBlocks := SplitBlocks(post, numBlocks)
	truthBlocks := SplitBlocks(truth, numBlocks)

	errs := make([]float64, 0, numBlocks/2+1)
	for b := range postBlocks {
		if !layout.isTesting(b) {
			continue
		}

		sum := 0.0
		for s := range postBlocks[b] {
			sum += TotalAbsError(postBlocks[b][s], truthBlocks[b][s])
		}

		errs = append(errs, sum)
	}

	return errs
}

// DefaultConfidence is the confidence level of reported intervals.
const DefaultConfidence = 0.95

// An Interval holds per-column means and confidence bounds.
type Interval struct {
	Mean  []float64
	Upper []float64
	Lower []float64
}

// ZScore returns the two-sided standard normal quantile for a confidence
// level.
func ZScore(confidence float64) float64 {
	return distuv.UnitNormal.Quantile((1 + confidence) / 2)
}

// ConfidenceInterval computes, for every column of samples, the mean and
// mean +/- z * std / sqrt(n), using the population standard deviation.
func ConfidenceInterval(samples [][]float64, confidence float64) Interval {
	if len(samples) == 0 {
		return Interval{}
	}

	cols := len(samples[0])
	m := mat.NewDense(len(samples), cols, nil)
	for i, row := range samples {
		m.SetRow(i, row)
	}

	n := float64(len(samples))
	z := ZScore(confidence)

	ci := Interval{
		Mean:  make([]float64, cols),
		Upper: make([]float64, cols),
		Lower: make([]float64, cols),
	}

	col := make([]float64, len(samples))
	for c := 0; c < cols; c++ {
		mat.Col(col, c, m)

		mean, variance := stat.PopMeanVariance(col, nil)
		half := z * math.Sqrt(variance/n)

		ci.Mean[c] = mean
		ci.Upper[c] = mean + half
		ci.Lower[c] = mean - half
	}

	return ci
}

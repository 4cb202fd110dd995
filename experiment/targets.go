// Package experiment runs supervised function-learning trials that compare a
// memristive crossbar trained with mPES against floating-point controls.
package experiment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// A Target is the function a connection is trained to compute.
type Target func(x []float64) []float64

// Product returns x0 * x1.
func Product(x []float64) []float64 {
	mustHaveDims(x, 2)

	return []float64{x[0] * x[1]}
}

// CombinedProducts returns x0 * x1 + x2 * x3.
func CombinedProducts(x []float64) []float64 {
	mustHaveDims(x, 4)

	return []float64{x[0]*x[1] + x[2]*x[3]}
}

// SeparateProducts returns the three pairwise products of a 3-D input.
func SeparateProducts(x []float64) []float64 {
	mustHaveDims(x, 3)

	return []float64{x[0] * x[1], x[0] * x[2], x[1] * x[2]}
}

// CircularConvolution splits x into halves a and b and returns the circular
// convolution of a and b, which is the real part of ifft(fft(a) * fft(b)).
func CircularConvolution(x []float64) []float64 {
	if len(x) == 0 || len(x)%2 != 0 {
		panic(fmt.Sprintf("experiment: circular convolution of %d values", len(x)))
	}

	n := len(x) / 2
	fft := fourier.NewFFT(n)

	fa := fft.Coefficients(nil, x[:n])
	fb := fft.Coefficients(nil, x[n:])
	for i := range fa {
		fa[i] *= fb[i]
	}

	out := fft.Sequence(nil, fa)
	for i := range out {
		out[i] /= float64(n)
	}

	return out
}

func mustHaveDims(x []float64, n int) {
	if len(x) < n {
		panic(fmt.Sprintf("experiment: target needs %d dimensions, got %d",
			n, len(x)))
	}
}

// TotalAbsError sums |a - b| over two equally long vectors.
func TotalAbsError(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("experiment: vectors of different length")
	}

	sum := 0.0
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum
}

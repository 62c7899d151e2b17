// Package simdops provides SIMD-accelerated reductions over band-by-modulation
// matrices. Row sums are delegated to github.com/tphakala/simd, which picks
// AVX2/SSE/NEON kernels at runtime and falls back to pure Go elsewhere.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/mat"
)

// Mean returns the arithmetic mean of a. It returns 0 for an empty slice.
func Mean(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return f64.Sum(a) / float64(len(a))
}

// RowMeans returns the arithmetic mean of every row of m.
//
// The rows of m are read in place through RawRowView, so m is not copied.
func RowMeans(m *mat.Dense) []float64 {
	rows, _ := m.Dims()
	means := make([]float64, rows)
	for i := range rows {
		means[i] = Mean(m.RawRowView(i))
	}

	return means
}

// Info reports the instruction set the SIMD kernels dispatch to.
func Info() string {
	return cpu.Info()
}

// Package testutil provides reusable assertions for band-indexed level vectors.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	DBTolerance      = 1e-4 // Four decimals, the precision of published reference values
)

// TestingT is the subset of *testing.T the assertions need.
type TestingT interface {
	assert.TestingT
	Helper()
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t TestingT, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d] is Inf", i), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t TestingT, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t,
				fmt.Sprintf("value out of range: s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal),
				msgAndArgs...)
		}
	}
	return true
}

// AssertAllEqual verifies that every element of s is within tolerance of want.
func AssertAllEqual(t TestingT, want float64, s []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if !withinTolerance(want, v, tolerance) {
			return assert.Fail(t,
				fmt.Sprintf("band %d: got %f, want %f (tolerance %g)", i+1, v, want, tolerance),
				msgAndArgs...)
		}
	}
	return true
}

// AssertBandsInDelta verifies that two band vectors have the same length and
// agree element-wise within tolerance.
func AssertBandsInDelta(t TestingT, want, got []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		if !withinTolerance(want[i], got[i], tolerance) {
			return assert.Fail(t,
				fmt.Sprintf("band %d: got %f, want %f (tolerance %g)", i+1, got[i], want[i], tolerance),
				msgAndArgs...)
		}
	}
	return true
}

// AssertOffsetBy verifies that got[i] - base[i] equals offset for every band.
func AssertOffsetBy(t TestingT, base, got []float64, offset, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(base), msgAndArgs...) {
		return false
	}
	for i := range base {
		if d := got[i] - base[i]; !withinTolerance(offset, d, tolerance) {
			return assert.Fail(t,
				fmt.Sprintf("band %d: offset %f, want %f (tolerance %g)", i+1, d, offset, tolerance),
				msgAndArgs...)
		}
	}
	return true
}

// withinTolerance reports whether |got - want| <= tolerance. NaN never matches.
func withinTolerance(want, got, tolerance float64) bool {
	return math.Abs(got-want) <= tolerance
}

// Filled returns a slice of length n with every element set to v.
func Filled(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

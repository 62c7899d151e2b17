// Package mathutil provides decibel arithmetic shared by the SII input procedures.
package mathutil

import (
	"math"
)

// Epsilon is the float64 machine epsilon (2⁻⁵²).
//
// It keeps LogRatioDB finite when either side of the ratio is exactly zero,
// which happens for MTFI values of exactly 0 or 1.
const Epsilon = 0x1p-52

// PowerToDB converts a power ratio to decibels: 10·log10(p).
func PowerToDB(p float64) float64 {
	return powerDBFactor * math.Log10(p)
}

// DBToPower converts a level in decibels back to a power ratio: 10^(db/10).
func DBToPower(db float64) float64 {
	return math.Pow(dbBase, db/powerDBFactor)
}

// LogRatioDB returns the apparent signal-to-noise ratio implied by an
// intensity modulation transfer value m:
//
//	10·log10((m + ε) / (1 − m + ε))
//
// m is not range-checked. Values outside [0, 1] give a finite result as long
// as both sides of the ratio stay positive, and NaN otherwise.
func LogRatioDB(m float64) float64 {
	return PowerToDB((m + Epsilon) / (1 - m + Epsilon))
}

// Clamp limits v to [lo, hi]. NaN is passed through unchanged.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

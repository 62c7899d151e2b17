package sii

import (
	"gonum.org/v1/gonum/mat"
)

// Option sets an optional input of EquivalentSpectra.
type Option func(*Input)

// WithInsertionGain sets the insertion gain in dB, one value per band.
func WithInsertionGain(gain []float64) Option {
	return func(in *Input) {
		in.InsertionGain = gain
	}
}

// WithHearingThreshold sets the hearing threshold level in dB HL, one value
// per band.
func WithHearingThreshold(threshold []float64) Option {
	return func(in *Input) {
		in.HearingThreshold = threshold
	}
}

// WithListeningMode sets the listening mode.
func WithListeningMode(mode ListeningMode) Option {
	return func(in *Input) {
		in.Mode = mode
	}
}

// WithBinaural selects binaural listening.
func WithBinaural() Option {
	return WithListeningMode(Binaural)
}

// EquivalentSpectra is a shorthand for Compute with the two required
// measurements and any number of options:
//
//	spectra, err := sii.EquivalentSpectra(csnsl, mtfi,
//	    sii.WithHearingThreshold(audiogram),
//	    sii.WithBinaural(),
//	)
//
// Options are validated together with the measurements; a nil option is
// ignored.
func EquivalentSpectra(combined []float64, mtfi mat.Matrix, opts ...Option) (*Spectra, error) {
	in := &Input{
		CombinedLevel: combined,
		MTFI:          mtfi,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(in)
		}
	}
	return Compute(in)
}

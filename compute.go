package sii

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-speech-intelligibility/internal/mathutil"
	"github.com/tphakala/go-speech-intelligibility/internal/simdops"
)

// Compute derives the Equivalent Speech, Equivalent Noise and Equivalent
// Hearing Threshold spectrum levels from MTFI/CSNSL measurements at the
// listener's position (Section 5.2).
//
// The inputs are validated before anything is computed and are never
// modified. On error the returned Spectra is nil.
func Compute(in *Input) (*Spectra, error) {
	if in == nil {
		return nil, newInputError(fieldInput, reasonMissing)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	snr := apparentSNR(in.MTFI)

	speech := make([]float64, NumBands)
	noise := make([]float64, NumBands)
	for i, p := range in.CombinedLevel {
		// Eq. 23 and Eq. 24
		speech[i] = snr[i] + mathutil.PowerToDB(mathutil.DBToPower(p)/(1+mathutil.DBToPower(snr[i])))
		noise[i] = speech[i] - snr[i]
	}

	// Eq. 23 and 24 hold for 0 dB insertion gain only. The gain is applied
	// to both spectra so their difference is unchanged.
	if in.InsertionGain != nil {
		floats.Add(speech, in.InsertionGain)
		floats.Add(noise, in.InsertionGain)
	}

	threshold := make([]float64, NumBands)
	if in.HearingThreshold != nil {
		copy(threshold, in.HearingThreshold)
	}
	if in.Mode == Binaural {
		floats.AddConst(-binauralThresholdShift, threshold)
	}

	return &Spectra{
		Speech:    speech,
		Noise:     noise,
		Threshold: threshold,
	}, nil
}

// ApparentSNR returns the apparent speech-to-noise ratio in dB per band:
// the MTFI log-ratio of Eq. 22, limited to ±15 dB and then averaged over
// the modulation frequencies (Sections 5.2.3.5 and 5.2.3.6).
func ApparentSNR(mtfi mat.Matrix) ([]float64, error) {
	if err := validateMTFI(mtfi); err != nil {
		return nil, err
	}
	return apparentSNR(mtfi), nil
}

// apparentSNR assumes mtfi is NumBands x NumModulationFrequencies.
func apparentSNR(mtfi mat.Matrix) []float64 {
	var r mat.Dense
	r.Apply(func(_, _ int, m float64) float64 {
		return mathutil.Clamp(mathutil.LogRatioDB(m), minApparentSNR, maxApparentSNR)
	}, mtfi)

	return simdops.RowMeans(&r)
}

// SNR returns Speech - Noise per band. Insertion gain cancels, so this is
// the band-averaged apparent speech-to-noise ratio.
func (s *Spectra) SNR() []float64 {
	return floats.SubTo(make([]float64, len(s.Speech)), s.Speech, s.Noise)
}

// SIMDInfo reports the instruction set used for the modulation-frequency
// averaging.
func SIMDInfo() string {
	return simdops.Info()
}

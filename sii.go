package sii

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidInput is matched by every validation failure.
// Use errors.As with *InputError to find out which input was rejected.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports a rejected input and why it was rejected.
type InputError struct {
	// Field is the name of the offending input, as the standard names it.
	Field string

	// Reason describes the violation, e.g. "vector size incorrect".
	Reason string
}

func newInputError(field, reason string) *InputError {
	return &InputError{Field: field, Reason: reason}
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return e.Field + ": " + e.Reason
}

// Is reports whether target is ErrInvalidInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ListeningMode selects the hearing threshold correction.
type ListeningMode int

const (
	// Monaural listening leaves the hearing threshold unchanged.
	// The zero value of ListeningMode is treated as Monaural.
	Monaural ListeningMode = 1

	// Binaural listening lowers the hearing threshold by 1.7 dB in every band.
	Binaural ListeningMode = 2
)

// String returns "monaural" or "binaural".
func (m ListeningMode) String() string {
	switch m {
	case Monaural:
		return "monaural"
	case Binaural:
		return "binaural"
	default:
		return "ListeningMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseListeningMode parses "monaural"/"1" or "binaural"/"2".
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseListeningMode(s string) (ListeningMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monaural", "1":
		return Monaural, nil
	case "binaural", "2":
		return Binaural, nil
	default:
		return 0, fmt.Errorf("%w (%q)", newInputError(fieldListeningMode, reasonInvalid), s)
	}
}

// Input holds the measurements for the Section 5.2 procedure.
//
// CombinedLevel and MTFI are required. A nil InsertionGain or
// HearingThreshold means 0 dB in every band, and a zero Mode means Monaural.
type Input struct {
	// CombinedLevel is the Combined Speech and Noise Spectrum Level in dB SPL
	// at the listener's position, one value per band.
	CombinedLevel []float64

	// MTFI is the Modulation Transfer Function for Intensity, with one row
	// per band and one column per modulation frequency (18x9).
	MTFI mat.Matrix

	// InsertionGain is the device gain in dB, one value per band.
	InsertionGain []float64

	// HearingThreshold is the listener's Hearing Threshold Level in dB HL,
	// one value per band.
	HearingThreshold []float64

	// Mode selects monaural or binaural listening.
	Mode ListeningMode
}

// Validate checks the shape of every input. The first violation found is
// returned. MTFI values themselves are not range-checked.
func (in *Input) Validate() error {
	if len(in.CombinedLevel) != NumBands {
		return newInputError(fieldCombinedLevel, reasonVectorSize)
	}

	if err := validateMTFI(in.MTFI); err != nil {
		return err
	}

	if in.InsertionGain != nil && len(in.InsertionGain) != NumBands {
		return newInputError(fieldInsertionGain, reasonVectorSize)
	}

	if in.HearingThreshold != nil && len(in.HearingThreshold) != NumBands {
		return newInputError(fieldHearingThreshold, reasonVectorSize)
	}

	switch in.Mode {
	case 0, Monaural, Binaural:
	default:
		return newInputError(fieldListeningMode, reasonInvalid)
	}

	return nil
}

func validateMTFI(m mat.Matrix) error {
	if m == nil {
		return newInputError(fieldMTFI, reasonMatrixSize)
	}
	if r, c := m.Dims(); r != NumBands || c != NumModulationFrequencies {
		return newInputError(fieldMTFI, reasonMatrixSize)
	}
	return nil
}

// Spectra is the result of the Section 5.2 procedure, ready to be passed to
// an SII calculation.
type Spectra struct {
	// Speech is the Equivalent Speech Spectrum Level in dB per band.
	Speech []float64

	// Noise is the Equivalent Noise Spectrum Level in dB per band.
	Noise []float64

	// Threshold is the Equivalent Hearing Threshold Level in dB HL per band.
	Threshold []float64
}

// Levels returns speech, noise and threshold in that order.
func (s *Spectra) Levels() (speech, noise, threshold []float64) {
	return s.Speech, s.Noise, s.Threshold
}

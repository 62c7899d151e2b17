package sii

// Shape of the one-third octave band procedure.
const (
	// NumBands is the number of one-third octave bands (160 Hz to 8 kHz).
	NumBands = 18

	// NumModulationFrequencies is the number of modulation frequencies at
	// which the MTFI is measured (Section 5.2.3.3).
	NumModulationFrequencies = 9
)

// Apparent speech-to-noise ratio limits in dB (Section 5.2.3.5).
const (
	minApparentSNR = -15.0
	maxApparentSNR = 15.0
)

// binauralThresholdShift is subtracted from every hearing threshold band for
// binaural listening (Section 5.1.5).
const binauralThresholdShift = 1.7

// Field names used in validation errors.
const (
	fieldCombinedLevel    = "Combined Speech and Noise Spectrum Level"
	fieldMTFI             = "Modulation Transfer Function for Intensity"
	fieldInsertionGain    = "Insertion Gain"
	fieldHearingThreshold = "Hearing Threshold Level"
	fieldListeningMode    = "Listening Mode"
	fieldBandVector       = "Band Vector"
	fieldInput            = "Input"
)

// Validation failure reasons.
const (
	reasonVectorSize = "vector size incorrect"
	reasonMatrixSize = "matrix size incorrect"
	reasonInvalid    = "invalid value"
	reasonMissing    = "input missing"
)

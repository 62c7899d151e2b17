// Package sii derives the inputs of the Speech Intelligibility Index from
// in-situ measurements, following Section 5.2 of ANSI S3.5-1997.
//
// Section 5.2 ("method based on MTFI/CSNSL measurements at the listener's
// position") estimates the Equivalent Speech Spectrum Level and the
// Equivalent Noise Spectrum Level from two measurements taken at the
// listener's position:
//
//   - the Combined Speech and Noise Spectrum Level (CSNSL) in each of the 18
//     one-third octave bands, and
//   - the Modulation Transfer Function for Intensity (MTFI) in each band at
//     9 modulation frequencies (0.5 to 16 Hz).
//
// The results, together with the Equivalent Hearing Threshold Level, are the
// three band vectors consumed by an SII calculation.
//
// # Quick Start
//
//	mtfi, err := sii.NewMTFI(rows) // 18 rows of 9 values
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	spectra, err := sii.EquivalentSpectra(csnsl, mtfi)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	speech, noise, threshold := spectra.Levels()
//
// Optional inputs are passed as options:
//
//	spectra, err := sii.EquivalentSpectra(csnsl, mtfi,
//	    sii.WithInsertionGain(gain),
//	    sii.WithHearingThreshold(audiogram),
//	    sii.WithBinaural(),
//	)
//
// or, equivalently, through an [Input] value passed to [Compute].
//
// # Procedure
//
// For every band i and modulation frequency j the apparent speech-to-noise
// ratio is
//
//	R[i,j] = 10·log10((M[i,j] + ε) / (1 − M[i,j] + ε))
//
// where ε is the float64 machine epsilon. Each R[i,j] is limited to
// [−15, +15] dB before the 9 values of a band are averaged. The combined
// level P[i] is then split into speech and noise:
//
//	E[i] = R[i] + 10·log10(10^(P[i]/10) / (1 + 10^(R[i]/10)))
//	N[i] = E[i] − R[i]
//
// Insertion gain is added to both E and N afterwards. The standard states
// Eq. 23 and 24 for 0 dB insertion gain only. For binaural listening the
// hearing threshold is lowered by 1.7 dB in every band.
//
// MTFI values are not range-checked, as in the reference implementation.
// A value slightly outside [0, 1] (within ε) still gives a finite ratio that
// the ±15 dB clamp limits. A value further out, such as 1.5 or −0.5, makes
// the ratio negative, so the log is NaN and the Speech and Noise levels of
// that band are NaN. No error is returned in either case.
//
// # Errors
//
// Every shape violation is reported as an [*InputError] naming the offending
// input, and matches [ErrInvalidInput] with errors.Is. Nothing is computed
// when validation fails.
//
// # Thread Safety
//
// The package holds no mutable state. All functions may be called
// concurrently on independent inputs.
package sii

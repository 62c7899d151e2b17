package sii

import (
	"gonum.org/v1/gonum/mat"
)

// Band centre frequencies in Hz (Table 3).
var bandCenterFrequencies = [NumBands]float64{
	160, 200, 250, 315, 400, 500, 630, 800, 1000,
	1250, 1600, 2000, 2500, 3150, 4000, 5000, 6300, 8000,
}

// MTFI modulation frequencies in Hz (Section 5.2.3.3).
var modulationFrequencies = [NumModulationFrequencies]float64{
	0.5, 1, 1.5, 2, 3, 4, 6, 8, 16,
}

// BandCenterFrequencies returns the centre frequency in Hz of each of the
// 18 one-third octave bands, in band order. Row i of an MTFI matrix and
// element i of every band vector refer to BandCenterFrequencies()[i].
func BandCenterFrequencies() []float64 {
	out := make([]float64, NumBands)
	copy(out, bandCenterFrequencies[:])
	return out
}

// ModulationFrequencies returns the 9 modulation frequencies in Hz at which
// the MTFI is measured. Column j of an MTFI matrix refers to
// ModulationFrequencies()[j].
func ModulationFrequencies() []float64 {
	out := make([]float64, NumModulationFrequencies)
	copy(out, modulationFrequencies[:])
	return out
}

// NewMTFI builds an 18x9 MTFI matrix from row-major data, one row per band
// and one column per modulation frequency. The rows are copied.
func NewMTFI(rows [][]float64) (*mat.Dense, error) {
	if len(rows) != NumBands {
		return nil, newInputError(fieldMTFI, reasonMatrixSize)
	}

	data := make([]float64, 0, NumBands*NumModulationFrequencies)
	for _, row := range rows {
		if len(row) != NumModulationFrequencies {
			return nil, newInputError(fieldMTFI, reasonMatrixSize)
		}
		data = append(data, row...)
	}

	return mat.NewDense(NumBands, NumModulationFrequencies, data), nil
}

// BandVector flattens a 1x18 row vector or an 18x1 column vector into a
// band-ordered slice. Orientation carries no meaning; any other shape is
// rejected.
func BandVector(m mat.Matrix) ([]float64, error) {
	if m == nil {
		return nil, newInputError(fieldBandVector, reasonVectorSize)
	}

	r, c := m.Dims()
	switch {
	case r == 1 && c == NumBands:
		out := make([]float64, NumBands)
		for j := range out {
			out[j] = m.At(0, j)
		}
		return out, nil
	case r == NumBands && c == 1:
		out := make([]float64, NumBands)
		for i := range out {
			out[i] = m.At(i, 0)
		}
		return out, nil
	default:
		return nil, newInputError(fieldBandVector, reasonVectorSize)
	}
}

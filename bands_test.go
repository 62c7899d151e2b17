package sii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-speech-intelligibility/internal/testutil"
)

func TestBandCenterFrequencies(t *testing.T) {
	f := BandCenterFrequencies()

	require.Len(t, f, NumBands)
	assert.InDelta(t, 160.0, f[0], 0)
	assert.InDelta(t, 1000.0, f[8], 0)
	assert.InDelta(t, 3150.0, f[13], 0)
	assert.InDelta(t, 8000.0, f[NumBands-1], 0)
	for i := 1; i < len(f); i++ {
		assert.Greater(t, f[i], f[i-1], "band %d", i+1)
	}
}

func TestModulationFrequencies(t *testing.T) {
	assert.Equal(t, []float64{0.5, 1, 1.5, 2, 3, 4, 6, 8, 16}, ModulationFrequencies())
}

// TestFrequencyTables_Copies verifies callers cannot alter the tables.
func TestFrequencyTables_Copies(t *testing.T) {
	f := BandCenterFrequencies()
	f[0] = 0
	assert.InDelta(t, 160.0, BandCenterFrequencies()[0], 0)

	m := ModulationFrequencies()
	m[0] = 0
	assert.InDelta(t, 0.5, ModulationFrequencies()[0], 0)
}

func TestNewMTFI(t *testing.T) {
	rows := make([][]float64, NumBands)
	for i := range rows {
		rows[i] = testutil.Filled(NumModulationFrequencies, float64(i)/NumBands)
	}
	rows[3][7] = 0.25

	m, err := NewMTFI(rows)
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, NumBands, r)
	assert.Equal(t, NumModulationFrequencies, c)
	assert.InDelta(t, 0.25, m.At(3, 7), 0)
	assert.InDelta(t, 17.0/NumBands, m.At(17, 0), 0)

	// The rows are copied.
	rows[0][0] = 99
	assert.InDelta(t, 0.0, m.At(0, 0), 0)
}

func TestNewMTFI_Invalid(t *testing.T) {
	full := func() [][]float64 {
		rows := make([][]float64, NumBands)
		for i := range rows {
			rows[i] = make([]float64, NumModulationFrequencies)
		}
		return rows
	}

	tests := []struct {
		name string
		rows [][]float64
	}{
		{"nil", nil},
		{"too_few_rows", full()[:17]},
		{"too_many_rows", append(full(), make([]float64, NumModulationFrequencies))},
		{"ragged_short", func() [][]float64 { r := full(); r[5] = r[5][:8]; return r }()},
		{"ragged_long", func() [][]float64 { r := full(); r[17] = append(r[17], 0); return r }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMTFI(tt.rows)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.EqualError(t, err, "Modulation Transfer Function for Intensity: matrix size incorrect")
			assert.Nil(t, m)
		})
	}
}

func TestBandVector(t *testing.T) {
	data := make([]float64, NumBands)
	for i := range data {
		data[i] = float64(i) * 1.5
	}

	t.Run("row", func(t *testing.T) {
		got, err := BandVector(mat.NewDense(1, NumBands, append([]float64(nil), data...)))
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("column", func(t *testing.T) {
		got, err := BandVector(mat.NewVecDense(NumBands, append([]float64(nil), data...)))
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("transposed_row", func(t *testing.T) {
		got, err := BandVector(mat.NewDense(1, NumBands, append([]float64(nil), data...)).T())
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})
}

func TestBandVector_Invalid(t *testing.T) {
	for name, m := range map[string]mat.Matrix{
		"nil":    nil,
		"short":  mat.NewVecDense(17, nil),
		"matrix": mat.NewDense(NumBands, 2, nil),
		"square": mat.NewDense(NumBands, NumBands, nil),
	} {
		t.Run(name, func(t *testing.T) {
			v, err := BandVector(m)
			require.ErrorIs(t, err, ErrInvalidInput)

			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, fieldBandVector, inputErr.Field)
			assert.Nil(t, v)
		})
	}
}

// TestBandVector_FeedsCompute verifies row and column vectors give identical results.
func TestBandVector_FeedsCompute(t *testing.T) {
	levels := make([]float64, NumBands)
	for i := range levels {
		levels[i] = 40 + float64(i)
	}

	row, err := BandVector(mat.NewDense(1, NumBands, append([]float64(nil), levels...)))
	require.NoError(t, err)
	col, err := BandVector(mat.NewVecDense(NumBands, append([]float64(nil), levels...)))
	require.NoError(t, err)

	fromRow, err := EquivalentSpectra(row, uniformMTFI(0.8))
	require.NoError(t, err)
	fromCol, err := EquivalentSpectra(col, uniformMTFI(0.8))
	require.NoError(t, err)

	assert.Equal(t, fromRow, fromCol)
}

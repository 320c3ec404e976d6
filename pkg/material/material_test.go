package material

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadCSV(t *testing.T) {
	tbl, err := LoadCSV(filepath.Join("testdata", "ferrite43.csv"))
	require.NoError(t, err)

	require.Equal(t, 6, tbl.Len())
	assert.Equal(t, 1e6, tbl.Freq[0])
	assert.Equal(t, 770.0, tbl.MuPrime[0])
	assert.Equal(t, 60.0, tbl.MuDoublePrime[0])
	assert.Equal(t, 5e7, tbl.Freq[5])
}

func TestLoadCSVTabSeparated(t *testing.T) {
	tbl, err := LoadCSV(filepath.Join("testdata", "ferrite43.tsv"))
	require.NoError(t, err)

	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, 2e6, tbl.Freq[1])
	assert.Equal(t, 740.0, tbl.MuPrime[1])
}

func TestLoadCSVWithoutHeader(t *testing.T) {
	tbl, err := LoadCSV(filepath.Join("testdata", "noheader.csv"))
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
}

func TestLoadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		want error
	}{
		{"missing file", "does_not_exist.csv", ErrDataFormat},
		{"two columns", "two_columns.csv", ErrMissingColumn},
		{"bad numeric", "bad_numeric.csv", ErrDataFormat},
		{"unsorted frequencies", "unsorted.csv", ErrDataFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(filepath.Join("testdata", tt.file))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mu.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"frequency_Hz", "mu_prime", "mu_double_prime"},
		{1e6, 770, 60},
		{2e6, 740, 110},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))

	tbl, err := LoadXLSX(path, "")
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, 740.0, tbl.MuPrime[1])
}

func TestMu(t *testing.T) {
	tbl := &Table{
		Freq:          []float64{1e6},
		MuPrime:       []float64{770},
		MuDoublePrime: []float64{60},
	}
	mu := tbl.Mu(0)
	assert.Equal(t, 770.0, real(mu))
	assert.Equal(t, -60.0, imag(mu))
}

func TestLookup(t *testing.T) {
	tbl := &Table{
		Freq:          []float64{1e6, 2e6, 5e6},
		MuPrime:       []float64{770, 740, 620},
		MuDoublePrime: []float64{60, 110, 230},
	}

	mu, ok := tbl.Lookup(2e6)
	require.True(t, ok)
	assert.Equal(t, complex(740, -110), mu)

	_, ok = tbl.Lookup(3e6)
	assert.False(t, ok)
}

func TestTrim(t *testing.T) {
	tbl := &Table{
		Freq:          []float64{1e6, 2e6, 5e6, 10e6},
		MuPrime:       []float64{770, 740, 620, 430},
		MuDoublePrime: []float64{60, 110, 230, 310},
	}

	got := tbl.Trim(2e6, 5e6)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, 2e6, got.Freq[0])
	assert.Equal(t, 5e6, got.Freq[1])

	empty := tbl.Trim(6e6, 9e6)
	assert.Equal(t, 0, empty.Len())
}

func TestTrimInvertedBounds(t *testing.T) {
	tbl := &Table{
		Freq:          []float64{1e6, 2e6, 5e6, 10e6},
		MuPrime:       []float64{770, 740, 620, 430},
		MuDoublePrime: []float64{60, 110, 230, 310},
	}

	got := tbl.Trim(6e6, 2e6)
	assert.Equal(t, 0, got.Len())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tbl     *Table
		wantErr bool
	}{
		{
			"valid",
			&Table{Freq: []float64{1e6, 2e6}, MuPrime: []float64{770, 740}, MuDoublePrime: []float64{60, 110}},
			false,
		},
		{
			"zero mu'' allowed",
			&Table{Freq: []float64{1e6}, MuPrime: []float64{770}, MuDoublePrime: []float64{0}},
			false,
		},
		{
			"empty",
			&Table{},
			true,
		},
		{
			"length mismatch",
			&Table{Freq: []float64{1e6, 2e6}, MuPrime: []float64{770}, MuDoublePrime: []float64{60, 110}},
			true,
		},
		{
			"zero frequency",
			&Table{Freq: []float64{0, 2e6}, MuPrime: []float64{770, 740}, MuDoublePrime: []float64{60, 110}},
			true,
		},
		{
			"negative mu",
			&Table{Freq: []float64{1e6}, MuPrime: []float64{-770}, MuDoublePrime: []float64{60}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tbl.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDataFormat)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

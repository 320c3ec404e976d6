package material

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadCSV reads a delimited (comma or tab) permeability table. The
// first row is taken as the header unless every field parses as a
// number. Column order is trusted: frequency_Hz, mu', mu''.
func LoadCSV(path string) (*Table, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
	}
	defer fp.Close()

	return readCSV(fp, path)
}

func readCSV(r io.Reader, name string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // checked per row below
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrDataFormat, name, err)
	}
	// A tab-separated file comes back as one comma-field per line.
	if isTabSeparated(rows) {
		for i, row := range rows {
			rows[i] = strings.Split(row[0], "\t")
		}
	}
	return fromRows(rows, name)
}

func isTabSeparated(rows [][]string) bool {
	return len(rows) > 0 && len(rows[0]) == 1 && strings.Contains(rows[0][0], "\t")
}

// LoadXLSX reads the same three-column table from a workbook sheet.
// An empty sheet name selects the first sheet.
func LoadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrDataFormat, sheet, err)
	}
	return fromRows(rows, path)
}

func fromRows(rows [][]string, name string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrDataFormat, name)
	}
	if len(rows[0]) < 3 {
		return nil, fmt.Errorf("%w: %s has %d column(s), need frequency, mu', mu''",
			ErrMissingColumn, name, len(rows[0]))
	}

	start := 1
	if _, ok := parseRow(rows[0]); ok {
		start = 0 // headerless file
	}

	tbl := &Table{}
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		if len(row) < 3 {
			return nil, fmt.Errorf("%w: %s row %d has %d column(s)", ErrMissingColumn, name, i+1, len(row))
		}
		vals, ok := parseRow(row)
		if !ok {
			return nil, fmt.Errorf("%w: %s row %d is not numeric: %q", ErrDataFormat, name, i+1, row)
		}
		tbl.Freq = append(tbl.Freq, vals[0])
		tbl.MuPrime = append(tbl.MuPrime, vals[1])
		tbl.MuDoublePrime = append(tbl.MuDoublePrime, vals[2])
	}

	if err := tbl.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return tbl, nil
}

func parseRow(row []string) ([3]float64, bool) {
	var vals [3]float64
	if len(row) < 3 {
		return vals, false
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return vals, false
		}
		vals[i] = v
	}
	return vals, true
}

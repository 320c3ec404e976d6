package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SaveXLSX writes the swept curve to a workbook: a Summary sheet with
// the input parameters and an Impedance sheet with one row per
// frequency point.
func SaveXLSX(filename string, freqs []float64, curve []complex128, ann Annotation) error {
	if len(freqs) != len(curve) {
		return fmt.Errorf("frequency and impedance lengths differ: %d vs %d", len(freqs), len(curve))
	}

	f := excelize.NewFile()

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)

	f.SetCellValue(summary, "A1", "Parameter")
	f.SetCellValue(summary, "B1", "Value")

	params := []struct {
		name  string
		value any
	}{
		{"Title", ann.Title},
		{"Turns", ann.Coil.Turns},
		{"Outer diameter [mm]", ann.Coil.Core.ODmm},
		{"Inner diameter [mm]", ann.Coil.Core.IDmm},
		{"Height [mm]", ann.Coil.Core.HTmm},
		{"Shunt capacitance [F]", ann.Coil.ShuntCap},
		{"Points", len(freqs)},
	}
	for i, p := range params {
		row := i + 2
		f.SetCellValue(summary, fmt.Sprintf("A%d", row), p.name)
		f.SetCellValue(summary, fmt.Sprintf("B%d", row), p.value)
	}

	sheet := "Impedance"
	f.NewSheet(sheet)

	headers := []string{"No", "f [Hz]", "Re(Z) [Ohm]", "Im(Z) [Ohm]", "|Z| [Ohm]", "phase(Z) [deg]"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, z := range curve {
		row := i + 2
		values := []any{i + 1, freqs[i], real(z), imag(z), abs(z), phaseDeg(z)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f.SaveAs(filename)
}

package render

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// SaveTSV writes the curve as tab-separated text, one row per point.
func SaveTSV(filename string, freqs []float64, curve []complex128) error {
	if len(freqs) != len(curve) {
		return fmt.Errorf("frequency and impedance lengths differ: %d vs %d", len(freqs), len(curve))
	}

	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()

	w := csv.NewWriter(fp)
	w.Comma = '\t'

	if err := w.Write([]string{"f_Hz", "Re_Ohm", "Im_Ohm", "Mag_Ohm", "Phase_deg"}); err != nil {
		return err
	}

	for i, z := range curve {
		row := []string{
			strconv.FormatFloat(freqs[i], 'g', -1, 64),
			strconv.FormatFloat(real(z), 'g', -1, 64),
			strconv.FormatFloat(imag(z), 'g', -1, 64),
			strconv.FormatFloat(abs(z), 'g', -1, 64),
			strconv.FormatFloat(phaseDeg(z), 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

package render

import (
	"fmt"
	"math"
	"math/cmplx"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"toroidz/pkg/toroid"
	"toroidz/pkg/util"
)

// Annotation carries the input parameters shown on the figure.
type Annotation struct {
	Title string
	Coil  toroid.Coil
}

func (a Annotation) line() string {
	return fmt.Sprintf("N=%d, OD=%g mm, ID=%g mm, HT=%g mm, Cp=%s",
		a.Coil.Turns, a.Coil.Core.ODmm, a.Coil.Core.IDmm, a.Coil.Core.HTmm,
		util.FormatValueFactor(a.Coil.ShuntCap, "F"))
}

const (
	panelWidth  = 12 * vg.Centimeter
	panelHeight = 9 * vg.Centimeter
)

func abs(z complex128) float64 { return cmplx.Abs(z) }

func phaseDeg(z complex128) float64 { return cmplx.Phase(z) * 180.0 / math.Pi }

// FourPanel builds the 2x2 panel grid: |Z|, phase, resistance and
// reactance against frequency in MHz, sharing the X axis convention.
func FourPanel(freqs []float64, curve []complex128, ann Annotation) ([][]*plot.Plot, error) {
	if len(freqs) != len(curve) {
		return nil, fmt.Errorf("frequency and impedance lengths differ: %d vs %d", len(freqs), len(curve))
	}

	mag := make(plotter.XYs, len(curve))
	phase := make(plotter.XYs, len(curve))
	res := make(plotter.XYs, len(curve))
	react := make(plotter.XYs, len(curve))
	for i, z := range curve {
		fMHz := freqs[i] / 1e6
		mag[i] = plotter.XY{X: fMHz, Y: abs(z)}
		phase[i] = plotter.XY{X: fMHz, Y: phaseDeg(z)}
		res[i] = plotter.XY{X: fMHz, Y: real(z)}
		react[i] = plotter.XY{X: fMHz, Y: imag(z)}
	}

	top := ann.Title + "\n" + ann.line()

	pMag, err := newPanel(top, "|Z| [Ohm]", mag)
	if err != nil {
		return nil, err
	}
	pPhase, err := newPanel("Impedance phase", "phase(Z) [deg]", phase)
	if err != nil {
		return nil, err
	}
	pRes, err := newPanel("Resistance", "Re(Z) [Ohm]", res)
	if err != nil {
		return nil, err
	}
	pReact, err := newPanel("Reactance", "Im(Z) [Ohm]", react)
	if err != nil {
		return nil, err
	}

	return [][]*plot.Plot{
		{pMag, pPhase},
		{pRes, pReact},
	}, nil
}

func newPanel(title, yLabel string, xys plotter.XYs) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "f [MHz]"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("building line for %q: %v", yLabel, err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	return p, nil
}

// SavePNG renders the four-panel figure to a PNG file.
func SavePNG(path string, freqs []float64, curve []complex128, ann Annotation) error {
	plots, err := FourPanel(freqs, curve, ann)
	if err != nil {
		return err
	}

	img := vgimg.New(2*panelWidth, 2*panelHeight)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      2,
		Cols:      2,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %v", path, err)
	}
	defer fp.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(fp); err != nil {
		return fmt.Errorf("writing %s: %v", path, err)
	}

	return nil
}

package main

import (
	"fmt"
	"sort"

	larcv "github.com/dune-exp/larcv_go/pkg"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// planeGrid adapts a plane image to the heat map's grid interface. Columns
// are wires, rows are downsampled tick blocks.
type planeGrid struct {
	img larcv.Image2D
}

func (g planeGrid) Dims() (int, int)   { return g.img.Width(), g.img.Height() }
func (g planeGrid) Z(c, r int) float64 { return float64(g.img.Pixel(c, r)) }
func (g planeGrid) X(c int) float64    { return float64(c) }
func (g planeGrid) Y(r int) float64    { return float64(r) }

func renderPlane(record *larcv.EventRecord, plane int, filename string) error {
	img := record.Images[plane]

	p := plot.New()
	p.Title.Text = fmt.Sprintf("run %d event %d plane %d", record.Run, record.EventID, plane)
	p.X.Label.Text = "wire"
	p.Y.Label.Text = "tick block"

	heatMap := plotter.NewHeatMap(planeGrid{img: img}, palette.Heat(256, 1))
	heatMap.Min = 0
	heatMap.Max = upperRange(img)
	p.Add(heatMap)

	return p.Save(6*vg.Inch, 6*vg.Inch, filename)
}

// upperRange puts the top of the color scale at the 99th percentile of the
// nonzero amplitudes, so one hot wire does not wash out the whole track.
func upperRange(img larcv.Image2D) float64 {
	values := make([]float64, 0, len(img.Pixels()))
	for _, v := range img.Pixels() {
		if v > 0 {
			values = append(values, float64(v))
		}
	}
	if len(values) == 0 {
		return 1
	}
	sort.Float64s(values)
	return stat.Quantile(0.99, stat.Empirical, values, nil)
}

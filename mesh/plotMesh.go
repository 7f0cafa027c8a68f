package mesh

import (
	"image/color"

	"github.com/notargets/avs/chart2d"
)

// PlotMask displays the cell centroids split by mask state, active in
// blue, inactive in red. Used interactively to eyeball the frontier
// the extrapolation will have to close.
func PlotMask(g *Graph, mask []bool) (chart *chart2d.Chart2D) {
	var (
		xaD, yaD []float64 // active
		xiD, yiD []float64 // inactive
	)
	for i := 0; i < g.NCells(); i++ {
		if mask[i] {
			xaD = append(xaD, g.X.AtVec(i))
			yaD = append(yaD, g.Y.AtVec(i))
		} else {
			xiD = append(xiD, g.X.AtVec(i))
			yiD = append(yiD, g.Y.AtVec(i))
		}
	}
	xmin, xmax := scale15(g.X.Min(), g.X.Max())
	ymin, ymax := scale15(g.Y.Min(), g.Y.Max())
	chart = chart2d.NewChart2D(1920, 1920, float32(xmin), float32(xmax), float32(ymin), float32(ymax))
	go chart.Plot()
	blue := color.RGBA{
		R: 50,
		G: 0,
		B: 255,
		A: 0,
	}
	red := color.RGBA{
		R: 255,
		G: 0,
		B: 50,
		A: 0,
	}
	if len(xaD) != 0 {
		if err := chart.AddSeries("Active", xaD, yaD,
			chart2d.CircleGlyph, chart2d.NoLine, blue); err != nil {
			panic("unable to add graph series")
		}
	}
	if len(xiD) != 0 {
		if err := chart.AddSeries("Inactive", xiD, yiD,
			chart2d.CrossGlyph, chart2d.NoLine, red); err != nil {
			panic("unable to add graph series")
		}
	}
	return
}

func scale15(min, max float64) (float64, float64) {
	c := 0.5 * (min + max)
	h := 0.75 * (max - min) // box scaled by 1.5
	return c - h, c + h
}

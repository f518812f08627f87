package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/springlab/internal/sweep"
)

const (
	plotWidth  = 80
	plotHeight = 15
)

var palette = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Blue,
	asciigraph.Fuchsia,
	asciigraph.Aqua,
	asciigraph.Orange,
	asciigraph.White,
}

// Plot renders a single series as a terminal graph.
func Plot(s sweep.Series, caption string) string {
	return asciigraph.Plot(s.Ys(),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotMany renders several series on one graph with a colored legend
// per series label.
func PlotMany(series []sweep.Series, caption string) string {
	data := make([][]float64, len(series))
	legends := make([]string, len(series))
	colors := make([]asciigraph.AnsiColor, len(series))
	for i, s := range series {
		data[i] = s.Ys()
		legends[i] = s.Label
		colors[i] = palette[i%len(palette)]
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}

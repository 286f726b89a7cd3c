package utils

import (
	"image/color"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

var palette = []color.RGBA{utils2.RED, utils2.BLUE, utils2.GREEN, utils2.WHITE}

type LineChart struct {
	Chart *chart2d.Chart2D
}

func NewLineChart(width, height int, xmin, xmax, fmin, fmax float64) (lc *LineChart) {
	lc = &LineChart{
		Chart: chart2d.NewChart2D(float32(xmin), float32(xmax), float32(fmin), float32(fmax),
			width, height, utils2.WHITE, utils2.BLACK),
	}
	return
}

func (lc *LineChart) Plot(graphDelay time.Duration, x, f []float64, col color.RGBA) {
	lc.Chart.AddLine(PolyLine(x, f), col)
	time.Sleep(graphDelay)
}

// PolyLine converts the curve (x[i], f[i]) into the segment list x1,y1,x2,y2,...
// the chart draws lines from
func PolyLine(x, f []float64) (line []float32) {
	if len(x) < 2 {
		return
	}
	line = make([]float32, 0, 4*(len(x)-1))
	for i := 0; i < len(x)-1; i++ {
		line = append(line,
			float32(x[i]), float32(f[i]),
			float32(x[i+1]), float32(f[i+1]))
	}
	return
}

// LineColors cycles the chart palette over n series
func LineColors(n int) (colors []color.RGBA) {
	colors = make([]color.RGBA, n)
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}
	return
}

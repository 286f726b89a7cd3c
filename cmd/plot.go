/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/hoshape/HO1D"
	"github.com/notargets/hoshape/HO2D"
	"github.com/notargets/hoshape/types"
	"github.com/notargets/hoshape/utils"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the basis functions of one element",
	Long: `
Plots every shape function of a segment over [0,1], or of a triangle along the
line y = const (the edge y = 0 by default). The window stays up until
interrupted, unless --wait=false.

hoshape plot -e segm -p 5
hoshape plot -e trig -p 4 -y 0.25 --lobatto`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		pm := &PlotModel{}
		pm.Element = stringFlagOrConfig(cmd, "element")
		pm.P = intFlagOrConfig(cmd, "order")
		pm.VNums, _ = cmd.Flags().GetIntSlice("vnums")
		pm.Npts, _ = cmd.Flags().GetInt("points")
		pm.Y, _ = cmd.Flags().GetFloat64("y")
		pm.Lobatto, _ = cmd.Flags().GetBool("lobatto")
		delay, _ := cmd.Flags().GetInt("delay")
		pm.Delay = time.Duration(delay) * time.Millisecond
		wait, _ := cmd.Flags().GetBool("wait")
		var curves []Curve
		if curves, err = pm.Curves(); err != nil {
			return
		}
		logger.Infow("plotting basis", "element", pm.Element, "order", pm.P, "curves", len(curves))
		pm.Plot(curves)
		if wait {
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt)
			<-stop
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	PlotCmd.Flags().StringP("element", "e", "segm", "element type: segm or trig")
	PlotCmd.Flags().IntP("order", "p", 5, "polynomial order")
	PlotCmd.Flags().IntSliceP("vnums", "v", nil, "global vertex numbers, default is the local numbering")
	PlotCmd.Flags().IntP("points", "n", 101, "number of sample points")
	PlotCmd.Flags().Float64P("y", "y", 0, "triangle only: sample along the line y = const")
	PlotCmd.Flags().Bool("lobatto", false, "sample at Gauss-Lobatto points instead of equally spaced ones")
	PlotCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay between curves")
	PlotCmd.Flags().Bool("wait", true, "keep the chart up until interrupted")
}

type linePlotter interface {
	Plot(graphDelay time.Duration, x, f []float64, col color.RGBA)
}

// newLineChart opens the chart window
var newLineChart = func(width, height int, xmin, xmax, fmin, fmax float64) linePlotter {
	return utils.NewLineChart(width, height, xmin, xmax, fmin, fmax)
}

type PlotModel struct {
	Element    string
	P, Npts    int
	VNums      []int
	Y          float64
	Lobatto    bool
	Delay      time.Duration
	XMax       float64 // Plot range, set by Curves
	FMin, FMax float64
}

// Curve is one shape function sampled along the plot line
type Curve struct {
	Label string
	X, F  []float64
}

// samples returns Npts abscissae on [0, xmax], Gauss-Lobatto or equally spaced
func (pm *PlotModel) samples(xmax float64) (R utils.Vector) {
	if pm.Lobatto {
		return HO1D.UnitInterval(HO1D.JacobiGL(0, 0, pm.Npts-1)).Scale(xmax)
	}
	return utils.NewLinspace(0, xmax, pm.Npts)
}

// Curves samples every shape function of the model's element along the plot line
func (pm *PlotModel) Curves() (curves []Curve, err error) {
	var (
		et types.ElementType
		el types.ScalarFiniteElement
	)
	if et, err = types.NewElementType(pm.Element); err != nil {
		return
	}
	if pm.Npts < 2 {
		return nil, fmt.Errorf("need at least 2 sample points, have %d", pm.Npts)
	}
	if len(pm.VNums) == 0 {
		pm.VNums = make([]int, et.NumVertices())
		for i := range pm.VNums {
			pm.VNums[i] = i
		}
	}
	if el, err = HO2D.NewScalarElement(et, pm.P, pm.VNums); err != nil {
		return
	}
	var (
		R, S   utils.Vector
		V      utils.Matrix
		labels = HO2D.DofLabels(et, pm.P)
	)
	switch et {
	case types.Segment:
		R = pm.samples(1)
		V = HO2D.ShapeMatrix(el, R)
	case types.Triangle:
		if pm.Y < 0 || pm.Y >= 1 {
			return nil, fmt.Errorf("plot line y = %g does not cross the triangle", pm.Y)
		}
		R = pm.samples(1 - pm.Y)
		S = utils.NewVector(pm.Npts).AddScalar(pm.Y)
		V = HO2D.ShapeMatrix(el, R, S)
	}
	pm.XMax = R.Max()
	pm.FMin, pm.FMax = min(-1, V.Min()), max(1, V.Max())
	// One row per dof
	VT := V.Transpose()
	curves = make([]Curve, el.Ndof())
	for j := range curves {
		curves[j] = Curve{Label: labels[j], X: R.DataP, F: VT.Row(j).DataP}
	}
	return
}

func (pm *PlotModel) Plot(curves []Curve) {
	var (
		chart  = newLineChart(1024, 768, 0, pm.XMax, pm.FMin, pm.FMax)
		colors = utils.LineColors(len(curves))
	)
	for j, c := range curves {
		logger.Debugw("plotting curve", "dof", c.Label)
		chart.Plot(pm.Delay, c.X, c.F, colors[j])
	}
}

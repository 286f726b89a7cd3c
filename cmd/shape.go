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
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/hoshape/HO2D"
	"github.com/notargets/hoshape/InputParameters"
	"github.com/notargets/hoshape/types"
	"github.com/notargets/hoshape/utils"
)

// ShapeCmd represents the shape command
var ShapeCmd = &cobra.Command{
	Use:   "shape",
	Short: "Evaluate shape functions and gradients at reference points",
	Long: `
Evaluates the hierarchical basis of one element at one or more reference
points. Parameters come from the flags, or from a YAML input file (-I).

hoshape shape -e segm -p 5 --vnums 7,3 --point 0.1,0.5,0.9
hoshape shape -e trig -p 4 --gauss 3 --integrate
hoshape shape -I input.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var ip *InputParameters.ShapeParameters
		if ip, err = processInput(cmd); err != nil {
			return
		}
		if viper.GetBool("verbose") {
			ip.Print()
		}
		logger.Debugw("evaluating shape functions",
			"element", ip.Element, "order", ip.PolynomialOrder,
			"vnums", ip.VertexNumbers, "points", len(ip.Points), "gauss", ip.GaussPoints)
		return RunShape(cmd.OutOrStdout(), ip)
	},
}

func init() {
	rootCmd.AddCommand(ShapeCmd)
	ShapeCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with Element, PolynomialOrder, VertexNumbers, Points, Gradient")
	ShapeCmd.Flags().StringP("element", "e", "trig", "element type: segm or trig")
	ShapeCmd.Flags().IntP("order", "p", 3, "polynomial order")
	ShapeCmd.Flags().IntSliceP("vnums", "v", nil, "global vertex numbers, default is the local numbering")
	ShapeCmd.Flags().Float64Slice("point", nil, "reference coordinates, consecutive groups of 1 (segm) or 2 (trig) values")
	ShapeCmd.Flags().BoolP("grad", "g", false, "also print the reference gradients")
	ShapeCmd.Flags().Int("gauss", 0, "evaluate at a Gauss rule with this many points per direction instead of --point")
	ShapeCmd.Flags().Bool("integrate", false, "also print the integral of each shape function over the element")
}

func processInput(cmd *cobra.Command) (ip *InputParameters.ShapeParameters, err error) {
	var (
		inputFile, _ = cmd.Flags().GetString("inputConditionsFile")
		et           types.ElementType
	)
	ip = &InputParameters.ShapeParameters{}
	if len(inputFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(inputFile); err != nil {
			return nil, fmt.Errorf("reading input file: %w", err)
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing input file %s: %w", inputFile, err)
		}
	} else {
		ip.Element = stringFlagOrConfig(cmd, "element")
		ip.PolynomialOrder = intFlagOrConfig(cmd, "order")
		ip.VertexNumbers, _ = cmd.Flags().GetIntSlice("vnums")
		ip.Gradient, _ = cmd.Flags().GetBool("grad")
		ip.GaussPoints, _ = cmd.Flags().GetInt("gauss")
		ip.Integrate, _ = cmd.Flags().GetBool("integrate")
		if et, err = ip.ElementType(); err != nil {
			return nil, err
		}
		coords, _ := cmd.Flags().GetFloat64Slice("point")
		if ip.Points, err = groupCoordinates(coords, et.Dim()); err != nil {
			return nil, err
		}
	}
	if err = ip.Validate(); err != nil {
		return nil, err
	}
	return
}

// stringFlagOrConfig prefers an explicitly set flag over the config file value
func stringFlagOrConfig(cmd *cobra.Command, name string) string {
	if cmd.Flags().Changed(name) || !viper.IsSet(name) {
		val, _ := cmd.Flags().GetString(name)
		return val
	}
	return viper.GetString(name)
}

func intFlagOrConfig(cmd *cobra.Command, name string) int {
	if cmd.Flags().Changed(name) || !viper.IsSet(name) {
		val, _ := cmd.Flags().GetInt(name)
		return val
	}
	return viper.GetInt(name)
}

func groupCoordinates(coords []float64, dim int) (points [][]float64, err error) {
	if len(coords)%dim != 0 {
		return nil, fmt.Errorf("%d coordinates do not form points of dimension %d", len(coords), dim)
	}
	for i := 0; i < len(coords); i += dim {
		points = append(points, coords[i:i+dim])
	}
	return
}

func centroid(et types.ElementType) (p []float64) {
	p = make([]float64, et.Dim())
	for i := range p {
		p[i] = 1. / float64(et.NumVertices())
	}
	return
}

// pointCoordinates returns the evaluation points of ip as one vector per
// direction: a Gauss rule, the listed points, or the element centroid
func pointCoordinates(et types.ElementType, ip *InputParameters.ShapeParameters) (coords []utils.Vector) {
	if ip.GaussPoints > 0 {
		coords, _ = HO2D.GaussPoints(et, ip.GaussPoints)
		return
	}
	points := ip.Points
	if len(points) == 0 {
		points = [][]float64{centroid(et)}
	}
	coords = make([]utils.Vector, et.Dim())
	for d := range coords {
		coords[d] = utils.NewVector(len(points))
		for n, p := range points {
			coords[d].DataP[n] = p[d]
		}
	}
	return
}

// RunShape evaluates the element described by ip at each of its points and
// writes one table per point, followed by the integrals when requested
func RunShape(out io.Writer, ip *InputParameters.ShapeParameters) (err error) {
	var (
		et types.ElementType
		el types.ScalarFiniteElement
		Vd []utils.Matrix
	)
	if et, err = ip.ElementType(); err != nil {
		return
	}
	if el, err = HO2D.NewScalarElement(et, ip.PolynomialOrder, ip.VertexNumbers); err != nil {
		return
	}
	var (
		Np     = el.Ndof()
		dim    = et.Dim()
		labels = HO2D.DofLabels(et, ip.PolynomialOrder)
		coords = pointCoordinates(et, ip)
		Npts   = coords[0].Len()
		V      = HO2D.ShapeMatrix(el, coords...)
	)
	if ip.Gradient {
		Vd = HO2D.GradShapeMatrix(el, coords...)
	}
	if viper.GetBool("verbose") {
		logger.Debug(V.Print("shape matrix"))
	}
	fmt.Fprintf(out, "# %s order %d, vertex numbers %v, %d dofs\n", et, el.Order(), ip.VertexNumbers, Np)
	point := make([]float64, dim)
	for n := 0; n < Npts; n++ {
		for d := range point {
			point[d] = coords[d].AtVec(n)
		}
		fmt.Fprintf(out, "# point %v\n", point)
		shape := V.Row(n).DataP
		grads := make([][]float64, len(Vd))
		for d := range Vd {
			grads[d] = Vd[d].Row(n).DataP
		}
		for i := 0; i < Np; i++ {
			fmt.Fprintf(out, "%-6s %18.12f", labels[i], shape[i])
			for d := range grads {
				fmt.Fprintf(out, " %18.12f", grads[d][i])
			}
			fmt.Fprintln(out)
		}
	}
	if ip.Integrate {
		I := HO2D.Integrate(el)
		fmt.Fprintf(out, "# integrals\n")
		for i := 0; i < Np; i++ {
			fmt.Fprintf(out, "%-6s %18.12f\n", labels[i], I.AtVec(i))
		}
	}
	return
}

package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/hoshape/types"
)

// Parameters obtained from the YAML input file
type ShapeParameters struct {
	Title           string      `yaml:"Title"`
	Element         string      `yaml:"Element"`         // segm or trig
	PolynomialOrder int         `yaml:"PolynomialOrder"` // Order of the hierarchical basis
	VertexNumbers   []int       `yaml:"VertexNumbers"`   // Global vertex numbers of the local vertices
	Points          [][]float64 `yaml:"Points"`          // Reference points to evaluate at
	Gradient        bool        `yaml:"Gradient"`        // Also evaluate the reference gradients
	GaussPoints     int         `yaml:"GaussPoints"`     // Points per direction of a Gauss rule, replaces Points
	Integrate       bool        `yaml:"Integrate"`       // Also report the integral of each shape function
}

func (ip *ShapeParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// ElementType resolves the Element name, check with Validate first
func (ip *ShapeParameters) ElementType() (et types.ElementType, err error) {
	return types.NewElementType(ip.Element)
}

func (ip *ShapeParameters) Validate() (err error) {
	var et types.ElementType
	if et, err = ip.ElementType(); err != nil {
		return
	}
	if ip.PolynomialOrder < 0 {
		return fmt.Errorf("PolynomialOrder must be non-negative, have %d", ip.PolynomialOrder)
	}
	if len(ip.VertexNumbers) == 0 {
		// Default to the local numbering
		ip.VertexNumbers = make([]int, et.NumVertices())
		for i := range ip.VertexNumbers {
			ip.VertexNumbers[i] = i
		}
	}
	if len(ip.VertexNumbers) != et.NumVertices() {
		return fmt.Errorf("%s needs %d VertexNumbers, have %v", et, et.NumVertices(), ip.VertexNumbers)
	}
	if ip.GaussPoints < 0 {
		return fmt.Errorf("GaussPoints must be non-negative, have %d", ip.GaussPoints)
	}
	for i, p := range ip.Points {
		if len(p) != et.Dim() {
			return fmt.Errorf("point %d has %d coordinates, %s needs %d", i, len(p), et, et.Dim())
		}
	}
	return
}

func (ip *ShapeParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Element\n", ip.Element)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", ip.PolynomialOrder)
	fmt.Printf("%v\t\t\t= Vertex Numbers\n", ip.VertexNumbers)
	fmt.Printf("[%t]\t\t\t= Gradient\n", ip.Gradient)
	fmt.Printf("[%d]\t\t\t\t= Gauss Points\n", ip.GaussPoints)
	fmt.Printf("[%t]\t\t\t= Integrate\n", ip.Integrate)
	for i, p := range ip.Points {
		fmt.Printf("Points[%d] = %v\n", i, p)
	}
}

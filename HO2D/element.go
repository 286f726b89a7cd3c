package HO2D

import (
	"fmt"

	"github.com/notargets/hoshape/HO1D"
	"github.com/notargets/hoshape/types"
)

var (
	_ types.ScalarFiniteElement = &HO1D.Segment{}
	_ types.ScalarFiniteElement = &Triangle{}
)

// NewScalarElement builds the hierarchical element of type et, for hosts that
// handle segments and triangles through one interface
func NewScalarElement(et types.ElementType, P int, vnums []int) (el types.ScalarFiniteElement, err error) {
	if P < 0 {
		err = fmt.Errorf("polynomial order must be non-negative, have %d", P)
		return
	}
	if len(vnums) != et.NumVertices() {
		err = fmt.Errorf("%s needs %d vertex numbers, have %d", et, et.NumVertices(), len(vnums))
		return
	}
	switch et {
	case types.Segment:
		el = HO1D.NewSegment(P, vnums)
	case types.Triangle:
		el = NewTriangle(P, vnums)
	default:
		err = fmt.Errorf("unsupported element type %s", et)
	}
	return
}

// NdofFor returns the number of dofs of an order P element of type et
func NdofFor(et types.ElementType, P int) int {
	switch et {
	case types.Segment:
		return P + 1
	case types.Triangle:
		return (P + 1) * (P + 2) / 2
	}
	panic(fmt.Errorf("unsupported element type %s", et))
}

/*
DofLabels names the dofs of an order P element of type et, in shape vector
order: "V0" vertex 0, "E1.3" edge 1 degree 3, "I0.2" interior pair (0,2), and
"C" for the single constant dof of order 0.
*/
func DofLabels(et types.ElementType, P int) (labels []string) {
	labels = make([]string, 0, NdofFor(et, P))
	if P == 0 {
		return append(labels, "C")
	}
	for i := 0; i < et.NumVertices(); i++ {
		labels = append(labels, fmt.Sprintf("V%d", i))
	}
	for e := 0; e < et.NumEdges(); e++ {
		for k := 2; k <= P; k++ {
			labels = append(labels, fmt.Sprintf("E%d.%d", e, k))
		}
	}
	if et == types.Triangle {
		for i := 0; i <= P-3; i++ {
			for j := 0; j <= P-3-i; j++ {
				labels = append(labels, fmt.Sprintf("I%d.%d", i, j))
			}
		}
	}
	return
}

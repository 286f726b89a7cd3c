package HO1D

import (
	"fmt"

	"github.com/notargets/hoshape/autodiff"
	"github.com/notargets/hoshape/types"
)

/*
Segment is the hierarchical element on the unit segment [0,1].

	shape[0], shape[1]   barycentrics x and 1-x
	shape[2..P]          L_2..L_P of xi, xi in [-1,1] running from the lower
	                     to the higher global vertex number

For P = 0 the only dof is the constant x + (1-x) = 1.
The element is immutable after construction and safe for concurrent use.
*/
// scratchLen bounds the orders evaluated in stack buffers, higher orders allocate
const scratchLen = 32

type Segment struct {
	P     int    // Order
	Np    int    // Number of dofs
	VNums [2]int // Global vertex numbers
}

func NewSegment(P int, vnums []int) (el *Segment) {
	if P < 0 {
		panic(fmt.Errorf("polynomial order must be non-negative, have %d", P))
	}
	if len(vnums) != 2 {
		panic(fmt.Errorf("segment needs 2 vertex numbers, have %d", len(vnums)))
	}
	el = &Segment{
		P:     P,
		Np:    P + 1,
		VNums: [2]int{vnums[0], vnums[1]},
	}
	return
}

func (el *Segment) Type() types.ElementType { return types.Segment }
func (el *Segment) Order() int              { return el.P }
func (el *Segment) Ndof() int               { return el.Np }

func (el *Segment) checkArgs(point, buf []float64, width int) {
	if len(point) < 1 {
		panic(fmt.Errorf("segment point needs 1 coordinate, have %d", len(point)))
	}
	if len(buf) < el.Np*width {
		panic(fmt.Errorf("output buffer too short: need %d, have %d", el.Np*width, len(buf)))
	}
}

func (el *Segment) CalcShape(point, shape []float64) {
	el.checkArgs(point, shape, 1)
	var buf [scratchLen]autodiff.Real
	sh := autodiff.Scratch(buf[:], el.Np)
	calcShape(el, autodiff.Real(point[0]), sh)
	autodiff.RealsToFloats(sh, shape)
}

func (el *Segment) CalcDShape(point, dshape []float64) {
	el.checkArgs(point, dshape, 1)
	var buf [scratchLen]autodiff.Dual1
	sh := autodiff.Scratch(buf[:], el.Np)
	calcShape(el, autodiff.NewVariable[[1]float64](point[0], 0), sh)
	for i := range sh {
		dshape[i] = sh[i].DValue(0)
	}
}

// calcShape is the single evaluation path behind CalcShape and CalcDShape
func calcShape[T autodiff.Number[T]](el *Segment, x T, shape []T) {
	lam := [2]T{x, x.Const(1).Sub(x)}
	if el.P == 0 {
		// a single dof, the sum of the vertex functions
		shape[0] = lam[0].Add(lam[1])
		return
	}
	shape[0], shape[1] = lam[0], lam[1]
	if el.P < 2 {
		return
	}
	edge := types.OrientEdge(types.Segment, 0, el.VNums[:])
	xi := lam[edge[1]].Sub(lam[edge[0]])
	var pbuf [scratchLen]T
	polx := autodiff.Scratch(pbuf[:], el.P+1)
	IntegratedLegendrePolynomial(el.P, xi, polx)
	copy(shape[2:], polx[2:])
}

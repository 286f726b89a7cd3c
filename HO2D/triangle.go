package HO2D

import (
	"fmt"

	"github.com/notargets/hoshape/HO1D"
	"github.com/notargets/hoshape/autodiff"
	"github.com/notargets/hoshape/types"
)

/*
Triangle is the hierarchical element on the unit triangle (0,0), (1,0), (0,1)
with barycentrics lam = (x, y, 1-x-y). The dofs are laid out as

	shape[0..2]                   vertex functions lam[0], lam[1], lam[2]
	3 blocks of P-1 edge dofs     per local edge, degree 2..P ascending
	(P-2)(P-1)/2 interior dofs    bub * polx[i] * poly[j], i ascending, then j

Edge functions are the scaled integrated Legendre polynomials of the edge
barycentrics (ls, le), oriented from the lower to the higher global vertex
number so neighbors sharing the edge agree on it. Interior functions are

	bub   = lam[0] * lam[1] * lam[2]
	polx  = scaled Legendre of (lam[1]-lam[0], lam[1]+lam[0])
	poly  = Legendre of 2*lam[2]-1

for i, j >= 0 with i+j <= P-3. For P = 0 the only dof is the constant
lam[0]+lam[1]+lam[2] = 1.
*/
// Buffer sizes below which evaluation stays on the stack: shapeScratchLen
// covers the dofs up to order 21, polyScratchLen the polynomial recurrences
const (
	shapeScratchLen = 256
	polyScratchLen  = 32
)

type Triangle struct {
	P     int    // Order
	Np    int    // Number of dofs, (P+1)(P+2)/2
	VNums [3]int // Global vertex numbers
}

func NewTriangle(P int, vnums []int) (el *Triangle) {
	if P < 0 {
		panic(fmt.Errorf("polynomial order must be non-negative, have %d", P))
	}
	if len(vnums) != 3 {
		panic(fmt.Errorf("triangle needs 3 vertex numbers, have %d", len(vnums)))
	}
	el = &Triangle{
		P:     P,
		Np:    (P + 1) * (P + 2) / 2,
		VNums: [3]int{vnums[0], vnums[1], vnums[2]},
	}
	return
}

func (el *Triangle) Type() types.ElementType { return types.Triangle }
func (el *Triangle) Order() int              { return el.P }
func (el *Triangle) Ndof() int               { return el.Np }

// EdgeDofs returns the index range [begin, end) of the dofs of local edge i
func (el *Triangle) EdgeDofs(i int) (begin, end int) {
	nEdge := max(el.P-1, 0)
	begin = min(3, el.Np) + i*nEdge
	end = begin + nEdge
	return
}

// InteriorDofs returns the index range [begin, end) of the interior dofs
func (el *Triangle) InteriorDofs() (begin, end int) {
	_, begin = el.EdgeDofs(2)
	return begin, el.Np
}

func (el *Triangle) checkArgs(point, buf []float64, width int) {
	if len(point) < 2 {
		panic(fmt.Errorf("triangle point needs 2 coordinates, have %d", len(point)))
	}
	if len(buf) < el.Np*width {
		panic(fmt.Errorf("output buffer too short: need %d, have %d", el.Np*width, len(buf)))
	}
}

func (el *Triangle) CalcShape(point, shape []float64) {
	el.checkArgs(point, shape, 1)
	var buf [shapeScratchLen]autodiff.Real
	sh := autodiff.Scratch(buf[:], el.Np)
	calcShape(el, autodiff.Real(point[0]), autodiff.Real(point[1]), sh)
	autodiff.RealsToFloats(sh, shape)
}

func (el *Triangle) CalcDShape(point, dshape []float64) {
	el.checkArgs(point, dshape, 2)
	var (
		x   = autodiff.NewVariable[[2]float64](point[0], 0)
		y   = autodiff.NewVariable[[2]float64](point[1], 1)
		buf [shapeScratchLen]autodiff.Dual2
	)
	sh := autodiff.Scratch(buf[:], el.Np)
	calcShape(el, x, y, sh)
	for i := range sh {
		dshape[2*i] = sh[i].DValue(0)
		dshape[2*i+1] = sh[i].DValue(1)
	}
}

// calcShape is the single evaluation path behind CalcShape and CalcDShape
func calcShape[T autodiff.Number[T]](el *Triangle, x, y T, shape []T) {
	var (
		P   = el.P
		lam = [3]T{x, y, x.Const(1).Sub(x).Sub(y)}
		ii  = 3
	)
	if P == 0 {
		shape[0] = lam[0].Add(lam[1]).Add(lam[2])
		return
	}
	copy(shape, lam[:])
	if P < 2 {
		return
	}
	var pbuf, qbuf [polyScratchLen]T
	polx := autodiff.Scratch(pbuf[:], P+1)
	for i := 0; i < 3; i++ {
		edge := types.OrientEdge(types.Triangle, i, el.VNums[:])
		ls, le := lam[edge[0]], lam[edge[1]]
		// t^k L_k((le-ls)/t), t = le+ls: equals L_k(le-ls) on the edge and
		// vanishes on the two other edges
		HO1D.ScaledIntegratedLegendrePolynomial(P, le.Sub(ls), le.Add(ls), polx)
		ii += copy(shape[ii:], polx[2:])
	}
	if P < 3 {
		return
	}
	bub := lam[0].Mul(lam[1]).Mul(lam[2])
	poly := autodiff.Scratch(qbuf[:], P)
	HO1D.ScaledLegendrePolynomial(P-2, lam[1].Sub(lam[0]), lam[1].Add(lam[0]), polx)
	HO1D.LegendrePolynomial(P-1, lam[2].Scale(2).AddScalar(-1), poly)
	for i := 0; i <= P-3; i++ {
		bi := bub.Mul(polx[i])
		for j := 0; j <= P-3-i; j++ {
			shape[ii] = bi.Mul(poly[j])
			ii++
		}
	}
}

package HO2D

import (
	"fmt"

	"github.com/notargets/hoshape/HO1D"
	"github.com/notargets/hoshape/types"
	"github.com/notargets/hoshape/utils"
)

/*
GaussPoints returns a Gauss-Legendre rule with N points per direction on the
reference element of type et: one coordinate vector per direction, in the form
ShapeMatrix takes, and the weights.

The triangle rule is the collapsed (Duffy) product of two segment rules,
x = u(1-v), y = v, with the factor (1-v) folded into the weights. It
integrates polynomials of degree 2N-2 exactly on the triangle, 2N-1 on the
segment.
*/
func GaussPoints(et types.ElementType, N int) (coords []utils.Vector, W utils.Vector) {
	if N < 1 {
		panic(fmt.Errorf("Gauss rule needs at least one point, have %d", N))
	}
	var (
		X, Wx = HO1D.JacobiGQ(0, 0, N-1)
		U     = HO1D.UnitInterval(X)
		Wu    = Wx.Scale(0.5)
	)
	switch et {
	case types.Segment:
		return []utils.Vector{U}, Wu
	case types.Triangle:
		var (
			R = utils.NewVector(N * N)
			S = utils.NewVector(N * N)
		)
		W = utils.NewVector(N * N)
		for j, v := range U.DataP {
			for i, u := range U.DataP {
				n := j*N + i
				R.DataP[n] = u * (1 - v)
				S.DataP[n] = v
				W.DataP[n] = Wu.DataP[i] * Wu.DataP[j] * (1 - v)
			}
		}
		return []utils.Vector{R, S}, W
	}
	panic(fmt.Errorf("unsupported element type %s", et))
}

// Integrate returns the integral of each shape function of el over its
// reference element, exact for every order
func Integrate(el types.ScalarFiniteElement) (I utils.Vector) {
	var (
		Np        = el.Ndof()
		coords, W = GaussPoints(el.Type(), (el.Order()+1)/2+1)
		V         = ShapeMatrix(el, coords...)
	)
	M := V.Transpose().Mul(utils.NewMatrix(W.Len(), 1, W.DataP))
	return utils.NewVector(Np, M.DataP)
}

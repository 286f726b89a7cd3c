package HO1D

import (
	"fmt"

	"github.com/notargets/hoshape/autodiff"
)

/*
The generators below fill p[0..n] with the first n+1 members of a polynomial
family. They are written against autodiff.Number so that the same code yields
plain values (autodiff.Real) or values with exact derivatives (autodiff.Dual).

The scaled variants take a second argument t and evaluate the homogeneous
form t^k F_k(x/t) without ever dividing by t, they stay polynomial (and finite)
when t goes to zero on the boundary of a simplex.
*/

func checkLength[T any](n int, p []T) {
	if n < 0 {
		panic(fmt.Errorf("polynomial degree must be non-negative, have %d", n))
	}
	if len(p) < n+1 {
		panic(fmt.Errorf("polynomial buffer too short: need %d, have %d", n+1, len(p)))
	}
}

// LegendrePolynomial fills p with P_0..P_n at x, using
// (k+1)P_{k+1} = (2k+1) x P_k - k P_{k-1}
func LegendrePolynomial[T autodiff.Number[T]](n int, x T, p []T) {
	checkLength(n, p)
	p[0] = x.Const(1)
	if n == 0 {
		return
	}
	p[1] = x
	for k := 1; k < n; k++ {
		fk := float64(k)
		p[k+1] = x.Mul(p[k]).Scale((2*fk + 1) / (fk + 1)).
			Sub(p[k-1].Scale(fk / (fk + 1)))
	}
}

// ScaledLegendrePolynomial fills p with t^k P_k(x/t), k=0..n, using
// (k+1)P_{k+1} = (2k+1) x P_k - k t^2 P_{k-1}
func ScaledLegendrePolynomial[T autodiff.Number[T]](n int, x, t T, p []T) {
	checkLength(n, p)
	p[0] = x.Const(1)
	if n == 0 {
		return
	}
	p[1] = x
	tt := t.Mul(t)
	for k := 1; k < n; k++ {
		fk := float64(k)
		p[k+1] = x.Mul(p[k]).Scale((2*fk + 1) / (fk + 1)).
			Sub(tt.Mul(p[k-1]).Scale(fk / (fk + 1)))
	}
}

/*
IntegratedLegendrePolynomial fills p with L_0..L_n at x. L_0 = 1, L_1 = x, and
for k >= 2 L_k is the integral of P_{k-1} from -1 to x:

	L_k = (P_k - P_{k-2}) / (2k-1)

so L_k has degree k and vanishes at x = -1 and x = 1. The values come from
L_2 = (x^2-1)/2 and k L_k = (2k-3) x L_{k-1} - (k-3) L_{k-2} for k >= 3.
*/
func IntegratedLegendrePolynomial[T autodiff.Number[T]](n int, x T, p []T) {
	checkLength(n, p)
	p[0] = x.Const(1)
	if n == 0 {
		return
	}
	p[1] = x
	if n == 1 {
		return
	}
	p[2] = x.Mul(x).AddScalar(-1).Scale(0.5)
	for k := 3; k <= n; k++ {
		fk := float64(k)
		p[k] = x.Mul(p[k-1]).Scale((2*fk - 3) / fk).
			Sub(p[k-2].Scale((fk - 3) / fk))
	}
}

// ScaledIntegratedLegendrePolynomial fills p with t^k L_k(x/t), k=0..n.
// With x = le-ls and t = le+ls for two barycentric coordinates of an edge,
// entry k (k >= 2) equals L_k(le-ls) on the edge, where le+ls = 1, and
// vanishes wherever ls or le is zero.
func ScaledIntegratedLegendrePolynomial[T autodiff.Number[T]](n int, x, t T, p []T) {
	checkLength(n, p)
	p[0] = x.Const(1)
	if n == 0 {
		return
	}
	p[1] = x
	if n == 1 {
		return
	}
	tt := t.Mul(t)
	p[2] = x.Mul(x).Sub(tt).Scale(0.5)
	for k := 3; k <= n; k++ {
		fk := float64(k)
		p[k] = x.Mul(p[k-1]).Scale((2*fk - 3) / fk).
			Sub(tt.Mul(p[k-2]).Scale((fk - 3) / fk))
	}
}

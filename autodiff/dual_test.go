package autodiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/dual"
)

// cubic evaluates x^3 - 2x + 3 using only the Number operations
func cubic[T Number[T]](x T) T {
	return x.Mul(x).Mul(x).Sub(x.Scale(2)).AddScalar(3)
}

func TestDualAgainstGonum(t *testing.T) {
	for _, x := range []float64{-1.5, -0.25, 0, 0.3, 1, 2.75} {
		d := cubic(NewVariable[[1]float64](x, 0))
		gx := dual.Number{Real: x, Emag: 1}
		g := dual.Add(
			dual.Sub(dual.Mul(dual.Mul(gx, gx), gx), dual.Scale(2, gx)),
			dual.Number{Real: 3})
		assert.InDeltaf(t, g.Real, d.Value(), 1.e-14, "value at x=%f", x)
		assert.InDeltaf(t, g.Emag, d.DValue(0), 1.e-14, "derivative at x=%f", x)
		// Plain evaluation agrees with the dual value
		assert.InDelta(t, d.Value(), cubic(Real(x)).Value(), 1.e-14)
	}
}

func TestDualTwoVariables(t *testing.T) {
	var (
		x, y = 0.4, -1.3
		dx   = NewVariable[[2]float64](x, 0)
		dy   = NewVariable[[2]float64](y, 1)
	)
	// f = x*y + x^2 - 1
	f := dx.Mul(dy).Add(dx.Mul(dx)).Sub(dx.Const(1))
	assert.InDelta(t, x*y+x*x-1, f.Val, 1.e-15)
	assert.InDelta(t, y+2*x, f.DValue(0), 1.e-15)
	assert.InDelta(t, x, f.DValue(1), 1.e-15)

	c := dx.Const(2.5)
	assert.Equal(t, Dual2{Val: 2.5}, c)
	assert.Equal(t, [2]float64{0, 1}, dy.D)
}

func TestNewVariableOutOfRange(t *testing.T) {
	assert.Panics(t, func() { NewVariable[[1]float64](1, 1) })
	assert.Panics(t, func() { NewVariable[[2]float64](1, -1) })
}

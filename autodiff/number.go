// Package autodiff provides the scalar types the shape function recurrences
// are written against: Real for plain values and Dual for values carrying
// exact partial derivatives.
package autodiff

// Number is the arithmetic a recurrence needs from its scalar type. Every
// operation returns a new value, receivers are never modified.
type Number[T any] interface {
	Add(b T) T
	Sub(b T) T
	Mul(b T) T
	// Scale multiplies by a plain constant
	Scale(a float64) T
	// AddScalar adds a plain constant
	AddScalar(a float64) T
	// Const returns a constant of the receiver's type, all partials zero
	Const(a float64) T
	Value() float64
}

// Real is a plain float64 satisfying Number
type Real float64

func (x Real) Add(b Real) Real          { return x + b }
func (x Real) Sub(b Real) Real          { return x - b }
func (x Real) Mul(b Real) Real          { return x * b }
func (x Real) Scale(a float64) Real     { return x * Real(a) }
func (x Real) AddScalar(a float64) Real { return x + Real(a) }
func (x Real) Const(a float64) Real     { return Real(a) }
func (x Real) Value() float64           { return float64(x) }

func RealsToFloats(r []Real, f []float64) {
	for i := range r {
		f[i] = float64(r[i])
	}
}

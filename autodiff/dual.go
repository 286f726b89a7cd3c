package autodiff

import "fmt"

// Partials is the storage for the derivative part of a Dual, one slot per
// independent variable.
type Partials interface {
	~[1]float64 | ~[2]float64
}

// Dual carries a value and its exact partial derivatives with respect to
// len(P) independent variables. Arithmetic propagates the partials with the
// sum and product rules, so a recurrence written against Number yields
// derivatives from the same code that produces values.
type Dual[P Partials] struct {
	Val float64
	D   P
}

type (
	Dual1 = Dual[[1]float64]
	Dual2 = Dual[[2]float64]
)

// NewVariable returns the independent variable number dir with value val,
// its partial with respect to itself is 1.
func NewVariable[P Partials](val float64, dir int) (d Dual[P]) {
	if dir < 0 || dir >= len(d.D) {
		panic(fmt.Errorf("derivative direction %d out of range for %d partials", dir, len(d.D)))
	}
	d.Val = val
	d.D[dir] = 1
	return
}

func (a Dual[P]) Add(b Dual[P]) (r Dual[P]) {
	r.Val = a.Val + b.Val
	for i := 0; i < len(r.D); i++ {
		r.D[i] = a.D[i] + b.D[i]
	}
	return
}

func (a Dual[P]) Sub(b Dual[P]) (r Dual[P]) {
	r.Val = a.Val - b.Val
	for i := 0; i < len(r.D); i++ {
		r.D[i] = a.D[i] - b.D[i]
	}
	return
}

func (a Dual[P]) Mul(b Dual[P]) (r Dual[P]) {
	r.Val = a.Val * b.Val
	for i := 0; i < len(r.D); i++ {
		r.D[i] = a.D[i]*b.Val + a.Val*b.D[i]
	}
	return
}

func (a Dual[P]) Scale(s float64) (r Dual[P]) {
	r.Val = s * a.Val
	for i := 0; i < len(r.D); i++ {
		r.D[i] = s * a.D[i]
	}
	return
}

func (a Dual[P]) AddScalar(s float64) (r Dual[P]) {
	r = a
	r.Val += s
	return
}

func (a Dual[P]) Const(s float64) (r Dual[P]) {
	r.Val = s
	return
}

func (a Dual[P]) Value() float64 { return a.Val }

// DValue returns the partial derivative with respect to variable dir
func (a Dual[P]) DValue(dir int) float64 { return a.D[dir] }

func (a Dual[P]) String() string {
	return fmt.Sprintf("(%g, %v)", a.Val, a.D)
}

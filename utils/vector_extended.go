package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			panic(fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v", n, len(dataO[0])))
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	R = Vector{
		V:     v,
		DataP: v.RawVector().Data,
	}
	return
}

// Dims, At, T, AtVec and Len satisfy mat.Vector
var _ mat.Vector = Vector{}

func (v Vector) Dims() (r, c int)    { return v.V.Dims() }
func (v Vector) At(i, j int) float64 { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix       { return v.V.T() }
func (v Vector) AtVec(i int) float64 { return v.V.AtVec(i) }
func (v Vector) Len() int            { return v.V.Len() }

func (v Vector) Copy() (R Vector) { // Does not change receiver
	data := make([]float64, v.Len())
	copy(data, v.DataP)
	R = NewVector(v.Len(), data)
	return
}

// Chainable (extended) methods, all change the receiver
func (v Vector) AddScalar(a float64) Vector {
	for i := range v.DataP {
		v.DataP[i] += a
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	for i := range v.DataP {
		v.DataP[i] *= a
	}
	return v
}

func (v Vector) POW(p int) Vector {
	for i, val := range v.DataP {
		v.DataP[i] = POW(val, p)
	}
	return v
}

func (v Vector) Max() (max float64) {
	max = v.DataP[0]
	for _, val := range v.DataP {
		if val > max {
			max = val
		}
	}
	return
}

// NewLinspace returns N equally spaced values from min to max, inclusive
func NewLinspace(min, max float64, N int) (R Vector) {
	R = NewVector(N)
	if N == 1 {
		R.DataP[0] = min
		return
	}
	inc := (max - min) / float64(N-1)
	for i := range R.DataP {
		R.DataP[i] = min + float64(i)*inc
	}
	R.DataP[N-1] = max
	return
}

func NewSymTriDiagonal(d0, d1 []float64) (Tri *mat.SymDense) {
	// d0 is the main diagonal, d1 the first upper diagonal
	var (
		N = len(d0)
	)
	Tri = mat.NewSymDense(N, nil)
	for i := 0; i < N; i++ {
		Tri.SetSym(i, i, d0[i])
	}
	for i := 0; i < N-1; i++ {
		Tri.SetSym(i, i+1, d1[i])
	}
	return
}

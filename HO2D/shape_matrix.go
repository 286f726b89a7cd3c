package HO2D

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/notargets/hoshape/types"
	"github.com/notargets/hoshape/utils"
)

/*
ShapeMatrix evaluates el at a set of reference points and returns an
[Npts, Ndof] matrix, row n holding the shape vector at point n. This is the
hierarchical counterpart of a Vandermonde matrix.

The coordinates are passed per direction: R for a segment, R and S for a
triangle. Rows are computed in parallel, each goroutine owns a contiguous block
of rows.
*/
func ShapeMatrix(el types.ScalarFiniteElement, coords ...utils.Vector) (V utils.Matrix) {
	var (
		Npts = checkCoords(el, coords)
		Np   = el.Ndof()
	)
	V = utils.NewMatrix(Npts, Np)
	forEachPoint(Npts, func(n int, point []float64) {
		for d := range coords {
			point[d] = coords[d].AtVec(n)
		}
		el.CalcShape(point, V.DataP[n*Np:(n+1)*Np])
	})
	return
}

/*
GradShapeMatrix returns one [Npts, Ndof] matrix per reference direction,
Vr (and Vs for a triangle), holding the shape derivatives at each point.
*/
func GradShapeMatrix(el types.ScalarFiniteElement, coords ...utils.Vector) (Vd []utils.Matrix) {
	var (
		Npts = checkCoords(el, coords)
		Np   = el.Ndof()
		dim  = el.Type().Dim()
	)
	Vd = make([]utils.Matrix, dim)
	for d := range Vd {
		Vd[d] = utils.NewMatrix(Npts, Np)
	}
	forEachPoint(Npts, func(n int, point []float64) {
		dshape := make([]float64, Np*dim)
		for d := range coords {
			point[d] = coords[d].AtVec(n)
		}
		el.CalcDShape(point, dshape)
		for i := 0; i < Np; i++ {
			for d := 0; d < dim; d++ {
				Vd[d].DataP[n*Np+i] = dshape[i*dim+d]
			}
		}
	})
	return
}

func checkCoords(el types.ScalarFiniteElement, coords []utils.Vector) (Npts int) {
	if len(coords) != el.Type().Dim() {
		panic(fmt.Errorf("%s needs %d coordinate vectors, have %d",
			el.Type(), el.Type().Dim(), len(coords)))
	}
	Npts = coords[0].Len()
	for _, c := range coords[1:] {
		if c.Len() != Npts {
			panic(fmt.Errorf("coordinate vectors differ in length: %d and %d", Npts, c.Len()))
		}
	}
	return
}

// forEachPoint calls f for n in [0,Npts), spread over the available CPUs.
// The point buffer passed to f is private to its goroutine.
func forEachPoint(Npts int, f func(n int, point []float64)) {
	if Npts == 0 {
		return
	}
	var (
		NP = min(runtime.NumCPU(), Npts)
		pm = utils.NewPartitionMap(NP, Npts)
		wg = sync.WaitGroup{}
	)
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			point := make([]float64, 2)
			kMin, kMax := pm.GetBucketRange(np)
			for n := kMin; n < kMax; n++ {
				f(n, point)
			}
			wg.Done()
		}(np)
	}
	wg.Wait()
}

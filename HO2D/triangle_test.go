package HO2D

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/hoshape/HO1D"
	"github.com/notargets/hoshape/autodiff"
	"github.com/notargets/hoshape/types"
)

var samplePoints = [][2]float64{
	{0.1, 0.2}, {1. / 3, 1. / 3}, {0.6, 0.1}, {0.05, 0.9}, {0.25, 0.7}, {0.45, 0.45}, {0.8, 0.15},
}

// pointFromLam maps barycentrics to reference coordinates (x, y) = (lam0, lam1)
func pointFromLam(lam [3]float64) []float64 { return []float64{lam[0], lam[1]} }

// pointOnEdge returns the point at parameter u along local edge i, running
// from the first to the second vertex of GetEdge
func pointOnEdge(i int, u float64) []float64 {
	var (
		edge = types.GetEdge(types.Triangle, i)
		lam  [3]float64
	)
	lam[edge[0]] = 1 - u
	lam[edge[1]] = u
	return pointFromLam(lam)
}

func TestTriangleDofCount(t *testing.T) {
	for P := 0; P <= 10; P++ {
		el := NewTriangle(P, []int{0, 1, 2})
		assert.Equal(t, (P+1)*(P+2)/2, el.Ndof())
		assert.Equal(t, NdofFor(types.Triangle, P), el.Ndof())
		assert.Equal(t, P+1, NdofFor(types.Segment, P))
		// Vertex, edge and interior blocks partition the dofs
		b0, _ := el.EdgeDofs(0)
		_, e2 := el.EdgeDofs(2)
		ib, ie := el.InteriorDofs()
		assert.Equal(t, min(3, el.Ndof()), b0)
		assert.Equal(t, min(3, el.Ndof())+3*max(P-1, 0), e2)
		assert.Equal(t, e2, ib)
		assert.Equal(t, el.Ndof(), ie)
		if P >= 3 {
			assert.Equal(t, (P-2)*(P-1)/2, ie-ib)
		} else {
			assert.Equal(t, 0, ie-ib)
		}
	}
}

func TestTriangleVertexDofs(t *testing.T) {
	{ // Order 0 is the constant function
		el := NewTriangle(0, []int{0, 1, 2})
		shape, dshape := make([]float64, 1), make([]float64, 2)
		for _, p := range samplePoints {
			el.CalcShape(p[:], shape)
			el.CalcDShape(p[:], dshape)
			assert.InDelta(t, 1, shape[0], 1.e-15)
			assert.Equal(t, []float64{0, 0}, dshape)
		}
	}
	for P := 1; P <= 8; P++ {
		el := NewTriangle(P, []int{4, 0, 9})
		shape := make([]float64, el.Ndof())
		for _, p := range samplePoints {
			el.CalcShape(p[:], shape)
			assert.InDelta(t, p[0], shape[0], 1.e-15)
			assert.InDelta(t, p[1], shape[1], 1.e-15)
			assert.InDelta(t, 1, floats.Sum(shape[:3]), 1.e-15)
		}
		// All non-vertex dofs vanish at the vertices
		for _, v := range [][]float64{{1, 0}, {0, 1}, {0, 0}} {
			el.CalcShape(v, shape)
			for i := 3; i < el.Ndof(); i++ {
				assert.InDeltaf(t, 0, shape[i], 1.e-14, "P=%d, dof=%d at %v", P, i, v)
			}
		}
	}
}

func TestTriangleEdgeDofs(t *testing.T) {
	us := []float64{0, 0.15, 0.5, 0.73, 1}
	for P := 2; P <= 8; P++ {
		el := NewTriangle(P, []int{11, 3, 7})
		shape := make([]float64, el.Ndof())
		for i := 0; i < 3; i++ {
			b, e := el.EdgeDofs(i)
			assert.Equal(t, P-1, e-b)
			for j := 0; j < 3; j++ {
				if j == i {
					continue
				}
				// Edge i dofs vanish on the two other edges
				for _, u := range us {
					el.CalcShape(pointOnEdge(j, u), shape)
					for k := b; k < e; k++ {
						assert.InDeltaf(t, 0, shape[k], 1.e-14, "P=%d, edge %d dof %d on edge %d", P, i, k, j)
					}
				}
			}
		}
	}
}

func TestTriangleInteriorDofs(t *testing.T) {
	us := []float64{0, 0.2, 0.5, 0.9, 1}
	for P := 3; P <= 8; P++ {
		el := NewTriangle(P, []int{1, 2, 0})
		shape := make([]float64, el.Ndof())
		ib, ie := el.InteriorDofs()
		for j := 0; j < 3; j++ {
			for _, u := range us {
				el.CalcShape(pointOnEdge(j, u), shape)
				for k := ib; k < ie; k++ {
					assert.InDeltaf(t, 0, shape[k], 1.e-14, "P=%d, dof %d on edge %d", P, k, j)
				}
			}
		}
		// but not inside
		el.CalcShape([]float64{0.2, 0.3}, shape)
		assert.NotEqual(t, 0., shape[ib])
	}
}

func TestTriangleTraceMatchesSegment(t *testing.T) {
	us := []float64{0, 0.1, 0.33, 0.5, 0.71, 0.95, 1}
	vnumSets := [][]int{{0, 1, 2}, {5, 2, 9}, {30, 20, 10}}
	for P := 2; P <= 8; P++ {
		for _, vnums := range vnumSets {
			el := NewTriangle(P, vnums)
			shape := make([]float64, el.Ndof())
			for i := 0; i < 3; i++ {
				edge := types.GetEdge(types.Triangle, i)
				// The segment is set up on the same two global vertices, in
				// both local orders
				for _, segVerts := range [][2]int{{edge[0], edge[1]}, {edge[1], edge[0]}} {
					seg := HO1D.NewSegment(P, []int{vnums[segVerts[0]], vnums[segVerts[1]]})
					sshape := make([]float64, seg.Ndof())
					b, _ := el.EdgeDofs(i)
					for _, u := range us {
						point := pointOnEdge(i, u)
						el.CalcShape(point, shape)
						lam := [3]float64{point[0], point[1], 1 - point[0] - point[1]}
						seg.CalcShape([]float64{lam[segVerts[0]]}, sshape)
						for k := 2; k <= P; k++ {
							assert.InDeltaf(t, sshape[k], shape[b+k-2], 1.e-13,
								"P=%d, vnums=%v, edge=%d, k=%d, u=%f", P, vnums, i, k, u)
						}
					}
				}
			}
		}
	}
}

func TestTriangleSharedEdgeConformity(t *testing.T) {
	/*
		Two triangles share the global edge {4,9}; each has its own local
		ordering. Their edge functions must agree along the shared edge.
			left:  global (4, 9, 1)  -> shared edge is local edge 2 = {0,1}
			right: global (9, 12, 4) -> shared edge is local edge 0 = {2,0}
	*/
	var (
		P     = 6
		left  = NewTriangle(P, []int{4, 9, 1})
		right = NewTriangle(P, []int{9, 12, 4})
		ls    = make([]float64, left.Ndof())
		rs    = make([]float64, right.Ndof())
	)
	require.Equal(t,
		types.GlobalEdgeKey(types.Triangle, 2, left.VNums[:]),
		types.GlobalEdgeKey(types.Triangle, 0, right.VNums[:]))
	lb, _ := left.EdgeDofs(2)
	rb, _ := right.EdgeDofs(0)
	for _, s := range []float64{0, 0.2, 0.4, 0.6, 0.85, 1} {
		// s is the fraction of the way from global vertex 4 to global vertex 9
		var lLam, rLam [3]float64
		lLam[0], lLam[1] = 1-s, s // local 0 is global 4, local 1 is global 9
		rLam[2], rLam[0] = 1-s, s // local 2 is global 4, local 0 is global 9
		left.CalcShape(pointFromLam(lLam), ls)
		right.CalcShape(pointFromLam(rLam), rs)
		for k := 0; k < P-1; k++ {
			assert.InDeltaf(t, ls[lb+k], rs[rb+k], 1.e-14, "s=%f, degree %d", s, k+2)
		}
	}
}

func TestTriangleGradient(t *testing.T) {
	settings := &fd.Settings{Formula: fd.Central, Step: 1.e-5}
	points := make([][2]float64, len(samplePoints))
	copy(points, samplePoints)
	points = append(points, [2]float64{0, 0}, [2]float64{0.5, 0.5}, [2]float64{1, 0})
	for P := 0; P <= 6; P++ {
		el := NewTriangle(P, []int{2, 8, 5})
		var (
			Np     = el.Ndof()
			dshape = make([]float64, 2*Np)
			shape  = make([]float64, Np)
			grad   = make([]float64, 2)
		)
		for _, p := range points {
			el.CalcDShape(p[:], dshape)
			for i := 0; i < Np; i++ {
				f := func(x []float64) float64 {
					el.CalcShape(x, shape)
					return shape[i]
				}
				fd.Gradient(grad, f, []float64{p[0], p[1]}, settings)
				for d := 0; d < 2; d++ {
					tol := 1.e-6 * math.Max(1, math.Abs(grad[d]))
					assert.InDeltaf(t, grad[d], dshape[2*i+d], tol,
						"P=%d, dof=%d, dir=%d at %v", P, i, d, p)
				}
			}
		}
	}
	{ // Vertex functions have constant gradients
		el := NewTriangle(1, []int{0, 1, 2})
		dshape := make([]float64, 6)
		el.CalcDShape([]float64{0.3, 0.2}, dshape)
		assert.Equal(t, []float64{1, 0, 0, 1, -1, -1}, dshape)
	}
}

func TestTriangleWorkedExample(t *testing.T) {
	var (
		el    = NewTriangle(3, []int{0, 1, 2})
		shape = make([]float64, el.Ndof())
		third = 1. / 3
	)
	require.Equal(t, 10, el.Ndof())
	el.CalcShape([]float64{third, third}, shape)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, third, shape[i], 1.e-15)
	}
	// With equal barycentrics every edge sees x = 0, t = 2/3
	ref := make([]autodiff.Real, 4)
	HO1D.ScaledIntegratedLegendrePolynomial(3, autodiff.Real(0), autodiff.Real(2*third), ref)
	assert.InDelta(t, -2./9, ref[2].Value(), 1.e-15)
	assert.InDelta(t, 0, ref[3].Value(), 1.e-15)
	// Order 3 carries degrees 2 and 3 on each edge, 3 + 3*2 + 1 = 10 dofs
	for i := 0; i < 3; i++ {
		b, e := el.EdgeDofs(i)
		require.Equal(t, 2, e-b)
		assert.InDelta(t, -2./9, shape[b], 1.e-15)
		assert.InDelta(t, 0, shape[b+1], 1.e-15)
	}
	ib, ie := el.InteriorDofs()
	require.Equal(t, 1, ie-ib)
	assert.InDelta(t, 1./27, shape[ib], 1.e-15)
	assert.InDelta(t, 0.037037, shape[ib], 1.e-6)
}

func TestTriangleConcurrentEvaluation(t *testing.T) {
	var (
		el  = NewTriangle(7, []int{3, 1, 2})
		ref = make([]float64, el.Ndof())
		wg  sync.WaitGroup
	)
	el.CalcShape([]float64{0.2, 0.5}, ref)
	results := make([][]float64, 16)
	for n := range results {
		wg.Add(1)
		go func(n int) {
			results[n] = make([]float64, el.Ndof())
			el.CalcShape([]float64{0.2, 0.5}, results[n])
			wg.Done()
		}(n)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, ref, r)
	}
}

func TestTrianglePreconditions(t *testing.T) {
	assert.Panics(t, func() { NewTriangle(-1, []int{0, 1, 2}) })
	assert.Panics(t, func() { NewTriangle(2, []int{0, 1}) })
	el := NewTriangle(2, []int{0, 1, 2})
	assert.Panics(t, func() { el.CalcShape([]float64{0.1, 0.1}, make([]float64, 5)) })
	assert.Panics(t, func() { el.CalcDShape([]float64{0.1, 0.1}, make([]float64, 6)) })
	assert.Panics(t, func() { el.CalcShape([]float64{0.1}, make([]float64, 6)) })
	// Out of domain points are evaluated, not rejected
	shape := make([]float64, 6)
	assert.NotPanics(t, func() { el.CalcShape([]float64{1.5, -0.7}, shape) })
	assert.InDelta(t, 1, floats.Sum(shape[:3]), 1.e-14)
}

func TestTriangleHighOrder(t *testing.T) {
	// Past the stack buffers, evaluation falls back to heap slices
	var (
		P     = 32
		vnums = []int{6, 2, 4}
		el    = NewTriangle(P, vnums)
		shape = make([]float64, el.Ndof())
	)
	require.Greater(t, el.Ndof(), shapeScratchLen)
	el.CalcShape([]float64{0.3, 0.45}, shape)
	assert.InDelta(t, 1, floats.Sum(shape[:3]), 1.e-14)
	assert.InDelta(t, 0.3, shape[0], 1.e-15)

	ib, ie := el.InteriorDofs()
	el.CalcShape(pointOnEdge(1, 0.4), shape)
	for k := ib; k < ie; k++ {
		assert.InDeltaf(t, 0, shape[k], 1.e-14, "dof %d", k)
	}
	// Edge 2 runs from local 0 to local 1, global 6 to 2, so the segment is
	// set up on the same pair
	var (
		seg    = HO1D.NewSegment(P, []int{vnums[0], vnums[1]})
		sshape = make([]float64, seg.Ndof())
	)
	b, _ := el.EdgeDofs(2)
	for _, u := range []float64{0.1, 0.5, 0.8} {
		point := pointOnEdge(2, u)
		el.CalcShape(point, shape)
		seg.CalcShape([]float64{point[0]}, sshape)
		for k := 2; k <= P; k++ {
			assert.InDeltaf(t, sshape[k], shape[b+k-2], 1.e-12, "u=%f, k=%d", u, k)
		}
	}
	dshape := make([]float64, 2*el.Ndof())
	el.CalcDShape([]float64{0.3, 0.45}, dshape)
	assert.Equal(t, []float64{1, 0, 0, 1, -1, -1}, dshape[:6])
}

package types

import (
	"fmt"
	"math"
)

type ElementType uint8

const (
	Segment ElementType = iota
	Triangle
)

func (et ElementType) NumVertices() int { return et.Dim() + 1 }

func (et ElementType) Dim() int {
	switch et {
	case Segment:
		return 1
	case Triangle:
		return 2
	}
	panic(fmt.Errorf("unknown element type %d", et))
}

func (et ElementType) NumEdges() int {
	switch et {
	case Segment:
		return 1
	case Triangle:
		return 3
	}
	panic(fmt.Errorf("unknown element type %d", et))
}

var (
	segmentEdges  = [][2]int{{0, 1}}
	triangleEdges = [][2]int{{2, 0}, {1, 2}, {0, 1}}
)

// GetEdge returns the local vertices of local edge i in reference order
func GetEdge(et ElementType, i int) [2]int {
	var edges [][2]int
	switch et {
	case Segment:
		edges = segmentEdges
	case Triangle:
		edges = triangleEdges
	default:
		panic(fmt.Errorf("unknown element type %d", et))
	}
	if i < 0 || i >= len(edges) {
		panic(fmt.Errorf("edge index %d out of range, element has %d edges", i, len(edges)))
	}
	return edges[i]
}

/*
OrientEdge returns the local vertices (start, end) of local edge i, ordered so
that the global vertex number of start is lower than that of end.

Two elements sharing an edge see the same global numbers on it, so both agree
on its direction no matter how their local vertices are ordered.
*/
func OrientEdge(et ElementType, i int, vnums []int) (edge [2]int) {
	if len(vnums) < et.NumVertices() {
		panic(fmt.Errorf("vertex numbering has %d entries, element needs %d",
			len(vnums), et.NumVertices()))
	}
	edge = GetEdge(et, i)
	if vnums[edge[1]] < vnums[edge[0]] {
		edge[0], edge[1] = edge[1], edge[0]
	}
	return
}

// ScalarFiniteElement is the contract shared by the hierarchical elements
type ScalarFiniteElement interface {
	Type() ElementType
	Order() int
	Ndof() int
	// CalcShape writes the Ndof shape values at point into shape
	CalcShape(point, shape []float64)
	// CalcDShape writes the reference gradients at point into dshape,
	// row major: dshape[i*Dim+d] is the derivative of shape i in direction d
	CalcDShape(point, dshape []float64)
}

/*
EdgeKey is an always positive number that stores an edge's vertices as indices in a way that can be compared
An edge between vertices [4] and [0] will always be stored as [0,4], in the ascending order of the index values
*/
type EdgeKey uint64

func NewEdgeKey(verts [2]int) (packed EdgeKey) {
	// This packs two index coordinates into two 32 bit unsigned integers to act as a hash and an indirect access method
	var (
		limit = math.MaxUint32
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] <= verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		i1, i2 = verts[1], verts[0]
	}
	packed = EdgeKey(i1 + i2<<32)
	return
}

func (ek EdgeKey) GetVertices(rev bool) (verts [2]int) {
	var (
		enTmp EdgeKey
	)
	enTmp = ek >> 32
	verts[1] = int(enTmp)
	verts[0] = int(ek - enTmp*(1<<32))
	if rev {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

// GlobalEdgeKey returns the key of local edge i under the global numbering
func GlobalEdgeKey(et ElementType, i int, vnums []int) EdgeKey {
	edge := OrientEdge(et, i, vnums)
	return NewEdgeKey([2]int{vnums[edge[0]], vnums[edge[1]]})
}

package hypercube

import (
	"github.com/Faultbox/hyperview/pkg/math"
)

// Tesseract element counts.
const (
	CornerCount  = 16
	EdgeCount    = 32
	CellCount    = 8
	FacesPerCell = 6
	FaceCount    = CellCount * FacesPerCell // each square is seen by its two cells
)

var axes = [4]math.Axis{math.AxisX, math.AxisY, math.AxisZ, math.AxisW}

// Corner returns the position of corner i. Bit k of i selects the sign of
// axis k: set is +size/2, clear is -size/2.
func Corner(i int, size float32) math.Vec4 {
	half := size / 2
	var p math.Vec4
	for _, a := range axes {
		s := -half
		if i&(1<<a) != 0 {
			s = half
		}
		p = p.With(a, s)
	}
	return p
}

// CellKind classifies a cell relative to the w axis.
type CellKind int

const (
	CellInner  CellKind = iota // w = -size/2
	CellOuter                  // w = +size/2
	CellBridge                 // links inner and outer cubes
)

// Cell is one of the 8 cubical cells, bounded by fixing Axis to one sign.
type Cell struct {
	Axis     math.Axis
	Positive bool
}

// Kind returns whether the cell is the inner cube, the outer cube or a bridge.
func (c Cell) Kind() CellKind {
	if c.Axis != math.AxisW {
		return CellBridge
	}
	if c.Positive {
		return CellOuter
	}
	return CellInner
}

// Contains reports whether corner i lies on the cell.
func (c Cell) Contains(i int) bool {
	return (i&(1<<c.Axis) != 0) == c.Positive
}

// Cells returns the 8 cells: inner, outer, then the bridges along x, y, z.
func Cells() []Cell {
	cells := []Cell{
		{Axis: math.AxisW, Positive: false},
		{Axis: math.AxisW, Positive: true},
	}
	for _, a := range axes[:3] {
		cells = append(cells, Cell{Axis: a, Positive: false}, Cell{Axis: a, Positive: true})
	}
	return cells
}

// Face is a square face of a cell: the cell's axis plus a second fixed axis.
// Corners are listed in winding order; the quad splits along Corners[0]-Corners[2].
type Face struct {
	Cell     Cell
	Axis     math.Axis
	Positive bool
	// U and V are the free axes mapped to texture u and v.
	U, V    math.Axis
	Corners [4]int
}

// Faces returns the 6 faces of the cell.
func (c Cell) Faces() []Face {
	faces := make([]Face, 0, FacesPerCell)
	for _, b := range axes {
		if b == c.Axis {
			continue
		}
		for _, positive := range []bool{false, true} {
			faces = append(faces, newFace(c, b, positive))
		}
	}
	return faces
}

// Faces returns all 48 (cell, face) pairs in cell order.
func Faces() []Face {
	faces := make([]Face, 0, FaceCount)
	for _, c := range Cells() {
		faces = append(faces, c.Faces()...)
	}
	return faces
}

func newFace(c Cell, b math.Axis, positive bool) Face {
	f := Face{Cell: c, Axis: b, Positive: positive}

	free := make([]math.Axis, 0, 2)
	for _, a := range axes {
		if a != c.Axis && a != b {
			free = append(free, a)
		}
	}
	f.U, f.V = free[0], free[1]

	base := 0
	if c.Positive {
		base |= 1 << c.Axis
	}
	if positive {
		base |= 1 << b
	}
	u, v := 1<<f.U, 1<<f.V
	f.Corners = [4]int{base, base | u, base | u | v, base | v}

	// Orientation is the sign of the permutation (cell, face, u, v) times the
	// two fixed signs; negative orientations are reversed.
	orient := permutationSign(c.Axis, b, f.U, f.V)
	if !c.Positive {
		orient = -orient
	}
	if !positive {
		orient = -orient
	}
	if orient < 0 {
		f.Corners[1], f.Corners[3] = f.Corners[3], f.Corners[1]
	}
	return f
}

// permutationSign returns +1 for an even permutation of the axes, -1 for odd.
func permutationSign(p ...math.Axis) int {
	sign := 1
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				sign = -sign
			}
		}
	}
	return sign
}

// TexCoord returns the UV of a face corner: u from the U axis bit, v from V.
func (f Face) TexCoord(corner int) math.Vec2 {
	var uv math.Vec2
	if corner&(1<<f.U) != 0 {
		uv.X = 1
	}
	if corner&(1<<f.V) != 0 {
		uv.Y = 1
	}
	return uv
}

// Edges returns the 32 tesseract edges as corner pairs: the 12 inner cube
// edges, the 12 outer cube edges, then the 8 bridges between them.
func Edges() [][2]int {
	var inner, outer, bridge [][2]int
	for i := 0; i < CornerCount; i++ {
		for _, a := range axes {
			bit := 1 << a
			if i&bit != 0 {
				continue
			}
			e := [2]int{i, i | bit}
			switch {
			case a == math.AxisW:
				bridge = append(bridge, e)
			case i&(1<<math.AxisW) == 0:
				inner = append(inner, e)
			default:
				outer = append(outer, e)
			}
		}
	}
	edges := make([][2]int, 0, EdgeCount)
	edges = append(edges, inner...)
	edges = append(edges, outer...)
	return append(edges, bridge...)
}

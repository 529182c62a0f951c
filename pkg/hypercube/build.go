package hypercube

import (
	"fmt"

	"github.com/Faultbox/hyperview/pkg/math"
)

// Variant names one visual treatment of the tesseract.
type Variant int

const (
	SolidTextured Variant = iota // per-face vertices with UVs, triangles
	WireTextured                 // face outlines over the textured vertex set
	Solid                        // 16 shared corners, triangles
	WireOverlay                  // 32 edges over the shared corners, drawn on top of Solid
	Wireframe                    // 32 edges, drawn on its own
	Cube3D                       // the 3D cube at w = 0
)

// DefaultVariants are the five layered tesseract sub-meshes.
var DefaultVariants = []Variant{SolidTextured, WireTextured, Solid, WireOverlay, Wireframe}

var variantNames = map[Variant]string{
	SolidTextured: "solid-textured",
	WireTextured:  "wire-textured",
	Solid:         "solid",
	WireOverlay:   "wire-overlay",
	Wireframe:     "wireframe",
	Cube3D:        "cube3d",
}

// String returns the variant name used in config files and CLI flags.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant resolves a variant name.
func ParseVariant(name string) (Variant, error) {
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown mesh variant %q", name)
}

// cornerVertices returns the 16 shared corner vertices with position normals.
func cornerVertices(size float32) []Vertex {
	vertices := make([]Vertex, CornerCount)
	for i := range vertices {
		p := Corner(i, size)
		vertices[i] = Vertex{Position: p, Normal: p.Normalize()}
	}
	return vertices
}

// BuildSolid returns the triangulated boundary of the tesseract: 8 cells,
// 6 faces each, 2 triangles per face.
//
// Without texture coordinates the 16 corners are shared. With them every
// (cell, face) pair gets its own 4 vertices so each face maps the full
// unit square, giving 192 vertices.
func BuildSolid(size float32, withTexCoords bool) ([]Vertex, []uint16) {
	faces := Faces()
	indices := make([]uint16, 0, len(faces)*6)

	if !withTexCoords {
		for _, f := range faces {
			c := f.Corners
			indices = append(indices,
				uint16(c[0]), uint16(c[1]), uint16(c[2]),
				uint16(c[0]), uint16(c[2]), uint16(c[3]),
			)
		}
		return cornerVertices(size), indices
	}

	vertices := make([]Vertex, 0, len(faces)*4)
	for _, f := range faces {
		base := uint16(len(vertices))
		for _, corner := range f.Corners {
			p := Corner(corner, size)
			vertices = append(vertices, Vertex{
				Position: p,
				Normal:   p.Normalize(),
				TexCoord: f.TexCoord(corner),
			})
		}
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return vertices, indices
}

// BuildWireframe returns the 16 corners and the 32 edges as line indices.
func BuildWireframe(size float32) ([]Vertex, []uint16) {
	edges := Edges()
	indices := make([]uint16, 0, len(edges)*2)
	for _, e := range edges {
		indices = append(indices, uint16(e[0]), uint16(e[1]))
	}
	return cornerVertices(size), indices
}

// BuildFaceOutlines returns line indices outlining every face of the
// textured vertex set produced by BuildSolid(size, true).
func BuildFaceOutlines() []uint16 {
	indices := make([]uint16, 0, FaceCount*8)
	for f := 0; f < FaceCount; f++ {
		base := uint16(f * 4)
		indices = append(indices,
			base, base+1,
			base+1, base+2,
			base+2, base+3,
			base+3, base,
		)
	}
	return indices
}

// BuildCube returns a 3D cube at w = 0: 8 vertices, 12 outward-wound
// triangles. Normals are accumulated from the triangle normals and
// normalized once at the end.
func BuildCube(size float32) ([]Vertex, []uint16) {
	half := size / 2
	vertices := make([]Vertex, 8)
	for i := range vertices {
		for _, a := range axes[:3] {
			s := -half
			if i&(1<<a) != 0 {
				s = half
			}
			vertices[i].Position = vertices[i].Position.With(a, s)
		}
	}

	indices := make([]uint16, 0, 36)
	for _, a := range axes[:3] {
		var free []math.Axis
		for _, b := range axes[:3] {
			if b != a {
				free = append(free, b)
			}
		}
		u, v := 1<<free[0], 1<<free[1]
		for _, positive := range []bool{false, true} {
			base := 0
			if positive {
				base = 1 << a
			}
			q := [4]int{base, base | u, base | u | v, base | v}
			// e_u x e_v is +e_a for an even (a, u, v), so flip when that
			// disagrees with the outward side.
			if (permutationSign(a, free[0], free[1]) > 0) != positive {
				q[1], q[3] = q[3], q[1]
			}
			for _, tri := range [2][3]int{{q[0], q[1], q[2]}, {q[0], q[2], q[3]}} {
				indices = append(indices, uint16(tri[0]), uint16(tri[1]), uint16(tri[2]))
				accumulateNormal(vertices, tri)
			}
		}
	}

	for i := range vertices {
		vertices[i].Normal = vertices[i].Normal.Normalize()
	}
	return vertices, indices
}

func accumulateNormal(vertices []Vertex, tri [3]int) {
	p0 := vertices[tri[0]].Position
	e1 := vertices[tri[1]].Position.Sub(p0)
	e2 := vertices[tri[2]].Position.Sub(p0)
	n := cross3(e1, e2).Normalize()
	for _, i := range tri {
		vertices[i].Normal = vertices[i].Normal.Add(n)
	}
}

// cross3 is the 3D cross product of the xyz parts; w is zero.
func cross3(a, b math.Vec4) math.Vec4 {
	return math.Vec4{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Build assembles the requested variants into a Mesh, in the order given.
// With no variants DefaultVariants is used.
func Build(size float32, variants ...Variant) *Mesh {
	if len(variants) == 0 {
		variants = DefaultVariants
	}
	m := &Mesh{Size: size, SubMeshes: make([]SubMesh, 0, len(variants))}
	for _, v := range variants {
		sm := SubMesh{Variant: v, Layout: LayoutLit}
		switch v {
		case SolidTextured:
			sm.Topology, sm.Layout = Triangles, LayoutTextured
			sm.Vertices, sm.Indices = BuildSolid(size, true)
		case WireTextured:
			sm.Topology, sm.Layout = Lines, LayoutTextured
			sm.Vertices, _ = BuildSolid(size, true)
			sm.Indices = BuildFaceOutlines()
		case Solid:
			sm.Topology = Triangles
			sm.Vertices, sm.Indices = BuildSolid(size, false)
		case WireOverlay, Wireframe:
			sm.Topology = Lines
			sm.Vertices, sm.Indices = BuildWireframe(size)
		case Cube3D:
			sm.Topology = Triangles
			sm.Vertices, sm.Indices = BuildCube(size)
		default:
			continue
		}
		m.SubMeshes = append(m.SubMeshes, sm)
	}
	return m
}

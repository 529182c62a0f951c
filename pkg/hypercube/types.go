// Package hypercube builds vertex and index buffers describing a tesseract.
//
// The topology (16 corners, 32 edges, 8 cubical cells, 48 cell faces) is
// generated from corner bit patterns; no vertex list is written by hand.
package hypercube

import (
	"fmt"

	"github.com/Faultbox/hyperview/pkg/math"
)

// Vertex is a tesseract vertex with position, normal and texture coordinates.
type Vertex struct {
	Position math.Vec4
	Normal   math.Vec4
	TexCoord math.Vec2
}

// Topology is the primitive type of a sub-mesh.
type Topology int

const (
	Triangles Topology = iota
	Lines
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	}
	return fmt.Sprintf("topology(%d)", int(t))
}

// IndicesPerPrimitive returns 3 for triangles and 2 for lines.
func (t Topology) IndicesPerPrimitive() int {
	if t == Lines {
		return 2
	}
	return 3
}

// AttributeKind identifies which Vertex field an attribute reads.
type AttributeKind int

const (
	AttrPosition AttributeKind = iota
	AttrNormal
	AttrTexCoord
)

// Attribute is one float32 vertex attribute in a declared layout.
type Attribute struct {
	Name       string
	Kind       AttributeKind
	Components int
}

// Layout is the ordered attribute list of an interleaved vertex buffer.
// Attribute i is bound to shader location i.
type Layout []Attribute

var (
	// LayoutLit is position + normal.
	LayoutLit = Layout{
		{Name: "position", Kind: AttrPosition, Components: 4},
		{Name: "normal", Kind: AttrNormal, Components: 4},
	}
	// LayoutTextured is position + normal + UV.
	LayoutTextured = Layout{
		{Name: "position", Kind: AttrPosition, Components: 4},
		{Name: "normal", Kind: AttrNormal, Components: 4},
		{Name: "texcoord", Kind: AttrTexCoord, Components: 2},
	}
)

// FloatsPerVertex returns the number of float32 values per vertex.
func (l Layout) FloatsPerVertex() int {
	n := 0
	for _, a := range l {
		n += a.Components
	}
	return n
}

// Stride returns the vertex size in bytes.
func (l Layout) Stride() int {
	return l.FloatsPerVertex() * 4
}

// Offset returns the byte offset of attribute i within a vertex.
func (l Layout) Offset(i int) int {
	n := 0
	for _, a := range l[:i] {
		n += a.Components
	}
	return n * 4
}

// HasTexCoords reports whether the layout carries UVs.
func (l Layout) HasTexCoords() bool {
	for _, a := range l {
		if a.Kind == AttrTexCoord {
			return true
		}
	}
	return false
}

// SubMesh is one drawable (vertices, indices, topology) triple.
type SubMesh struct {
	Variant  Variant
	Topology Topology
	Layout   Layout
	Vertices []Vertex
	Indices  []uint16
}

// PrimitiveCount returns the number of triangles or lines.
func (s *SubMesh) PrimitiveCount() int {
	return len(s.Indices) / s.Topology.IndicesPerPrimitive()
}

// Validate checks index bounds and the index-count multiple for the topology.
func (s *SubMesh) Validate() error {
	if n := s.Topology.IndicesPerPrimitive(); len(s.Indices)%n != 0 {
		return fmt.Errorf("%s: %d indices is not a multiple of %d", s.Variant, len(s.Indices), n)
	}
	for i, idx := range s.Indices {
		if int(idx) >= len(s.Vertices) {
			return fmt.Errorf("%s: index %d at %d out of range (%d vertices)", s.Variant, idx, i, len(s.Vertices))
		}
	}
	return nil
}

// Interleave packs the vertices into a flat buffer following the layout order.
func (s *SubMesh) Interleave() []float32 {
	out := make([]float32, 0, len(s.Vertices)*s.Layout.FloatsPerVertex())
	for _, v := range s.Vertices {
		for _, a := range s.Layout {
			switch a.Kind {
			case AttrPosition:
				out = appendComponents(out, v.Position, a.Components)
			case AttrNormal:
				out = appendComponents(out, v.Normal, a.Components)
			case AttrTexCoord:
				uv := [2]float32{v.TexCoord.X, v.TexCoord.Y}
				out = append(out, uv[:a.Components]...)
			}
		}
	}
	return out
}

func appendComponents(out []float32, v math.Vec4, n int) []float32 {
	arr := v.Array()
	return append(out, arr[:n]...)
}

// Mesh is an immutable set of sub-meshes describing one tesseract.
type Mesh struct {
	Size      float32
	SubMeshes []SubMesh
}

// Get returns the sub-mesh for a variant.
func (m *Mesh) Get(v Variant) (*SubMesh, bool) {
	for i := range m.SubMeshes {
		if m.SubMeshes[i].Variant == v {
			return &m.SubMeshes[i], true
		}
	}
	return nil, false
}

// Validate checks every sub-mesh.
func (m *Mesh) Validate() error {
	for i := range m.SubMeshes {
		if err := m.SubMeshes[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SubMeshStats summarizes one sub-mesh.
type SubMeshStats struct {
	Variant    string `yaml:"variant"`
	Topology   string `yaml:"topology"`
	Vertices   int    `yaml:"vertices"`
	Indices    int    `yaml:"indices"`
	Primitives int    `yaml:"primitives"`
	Stride     int    `yaml:"stride_bytes"`
}

// Stats returns per sub-mesh counts in build order.
func (m *Mesh) Stats() []SubMeshStats {
	stats := make([]SubMeshStats, 0, len(m.SubMeshes))
	for i := range m.SubMeshes {
		s := &m.SubMeshes[i]
		stats = append(stats, SubMeshStats{
			Variant:    s.Variant.String(),
			Topology:   s.Topology.String(),
			Vertices:   len(s.Vertices),
			Indices:    len(s.Indices),
			Primitives: s.PrimitiveCount(),
			Stride:     s.Layout.Stride(),
		})
	}
	return stats
}

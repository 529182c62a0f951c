package hypercube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/hyperview/pkg/math"
)

const tol = 1e-6

func TestBuildSolidUntexturedCounts(t *testing.T) {
	vertices, indices := BuildSolid(2, false)
	assert.Len(t, vertices, 16)
	assert.Len(t, indices, 96*3)
	assert.Zero(t, len(indices)%3)
}

func TestBuildSolidTexturedCounts(t *testing.T) {
	vertices, indices := BuildSolid(2, true)
	// 4 vertices for each of the 8 cells x 6 faces.
	assert.Len(t, vertices, 4*CellCount*FacesPerCell)
	assert.Len(t, indices, 96*3)
}

func TestBuildWireframeCounts(t *testing.T) {
	vertices, indices := BuildWireframe(2)
	assert.Len(t, vertices, 16)
	assert.Len(t, indices, 64)
}

func TestIndexBounds(t *testing.T) {
	m := Build(1.5, append(DefaultVariants, Cube3D)...)
	require.Len(t, m.SubMeshes, 6)
	for _, sm := range m.SubMeshes {
		t.Run(sm.Variant.String(), func(t *testing.T) {
			require.NoError(t, sm.Validate())
			for _, idx := range sm.Indices {
				assert.Less(t, int(idx), len(sm.Vertices))
			}
			assert.Zero(t, len(sm.Indices)%sm.Topology.IndicesPerPrimitive())
		})
	}
	assert.NoError(t, m.Validate())
}

func TestValidateRejectsBadIndices(t *testing.T) {
	sm := SubMesh{Variant: Solid, Topology: Triangles, Vertices: make([]Vertex, 3), Indices: []uint16{0, 1, 3}}
	assert.Error(t, sm.Validate())

	sm = SubMesh{Variant: Wireframe, Topology: Lines, Vertices: make([]Vertex, 3), Indices: []uint16{0, 1, 2}}
	assert.Error(t, sm.Validate())
}

func TestGeometricExtremes(t *testing.T) {
	for _, variant := range DefaultVariants {
		m := Build(2, variant)
		for _, v := range m.SubMeshes[0].Vertices {
			for _, a := range []math.Axis{math.AxisX, math.AxisY, math.AxisZ, math.AxisW} {
				c := v.Position.Get(a)
				assert.Truef(t, c == 1 || c == -1, "%s: coordinate %v of %v not in {-1,1}", variant, a, v.Position)
			}
		}
	}
}

func TestCornersAreDistinct(t *testing.T) {
	seen := make(map[math.Vec4]bool)
	for i := 0; i < CornerCount; i++ {
		p := Corner(i, 2)
		assert.False(t, seen[p], "duplicate corner %v", p)
		seen[p] = true
	}
}

func TestNormalsAreNormalizedPositions(t *testing.T) {
	vertices, _ := BuildSolid(3, true)
	for _, v := range vertices {
		assert.True(t, v.Normal.ApproxEqual(v.Position.Normalize(), tol))
		assert.InDelta(t, 1, v.Normal.Length(), tol)
	}
}

func TestZeroSizeIsDegenerateButValid(t *testing.T) {
	m := Build(0)
	require.NoError(t, m.Validate())
	for _, sm := range m.SubMeshes {
		for _, v := range sm.Vertices {
			assert.Equal(t, math.Vec4{}, v.Normal)
		}
	}
}

func TestEdgesAreUnitHamming(t *testing.T) {
	edges := Edges()
	require.Len(t, edges, EdgeCount)

	seen := make(map[[2]int]bool)
	degree := make([]int, CornerCount)
	for _, e := range edges {
		diff := e[0] ^ e[1]
		assert.True(t, diff != 0 && diff&(diff-1) == 0, "edge %v differs in more than one axis", e)
		assert.False(t, seen[e], "duplicate edge %v", e)
		seen[e] = true
		degree[e[0]]++
		degree[e[1]]++
	}
	for i, d := range degree {
		assert.Equal(t, 4, d, "corner %d degree", i)
	}
}

func TestEdgeGrouping(t *testing.T) {
	edges := Edges()
	const w = 1 << math.AxisW
	for _, e := range edges[:12] {
		assert.Zero(t, e[0]&w, "inner edge %v", e)
		assert.Zero(t, e[1]&w, "inner edge %v", e)
	}
	for _, e := range edges[12:24] {
		assert.NotZero(t, e[0]&w, "outer edge %v", e)
		assert.NotZero(t, e[1]&w, "outer edge %v", e)
	}
	for _, e := range edges[24:] {
		assert.Equal(t, w, e[0]^e[1], "bridge edge %v", e)
	}
}

func TestCellKinds(t *testing.T) {
	cells := Cells()
	require.Len(t, cells, CellCount)
	assert.Equal(t, CellInner, cells[0].Kind())
	assert.Equal(t, CellOuter, cells[1].Kind())
	for _, c := range cells[2:] {
		assert.Equal(t, CellBridge, c.Kind())
	}
}

func TestFaceTable(t *testing.T) {
	faces := Faces()
	require.Len(t, faces, FaceCount)

	squares := make(map[[2]int]int)
	for _, f := range faces {
		distinct := make(map[int]bool)
		for _, c := range f.Corners {
			distinct[c] = true
			assert.True(t, f.Cell.Contains(c), "corner %d outside cell %+v", c, f.Cell)
		}
		assert.Len(t, distinct, 4)

		// All four corners agree on exactly the two fixed axes.
		and, or := f.Corners[0], f.Corners[0]
		for _, c := range f.Corners[1:] {
			and &= c
			or |= c
		}
		fixed := ^(and ^ or) & 0xF
		assert.Equal(t, 2, popcount(fixed), "face %+v", f)

		// Consecutive corners share an edge; the diagonal does not.
		for i := 0; i < 4; i++ {
			d := f.Corners[i] ^ f.Corners[(i+1)%4]
			assert.Equal(t, 1, popcount(d))
		}
		assert.Equal(t, 2, popcount(f.Corners[0]^f.Corners[2]))

		squares[[2]int{fixed, and}]++
	}

	// 24 distinct squares, each shared by two cells.
	assert.Len(t, squares, 24)
	for sq, n := range squares {
		assert.Equal(t, 2, n, "square %v", sq)
	}
}

// Each cell's six faces form a closed, consistently wound surface: every
// directed edge appears exactly once and is matched by its reverse.
func TestCellWindingConsistent(t *testing.T) {
	for _, c := range Cells() {
		directed := make(map[[2]int]int)
		for _, f := range c.Faces() {
			for i := 0; i < 4; i++ {
				directed[[2]int{f.Corners[i], f.Corners[(i+1)%4]}]++
			}
		}

		assert.Len(t, directed, 24, "cell %+v", c)
		for e, n := range directed {
			assert.Equal(t, 1, n, "cell %+v edge %v", c, e)
			assert.Equal(t, 1, directed[[2]int{e[1], e[0]}], "cell %+v edge %v has no reverse", c, e)
		}
	}
}

func TestSolidTrianglesFollowFaceWinding(t *testing.T) {
	_, indices := BuildSolid(1, false)
	faces := Faces()
	require.Len(t, indices, len(faces)*6)

	for i, f := range faces {
		q := f.Corners
		want := []uint16{
			uint16(q[0]), uint16(q[1]), uint16(q[2]),
			uint16(q[0]), uint16(q[2]), uint16(q[3]),
		}
		assert.Equal(t, want, indices[i*6:i*6+6], "face %d", i)
	}
}

func TestTexturedFacesCoverUnitSquare(t *testing.T) {
	vertices, _ := BuildSolid(2, true)
	for f := 0; f < FaceCount; f++ {
		uvs := make(map[math.Vec2]bool)
		for _, v := range vertices[f*4 : f*4+4] {
			uvs[v.TexCoord] = true
		}
		assert.Len(t, uvs, 4)
		for _, uv := range []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}} {
			assert.True(t, uvs[uv], "face %d missing uv %v", f, uv)
		}
	}
}

func TestFaceOutlines(t *testing.T) {
	indices := BuildFaceOutlines()
	assert.Len(t, indices, FaceCount*8)
	vertices, _ := BuildSolid(2, true)
	for i := 0; i < len(indices); i += 2 {
		a, b := vertices[indices[i]].Position, vertices[indices[i+1]].Position
		assert.InDelta(t, 2, a.Sub(b).Length(), tol, "outline segment is not a cube edge")
	}
}

func TestBuildCube(t *testing.T) {
	vertices, indices := BuildCube(2)
	require.Len(t, vertices, 8)
	require.Len(t, indices, 36)
	for i, v := range vertices {
		assert.Zero(t, v.Position.W)
		assert.InDelta(t, 1, v.Normal.Length(), tol)
		assert.Greater(t, v.Normal.Dot(v.Position), float32(0), "vertex %d normal points inward", i)
	}

	// Every triangle winds outward.
	for i := 0; i < len(indices); i += 3 {
		p0 := vertices[indices[i]].Position
		n := cross3(vertices[indices[i+1]].Position.Sub(p0), vertices[indices[i+2]].Position.Sub(p0))
		centroid := p0.Add(vertices[indices[i+1]].Position).Add(vertices[indices[i+2]].Position)
		assert.Greater(t, n.Dot(centroid), float32(0), "triangle %d winds inward", i/3)
	}
}

func TestInterleave(t *testing.T) {
	m := Build(2, SolidTextured, Solid)
	for _, sm := range m.SubMeshes {
		buf := sm.Interleave()
		stride := sm.Layout.FloatsPerVertex()
		require.Len(t, buf, len(sm.Vertices)*stride)
		v := sm.Vertices[5]
		assert.Equal(t, v.Position.Array(), [4]float32(buf[5*stride:5*stride+4]))
		assert.Equal(t, v.Normal.Array(), [4]float32(buf[5*stride+4:5*stride+8]))
		if sm.Layout.HasTexCoords() {
			assert.Equal(t, v.TexCoord.X, buf[5*stride+8])
			assert.Equal(t, v.TexCoord.Y, buf[5*stride+9])
		}
	}
}

func TestLayoutOffsets(t *testing.T) {
	assert.Equal(t, 40, LayoutTextured.Stride())
	assert.Equal(t, 0, LayoutTextured.Offset(0))
	assert.Equal(t, 16, LayoutTextured.Offset(1))
	assert.Equal(t, 32, LayoutTextured.Offset(2))
	assert.Equal(t, 32, LayoutLit.Stride())
	assert.False(t, LayoutLit.HasTexCoords())
}

func TestParseVariant(t *testing.T) {
	for _, v := range append(DefaultVariants, Cube3D) {
		got, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	_, err := ParseVariant("klein-bottle")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	stats := Build(1).Stats()
	require.Len(t, stats, len(DefaultVariants))
	assert.Equal(t, "solid-textured", stats[0].Variant)
	assert.Equal(t, 96, stats[0].Primitives)
	assert.Equal(t, 192, stats[1].Primitives)
	assert.Equal(t, 32, stats[4].Primitives)
	assert.Equal(t, "lines", stats[4].Topology)
}

func popcount(x int) int {
	n := 0
	for ; x != 0; x &= x - 1 {
		n++
	}
	return n
}

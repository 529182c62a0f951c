package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/hyperview/pkg/hypercube"
	"github.com/Faultbox/hyperview/pkg/math"
	"github.com/Faultbox/hyperview/pkg/transform4d"
)

// MeshReport is the YAML document printed by "hypertool mesh".
type MeshReport struct {
	Size      float32                  `yaml:"size"`
	Corners   int                      `yaml:"corners"`
	Edges     int                      `yaml:"edges"`
	Cells     int                      `yaml:"cells"`
	Faces     int                      `yaml:"faces"`
	SubMeshes []hypercube.SubMeshStats `yaml:"sub_meshes"`
	Dump      *SubMeshDump             `yaml:"dump,omitempty"`
}

// SubMeshDump lists the raw data of one sub-mesh.
type SubMeshDump struct {
	Variant  string      `yaml:"variant"`
	Vertices [][]float32 `yaml:"vertices"` // position xyzw, normal xyzw[, uv]
	Indices  []uint16    `yaml:"indices,flow"`
}

// RotateReport is the YAML document printed by "hypertool rotate".
type RotateReport struct {
	Angles      map[string]float32 `yaml:"angles"`
	Rotation    [4][4]float32      `yaml:"rotation"` // rows
	Determinant float32            `yaml:"determinant"`
}

// TransformReport is the YAML document printed by "hypertool transform".
type TransformReport struct {
	Instance    string        `yaml:"instance"`
	Gap         float32       `yaml:"gap"`
	Rotation    [4][4]float32 `yaml:"rotation"`
	Translation [4]float32    `yaml:"translation"`
	Scale       [4]float32    `yaml:"scale"`
	Points      [][4]float32  `yaml:"points,omitempty"`
}

func buildMeshReport(size float32, variants []hypercube.Variant, dump string) (*MeshReport, error) {
	m := hypercube.Build(size, variants...)
	if err := m.Validate(); err != nil {
		return nil, err
	}

	r := &MeshReport{
		Size:      size,
		Corners:   hypercube.CornerCount,
		Edges:     len(hypercube.Edges()),
		Cells:     len(hypercube.Cells()),
		Faces:     len(hypercube.Faces()),
		SubMeshes: m.Stats(),
	}

	if dump == "" {
		return r, nil
	}
	v, err := hypercube.ParseVariant(dump)
	if err != nil {
		return nil, err
	}
	sm, ok := m.Get(v)
	if !ok {
		return nil, fmt.Errorf("variant %s was not built", v)
	}

	d := &SubMeshDump{Variant: v.String(), Indices: sm.Indices}
	per := sm.Layout.FloatsPerVertex()
	data := sm.Interleave()
	for i := 0; i+per <= len(data); i += per {
		d.Vertices = append(d.Vertices, data[i:i+per])
	}
	r.Dump = d
	return r, nil
}

func buildRotateReport(angles transform4d.Angles) RotateReport {
	rot := transform4d.Compose(angles)
	r := RotateReport{
		Angles:      make(map[string]float32),
		Rotation:    rows(rot),
		Determinant: rot.Det(),
	}
	for p := transform4d.Plane(0); p < transform4d.PlaneCount; p++ {
		r.Angles[p.String()] = angles[p]
	}
	return r
}

func buildTransformReport(angles transform4d.Angles, center math.Vec4, scale float32, inst transform4d.Instance, points []math.Vec4) TransformReport {
	t := transform4d.DecomposeAffine(transform4d.Compose(angles), center, scale, inst)
	r := TransformReport{
		Instance:    inst.String(),
		Gap:         transform4d.Gap(center, scale),
		Rotation:    rows(t.Rotation),
		Translation: t.Translation.Array(),
		Scale:       t.Scale.Array(),
	}
	for _, p := range points {
		r.Points = append(r.Points, t.Apply(p).Array())
	}
	return r
}

func rows(m math.Mat4) [4][4]float32 {
	var out [4][4]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m.At(r, c)
		}
	}
	return out
}

// parseAngles reads "xy=0.5,xw=1" into per-plane values.
func parseAngles(s string) (transform4d.Angles, error) {
	var a transform4d.Angles
	if strings.TrimSpace(s) == "" {
		return a, nil
	}
	for _, part := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return a, fmt.Errorf("angle %q: expected plane=value", part)
		}
		p, err := transform4d.ParsePlane(strings.TrimSpace(name))
		if err != nil {
			return a, err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
		if err != nil {
			return a, fmt.Errorf("angle %q: %w", part, err)
		}
		a[p] = float32(f)
	}
	return a, nil
}

// parseVec4 reads "x,y,z,w".
func parseVec4(s string) (math.Vec4, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return math.Vec4{}, fmt.Errorf("vector %q: expected 4 components", s)
	}
	var c [4]float32
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return math.Vec4{}, fmt.Errorf("vector %q: %w", s, err)
		}
		c[i] = float32(f)
	}
	return math.Vec4{X: c[0], Y: c[1], Z: c[2], W: c[3]}, nil
}

// parseVariants reads a comma separated variant list. Empty means defaults.
func parseVariants(s string) ([]hypercube.Variant, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []hypercube.Variant
	for _, name := range strings.Split(s, ",") {
		v, err := hypercube.ParseVariant(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

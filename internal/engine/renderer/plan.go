package renderer

import (
	"github.com/Faultbox/hyperview/internal/config"
	"github.com/Faultbox/hyperview/internal/session"
	"github.com/Faultbox/hyperview/pkg/hypercube"
	"github.com/Faultbox/hyperview/pkg/transform4d"
)

// Pass is one draw call: a sub-mesh with its shading switches.
type Pass struct {
	Variant  hypercube.Variant
	Lines    bool
	Textured bool
	Lit      bool
	Color    [4]float32
	// OffsetFill pushes filled triangles back so coincident lines win the
	// depth test.
	OffsetFill bool
}

// Plan orders the passes for one instance: filled variants first, then lines.
// The wire overlay is drawn whenever the display asks for it, even if it was
// not listed among the variants.
func Plan(d session.Display, rc *config.RenderConfig, inst transform4d.Instance) []Pass {
	variants := d.Variants
	hasOverlay := false
	for _, v := range variants {
		if v == hypercube.WireOverlay {
			hasOverlay = true
		}
	}
	if d.Wireframe && !hasOverlay {
		variants = append(variants[:len(variants):len(variants)], hypercube.WireOverlay)
	}

	dim := float32(1)
	if inst != transform4d.InstanceCurrent {
		dim = rc.GhostBrightness
	}
	solid := rgba(rc.SolidColor, dim)
	wire := rgba(rc.WireColor, dim)

	var fills, lines []Pass
	for _, v := range variants {
		switch v {
		case hypercube.SolidTextured:
			fills = append(fills, Pass{Variant: v, Textured: d.Texturing, Lit: d.Lighting, Color: solid})
		case hypercube.Solid, hypercube.Cube3D:
			fills = append(fills, Pass{Variant: v, Lit: d.Lighting, Color: solid})
		case hypercube.WireTextured:
			lines = append(lines, Pass{Variant: v, Lines: true, Textured: d.Texturing, Color: solid})
		case hypercube.Wireframe:
			lines = append(lines, Pass{Variant: v, Lines: true, Color: wire})
		case hypercube.WireOverlay:
			if d.Wireframe {
				lines = append(lines, Pass{Variant: v, Lines: true, Color: wire})
			}
		}
	}

	if len(lines) > 0 {
		for i := range fills {
			fills[i].OffsetFill = true
		}
	}
	return append(fills, lines...)
}

// MeshVariants returns the variants to build and upload so every pass Plan
// can produce for d is backed by a sub-mesh.
func MeshVariants(d session.Display) []hypercube.Variant {
	out := append([]hypercube.Variant(nil), d.Variants...)
	for _, v := range out {
		if v == hypercube.WireOverlay {
			return out
		}
	}
	return append(out, hypercube.WireOverlay)
}

func rgba(c [3]float32, dim float32) [4]float32 {
	return [4]float32{c[0] * dim, c[1] * dim, c[2] * dim, 1}
}

package ui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/hyperview/internal/config"
	"github.com/Faultbox/hyperview/internal/session"
	"github.com/Faultbox/hyperview/pkg/math"
	"github.com/Faultbox/hyperview/pkg/transform4d"
)

const statusDuration = 3 * time.Second

// Requests are panel clicks the application has to carry out itself.
type Requests struct {
	LoadTexture bool
	ResetCamera bool
	Screenshot  bool
	SaveConfig  bool
	Quit        bool
}

// Stats is shown at the top of the panel.
type Stats struct {
	FPS       float32
	Vertices  int
	Triangles int
	Lines     int
	Texture   string
}

// Panel draws the session controls.
type Panel struct {
	Session *session.Session
	Render  *config.RenderConfig

	status     string
	statusTime time.Time
}

// NewPanel creates a panel editing s and rc in place.
func NewPanel(s *session.Session, rc *config.RenderConfig) *Panel {
	return &Panel{Session: s, Render: rc}
}

// SetStatus shows msg under the buttons for a few seconds.
func (p *Panel) SetStatus(msg string) {
	p.status = msg
	p.statusTime = time.Now()
}

// MenuBar draws the main menu bar.
func (p *Panel) MenuBar() Requests {
	var req Requests
	if imgui.BeginMainMenuBar() {
		if imgui.BeginMenu("File") {
			if imgui.MenuItemBool("Load Texture...") {
				req.LoadTexture = true
			}
			if imgui.MenuItemBool("Save Config") {
				req.SaveConfig = true
			}
			if imgui.MenuItemBool("Screenshot") {
				req.Screenshot = true
			}
			imgui.Separator()
			if imgui.MenuItemBool("Exit") {
				req.Quit = true
			}
			imgui.EndMenu()
		}
		imgui.EndMainMenuBar()
	}
	return req
}

// Draw renders the panel contents into the current window.
func (p *Panel) Draw(stats Stats) Requests {
	var req Requests
	s := p.Session

	imgui.Text(fmt.Sprintf("%.0f FPS", stats.FPS))
	imgui.TextDisabled(fmt.Sprintf("%d vertices, %d triangles, %d lines", stats.Vertices, stats.Triangles, stats.Lines))
	imgui.Separator()

	if imgui.CollapsingHeaderTreeNodeFlagsV("Rotation", imgui.TreeNodeFlagsDefaultOpen) {
		p.drawRotation()
	}
	if imgui.CollapsingHeaderTreeNodeFlagsV("Placement", imgui.TreeNodeFlagsDefaultOpen) {
		p.drawPlacement()
	}
	if imgui.CollapsingHeaderTreeNodeFlagsV("Display", imgui.TreeNodeFlagsDefaultOpen) {
		p.drawDisplay(stats, &req)
	}
	if imgui.CollapsingHeaderTreeNodeFlagsV("Lighting", 0) {
		p.drawLighting()
	}

	imgui.Spacing()
	imgui.Separator()
	if imgui.ButtonV("Reset", imgui.NewVec2(-1, 0)) {
		s.Reset()
	}
	if imgui.ButtonV("Restart", imgui.NewVec2(-1, 0)) {
		s.Restart()
	}
	if imgui.ButtonV("Reset Camera", imgui.NewVec2(-1, 0)) {
		req.ResetCamera = true
	}
	if imgui.ButtonV("Screenshot", imgui.NewVec2(-1, 0)) {
		req.Screenshot = true
	}
	if imgui.ButtonV("Save Config", imgui.NewVec2(-1, 0)) {
		req.SaveConfig = true
	}

	if p.status != "" && time.Since(p.statusTime) < statusDuration {
		imgui.Spacing()
		imgui.TextColored(imgui.NewVec4(0.5, 1.0, 0.5, 1.0), p.status)
	}

	return req
}

func (p *Panel) drawRotation() {
	s := p.Session

	label := "Pause"
	if s.Paused {
		label = "Resume"
	}
	if imgui.Button(label) {
		s.Apply(session.ActionTogglePause)
	}
	imgui.SameLine()
	imgui.SliderFloatV("Speed", &s.SpeedMultiplier, 0, 5, "%.1fx", imgui.SliderFlagsNone)

	limit := s.Limits.MaxAngularVelocity
	for pl := transform4d.Plane(0); pl < transform4d.PlaneCount; pl++ {
		v := s.State.Velocities[pl]
		name := pl.String()
		if pl == s.Selected {
			imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.2, 1.0), ">")
		} else {
			imgui.TextDisabled(" ")
		}
		imgui.SameLine()
		if imgui.SliderFloatV(name, &v, -limit, limit, "%.2f rad/s", imgui.SliderFlagsNone) {
			s.SetVelocity(pl, v)
			s.Selected = pl
		}
	}

	imgui.TextDisabled(fmt.Sprintf("angles: xy %.2f xz %.2f yz %.2f xw %.2f yw %.2f zw %.2f",
		s.State.Angles[transform4d.PlaneXY], s.State.Angles[transform4d.PlaneXZ], s.State.Angles[transform4d.PlaneYZ],
		s.State.Angles[transform4d.PlaneXW], s.State.Angles[transform4d.PlaneYW], s.State.Angles[transform4d.PlaneZW]))
}

func (p *Panel) drawPlacement() {
	s := p.Session
	l := s.Limits

	for _, a := range []math.Axis{math.AxisX, math.AxisY, math.AxisZ} {
		v := s.State.Center.Get(a)
		if imgui.SliderFloatV("center "+a.String(), &v, -l.MaxOffset, l.MaxOffset, "%.2f", imgui.SliderFlagsNone) {
			s.SetCenter(a, v)
		}
	}

	w := s.State.Center.W
	if imgui.SliderFloatV("center w", &w, l.MinCenterW, l.MaxCenterW, "%.2f", imgui.SliderFlagsNone) {
		s.SetCenter(math.AxisW, w)
	}
	imgui.SliderFloatV("w velocity", &s.State.WVelocity, -l.MaxAngularVelocity, l.MaxAngularVelocity, "%.2f/s", imgui.SliderFlagsNone)

	scale := s.State.Scale
	if imgui.SliderFloatV("scale", &scale, l.MinScale, l.MaxScale, "%.2f", imgui.SliderFlagsNone) {
		s.SetScale(scale)
	}
	imgui.TextDisabled(fmt.Sprintf("gap %.2f", transform4d.Gap(s.State.Center, s.State.Scale)))
}

func (p *Panel) drawDisplay(stats Stats, req *Requests) {
	d := &p.Session.Display
	rc := p.Render

	imgui.Checkbox("Wireframe", &d.Wireframe)
	imgui.SameLine()
	imgui.Checkbox("Ghosts", &d.Ghosts)
	imgui.Checkbox("Lighting", &d.Lighting)
	imgui.SameLine()
	imgui.Checkbox("Texture", &d.Texturing)

	ortho := rc.Projection == "orthographic"
	if imgui.Checkbox("Orthographic", &ortho) {
		rc.Projection = "perspective"
		if ortho {
			rc.Projection = "orthographic"
		}
	}
	divide := rc.ReduceW == "divide"
	if imgui.Checkbox("Divide by w", &divide) {
		rc.ReduceW = "drop"
		if divide {
			rc.ReduceW = "divide"
		}
	}
	if rc.Projection != "orthographic" {
		imgui.SliderFloatV("FOV", &rc.FOV, 10, 120, "%.0f deg", imgui.SliderFlagsNone)
	}

	imgui.ColorEdit3("Solid", &rc.SolidColor)
	imgui.ColorEdit3("Wire", &rc.WireColor)
	imgui.ColorEdit3("Background", &rc.Background)
	imgui.SliderFloatV("Ghost brightness", &rc.GhostBrightness, 0, 1, "%.2f", imgui.SliderFlagsNone)

	imgui.Spacing()
	if imgui.ButtonV("Load Texture...", imgui.NewVec2(-1, 0)) {
		req.LoadTexture = true
	}
	texture := stats.Texture
	if texture == "" {
		texture = "(checkerboard)"
	}
	imgui.TextDisabled(texture)
}

func (p *Panel) drawLighting() {
	rc := p.Render

	imgui.SliderFloatV("Ambient", &rc.Material.Ambient, 0, 1, "%.2f", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Diffuse", &rc.Material.Diffuse, 0, 1, "%.2f", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Specular", &rc.Material.Specular, 0, 1, "%.2f", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Shininess", &rc.Material.Shininess, 1, 128, "%.0f", imgui.SliderFlagsNone)
	imgui.ColorEdit3("Light color", &rc.Light.Color)
	for i, axis := range []string{"x", "y", "z"} {
		imgui.SliderFloatV("Light "+axis, &rc.Light.Position[i], -20, 20, "%.1f", imgui.SliderFlagsNone)
	}
}

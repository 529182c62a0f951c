package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/hyperview/internal/engine/camera"
)

// ViewportImage shows an offscreen render target and turns mouse input over
// it into camera motion.
type ViewportImage struct {
	lastMouse imgui.Vec2
}

// Size returns the space left in the current window, at least 1x1.
func (v *ViewportImage) Size() (int32, int32) {
	avail := imgui.ContentRegionAvail()
	return max(int32(avail.X), 1), max(int32(avail.Y), 1)
}

// Draw shows texture at the given size and applies drag and wheel to cam.
func (v *ViewportImage) Draw(texture uint32, width, height int32, cam *camera.OrbitCamera) {
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
	// GL textures are bottom-up.
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(float32(width), float32(height)),
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)

	if !imgui.IsItemHovered() {
		return
	}
	mouse := imgui.MousePos()
	if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
		cam.HandleDrag(mouse.X-v.lastMouse.X, mouse.Y-v.lastMouse.Y)
	}
	v.lastMouse = mouse

	if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
		cam.HandleZoom(wheel)
	}
}

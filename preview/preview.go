package preview

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/cricklet/speedscope/camera"
	"github.com/cricklet/speedscope/config"
	"github.com/cricklet/speedscope/geom"
	"github.com/cricklet/speedscope/gpu"
)

const (
	panelWidth  = 280
	sliderRange = 1000
)

// Preview draws a Scene through a pannable, zoomable camera and exposes
// the target rect as sliders.
type Preview struct {
	scene  Scene
	cam    *camera.Camera
	width  float32
	height float32
}

// New creates a preview from the loaded config. The raylib window must already be open.
func New(cfg *config.Config) *Preview {
	w := float64(cfg.Preview.Width)
	h := float64(cfg.Preview.Height)

	scene := Scene{
		Source: cfg.Derived.PreviewSource,
		Target: cfg.Derived.PreviewTarget,
	}

	// Center the camera on everything the scene draws.
	viewport := geom.V(w-panelWidth, h)
	b := scene.Bounds()
	cam := camera.New(viewport, b.Origin.Plus(b.Size.Times(0.5)))

	return &Preview{
		scene:  scene,
		cam:    cam,
		width:  float32(w),
		height: float32(h),
	}
}

// Scene returns the current scene.
func (p *Preview) Scene() Scene {
	return p.scene
}

// Update handles input: wheel zoom around the mouse, right-drag pan, R to reset.
func (p *Preview) Update() {
	mouse := gpu.FromVector2(rl.GetMousePosition())

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && float32(mouse.X) < p.width-panelWidth {
		factor := 1.1
		if wheel < 0 {
			factor = 1 / factor
		}
		p.cam.ZoomAt(mouse, factor)
	}

	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		// Dragging moves the world with the mouse.
		p.cam.Pan(gpu.FromVector2(rl.GetMouseDelta()).Times(-1))
	}

	if rl.IsKeyPressed(rl.KeyR) {
		p.cam.Reset()
	}

	p.scene.Cursor = p.cam.ScreenToWorld(mouse)
}

// Draw renders the scene and the control panel.
func (p *Preview) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.RayWhite)

	p.drawRect(p.scene.Source, rl.Blue)
	p.drawRect(p.scene.Target, rl.DarkGreen)
	p.drawMapped()

	cursor := gpu.Vector2(p.cam.WorldToScreen(p.scene.Cursor))
	closest := gpu.Vector2(p.cam.WorldToScreen(p.scene.Closest()))
	rl.DrawLineV(cursor, closest, rl.Gray)
	rl.DrawCircleV(closest, 4, rl.Red)

	mapped := gpu.Vector2(p.cam.WorldToScreen(p.scene.MappedCursor()))
	rl.DrawCircleV(mapped, 3, rl.Orange)

	p.drawPanel()
}

func (p *Preview) drawRect(r geom.Rect, col rl.Color) {
	screen := p.cam.RectToScreen(r)
	rl.DrawRectangleLinesEx(gpu.Rectangle(screen), 2, col)
}

// drawMapped outlines the source corners after BetweenRects.
func (p *Preview) drawMapped() {
	corners := p.scene.MappedSource()
	for i := range corners {
		a := gpu.Vector2(p.cam.WorldToScreen(corners[i]))
		b := gpu.Vector2(p.cam.WorldToScreen(corners[(i+1)%len(corners)]))
		rl.DrawLineV(a, b, rl.Maroon)
	}
}

func (p *Preview) drawPanel() {
	panelX := p.width - panelWidth
	rl.DrawRectangleRec(rl.Rectangle{X: panelX, Y: 0, Width: panelWidth, Height: p.height}, rl.Fade(rl.LightGray, 0.6))

	x := panelX + 10
	y := float32(10)

	rl.DrawText("Target rect", int32(x), int32(y), 20, rl.DarkGray)
	y += 30

	t := p.scene.Target
	origin := t.Origin
	size := t.Size

	origin.X = p.slider("x", &y, float32(origin.X), -sliderRange, sliderRange)
	origin.Y = p.slider("y", &y, float32(origin.Y), -sliderRange, sliderRange)
	size.X = p.slider("width", &y, float32(size.X), -sliderRange, sliderRange)
	size.Y = p.slider("height", &y, float32(size.Y), -sliderRange, sliderRange)

	p.scene.Target = t.WithOrigin(origin).WithSize(size)

	y += 10
	tr := p.scene.Transform()
	lines := []string{
		fmt.Sprintf("scale: %v", tr.Scale()),
		fmt.Sprintf("translation: %v", tr.Translation()),
		fmt.Sprintf("mat3: %.2f", gpu.Mat3(tr)),
		fmt.Sprintf("cursor: %v", p.scene.Cursor),
		fmt.Sprintf("closest: %v", p.scene.Closest()),
		fmt.Sprintf("zoom: %.2f", p.cam.Zoom),
	}
	for _, line := range lines {
		rl.DrawText(line, int32(x), int32(y), 12, rl.DarkGray)
		y += 18
	}
	rl.DrawText("wheel: zoom  right-drag: pan  R: reset", int32(x), int32(p.height-24), 10, rl.Gray)
}

// slider draws a labeled slider at *y, advances *y and returns the new value.
func (p *Preview) slider(label string, y *float32, value, minVal, maxVal float32) float64 {
	x := p.width - panelWidth + 10
	rl.DrawText(fmt.Sprintf("%s: %.1f", label, value), int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	value = gui.SliderBar(
		rl.Rectangle{X: x + 20, Y: *y, Width: panelWidth - 60, Height: 20},
		"", "",
		value, minVal, maxVal,
	)
	*y += 30
	return float64(value)
}

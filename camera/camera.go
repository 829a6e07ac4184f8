// Package camera provides a 2D camera for viewport control, built on geom transforms.
package camera

import "github.com/cricklet/speedscope/geom"

// Camera controls the viewport into world space.
type Camera struct {
	// Center is the camera center in world coordinates
	Center geom.Vec2

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float64

	// Viewport is the screen size in pixels
	Viewport geom.Vec2

	// Zoom constraints
	MinZoom, MaxZoom float64

	home geom.Vec2
}

// New creates a camera centered on center with 1:1 zoom.
func New(viewport, center geom.Vec2) *Camera {
	return &Camera{
		Center:   center,
		Zoom:     1.0,
		Viewport: viewport,
		MinZoom:  0.1,
		MaxZoom:  8.0,
		home:     center,
	}
}

// View returns the world-to-screen transform:
// move Center to the origin, zoom, then move the origin to the viewport center.
func (c *Camera) View() geom.AffineTransform {
	return geom.TranslationTransform(c.Viewport.Times(0.5)).
		Times(geom.ScaleTransform(geom.V(c.Zoom, c.Zoom))).
		Times(geom.TranslationTransform(c.Center.Times(-1)))
}

// Inverse returns the screen-to-world transform.
func (c *Camera) Inverse() geom.AffineTransform {
	inv := 1 / c.Zoom
	return geom.TranslationTransform(c.Center).
		Times(geom.ScaleTransform(geom.V(inv, inv))).
		Times(geom.TranslationTransform(c.Viewport.Times(-0.5)))
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(p geom.Vec2) geom.Vec2 {
	return c.View().TransformPosition(p)
}

// ScreenToWorld converts a screen position to world coordinates.
func (c *Camera) ScreenToWorld(p geom.Vec2) geom.Vec2 {
	return c.Inverse().TransformPosition(p)
}

// RectToScreen maps a world rect to screen space.
func (c *Camera) RectToScreen(r geom.Rect) geom.Rect {
	v := c.View()
	return geom.NewRect(v.TransformPosition(r.Origin), v.TransformVector(r.Size))
}

// VisibleBounds returns the world-space rect covered by the viewport.
func (c *Camera) VisibleBounds() geom.Rect {
	inv := c.Inverse()
	return geom.NewRect(inv.TransformPosition(geom.Vec2{}), inv.TransformVector(c.Viewport))
}

// IsVisible reports whether a world point is inside the viewport, with a margin in world units.
func (c *Camera) IsVisible(p geom.Vec2, margin float64) bool {
	b := c.VisibleBounds()
	return p.X >= b.Left()-margin && p.X <= b.Right()+margin &&
		p.Y >= b.Top()-margin && p.Y <= b.Bottom()+margin
}

// Resize updates the viewport dimensions.
func (c *Camera) Resize(viewport geom.Vec2) {
	c.Viewport = viewport
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(delta geom.Vec2) {
	c.Center = c.Center.Plus(c.Inverse().TransformVector(delta))
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = geom.Clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// ZoomAt zooms by factor while keeping the world point under screen
// position anchor fixed.
func (c *Camera) ZoomAt(anchor geom.Vec2, factor float64) {
	before := c.ScreenToWorld(anchor)
	c.ZoomBy(factor)
	after := c.ScreenToWorld(anchor)
	c.Center = c.Center.Plus(before.Minus(after))
}

// Reset returns the camera to its initial center and zoom.
func (c *Camera) Reset() {
	c.Center = c.home
	c.Zoom = 1.0
}

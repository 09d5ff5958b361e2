package render

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/lixenwraith/gravwell/parameter"
	"gonum.org/v1/gonum/spatial/r2"
)

// Camera maps world coordinates to terminal cells
// Pan and zoom have targets set by input; the displayed values follow them on critically damped springs
// column = x*zoom + pan.X, row = y*zoom/CellAspect + pan.Y
type Camera struct {
	zoom    float64
	pan     r2.Vec
	zoomVel float64
	panVel  r2.Vec

	targetZoom float64
	targetPan  r2.Vec

	spring harmonica.Spring
}

// NewCamera creates a camera at the default zoom with no pan
func NewCamera() *Camera {
	return &Camera{
		zoom:       parameter.CameraDefaultZoom,
		targetZoom: parameter.CameraDefaultZoom,
		spring:     harmonica.NewSpring(harmonica.FPS(parameter.CameraFPS), parameter.CameraSpringFrequency, parameter.CameraSpringDamping),
	}
}

// Zoom returns the displayed zoom
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// WorldToScreen projects a world point to fractional cell coordinates
func (c *Camera) WorldToScreen(p r2.Vec) (col, row float64) {
	return p.X*c.zoom + c.pan.X, p.Y*c.zoom/parameter.CellAspect + c.pan.Y
}

// Cell projects a world point to the cell containing it
func (c *Camera) Cell(p r2.Vec) (x, y int) {
	col, row := c.WorldToScreen(p)
	return int(math.Floor(col)), int(math.Floor(row))
}

// ScreenToWorld returns the world point at the centre of a cell as currently displayed
func (c *Camera) ScreenToWorld(x, y int) r2.Vec {
	return unproject(float64(x)+0.5, float64(y)+0.5, c.zoom, c.pan)
}

func unproject(col, row, zoom float64, pan r2.Vec) r2.Vec {
	return r2.Vec{
		X: (col - pan.X) / zoom,
		Y: (row - pan.Y) * parameter.CellAspect / zoom,
	}
}

// ZoomAt scales the target zoom by notches wheel steps, keeping the world point under the cell fixed
// One notch changes zoom by CameraZoomStep of its current value
func (c *Camera) ZoomAt(x, y int, notches float64) {
	col, row := float64(x)+0.5, float64(y)+0.5
	anchor := unproject(col, row, c.targetZoom, c.targetPan)

	z := c.targetZoom + notches*parameter.CameraZoomStep*c.targetZoom
	z = math.Max(parameter.CameraMinZoom, math.Min(parameter.CameraMaxZoom, z))

	c.targetZoom = z
	c.targetPan = r2.Vec{
		X: col - anchor.X*z,
		Y: row - anchor.Y*z/parameter.CellAspect,
	}
}

// PanBy moves the target pan by a cell offset
func (c *Camera) PanBy(dx, dy float64) {
	c.targetPan = r2.Add(c.targetPan, r2.Vec{X: dx, Y: dy})
}

// CenterOn resets zoom to fit the world rectangle [min,max] into a width x height cell view
func (c *Camera) CenterOn(min, max r2.Vec, width, height int) {
	size := r2.Sub(max, min)
	z := parameter.CameraDefaultZoom
	if size.X > 0 && size.Y > 0 && width > 0 && height > 0 {
		z = math.Min(float64(width)/size.X, float64(height)*parameter.CellAspect/size.Y)
	}
	z = math.Max(parameter.CameraMinZoom, math.Min(parameter.CameraMaxZoom, z))

	mid := r2.Scale(0.5, r2.Add(min, max))
	c.targetZoom = z
	c.targetPan = r2.Vec{
		X: float64(width)/2 - mid.X*z,
		Y: float64(height)/2 - mid.Y*z/parameter.CellAspect,
	}
}

// Update advances the displayed zoom and pan one frame toward their targets
func (c *Camera) Update() {
	c.zoom, c.zoomVel = c.spring.Update(c.zoom, c.zoomVel, c.targetZoom)
	c.pan.X, c.panVel.X = c.spring.Update(c.pan.X, c.panVel.X, c.targetPan.X)
	c.pan.Y, c.panVel.Y = c.spring.Update(c.pan.Y, c.panVel.Y, c.targetPan.Y)

	// A non-positive zoom would invert the projection
	if c.zoom < parameter.CameraMinZoom {
		c.zoom = parameter.CameraMinZoom
	}
}

// Snap jumps the displayed view to the target
func (c *Camera) Snap() {
	c.zoom, c.pan = c.targetZoom, c.targetPan
	c.zoomVel, c.panVel = 0, r2.Vec{}
}

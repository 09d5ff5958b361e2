package render

import (
	"testing"

	"github.com/lixenwraith/gravwell/parameter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera()
	c.targetZoom = 0.5
	c.targetPan = r2.Vec{X: 3, Y: -2}
	c.Snap()

	for _, p := range []r2.Vec{{X: 0, Y: 0}, {X: 100, Y: 40}, {X: -37, Y: 251}} {
		x, y := c.Cell(p)
		back := c.ScreenToWorld(x, y)
		// One cell spans 1/zoom world units wide and CellAspect/zoom tall
		assert.InDelta(t, p.X, back.X, 1/c.Zoom(), "%v", p)
		assert.InDelta(t, p.Y, back.Y, parameter.CellAspect/c.Zoom(), "%v", p)
	}
}

func TestCameraZoomKeepsAnchor(t *testing.T) {
	c := NewCamera()
	c.Snap()
	before := unproject(10.5, 5.5, c.targetZoom, c.targetPan)

	c.ZoomAt(10, 5, 3)
	assert.InDelta(t, parameter.CameraDefaultZoom*(1+3*parameter.CameraZoomStep), c.targetZoom, 1e-12)

	after := unproject(10.5, 5.5, c.targetZoom, c.targetPan)
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
}

func TestCameraZoomClamps(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 1000; i++ {
		c.ZoomAt(0, 0, -5)
	}
	assert.Equal(t, parameter.CameraMinZoom, c.targetZoom)

	for i := 0; i < 1000; i++ {
		c.ZoomAt(0, 0, 5)
	}
	assert.Equal(t, parameter.CameraMaxZoom, c.targetZoom)
}

func TestCameraSpringConverges(t *testing.T) {
	c := NewCamera()
	c.PanBy(20, -10)
	c.ZoomAt(0, 0, 4)

	for i := 0; i < 2*parameter.CameraFPS; i++ {
		c.Update()
	}
	assert.InDelta(t, c.targetZoom, c.Zoom(), 1e-3)
	assert.InDelta(t, c.targetPan.X, c.pan.X, 1e-2)
	assert.InDelta(t, c.targetPan.Y, c.pan.Y, 1e-2)
}

func TestCameraCenterOn(t *testing.T) {
	c := NewCamera()
	c.CenterOn(r2.Vec{}, r2.Vec{X: 800, Y: 600}, 80, 24)
	c.Snap()

	x, y := c.Cell(r2.Vec{X: 400, Y: 300})
	assert.Equal(t, 40, x)
	assert.Equal(t, 12, y)

	// Both corners stay inside the view
	x0, y0 := c.Cell(r2.Vec{})
	x1, y1 := c.Cell(r2.Vec{X: 799, Y: 599})
	require.GreaterOrEqual(t, x0, 0)
	require.GreaterOrEqual(t, y0, 0)
	assert.Less(t, x1, 80)
	assert.Less(t, y1, 24)
}

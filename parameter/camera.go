package parameter

// Camera
const (
	// CameraZoomStep is the fraction of current zoom applied per wheel notch
	CameraZoomStep = 1.0 / 20.0

	// CameraMinZoom and CameraMaxZoom clamp the zoom target
	CameraMinZoom = 0.01
	CameraMaxZoom = 50.0

	// CameraDefaultZoom maps world units to terminal columns at startup
	CameraDefaultZoom = 0.1

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0

	// CameraPanKeyStep is the pan distance in cells for arrow keys
	CameraPanKeyStep = 4
)

// Camera spring smoothing
const (
	// CameraSpringFrequency is the angular frequency of the zoom/pan springs
	CameraSpringFrequency = 8.0

	// CameraSpringDamping of 1 is critically damped, no overshoot
	CameraSpringDamping = 1.0

	// CameraFPS matches FrameUpdateInterval
	CameraFPS = 60
)

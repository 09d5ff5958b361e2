package parameter

// Force law and integrator
const (
	// ForceEpsilon keeps the force law finite when a particle sits exactly on an attractor
	ForceEpsilon = 1e-9

	// VelocityDamping is the multiplicative drag applied to velocity every sub-step
	VelocityDamping = 0.999999

	// DefaultResolution is the number of sub-steps per nominal time unit
	DefaultResolution = 10
)

// Orbit insertion
const (
	// OrbitMinRadiusSq guards orbit insertion against a particle placed on its attractor
	OrbitMinRadiusSq = 1e-6
)

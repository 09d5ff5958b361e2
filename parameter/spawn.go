package parameter

// Spawned bodies
const (
	// SpawnMass is the mass of a particle placed by the user or a field without explicit mass
	SpawnMass = 100.0

	// AttractorMass is the mass of an attractor added by the user
	AttractorMass = 1000.0

	// MaxAttractors bounds the tag space; tag 0 is reserved for unassigned particles
	MaxAttractors = 255
)

// Default scenario
const (
	// DefaultFieldSpacing is the grid pitch of the default particle field
	DefaultFieldSpacing = 20.0

	// DefaultFieldWidth and DefaultFieldHeight cover an 800x600 surface
	DefaultFieldWidth  = 800.0
	DefaultFieldHeight = 600.0

	// MaxSeededParticles caps the particles a single field or ring may generate
	MaxSeededParticles = 1 << 22
)

// Procedural seeding
const (
	// PerlinAlpha and PerlinBeta shape the noise used to jitter seeded fields
	PerlinAlpha = 2.0
	PerlinBeta  = 2.0
	// PerlinOctaves is the number of noise octaves
	PerlinOctaves = 3

	// PerlinScale maps world units to noise space
	PerlinScale = 0.01
)

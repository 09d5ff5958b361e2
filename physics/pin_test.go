package physics

import (
	"testing"

	"github.com/lixenwraith/gravwell/core"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestPinAndRelease(t *testing.T) {
	a := core.NewAttractor(r2.Vec{X: 100, Y: 100}, 1000, 7)
	p := core.NewParticle(r2.Vec{X: 1, Y: 2}, r2.Vec{X: 3, Y: 4}, 1, core.TagNone)
	p.Position = r2.Vec{X: 99, Y: 99}

	Pin(&p, &a)
	assert.True(t, p.Pinned)
	assert.Equal(t, p.Spawn, p.Position)
	assert.Equal(t, r2.Vec{}, p.Velocity)
	assert.Equal(t, core.Tag(7), p.Tag)

	Release(&p)
	assert.False(t, p.Pinned)
	assert.Equal(t, r2.Vec{X: 1, Y: 2}, p.Position)
	assert.Equal(t, r2.Vec{}, p.Velocity)
	assert.Equal(t, core.Tag(7), p.Tag, "tag survives release")
}

package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestProcessMouseScrollClampsZoom(t *testing.T) {
	offsets := []float32{0, 1, -1, 10, -10, 44, 45, 46, -1000, 1000, 0.5, -0.25}

	c := Default()
	for _, off := range offsets {
		c.ProcessMouseScroll(off)
		assert.GreaterOrEqual(t, c.Zoom(), MinZoom, "offset %v", off)
		assert.LessOrEqual(t, c.Zoom(), MaxZoom, "offset %v", off)
	}

	c = Default()
	c.ProcessMouseScroll(5)
	assert.Equal(t, float32(40), c.Zoom())
	c.ProcessMouseScroll(100)
	assert.Equal(t, MinZoom, c.Zoom())
	c.ProcessMouseScroll(-100)
	assert.Equal(t, MaxZoom, c.Zoom())
}

func TestProcessMouseMovementConstrainsPitch(t *testing.T) {
	c := Default()
	for _, off := range []float32{100, 5000, -300, -7000, 12, 889, -889} {
		c.ProcessMouseMovement(0, off, true)
		assert.GreaterOrEqual(t, c.Pitch(), -MaxPitch, "offset %v", off)
		assert.LessOrEqual(t, c.Pitch(), MaxPitch, "offset %v", off)
	}

	c.ProcessMouseMovement(0, 10000, true)
	assert.Equal(t, MaxPitch, c.Pitch())
}

func TestProcessMouseMovementUnconstrained(t *testing.T) {
	c := Default()
	c.ProcessMouseMovement(0, 1000, false)
	assert.InDelta(t, 100, c.Pitch(), tolerance)
}

func TestProcessMouseMovementScalesBySensitivity(t *testing.T) {
	c := Default(WithMouseSensitivity(0.5))
	c.ProcessMouseMovement(20, -10, true)

	assert.InDelta(t, DefaultYaw+10, c.Yaw(), tolerance)
	assert.InDelta(t, DefaultPitch-5, c.Pitch(), tolerance)
}

func TestEulerLookRetargetsAlongFront(t *testing.T) {
	c := Default()

	// zero offsets keep the default view: yaw -90 looks down -Z
	c.ProcessMouseMovement(0, 0, true)
	assertVec3(t, mgl32.Vec3{0, 0, 0}, c.Target())
	assertVec3(t, mgl32.Vec3{0, 1, 0}, c.Up())

	// turning 90 degrees right looks down +X at the same distance
	c.ProcessMouseMovement(900, 0, true)
	assertVec3(t, mgl32.Vec3{0, 0, 6}, c.Position())
	assertVec3(t, mgl32.Vec3{6, 0, 6}, c.Target())
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Front())

	up := c.Up()
	assert.InDelta(t, 0, up.Dot(c.Front()), tolerance)
	assert.InDelta(t, 1, up.Len(), tolerance)
}

func TestEulerLookPitchTiltsUp(t *testing.T) {
	c := Default()
	c.ProcessMouseMovement(0, 450, true) // +45 degrees

	front := c.Front()
	assert.InDelta(t, 0.70710678, front.Y(), tolerance)
	assert.Greater(t, c.Target().Y(), float32(0))
	assert.InDelta(t, 6, c.Target().Sub(c.Position()).Len(), 1e-4, "retarget keeps the orbit radius")
}

func TestOrbitLookOnlyAccumulatesAngles(t *testing.T) {
	c := New(mgl32.Vec3{0, 3, 4}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch, WithLook(LookOrbit))
	before := c.State()

	c.ProcessMouseMovement(50, 30, true)

	assert.Equal(t, before.Position, c.Position())
	assert.Equal(t, before.Target, c.Target())
	assertVec3(t, before.Up, c.Up())
	assert.InDelta(t, DefaultYaw+5, c.Yaw(), tolerance)
	assert.InDelta(t, 3, c.Pitch(), tolerance)
}

func TestOrbitLookRederivesUpAfterRotation(t *testing.T) {
	c := Default(WithLook(LookOrbit), WithMovementSpeed(0.5))
	c.RotateLeft(0)
	c.ProcessMouseMovement(0, 0, true)

	axis := c.Position().Sub(c.Target())
	assert.InDelta(t, 0, c.Up().Dot(axis), 1e-4)
	assert.InDelta(t, 1, c.Up().Len(), tolerance)
}

func TestMouseLookStartsFromCurrentView(t *testing.T) {
	c := Default(WithMovementSpeed(0.1))
	for i := 0; i < 3; i++ {
		c.RotateUp(0)
	}
	c.RotateLeft(0)
	c.RotateLeft(0)
	target := c.Target()

	c.ProcessMouseMovement(0, 0, true)

	assert.True(t, c.Target().ApproxEqualThreshold(target, 1e-4), "target moved to %v", c.Target())
	assert.InDelta(t, 6, c.Target().Sub(c.Position()).Len(), 1e-4)

	dir := target.Sub(c.Position()).Normalize()
	assert.True(t, c.Front().ApproxEqualThreshold(dir, 1e-4), "front %v, want %v", c.Front(), dir)
}

func TestMouseLookAfterMoveForward(t *testing.T) {
	c := New(mgl32.Vec3{2, 1, 5}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch, WithMovementSpeed(0.5))
	c.MoveForward(0)
	target := c.Target()

	c.ProcessMouseMovement(0, 0, true)
	assert.True(t, c.Target().ApproxEqualThreshold(target, 1e-4), "target moved to %v", c.Target())
}

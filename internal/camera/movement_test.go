package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestMoveForwardPreservesOrbitAxis(t *testing.T) {
	c := New(mgl32.Vec3{1, 2, 6}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch, WithMovementSpeed(0.05))
	axis := c.Position().Sub(c.Target())

	prevPos, prevTarget := c.Position(), c.Target()
	var firstStep mgl32.Vec3
	for i := 0; i < 100; i++ {
		c.MoveForward(0.016)

		stepPos := c.Position().Sub(prevPos)
		stepTarget := c.Target().Sub(prevTarget)
		assertVec3(t, stepPos, stepTarget, "eye and target must move together")
		if i == 0 {
			firstStep = stepPos
		} else {
			assertVec3(t, firstStep, stepPos, "steps must be equal increments")
		}
		prevPos, prevTarget = c.Position(), c.Target()
	}

	got := c.Position().Sub(c.Target())
	for i := range axis {
		assert.InDelta(t, axis[i], got[i], 1e-4)
	}
}

func TestMoveForwardMatchesOrbitFormula(t *testing.T) {
	const s = float32(0.1)
	c := New(mgl32.Vec3{2, 1, 4}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch, WithMovementSpeed(s))

	ax := math32.Atan(2.0 / 4.0)
	ay := math32.Atan(1.0 / 4.0)
	want := mgl32.Vec3{
		2 - s*math32.Sin(ax),
		1 - s*math32.Sin(ay),
		4 - s*math32.Cos(ax)*math32.Cos(ay),
	}

	c.MoveForward(1)
	assertVec3(t, want, c.Position())
	assertVec3(t, want.Sub(mgl32.Vec3{2, 1, 4}), c.Target())
}

func TestMoveForwardBehindTargetFlipsDirection(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, -6}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch, WithMovementSpeed(1))

	c.MoveForward(0)
	// still heading toward the origin, now along +Z
	assertVec3(t, mgl32.Vec3{0, 0, -5}, c.Position())
	assertVec3(t, mgl32.Vec3{0, 0, 1}, c.Target())
}

func TestMoveBackwardUndoesMoveForward(t *testing.T) {
	c := New(mgl32.Vec3{1, -2, 5}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch, WithMovementSpeed(0.2))
	start := c.State()

	c.MoveForward(0)
	c.MoveBackward(0)

	assertVec3(t, start.Position, c.Position())
	assertVec3(t, start.Target, c.Target())
}

func TestStrafeFormulas(t *testing.T) {
	const s = float32(0.5)
	a := math32.Atan(3.0 / 4.0) // 3-4-5 triangle: sin 0.6, cos 0.8

	tests := []struct {
		name  string
		start mgl32.Vec3
		move  func(*Camera, float32)
		want  mgl32.Vec3
	}{
		{"StrafeUp", mgl32.Vec3{0, 3, 4}, (*Camera).StrafeUp, mgl32.Vec3{0, 3 + s*math32.Cos(a), 4 - s*math32.Sin(a)}},
		{"StrafeDown", mgl32.Vec3{0, 3, 4}, (*Camera).StrafeDown, mgl32.Vec3{0, 3 - s*math32.Cos(a), 4 + s*math32.Sin(a)}},
		{"StrafeLeft", mgl32.Vec3{3, 0, 4}, (*Camera).StrafeLeft, mgl32.Vec3{3 + s*math32.Cos(a), 0, 4 - s*math32.Sin(a)}},
		{"StrafeRight", mgl32.Vec3{3, 0, 4}, (*Camera).StrafeRight, mgl32.Vec3{3 - s*math32.Cos(a), 0, 4 + s*math32.Sin(a)}},
		{"StrafeUpBehind", mgl32.Vec3{0, 3, -4}, (*Camera).StrafeUp, mgl32.Vec3{0, 3 - s*0.8, -4 - s*0.6}},
		{"StrafeLeftBehind", mgl32.Vec3{3, 0, -4}, (*Camera).StrafeLeft, mgl32.Vec3{3 - s*0.8, 0, -4 - s*0.6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.start, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch, WithMovementSpeed(s))
			axis := c.Position().Sub(c.Target())

			tt.move(c, 0.016)

			assertVec3(t, tt.want, c.Position())
			assertVec3(t, axis, c.Position().Sub(c.Target()))
		})
	}
}

func TestOrbitXZKeepsHeight(t *testing.T) {
	c := New(mgl32.Vec3{0, 3, 4}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch,
		WithMovementSpeed(0.5), WithNavigation(OrbitXZ))

	c.MoveForward(0)
	assertVec3(t, mgl32.Vec3{0, 3, 3.5}, c.Position())

	c.MoveBackward(0)
	assertVec3(t, mgl32.Vec3{0, 3, 4}, c.Position())
}

func TestDeltaScaling(t *testing.T) {
	fixed := Default(WithMovementSpeed(1))
	fixed.MoveForward(0.5)
	assertVec3(t, mgl32.Vec3{0, 0, 5}, fixed.Position(), "delta is ignored by default")

	scaled := Default(WithMovementSpeed(1), WithDeltaScaling(true))
	scaled.MoveForward(0.5)
	assertVec3(t, mgl32.Vec3{0, 0, 5.5}, scaled.Position())
}

func TestMovementAtZSingularityStaysFinite(t *testing.T) {
	moves := map[string]func(*Camera, float32){
		"MoveForward":  (*Camera).MoveForward,
		"MoveBackward": (*Camera).MoveBackward,
		"StrafeLeft":   (*Camera).StrafeLeft,
		"StrafeRight":  (*Camera).StrafeRight,
		"StrafeUp":     (*Camera).StrafeUp,
		"StrafeDown":   (*Camera).StrafeDown,
	}

	for name, move := range moves {
		t.Run(name, func(t *testing.T) {
			// Position.z == Target.z, with and without X/Y offsets
			for _, start := range []mgl32.Vec3{{0, 0, 0}, {3, 2, 0}} {
				c := New(start, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch, WithMovementSpeed(0.1))
				for i := 0; i < 10; i++ {
					move(c, 0.016)
				}
				assertFinite(t, c.Position(), "position")
				assertFinite(t, c.Target(), "target")
			}
		})
	}
}

func TestSingularityUsesZeroAngle(t *testing.T) {
	c := New(mgl32.Vec3{3, 2, 0}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch, WithMovementSpeed(1))

	// zero angle on the >= 0 side walks straight down -Z
	c.MoveForward(0)
	assertVec3(t, mgl32.Vec3{3, 2, -1}, c.Position())
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Target())
}

func TestProcessKeyboardDispatches(t *testing.T) {
	tests := []struct {
		m    Movement
		move func(*Camera, float32)
	}{
		{Forward, (*Camera).MoveForward},
		{Backward, (*Camera).MoveBackward},
		{Left, (*Camera).StrafeLeft},
		{Right, (*Camera).StrafeRight},
		{Up, (*Camera).StrafeUp},
		{Down, (*Camera).StrafeDown},
		{RotateUp, (*Camera).RotateUp},
		{RotateDown, (*Camera).RotateDown},
		{RotateLeft, (*Camera).RotateLeft},
		{RotateRight, (*Camera).RotateRight},
	}

	for _, tt := range tests {
		viaKeyboard := New(mgl32.Vec3{1, 2, 5}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch, WithMovementSpeed(0.3))
		direct := New(mgl32.Vec3{1, 2, 5}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch, WithMovementSpeed(0.3))

		viaKeyboard.ProcessKeyboard(tt.m, 0.016)
		tt.move(direct, 0.016)

		assert.Equal(t, direct.State(), viaKeyboard.State(), "movement %d", tt.m)
	}

	c := Default()
	before := c.State()
	c.ProcessKeyboard(Movement(99), 1)
	assert.Equal(t, before, c.State())
}

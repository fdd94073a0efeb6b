package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a discrete keyboard-style camera command, independent of any
// window system's key codes.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
	RotateUp
	RotateDown
	RotateLeft
	RotateRight
)

// ProcessKeyboard dispatches a movement command. Unknown commands are ignored.
func (c *Camera) ProcessKeyboard(m Movement, deltaTime float32) {
	switch m {
	case Forward:
		c.MoveForward(deltaTime)
	case Backward:
		c.MoveBackward(deltaTime)
	case Left:
		c.StrafeLeft(deltaTime)
	case Right:
		c.StrafeRight(deltaTime)
	case Up:
		c.StrafeUp(deltaTime)
	case Down:
		c.StrafeDown(deltaTime)
	case RotateUp:
		c.RotateUp(deltaTime)
	case RotateDown:
		c.RotateDown(deltaTime)
	case RotateLeft:
		c.RotateLeft(deltaTime)
	case RotateRight:
		c.RotateRight(deltaTime)
	}
}

// MoveForward walks the eye and target together toward the target side.
func (c *Camera) MoveForward(deltaTime float32) {
	c.translate(c.forwardDelta(c.step(deltaTime)))
}

// MoveBackward walks the eye and target together away from the target side.
func (c *Camera) MoveBackward(deltaTime float32) {
	c.translate(c.forwardDelta(c.step(deltaTime)).Mul(-1))
}

func (c *Camera) StrafeUp(deltaTime float32) {
	c.translate(c.upDelta(c.step(deltaTime)))
}

func (c *Camera) StrafeDown(deltaTime float32) {
	c.translate(c.upDelta(c.step(deltaTime)).Mul(-1))
}

func (c *Camera) StrafeLeft(deltaTime float32) {
	c.translate(c.sideDelta(c.step(deltaTime)))
}

func (c *Camera) StrafeRight(deltaTime float32) {
	c.translate(c.sideDelta(c.step(deltaTime)).Mul(-1))
}

// step is the distance covered by one movement call. The frame delta only
// contributes when delta scaling is enabled.
func (c *Camera) step(deltaTime float32) float32 {
	if c.settings.ScaleByDelta {
		return c.settings.MovementSpeed * deltaTime
	}
	return c.settings.MovementSpeed
}

func (c *Camera) translate(delta mgl32.Vec3) {
	c.position = c.position.Add(delta)
	c.target = c.target.Add(delta)
}

// side returns +1 when the eye is on the +Z side of its target (or level
// with it) and -1 otherwise. It picks the direction that counts as forward.
func (c *Camera) side() float32 {
	if c.position.Z()-c.target.Z() >= 0 {
		return 1
	}
	return -1
}

func (c *Camera) forwardDelta(s float32) mgl32.Vec3 {
	d := c.position.Sub(c.target)
	ax := axisAngle(d.X(), d.Z())
	ay := axisAngle(d.Y(), d.Z())
	if c.settings.Navigation == OrbitXZ {
		ay = 0
	}
	k := -c.side() * s
	return mgl32.Vec3{
		k * math32.Sin(ax),
		k * math32.Sin(ay),
		k * math32.Cos(ax) * math32.Cos(ay),
	}
}

func (c *Camera) upDelta(s float32) mgl32.Vec3 {
	d := c.position.Sub(c.target)
	a := axisAngle(d.Y(), d.Z())
	k := c.side() * s
	return mgl32.Vec3{0, k * math32.Cos(a), -k * math32.Sin(a)}
}

func (c *Camera) sideDelta(s float32) mgl32.Vec3 {
	d := c.position.Sub(c.target)
	a := axisAngle(d.X(), d.Z())
	k := c.side() * s
	return mgl32.Vec3{k * math32.Cos(a), 0, -k * math32.Sin(a)}
}

// axisAngle is atan(num/dz). When the eye and target share a Z coordinate
// the ratio is undefined and the angle is taken as zero.
func axisAngle(num, dz float32) float32 {
	if dz == 0 {
		return 0
	}
	return math32.Atan(num / dz)
}

package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Each Rotate* call turns Position by MovementSpeed radians around a world
// axis through the origin. Target stays where it is. The frame delta is
// accepted for symmetry with the movement operations and is not used.

// RotateUp turns Position around the world X axis by +MovementSpeed.
func (c *Camera) RotateUp(_ float32) {
	c.rotateX(c.settings.MovementSpeed)
	c.latchUp()
}

// RotateDown turns Position around the world X axis by -MovementSpeed.
func (c *Camera) RotateDown(_ float32) {
	c.rotateX(-c.settings.MovementSpeed)
	c.latchUp()
}

// RotateLeft turns Position around the world Y axis by +MovementSpeed.
func (c *Camera) RotateLeft(_ float32) {
	c.rotateY(c.settings.MovementSpeed)
}

// RotateRight turns Position around the world Y axis by -MovementSpeed.
func (c *Camera) RotateRight(_ float32) {
	c.rotateY(-c.settings.MovementSpeed)
}

func (c *Camera) rotateX(angle float32) {
	if c.settings.Rotation == RotationDirect {
		sin, cos := math32.Sincos(angle)
		p := &c.position
		p[1] = cos*p[1] - sin*p[2]
		p[2] = sin*p[1] + cos*p[2]
		return
	}
	c.position = mgl32.HomogRotate3DX(angle).Mul4x1(c.position.Vec4(1)).Vec3()
}

func (c *Camera) rotateY(angle float32) {
	if c.settings.Rotation == RotationDirect {
		sin, cos := math32.Sincos(angle)
		p := &c.position
		p[0] = cos*p[0] + sin*p[2]
		p[2] = -sin*p[0] + cos*p[2]
		return
	}
	c.position = mgl32.HomogRotate3DY(angle).Mul4x1(c.position.Vec4(1)).Vec3()
}

// latchUp sets the sign of Up.y from the side of z = 0 the eye is on, so
// it flips once per crossing and the view does not invert when the eye
// passes over the top or bottom.
func (c *Camera) latchUp() {
	c.upright = c.position.Z() >= 0
	if c.upright {
		c.up[1] = math32.Abs(c.up[1])
	} else {
		c.up[1] = -math32.Abs(c.up[1])
	}
}

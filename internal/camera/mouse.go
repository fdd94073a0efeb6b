package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ProcessMouseMovement accumulates mouse offsets into Yaw and Pitch and
// reorients the camera according to its look mode.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	if c.settings.Look == LookEuler {
		c.syncYawPitch()
	}

	xoffset *= c.settings.MouseSensitivity
	yoffset *= c.settings.MouseSensitivity

	c.yaw += xoffset
	c.pitch += yoffset

	// make sure that when pitch is out of bounds, screen doesn't get flipped
	if constrainPitch {
		c.pitch = mgl32.Clamp(c.pitch, -MaxPitch, MaxPitch)
	}

	c.updateCameraVectors()
}

// ProcessMouseScroll narrows or widens the zoom by yoffset degrees.
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.zoom = clampZoom(c.zoom - yoffset)
}

func clampZoom(z float32) float32 {
	if math32.IsNaN(z) {
		return MaxZoom
	}
	return mgl32.Clamp(z, MinZoom, MaxZoom)
}

// Front returns the unit view direction described by Yaw and Pitch.
func (c *Camera) Front() mgl32.Vec3 {
	return eulerFront(c.yaw, c.pitch)
}

// syncYawPitch points Yaw and Pitch along Target-Position when a movement
// or rotation has turned the view away from them.
func (c *Camera) syncYawPitch() {
	dir, ok := normalize(c.target.Sub(c.position))
	if !ok || eulerFront(c.yaw, c.pitch).ApproxEqualThreshold(dir, 1e-4) {
		return
	}
	c.yaw = mgl32.RadToDeg(math32.Atan2(dir.Z(), dir.X()))
	c.pitch = mgl32.RadToDeg(math32.Atan2(dir.Y(), math32.Hypot(dir.X(), dir.Z())))
}

func eulerFront(yaw, pitch float32) mgl32.Vec3 {
	y := mgl32.DegToRad(yaw)
	p := mgl32.DegToRad(pitch)
	front := mgl32.Vec3{
		math32.Cos(y) * math32.Cos(p),
		math32.Sin(p),
		math32.Sin(y) * math32.Cos(p),
	}
	if n, ok := normalize(front); ok {
		return n
	}
	return mgl32.Vec3{0, 0, -1}
}

func (c *Camera) updateCameraVectors() {
	if c.settings.Look == LookOrbit {
		if up, ok := orbitUp(c.position, c.target); ok {
			c.up = c.orient(up)
		}
		return
	}

	front := eulerFront(c.yaw, c.pitch)
	radius := c.position.Sub(c.target).Len()
	if radius == 0 {
		radius = 1
	}
	c.target = c.position.Add(front.Mul(radius))

	right, ok := normalize(front.Cross(lookWorldUp))
	if !ok {
		return
	}
	if up, ok := normalize(right.Cross(front)); ok {
		c.up = c.orient(up)
	}
}

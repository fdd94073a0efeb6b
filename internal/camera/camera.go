// Package camera implements an orbit-style camera: the eye and its look-at
// target travel together around the scene while keeping their viewing
// axis. Mouse look, zoom and the view matrix sit on top of that model.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default camera values
const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 0.001
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45.0

	MinZoom  float32 = 1.0
	MaxZoom  float32 = 45.0
	MaxPitch float32 = 89.0
)

// orbitWorldUp is the reference used when deriving Up from Position-Target.
// Its length does not matter, only its direction.
var orbitWorldUp = mgl32.Vec3{0, 0.1, 0}

// lookWorldUp is the reference used when deriving Up from Yaw/Pitch.
var lookWorldUp = mgl32.Vec3{0, 1, 0}

// Camera holds the eye, target and up vectors along with the tunables that
// drive every movement operation. It is not safe for concurrent use.
type Camera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	yaw   float32
	pitch float32
	zoom  float32

	settings Settings

	// upright is cleared while the eye is past z = 0 after a vertical
	// rotation. Up.y is negative exactly while it is clear.
	upright bool
}

// State is a read-only snapshot of a camera
type State struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Zoom     float32
	Settings Settings
}

// New creates a camera at position looking at the origin.
func New(position, up mgl32.Vec3, yaw, pitch float32, opts ...Option) *Camera {
	return newCamera(position, mgl32.Vec3{0, 0, 0}, up, yaw, pitch, opts)
}

// NewFromScalars creates a camera from scalar coordinates looking at (0,0,-1).
func NewFromScalars(posX, posY, posZ, upX, upY, upZ, yaw, pitch float32, opts ...Option) *Camera {
	return newCamera(
		mgl32.Vec3{posX, posY, posZ},
		mgl32.Vec3{0, 0, -1},
		mgl32.Vec3{upX, upY, upZ},
		yaw, pitch, opts,
	)
}

// Default creates the demo camera: six units down +Z, looking at the origin.
func Default(opts ...Option) *Camera {
	return New(mgl32.Vec3{0, 0, 6}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch, opts...)
}

func newCamera(position, target, up mgl32.Vec3, yaw, pitch float32, opts []Option) *Camera {
	c := &Camera{
		position:        position,
		target:          target,
		up:              up,
		yaw:             yaw,
		pitch:           pitch,
		zoom:            DefaultZoom,
		settings:        DefaultSettings(),
		upright:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if up, ok := orbitUp(c.position, c.target); ok {
		c.up = up
	}
	return c
}

// GetViewMatrix returns the look-at transform for the current state.
func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.target, c.up)
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Target() mgl32.Vec3   { return c.target }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }

// Zoom returns the field of view in degrees, always within [MinZoom, MaxZoom].
func (c *Camera) Zoom() float32 { return c.zoom }

func (c *Camera) MovementSpeed() float32    { return c.settings.MovementSpeed }
func (c *Camera) MouseSensitivity() float32 { return c.settings.MouseSensitivity }
func (c *Camera) Settings() Settings        { return c.settings }

// State returns a snapshot of the camera.
func (c *Camera) State() State {
	return State{
		Position: c.position,
		Target:   c.target,
		Up:       c.up,
		Yaw:      c.yaw,
		Pitch:    c.pitch,
		Zoom:     c.zoom,
		Settings: c.settings,
	}
}

// orbitUp derives an up vector perpendicular to the eye-target axis. It
// reports false when there is no direction to work with (eye on target, or
// axis parallel to the world up).
func orbitUp(position, target mgl32.Vec3) (mgl32.Vec3, bool) {
	back, ok := normalize(position.Sub(target))
	if !ok {
		return mgl32.Vec3{}, false
	}
	right, ok := normalize(back.Cross(orbitWorldUp))
	if !ok {
		return mgl32.Vec3{}, false
	}
	return normalize(right.Cross(back))
}

// orient rolls a freshly derived up vector over when the camera is past
// z = 0, so rederiving Up never undoes the latch.
func (c *Camera) orient(up mgl32.Vec3) mgl32.Vec3 {
	if c.upright {
		return up
	}
	return up.Mul(-1)
}

func normalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	l := v.Len()
	if l == 0 || math32.IsInf(l, 0) || math32.IsNaN(l) {
		return v, false
	}
	return v.Mul(1 / l), true
}

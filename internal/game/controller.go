package game

import (
	"orbitcam/internal/camera"
	"orbitcam/internal/input"
)

// ActionSource is the part of the input manager the controller reads
type ActionSource interface {
	IsActive(action input.Action) bool
}

// bindings maps held actions to camera commands, in application order
var bindings = []struct {
	action   input.Action
	movement camera.Movement
}{
	{input.ActionMoveForward, camera.Forward},
	{input.ActionMoveBackward, camera.Backward},
	{input.ActionStrafeLeft, camera.Left},
	{input.ActionStrafeRight, camera.Right},
	{input.ActionStrafeUp, camera.Up},
	{input.ActionStrafeDown, camera.Down},
	{input.ActionRotateUp, camera.RotateUp},
	{input.ActionRotateDown, camera.RotateDown},
	{input.ActionRotateLeft, camera.RotateLeft},
	{input.ActionRotateRight, camera.RotateRight},
}

// Controller drives a camera from per-frame input
type Controller struct {
	cam            *camera.Camera
	constrainPitch bool
}

func NewController(cam *camera.Camera, constrainPitch bool) *Controller {
	return &Controller{cam: cam, constrainPitch: constrainPitch}
}

// Camera returns the driven camera
func (c *Controller) Camera() *camera.Camera { return c.cam }

// Update applies one frame of input: every held movement action once, then
// the mouse offsets and scroll if they are non-zero.
func (c *Controller) Update(src ActionSource, dt, mouseX, mouseY, scrollY float64) {
	for _, b := range bindings {
		if src.IsActive(b.action) {
			c.cam.ProcessKeyboard(b.movement, float32(dt))
		}
	}
	if mouseX != 0 || mouseY != 0 {
		c.cam.ProcessMouseMovement(float32(mouseX), float32(mouseY), c.constrainPitch)
	}
	if scrollY != 0 {
		c.cam.ProcessMouseScroll(float32(scrollY))
	}
}

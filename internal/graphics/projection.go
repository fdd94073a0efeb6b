package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection holds the perspective parameters that do not belong to the
// camera itself. The field of view comes from the camera's zoom.
type Projection struct {
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewProjection(width, height int) *Projection {
	p := &Projection{
		NearPlane: 0.1,
		FarPlane:  100.0,
	}
	p.SetViewport(width, height)
	return p
}

// SetViewport updates the aspect ratio; a zero height keeps the previous one.
func (p *Projection) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		if p.AspectRatio == 0 {
			p.AspectRatio = 1
		}
		return
	}
	p.AspectRatio = float32(width) / float32(height)
}

// GetProjectionMatrix builds a perspective matrix for a vertical FOV in degrees
func (p *Projection) GetProjectionMatrix(fovDegrees float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), p.AspectRatio, p.NearPlane, p.FarPlane)
}

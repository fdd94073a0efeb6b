package renderer

import (
	"orbitcam/internal/camera"
	"orbitcam/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext is what every renderable sees for one frame
type RenderContext struct {
	Camera     camera.State
	Projection *graphics.Projection
	DT         float64
	View       mgl32.Mat4
	Proj       mgl32.Mat4
	Width      int
	Height     int
}

// Renderable is one drawable feature with a GL resource lifecycle
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

package renderer

import (
	"fmt"

	"orbitcam/internal/camera"
	"orbitcam/internal/graphics"
	"orbitcam/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws every renderable feature through the camera
type Renderer struct {
	renderables []Renderable
	projection  *graphics.Projection
	clearColor  mgl32.Vec3

	width, height int
}

// NewRenderer configures GL state and initializes rs in order
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	r := &Renderer{
		renderables: rs,
		projection:  graphics.NewProjection(width, height),
		clearColor:  mgl32.Vec3{0.2, 0.3, 0.3},
	}

	for i, rend := range rs {
		if err := rend.Init(); err != nil {
			// release what was already built
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %T: %w", rend, err)
		}
	}
	r.SetViewport(width, height)

	return r, nil
}

// Render clears the frame and draws all features with cam's view matrix
func (r *Renderer) Render(cam *camera.Camera, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera:     cam.State(),
		Projection: r.projection,
		DT:         dt,
		View:       cam.GetViewMatrix(),
		Proj:       r.projection.GetProjectionMatrix(cam.Zoom()),
		Width:      r.width,
		Height:     r.height,
	}

	for _, rend := range r.renderables {
		rend.Render(ctx)
	}
}

// Dispose releases all features in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// Projection returns the perspective parameters
func (r *Renderer) Projection() *graphics.Projection {
	return r.projection
}

// SetViewport propagates a framebuffer resize
func (r *Renderer) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.projection.SetViewport(width, height)
	for _, rend := range r.renderables {
		rend.SetViewport(width, height)
	}
}

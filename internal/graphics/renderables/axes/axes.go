// Package axes draws the world axes and a marker at the camera's look-at
// target, so orbit motion can be read against a fixed frame.
package axes

import (
	_ "embed"

	"orbitcam/internal/graphics"
	renderer "orbitcam/internal/graphics/renderer"
	"orbitcam/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	//go:embed shaders/lines.vert
	vertShader string
	//go:embed shaders/lines.frag
	fragShader string
)

const floatsPerVertex = 6

var markerColor = mgl32.Vec3{1, 1, 1}

// AxisVertices returns three colored line segments from -length to +length
// along X (red), Y (green) and Z (blue).
func AxisVertices(length float32) []float32 {
	out := make([]float32, 0, 6*floatsPerVertex)
	for i := 0; i < 3; i++ {
		var dir, color mgl32.Vec3
		dir[i] = length
		color[i] = 1
		out = appendLine(out, dir.Mul(-1), dir, color)
	}
	return out
}

// MarkerVertices returns a small three-axis cross centered on target
func MarkerVertices(target mgl32.Vec3, size float32) []float32 {
	out := make([]float32, 0, 6*floatsPerVertex)
	for i := 0; i < 3; i++ {
		var d mgl32.Vec3
		d[i] = size / 2
		out = appendLine(out, target.Sub(d), target.Add(d), markerColor)
	}
	return out
}

func appendLine(out []float32, a, b, color mgl32.Vec3) []float32 {
	return append(out,
		a[0], a[1], a[2], color[0], color[1], color[2],
		b[0], b[1], b[2], color[0], color[1], color[2],
	)
}

// Axes implements the world axes and target marker renderable
type Axes struct {
	length float32
	shader *graphics.Shader

	axisVAO, axisVBO     uint32
	markerVAO, markerVBO uint32
	axisCount            int32
}

func NewAxes(length float32) *Axes {
	return &Axes{length: length}
}

func (a *Axes) Init() error {
	var err error
	a.shader, err = graphics.NewShader(vertShader, fragShader)
	if err != nil {
		return err
	}

	axis := AxisVertices(a.length)
	a.axisCount = int32(len(axis) / floatsPerVertex)
	a.axisVAO, a.axisVBO = newLineVAO(axis, gl.STATIC_DRAW)
	a.markerVAO, a.markerVBO = newLineVAO(MarkerVertices(mgl32.Vec3{}, 0), gl.DYNAMIC_DRAW)
	return nil
}

func newLineVAO(vertices []float32, usage uint32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), usage)

	stride := int32(floatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return vao, vbo
}

func (a *Axes) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.axes")()

	a.shader.Use()
	a.shader.SetMat4("view", ctx.View)
	a.shader.SetMat4("projection", ctx.Proj)
	gl.LineWidth(1.0)

	gl.BindVertexArray(a.axisVAO)
	gl.DrawArrays(gl.LINES, 0, a.axisCount)

	marker := MarkerVertices(ctx.Camera.Target, 0.2)
	gl.BindBuffer(gl.ARRAY_BUFFER, a.markerVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(marker)*4, gl.Ptr(marker))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(a.markerVAO)
	gl.DrawArrays(gl.LINES, 0, int32(len(marker)/floatsPerVertex))

	gl.BindVertexArray(0)
}

func (a *Axes) Dispose() {
	for _, vao := range []*uint32{&a.axisVAO, &a.markerVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
			*vao = 0
		}
	}
	for _, vbo := range []*uint32{&a.axisVBO, &a.markerVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
			*vbo = 0
		}
	}
	if a.shader != nil {
		a.shader.Delete()
	}
}

func (a *Axes) SetViewport(width, height int) {}

package shape

import (
	_ "embed"

	"orbitcam/internal/graphics"
	renderer "orbitcam/internal/graphics/renderer"
	"orbitcam/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	//go:embed shaders/shape.vert
	vertShader string
	//go:embed shaders/shape.frag
	fragShader string
)

// Shape draws one demo mesh at the origin
type Shape struct {
	kind   Kind
	model  mgl32.Mat4
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	count  int32
}

// NewShape creates a shape renderable; GL resources are built in Init
func NewShape(kind Kind) *Shape {
	return &Shape{kind: kind, model: mgl32.Ident4()}
}

// Init compiles the shader and uploads the mesh
func (s *Shape) Init() error {
	var err error
	s.shader, err = graphics.NewShader(vertShader, fragShader)
	if err != nil {
		return err
	}

	vertices := Vertices(s.kind)
	s.count = int32(len(vertices) / FloatsPerVertex)

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

// Render draws the mesh with the frame's view and projection
func (s *Shape) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.shape")()

	s.shader.Use()
	s.shader.SetMat4("model", s.model)
	s.shader.SetMat4("view", ctx.View)
	s.shader.SetMat4("projection", ctx.Proj)

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, s.count)
	gl.BindVertexArray(0)
}

// Dispose releases GL resources
func (s *Shape) Dispose() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}

func (s *Shape) SetViewport(width, height int) {}

package overlay

import (
	_ "embed"
	"image"
	"slices"

	"orbitcam/internal/graphics"
	renderer "orbitcam/internal/graphics/renderer"
	"orbitcam/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// margin is the panel's distance from the window corner in pixels
const margin = 8

var (
	//go:embed shaders/overlay.vert
	vertShader string
	//go:embed shaders/overlay.frag
	fragShader string
)

// unit quad, top-left origin: x, y, u, v
var quadVertices = []float32{
	0, 0, 0, 0,
	1, 0, 1, 0,
	1, 1, 1, 1,
	1, 1, 1, 1,
	0, 1, 0, 1,
	0, 0, 0, 0,
}

// Overlay draws the live camera state in the top-left corner
type Overlay struct {
	shader  *graphics.Shader
	vao     uint32
	vbo     uint32
	texture uint32

	visible bool
	lines   []string
	texW    int
	texH    int

	viewportW int
	viewportH int
}

func NewOverlay(visible bool) *Overlay {
	return &Overlay{visible: visible}
}

func (o *Overlay) Visible() bool { return o.visible }

// Toggle flips visibility and reports the new state
func (o *Overlay) Toggle() bool {
	o.visible = !o.visible
	return o.visible
}

func (o *Overlay) Init() error {
	var err error
	o.shader, err = graphics.NewShader(vertShader, fragShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.BindVertexArray(0)

	o.texture = graphics.NewTexture()
	return nil
}

func (o *Overlay) Render(ctx renderer.RenderContext) {
	if !o.visible || o.viewportW == 0 || o.viewportH == 0 {
		return
	}
	defer profiling.Track("renderer.overlay")()

	lines := FormatState(ctx.Camera)
	if !slices.Equal(lines, o.lines) {
		o.upload(Rasterize(lines))
		o.lines = lines
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetVec4("rect", mgl32.Vec4{margin, margin, float32(o.texW), float32(o.texH)})
	o.shader.SetVec2("viewport", float32(o.viewportW), float32(o.viewportH))
	o.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (o *Overlay) upload(img *image.RGBA) {
	defer profiling.Track("renderer.overlayUpload")()

	o.texW, o.texH = graphics.UploadRGBA(o.texture, img)
}

func (o *Overlay) Dispose() {
	if o.texture != 0 {
		gl.DeleteTextures(1, &o.texture)
		o.texture = 0
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
		o.vbo = 0
	}
	if o.shader != nil {
		o.shader.Delete()
	}
}

func (o *Overlay) SetViewport(width, height int) {
	o.viewportW, o.viewportH = width, height
}

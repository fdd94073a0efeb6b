package game

import (
	"fmt"
	"log"
	"time"

	"orbitcam/internal/camera"
	"orbitcam/internal/config"
	"orbitcam/internal/graphics/renderables/axes"
	"orbitcam/internal/graphics/renderables/overlay"
	"orbitcam/internal/graphics/renderables/shape"
	renderer "orbitcam/internal/graphics/renderer"
	"orbitcam/internal/input"
	"orbitcam/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame gets logged
const slowFrame = 16 * time.Millisecond

// App runs the demo: window events in, camera updates, frames out
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	mouse        input.MouseTracker
	mouseLook    bool
	profiling    bool

	controller *Controller
	snapshot   StateSnapshot
	renderer   *renderer.Renderer
	overlay    *overlay.Overlay
	fpsLimiter *FPSLimiter

	lastTime time.Time
	frames   int
	fpsSince time.Time
}

// NewApp builds the camera and renderables from the current config. The
// window's GL context must be current.
func NewApp(window *glfw.Window) (*App, error) {
	kind, err := shape.ParseKind(config.GetShape())
	if err != nil {
		return nil, fmt.Errorf("render.shape: %w", err)
	}

	ov := overlay.NewOverlay(config.GetShowOverlay())
	fbw, fbh := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(fbw, fbh, shape.NewShape(kind), axes.NewAxes(3), ov)
	if err != nil {
		return nil, err
	}

	cam := camera.Default(config.CameraOptions()...)

	a := &App{
		window:       window,
		inputManager: input.NewInputManager(),
		controller:   NewController(cam, config.GetConstrainPitch()),
		renderer:     r,
		overlay:      ov,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
		fpsSince:     time.Now(),
	}
	a.attach()
	return a, nil
}

func (a *App) attach() {
	a.inputManager.Attach(a.window)
	a.window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if a.mouseLook {
			a.mouse.Move(xpos, ypos)
		}
	})
	a.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.renderer.SetViewport(width, height)
	})
}

// Camera returns the camera driven by the app. Only the loop's goroutine
// may use it.
func (a *App) Camera() *camera.Camera { return a.controller.Camera() }

// LastState returns the camera state of the last finished frame. It is safe
// to call from any goroutine.
func (a *App) LastState() (camera.State, bool) { return a.snapshot.Load() }

// Run loops until the window is asked to close
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	a.handleToggles()

	mx, my := a.mouse.Take()
	func() {
		defer profiling.Track("camera.Update")()
		a.controller.Update(a.inputManager, dt, mx, my, a.inputManager.ScrollY())
	}()

	a.renderer.Render(a.controller.Camera(), dt)
	a.snapshot.Store(a.controller.Camera().State())
	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if d := time.Since(start); d > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	} else if a.profiling {
		log.Printf("Frame %v: %s", d, profiling.TopN(5))
	}

	a.frames++
	if time.Since(a.fpsSince) >= time.Second {
		log.Printf("FPS: %d", a.frames)
		a.frames = 0
		a.fpsSince = time.Now()
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait()
}

func (a *App) handleToggles() {
	im := a.inputManager
	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionToggleOverlay) {
		log.Printf("overlay visible: %v", a.overlay.Toggle())
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		a.profiling = !a.profiling
	}
	if im.JustPressed(input.ActionToggleMouseLook) {
		a.mouseLook = !a.mouseLook
		a.mouse.Reset()
		if a.mouseLook {
			a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		} else {
			a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		}
	}
}

// Dispose releases GL resources; the context must still be current
func (a *App) Dispose() {
	a.renderer.Dispose()
}

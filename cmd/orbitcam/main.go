package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"orbitcam/internal/camera"
	"orbitcam/internal/config"
	"orbitcam/internal/game"
	"orbitcam/internal/graphics/renderables/overlay"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	// GLFW and GL calls must stay on the main OS thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	// closer exits the process after running bound cleanups, also on SIGINT/SIGTERM
	defer closer.Close()
	closer.Bind(func() { log.Println("orbitcam: exiting") })

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			fail(err)
		}
		log.Printf("orbitcam: loaded config from %s", *configPath)
	}

	if err := run(); err != nil {
		fail(err)
	}
}

// fail logs err and exits through closer so bound cleanups still run
func fail(err error) {
	log.Printf("orbitcam: %v", err)
	closer.Exit(1)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		return err
	}
	defer window.Destroy()

	app, err := game.NewApp(window)
	if err != nil {
		return err
	}
	defer app.Dispose()

	// runs from closer.Close after a normal return, or on closer's signal
	// goroutine for SIGINT/SIGTERM, so it only reads the per-frame snapshot
	closer.Bind(func() {
		if state, ok := app.LastState(); ok {
			logState(state)
		}
	})

	app.Run()
	return nil
}

func logState(state camera.State) {
	for _, line := range overlay.FormatState(state) {
		log.Printf("final camera: %s", line)
	}
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	width, height := config.GetWindowSize()
	window, err := glfw.CreateWindow(width, height, config.GetWindowTitle(), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	// pacing is done by the FPS limiter
	glfw.SwapInterval(0)

	return window, nil
}

package config

import (
	"sync"

	"orbitcam/internal/camera"
)

// Settings holds the process-wide demo configuration
type Settings struct {
	mu sync.RWMutex

	windowWidth  int
	windowHeight int
	windowTitle  string

	fpsLimit    int // 0 = unlimited
	showOverlay bool
	shape       string

	camera         camera.Settings
	constrainPitch bool
}

var globalSettings = defaults()

func defaults() *Settings {
	return &Settings{
		windowWidth:    900,
		windowHeight:   600,
		windowTitle:    "orbitcam",
		fpsLimit:       120,
		showOverlay:    true,
		shape:          "cube",
		camera:         camera.DefaultSettings(),
		constrainPitch: true,
	}
}

// Reset restores every setting to its default
func Reset() {
	d := defaults()
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.windowWidth = d.windowWidth
	globalSettings.windowHeight = d.windowHeight
	globalSettings.windowTitle = d.windowTitle
	globalSettings.fpsLimit = d.fpsLimit
	globalSettings.showOverlay = d.showOverlay
	globalSettings.shape = d.shape
	globalSettings.camera = d.camera
	globalSettings.constrainPitch = d.constrainPitch
}

// GetWindowSize returns the initial window size in pixels
func GetWindowSize() (width, height int) {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.windowWidth, globalSettings.windowHeight
}

// SetWindowSize sets the initial window size, never smaller than 320x240
func SetWindowSize(width, height int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if width < 320 {
		width = 320
	}
	if height < 240 {
		height = 240
	}
	globalSettings.windowWidth = width
	globalSettings.windowHeight = height
}

func GetWindowTitle() string {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.windowTitle
}

func SetWindowTitle(title string) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	if title == "" {
		return
	}
	globalSettings.windowTitle = title
}

// GetFPSLimit returns the frame cap; 0 means unlimited
func GetFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.fpsLimit
}

// SetFPSLimit sets the frame cap, clamped to [0, 1000]
func SetFPSLimit(limit int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	globalSettings.fpsLimit = limit
}

func GetShowOverlay() bool {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.showOverlay
}

func SetShowOverlay(show bool) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.showOverlay = show
}

// GetShape returns the name of the demo shape to draw
func GetShape() string {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.shape
}

func SetShape(shape string) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.shape = shape
}

// GetCameraSettings returns the tunables new cameras are built with
func GetCameraSettings() camera.Settings {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.camera
}

// SetCameraSettings replaces the camera tunables. Non-positive speed or
// sensitivity fall back to the camera defaults.
func SetCameraSettings(s camera.Settings) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if s.MovementSpeed <= 0 {
		s.MovementSpeed = camera.DefaultSpeed
	}
	if s.MouseSensitivity <= 0 {
		s.MouseSensitivity = camera.DefaultSensitivity
	}
	globalSettings.camera = s
}

// GetConstrainPitch reports whether mouse look clamps pitch to ±89°
func GetConstrainPitch() bool {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.constrainPitch
}

func SetConstrainPitch(constrain bool) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.constrainPitch = constrain
}

// CameraOptions returns construction options matching the current settings
func CameraOptions() []camera.Option {
	return []camera.Option{camera.WithSettings(GetCameraSettings())}
}

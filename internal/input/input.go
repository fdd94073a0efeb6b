package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical camera or app command, decoupled from physical keys
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionStrafeUp
	ActionStrafeDown
	ActionRotateUp
	ActionRotateDown
	ActionRotateLeft
	ActionRotateRight
	ActionToggleOverlay
	ActionToggleProfiling
	ActionToggleMouseLook
	ActionQuit
	ActionCount // sentinel for array sizing
)

// InputManager tracks key and mouse button state per logical action
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	current      [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	// scroll accumulated since the last PostUpdate
	scrollY float64
}

// NewInputManager creates an InputManager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionStrafeLeft)
	im.BindKey(glfw.KeyD, ActionStrafeRight)
	im.BindKey(glfw.KeySpace, ActionStrafeUp)
	im.BindKey(glfw.KeyLeftShift, ActionStrafeDown)
	im.BindKey(glfw.KeyUp, ActionRotateUp)
	im.BindKey(glfw.KeyDown, ActionRotateDown)
	im.BindKey(glfw.KeyLeft, ActionRotateLeft)
	im.BindKey(glfw.KeyRight, ActionRotateRight)
	im.BindKey(glfw.KeyO, ActionToggleOverlay)
	im.BindKey(glfw.KeyV, ActionToggleProfiling)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	im.BindMouseButton(glfw.MouseButtonRight, ActionToggleMouseLook)

	return im
}

// BindKey binds a key to an action. A key may drive several actions and an
// action may be bound to several keys.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if !valid(action) {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes every action bound to key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.keyToActions, key)
}

func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if !valid(action) {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

func (im *InputManager) UnbindMouseButton(button glfw.MouseButton) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.mouseButtonToActions, button)
}

// HandleKeyEvent records a key transition. Repeat counts as held.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.keyToActions[key], action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent records a mouse button transition
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.mouseButtonToActions[button], action == glfw.Press)
}

// HandleScroll accumulates a vertical scroll offset
func (im *InputManager) HandleScroll(yoff float64) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.scrollY += yoff
}

func (im *InputManager) apply(actions []Action, pressed bool) {
	for _, act := range actions {
		if pressed && !im.current[act] {
			im.justPressed[act] = true
		}
		if !pressed && im.current[act] {
			im.justReleased[act] = true
		}
		im.current[act] = pressed
	}
}

// Attach installs key, mouse button and scroll callbacks on window
func (im *InputManager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		im.HandleScroll(yoff)
	})
}

// PostUpdate clears per-frame edges and scroll. Call once at the end of a frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.justPressed = [ActionCount]bool{}
	im.justReleased = [ActionCount]bool{}
	im.scrollY = 0
}

// IsActive reports whether the action is held down
func (im *InputManager) IsActive(action Action) bool {
	if !valid(action) {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.current[action]
}

// JustPressed reports whether the action went down during this frame
func (im *InputManager) JustPressed(action Action) bool {
	if !valid(action) {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

// JustReleased reports whether the action went up during this frame
func (im *InputManager) JustReleased(action Action) bool {
	if !valid(action) {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}

// ScrollY returns the scroll accumulated during this frame
func (im *InputManager) ScrollY() float64 {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.scrollY
}

func valid(action Action) bool {
	return action >= 0 && action < ActionCount
}

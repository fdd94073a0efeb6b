package camera

import (
	"fmt"
	"strings"
)

// NavigationMode selects the formula used by MoveForward and MoveBackward.
type NavigationMode int

const (
	// OrbitFull walks along the full eye-target axis, including its vertical angle.
	OrbitFull NavigationMode = iota
	// OrbitXZ keeps forward walking in the horizontal plane.
	OrbitXZ
)

// LookMode selects how mouse movement reorients the camera.
type LookMode int

const (
	// LookEuler derives the view direction from Yaw/Pitch and retargets the camera.
	LookEuler LookMode = iota
	// LookOrbit only re-derives Up from the eye-target axis; Yaw/Pitch are
	// accumulated but never move the view.
	LookOrbit
)

// RotationMode selects how the Rotate* operations turn Position.
type RotationMode int

const (
	// RotationMatrix rotates Position with homogeneous rotation matrices.
	RotationMatrix RotationMode = iota
	// RotationDirect applies the in-place component formulas, where the second
	// component is computed from the already rotated first one.
	RotationDirect
)

var navigationNames = map[NavigationMode]string{OrbitFull: "orbit-full", OrbitXZ: "orbit-xz"}
var lookNames = map[LookMode]string{LookEuler: "euler", LookOrbit: "orbit"}
var rotationNames = map[RotationMode]string{RotationMatrix: "matrix", RotationDirect: "direct"}

func (m NavigationMode) String() string { return nameOf(navigationNames, m) }
func (m LookMode) String() string       { return nameOf(lookNames, m) }
func (m RotationMode) String() string   { return nameOf(rotationNames, m) }

// ParseNavigationMode parses "orbit-full" or "orbit-xz".
func ParseNavigationMode(s string) (NavigationMode, error) {
	return parseName(navigationNames, "navigation", s)
}

// ParseLookMode parses "euler" or "orbit".
func ParseLookMode(s string) (LookMode, error) {
	return parseName(lookNames, "look", s)
}

// ParseRotationMode parses "matrix" or "direct".
func ParseRotationMode(s string) (RotationMode, error) {
	return parseName(rotationNames, "rotation", s)
}

func nameOf[M ~int](names map[M]string, m M) string {
	if n, ok := names[m]; ok {
		return n
	}
	return fmt.Sprintf("unknown(%d)", int(m))
}

func parseName[M ~int](names map[M]string, kind, s string) (M, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, n := range names {
		if n == s {
			return m, nil
		}
	}
	var zero M
	return zero, fmt.Errorf("camera: unknown %s mode %q", kind, s)
}

// Settings are the per-session tunables of a camera.
type Settings struct {
	MovementSpeed    float32
	MouseSensitivity float32
	Navigation       NavigationMode
	Look             LookMode
	Rotation         RotationMode
	// ScaleByDelta multiplies movement steps by the frame delta.
	ScaleByDelta bool
}

// DefaultSettings returns the settings every constructor starts from.
func DefaultSettings() Settings {
	return Settings{
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Navigation:       OrbitFull,
		Look:             LookEuler,
		Rotation:         RotationMatrix,
	}
}

// Option configures a camera at construction time.
type Option func(*Camera)

// WithSettings replaces all settings at once.
func WithSettings(s Settings) Option {
	return func(c *Camera) { c.settings = s }
}

func WithMovementSpeed(speed float32) Option {
	return func(c *Camera) { c.settings.MovementSpeed = speed }
}

func WithMouseSensitivity(sensitivity float32) Option {
	return func(c *Camera) { c.settings.MouseSensitivity = sensitivity }
}

// WithZoom sets the initial zoom, clamped to [MinZoom, MaxZoom].
func WithZoom(zoom float32) Option {
	return func(c *Camera) { c.zoom = clampZoom(zoom) }
}

func WithNavigation(m NavigationMode) Option {
	return func(c *Camera) { c.settings.Navigation = m }
}

func WithLook(m LookMode) Option {
	return func(c *Camera) { c.settings.Look = m }
}

func WithRotation(m RotationMode) Option {
	return func(c *Camera) { c.settings.Rotation = m }
}

func WithDeltaScaling(enabled bool) Option {
	return func(c *Camera) { c.settings.ScaleByDelta = enabled }
}

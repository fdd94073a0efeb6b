package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

func assertVec3(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tolerance, msgAndArgs...)
	}
}

func assertFinite(t *testing.T, v mgl32.Vec3, name string) {
	t.Helper()
	for i, x := range v {
		require.Falsef(t, math32.IsNaN(x), "%s[%d] is NaN", name, i)
		require.Falsef(t, math32.IsInf(x, 0), "%s[%d] is infinite", name, i)
	}
}

func TestDefaultCamera(t *testing.T) {
	c := Default()

	assertVec3(t, mgl32.Vec3{0, 0, 6}, c.Position())
	assertVec3(t, mgl32.Vec3{0, 0, 0}, c.Target())
	assertVec3(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.Equal(t, DefaultYaw, c.Yaw())
	assert.Equal(t, DefaultPitch, c.Pitch())
	assert.Equal(t, DefaultZoom, c.Zoom())
	assert.Equal(t, DefaultSpeed, c.MovementSpeed())
	assert.Equal(t, DefaultSensitivity, c.MouseSensitivity())
	assert.Equal(t, DefaultSettings(), c.Settings())
}

func TestNewFromScalarsTargetsNegativeZ(t *testing.T) {
	c := NewFromScalars(0, 0, 6, 0, 1, 0, DefaultYaw, DefaultPitch)

	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Target())
	assertVec3(t, mgl32.Vec3{0, 0, 6}, c.Position())
	assertVec3(t, mgl32.Vec3{0, 1, 0}, c.Up())
}

func TestConstructionDerivesPerpendicularUp(t *testing.T) {
	c := New(mgl32.Vec3{0, 3, 4}, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch)

	axis := c.Position().Sub(c.Target())
	assert.InDelta(t, 0, c.Up().Dot(axis), tolerance, "up must be perpendicular to the view axis")
	assert.InDelta(t, 1, c.Up().Len(), tolerance)
	assert.Greater(t, c.Up().Y(), float32(0))
}

func TestConstructionKeepsUpWhenDegenerate(t *testing.T) {
	// eye on target
	c := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 2, 0}, DefaultYaw, DefaultPitch)
	assertVec3(t, mgl32.Vec3{0, 2, 0}, c.Up())

	// axis parallel to the world up
	c = New(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 0, 1}, DefaultYaw, DefaultPitch)
	assertVec3(t, mgl32.Vec3{0, 0, 1}, c.Up())
}

func TestGetViewMatrixMatchesLookAt(t *testing.T) {
	c := Default()

	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 6}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	got := c.GetViewMatrix()
	assert.True(t, want.ApproxEqualThreshold(got, tolerance), "want %v, got %v", want, got)

	// Looking down -Z from z=6 is a pure translation by -6.
	assert.True(t, mgl32.Translate3D(0, 0, -6).ApproxEqualThreshold(got, tolerance))
}

func TestGetViewMatrixIsPure(t *testing.T) {
	c := Default()
	before := c.State()
	_ = c.GetViewMatrix()
	assert.Equal(t, before, c.State())
}

func TestOptions(t *testing.T) {
	c := Default(
		WithMovementSpeed(0.5),
		WithMouseSensitivity(0.25),
		WithZoom(100),
		WithNavigation(OrbitXZ),
		WithLook(LookOrbit),
		WithRotation(RotationDirect),
		WithDeltaScaling(true),
	)

	assert.Equal(t, Settings{
		MovementSpeed:    0.5,
		MouseSensitivity: 0.25,
		Navigation:       OrbitXZ,
		Look:             LookOrbit,
		Rotation:         RotationDirect,
		ScaleByDelta:     true,
	}, c.Settings())
	assert.Equal(t, MaxZoom, c.Zoom(), "initial zoom is clamped")
}

func TestParseModes(t *testing.T) {
	nav, err := ParseNavigationMode(" Orbit-XZ ")
	require.NoError(t, err)
	assert.Equal(t, OrbitXZ, nav)

	look, err := ParseLookMode("orbit")
	require.NoError(t, err)
	assert.Equal(t, LookOrbit, look)

	rot, err := ParseRotationMode("direct")
	require.NoError(t, err)
	assert.Equal(t, RotationDirect, rot)

	_, err = ParseNavigationMode("free-fly")
	assert.ErrorContains(t, err, `unknown navigation mode "free-fly"`)

	assert.Equal(t, "orbit-full", OrbitFull.String())
	assert.Equal(t, "euler", LookEuler.String())
	assert.Equal(t, "matrix", RotationMatrix.String())
	assert.Equal(t, "unknown(7)", NavigationMode(7).String())
}

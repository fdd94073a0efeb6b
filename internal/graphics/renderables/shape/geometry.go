package shape

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind names a demo shape
type Kind int

const (
	KindCube Kind = iota
	KindSquare
)

func (k Kind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindSquare:
		return "square"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses "cube" or "square"
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cube":
		return KindCube, nil
	case "square":
		return KindSquare, nil
	}
	return 0, fmt.Errorf("shape: unknown kind %q", s)
}

// FloatsPerVertex is position (3) plus color (3)
const FloatsPerVertex = 6

// Vertices returns interleaved position/color triangles for k
func Vertices(k Kind) []float32 {
	if k == KindSquare {
		return squareVertices()
	}
	return cubeVertices()
}

// squareVertices is a unit square in the XY plane facing +Z, split into two
// triangles with a different color per corner.
func squareVertices() []float32 {
	corners := [4]mgl32.Vec3{{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0.5, 0.5, 0}, {-0.5, 0.5, 0}}
	colors := [4]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}}
	return quad(corners, colors)
}

// cubeVertices is a unit cube centered on the origin. Each face is colored
// after its outward normal so orientation is visible while orbiting.
func cubeVertices() []float32 {
	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	}

	out := make([]float32, 0, len(faces)*6*FloatsPerVertex)
	for _, f := range faces {
		c := mgl32.Vec3{0.5, 0.5, 0.5}.Add(f.normal.Mul(0.5))
		out = append(out, quad(f.corners, [4]mgl32.Vec3{c, c, c, c})...)
	}
	return out
}

// quad emits corners 0-1-2 and 2-3-0 as two counter-clockwise triangles
func quad(corners, colors [4]mgl32.Vec3) []float32 {
	out := make([]float32, 0, 6*FloatsPerVertex)
	for _, i := range [6]int{0, 1, 2, 2, 3, 0} {
		p, c := corners[i], colors[i]
		out = append(out, p[0], p[1], p[2], c[0], c[1], c[2])
	}
	return out
}

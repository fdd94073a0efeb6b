package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"orbitcam/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	padding     = 6
	lineSpacing = 2
)

var (
	background = color.RGBA{0, 0, 0, 160}
	foreground = color.RGBA{255, 255, 255, 255}
)

// FormatState renders the camera state as overlay lines.
func FormatState(s camera.State) []string {
	return []string{
		"pos    " + formatVec(s.Position),
		"target " + formatVec(s.Target),
		"up     " + formatVec(s.Up),
		fmt.Sprintf("yaw %.1f  pitch %.1f  zoom %.1f", s.Yaw, s.Pitch, s.Zoom),
		fmt.Sprintf("speed %g  nav %s  look %s  rot %s",
			s.Settings.MovementSpeed, s.Settings.Navigation, s.Settings.Look, s.Settings.Rotation),
	}
}

func formatVec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%7.3f, %7.3f, %7.3f)", unsigned(v[0]), unsigned(v[1]), unsigned(v[2]))
}

// unsigned drops the sign of values that would print as -0.000
func unsigned(x float32) float32 {
	if x > -0.0005 && x < 0.0005 {
		return 0
	}
	return x
}

// Rasterize draws lines in the 7x13 bitmap font onto a translucent panel.
func Rasterize(lines []string) *image.RGBA {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + lineSpacing

	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	img := image.NewRGBA(image.Rect(0, 0, width+2*padding, len(lines)*lineHeight+2*padding))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(foreground),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		d.Dot = fixed.P(padding, padding+i*lineHeight+ascent)
		d.DrawString(line)
	}
	return img
}

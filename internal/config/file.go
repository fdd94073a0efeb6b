package config

import (
	"bytes"
	"fmt"
	"os"

	"orbitcam/internal/camera"
	"orbitcam/internal/graphics/renderables/shape"

	"github.com/pelletier/go-toml/v2"
)

// File mirrors the TOML config layout. Pointer fields distinguish keys that
// are absent from keys set to their zero value.
type File struct {
	Window struct {
		Width  *int    `toml:"width"`
		Height *int    `toml:"height"`
		Title  *string `toml:"title"`
	} `toml:"window"`

	Render struct {
		FPSLimit    *int    `toml:"fps_limit"`
		ShowOverlay *bool   `toml:"show_overlay"`
		Shape       *string `toml:"shape"`
	} `toml:"render"`

	Camera struct {
		Speed          *float32 `toml:"speed"`
		Sensitivity    *float32 `toml:"sensitivity"`
		Navigation     *string  `toml:"navigation"`
		Look           *string  `toml:"look"`
		Rotation       *string  `toml:"rotation"`
		ScaleByDelta   *bool    `toml:"scale_by_delta"`
		ConstrainPitch *bool    `toml:"constrain_pitch"`
	} `toml:"camera"`
}

// Load reads a TOML config file and applies every key it sets.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply decodes TOML data and applies it. Nothing is applied if the data is
// malformed, has unknown keys or names an unknown camera mode or shape.
func Apply(data []byte) error {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	cam := GetCameraSettings()
	if err := f.applyCamera(&cam); err != nil {
		return err
	}
	if f.Render.Shape != nil {
		if _, err := shape.ParseKind(*f.Render.Shape); err != nil {
			return err
		}
	}

	width, height := GetWindowSize()
	if f.Window.Width != nil {
		width = *f.Window.Width
	}
	if f.Window.Height != nil {
		height = *f.Window.Height
	}
	SetWindowSize(width, height)
	if f.Window.Title != nil {
		SetWindowTitle(*f.Window.Title)
	}

	if f.Render.FPSLimit != nil {
		SetFPSLimit(*f.Render.FPSLimit)
	}
	if f.Render.ShowOverlay != nil {
		SetShowOverlay(*f.Render.ShowOverlay)
	}
	if f.Render.Shape != nil {
		SetShape(*f.Render.Shape)
	}

	SetCameraSettings(cam)
	if f.Camera.ConstrainPitch != nil {
		SetConstrainPitch(*f.Camera.ConstrainPitch)
	}
	return nil
}

func (f *File) applyCamera(s *camera.Settings) error {
	c := f.Camera
	if c.Speed != nil {
		s.MovementSpeed = *c.Speed
	}
	if c.Sensitivity != nil {
		s.MouseSensitivity = *c.Sensitivity
	}
	if c.ScaleByDelta != nil {
		s.ScaleByDelta = *c.ScaleByDelta
	}
	if c.Navigation != nil {
		m, err := camera.ParseNavigationMode(*c.Navigation)
		if err != nil {
			return err
		}
		s.Navigation = m
	}
	if c.Look != nil {
		m, err := camera.ParseLookMode(*c.Look)
		if err != nil {
			return err
		}
		s.Look = m
	}
	if c.Rotation != nil {
		m, err := camera.ParseRotationMode(*c.Rotation)
		if err != nil {
			return err
		}
		s.Rotation = m
	}
	return nil
}

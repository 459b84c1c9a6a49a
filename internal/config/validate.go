package config

import (
	"fmt"

	"github.com/Faultbox/carscene/internal/controls"
)

// Validate replaces out-of-range values with defaults and returns a
// description of each replacement.
func (c *Config) Validate() []string {
	def := Default()
	var fixed []string
	note := func(format string, args ...any) {
		fixed = append(fixed, fmt.Sprintf(format, args...))
	}

	g := &c.Graphics
	if g.Width <= 0 || g.Height <= 0 {
		note("graphics size %dx%d invalid, using %dx%d", g.Width, g.Height, def.Graphics.Width, def.Graphics.Height)
		g.Width, g.Height = def.Graphics.Width, def.Graphics.Height
	}
	if g.FOVDegrees <= 1 || g.FOVDegrees >= 179 {
		note("fov_degrees %g out of range, using %g", g.FOVDegrees, def.Graphics.FOVDegrees)
		g.FOVDegrees = def.Graphics.FOVDegrees
	}
	if g.Near <= 0 || g.Far <= g.Near {
		note("clip range [%g, %g] invalid, using [%g, %g]", g.Near, g.Far, def.Graphics.Near, def.Graphics.Far)
		g.Near, g.Far = def.Graphics.Near, def.Graphics.Far
	}

	s := &c.Scene
	if _, ok := controls.ParseSunColor(s.SunColor); !ok {
		note("unknown sun_color %q, using %q", s.SunColor, controls.SunDim.String())
		s.SunColor = controls.SunDim.String()
	}
	if s.FrameRate <= 0 {
		note("frame_rate %d invalid, using %d", s.FrameRate, def.Scene.FrameRate)
		s.FrameRate = def.Scene.FrameRate
	}

	cam := &c.Camera
	if cam.Distance <= 0 {
		note("camera distance %g invalid, using %g", cam.Distance, def.Camera.Distance)
		cam.Distance = def.Camera.Distance
	}
	if cam.ViewDirection == ([3]float32{}) {
		note("camera view_direction is zero, using %v", def.Camera.ViewDirection)
		cam.ViewDirection = def.Camera.ViewDirection
	}
	if cam.DragSensitivity <= 0 {
		note("drag_sensitivity %g invalid, using %g", cam.DragSensitivity, def.Camera.DragSensitivity)
		cam.DragSensitivity = def.Camera.DragSensitivity
	}

	if c.UI.Mode != UIModePanel && c.UI.Mode != UIModeKeys {
		note("unknown ui mode %q, using %q", c.UI.Mode, UIModeKeys)
		c.UI.Mode = UIModeKeys
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		note("unknown log level %q, using %q", c.Logging.Level, def.Logging.Level)
		c.Logging.Level = def.Logging.Level
	}

	if c.Screenshots.Dir == "" {
		c.Screenshots.Dir = def.Screenshots.Dir
	}
	if c.Screenshots.Prefix == "" {
		c.Screenshots.Prefix = def.Screenshots.Prefix
	}

	return fixed
}

// Controls returns the initial scene controls. An unknown sun color falls
// back to dim.
func (c *Config) Controls() controls.Flags {
	sun, ok := controls.ParseSunColor(c.Scene.SunColor)
	if !ok {
		sun = controls.SunDim
	}
	return controls.Flags{
		Animate: c.Scene.Animate,
		Car:     c.Scene.Car,
		UFO:     c.Scene.UFO,
		Sun:     sun,
	}
}
